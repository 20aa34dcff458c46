package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeqown/go-qrcode/v2"
	"go.uber.org/zap"

	"github.com/cristianadrielbraun/qrstyler/internal/render"
)

// normalizeHTTPURL validates and normalizes a URL string for QR generation.
// It ensures an http/https scheme, a non-empty hostname, and returns a cleaned absolute URL.
func normalizeHTTPURL(s string) (string, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return "", fmt.Errorf("URL parameter is required")
	}
	// If missing scheme, default to https
	if !strings.Contains(v, "://") {
		v = "https://" + v
	}
	u, err := url.ParseRequestURI(v)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("only http and https URLs are supported")
	}
	if u.Host == "" {
		return "", fmt.Errorf("URL must include a valid host")
	}
	// Optional: cap length to avoid abuse
	if len(v) > 4096 {
		return "", fmt.Errorf("URL is too long")
	}
	return u.String(), nil
}

// sanitizeColor normalizes a hex color parameter to "#rrggbb", falling back
// to def when the input is missing or malformed. "transparent" maps to the
// SVG non-paint.
func sanitizeColor(param, def string) string {
	if param == "" {
		return def
	}
	if strings.EqualFold(param, "transparent") {
		return "none"
	}
	param = strings.TrimPrefix(param, "#")
	if len(param) != 6 {
		return def
	}
	if _, err := strconv.ParseUint(param, 16, 32); err != nil {
		return def
	}
	return "#" + strings.ToLower(param)
}

// eccLevel maps the ecc query parameter onto the encoder's correction
// levels, returning the encode option and the level's nominal recovery
// percentage. Quart is the default: enough headroom for a center icon.
func eccLevel(param string) (qrcode.EncodeOption, int) {
	switch strings.ToUpper(param) {
	case "L":
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionLow), 7
	case "M":
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionMedium), 15
	case "H":
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionHighest), 30
	default:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionQuart), 25
	}
}

// estimateCapacity is the occlusion budget handed to the renderer: half the
// ECC level's nominal recovery share of the symbol's modules, which keeps a
// comfortable margin below the theoretical limit.
func estimateCapacity(side, recoveryPercent int) int {
	return side * side * recoveryPercent / 200
}

// matrixCapture is a qrcode.Writer that keeps the module matrix instead of
// encoding it, so the renderer gets the grid without an image round trip.
type matrixCapture struct {
	grid *render.Grid
}

func (w *matrixCapture) Write(mat qrcode.Matrix) error {
	g := render.NewGrid(mat.Width())
	mat.Iterate(qrcode.IterDirection_ROW, func(x, y int, v qrcode.QRValue) {
		if v.IsSet() {
			g.Set(x, y, render.ModuleActive)
		}
	})
	w.grid = g
	return nil
}

func (w *matrixCapture) Close() error { return nil }

// markDiagnostics overwrites the structural regions of the symbol with the
// renderer's debug sentinels: finder patterns red, format information green,
// timing patterns yellow. Positions follow the standard symbol geometry and
// need nothing from the encoder.
func markDiagnostics(g *render.Grid) {
	n := g.Side()
	if n < 21 {
		return
	}

	// Finder patterns, 7x7 in three corners.
	for dy := 0; dy < 7; dy++ {
		for dx := 0; dx < 7; dx++ {
			g.Set(dx, dy, render.ModuleDebugRed)
			g.Set(n-7+dx, dy, render.ModuleDebugRed)
			g.Set(dx, n-7+dy, render.ModuleDebugRed)
		}
	}

	// Timing patterns along row and column 6, between the finders.
	for i := 8; i < n-8; i++ {
		g.Set(i, 6, render.ModuleDebugYellow)
		g.Set(6, i, render.ModuleDebugYellow)
	}

	// Format information bordering the finders.
	for i := 0; i <= 8; i++ {
		if i == 6 {
			continue
		}
		g.Set(i, 8, render.ModuleDebugGreen)
		g.Set(8, i, render.ModuleDebugGreen)
	}
	for i := n - 8; i < n; i++ {
		g.Set(i, 8, render.ModuleDebugGreen)
		g.Set(8, i, render.ModuleDebugGreen)
	}
}

// styleOptions translates the request's configuration surface into engine
// options. Only parameters present in the query become options, so the
// style's defaults survive a sparse request.
func styleOptions(c *gin.Context) []render.Option {
	var opts []render.Option
	for _, p := range []struct {
		key string
		opt func(any) render.Option
	}{
		{"moduleRadius", render.WithModuleRadius},
		{"moduleMargin", render.WithModuleMargin},
		{"padding", render.WithPadding},
		{"margin", render.WithMargin},
	} {
		if v := c.Query(p.key); v != "" {
			opts = append(opts, p.opt(v))
		}
	}

	if v := c.Query("bg"); v != "" {
		opts = append(opts, render.WithBackground(sanitizeColor(v, "#ffffff")))
	}
	if v := c.Query("inactive"); v != "" {
		opts = append(opts, render.WithInactiveColor(sanitizeColor(v, "#ffffff")))
	}

	if c.Query("colorMode") == "gradient" {
		grad := render.Gradient{
			Colors: []string{
				sanitizeColor(c.Query("gradientStart"), "#000000"),
				sanitizeColor(c.Query("gradientMiddle"), "#808080"),
				sanitizeColor(c.Query("gradientEnd"), "#ff0000"),
			},
		}
		if c.Query("gradientType") == "radial" {
			grad.Type = render.GradientRadial
		}
		if d, err := strconv.ParseFloat(c.Query("gradientDirection"), 64); err == nil {
			grad.Direction = d
		}
		opts = append(opts, render.WithActiveColor(grad))
	} else if v := c.Query("fg"); v != "" {
		opts = append(opts, render.WithActiveColor(sanitizeColor(v, "#000000")))
	}
	return opts
}

// QRCodeHandler encodes the requested URL, styles the resulting module grid
// and returns it as SVG, PNG, or a JSON-wrapped data URL.
func (h *Handler) QRCodeHandler(c *gin.Context) {
	normalizedURL, err := normalizeHTTPURL(c.Query("url"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	format := strings.ToLower(c.DefaultQuery("format", "png"))
	if format != "png" && format != "svg" && format != "dataurl" {
		format = "png"
	}

	level, recovery := eccLevel(c.Query("ecc"))
	qrc, err := qrcode.NewWith(normalizedURL,
		qrcode.WithEncodingMode(qrcode.EncModeByte),
		level,
	)
	if err != nil {
		h.log.Error("qr encode failed", zap.String("url", normalizedURL), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create QR code"})
		return
	}

	capture := &matrixCapture{}
	if err := qrc.Save(capture); err != nil || capture.grid == nil {
		h.log.Error("qr matrix capture failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read QR matrix"})
		return
	}
	grid := capture.grid

	if c.Query("debug") == "true" || c.Query("debug") == "1" {
		markDiagnostics(grid)
	}

	style := render.NewStyle(grid.Side())
	style.Apply(styleOptions(c)...)

	if logo := c.Query("logo"); logo != "" {
		if err := style.AddImage(c.Request.Context(), logo); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Failed to load logo: %v", err)})
			return
		}
	}

	capacity := estimateCapacity(grid.Side(), recovery)
	markup := render.GenerateSVG(grid, capacity, style)

	c.Header("Cache-Control", "public, max-age=3600")

	if format == "svg" {
		c.Data(http.StatusOK, "image/svg+xml", []byte(markup))
		return
	}

	outputSize := 0
	if v := c.Query("size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			outputSize = n
		}
	}

	switch format {
	case "dataurl":
		encoded, err := h.rasterizer.Rasterize(markup, outputSize)
		if err != nil {
			h.log.Error("rasterize failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rasterize QR code"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"image": encoded})
	default:
		raw, err := h.rasterizer.RasterizePNG(markup, outputSize)
		if err != nil {
			h.log.Error("rasterize failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rasterize QR code"})
			return
		}
		c.Data(http.StatusOK, "image/png", raw)
	}
}
