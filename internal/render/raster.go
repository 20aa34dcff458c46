package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// SurfaceProvider allocates offscreen drawing surfaces. It is the one
// graphics capability the raster stage needs; injecting it keeps the markup
// stage testable with no graphics environment at all.
type SurfaceProvider interface {
	Surface(width, height int) (*image.RGBA, error)
}

// MemorySurfaces allocates plain in-memory RGBA surfaces.
type MemorySurfaces struct{}

func (MemorySurfaces) Surface(width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid surface size %dx%d", width, height)
	}
	return image.NewRGBA(image.Rect(0, 0, width, height)), nil
}

// Rasterizer converts vector markup into raster pixels. Each call allocates
// one surface scoped to that call.
type Rasterizer struct {
	surfaces SurfaceProvider
}

// NewRasterizer builds a rasterizer around the given surface capability.
// A missing capability is an environment error at construction, not a
// runtime probe inside the render path.
func NewRasterizer(p SurfaceProvider) (*Rasterizer, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: no surface provider", ErrEnvironment)
	}
	return &Rasterizer{surfaces: p}, nil
}

// RasterizePNG decodes the vector markup, draws it scaled to fill an
// outputSize×outputSize surface and returns the PNG encoding. outputSize <= 0
// falls back to the markup's own declared size.
func (r *Rasterizer) RasterizePNG(markup string, outputSize int) ([]byte, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(markup), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	if outputSize <= 0 {
		outputSize = int(icon.ViewBox.W)
	}
	if outputSize < 1 {
		return nil, fmt.Errorf("%w: markup declares no usable size", ErrRender)
	}

	surface, err := r.surfaces.Surface(outputSize, outputSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnvironment, err)
	}

	icon.SetTarget(0, 0, float64(outputSize), float64(outputSize))
	scanner := rasterx.NewScannerGV(outputSize, outputSize, surface, surface.Bounds())
	icon.Draw(rasterx.NewDasher(outputSize, outputSize, scanner), 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, surface); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}

// Rasterize is RasterizePNG wrapped as an embeddable data URL.
func (r *Rasterizer) Rasterize(markup string, outputSize int) (string, error) {
	raw, err := r.RasterizePNG(markup, outputSize)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw), nil
}
