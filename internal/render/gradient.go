package render

// GradientType selects the gradient geometry.
type GradientType string

const (
	GradientLinear GradientType = "linear"
	GradientRadial GradientType = "radial"
)

// Gradient is a fully-specified paint: an ordered color ramp plus the
// geometry for its type. Colors are SVG color strings. Offsets are percents,
// index-aligned with Colors. Direction is degrees (linear only); CenterX,
// CenterY and Radius are percents of the paintable area (radial only).
//
// Gradient is a value type; normalization copies the stop slices so specs
// are never aliased between styles.
type Gradient struct {
	Type      GradientType
	Colors    []string
	Offsets   []float64
	Direction float64
	CenterX   float64
	CenterY   float64
	Radius    float64
}

// NormalizeGradient accepts a bare color string, a Gradient, or a partial
// Gradient and returns a fully-populated spec. A single color becomes a
// 2-stop linear gradient of that color at offsets 0 and 100, so downstream
// rendering never special-cases solid paint. Missing stop offsets get even
// spacing; radial geometry left at zero gets center (50,50) and radius 50.
// Anything unrecognized degrades to solid black.
func NormalizeGradient(v any) Gradient {
	switch t := v.(type) {
	case string:
		return solidGradient(t)
	case Gradient:
		return normalizeSpec(t)
	case *Gradient:
		if t != nil {
			return normalizeSpec(*t)
		}
	}
	return solidGradient("#000000")
}

func solidGradient(color string) Gradient {
	if color == "" {
		color = "#000000"
	}
	return Gradient{
		Type:    GradientLinear,
		Colors:  []string{color, color},
		Offsets: []float64{0, 100},
		CenterX: 50,
		CenterY: 50,
		Radius:  50,
	}
}

func normalizeSpec(g Gradient) Gradient {
	if g.Type != GradientRadial {
		g.Type = GradientLinear
	}
	colors := make([]string, 0, len(g.Colors))
	for _, c := range g.Colors {
		if c != "" {
			colors = append(colors, c)
		}
	}
	if len(colors) == 0 {
		colors = []string{"#000000"}
	}
	if len(colors) == 1 {
		colors = append(colors, colors[0])
	}
	g.Colors = colors

	if len(g.Offsets) == len(colors) {
		g.Offsets = append([]float64(nil), g.Offsets...)
	} else {
		g.Offsets = evenOffsets(len(colors))
	}

	// Zero geometry counts as absent, matching the truthiness semantics the
	// rest of the pipeline expects.
	if g.CenterX == 0 {
		g.CenterX = 50
	}
	if g.CenterY == 0 {
		g.CenterY = 50
	}
	if g.Radius == 0 {
		g.Radius = 50
	}
	return g
}

func evenOffsets(count int) []float64 {
	offs := make([]float64, count)
	for i := range offs {
		offs[i] = evenOffset(i, count)
	}
	return offs
}

func evenOffset(i, count int) float64 {
	if count <= 1 {
		return 0
	}
	return float64(i) / float64(count-1) * 100
}
