package render

import (
	"strconv"
	"strings"
)

// ResolveSize converts a size expressed as an absolute number, a percentage
// string ("25%"), or a pixel literal ("10px") into absolute units.
//
// Percentages resolve against reference. Pixel literals are already absolute
// and are deliberately NOT rescaled against reference; callers must not treat
// the two string forms as interchangeable. Anything unparseable resolves to
// 0. When a maximum is supplied the result is clamped to [0, maximum].
func ResolveSize(v any, reference float64, maximum ...float64) float64 {
	var n float64
	switch t := v.(type) {
	case int:
		n = float64(t)
	case int64:
		n = float64(t)
	case float32:
		n = float64(t)
	case float64:
		n = t
	case string:
		s := strings.TrimSpace(t)
		switch {
		case strings.HasSuffix(s, "%"):
			if p, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64); err == nil {
				n = reference * p / 100
			}
		case strings.HasSuffix(s, "px"):
			if p, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64); err == nil {
				n = p
			}
		default:
			if p, err := strconv.ParseFloat(s, 64); err == nil {
				n = p
			}
		}
	}
	if n < 0 {
		n = 0
	}
	if len(maximum) > 0 && n > maximum[0] {
		n = maximum[0]
	}
	return n
}
