package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Fixed diagnostic colors for the debug sentinels. Not configurable.
const (
	debugRedFill    = "#ff0000"
	debugGreenFill  = "#00ff00"
	debugYellowFill = "#ffff00"
)

// iconBorderStroke is the fixed inset, in module units, between the icon's
// backing rectangle and the image itself.
const iconBorderStroke = 10.0

// iconCapacityShare is the fraction of the capacity metric the icon is
// allowed to occlude.
const iconCapacityShare = 0.15

// IconModules returns the icon's side length in modules for a given capacity
// metric: floor(sqrt(floor(capacity·0.15))), forced odd so the icon centers
// on a module boundary instead of an edge. Returns 0 when the capacity
// leaves no room for an icon.
func IconModules(capacity int) int {
	if capacity < 0 {
		return 0
	}
	n := int(math.Floor(math.Sqrt(math.Floor(float64(capacity) * iconCapacityShare))))
	if n%2 == 0 {
		n--
	}
	if n < 1 {
		return 0
	}
	return n
}

// GenerateSVG walks the grid once and assembles the styled vector document:
// gradient definitions, background, the module groups in fixed draw order
// (active, inactive, debug — debug markers always layer on top), and the
// optional centered icon. Identical inputs produce byte-identical markup.
func GenerateSVG(grid *Grid, capacity int, style *Style) string {
	w := &svgWriter{
		style: style,
		total: style.TotalSize(),
	}
	return w.document(grid, capacity)
}

type svgWriter struct {
	b     strings.Builder
	style *Style
	total float64
}

func (w *svgWriter) document(grid *Grid, capacity int) string {
	size := num(w.total)
	w.b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	fmt.Fprintf(&w.b,
		`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="%s" height="%s" viewBox="0 0 %s %s">`,
		size, size, size, size)

	w.b.WriteString(`<style>` +
		`.background{fill:url(#background-gradient);}` +
		`.active-modules{fill:url(#active-gradient);}` +
		`.inactive-modules{fill:url(#inactive-gradient);}` +
		`</style>`)

	w.b.WriteString(`<defs>`)
	w.gradientDef("background-gradient", w.style.Background())
	w.gradientDef("active-gradient", w.style.ActiveColor())
	w.gradientDef("inactive-gradient", w.style.InactiveColor())
	w.b.WriteString(`</defs>`)

	fmt.Fprintf(&w.b,
		`<rect class="background" fill="url(#background-gradient)" x="0" y="0" width="%s" height="%s"/>`,
		size, size)

	w.moduleGroups(grid)
	w.icon(capacity)

	w.b.WriteString(`</svg>`)
	return w.b.String()
}

// moduleGroups buckets every module by value and emits the buckets as
// groups in fixed order so later groups draw above earlier ones.
func (w *svgWriter) moduleGroups(grid *Grid) {
	var active, inactive, red, green, yellow []string
	s := w.style
	unit := s.ModuleUnit()
	side := unit - s.ModuleMargin()
	offset := s.Margin() + s.Padding() + s.ModuleMargin()

	for row := 0; row < grid.Side(); row++ {
		for col := 0; col < grid.Side(); col++ {
			x := offset + float64(col)*unit
			y := offset + float64(row)*unit
			switch grid.At(col, row) {
			case ModuleActive:
				active = append(active, w.moduleRect(x, y, side, ""))
			case ModuleInactive:
				inactive = append(inactive, w.moduleRect(x, y, side, ""))
			case ModuleDebugRed:
				red = append(red, w.moduleRect(x, y, side, debugRedFill))
			case ModuleDebugGreen:
				green = append(green, w.moduleRect(x, y, side, debugGreenFill))
			case ModuleDebugYellow:
				yellow = append(yellow, w.moduleRect(x, y, side, debugYellowFill))
			}
		}
	}

	w.group(`<g class="active-modules" fill="url(#active-gradient)">`, active)
	w.group(`<g class="inactive-modules" fill="url(#inactive-gradient)">`, inactive)
	debug := append(append(red, green...), yellow...)
	w.group(`<g class="debug-modules">`, debug)
}

func (w *svgWriter) group(open string, rects []string) {
	w.b.WriteString(open)
	for _, r := range rects {
		w.b.WriteString(r)
	}
	w.b.WriteString(`</g>`)
}

func (w *svgWriter) moduleRect(x, y, side float64, fill string) string {
	attr := ""
	if fill != "" {
		attr = fmt.Sprintf(` fill="%s"`, fill)
	}
	return fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" rx="%s"%s/>`,
		num(x), num(y), num(side), num(side), num(w.style.ModuleRadius()), attr)
}

// icon emits the backing rectangle and the image reference for the overlay
// set on the style, sized from the capacity metric. The backing rect carries
// the background paint so the gradient continues under a transparent icon.
func (w *svgWriter) icon(capacity int) {
	overlay := w.style.Icon()
	if overlay == nil {
		return
	}
	modules := IconModules(capacity)
	if modules < 1 {
		return
	}
	box := float64(modules) * w.style.ModuleUnit()
	pos := (w.total - box) / 2
	fmt.Fprintf(&w.b,
		`<rect class="background" fill="url(#background-gradient)" x="%s" y="%s" width="%s" height="%s"/>`,
		num(pos), num(pos), num(box), num(box))

	inner := box - 2*iconBorderStroke
	if inner < 0 {
		inner = 0
	}
	fmt.Fprintf(&w.b,
		`<image x="%s" y="%s" width="%s" height="%s" xlink:href="%s"/>`,
		num(pos+iconBorderStroke), num(pos+iconBorderStroke), num(inner), num(inner),
		xmlAttrEscaper.Replace(overlay.DataURL))
}

// xmlAttrEscaper neutralizes markup metacharacters in attribute values that
// originate outside the engine, such as caller-supplied icon data URLs; the
// emitted document must stay well formed for any input.
var xmlAttrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// gradientDef emits one gradient definition in absolute (userSpaceOnUse)
// coordinates, projected into the margin-inset box.
func (w *svgWriter) gradientDef(id string, g Gradient) {
	if g.Type == GradientRadial {
		w.radialDef(id, g)
		return
	}
	w.linearDef(id, g)
}

// linearDef places the gradient endpoints by casting a ray from the center
// of the margin-inset square along the direction angle until it meets the
// square's boundary, and using the opposite point as the start. The scale
// k = (side/2)/max(|cosθ|,|sinθ|) lands the ray exactly on the boundary for
// any angle.
func (w *svgWriter) linearDef(id string, g Gradient) {
	side := w.total - 2*w.style.Margin()
	center := w.total / 2
	rad := g.Direction * math.Pi / 180
	dx, dy := math.Cos(rad), math.Sin(rad)
	den := math.Max(math.Abs(dx), math.Abs(dy))
	var k float64
	if den > 0 {
		k = side / 2 / den
	}
	fmt.Fprintf(&w.b,
		`<linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%s" y1="%s" x2="%s" y2="%s">`,
		id, num(center-k*dx), num(center-k*dy), num(center+k*dx), num(center+k*dy))
	w.stops(g)
	w.b.WriteString(`</linearGradient>`)
}

// radialDef maps the percentage center into the margin-inset box and shrinks
// the radius by the margin's share of the total size so the gradient reads
// the same with and without an outer margin.
func (w *svgWriter) radialDef(id string, g Gradient) {
	inset := w.total - 2*w.style.Margin()
	cx := inset/100*g.CenterX + w.style.Margin()
	cy := inset/100*g.CenterY + w.style.Margin()
	var marginPct float64
	if w.total > 0 {
		marginPct = w.style.Margin() / w.total * 100
	}
	r := w.total / 100 * (g.Radius - marginPct)
	if r < 0 {
		r = 0
	}
	fmt.Fprintf(&w.b,
		`<radialGradient id="%s" gradientUnits="userSpaceOnUse" cx="%s" cy="%s" r="%s">`,
		id, num(cx), num(cy), num(r))
	w.stops(g)
	w.b.WriteString(`</radialGradient>`)
}

func (w *svgWriter) stops(g Gradient) {
	for i, c := range g.Colors {
		off := g.Offsets[i]
		// A stored offset of 0 is treated like a missing one and falls back
		// to the even-spacing value for its index. Callers depend on this;
		// index 0's even value is 0 either way.
		if off == 0 {
			off = evenOffset(i, len(g.Colors))
		}
		fmt.Fprintf(&w.b, `<stop offset="%s%%" stop-color="%s"/>`, num(off), c)
	}
}

// num formats a coordinate with the shortest exact decimal representation,
// keeping the document byte-stable across runs.
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
