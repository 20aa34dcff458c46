// Package render turns a finished QR module grid into a styled SVG document
// and, optionally, a rasterized PNG. It does not construct QR symbols; it
// consumes a grid and a capacity metric produced elsewhere and maps them,
// deterministically, to markup and pixels.
package render

import "fmt"

// Module is one cell of the symbol grid. Active and inactive are the normal
// payload values; the negative sentinels mark special regions for visual
// diagnostics and only appear when the producer enables debug output.
type Module int8

const (
	ModuleInactive Module = 0
	ModuleActive   Module = 1

	// Diagnostic sentinels, drawn in fixed colors on top of the normal paint.
	ModuleDebugRed    Module = -1 // finder / reserved regions
	ModuleDebugGreen  Module = -2 // format information
	ModuleDebugYellow Module = -3 // timing patterns
)

// Grid is a square, ordered 2-D array of module values. The side length is
// fixed at construction; the renderer only ever reads it.
type Grid struct {
	side  int
	cells []Module
}

// NewGrid returns an all-inactive grid of the given side length.
func NewGrid(side int) *Grid {
	if side < 0 {
		side = 0
	}
	return &Grid{side: side, cells: make([]Module, side*side)}
}

// GridFromRows builds a grid from row-major integer values, validating that
// the input is square and every value is a recognized module value.
func GridFromRows(rows [][]int) (*Grid, error) {
	g := NewGrid(len(rows))
	for y, row := range rows {
		if len(row) != g.side {
			return nil, fmt.Errorf("grid row %d has %d entries, want %d", y, len(row), g.side)
		}
		for x, v := range row {
			if v < -3 || v > 1 {
				return nil, fmt.Errorf("grid value %d at (%d,%d) is not a module value", v, x, y)
			}
			g.cells[y*g.side+x] = Module(v)
		}
	}
	return g, nil
}

// Side returns the grid's side length in modules.
func (g *Grid) Side() int { return g.side }

// At returns the module at column x, row y.
func (g *Grid) At(x, y int) Module { return g.cells[y*g.side+x] }

// Set writes the module at column x, row y. Intended for the producer that
// fills the grid before handing it to the renderer.
func (g *Grid) Set(x, y int, m Module) { g.cells[y*g.side+x] = m }
