package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalSizeBareGrid(t *testing.T) {
	s := NewStyle(21)

	assert.Equal(t, 21*DefaultModuleUnit, s.TotalSize())
}

func TestTotalSizeWithInsets(t *testing.T) {
	s := NewStyle(21)
	s.SetPadding("40px")
	s.SetMargin("60px")

	assert.Equal(t, 21*DefaultModuleUnit+2*40+2*60, s.TotalSize())
}

func TestModuleRadiusClamp(t *testing.T) {
	s := NewStyle(21)

	s.SetModuleRadius("1000%")
	assert.Equal(t, 0.5*s.ModuleUnit(), s.ModuleRadius())

	s.SetModuleRadius("25%")
	assert.Equal(t, 0.25*s.ModuleUnit(), s.ModuleRadius())
}

func TestModuleMarginClamp(t *testing.T) {
	s := NewStyle(21)

	s.SetModuleMargin(9999)
	assert.Equal(t, 0.3*s.ModuleUnit(), s.ModuleMargin())

	s.SetModuleMargin("10%")
	assert.Equal(t, 0.1*s.ModuleUnit(), s.ModuleMargin())
}

func TestSpacingUnits(t *testing.T) {
	s := NewStyle(21)

	// Bare numbers are module units; px literals are absolute.
	s.SetPadding(2)
	assert.Equal(t, 2*s.ModuleUnit(), s.Padding())

	s.SetPadding("10px")
	assert.Equal(t, 10.0, s.Padding())

	s.SetPadding("50%")
	assert.Equal(t, 0.5*s.ModuleUnit(), s.Padding())

	s.SetMargin("garbage")
	assert.Equal(t, 0.0, s.Margin())
}

func TestApplyMergesOnlyProvidedKeys(t *testing.T) {
	s := NewStyle(21)
	s.SetPadding("30px")
	s.SetActiveColor("#112233")

	s.Apply(WithMargin("20px"), WithBackground("#eeeeee"))

	assert.Equal(t, 30.0, s.Padding())
	assert.Equal(t, 20.0, s.Margin())
	assert.Equal(t, []string{"#112233", "#112233"}, s.ActiveColor().Colors)
	assert.Equal(t, []string{"#eeeeee", "#eeeeee"}, s.Background().Colors)
}

func TestPaintSettersNormalize(t *testing.T) {
	s := NewStyle(21)
	s.SetInactiveColor(Gradient{Colors: []string{"#0a0a0a", "#fafafa"}, Direction: 90})

	g := s.InactiveColor()
	assert.Equal(t, GradientLinear, g.Type)
	assert.Equal(t, []float64{0, 100}, g.Offsets)
	assert.Equal(t, 90.0, g.Direction)
}
