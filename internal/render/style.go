package render

// DefaultModuleUnit is the fixed internal scale for one module. All geometry
// math happens in these units; the final output resolution is chosen at
// rasterization time and never feeds back into layout.
const DefaultModuleUnit = 100.0

// Style holds the configurable geometry and paint of one rendering session.
// It is bound to a single grid side length at construction and is not safe
// for concurrent mutation; each setter re-resolves its own derived value
// immediately, so reads after a setter always see the clamped result.
type Style struct {
	gridSide int
	unit     float64

	moduleRadius float64
	moduleMargin float64
	padding      float64
	margin       float64

	background Gradient
	active     Gradient
	inactive   Gradient

	icon *IconOverlay
}

// NewStyle returns a style for a grid of the given side length with the
// default paint: black active modules on a white background.
func NewStyle(gridSide int) *Style {
	if gridSide < 0 {
		gridSide = 0
	}
	return &Style{
		gridSide:   gridSide,
		unit:       DefaultModuleUnit,
		background: NormalizeGradient("#ffffff"),
		active:     NormalizeGradient("#000000"),
		inactive:   NormalizeGradient("#ffffff"),
	}
}

// Option applies one configuration key to a style. Apply with a set of
// options is a merge: keys without an option keep their current values.
type Option func(*Style)

func WithModuleRadius(v any) Option { return func(s *Style) { s.SetModuleRadius(v) } }

func WithModuleMargin(v any) Option { return func(s *Style) { s.SetModuleMargin(v) } }

func WithPadding(v any) Option { return func(s *Style) { s.SetPadding(v) } }

func WithMargin(v any) Option { return func(s *Style) { s.SetMargin(v) } }

func WithBackground(v any) Option { return func(s *Style) { s.SetBackground(v) } }

func WithActiveColor(v any) Option { return func(s *Style) { s.SetActiveColor(v) } }

func WithInactiveColor(v any) Option { return func(s *Style) { s.SetInactiveColor(v) } }

// Apply merges the given options into the style, in order.
func (s *Style) Apply(opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
}

// SetModuleRadius sets the corner rounding per module, clamped to half the
// module unit. Percentages resolve against the module unit.
func (s *Style) SetModuleRadius(v any) {
	s.moduleRadius = ResolveSize(v, s.unit, s.unit*0.5)
}

// SetModuleMargin sets the gap between adjacent modules, clamped to 30% of
// the module unit.
func (s *Style) SetModuleMargin(v any) {
	s.moduleMargin = ResolveSize(v, s.unit, s.unit*0.3)
}

// SetPadding sets the inset between the modules and the outer margin.
// Unbounded; bare numbers are in module units, "n%" is relative to the
// module unit and "npx" is absolute.
func (s *Style) SetPadding(v any) {
	s.padding = s.resolveSpacing(v)
}

// SetMargin sets the outer inset before the image edge. Same units as
// SetPadding.
func (s *Style) SetMargin(v any) {
	s.margin = s.resolveSpacing(v)
}

func (s *Style) resolveSpacing(v any) float64 {
	switch t := v.(type) {
	case int:
		return ResolveSize(float64(t)*s.unit, s.unit)
	case int64:
		return ResolveSize(float64(t)*s.unit, s.unit)
	case float32:
		return ResolveSize(float64(t)*s.unit, s.unit)
	case float64:
		return ResolveSize(t*s.unit, s.unit)
	}
	return ResolveSize(v, s.unit)
}

// SetBackground sets the paint behind all modules.
func (s *Style) SetBackground(v any) { s.background = NormalizeGradient(v) }

// SetActiveColor sets the paint for active modules.
func (s *Style) SetActiveColor(v any) { s.active = NormalizeGradient(v) }

// SetInactiveColor sets the paint for inactive modules.
func (s *Style) SetInactiveColor(v any) { s.inactive = NormalizeGradient(v) }

func (s *Style) GridSide() int { return s.gridSide }

func (s *Style) ModuleUnit() float64 { return s.unit }

func (s *Style) ModuleRadius() float64 { return s.moduleRadius }

func (s *Style) ModuleMargin() float64 { return s.moduleMargin }

func (s *Style) Padding() float64 { return s.padding }

func (s *Style) Margin() float64 { return s.margin }

func (s *Style) Background() Gradient { return s.background }

func (s *Style) ActiveColor() Gradient { return s.active }

func (s *Style) InactiveColor() Gradient { return s.inactive }

// Icon returns the overlay set by AddImage, or nil.
func (s *Style) Icon() *IconOverlay { return s.icon }

// TotalSize is the side length of the output document in module units:
// grid side · unit plus padding and margin on both sides.
func (s *Style) TotalSize() float64 {
	return float64(s.gridSide)*s.unit + 2*s.padding + 2*s.margin
}
