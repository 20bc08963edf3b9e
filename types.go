package implot

// Point represents a position in plot space (data coordinates).
// The native library works in float64 for all plot-space values.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Vec2 represents a position or size in pixel space. The native
// library works in float32 for all pixel-space values, so Vec2 does
// too; use Point for data coordinates.
type Vec2 struct {
	X, Y float32
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Range represents a closed interval on a single axis.
type Range struct {
	Min, Max float64
}

// Rng is a convenience function to create a Range.
func Rng(min, max float64) Range {
	return Range{Min: min, Max: max}
}

// Contains reports whether v lies inside the range (inclusive).
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Size returns the extent of the range.
func (r Range) Size() float64 {
	return r.Max - r.Min
}

// Rect represents the visible region of a plot: one range per axis.
type Rect struct {
	X, Y Range
}

// Contains reports whether p lies inside the rect (inclusive).
func (r Rect) Contains(p Point) bool {
	return r.X.Contains(p.X) && r.Y.Contains(p.Y)
}

// AxisLink holds axis limits shared between plots. Every plot whose
// axis is linked to the same AxisLink reads the limits before its
// begin call and writes them back after its end call, so panning or
// zooming one plot moves the others on the next frame.
//
// An AxisLink must only be touched from the GUI thread, like every
// other frame-path value.
type AxisLink struct {
	Min, Max float64
}

// NewAxisLink creates a link with the given initial limits.
func NewAxisLink(min, max float64) *AxisLink {
	return &AxisLink{Min: min, Max: max}
}
