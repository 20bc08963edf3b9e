package implot

import "fmt"

// Queries are only meaningful while their plot is open, so they hang
// off the PlotToken. Each validates the token and the axis arguments
// before touching native state.

// IsHovered reports whether the plot area is hovered.
func (t *PlotToken) IsHovered() (bool, error) {
	if err := t.ensureOpen(); err != nil {
		return false, err
	}
	return t.ctx.driver.IsPlotHovered(), nil
}

// IsAxisHovered reports whether an axis area is hovered.
func (t *PlotToken) IsAxisHovered(axis Axis) (bool, error) {
	if err := t.ensureOpen(); err != nil {
		return false, err
	}
	if !axis.valid() {
		return false, fmt.Errorf("implot: axis %d: %w", int32(axis), ErrUnrecognizedValue)
	}
	return t.ctx.driver.IsAxisHovered(axis), nil
}

// IsLegendEntryHovered reports whether the legend entry with the given
// label is hovered.
func (t *PlotToken) IsLegendEntryHovered(label string) (bool, error) {
	if err := t.ensureOpen(); err != nil {
		return false, err
	}
	return t.ctx.driver.IsLegendEntryHovered(label), nil
}

// MousePosition returns the mouse position in plot space, resolved
// against the given axis pair.
func (t *PlotToken) MousePosition(x, y Axis) (Point, error) {
	if err := t.checkAxisPair(x, y); err != nil {
		return Point{}, err
	}
	return t.ctx.driver.PlotMousePos(x, y), nil
}

// Limits returns the current visible region for the given axis pair.
func (t *PlotToken) Limits(x, y Axis) (Rect, error) {
	if err := t.checkAxisPair(x, y); err != nil {
		return Rect{}, err
	}
	return t.ctx.driver.PlotLimits(x, y), nil
}

// PixelsToPlot converts a pixel-space position into plot space.
func (t *PlotToken) PixelsToPlot(p Vec2, x, y Axis) (Point, error) {
	if err := t.checkAxisPair(x, y); err != nil {
		return Point{}, err
	}
	return t.ctx.driver.PixelsToPlot(p, x, y), nil
}

// PlotToPixels converts a plot-space position into pixel space.
func (t *PlotToken) PlotToPixels(p Point, x, y Axis) (Vec2, error) {
	if err := t.checkAxisPair(x, y); err != nil {
		return Vec2{}, err
	}
	return t.ctx.driver.PlotToPixels(p, x, y), nil
}

// checkAxisPair validates an open token and an (X, Y) slot pair.
func (t *PlotToken) checkAxisPair(x, y Axis) error {
	if err := t.ensureOpen(); err != nil {
		return err
	}
	if !x.IsX() || !y.IsY() {
		return fmt.Errorf("implot: axis pair (%v, %v): %w", x, y, ErrUnrecognizedValue)
	}
	return nil
}
