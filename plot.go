package implot

import "fmt"

// Default plot size in pixels, applied when Size is not called.
const (
	defaultPlotWidth  = 400
	defaultPlotHeight = 400
)

// Plot configures one plot. Build the configuration with the
// chainable setters, then open the plot with Begin or Build. The
// builder carries no native state and may be reused across frames.
//
//	plot := implot.NewPlot("Measurements").
//		Size(600, 300).
//		AxisLabel(implot.AxisX1, "t [s]").
//		AxisLimits(implot.AxisY1, implot.Rng(-1, 1), implot.CondOnce)
//	err := plot.Build(ui, func(t *implot.PlotToken) {
//		_ = line.Plot(t, xs, ys)
//	})
type Plot struct {
	title string
	size  Vec2
	flags PlotFlags
	axes  [axisCount]axisConfig

	legendLocation Location
	legendFlags    LegendFlags
	hasLegend      bool

	err error
}

// NewPlot creates a plot configuration. The title doubles as the
// plot's identity within the frame; two plots with the same title in
// one window are the same plot to the native library.
func NewPlot(title string) *Plot {
	return &Plot{
		title: title,
		size:  V2(defaultPlotWidth, defaultPlotHeight),
	}
}

// Size sets the plot size in pixels.
func (p *Plot) Size(width, height float32) *Plot {
	p.size = V2(width, height)
	return p
}

// Flags sets the plot flags.
func (p *Plot) Flags(flags PlotFlags) *Plot {
	if bad := flags &^ plotFlagsMask; bad != 0 {
		p.fail(fmt.Errorf("implot: plot flags 0x%x: %w", uint32(bad), ErrUnrecognizedValue))
		return p
	}
	p.flags = flags
	return p
}

// Legend positions the plot legend and sets its behavior flags.
func (p *Plot) Legend(location Location, flags LegendFlags) *Plot {
	if _, err := LocationFromNative(int32(location)); err != nil {
		p.fail(err)
		return p
	}
	if bad := flags &^ legendFlagsMask; bad != 0 {
		p.fail(fmt.Errorf("implot: legend flags 0x%x: %w", uint32(bad), ErrUnrecognizedValue))
		return p
	}
	p.legendLocation = location
	p.legendFlags = flags
	p.hasLegend = true
	return p
}

// fail records the first builder misuse; Begin reports it instead of
// opening the plot.
func (p *Plot) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

// Begin opens the plot for this frame.
//
// Three outcomes:
//   - (token, nil): the plot is visible. End must be called on the
//     token exactly once.
//   - (nil, nil): the native library decided the plot is not drawn
//     this frame (collapsed window, clipped, zero area). Skip the
//     plot body; no end call may be issued.
//   - (nil, error): a fault was detected before any native call:
//     ErrInvalidNesting when a plot is already open, ErrNotInitialized
//     when the context is gone, or a recorded builder misuse.
//
// Prefer Build, which makes the end call structural.
func (p *Plot) Begin(ui *PlotUI) (*PlotToken, error) {
	c := ui.ctx
	if err := c.ensureLive(); err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}
	if c.openPlot != nil {
		return nil, fmt.Errorf("implot: plot %q still open: %w", c.openPlot.title, ErrInvalidNesting)
	}
	if c.openLegend != nil || c.openDragDrop != nil {
		return nil, fmt.Errorf("implot: plot %q begun inside an item scope: %w", p.title, ErrInvalidNesting)
	}

	if !c.driver.BeginPlot(p.title, p.size, p.flags) {
		return nil, nil
	}
	p.setupAxes(c.driver)
	if p.hasLegend {
		c.driver.SetupLegend(p.legendLocation, p.legendFlags)
	}

	t := &PlotToken{ctx: c, title: p.title}
	c.openPlot = t
	return t, nil
}

// Build opens the plot, runs body if the plot is drawn, and ends the
// plot exactly once on every exit path, including a panic inside body
// (the end call runs, then the panic continues).
//
// A "not drawn" frame skips body and returns nil.
func (p *Plot) Build(ui *PlotUI, body func(*PlotToken)) error {
	t, err := p.Begin(ui)
	if err != nil {
		return err
	}
	if t == nil {
		return nil
	}
	var endErr error
	func() {
		defer func() {
			endErr = t.End()
		}()
		body(t)
	}()
	return endErr
}

// PlotToken is the proof that a plot is open. Every successful Begin
// hands out exactly one token, and the token's End must be called
// exactly once. Series, setup and query calls are methods on the
// token, so they cannot be issued against a closed plot.
type PlotToken struct {
	ctx   *Context
	title string
	ended bool
}

// End closes the plot. The second End on the same token fails with
// ErrInvalidNesting and does not reach native code, as does ending
// while an inner scope (legend popup, drag-drop scope) is still open.
func (t *PlotToken) End() error {
	if t == nil {
		return fmt.Errorf("implot: end without an open plot: %w", ErrInvalidNesting)
	}
	c := t.ctx
	if t.ended {
		return fmt.Errorf("implot: plot %q already ended: %w", t.title, ErrInvalidNesting)
	}
	if c.openLegend != nil {
		return fmt.Errorf("implot: plot %q ended with legend popup %q open: %w",
			t.title, c.openLegend.label, ErrInvalidNesting)
	}
	if c.openDragDrop != nil {
		return fmt.Errorf("implot: plot %q ended with %s open: %w",
			t.title, c.openDragDrop.scope(), ErrInvalidNesting)
	}

	t.ended = true
	c.openPlot = nil
	if err := c.ensureLive(); err != nil {
		// The native end call is skipped when the context died while
		// the plot was open; the binding state is still released.
		return err
	}
	c.driver.EndPlot()
	return nil
}

// SelectAxes directs subsequent series calls at the given axis pair.
// x must be an X slot and y a Y slot.
func (t *PlotToken) SelectAxes(x, y Axis) error {
	if err := t.ensureOpen(); err != nil {
		return err
	}
	if !x.IsX() || !y.IsY() {
		return fmt.Errorf("implot: axis pair (%v, %v): %w", x, y, ErrUnrecognizedValue)
	}
	t.ctx.driver.SetAxes(x, y)
	return nil
}

// ensureOpen fails when the token is spent or the context is gone.
func (t *PlotToken) ensureOpen() error {
	if t == nil || t.ended {
		return fmt.Errorf("implot: plot not open: %w", ErrInvalidNesting)
	}
	return t.ctx.ensureLive()
}
