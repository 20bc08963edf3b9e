package implot

import "fmt"

// Series defaults taken from the native library's conventions.
const (
	defaultBarWidth      = 0.67
	defaultHeatmapFormat = "%.1f"
)

// clampPair clamps two views to the shorter count. The native entry
// points take a single count for both coordinates, so the longer view
// is truncated rather than read past the shorter one.
func clampPair(xs, ys DataView) (DataView, DataView, int) {
	n := xs.Count()
	if c := ys.Count(); c < n {
		n = c
	}
	return xs.truncated(n), ys.truncated(n), n
}

// truncated returns the view limited to the first n elements.
func (v DataView) truncated(n int) DataView {
	if n >= v.count {
		return v
	}
	v.count = n
	return v
}

// LineSeries configures a line series. The zero value is not useful;
// create one with NewLineSeries.
type LineSeries struct {
	label string
	flags LineFlags
	err   error
}

// NewLineSeries creates a line series with the given legend label.
func NewLineSeries(label string) *LineSeries {
	return &LineSeries{label: label}
}

// Flags sets the line flags.
func (s *LineSeries) Flags(flags LineFlags) *LineSeries {
	if bad := flags &^ lineFlagsMask; bad != 0 {
		s.err = fmt.Errorf("implot: line flags 0x%x: %w", uint32(bad), ErrUnrecognizedValue)
		return s
	}
	s.flags = flags
	return s
}

// Plot draws the series from x/y value slices inside the open plot.
// When the slices differ in length the shorter one wins.
func (s *LineSeries) Plot(t *PlotToken, xs, ys []float64) error {
	return s.PlotView(t, mustAdaptValues(xs), mustAdaptValues(ys))
}

// PlotView draws the series from pre-adapted views.
func (s *LineSeries) PlotView(t *PlotToken, xs, ys DataView) error {
	if err := t.ensureOpen(); err != nil {
		return err
	}
	if s.err != nil {
		return s.err
	}
	xv, yv, n := clampPair(xs, ys)
	if n == 0 {
		return nil
	}
	t.ctx.driver.PlotLine(s.label, xv, yv, s.flags)
	return nil
}

// ScatterSeries configures a scatter series.
type ScatterSeries struct {
	label string
	flags ScatterFlags
	err   error
}

// NewScatterSeries creates a scatter series with the given legend
// label.
func NewScatterSeries(label string) *ScatterSeries {
	return &ScatterSeries{label: label}
}

// Flags sets the scatter flags.
func (s *ScatterSeries) Flags(flags ScatterFlags) *ScatterSeries {
	if bad := flags &^ scatterFlagsMask; bad != 0 {
		s.err = fmt.Errorf("implot: scatter flags 0x%x: %w", uint32(bad), ErrUnrecognizedValue)
		return s
	}
	s.flags = flags
	return s
}

// Plot draws the series from x/y value slices inside the open plot.
func (s *ScatterSeries) Plot(t *PlotToken, xs, ys []float64) error {
	return s.PlotView(t, mustAdaptValues(xs), mustAdaptValues(ys))
}

// PlotView draws the series from pre-adapted views.
func (s *ScatterSeries) PlotView(t *PlotToken, xs, ys DataView) error {
	if err := t.ensureOpen(); err != nil {
		return err
	}
	if s.err != nil {
		return s.err
	}
	xv, yv, n := clampPair(xs, ys)
	if n == 0 {
		return nil
	}
	t.ctx.driver.PlotScatter(s.label, xv, yv, s.flags)
	return nil
}

// StairsSeries configures a stairstep series.
type StairsSeries struct {
	label string
	flags StairsFlags
	err   error
}

// NewStairsSeries creates a stairstep series with the given legend
// label.
func NewStairsSeries(label string) *StairsSeries {
	return &StairsSeries{label: label}
}

// Flags sets the stairs flags.
func (s *StairsSeries) Flags(flags StairsFlags) *StairsSeries {
	if bad := flags &^ stairsFlagsMask; bad != 0 {
		s.err = fmt.Errorf("implot: stairs flags 0x%x: %w", uint32(bad), ErrUnrecognizedValue)
		return s
	}
	s.flags = flags
	return s
}

// Plot draws the series from x/y value slices inside the open plot.
func (s *StairsSeries) Plot(t *PlotToken, xs, ys []float64) error {
	return s.PlotView(t, mustAdaptValues(xs), mustAdaptValues(ys))
}

// PlotView draws the series from pre-adapted views.
func (s *StairsSeries) PlotView(t *PlotToken, xs, ys DataView) error {
	if err := t.ensureOpen(); err != nil {
		return err
	}
	if s.err != nil {
		return s.err
	}
	xv, yv, n := clampPair(xs, ys)
	if n == 0 {
		return nil
	}
	t.ctx.driver.PlotStairs(s.label, xv, yv, s.flags)
	return nil
}

// ShadedSeries configures a shaded-region series filling between the
// curve and a horizontal reference.
type ShadedSeries struct {
	label string
	flags ShadedFlags
	ref   float64
	err   error
}

// NewShadedSeries creates a shaded series with the given legend label.
// The fill reference defaults to 0.
func NewShadedSeries(label string) *ShadedSeries {
	return &ShadedSeries{label: label}
}

// Reference sets the horizontal level the region fills to.
func (s *ShadedSeries) Reference(y float64) *ShadedSeries {
	s.ref = y
	return s
}

// Flags sets the shaded flags.
func (s *ShadedSeries) Flags(flags ShadedFlags) *ShadedSeries {
	if bad := flags &^ shadedFlagsMask; bad != 0 {
		s.err = fmt.Errorf("implot: shaded flags 0x%x: %w", uint32(bad), ErrUnrecognizedValue)
		return s
	}
	s.flags = flags
	return s
}

// Plot draws the series from x/y value slices inside the open plot.
func (s *ShadedSeries) Plot(t *PlotToken, xs, ys []float64) error {
	return s.PlotView(t, mustAdaptValues(xs), mustAdaptValues(ys))
}

// PlotView draws the series from pre-adapted views.
func (s *ShadedSeries) PlotView(t *PlotToken, xs, ys DataView) error {
	if err := t.ensureOpen(); err != nil {
		return err
	}
	if s.err != nil {
		return s.err
	}
	xv, yv, n := clampPair(xs, ys)
	if n == 0 {
		return nil
	}
	t.ctx.driver.PlotShaded(s.label, xv, yv, s.ref, s.flags)
	return nil
}

// BarSeries configures a bar series.
type BarSeries struct {
	label string
	flags BarsFlags
	width float64
	err   error
}

// NewBarSeries creates a bar series with the given legend label and
// the conventional bar width.
func NewBarSeries(label string) *BarSeries {
	return &BarSeries{label: label, width: defaultBarWidth}
}

// Width sets the bar width (or height for horizontal bars) in plot
// units.
func (s *BarSeries) Width(w float64) *BarSeries {
	s.width = w
	return s
}

// Flags sets the bars flags. BarsHorizontal draws bars along the X
// axis from their Y positions.
func (s *BarSeries) Flags(flags BarsFlags) *BarSeries {
	if bad := flags &^ barsFlagsMask; bad != 0 {
		s.err = fmt.Errorf("implot: bars flags 0x%x: %w", uint32(bad), ErrUnrecognizedValue)
		return s
	}
	s.flags = flags
	return s
}

// Plot draws the series from x/y value slices inside the open plot.
func (s *BarSeries) Plot(t *PlotToken, xs, ys []float64) error {
	return s.PlotView(t, mustAdaptValues(xs), mustAdaptValues(ys))
}

// PlotView draws the series from pre-adapted views.
func (s *BarSeries) PlotView(t *PlotToken, xs, ys DataView) error {
	if err := t.ensureOpen(); err != nil {
		return err
	}
	if s.err != nil {
		return s.err
	}
	xv, yv, n := clampPair(xs, ys)
	if n == 0 {
		return nil
	}
	t.ctx.driver.PlotBars(s.label, xv, yv, s.width, s.flags)
	return nil
}

// StemSeries configures a stem series: vertical (or horizontal) lines
// from a reference level to each point.
type StemSeries struct {
	label string
	flags StemsFlags
	ref   float64
	err   error
}

// NewStemSeries creates a stem series with the given legend label.
// The reference level defaults to 0.
func NewStemSeries(label string) *StemSeries {
	return &StemSeries{label: label}
}

// Reference sets the level the stems rise from.
func (s *StemSeries) Reference(y float64) *StemSeries {
	s.ref = y
	return s
}

// Flags sets the stems flags.
func (s *StemSeries) Flags(flags StemsFlags) *StemSeries {
	if bad := flags &^ stemsFlagsMask; bad != 0 {
		s.err = fmt.Errorf("implot: stems flags 0x%x: %w", uint32(bad), ErrUnrecognizedValue)
		return s
	}
	s.flags = flags
	return s
}

// Plot draws the series from x/y value slices inside the open plot.
func (s *StemSeries) Plot(t *PlotToken, xs, ys []float64) error {
	return s.PlotView(t, mustAdaptValues(xs), mustAdaptValues(ys))
}

// PlotView draws the series from pre-adapted views.
func (s *StemSeries) PlotView(t *PlotToken, xs, ys DataView) error {
	if err := t.ensureOpen(); err != nil {
		return err
	}
	if s.err != nil {
		return s.err
	}
	xv, yv, n := clampPair(xs, ys)
	if n == 0 {
		return nil
	}
	t.ctx.driver.PlotStems(s.label, xv, yv, s.ref, s.flags)
	return nil
}

// TextLabel configures a text annotation at a plot-space position.
type TextLabel struct {
	text   string
	offset Vec2
	flags  TextFlags
	err    error
}

// NewTextLabel creates a text annotation.
func NewTextLabel(text string) *TextLabel {
	return &TextLabel{text: text}
}

// PixelOffset shifts the text by a fixed pixel amount from its
// plot-space anchor.
func (s *TextLabel) PixelOffset(offset Vec2) *TextLabel {
	s.offset = offset
	return s
}

// Flags sets the text flags. TextVertical rotates the text 90 degrees.
func (s *TextLabel) Flags(flags TextFlags) *TextLabel {
	if bad := flags &^ textFlagsMask; bad != 0 {
		s.err = fmt.Errorf("implot: text flags 0x%x: %w", uint32(bad), ErrUnrecognizedValue)
		return s
	}
	s.flags = flags
	return s
}

// Plot draws the text anchored at (x, y) in plot space.
func (s *TextLabel) Plot(t *PlotToken, x, y float64) error {
	if err := t.ensureOpen(); err != nil {
		return err
	}
	if s.err != nil {
		return s.err
	}
	t.ctx.driver.PlotText(s.text, x, y, s.offset, s.flags)
	return nil
}

// HeatmapSeries configures a heatmap over a rectangular draw area.
type HeatmapSeries struct {
	label    string
	flags    HeatmapFlags
	scaleMin float64
	scaleMax float64
	format   string
	min, max Point
	err      error
}

// NewHeatmapSeries creates a heatmap with automatic color scaling,
// value labels in the conventional format, and a unit draw area from
// (0,0) to (1,1).
func NewHeatmapSeries(label string) *HeatmapSeries {
	return &HeatmapSeries{
		label:  label,
		format: defaultHeatmapFormat,
		max:    Pt(1, 1),
	}
}

// ScaleRange pins the color scale to [min, max] instead of scaling
// automatically.
func (s *HeatmapSeries) ScaleRange(min, max float64) *HeatmapSeries {
	s.scaleMin, s.scaleMax = min, max
	return s
}

// LabelFormat sets the printf-style format of the per-cell value
// labels.
func (s *HeatmapSeries) LabelFormat(format string) *HeatmapSeries {
	s.format = format
	return s
}

// NoLabels disables the per-cell value labels.
func (s *HeatmapSeries) NoLabels() *HeatmapSeries {
	s.format = ""
	return s
}

// DrawArea sets the plot-space rectangle the heatmap covers.
func (s *HeatmapSeries) DrawArea(min, max Point) *HeatmapSeries {
	s.min, s.max = min, max
	return s
}

// Flags sets the heatmap flags. HeatmapColMajor reads values in
// column-major order.
func (s *HeatmapSeries) Flags(flags HeatmapFlags) *HeatmapSeries {
	if bad := flags &^ heatmapFlagsMask; bad != 0 {
		s.err = fmt.Errorf("implot: heatmap flags 0x%x: %w", uint32(bad), ErrUnrecognizedValue)
		return s
	}
	s.flags = flags
	return s
}

// Plot draws rows*cols values, row-major unless HeatmapColMajor is
// set.
func (s *HeatmapSeries) Plot(t *PlotToken, values []float64, rows, cols int) error {
	return s.PlotView(t, mustAdaptValues(values), rows, cols)
}

// PlotView draws the heatmap from a pre-adapted view. The view must
// hold exactly rows*cols values.
func (s *HeatmapSeries) PlotView(t *PlotToken, values DataView, rows, cols int) error {
	if err := t.ensureOpen(); err != nil {
		return err
	}
	if s.err != nil {
		return s.err
	}
	if rows < 0 || cols < 0 || values.Count() != rows*cols {
		return fmt.Errorf("implot: heatmap %q: %d values for %dx%d cells: %w",
			s.label, values.Count(), rows, cols, ErrOutOfBounds)
	}
	if rows == 0 || cols == 0 {
		return nil
	}
	t.ctx.driver.PlotHeatmap(s.label, values, rows, cols, s.scaleMin, s.scaleMax, s.format, s.min, s.max, s.flags)
	return nil
}
