package implot

import (
	"fmt"
	"image/color"
	"log/slog"
	"strings"
	"testing"
)

// mockDriver implements Driver for testing. It records every call in
// order so tests can assert on exact native call sequences.
type mockDriver struct {
	name    string
	initErr error
	inited  bool
	closed  bool
	logger  *slog.Logger

	// begin results, consumed per call; empty means "drawn".
	beginPlotResults []bool
	subplotsDrawn    bool
	legendPopupOpen  bool
	dragDropActive   bool

	hovered      bool
	mousePos     Point
	limits       Rect
	nextColormap Colormap

	calls        []string
	lastXs       DataView
	lastYs       DataView
	lastPlotSize Vec2
}

func newMockDriver() *mockDriver {
	return &mockDriver{
		name:          "mock",
		subplotsDrawn: true,
		nextColormap:  colormapPresetCount,
	}
}

func (m *mockDriver) record(format string, args ...any) {
	m.calls = append(m.calls, fmt.Sprintf(format, args...))
}

// count returns how many recorded calls start with prefix.
func (m *mockDriver) count(prefix string) int {
	n := 0
	for _, c := range m.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// callIndex returns the position of the first recorded call starting
// with prefix, or -1 when no such call was made.
func (m *mockDriver) callIndex(prefix string) int {
	for i, c := range m.calls {
		if strings.HasPrefix(c, prefix) {
			return i
		}
	}
	return -1
}

func (m *mockDriver) Name() string { return m.name }

func (m *mockDriver) SetLogger(l *slog.Logger) { m.logger = l }

func (m *mockDriver) Init() error {
	if m.initErr != nil {
		return m.initErr
	}
	m.inited = true
	m.record("Init")
	return nil
}

func (m *mockDriver) Close() error {
	m.closed = true
	m.record("Close")
	return nil
}

func (m *mockDriver) CreateContext() error {
	m.record("CreateContext")
	return nil
}

func (m *mockDriver) DestroyContext() {
	m.record("DestroyContext")
}

func (m *mockDriver) BindHostContext(handle uintptr) {
	m.record("BindHostContext(%#x)", handle)
}

func (m *mockDriver) BeginPlot(title string, size Vec2, flags PlotFlags) bool {
	drawn := true
	if len(m.beginPlotResults) > 0 {
		drawn = m.beginPlotResults[0]
		m.beginPlotResults = m.beginPlotResults[1:]
	}
	m.lastPlotSize = size
	m.record("BeginPlot(%s)=%t", title, drawn)
	return drawn
}

func (m *mockDriver) EndPlot() { m.record("EndPlot") }

func (m *mockDriver) BeginSubplots(title string, rows, cols int, size Vec2, flags SubplotFlags, rowRatios, colRatios []float32) bool {
	m.record("BeginSubplots(%s,%dx%d)=%t", title, rows, cols, m.subplotsDrawn)
	return m.subplotsDrawn
}

func (m *mockDriver) EndSubplots() { m.record("EndSubplots") }

func (m *mockDriver) BeginLegendPopup(label string, button MouseButton) bool {
	m.record("BeginLegendPopup(%s,%d)=%t", label, button, m.legendPopupOpen)
	return m.legendPopupOpen
}

func (m *mockDriver) EndLegendPopup() { m.record("EndLegendPopup") }

func (m *mockDriver) BeginDragDropTargetPlot() bool {
	m.record("BeginDragDropTargetPlot=%t", m.dragDropActive)
	return m.dragDropActive
}

func (m *mockDriver) BeginDragDropTargetAxis(axis Axis) bool {
	m.record("BeginDragDropTargetAxis(%v)=%t", axis, m.dragDropActive)
	return m.dragDropActive
}

func (m *mockDriver) BeginDragDropTargetLegend() bool {
	m.record("BeginDragDropTargetLegend=%t", m.dragDropActive)
	return m.dragDropActive
}

func (m *mockDriver) EndDragDropTarget() { m.record("EndDragDropTarget") }

func (m *mockDriver) BeginDragDropSourcePlot() bool {
	m.record("BeginDragDropSourcePlot=%t", m.dragDropActive)
	return m.dragDropActive
}

func (m *mockDriver) BeginDragDropSourceAxis(axis Axis) bool {
	m.record("BeginDragDropSourceAxis(%v)=%t", axis, m.dragDropActive)
	return m.dragDropActive
}

func (m *mockDriver) BeginDragDropSourceItem(label string) bool {
	m.record("BeginDragDropSourceItem(%s)=%t", label, m.dragDropActive)
	return m.dragDropActive
}

func (m *mockDriver) EndDragDropSource() { m.record("EndDragDropSource") }

func (m *mockDriver) SetupAxis(axis Axis, label string, flags AxisFlags) {
	m.record("SetupAxis(%v,%s)", axis, label)
}

func (m *mockDriver) SetupAxisLimits(axis Axis, min, max float64, cond Cond) {
	m.record("SetupAxisLimits(%v,%g,%g,%d)", axis, min, max, cond)
}

func (m *mockDriver) SetupAxisScale(axis Axis, scale AxisScale) {
	m.record("SetupAxisScale(%v,%d)", axis, scale)
}

func (m *mockDriver) SetupAxisTicks(axis Axis, positions []float64, labels []string, keepDefault bool) {
	m.record("SetupAxisTicks(%v,n=%d)", axis, len(positions))
}

func (m *mockDriver) SetupAxisLinks(axis Axis, min, max *float64) {
	m.record("SetupAxisLinks(%v)", axis)
}

func (m *mockDriver) SetupLegend(location Location, flags LegendFlags) {
	m.record("SetupLegend(%d)", location)
}

func (m *mockDriver) SetAxes(x, y Axis) {
	m.record("SetAxes(%v,%v)", x, y)
}

func (m *mockDriver) PlotLine(label string, xs, ys DataView, flags LineFlags) {
	m.lastXs, m.lastYs = xs, ys
	m.record("PlotLine(%s,n=%d)", label, xs.Count())
}

func (m *mockDriver) PlotScatter(label string, xs, ys DataView, flags ScatterFlags) {
	m.lastXs, m.lastYs = xs, ys
	m.record("PlotScatter(%s,n=%d)", label, xs.Count())
}

func (m *mockDriver) PlotStairs(label string, xs, ys DataView, flags StairsFlags) {
	m.lastXs, m.lastYs = xs, ys
	m.record("PlotStairs(%s,n=%d)", label, xs.Count())
}

func (m *mockDriver) PlotShaded(label string, xs, ys DataView, ref float64, flags ShadedFlags) {
	m.lastXs, m.lastYs = xs, ys
	m.record("PlotShaded(%s,n=%d,ref=%g)", label, xs.Count(), ref)
}

func (m *mockDriver) PlotBars(label string, xs, ys DataView, width float64, flags BarsFlags) {
	m.lastXs, m.lastYs = xs, ys
	m.record("PlotBars(%s,n=%d,w=%g)", label, xs.Count(), width)
}

func (m *mockDriver) PlotStems(label string, xs, ys DataView, ref float64, flags StemsFlags) {
	m.lastXs, m.lastYs = xs, ys
	m.record("PlotStems(%s,n=%d,ref=%g)", label, xs.Count(), ref)
}

func (m *mockDriver) PlotText(text string, x, y float64, offset Vec2, flags TextFlags) {
	m.record("PlotText(%s,%g,%g)", text, x, y)
}

func (m *mockDriver) PlotHeatmap(label string, values DataView, rows, cols int, scaleMin, scaleMax float64, format string, boundsMin, boundsMax Point, flags HeatmapFlags) {
	m.lastXs = values
	m.record("PlotHeatmap(%s,%dx%d,fmt=%s)", label, rows, cols, format)
}

func (m *mockDriver) PushStyleColor(target PlotColor, r, g, b, a float32) {
	m.record("PushStyleColor(%d)", target)
}

func (m *mockDriver) PopStyleColor(count int) {
	m.record("PopStyleColor(%d)", count)
}

func (m *mockDriver) PushStyleVarFloat(v StyleVar, value float32) {
	m.record("PushStyleVarFloat(%d,%g)", v, value)
}

func (m *mockDriver) PushStyleVarInt(v StyleVar, value int32) {
	m.record("PushStyleVarInt(%d,%d)", v, value)
}

func (m *mockDriver) PushStyleVarVec2(v StyleVar, value Vec2) {
	m.record("PushStyleVarVec2(%d)", v)
}

func (m *mockDriver) PopStyleVar(count int) {
	m.record("PopStyleVar(%d)", count)
}

func (m *mockDriver) PushColormap(cm Colormap) {
	m.record("PushColormap(%d)", cm)
}

func (m *mockDriver) PopColormap(count int) {
	m.record("PopColormap(%d)", count)
}

func (m *mockDriver) AddColormap(name string, colors []color.RGBA, qualitative bool) Colormap {
	cm := m.nextColormap
	m.nextColormap++
	m.record("AddColormap(%s,n=%d)=%d", name, len(colors), cm)
	return cm
}

func (m *mockDriver) IsPlotHovered() bool { m.record("IsPlotHovered"); return m.hovered }

func (m *mockDriver) IsAxisHovered(axis Axis) bool {
	m.record("IsAxisHovered(%v)", axis)
	return m.hovered
}

func (m *mockDriver) IsLegendEntryHovered(label string) bool {
	m.record("IsLegendEntryHovered(%s)", label)
	return m.hovered
}

func (m *mockDriver) PlotMousePos(x, y Axis) Point {
	m.record("PlotMousePos(%v,%v)", x, y)
	return m.mousePos
}

func (m *mockDriver) PlotLimits(x, y Axis) Rect {
	m.record("PlotLimits(%v,%v)", x, y)
	return m.limits
}

func (m *mockDriver) PixelsToPlot(p Vec2, x, y Axis) Point {
	m.record("PixelsToPlot(%v,%v)", x, y)
	return Point{X: float64(p.X), Y: float64(p.Y)}
}

func (m *mockDriver) PlotToPixels(p Point, x, y Axis) Vec2 {
	m.record("PlotToPixels(%v,%v)", x, y)
	return Vec2{X: float32(p.X), Y: float32(p.Y)}
}

func (m *mockDriver) ShowDemoWindow(open *bool) {
	m.record("ShowDemoWindow")
}

// mockHost implements HostContext for testing.
type mockHost struct {
	handle uintptr
	alive  bool
}

func (h *mockHost) Handle() uintptr { return h.handle }
func (h *mockHost) Alive() bool     { return h.alive }

// resetContext clears the process-wide context slot between tests.
func resetContext() {
	ctxMu.Lock()
	current = nil
	ctxMu.Unlock()
	setActiveDriver(nil)
}

// newTestContext creates a context over a fresh mock driver and host,
// registering cleanup of the process-wide slot.
func newTestContext(t *testing.T) (*Context, *PlotUI, *mockDriver, *mockHost) {
	t.Helper()
	resetContext()
	t.Cleanup(resetContext)

	m := newMockDriver()
	host := &mockHost{handle: 0x1234, alive: true}
	ctx, err := CreateContext(host, WithDriver(m))
	if err != nil {
		t.Fatalf("CreateContext: %v", err)
	}
	ui, err := ctx.Frame()
	if err != nil {
		t.Fatalf("Frame: %v", err)
	}
	return ctx, ui, m, host
}
