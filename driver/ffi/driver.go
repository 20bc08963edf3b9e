package ffi

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"

	"github.com/gogpu/implot"
	"github.com/gogpu/implot/internal/cstr"
)

// LibraryPathEnv names the environment variable that overrides the
// library search. When set, its value is the only path tried.
const LibraryPathEnv = "IMPLOT_LIBRARY_PATH"

// init registers the ffi driver on package import.
func init() {
	implot.RegisterDriver(implot.DriverFFI, func() implot.Driver {
		return New()
	})
}

// Driver loads the native plotting library (cimplot) at runtime and
// implements implot.Driver by forwarding each call to the matching C
// entry point. It uses purego, so no cgo toolchain is needed.
//
// The safety layer validates every argument before it reaches the
// driver; methods here translate representations and nothing else.
type Driver struct {
	mu sync.Mutex

	lib     uintptr
	path    string
	loaded  bool
	plotCtx uintptr

	logger *slog.Logger

	// Native entry points, bound by Init.
	imCreateContext     func() uintptr
	imDestroyContext    func(uintptr)
	imSetCurrentContext func(uintptr)
	imSetImGuiContext   func(uintptr)

	imBeginPlot                 func(string, vec2, int32) bool
	imEndPlot                   func()
	imBeginSubplots             func(string, int32, int32, vec2, int32, *float32, *float32) bool
	imEndSubplots               func()
	imBeginLegendPopup          func(string, int32) bool
	imEndLegendPopup            func()
	imBeginDragDropTargetPlot   func() bool
	imBeginDragDropTargetAxis   func(int32) bool
	imBeginDragDropTargetLegend func() bool
	imEndDragDropTarget         func()
	imBeginDragDropSourcePlot   func(int32) bool
	imBeginDragDropSourceAxis   func(int32, int32) bool
	imBeginDragDropSourceItem   func(string, int32) bool
	imEndDragDropSource         func()

	imSetupAxis       func(int32, *byte, int32)
	imSetupAxisLimits func(int32, float64, float64, int32)
	imSetupAxisScale  func(int32, int32)
	imSetupAxisTicks  func(int32, *float64, int32, **byte, bool)
	imSetupAxisLinks  func(int32, *float64, *float64)
	imSetupLegend     func(int32, int32)
	imSetAxes         func(int32, int32)

	imPlotLine    func(string, *float64, *float64, int32, int32, int32, int32)
	imPlotScatter func(string, *float64, *float64, int32, int32, int32, int32)
	imPlotStairs  func(string, *float64, *float64, int32, int32, int32, int32)
	imPlotShaded  func(string, *float64, *float64, int32, float64, int32, int32, int32)
	imPlotBars    func(string, *float64, *float64, int32, float64, int32, int32, int32)
	imPlotStems   func(string, *float64, *float64, int32, float64, int32, int32, int32)
	imPlotText    func(string, float64, float64, vec2, int32)
	imPlotHeatmap func(string, *float64, int32, int32, float64, float64, *byte, plotPoint, plotPoint, int32)

	imPushStyleColor    func(int32, vec4)
	imPopStyleColor     func(int32)
	imPushStyleVarFloat func(int32, float32)
	imPushStyleVarInt   func(int32, int32)
	imPushStyleVarVec2  func(int32, vec2)
	imPopStyleVar       func(int32)
	imPushColormap      func(int32)
	imPopColormap       func(int32)
	imAddColormap       func(string, *uint32, int32, bool) int32

	imIsPlotHovered        func() bool
	imIsAxisHovered        func(int32) bool
	imIsLegendEntryHovered func(string) bool
	imGetPlotMousePos      func(*plotPoint, int32, int32)
	imGetPlotLimits        func(*plotRect, int32, int32)
	imPixelsToPlot         func(*plotPoint, float32, float32, int32, int32)
	imPlotToPixels         func(*vec2, float64, float64, int32, int32)

	imShowDemoWindow func(*bool)
}

// New creates an unloaded driver. Init must be called before any other
// method; implot.CreateContext does that when it adopts the driver.
func New() *Driver {
	return &Driver{}
}

// Name returns the driver identifier.
func (d *Driver) Name() string {
	return implot.DriverFFI
}

// SetLogger routes driver logging to l. A nil logger restores the
// package default.
func (d *Driver) SetLogger(l *slog.Logger) {
	d.mu.Lock()
	d.logger = l
	d.mu.Unlock()
}

func (d *Driver) log() *slog.Logger {
	d.mu.Lock()
	l := d.logger
	d.mu.Unlock()
	if l != nil {
		return l
	}
	return implot.Logger()
}

// symbol pairs a C entry point name with the Go func variable it binds
// to.
type symbol struct {
	name string
	fptr any
}

// symbols lists every entry point the driver needs. Init resolves all
// of them up front so a mismatched library fails at load time, not in
// the middle of a frame.
func (d *Driver) symbols() []symbol {
	return []symbol{
		{"ImPlot_CreateContext", &d.imCreateContext},
		{"ImPlot_DestroyContext", &d.imDestroyContext},
		{"ImPlot_SetCurrentContext", &d.imSetCurrentContext},
		{"ImPlot_SetImGuiContext", &d.imSetImGuiContext},

		{"ImPlot_BeginPlot", &d.imBeginPlot},
		{"ImPlot_EndPlot", &d.imEndPlot},
		{"ImPlot_BeginSubplots", &d.imBeginSubplots},
		{"ImPlot_EndSubplots", &d.imEndSubplots},
		{"ImPlot_BeginLegendPopup", &d.imBeginLegendPopup},
		{"ImPlot_EndLegendPopup", &d.imEndLegendPopup},
		{"ImPlot_BeginDragDropTargetPlot", &d.imBeginDragDropTargetPlot},
		{"ImPlot_BeginDragDropTargetAxis", &d.imBeginDragDropTargetAxis},
		{"ImPlot_BeginDragDropTargetLegend", &d.imBeginDragDropTargetLegend},
		{"ImPlot_EndDragDropTarget", &d.imEndDragDropTarget},
		{"ImPlot_BeginDragDropSourcePlot", &d.imBeginDragDropSourcePlot},
		{"ImPlot_BeginDragDropSourceAxis", &d.imBeginDragDropSourceAxis},
		{"ImPlot_BeginDragDropSourceItem", &d.imBeginDragDropSourceItem},
		{"ImPlot_EndDragDropSource", &d.imEndDragDropSource},

		{"ImPlot_SetupAxis", &d.imSetupAxis},
		{"ImPlot_SetupAxisLimits", &d.imSetupAxisLimits},
		{"ImPlot_SetupAxisScale_PlotScale", &d.imSetupAxisScale},
		{"ImPlot_SetupAxisTicks_doublePtr", &d.imSetupAxisTicks},
		{"ImPlot_SetupAxisLinks", &d.imSetupAxisLinks},
		{"ImPlot_SetupLegend", &d.imSetupLegend},
		{"ImPlot_SetAxes", &d.imSetAxes},

		{"ImPlot_PlotLine_doublePtrdoublePtr", &d.imPlotLine},
		{"ImPlot_PlotScatter_doublePtrdoublePtr", &d.imPlotScatter},
		{"ImPlot_PlotStairs_doublePtrdoublePtr", &d.imPlotStairs},
		{"ImPlot_PlotShaded_doublePtrdoublePtrdouble", &d.imPlotShaded},
		{"ImPlot_PlotBars_doublePtrdoublePtr", &d.imPlotBars},
		{"ImPlot_PlotStems_doublePtrdoublePtr", &d.imPlotStems},
		{"ImPlot_PlotText", &d.imPlotText},
		{"ImPlot_PlotHeatmap_doublePtr", &d.imPlotHeatmap},

		{"ImPlot_PushStyleColor_Vec4", &d.imPushStyleColor},
		{"ImPlot_PopStyleColor", &d.imPopStyleColor},
		{"ImPlot_PushStyleVar_Float", &d.imPushStyleVarFloat},
		{"ImPlot_PushStyleVar_Int", &d.imPushStyleVarInt},
		{"ImPlot_PushStyleVar_Vec2", &d.imPushStyleVarVec2},
		{"ImPlot_PopStyleVar", &d.imPopStyleVar},
		{"ImPlot_PushColormap_PlotColormap", &d.imPushColormap},
		{"ImPlot_PopColormap", &d.imPopColormap},
		{"ImPlot_AddColormap_U32Ptr", &d.imAddColormap},

		{"ImPlot_IsPlotHovered", &d.imIsPlotHovered},
		{"ImPlot_IsAxisHovered", &d.imIsAxisHovered},
		{"ImPlot_IsLegendEntryHovered", &d.imIsLegendEntryHovered},
		{"ImPlot_GetPlotMousePos", &d.imGetPlotMousePos},
		{"ImPlot_GetPlotLimits", &d.imGetPlotLimits},
		{"ImPlot_PixelsToPlot_Float", &d.imPixelsToPlot},
		{"ImPlot_PlotToPixels_double", &d.imPlotToPixels},

		{"ImPlot_ShowDemoWindow", &d.imShowDemoWindow},
	}
}

// candidatePaths returns the library paths Init tries, in order.
func candidatePaths() []string {
	if p := os.Getenv(LibraryPathEnv); p != "" {
		return []string{p}
	}
	return libraryNames()
}

// Init locates the native plotting library, opens it and binds every
// entry point. All symbols are resolved eagerly; a library built
// against a different binding version fails here with ErrSymbolMissing
// instead of crashing mid-frame.
func (d *Driver) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.loaded {
		return ErrAlreadyLoaded
	}

	var (
		lib     uintptr
		path    string
		openErr error
	)
	paths := candidatePaths()
	for _, p := range paths {
		h, err := openLibrary(p)
		if err != nil {
			openErr = err
			continue
		}
		lib, path = h, p
		break
	}
	if lib == 0 {
		if openErr != nil {
			return fmt.Errorf("%w (tried %q): %w", ErrLibraryNotFound, paths, openErr)
		}
		return fmt.Errorf("%w (tried %q)", ErrLibraryNotFound, paths)
	}

	syms := d.symbols()
	for _, s := range syms {
		addr, err := resolveSymbol(lib, s.name)
		if err != nil || addr == 0 {
			closeLibrary(lib)
			return fmt.Errorf("%w: %s", ErrSymbolMissing, s.name)
		}
		purego.RegisterFunc(s.fptr, addr)
	}

	d.lib = lib
	d.path = path
	d.loaded = true
	d.log().Info("ffi: native plotting library loaded", "path", path, "symbols", len(syms))
	return nil
}

// Close unloads the library. Any native context must be destroyed
// first; the safety layer guarantees that ordering.
func (d *Driver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.loaded {
		return nil
	}
	err := closeLibrary(d.lib)
	d.lib = 0
	d.path = ""
	d.plotCtx = 0
	d.loaded = false
	d.log().Debug("ffi: native plotting library unloaded")
	return err
}

// LibraryPath returns the path of the loaded library, or "" before
// Init.
func (d *Driver) LibraryPath() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.path
}

// CreateContext creates the native plotting context and makes it
// current.
func (d *Driver) CreateContext() error {
	ctx := d.imCreateContext()
	if ctx == 0 {
		return fmt.Errorf("ffi: native context creation failed")
	}
	d.imSetCurrentContext(ctx)
	d.plotCtx = ctx
	d.log().Debug("ffi: native context created")
	return nil
}

// DestroyContext destroys the native plotting context.
func (d *Driver) DestroyContext() {
	if d.plotCtx == 0 {
		return
	}
	d.imDestroyContext(d.plotCtx)
	d.plotCtx = 0
	d.log().Debug("ffi: native context destroyed")
}

// BindHostContext hands the host GUI context to the native library so
// both sides share one widget state.
func (d *Driver) BindHostContext(handle uintptr) {
	d.imSetImGuiContext(handle)
}

func (d *Driver) BeginPlot(title string, size implot.Vec2, flags implot.PlotFlags) bool {
	return d.imBeginPlot(title, vec2{X: size.X, Y: size.Y}, int32(flags))
}

func (d *Driver) EndPlot() {
	d.imEndPlot()
}

func (d *Driver) BeginSubplots(title string, rows, cols int, size implot.Vec2, flags implot.SubplotFlags, rowRatios, colRatios []float32) bool {
	var rp, cp *float32
	if len(rowRatios) > 0 {
		rp = &rowRatios[0]
	}
	if len(colRatios) > 0 {
		cp = &colRatios[0]
	}
	return d.imBeginSubplots(title, int32(rows), int32(cols), vec2{X: size.X, Y: size.Y}, int32(flags), rp, cp)
}

func (d *Driver) EndSubplots() {
	d.imEndSubplots()
}

func (d *Driver) BeginLegendPopup(label string, button implot.MouseButton) bool {
	return d.imBeginLegendPopup(label, int32(button))
}

func (d *Driver) EndLegendPopup() {
	d.imEndLegendPopup()
}

func (d *Driver) BeginDragDropTargetPlot() bool {
	return d.imBeginDragDropTargetPlot()
}

func (d *Driver) BeginDragDropTargetAxis(axis implot.Axis) bool {
	return d.imBeginDragDropTargetAxis(int32(axis))
}

func (d *Driver) BeginDragDropTargetLegend() bool {
	return d.imBeginDragDropTargetLegend()
}

func (d *Driver) EndDragDropTarget() {
	d.imEndDragDropTarget()
}

// The source begins take the GUI library's drag-drop flag word, which
// stays at its default here.

func (d *Driver) BeginDragDropSourcePlot() bool {
	return d.imBeginDragDropSourcePlot(0)
}

func (d *Driver) BeginDragDropSourceAxis(axis implot.Axis) bool {
	return d.imBeginDragDropSourceAxis(int32(axis), 0)
}

func (d *Driver) BeginDragDropSourceItem(label string) bool {
	return d.imBeginDragDropSourceItem(label, 0)
}

func (d *Driver) EndDragDropSource() {
	d.imEndDragDropSource()
}

func (d *Driver) SetupAxis(axis implot.Axis, label string, flags implot.AxisFlags) {
	// The native call distinguishes a null label (slot keeps its
	// default name) from an empty one.
	d.imSetupAxis(int32(axis), cstr.PtrOrNil(label), int32(flags))
}

func (d *Driver) SetupAxisLimits(axis implot.Axis, min, max float64, cond implot.Cond) {
	d.imSetupAxisLimits(int32(axis), min, max, int32(cond))
}

func (d *Driver) SetupAxisScale(axis implot.Axis, scale implot.AxisScale) {
	d.imSetupAxisScale(int32(axis), int32(scale))
}

func (d *Driver) SetupAxisTicks(axis implot.Axis, positions []float64, labels []string, keepDefault bool) {
	if len(positions) == 0 {
		return
	}
	ptrs, backing := cstr.Slice(labels)
	var lp **byte
	if len(ptrs) > 0 {
		lp = &ptrs[0]
	}
	d.imSetupAxisTicks(int32(axis), &positions[0], int32(len(positions)), lp, keepDefault)
	runtime.KeepAlive(ptrs)
	runtime.KeepAlive(backing)
}

func (d *Driver) SetupAxisLinks(axis implot.Axis, min, max *float64) {
	d.imSetupAxisLinks(int32(axis), min, max)
}

func (d *Driver) SetupLegend(location implot.Location, flags implot.LegendFlags) {
	d.imSetupLegend(int32(location), int32(flags))
}

func (d *Driver) SetAxes(x, y implot.Axis) {
	d.imSetAxes(int32(x), int32(y))
}

// compact returns a stride-1 prefix of v, copying only when the view
// skips elements.
func compact(v implot.DataView) []float64 {
	if v.Stride() == 1 {
		return v.Values()[:v.Count()]
	}
	out := make([]float64, v.Count())
	for i := range out {
		out[i] = v.At(i)
	}
	return out
}

// pair prepares two views for a native series call. The native API
// applies a single byte stride to both arrays, so views with matching
// strides pass straight through and mixed strides are compacted first.
func pair(xs, ys implot.DataView) (xp, yp *float64, count, stride int32) {
	n := xs.Count()
	if ys.Count() < n {
		n = ys.Count()
	}
	if n == 0 {
		return nil, nil, 0, 8
	}
	if xs.Stride() == ys.Stride() {
		return &xs.Values()[0], &ys.Values()[0], int32(n), int32(xs.Stride() * 8)
	}
	cx, cy := compact(xs), compact(ys)
	return &cx[0], &cy[0], int32(n), 8
}

func (d *Driver) PlotLine(label string, xs, ys implot.DataView, flags implot.LineFlags) {
	xp, yp, n, stride := pair(xs, ys)
	if n == 0 {
		return
	}
	d.imPlotLine(label, xp, yp, n, int32(flags), 0, stride)
}

func (d *Driver) PlotScatter(label string, xs, ys implot.DataView, flags implot.ScatterFlags) {
	xp, yp, n, stride := pair(xs, ys)
	if n == 0 {
		return
	}
	d.imPlotScatter(label, xp, yp, n, int32(flags), 0, stride)
}

func (d *Driver) PlotStairs(label string, xs, ys implot.DataView, flags implot.StairsFlags) {
	xp, yp, n, stride := pair(xs, ys)
	if n == 0 {
		return
	}
	d.imPlotStairs(label, xp, yp, n, int32(flags), 0, stride)
}

func (d *Driver) PlotShaded(label string, xs, ys implot.DataView, ref float64, flags implot.ShadedFlags) {
	xp, yp, n, stride := pair(xs, ys)
	if n == 0 {
		return
	}
	d.imPlotShaded(label, xp, yp, n, ref, int32(flags), 0, stride)
}

func (d *Driver) PlotBars(label string, xs, ys implot.DataView, width float64, flags implot.BarsFlags) {
	xp, yp, n, stride := pair(xs, ys)
	if n == 0 {
		return
	}
	d.imPlotBars(label, xp, yp, n, width, int32(flags), 0, stride)
}

func (d *Driver) PlotStems(label string, xs, ys implot.DataView, ref float64, flags implot.StemsFlags) {
	xp, yp, n, stride := pair(xs, ys)
	if n == 0 {
		return
	}
	d.imPlotStems(label, xp, yp, n, ref, int32(flags), 0, stride)
}

func (d *Driver) PlotText(text string, x, y float64, offset implot.Vec2, flags implot.TextFlags) {
	d.imPlotText(text, x, y, vec2{X: offset.X, Y: offset.Y}, int32(flags))
}

func (d *Driver) PlotHeatmap(label string, values implot.DataView, rows, cols int, scaleMin, scaleMax float64, format string, boundsMin, boundsMax implot.Point, flags implot.HeatmapFlags) {
	// The native heatmap call takes no stride, so the values must be
	// contiguous.
	vals := compact(values)
	if len(vals) == 0 {
		return
	}
	d.imPlotHeatmap(label, &vals[0], int32(rows), int32(cols), scaleMin, scaleMax,
		cstr.PtrOrNil(format),
		plotPoint{X: boundsMin.X, Y: boundsMin.Y},
		plotPoint{X: boundsMax.X, Y: boundsMax.Y},
		int32(flags))
	runtime.KeepAlive(vals)
}

func (d *Driver) PushStyleColor(target implot.PlotColor, r, g, b, a float32) {
	d.imPushStyleColor(int32(target), vec4{X: r, Y: g, Z: b, W: a})
}

func (d *Driver) PopStyleColor(count int) {
	d.imPopStyleColor(int32(count))
}

func (d *Driver) PushStyleVarFloat(v implot.StyleVar, value float32) {
	d.imPushStyleVarFloat(int32(v), value)
}

func (d *Driver) PushStyleVarInt(v implot.StyleVar, value int32) {
	d.imPushStyleVarInt(int32(v), value)
}

func (d *Driver) PushStyleVarVec2(v implot.StyleVar, value implot.Vec2) {
	d.imPushStyleVarVec2(int32(v), vec2{X: value.X, Y: value.Y})
}

func (d *Driver) PopStyleVar(count int) {
	d.imPopStyleVar(int32(count))
}

func (d *Driver) PushColormap(cm implot.Colormap) {
	d.imPushColormap(int32(cm))
}

func (d *Driver) PopColormap(count int) {
	d.imPopColormap(int32(count))
}

// packABGR packs a color into the native 32-bit layout, alpha in the
// top byte and red in the bottom one.
func packABGR(c color.RGBA) uint32 {
	return uint32(c.A)<<24 | uint32(c.B)<<16 | uint32(c.G)<<8 | uint32(c.R)
}

// AddColormap registers a custom colormap with the native library and
// returns its index.
func (d *Driver) AddColormap(name string, colors []color.RGBA, qualitative bool) implot.Colormap {
	packed := make([]uint32, len(colors))
	for i, c := range colors {
		packed[i] = packABGR(c)
	}
	cm := d.imAddColormap(name, &packed[0], int32(len(packed)), qualitative)
	runtime.KeepAlive(packed)
	return implot.Colormap(cm)
}

func (d *Driver) IsPlotHovered() bool {
	return d.imIsPlotHovered()
}

func (d *Driver) IsAxisHovered(axis implot.Axis) bool {
	return d.imIsAxisHovered(int32(axis))
}

func (d *Driver) IsLegendEntryHovered(label string) bool {
	return d.imIsLegendEntryHovered(label)
}

func (d *Driver) PlotMousePos(x, y implot.Axis) implot.Point {
	var out plotPoint
	d.imGetPlotMousePos(&out, int32(x), int32(y))
	return implot.Pt(out.X, out.Y)
}

func (d *Driver) PlotLimits(x, y implot.Axis) implot.Rect {
	var out plotRect
	d.imGetPlotLimits(&out, int32(x), int32(y))
	return implot.Rect{
		X: implot.Rng(out.X.Min, out.X.Max),
		Y: implot.Rng(out.Y.Min, out.Y.Max),
	}
}

func (d *Driver) PixelsToPlot(p implot.Vec2, x, y implot.Axis) implot.Point {
	var out plotPoint
	d.imPixelsToPlot(&out, p.X, p.Y, int32(x), int32(y))
	return implot.Pt(out.X, out.Y)
}

func (d *Driver) PlotToPixels(p implot.Point, x, y implot.Axis) implot.Vec2 {
	var out vec2
	d.imPlotToPixels(&out, p.X, p.Y, int32(x), int32(y))
	return implot.V2(out.X, out.Y)
}

func (d *Driver) ShowDemoWindow(open *bool) {
	d.imShowDemoWindow(open)
}
