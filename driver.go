package implot

import (
	"fmt"
	"image/color"
	"sort"
	"sync"
)

// Driver is the narrow seam between the safety layer and the native
// plotting library. Each method mirrors one native entry point; the
// safety layer performs all validation (context liveness, nesting,
// bounds, closed-set membership) before a method is called, so driver
// implementations translate arguments and nothing else.
//
// Frame-path methods carry no error returns: once a driver is
// initialized, the native immediate-mode calls cannot fail
// structurally. Errors exist only where resources are acquired.
type Driver interface {
	// Name identifies the driver ("ffi", "mock", ...).
	Name() string

	// Init acquires the native library. Called once before any other
	// method; an error aborts context creation.
	Init() error

	// Close releases the native library. No other method is called
	// after Close.
	Close() error

	// Context management.

	CreateContext() error
	DestroyContext()
	BindHostContext(handle uintptr)

	// Begin/end pairs. The begin calls report whether the plot is
	// drawn this frame; a false return must not be paired with the
	// corresponding end call.

	BeginPlot(title string, size Vec2, flags PlotFlags) bool
	EndPlot()
	BeginSubplots(title string, rows, cols int, size Vec2, flags SubplotFlags, rowRatios, colRatios []float32) bool
	EndSubplots()
	BeginLegendPopup(label string, button MouseButton) bool
	EndLegendPopup()
	BeginDragDropTargetPlot() bool
	BeginDragDropTargetAxis(axis Axis) bool
	BeginDragDropTargetLegend() bool
	EndDragDropTarget()
	BeginDragDropSourcePlot() bool
	BeginDragDropSourceAxis(axis Axis) bool
	BeginDragDropSourceItem(label string) bool
	EndDragDropSource()

	// Setup calls, valid between a begin and the first series call.

	SetupAxis(axis Axis, label string, flags AxisFlags)
	SetupAxisLimits(axis Axis, min, max float64, cond Cond)
	SetupAxisScale(axis Axis, scale AxisScale)
	SetupAxisTicks(axis Axis, positions []float64, labels []string, keepDefault bool)
	SetupAxisLinks(axis Axis, min, max *float64)
	SetupLegend(location Location, flags LegendFlags)
	SetAxes(x, y Axis)

	// Series calls. Data arrives as validated views; the driver
	// forwards pointer, count and byte stride to the native call.

	PlotLine(label string, xs, ys DataView, flags LineFlags)
	PlotScatter(label string, xs, ys DataView, flags ScatterFlags)
	PlotStairs(label string, xs, ys DataView, flags StairsFlags)
	PlotShaded(label string, xs, ys DataView, ref float64, flags ShadedFlags)
	PlotBars(label string, xs, ys DataView, width float64, flags BarsFlags)
	PlotStems(label string, xs, ys DataView, ref float64, flags StemsFlags)
	PlotText(text string, x, y float64, offset Vec2, flags TextFlags)
	// PlotHeatmap draws rows*cols values. An empty format disables
	// value labels. Zero scaleMin and scaleMax select automatic color
	// scaling.
	PlotHeatmap(label string, values DataView, rows, cols int, scaleMin, scaleMax float64, format string, boundsMin, boundsMax Point, flags HeatmapFlags)

	// Style stack.

	PushStyleColor(target PlotColor, r, g, b, a float32)
	PopStyleColor(count int)
	PushStyleVarFloat(v StyleVar, value float32)
	PushStyleVarInt(v StyleVar, value int32)
	PushStyleVarVec2(v StyleVar, value Vec2)
	PopStyleVar(count int)
	PushColormap(cm Colormap)
	PopColormap(count int)
	// AddColormap registers a custom colormap and returns its native
	// index.
	AddColormap(name string, colors []color.RGBA, qualitative bool) Colormap

	// Queries, valid while a plot is open.

	IsPlotHovered() bool
	IsAxisHovered(axis Axis) bool
	IsLegendEntryHovered(label string) bool
	PlotMousePos(x, y Axis) Point
	PlotLimits(x, y Axis) Rect
	PixelsToPlot(p Vec2, x, y Axis) Point
	PlotToPixels(p Point, x, y Axis) Vec2

	// ShowDemoWindow draws the native demo window, for integration
	// smoke tests.
	ShowDemoWindow(open *bool)
}

// DriverFactory creates a driver instance. Factories are registered by
// driver packages in their init function; creating is cheap, Init does
// the heavy lifting.
type DriverFactory func() Driver

// DriverFFI is the name of the purego-based driver in driver/ffi.
const DriverFFI = "ffi"

// driverPriority is the order in which DefaultDriver tries registered
// drivers.
var driverPriority = []string{DriverFFI}

var (
	driverMu sync.RWMutex
	drivers  = make(map[string]DriverFactory)

	// activeDriver is the driver owned by the live context, kept here
	// so SetLogger can reach it without a context handle.
	activeDriver Driver
)

// RegisterDriver makes a driver available under the given name,
// replacing any previous registration.
func RegisterDriver(name string, factory DriverFactory) {
	driverMu.Lock()
	defer driverMu.Unlock()
	drivers[name] = factory
}

// UnregisterDriver removes a driver from the registry.
// This is useful for testing.
func UnregisterDriver(name string) {
	driverMu.Lock()
	defer driverMu.Unlock()
	delete(drivers, name)
}

// Drivers returns the sorted names of all registered drivers.
func Drivers() []string {
	driverMu.RLock()
	defer driverMu.RUnlock()
	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsDriverRegistered reports whether a driver is registered under the
// given name.
func IsDriverRegistered(name string) bool {
	driverMu.RLock()
	defer driverMu.RUnlock()
	_, ok := drivers[name]
	return ok
}

// newDriver instantiates a registered driver by name.
func newDriver(name string) (Driver, error) {
	driverMu.RLock()
	factory, ok := drivers[name]
	driverMu.RUnlock()
	if !ok || factory == nil {
		return nil, fmt.Errorf("implot: unknown driver %q: %w", name, ErrNoDriver)
	}
	d := factory()
	if d == nil {
		return nil, fmt.Errorf("implot: driver %q factory returned nil: %w", name, ErrNoDriver)
	}
	return d, nil
}

// DefaultDriver instantiates the preferred registered driver: the
// priority list first, then any other registration in name order.
// CreateContext uses it when no WithDriver or WithDriverName option is
// given.
func DefaultDriver() (Driver, error) {
	for _, name := range driverPriority {
		if IsDriverRegistered(name) {
			return newDriver(name)
		}
	}
	for _, name := range Drivers() {
		return newDriver(name)
	}
	return nil, ErrNoDriver
}

// setActiveDriver records the driver owned by the live context and
// hands it the current logger.
func setActiveDriver(d Driver) {
	driverMu.Lock()
	activeDriver = d
	driverMu.Unlock()
	if d != nil {
		propagateLogger(d, Logger())
	}
}
