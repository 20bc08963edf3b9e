package implot

import "fmt"

// The closed enum sets below mirror the native plotting library's
// values one to one. Host-to-native conversion is total because the
// constants carry their native value; native-to-host conversion goes
// through the FromNative functions, which reject values outside the
// known set with ErrUnrecognizedValue rather than aliasing them.

// Axis identifies one of the six axis slots of a plot: three X axes
// and three Y axes.
type Axis int32

const (
	AxisX1 Axis = iota
	AxisX2
	AxisX3
	AxisY1
	AxisY2
	AxisY3

	axisCount = 6
)

// NumXAxes and NumYAxes are the number of axis slots per orientation.
const (
	NumXAxes = 3
	NumYAxes = 3
)

// IsX reports whether the axis is one of the X slots.
func (a Axis) IsX() bool { return a >= AxisX1 && a <= AxisX3 }

// IsY reports whether the axis is one of the Y slots.
func (a Axis) IsY() bool { return a >= AxisY1 && a <= AxisY3 }

func (a Axis) valid() bool { return a >= AxisX1 && a < axisCount }

// String returns the conventional axis name (X1..Y3).
func (a Axis) String() string {
	switch a {
	case AxisX1:
		return "X1"
	case AxisX2:
		return "X2"
	case AxisX3:
		return "X3"
	case AxisY1:
		return "Y1"
	case AxisY2:
		return "Y2"
	case AxisY3:
		return "Y3"
	}
	return fmt.Sprintf("Axis(%d)", int32(a))
}

// AxisFromNative converts a native axis index into an Axis.
func AxisFromNative(v int32) (Axis, error) {
	if a := Axis(v); a.valid() {
		return a, nil
	}
	return 0, fmt.Errorf("implot: axis %d: %w", v, ErrUnrecognizedValue)
}

// AxisScale selects the transform applied to an axis.
type AxisScale int32

const (
	ScaleLinear AxisScale = iota
	ScaleTime
	ScaleLog10
	ScaleSymLog

	axisScaleCount
)

// AxisScaleFromNative converts a native scale value into an AxisScale.
func AxisScaleFromNative(v int32) (AxisScale, error) {
	if s := AxisScale(v); s >= ScaleLinear && s < axisScaleCount {
		return s, nil
	}
	return 0, fmt.Errorf("implot: axis scale %d: %w", v, ErrUnrecognizedValue)
}

// Cond controls when a setup value is applied: on every frame, or only
// the first time the plot is seen.
type Cond int32

const (
	CondNone   Cond = 0
	CondAlways Cond = 1
	CondOnce   Cond = 2
)

// CondFromNative converts a native condition value into a Cond.
func CondFromNative(v int32) (Cond, error) {
	switch c := Cond(v); c {
	case CondNone, CondAlways, CondOnce:
		return c, nil
	}
	return 0, fmt.Errorf("implot: condition %d: %w", v, ErrUnrecognizedValue)
}

// Marker selects the glyph drawn at each data point.
type Marker int32

const (
	MarkerNone Marker = iota - 1
	MarkerCircle
	MarkerSquare
	MarkerDiamond
	MarkerUp
	MarkerDown
	MarkerLeft
	MarkerRight
	MarkerCross
	MarkerPlus
	MarkerAsterisk

	markerCount
)

// MarkerFromNative converts a native marker value into a Marker.
func MarkerFromNative(v int32) (Marker, error) {
	if m := Marker(v); m >= MarkerNone && m < markerCount {
		return m, nil
	}
	return 0, fmt.Errorf("implot: marker %d: %w", v, ErrUnrecognizedValue)
}

// Colormap identifies a colormap: one of the built-in presets, or a
// value returned by Context.AddColormap.
type Colormap int32

const (
	ColormapDeep Colormap = iota
	ColormapDark
	ColormapPastel
	ColormapPaired
	ColormapViridis
	ColormapPlasma
	ColormapHot
	ColormapCool
	ColormapPink
	ColormapJet
	ColormapTwilight
	ColormapRdBu
	ColormapBrBG
	ColormapPiYG
	ColormapSpectral
	ColormapGreys

	colormapPresetCount
)

// ColormapFromNative converts a native colormap value into a Colormap.
// Only the built-in presets are recognized; custom maps are known
// through the Context that registered them.
func ColormapFromNative(v int32) (Colormap, error) {
	if c := Colormap(v); c >= ColormapDeep && c < colormapPresetCount {
		return c, nil
	}
	return 0, fmt.Errorf("implot: colormap %d: %w", v, ErrUnrecognizedValue)
}

// PlotColor identifies a style color target for PushStyleColor.
type PlotColor int32

const (
	PlotColorLine PlotColor = iota
	PlotColorFill
	PlotColorMarkerOutline
	PlotColorMarkerFill
	PlotColorErrorBar
	PlotColorFrameBg
	PlotColorPlotBg
	PlotColorPlotBorder
	PlotColorLegendBg
	PlotColorLegendBorder
	PlotColorLegendText
	PlotColorTitleText
	PlotColorInlayText
	PlotColorAxisText
	PlotColorAxisGrid
	PlotColorAxisTick
	PlotColorAxisBg
	PlotColorAxisBgHovered
	PlotColorAxisBgActive
	PlotColorSelection
	PlotColorCrosshairs

	plotColorCount
)

// PlotColorFromNative converts a native style color index into a
// PlotColor.
func PlotColorFromNative(v int32) (PlotColor, error) {
	if c := PlotColor(v); c >= PlotColorLine && c < plotColorCount {
		return c, nil
	}
	return 0, fmt.Errorf("implot: style color %d: %w", v, ErrUnrecognizedValue)
}

// StyleVar identifies a style variable target for the PushStyleVar
// family. Every variable has a fixed element kind (float, int or
// 2-vector); pushing with the wrong kind is rejected before the native
// call.
type StyleVar int32

const (
	StyleVarLineWeight StyleVar = iota // float, plot item line weight in pixels
	StyleVarMarker                     // int, marker specification
	StyleVarMarkerSize                 // float, marker size in pixels (radius)
	StyleVarMarkerWeight               // float, marker outline weight in pixels
	StyleVarFillAlpha                  // float, alpha modifier for all fills
	StyleVarErrorBarSize               // float, error bar whisker width in pixels
	StyleVarErrorBarWeight             // float, error bar whisker weight in pixels
	StyleVarDigitalBitHeight           // float, digital channel bit height
	StyleVarDigitalBitGap              // float, digital channel bit gap
	StyleVarPlotBorderSize             // float, plot area border thickness
	StyleVarMinorAlpha                 // float, alpha multiplier of minor grid lines
	StyleVarMajorTickLen               // vec2, major tick lengths for X and Y
	StyleVarMinorTickLen               // vec2, minor tick lengths for X and Y
	StyleVarMajorTickSize              // vec2, major tick line thickness
	StyleVarMinorTickSize              // vec2, minor tick line thickness
	StyleVarMajorGridSize              // vec2, major grid line thickness
	StyleVarMinorGridSize              // vec2, minor grid line thickness
	StyleVarPlotPadding                // vec2, padding between frame and plot area
	StyleVarLabelPadding               // vec2, padding between axes and labels
	StyleVarLegendPadding              // vec2, legend padding from plot edges
	StyleVarLegendInnerPadding         // vec2, legend inner padding from border
	StyleVarLegendSpacing              // vec2, spacing between legend entries
	StyleVarMousePosPadding            // vec2, mouse position text padding
	StyleVarAnnotationPadding          // vec2, annotation label padding
	StyleVarFitPadding                 // vec2, extra fit padding as a fraction
	StyleVarPlotDefaultSize            // vec2, default plot size
	StyleVarPlotMinSize                // vec2, minimum plot size

	styleVarCount
)

// styleVarKind is the element kind a style variable accepts.
type styleVarKind uint8

const (
	styleVarFloat styleVarKind = iota
	styleVarInt
	styleVarVec2
)

var styleVarKinds = [styleVarCount]styleVarKind{
	StyleVarLineWeight:         styleVarFloat,
	StyleVarMarker:             styleVarInt,
	StyleVarMarkerSize:         styleVarFloat,
	StyleVarMarkerWeight:       styleVarFloat,
	StyleVarFillAlpha:          styleVarFloat,
	StyleVarErrorBarSize:       styleVarFloat,
	StyleVarErrorBarWeight:     styleVarFloat,
	StyleVarDigitalBitHeight:   styleVarFloat,
	StyleVarDigitalBitGap:      styleVarFloat,
	StyleVarPlotBorderSize:     styleVarFloat,
	StyleVarMinorAlpha:         styleVarFloat,
	StyleVarMajorTickLen:       styleVarVec2,
	StyleVarMinorTickLen:       styleVarVec2,
	StyleVarMajorTickSize:      styleVarVec2,
	StyleVarMinorTickSize:      styleVarVec2,
	StyleVarMajorGridSize:      styleVarVec2,
	StyleVarMinorGridSize:      styleVarVec2,
	StyleVarPlotPadding:        styleVarVec2,
	StyleVarLabelPadding:       styleVarVec2,
	StyleVarLegendPadding:      styleVarVec2,
	StyleVarLegendInnerPadding: styleVarVec2,
	StyleVarLegendSpacing:      styleVarVec2,
	StyleVarMousePosPadding:    styleVarVec2,
	StyleVarAnnotationPadding:  styleVarVec2,
	StyleVarFitPadding:         styleVarVec2,
	StyleVarPlotDefaultSize:    styleVarVec2,
	StyleVarPlotMinSize:        styleVarVec2,
}

func (v StyleVar) valid() bool { return v >= StyleVarLineWeight && v < styleVarCount }

func (v StyleVar) kind() styleVarKind { return styleVarKinds[v] }

// StyleVarFromNative converts a native style variable index into a
// StyleVar.
func StyleVarFromNative(v int32) (StyleVar, error) {
	if s := StyleVar(v); s.valid() {
		return s, nil
	}
	return 0, fmt.Errorf("implot: style var %d: %w", v, ErrUnrecognizedValue)
}

// MouseButton identifies a mouse button in the GUI library's
// numbering.
type MouseButton int32

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle

	mouseButtonCount
)

// MouseButtonFromNative converts a native mouse button index into a
// MouseButton.
func MouseButtonFromNative(v int32) (MouseButton, error) {
	if b := MouseButton(v); b >= MouseLeft && b < mouseButtonCount {
		return b, nil
	}
	return 0, fmt.Errorf("implot: mouse button %d: %w", v, ErrUnrecognizedValue)
}

// Location positions an element (legend, subplot title) relative to a
// plot. The cardinal members combine: LocationNorthWest is
// LocationNorth|LocationWest.
type Location int32

const (
	LocationCenter    Location = 0
	LocationNorth     Location = 1 << 0
	LocationSouth     Location = 1 << 1
	LocationWest      Location = 1 << 2
	LocationEast      Location = 1 << 3
	LocationNorthWest Location = LocationNorth | LocationWest
	LocationNorthEast Location = LocationNorth | LocationEast
	LocationSouthWest Location = LocationSouth | LocationWest
	LocationSouthEast Location = LocationSouth | LocationEast
)

// LocationFromNative converts a native location value into a Location.
func LocationFromNative(v int32) (Location, error) {
	switch l := Location(v); l {
	case LocationCenter, LocationNorth, LocationSouth, LocationWest, LocationEast,
		LocationNorthWest, LocationNorthEast, LocationSouthWest, LocationSouthEast:
		return l, nil
	}
	return 0, fmt.Errorf("implot: location %d: %w", v, ErrUnrecognizedValue)
}
