package implot

import "fmt"

// Bit flags mirroring the native library's flag sets, one typed set
// per native enum. Series flag sets start at bit 10 because the
// native library reserves the low bits for item-level flags.

// PlotFlags customize a whole plot.
type PlotFlags uint32

const (
	PlotNone PlotFlags = 0
)

const (
	PlotNoTitle PlotFlags = 1 << iota
	PlotNoLegend
	PlotNoMouseText
	PlotNoInputs
	PlotNoMenus
	PlotNoBoxSelect
	PlotNoFrame
	PlotEqual
	PlotCrosshairs
)

// PlotCanvasOnly strips every decoration, leaving only the plot area.
const PlotCanvasOnly = PlotNoTitle | PlotNoLegend | PlotNoMenus | PlotNoBoxSelect | PlotNoMouseText

const plotFlagsMask = PlotNoTitle | PlotNoLegend | PlotNoMouseText | PlotNoInputs |
	PlotNoMenus | PlotNoBoxSelect | PlotNoFrame | PlotEqual | PlotCrosshairs

// AxisFlags customize a single axis.
type AxisFlags uint32

const (
	AxisNone AxisFlags = 0
)

const (
	AxisNoLabel AxisFlags = 1 << iota
	AxisNoGridLines
	AxisNoTickMarks
	AxisNoTickLabels
	AxisNoInitialFit
	AxisNoMenus
	AxisNoSideSwitch
	AxisNoHighlight
	AxisOpposite
	AxisForeground
	AxisInvert
	AxisAutoFit
	AxisRangeFit
	AxisPanStretch
	AxisLockMin
	AxisLockMax
)

const (
	// AxisLock locks both ends of the axis range.
	AxisLock = AxisLockMin | AxisLockMax
	// AxisNoDecorations hides the label, grid, ticks and tick labels.
	AxisNoDecorations = AxisNoLabel | AxisNoGridLines | AxisNoTickMarks | AxisNoTickLabels
	// AxisAuxDefault is the conventional styling for auxiliary axes.
	AxisAuxDefault = AxisNoGridLines | AxisOpposite
)

const axisFlagsMask AxisFlags = 1<<16 - 1

// SubplotFlags customize a subplot grid.
type SubplotFlags uint32

const (
	SubplotNone SubplotFlags = 0
)

const (
	SubplotNoTitle SubplotFlags = 1 << iota
	SubplotNoLegend
	SubplotNoMenus
	SubplotNoResize
	SubplotNoAlign
	SubplotShareItems
	SubplotLinkRows
	SubplotLinkCols
	SubplotLinkAllX
	SubplotLinkAllY
	SubplotColMajor
)

const subplotFlagsMask SubplotFlags = 1<<11 - 1

// LegendFlags customize a plot legend.
type LegendFlags uint32

const (
	LegendNone LegendFlags = 0
)

const (
	LegendNoButtons LegendFlags = 1 << iota
	LegendNoHighlightItem
	LegendNoHighlightAxis
	LegendNoMenus
	LegendOutside
	LegendHorizontal
	LegendSort
)

const legendFlagsMask LegendFlags = 1<<7 - 1

// LineFlags customize a line series.
type LineFlags uint32

const (
	LineNone     LineFlags = 0
	LineSegments LineFlags = 1 << 10 // render a segment from every two consecutive points
	LineLoop     LineFlags = 1 << 11 // connect the last point back to the first
	LineSkipNaN  LineFlags = 1 << 12 // skip NaN values instead of breaking the line
	LineNoClip   LineFlags = 1 << 13 // do not clip markers at the plot edge
	LineShaded   LineFlags = 1 << 14 // fill the region between the line and the horizontal origin
)

const lineFlagsMask = LineSegments | LineLoop | LineSkipNaN | LineNoClip | LineShaded

// ScatterFlags customize a scatter series.
type ScatterFlags uint32

const (
	ScatterNone   ScatterFlags = 0
	ScatterNoClip ScatterFlags = 1 << 10 // do not clip markers at the plot edge
)

const scatterFlagsMask = ScatterNoClip

// StairsFlags customize a stairstep series.
type StairsFlags uint32

const (
	StairsNone    StairsFlags = 0
	StairsPreStep StairsFlags = 1 << 10 // extend each y value to the left of its x position
	StairsShaded  StairsFlags = 1 << 11 // fill the region between the stairs and the horizontal origin
)

const stairsFlagsMask = StairsPreStep | StairsShaded

// ShadedFlags customize a shaded-region series.
type ShadedFlags uint32

const (
	ShadedNone ShadedFlags = 0
)

const shadedFlagsMask ShadedFlags = 0

// BarsFlags customize a bar series.
type BarsFlags uint32

const (
	BarsNone       BarsFlags = 0
	BarsHorizontal BarsFlags = 1 << 10 // bars extend along the X axis from a Y position
)

const barsFlagsMask = BarsHorizontal

// StemsFlags customize a stem series.
type StemsFlags uint32

const (
	StemsNone       StemsFlags = 0
	StemsHorizontal StemsFlags = 1 << 10 // stems extend horizontally on the current Y axis
)

const stemsFlagsMask = StemsHorizontal

// TextFlags customize a text label.
type TextFlags uint32

const (
	TextNone     TextFlags = 0
	TextVertical TextFlags = 1 << 10 // render the text rotated 90 degrees
)

const textFlagsMask = TextVertical

// HeatmapFlags customize a heatmap series.
type HeatmapFlags uint32

const (
	HeatmapNone     HeatmapFlags = 0
	HeatmapColMajor HeatmapFlags = 1 << 10 // read values in column-major order
)

const heatmapFlagsMask = HeatmapColMajor

// flagsFromNative validates a native flag word against the known mask
// of a flag set. Bits outside the mask mean the native library is
// newer than the binding; those values are rejected, not aliased.
func flagsFromNative[F ~uint32](v int32, mask F, set string) (F, error) {
	f := F(uint32(v))
	if bad := f &^ mask; bad != 0 {
		return 0, fmt.Errorf("implot: %s 0x%x: %w", set, uint32(bad), ErrUnrecognizedValue)
	}
	return f, nil
}

// PlotFlagsFromNative converts a native flag word into PlotFlags.
func PlotFlagsFromNative(v int32) (PlotFlags, error) {
	return flagsFromNative(v, plotFlagsMask, "plot flags")
}

// AxisFlagsFromNative converts a native flag word into AxisFlags.
func AxisFlagsFromNative(v int32) (AxisFlags, error) {
	return flagsFromNative(v, axisFlagsMask, "axis flags")
}

// SubplotFlagsFromNative converts a native flag word into SubplotFlags.
func SubplotFlagsFromNative(v int32) (SubplotFlags, error) {
	return flagsFromNative(v, subplotFlagsMask, "subplot flags")
}

// LegendFlagsFromNative converts a native flag word into LegendFlags.
func LegendFlagsFromNative(v int32) (LegendFlags, error) {
	return flagsFromNative(v, legendFlagsMask, "legend flags")
}

// LineFlagsFromNative converts a native flag word into LineFlags.
func LineFlagsFromNative(v int32) (LineFlags, error) {
	return flagsFromNative(v, lineFlagsMask, "line flags")
}

// ScatterFlagsFromNative converts a native flag word into ScatterFlags.
func ScatterFlagsFromNative(v int32) (ScatterFlags, error) {
	return flagsFromNative(v, scatterFlagsMask, "scatter flags")
}

// StairsFlagsFromNative converts a native flag word into StairsFlags.
func StairsFlagsFromNative(v int32) (StairsFlags, error) {
	return flagsFromNative(v, stairsFlagsMask, "stairs flags")
}

// ShadedFlagsFromNative converts a native flag word into ShadedFlags.
func ShadedFlagsFromNative(v int32) (ShadedFlags, error) {
	return flagsFromNative(v, shadedFlagsMask, "shaded flags")
}

// BarsFlagsFromNative converts a native flag word into BarsFlags.
func BarsFlagsFromNative(v int32) (BarsFlags, error) {
	return flagsFromNative(v, barsFlagsMask, "bars flags")
}

// StemsFlagsFromNative converts a native flag word into StemsFlags.
func StemsFlagsFromNative(v int32) (StemsFlags, error) {
	return flagsFromNative(v, stemsFlagsMask, "stems flags")
}

// TextFlagsFromNative converts a native flag word into TextFlags.
func TextFlagsFromNative(v int32) (TextFlags, error) {
	return flagsFromNative(v, textFlagsMask, "text flags")
}

// HeatmapFlagsFromNative converts a native flag word into HeatmapFlags.
func HeatmapFlagsFromNative(v int32) (HeatmapFlags, error) {
	return flagsFromNative(v, heatmapFlagsMask, "heatmap flags")
}
