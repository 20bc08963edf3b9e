package implot

import "fmt"

// LegendPopupToken is the proof that a legend entry's context popup is
// open.
type LegendPopupToken struct {
	ctx   *Context
	label string
	ended bool
}

// BeginLegendPopup opens a popup when the legend entry with the given
// label is clicked with button. Like plots, (nil, nil) means the popup
// is not open this frame and the body must be skipped.
func (t *PlotToken) BeginLegendPopup(label string, button MouseButton) (*LegendPopupToken, error) {
	if err := t.ensureOpen(); err != nil {
		return nil, err
	}
	c := t.ctx
	if button < MouseLeft || button >= mouseButtonCount {
		return nil, fmt.Errorf("implot: mouse button %d: %w", int32(button), ErrUnrecognizedValue)
	}
	if c.openLegend != nil {
		return nil, fmt.Errorf("implot: legend popup %q still open: %w", c.openLegend.label, ErrInvalidNesting)
	}
	if c.openDragDrop != nil {
		return nil, fmt.Errorf("implot: legend popup %q begun inside %s: %w",
			label, c.openDragDrop.scope(), ErrInvalidNesting)
	}

	if !c.driver.BeginLegendPopup(label, button) {
		return nil, nil
	}
	lt := &LegendPopupToken{ctx: c, label: label}
	c.openLegend = lt
	return lt, nil
}

// End closes the popup. A second End fails with ErrInvalidNesting.
func (t *LegendPopupToken) End() error {
	if t == nil {
		return fmt.Errorf("implot: legend popup end without begin: %w", ErrInvalidNesting)
	}
	c := t.ctx
	if t.ended {
		return fmt.Errorf("implot: legend popup %q already ended: %w", t.label, ErrInvalidNesting)
	}
	t.ended = true
	c.openLegend = nil
	if err := c.ensureLive(); err != nil {
		return err
	}
	c.driver.EndLegendPopup()
	return nil
}

// dragDropKind names the drag-drop anchor variants for error reports.
type dragDropKind uint8

const (
	dragDropPlot dragDropKind = iota
	dragDropAxis
	dragDropLegend
	dragDropItem
)

func (k dragDropKind) String() string {
	switch k {
	case dragDropAxis:
		return "axis"
	case dragDropLegend:
		return "legend"
	case dragDropItem:
		return "item"
	default:
		return "plot"
	}
}

// DragDropToken is the proof that a drag-drop scope is open: a target
// accepting a payload, or a source providing one. The host GUI
// binding's payload calls belong inside the scope.
type DragDropToken struct {
	ctx    *Context
	kind   dragDropKind
	source bool
	ended  bool
}

// scope describes the token for error reports.
func (t *DragDropToken) scope() string {
	if t.source {
		return fmt.Sprintf("drag-drop %s source", t.kind)
	}
	return fmt.Sprintf("drag-drop %s target", t.kind)
}

// BeginDragDropTargetPlot opens a drag-drop target covering the plot
// area. (nil, nil) means no payload is being dragged over the target
// this frame.
func (t *PlotToken) BeginDragDropTargetPlot() (*DragDropToken, error) {
	return t.beginDragDrop(dragDropPlot, false, func(d Driver) bool {
		return d.BeginDragDropTargetPlot()
	})
}

// BeginDragDropTargetAxis opens a drag-drop target covering one axis.
func (t *PlotToken) BeginDragDropTargetAxis(axis Axis) (*DragDropToken, error) {
	if !axis.valid() {
		return nil, fmt.Errorf("implot: axis %d: %w", int32(axis), ErrUnrecognizedValue)
	}
	return t.beginDragDrop(dragDropAxis, false, func(d Driver) bool {
		return d.BeginDragDropTargetAxis(axis)
	})
}

// BeginDragDropTargetLegend opens a drag-drop target covering the
// legend.
func (t *PlotToken) BeginDragDropTargetLegend() (*DragDropToken, error) {
	return t.beginDragDrop(dragDropLegend, false, func(d Driver) bool {
		return d.BeginDragDropTargetLegend()
	})
}

// BeginDragDropSourcePlot opens a drag-drop source anchored to the
// plot area. (nil, nil) means no drag starts from the plot this frame.
func (t *PlotToken) BeginDragDropSourcePlot() (*DragDropToken, error) {
	return t.beginDragDrop(dragDropPlot, true, func(d Driver) bool {
		return d.BeginDragDropSourcePlot()
	})
}

// BeginDragDropSourceAxis opens a drag-drop source anchored to one
// axis.
func (t *PlotToken) BeginDragDropSourceAxis(axis Axis) (*DragDropToken, error) {
	if !axis.valid() {
		return nil, fmt.Errorf("implot: axis %d: %w", int32(axis), ErrUnrecognizedValue)
	}
	return t.beginDragDrop(dragDropAxis, true, func(d Driver) bool {
		return d.BeginDragDropSourceAxis(axis)
	})
}

// BeginDragDropSourceItem opens a drag-drop source anchored to the
// legend item with the given label.
func (t *PlotToken) BeginDragDropSourceItem(label string) (*DragDropToken, error) {
	return t.beginDragDrop(dragDropItem, true, func(d Driver) bool {
		return d.BeginDragDropSourceItem(label)
	})
}

func (t *PlotToken) beginDragDrop(kind dragDropKind, source bool, begin func(Driver) bool) (*DragDropToken, error) {
	if err := t.ensureOpen(); err != nil {
		return nil, err
	}
	c := t.ctx
	if c.openDragDrop != nil {
		return nil, fmt.Errorf("implot: %s still open: %w", c.openDragDrop.scope(), ErrInvalidNesting)
	}
	if c.openLegend != nil {
		return nil, fmt.Errorf("implot: drag-drop scope begun inside legend popup %q: %w",
			c.openLegend.label, ErrInvalidNesting)
	}

	if !begin(c.driver) {
		return nil, nil
	}
	dt := &DragDropToken{ctx: c, kind: kind, source: source}
	c.openDragDrop = dt
	return dt, nil
}

// End closes the drag-drop scope.
func (t *DragDropToken) End() error {
	if t == nil {
		return fmt.Errorf("implot: drag-drop end without begin: %w", ErrInvalidNesting)
	}
	c := t.ctx
	if t.ended {
		return fmt.Errorf("implot: %s already ended: %w", t.scope(), ErrInvalidNesting)
	}
	t.ended = true
	c.openDragDrop = nil
	if err := c.ensureLive(); err != nil {
		return err
	}
	if t.source {
		c.driver.EndDragDropSource()
	} else {
		c.driver.EndDragDropTarget()
	}
	return nil
}
