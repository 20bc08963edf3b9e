package implot

import (
	"errors"
	"testing"
)

func TestLegendPopup(t *testing.T) {
	_, ui, m, _ := newTestContext(t)
	m.legendPopupOpen = true

	withPlot(t, ui, func(tok *PlotToken) {
		lt, err := tok.BeginLegendPopup("series", MouseRight)
		if err != nil {
			t.Fatalf("BeginLegendPopup: %v", err)
		}
		if lt == nil {
			t.Fatal("no token for an open popup")
		}
		if err := lt.End(); err != nil {
			t.Fatalf("End: %v", err)
		}
	})
	if got := m.count("BeginLegendPopup"); got != 1 {
		t.Errorf("BeginLegendPopup calls = %d, want 1", got)
	}
	if got := m.count("EndLegendPopup"); got != 1 {
		t.Errorf("EndLegendPopup calls = %d, want 1", got)
	}
}

func TestLegendPopupClosed(t *testing.T) {
	_, ui, m, _ := newTestContext(t)

	withPlot(t, ui, func(tok *PlotToken) {
		lt, err := tok.BeginLegendPopup("series", MouseRight)
		if err != nil {
			t.Fatalf("BeginLegendPopup: %v", err)
		}
		if lt != nil {
			t.Fatal("token for a closed popup")
		}
	})
	if got := m.count("EndLegendPopup"); got != 0 {
		t.Errorf("EndLegendPopup calls = %d, want 0", got)
	}
}

func TestLegendPopupBadButton(t *testing.T) {
	_, ui, m, _ := newTestContext(t)

	withPlot(t, ui, func(tok *PlotToken) {
		if _, err := tok.BeginLegendPopup("series", MouseButton(5)); !errors.Is(err, ErrUnrecognizedValue) {
			t.Errorf("BeginLegendPopup(button 5) error = %v, want ErrUnrecognizedValue", err)
		}
	})
	if got := m.count("BeginLegendPopup"); got != 0 {
		t.Errorf("BeginLegendPopup calls = %d, want 0", got)
	}
}

func TestLegendPopupBlocksPlotEnd(t *testing.T) {
	_, ui, m, _ := newTestContext(t)
	m.legendPopupOpen = true

	tok, err := NewPlot("host").Begin(ui)
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	lt, err := tok.BeginLegendPopup("series", MouseRight)
	if err != nil {
		t.Fatalf("BeginLegendPopup: %v", err)
	}

	if err := tok.End(); !errors.Is(err, ErrInvalidNesting) {
		t.Fatalf("plot End with open popup error = %v, want ErrInvalidNesting", err)
	}
	if got := m.count("EndPlot"); got != 0 {
		t.Fatalf("EndPlot calls = %d, want 0 while the popup is open", got)
	}

	if err := lt.End(); err != nil {
		t.Fatalf("popup End: %v", err)
	}
	if err := tok.End(); err != nil {
		t.Fatalf("plot End after popup: %v", err)
	}
}

func TestLegendPopupEndTwice(t *testing.T) {
	_, ui, m, _ := newTestContext(t)
	m.legendPopupOpen = true

	withPlot(t, ui, func(tok *PlotToken) {
		lt, err := tok.BeginLegendPopup("series", MouseLeft)
		if err != nil {
			t.Fatalf("BeginLegendPopup: %v", err)
		}
		if err := lt.End(); err != nil {
			t.Fatalf("End: %v", err)
		}
		if err := lt.End(); !errors.Is(err, ErrInvalidNesting) {
			t.Fatalf("second End error = %v, want ErrInvalidNesting", err)
		}
	})
}

func TestDragDropTargets(t *testing.T) {
	_, ui, m, _ := newTestContext(t)
	m.dragDropActive = true

	withPlot(t, ui, func(tok *PlotToken) {
		begins := []func() (*DragDropToken, error){
			tok.BeginDragDropTargetPlot,
			func() (*DragDropToken, error) { return tok.BeginDragDropTargetAxis(AxisY1) },
			tok.BeginDragDropTargetLegend,
		}
		for i, begin := range begins {
			dt, err := begin()
			if err != nil {
				t.Fatalf("begin %d: %v", i, err)
			}
			if dt == nil {
				t.Fatalf("begin %d: no token for an active target", i)
			}
			if err := dt.End(); err != nil {
				t.Fatalf("end %d: %v", i, err)
			}
		}
	})
	if got := m.count("BeginDragDropTarget"); got != 3 {
		t.Errorf("BeginDragDropTarget calls = %d, want 3", got)
	}
	if got := m.count("EndDragDropTarget"); got != 3 {
		t.Errorf("EndDragDropTarget calls = %d, want 3", got)
	}
}

func TestDragDropInactive(t *testing.T) {
	_, ui, m, _ := newTestContext(t)

	withPlot(t, ui, func(tok *PlotToken) {
		dt, err := tok.BeginDragDropTargetPlot()
		if err != nil {
			t.Fatalf("BeginDragDropTargetPlot: %v", err)
		}
		if dt != nil {
			t.Fatal("token for an inactive target")
		}
	})
	if got := m.count("EndDragDropTarget"); got != 0 {
		t.Errorf("EndDragDropTarget calls = %d, want 0", got)
	}
}

func TestDragDropTargetsDoNotNest(t *testing.T) {
	_, ui, m, _ := newTestContext(t)
	m.dragDropActive = true

	withPlot(t, ui, func(tok *PlotToken) {
		dt, err := tok.BeginDragDropTargetPlot()
		if err != nil {
			t.Fatalf("first begin: %v", err)
		}
		if _, err := tok.BeginDragDropTargetLegend(); !errors.Is(err, ErrInvalidNesting) {
			t.Errorf("nested begin error = %v, want ErrInvalidNesting", err)
		}
		if err := dt.End(); err != nil {
			t.Fatalf("End: %v", err)
		}
	})
	if got := m.count("BeginDragDropTarget"); got != 1 {
		t.Errorf("BeginDragDropTarget calls = %d, want 1", got)
	}
}

func TestDragDropSources(t *testing.T) {
	_, ui, m, _ := newTestContext(t)
	m.dragDropActive = true

	withPlot(t, ui, func(tok *PlotToken) {
		begins := []func() (*DragDropToken, error){
			tok.BeginDragDropSourcePlot,
			func() (*DragDropToken, error) { return tok.BeginDragDropSourceAxis(AxisX1) },
			func() (*DragDropToken, error) { return tok.BeginDragDropSourceItem("series") },
		}
		for i, begin := range begins {
			dt, err := begin()
			if err != nil {
				t.Fatalf("begin %d: %v", i, err)
			}
			if dt == nil {
				t.Fatalf("begin %d: no token for an active source", i)
			}
			if err := dt.End(); err != nil {
				t.Fatalf("end %d: %v", i, err)
			}
		}
	})
	if got := m.count("BeginDragDropSource"); got != 3 {
		t.Errorf("BeginDragDropSource calls = %d, want 3", got)
	}
	if got := m.count("EndDragDropSource"); got != 3 {
		t.Errorf("EndDragDropSource calls = %d, want 3", got)
	}
	if got := m.count("EndDragDropTarget"); got != 0 {
		t.Errorf("EndDragDropTarget calls = %d, want 0 for source scopes", got)
	}
}

func TestDragDropSourceBlocksTarget(t *testing.T) {
	_, ui, m, _ := newTestContext(t)
	m.dragDropActive = true

	withPlot(t, ui, func(tok *PlotToken) {
		dt, err := tok.BeginDragDropSourceItem("series")
		if err != nil {
			t.Fatalf("BeginDragDropSourceItem: %v", err)
		}
		if _, err := tok.BeginDragDropTargetPlot(); !errors.Is(err, ErrInvalidNesting) {
			t.Errorf("target inside source error = %v, want ErrInvalidNesting", err)
		}
		if err := dt.End(); err != nil {
			t.Fatalf("End: %v", err)
		}
	})
	if got := m.count("BeginDragDropTarget"); got != 0 {
		t.Errorf("BeginDragDropTarget calls = %d, want 0", got)
	}
}

func TestDragDropBadAxis(t *testing.T) {
	_, ui, m, _ := newTestContext(t)
	m.dragDropActive = true

	withPlot(t, ui, func(tok *PlotToken) {
		if _, err := tok.BeginDragDropTargetAxis(Axis(9)); !errors.Is(err, ErrUnrecognizedValue) {
			t.Errorf("BeginDragDropTargetAxis(9) error = %v, want ErrUnrecognizedValue", err)
		}
	})
	if got := m.count("BeginDragDropTarget"); got != 0 {
		t.Errorf("BeginDragDropTarget calls = %d, want 0", got)
	}
}

func TestLegendPopupInsideDragDrop(t *testing.T) {
	_, ui, m, _ := newTestContext(t)
	m.dragDropActive = true
	m.legendPopupOpen = true

	withPlot(t, ui, func(tok *PlotToken) {
		dt, err := tok.BeginDragDropTargetPlot()
		if err != nil {
			t.Fatalf("BeginDragDropTargetPlot: %v", err)
		}
		if _, err := tok.BeginLegendPopup("series", MouseRight); !errors.Is(err, ErrInvalidNesting) {
			t.Errorf("popup inside drag-drop error = %v, want ErrInvalidNesting", err)
		}
		if err := dt.End(); err != nil {
			t.Fatalf("End: %v", err)
		}
	})
	if got := m.count("BeginLegendPopup"); got != 0 {
		t.Errorf("BeginLegendPopup calls = %d, want 0", got)
	}
}
