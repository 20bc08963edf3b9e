package implot

import (
	"errors"
	"testing"
)

func TestQueriesInsidePlot(t *testing.T) {
	_, ui, m, _ := newTestContext(t)
	m.hovered = true
	m.mousePos = Pt(2.5, -1.5)
	m.limits = Rect{X: Rng(0, 10), Y: Rng(-5, 5)}

	withPlot(t, ui, func(tok *PlotToken) {
		hovered, err := tok.IsHovered()
		if err != nil || !hovered {
			t.Errorf("IsHovered = (%t, %v), want (true, nil)", hovered, err)
		}
		hovered, err = tok.IsAxisHovered(AxisY2)
		if err != nil || !hovered {
			t.Errorf("IsAxisHovered = (%t, %v), want (true, nil)", hovered, err)
		}
		hovered, err = tok.IsLegendEntryHovered("series")
		if err != nil || !hovered {
			t.Errorf("IsLegendEntryHovered = (%t, %v), want (true, nil)", hovered, err)
		}

		pos, err := tok.MousePosition(AxisX1, AxisY1)
		if err != nil {
			t.Fatalf("MousePosition: %v", err)
		}
		if pos != m.mousePos {
			t.Errorf("MousePosition = %v, want %v", pos, m.mousePos)
		}

		limits, err := tok.Limits(AxisX1, AxisY1)
		if err != nil {
			t.Fatalf("Limits: %v", err)
		}
		if limits != m.limits {
			t.Errorf("Limits = %v, want %v", limits, m.limits)
		}
	})
}

func TestCoordinateTransforms(t *testing.T) {
	_, ui, m, _ := newTestContext(t)

	withPlot(t, ui, func(tok *PlotToken) {
		p, err := tok.PixelsToPlot(V2(120, 80), AxisX1, AxisY1)
		if err != nil {
			t.Fatalf("PixelsToPlot: %v", err)
		}
		if p != Pt(120, 80) {
			t.Errorf("PixelsToPlot = %v, want the mock echo (120, 80)", p)
		}

		v, err := tok.PlotToPixels(Pt(3, 4), AxisX2, AxisY3)
		if err != nil {
			t.Fatalf("PlotToPixels: %v", err)
		}
		if v != V2(3, 4) {
			t.Errorf("PlotToPixels = %v, want the mock echo (3, 4)", v)
		}
	})
	if got := m.count("PixelsToPlot"); got != 1 {
		t.Errorf("PixelsToPlot calls = %d, want 1", got)
	}
	if got := m.count("PlotToPixels"); got != 1 {
		t.Errorf("PlotToPixels calls = %d, want 1", got)
	}
}

func TestQueryBadAxisArguments(t *testing.T) {
	_, ui, m, _ := newTestContext(t)

	withPlot(t, ui, func(tok *PlotToken) {
		if _, err := tok.MousePosition(AxisY1, AxisX1); !errors.Is(err, ErrUnrecognizedValue) {
			t.Errorf("swapped MousePosition error = %v, want ErrUnrecognizedValue", err)
		}
		if _, err := tok.Limits(AxisX1, AxisX2); !errors.Is(err, ErrUnrecognizedValue) {
			t.Errorf("two X axes Limits error = %v, want ErrUnrecognizedValue", err)
		}
		if _, err := tok.IsAxisHovered(Axis(7)); !errors.Is(err, ErrUnrecognizedValue) {
			t.Errorf("IsAxisHovered(7) error = %v, want ErrUnrecognizedValue", err)
		}
	})
	if got := m.count("PlotMousePos"); got != 0 {
		t.Errorf("PlotMousePos calls = %d, want 0", got)
	}
	if got := m.count("PlotLimits"); got != 0 {
		t.Errorf("PlotLimits calls = %d, want 0", got)
	}
}

func TestQueryAfterEnd(t *testing.T) {
	_, ui, m, _ := newTestContext(t)

	tok, err := NewPlot("done").Begin(ui)
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := tok.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	if _, err := tok.IsHovered(); !errors.Is(err, ErrInvalidNesting) {
		t.Fatalf("IsHovered after End error = %v, want ErrInvalidNesting", err)
	}
	if got := m.count("IsPlotHovered"); got != 0 {
		t.Errorf("IsPlotHovered calls = %d, want 0", got)
	}
}
