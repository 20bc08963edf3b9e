package implot

import "fmt"

// Subplots configures a grid of plots sharing one region. Open it
// with Begin or Build, then open one plot per cell inside; the native
// library advances through cells in row-major order (column-major with
// SubplotColMajor).
type Subplots struct {
	title     string
	rows      int
	cols      int
	size      Vec2
	flags     SubplotFlags
	rowRatios []float32
	colRatios []float32

	err error
}

// NewSubplots creates a rows x cols subplot grid configuration.
func NewSubplots(title string, rows, cols int) *Subplots {
	s := &Subplots{
		title: title,
		rows:  rows,
		cols:  cols,
		size:  V2(defaultPlotWidth, defaultPlotHeight),
	}
	if rows < 1 || cols < 1 {
		s.err = fmt.Errorf("implot: subplots %q grid %dx%d: %w", title, rows, cols, ErrOutOfBounds)
	}
	return s
}

// Size sets the total size of the grid in pixels.
func (s *Subplots) Size(width, height float32) *Subplots {
	s.size = V2(width, height)
	return s
}

// Flags sets the subplot flags.
func (s *Subplots) Flags(flags SubplotFlags) *Subplots {
	if bad := flags &^ subplotFlagsMask; bad != 0 {
		s.fail(fmt.Errorf("implot: subplot flags 0x%x: %w", uint32(bad), ErrUnrecognizedValue))
		return s
	}
	s.flags = flags
	return s
}

// Ratios sets the relative sizes of rows and columns. Each slice must
// be empty or match its grid dimension.
func (s *Subplots) Ratios(rowRatios, colRatios []float32) *Subplots {
	if len(rowRatios) != 0 && len(rowRatios) != s.rows {
		s.fail(fmt.Errorf("implot: %d row ratios for %d rows: %w", len(rowRatios), s.rows, ErrOutOfBounds))
		return s
	}
	if len(colRatios) != 0 && len(colRatios) != s.cols {
		s.fail(fmt.Errorf("implot: %d col ratios for %d cols: %w", len(colRatios), s.cols, ErrOutOfBounds))
		return s
	}
	s.rowRatios = rowRatios
	s.colRatios = colRatios
	return s
}

func (s *Subplots) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

// Begin opens the subplot grid. The outcomes mirror Plot.Begin:
// (token, nil) drawn, (nil, nil) not drawn this frame, (nil, error)
// fault before any native call. Subplot grids do not nest.
func (s *Subplots) Begin(ui *PlotUI) (*SubplotsToken, error) {
	c := ui.ctx
	if err := c.ensureLive(); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	if c.openSubplots != nil {
		return nil, fmt.Errorf("implot: subplots %q still open: %w", c.openSubplots.title, ErrInvalidNesting)
	}
	if c.openPlot != nil {
		return nil, fmt.Errorf("implot: subplots %q begun inside plot %q: %w",
			s.title, c.openPlot.title, ErrInvalidNesting)
	}

	if !c.driver.BeginSubplots(s.title, s.rows, s.cols, s.size, s.flags, s.rowRatios, s.colRatios) {
		return nil, nil
	}
	t := &SubplotsToken{ctx: c, title: s.title}
	c.openSubplots = t
	return t, nil
}

// Build opens the grid, runs body if drawn, and ends the grid exactly
// once on every exit path, including a panic inside body.
func (s *Subplots) Build(ui *PlotUI, body func(*SubplotsToken)) error {
	t, err := s.Begin(ui)
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

// SubplotsToken is the proof that a subplot grid is open.
type SubplotsToken struct {
	ctx   *Context
	title string
	ended bool
}

// End closes the grid. All cell plots must be ended first; a second
// End fails with ErrInvalidNesting.
func (t *SubplotsToken) End() error {
	if t == nil {
		return fmt.Errorf("implot: subplots end without begin: %w", ErrInvalidNesting)
	}
	c := t.ctx
	if t.ended {
		return fmt.Errorf("implot: subplots %q already ended: %w", t.title, ErrInvalidNesting)
	}
	if c.openPlot != nil {
		return fmt.Errorf("implot: subplots %q ended with plot %q open: %w",
			t.title, c.openPlot.title, ErrInvalidNesting)
	}

	t.ended = true
	c.openSubplots = nil
	if err := c.ensureLive(); err != nil {
		return err
	}
	c.driver.EndSubplots()
	return nil
}
