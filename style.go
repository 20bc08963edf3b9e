package implot

import (
	"fmt"
	"image/color"
)

// Style scopes follow the same token discipline as plots: every push
// returns a token, every token is popped exactly once, and pops must
// be LIFO within their family (colors, vars, colormaps). Style scopes
// are frame-level: they may open before a plot begins and close after
// it ends, but never cross a frame boundary.

// StyleColorToken is the proof of one style color push.
type StyleColorToken struct {
	ctx    *Context
	target PlotColor
	popped bool
}

// PushStyleColor overrides a style color until the matching Pop. The
// color is converted to straight-alpha normalized components for the
// native library.
func (ui *PlotUI) PushStyleColor(target PlotColor, col color.Color) (*StyleColorToken, error) {
	r, g, b, a := normColor(col)
	return ui.PushStyleColorRGBA(target, r, g, b, a)
}

// PushStyleColorRGBA overrides a style color from normalized
// components in [0, 1].
func (ui *PlotUI) PushStyleColorRGBA(target PlotColor, r, g, b, a float32) (*StyleColorToken, error) {
	c := ui.ctx
	if err := c.ensureLive(); err != nil {
		return nil, err
	}
	if target < PlotColorLine || target >= plotColorCount {
		return nil, fmt.Errorf("implot: style color %d: %w", int32(target), ErrUnrecognizedValue)
	}
	c.driver.PushStyleColor(target, r, g, b, a)
	t := &StyleColorToken{ctx: c, target: target}
	c.colorStack = append(c.colorStack, t)
	return t, nil
}

// Pop removes the pushed color. The token must be the most recent
// unpopped color push; popping out of order or twice fails with
// ErrInvalidNesting and leaves the native stack untouched.
func (t *StyleColorToken) Pop() error {
	if t == nil {
		return fmt.Errorf("implot: style color pop without push: %w", ErrInvalidNesting)
	}
	c := t.ctx
	if t.popped {
		return fmt.Errorf("implot: style color %d popped twice: %w", int32(t.target), ErrInvalidNesting)
	}
	if n := len(c.colorStack); n == 0 || c.colorStack[n-1] != t {
		return fmt.Errorf("implot: style color pop out of order: %w", ErrInvalidNesting)
	}
	if err := c.ensureLive(); err != nil {
		return err
	}
	t.popped = true
	c.colorStack = c.colorStack[:len(c.colorStack)-1]
	c.driver.PopStyleColor(1)
	return nil
}

// StyleVarToken is the proof of one style variable push.
type StyleVarToken struct {
	ctx    *Context
	target StyleVar
	popped bool
}

// PushStyleVarFloat overrides a float-valued style variable until the
// matching Pop. Pushing a variable of a different kind is rejected
// before the native call.
func (ui *PlotUI) PushStyleVarFloat(target StyleVar, value float32) (*StyleVarToken, error) {
	return ui.pushStyleVar(target, styleVarFloat, func(d Driver) {
		d.PushStyleVarFloat(target, value)
	})
}

// PushStyleVarInt overrides an int-valued style variable until the
// matching Pop.
func (ui *PlotUI) PushStyleVarInt(target StyleVar, value int32) (*StyleVarToken, error) {
	return ui.pushStyleVar(target, styleVarInt, func(d Driver) {
		d.PushStyleVarInt(target, value)
	})
}

// PushStyleVarVec2 overrides a 2-vector style variable until the
// matching Pop.
func (ui *PlotUI) PushStyleVarVec2(target StyleVar, value Vec2) (*StyleVarToken, error) {
	return ui.pushStyleVar(target, styleVarVec2, func(d Driver) {
		d.PushStyleVarVec2(target, value)
	})
}

func (ui *PlotUI) pushStyleVar(target StyleVar, kind styleVarKind, push func(Driver)) (*StyleVarToken, error) {
	c := ui.ctx
	if err := c.ensureLive(); err != nil {
		return nil, err
	}
	if !target.valid() {
		return nil, fmt.Errorf("implot: style var %d: %w", int32(target), ErrUnrecognizedValue)
	}
	if target.kind() != kind {
		return nil, fmt.Errorf("implot: style var %d pushed with wrong element kind: %w",
			int32(target), ErrUnrecognizedValue)
	}
	push(c.driver)
	t := &StyleVarToken{ctx: c, target: target}
	c.varStack = append(c.varStack, t)
	return t, nil
}

// Pop removes the pushed style variable. LIFO within the style var
// family; out-of-order or double pops fail with ErrInvalidNesting.
func (t *StyleVarToken) Pop() error {
	if t == nil {
		return fmt.Errorf("implot: style var pop without push: %w", ErrInvalidNesting)
	}
	c := t.ctx
	if t.popped {
		return fmt.Errorf("implot: style var %d popped twice: %w", int32(t.target), ErrInvalidNesting)
	}
	if n := len(c.varStack); n == 0 || c.varStack[n-1] != t {
		return fmt.Errorf("implot: style var pop out of order: %w", ErrInvalidNesting)
	}
	if err := c.ensureLive(); err != nil {
		return err
	}
	t.popped = true
	c.varStack = c.varStack[:len(c.varStack)-1]
	c.driver.PopStyleVar(1)
	return nil
}

// ColormapToken is the proof of one colormap push.
type ColormapToken struct {
	ctx    *Context
	cm     Colormap
	popped bool
}

// PushColormap makes cm the active colormap until the matching Pop.
// cm must be a preset or a value returned by Context.AddColormap.
func (ui *PlotUI) PushColormap(cm Colormap) (*ColormapToken, error) {
	c := ui.ctx
	if err := c.ensureLive(); err != nil {
		return nil, err
	}
	if !c.knowsColormap(cm) {
		return nil, fmt.Errorf("implot: colormap %d: %w", int32(cm), ErrUnrecognizedValue)
	}
	c.driver.PushColormap(cm)
	t := &ColormapToken{ctx: c, cm: cm}
	c.colormapStack = append(c.colormapStack, t)
	return t, nil
}

// Pop restores the previous colormap. LIFO within the colormap family.
func (t *ColormapToken) Pop() error {
	if t == nil {
		return fmt.Errorf("implot: colormap pop without push: %w", ErrInvalidNesting)
	}
	c := t.ctx
	if t.popped {
		return fmt.Errorf("implot: colormap %d popped twice: %w", int32(t.cm), ErrInvalidNesting)
	}
	if n := len(c.colormapStack); n == 0 || c.colormapStack[n-1] != t {
		return fmt.Errorf("implot: colormap pop out of order: %w", ErrInvalidNesting)
	}
	if err := c.ensureLive(); err != nil {
		return err
	}
	t.popped = true
	c.colormapStack = c.colormapStack[:len(c.colormapStack)-1]
	c.driver.PopColormap(1)
	return nil
}

// normColor converts a color.Color to straight-alpha normalized
// components. color.Color carries premultiplied channels, so fully
// transparent maps to transparent black.
func normColor(col color.Color) (r, g, b, a float32) {
	pr, pg, pb, pa := col.RGBA()
	if pa == 0 {
		return 0, 0, 0, 0
	}
	// Un-premultiply against the 16-bit alpha.
	r = float32(pr) / float32(pa)
	g = float32(pg) / float32(pa)
	b = float32(pb) / float32(pa)
	a = float32(pa) / 0xffff
	return r, g, b, a
}
