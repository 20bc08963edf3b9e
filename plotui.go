package implot

// PlotUI is the per-frame handle plotting calls go through. Obtain one
// from Context.Frame each frame; it is only valid until the frame's
// EndFrame call and must stay on the GUI thread.
//
// PlotUI gates every call on context liveness, so a stale handle from
// before Destroy fails with ErrNotInitialized instead of reaching
// native code.
type PlotUI struct {
	ctx *Context
}

// Context returns the context this handle belongs to.
func (ui *PlotUI) Context() *Context { return ui.ctx }

// ShowDemoWindow draws the native library's demo window. The open
// flag is updated when the user closes the window; pass nil to omit
// the close button.
func (ui *PlotUI) ShowDemoWindow(open *bool) error {
	if err := ui.ctx.ensureLive(); err != nil {
		return err
	}
	ui.ctx.driver.ShowDemoWindow(open)
	return nil
}
