package implot

import (
	"fmt"
	"image/color"
	"strings"
	"sync"
)

// HostContext is the embedder's GUI context, which the plotting
// context extends. The plotting library shares the GUI library's frame
// loop, input state and draw lists, so the GUI context must be created
// first and must outlive the plotting context.
//
// The binding calls Handle once, during CreateContext, to bind the
// native GUI context into the plotting library; afterwards it calls
// only Alive, to confirm liveness before native calls.
type HostContext interface {
	// Handle returns the native GUI context pointer.
	Handle() uintptr

	// Alive reports whether the GUI context is still valid. Once it
	// returns false it must never return true again.
	Alive() bool
}

// ctxMu guards the process-wide context slot. The native library keeps
// a single global plotting context, so the binding allows exactly one
// live Context per process.
var (
	ctxMu   sync.Mutex
	current *Context
)

// Context owns the native plotting context and all per-frame scope
// state. Create one with CreateContext after the host GUI context is
// up; destroy it with Destroy before the host GUI context goes down.
//
// A Context is bound to the GUI thread. Lifecycle calls (CreateContext,
// Destroy) are serialized internally; everything else must stay on the
// thread that runs the GUI frame loop.
type Context struct {
	host   HostContext
	driver Driver

	destroyed bool

	// Open begin/end scopes. Frame-path state, GUI thread only.
	openPlot     *PlotToken
	openSubplots *SubplotsToken
	openLegend   *LegendPopupToken
	openDragDrop *DragDropToken

	// Style stacks, LIFO per family.
	colorStack    []*StyleColorToken
	varStack      []*StyleVarToken
	colormapStack []*ColormapToken

	// Custom colormaps registered through AddColormap.
	customMaps map[Colormap]string
}

// CreateContext initializes the plotting library on top of the live
// host GUI context and returns the process-wide Context.
//
// It fails with ErrAlreadyInitialized if a Context already exists, and
// with ErrNotInitialized if host is nil or not alive. The driver is
// taken from WithDriver, else WithDriverName, else the registry's
// default order; driver initialization errors are returned wrapped.
func CreateContext(host HostContext, opts ...ContextOption) (*Context, error) {
	ctxMu.Lock()
	defer ctxMu.Unlock()

	if current != nil {
		return nil, ErrAlreadyInitialized
	}
	if host == nil {
		return nil, fmt.Errorf("implot: nil host GUI context: %w", ErrNotInitialized)
	}
	if !host.Alive() {
		return nil, fmt.Errorf("implot: host GUI context not alive: %w", ErrNotInitialized)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d := o.driver
	if d == nil {
		var err error
		if o.driverName != "" {
			d, err = newDriver(o.driverName)
		} else {
			d, err = DefaultDriver()
		}
		if err != nil {
			return nil, err
		}
	}

	if err := d.Init(); err != nil {
		return nil, fmt.Errorf("implot: driver %q init: %w", d.Name(), err)
	}

	// The host GUI context must be bound before the native plotting
	// context is created; creation already calls into the GUI library.
	d.BindHostContext(host.Handle())
	if err := d.CreateContext(); err != nil {
		_ = d.Close()
		return nil, fmt.Errorf("implot: create native context: %w", err)
	}

	c := &Context{
		host:       host,
		driver:     d,
		customMaps: make(map[Colormap]string),
	}
	current = c
	setActiveDriver(d)
	Logger().Info("plotting context created", "driver", d.Name())
	return c, nil
}

// Destroy tears down the native plotting context and releases the
// driver.
//
// It fails with ErrNotInitialized when the context is already
// destroyed, and with ErrInvalidNesting when scopes are still open
// (end all tokens first; the context stays live). If the host GUI
// context died before this call, the native teardown is skipped
// (running it against a dead GUI context is not safe) and the misuse
// is reported.
func (c *Context) Destroy() error {
	ctxMu.Lock()
	defer ctxMu.Unlock()

	if c == nil || c.destroyed || current != c {
		return ErrNotInitialized
	}
	if open := c.openScopes(); len(open) > 0 {
		Logger().Error("destroy with open scopes", "scopes", open)
		return fmt.Errorf("implot: destroy with open scopes (%s): %w",
			strings.Join(open, ", "), ErrInvalidNesting)
	}

	hostAlive := c.host.Alive()
	if hostAlive {
		c.driver.DestroyContext()
	} else {
		Logger().Error("host GUI context destroyed before plotting context, skipping native teardown")
	}
	err := c.driver.Close()
	c.destroyed = true
	current = nil
	setActiveDriver(nil)

	if !hostAlive {
		return fmt.Errorf("implot: host GUI context destroyed first: %w", ErrNotInitialized)
	}
	if err != nil {
		return fmt.Errorf("implot: driver close: %w", err)
	}
	Logger().Info("plotting context destroyed")
	return nil
}

// Frame returns the handle all plotting calls of one frame go through.
// Call it each frame between the host GUI's new-frame and render
// calls.
func (c *Context) Frame() (*PlotUI, error) {
	if err := c.ensureLive(); err != nil {
		return nil, err
	}
	return &PlotUI{ctx: c}, nil
}

// EndFrame verifies that every scope opened during the frame was
// closed: all begin calls ended, all pushes popped. Call it after the
// frame's plotting calls, before the host GUI renders.
//
// Leaked scopes are reported with ErrInvalidNesting and left open;
// the tokens remain valid so the caller can still close them.
func (c *Context) EndFrame() error {
	if err := c.ensureLive(); err != nil {
		return err
	}
	open := c.openScopes()
	if len(open) == 0 {
		return nil
	}
	Logger().Error("frame ended with open scopes", "scopes", open)
	return fmt.Errorf("implot: frame ended with open scopes (%s): %w",
		strings.Join(open, ", "), ErrInvalidNesting)
}

// AddColormap registers a custom colormap under the given name and
// returns its handle. At least two colors are required. When
// qualitative is true the colors are kept as discrete samples rather
// than interpolated.
func (c *Context) AddColormap(name string, colors []color.RGBA, qualitative bool) (Colormap, error) {
	if err := c.ensureLive(); err != nil {
		return 0, err
	}
	if len(colors) < 2 {
		return 0, fmt.Errorf("implot: colormap %q needs at least 2 colors, got %d: %w",
			name, len(colors), ErrOutOfBounds)
	}
	cm := c.driver.AddColormap(name, colors, qualitative)
	c.customMaps[cm] = name
	Logger().Debug("colormap registered", "name", name, "handle", int32(cm), "colors", len(colors))
	return cm, nil
}

// ensureLive fails with ErrNotInitialized when the context has been
// destroyed or the host GUI context is gone.
func (c *Context) ensureLive() error {
	if c == nil || c.destroyed {
		return ErrNotInitialized
	}
	if !c.host.Alive() {
		return fmt.Errorf("implot: host GUI context not alive: %w", ErrNotInitialized)
	}
	return nil
}

// knowsColormap reports whether cm is a preset or was registered on
// this context.
func (c *Context) knowsColormap(cm Colormap) bool {
	if cm >= ColormapDeep && cm < colormapPresetCount {
		return true
	}
	_, ok := c.customMaps[cm]
	return ok
}

// openScopes names every scope currently open, outermost first. Used
// for leak reports by EndFrame and Destroy.
func (c *Context) openScopes() []string {
	var open []string
	if c.openSubplots != nil {
		open = append(open, fmt.Sprintf("subplots %q", c.openSubplots.title))
	}
	if c.openPlot != nil {
		open = append(open, fmt.Sprintf("plot %q", c.openPlot.title))
	}
	if c.openLegend != nil {
		open = append(open, fmt.Sprintf("legend popup %q", c.openLegend.label))
	}
	if c.openDragDrop != nil {
		open = append(open, c.openDragDrop.scope())
	}
	if n := len(c.colorStack); n > 0 {
		open = append(open, fmt.Sprintf("%d style color push(es)", n))
	}
	if n := len(c.varStack); n > 0 {
		open = append(open, fmt.Sprintf("%d style var push(es)", n))
	}
	if n := len(c.colormapStack); n > 0 {
		open = append(open, fmt.Sprintf("%d colormap push(es)", n))
	}
	return open
}
