// Package implot binds the native immediate-mode plotting library into
// Go, layered on top of an immediate-mode GUI binding.
//
// # Overview
//
// implot wraps the native plotting library's begin/end API in a typed,
// token-based surface. Every begin that succeeds returns a token; the
// token carries the operations that are only legal inside that scope
// (series, axis queries, inner scopes) and its End closes the scope.
// Misuse that would corrupt or crash the native library (unbalanced
// begin/end pairs, out-of-range data windows, values the binding does
// not know) is caught in Go and reported as an error before any native
// call is made.
//
// # Quick Start
//
//	import "github.com/gogpu/implot"
//	import _ "github.com/gogpu/implot/driver/ffi"
//
//	// After the host GUI context is up:
//	ctx, err := implot.CreateContext(host)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ctx.Destroy()
//
//	// Each frame, between the GUI library's NewFrame and Render:
//	ui, _ := ctx.Frame()
//	implot.NewPlot("signal").Build(ui, func(t *implot.PlotToken) {
//	    implot.NewLineSeries("sin").Plot(t, xs, ys)
//	})
//	ctx.EndFrame()
//
// # Lifecycle
//
// The native library keeps one global plotting context, so the binding
// allows exactly one live Context per process. CreateContext must run
// after the host GUI context exists and Destroy before the GUI context
// goes down. A second CreateContext fails with ErrAlreadyInitialized;
// Destroy after Destroy fails with ErrNotInitialized.
//
// # Scopes
//
// Begin calls return (token, nil) when the scope is open, (nil, nil)
// when the native library decided the element is not drawn this frame
// (skip the body, no end call), and (nil, error) on a fault. The
// closure form Build makes the end call structural: it runs the body
// and ends the scope exactly once on every exit path, including a
// panic inside the body.
//
// # Data
//
// Series take []float64 directly, or a DataView built with Adapt for
// strided windows over a buffer. Bounds are validated when the view is
// created; float64 views alias the caller's memory, other scalar types
// are converted once.
//
// # Drivers
//
// The native calls go through the Driver interface. The driver/ffi
// package loads the C plotting library at runtime and registers itself
// under the name "ffi"; importing it for effect is enough. Tests
// inject a recording driver through WithDriver.
//
// # Threading
//
// The native library is single-threaded frame-state: everything except
// CreateContext, Destroy, SetLogger and the driver registry must stay
// on the thread that runs the GUI frame loop.
package implot

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
