// Package ffi provides the purego-based driver that connects the
// implot safety layer to the native cimplot shared library.
//
// The driver loads the library at runtime with purego (dlopen on Unix,
// LoadLibrary on Windows) and binds every C entry point it needs, so
// no cgo toolchain is involved in the build.
//
// # Registration and Selection
//
// The driver registers itself under the name "ffi" when this package
// is imported:
//
//	import _ "github.com/gogpu/implot/driver/ffi"
//
// implot.CreateContext picks it up automatically; no further wiring is
// needed.
//
// # Library Discovery
//
// Init looks for the native library in this order:
//
//   - the path in the IMPLOT_LIBRARY_PATH environment variable, if set
//   - the platform's conventional names (libcimplot.so, libcimplot.dylib
//     or cimplot.dll) through the system loader's search path
//
// The library must be a cimplot build that links the same Dear ImGui
// the host GUI binding uses, so both sides share one widget state.
// Prebuilt binaries: https://github.com/cimgui/cimplot
//
// # Symbol Binding
//
// Init resolves every entry point eagerly. A library built against a
// different binding version fails at load time with ErrSymbolMissing
// instead of crashing in the middle of a frame.
//
// # Requirements
//
//   - purego with struct argument support (v0.8+)
//   - amd64 or arm64
//
// # Error Handling
//
// Common errors returned by this package:
//
//   - ErrLibraryNotFound: the native library could not be located
//   - ErrSymbolMissing: the library lacks an expected entry point
//   - ErrAlreadyLoaded: Init was called twice without Close
//
// # Thread Safety
//
// Init, Close and SetLogger are safe for concurrent use. All other
// methods follow the frame-path contract and must stay on the GUI
// thread; the safety layer enforces that before calls reach the
// driver.
//
// # Related Packages
//
//   - github.com/gogpu/implot: Safety layer and plotting API
//   - github.com/ebitengine/purego: Zero-CGO FFI bindings
package ffi
