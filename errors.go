package implot

import "errors"

// Sentinel errors returned by the binding layer. All of them are
// reported before any native call is made, so a returned error never
// leaves the native plotting library in a half-finished state.
var (
	// ErrAlreadyInitialized is returned by CreateContext when a live
	// plotting context already exists. The native library keeps a
	// single global context, so the binding enforces the same rule.
	ErrAlreadyInitialized = errors.New("implot: context already initialized")

	// ErrNotInitialized is returned when an operation requires a live
	// plotting context and there is none: Destroy on a destroyed
	// context, frame calls after Destroy, or a host GUI context that
	// is no longer alive.
	ErrNotInitialized = errors.New("implot: context not initialized")

	// ErrInvalidNesting is returned when begin/end or push/pop
	// discipline is violated: beginning a plot while one is open,
	// ending a token twice, popping scopes out of order, or finishing
	// a frame with scopes still open.
	ErrInvalidNesting = errors.New("implot: invalid begin/end nesting")

	// ErrOutOfBounds is returned by data adapters when offset, stride
	// and count would read past the end of the source slice.
	ErrOutOfBounds = errors.New("implot: series data out of bounds")

	// ErrUnrecognizedValue is returned when a value coming back from
	// the native library falls outside the closed set the binding
	// knows. Newer native versions may add enum members; the binding
	// refuses to alias them to known ones.
	ErrUnrecognizedValue = errors.New("implot: unrecognized native value")

	// ErrNoDriver is returned by CreateContext when no usable driver
	// is registered and none was supplied via WithDriver.
	ErrNoDriver = errors.New("implot: no driver available")
)
