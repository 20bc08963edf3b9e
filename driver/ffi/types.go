package ffi

// Native value types of the plotting library's C API. Field order and
// width must match the C declarations exactly; vec2, vec4 and
// plotPoint cross the boundary by value, the rest through out
// pointers.

type vec2 struct {
	X, Y float32
}

type vec4 struct {
	X, Y, Z, W float32
}

type plotPoint struct {
	X, Y float64
}

type plotRange struct {
	Min, Max float64
}

type plotRect struct {
	X, Y plotRange
}
