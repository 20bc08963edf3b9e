// Package cstr builds NUL-terminated strings and string arrays for
// handing to the native library. The returned byte slices must be kept
// alive (runtime.KeepAlive or reachable variables) across the native
// call that consumes them.
package cstr

// Bytes returns s with a trailing NUL byte.
func Bytes(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// Ptr returns a pointer to a NUL-terminated copy of s.
func Ptr(s string) *byte {
	return &Bytes(s)[0]
}

// PtrOrNil returns a pointer to a NUL-terminated copy of s, or nil for
// the empty string. The native library treats a null pointer and an
// empty string differently in several entry points (a null heatmap
// format disables labels entirely).
func PtrOrNil(s string) *byte {
	if s == "" {
		return nil
	}
	return Ptr(s)
}

// Slice converts ss into an array of C string pointers. The second
// return value holds the backing buffers; the caller must keep it
// alive across the native call.
func Slice(ss []string) ([]*byte, [][]byte) {
	if len(ss) == 0 {
		return nil, nil
	}
	ptrs := make([]*byte, len(ss))
	backing := make([][]byte, len(ss))
	for i, s := range ss {
		backing[i] = Bytes(s)
		ptrs[i] = &backing[i][0]
	}
	return ptrs, backing
}
