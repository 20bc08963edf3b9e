//go:build darwin || freebsd || linux

package ffi

import (
	"runtime"

	"github.com/ebitengine/purego"
)

// libraryNames returns the conventional file names for the native
// plotting library on this platform, tried in order. The dynamic
// loader searches its usual paths for bare names.
func libraryNames() []string {
	if runtime.GOOS == "darwin" {
		return []string{"libcimplot.dylib", "cimplot.dylib"}
	}
	return []string{"libcimplot.so", "cimplot.so"}
}

func openLibrary(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func resolveSymbol(lib uintptr, name string) (uintptr, error) {
	return purego.Dlsym(lib, name)
}

func closeLibrary(lib uintptr) error {
	return purego.Dlclose(lib)
}
