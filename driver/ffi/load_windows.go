//go:build windows

package ffi

import "golang.org/x/sys/windows"

// libraryNames returns the conventional file names for the native
// plotting library on Windows, tried in order.
func libraryNames() []string {
	return []string{"cimplot.dll", "libcimplot.dll"}
}

func openLibrary(path string) (uintptr, error) {
	h, err := windows.LoadLibrary(path)
	return uintptr(h), err
}

func resolveSymbol(lib uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(lib), name)
}

func closeLibrary(lib uintptr) error {
	return windows.FreeLibrary(windows.Handle(lib))
}
