package ffi

import "errors"

// Package errors for the ffi driver.
var (
	// ErrLibraryNotFound is returned when the native plotting library
	// cannot be located or opened.
	ErrLibraryNotFound = errors.New("ffi: native plotting library not found")

	// ErrSymbolMissing is returned when the loaded library lacks an
	// expected entry point, which means the library build does not
	// match the binding.
	ErrSymbolMissing = errors.New("ffi: native symbol missing")

	// ErrAlreadyLoaded is returned when Init is called on a driver
	// that already holds the library.
	ErrAlreadyLoaded = errors.New("ffi: library already loaded")
)
