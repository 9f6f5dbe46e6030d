// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
//
// It uses afero so the OS backend can be swapped for an in-memory one in tests.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs installs a volatile in-memory filesystem backend.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// ReadOnly wraps the current backend so that writes fail.
func ReadOnly() afero.Afero {
	return afero.Afero{Fs: afero.NewReadOnlyFs(backend.Fs)}
}
