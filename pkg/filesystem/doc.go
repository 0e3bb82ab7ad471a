// Package filesystem provides implementations of types.FS: the OS
// filesystem for production and an afero-backed one for tests.
package filesystem
