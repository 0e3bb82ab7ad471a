// Package types defines the interfaces and small value types shared across
// pkgignore: the filesystem abstraction, the confirmation collaborator, and
// the status tags a generation run can end in.
package types
