// Package candidates decides which default exclusion patterns apply to a
// project by probing its root directory against a declarative catalog.
package candidates
