// Package patterns models the lines of an ignore-pattern manifest and the
// platform policy that decides when two patterns are equivalent.
//
// A manifest line is one of three kinds: blank, comment (first non-space
// character is '#'), or pattern. A pattern carries a negation flag (leading
// '!'), a directory flag (trailing '/'), and a base token with both markers
// stripped. Equivalence is decided on base tokens only, never by matching
// paths: "test", "test/" and "!test/" all share the base "test".
//
// Platform differences live in a single Policy value:
//
//	policy := patterns.ForOS("windows")
//	policy.Covers(existing, candidate)
//
// so code that merges manifests never branches on the operating system.
package patterns
