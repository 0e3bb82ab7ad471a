// Package reconcile merges default exclusion patterns into an existing
// ignore-pattern manifest.
//
// Reconcile is pure: it takes the manifest bytes (nil when the file does not
// exist) and the ordered candidates, and returns a Plan. A Plan in the
// needs-update state is a suspension point; the caller asks for confirmation
// (or not) and calls Resolve to obtain the final Result. Existing lines are
// never reordered, rewritten or removed; additions are appended after a
// single blank separator line.
//
// Because existing lines are kept verbatim, a bare "test" entry stays as it
// is even when a test/ directory candidate is not covered by it (see
// Policy.StrictDirs); the directory form is appended instead of the entry
// being rewritten to "test/". Entries that no longer match anything in the
// project, such as a stale "example/", are left in place too.
package reconcile
