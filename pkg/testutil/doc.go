// Package testutil provides project fixtures for testing pkgignore components.
//
// Key components:
//   - TestEnvironment: a project root on either an in-memory or a temp-dir
//     filesystem, with helpers to lay out files and read them back
//   - ProjectConfig: declarative project layout
//   - RecordingConfirmer: a Confirmer that answers with a fixed response and
//     records what it was asked
//
// Usage guidelines:
//   - Most tests should use EnvMemoryOnly for speed and isolation
//   - Use EnvIsolated only where real OS behavior matters
//   - All test data should be defined inline, not in external files
package testutil
