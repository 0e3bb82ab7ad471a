// pkg/testutil/environment.go
// DEPENDENCIES: None (base test utilities)
// PURPOSE: Project fixtures on in-memory or temp-dir filesystems

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pkgignore/pkg/filesystem"
	"github.com/arthur-debert/pkgignore/pkg/types"
	"github.com/spf13/afero"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// ProjectConfig describes a project layout
type ProjectConfig struct {
	// Files maps root-relative paths to content
	Files map[string]string
	// Dirs lists root-relative directories to create
	Dirs []string
}

// TestEnvironment is a project root ready for collection and reconciliation
type TestEnvironment struct {
	Root string
	FS   types.FS
	Type EnvType

	afs afero.Fs
	t   *testing.T
}

// NewTestEnvironment creates an empty project root
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}
	switch envType {
	case EnvIsolated:
		env.Root = t.TempDir()
		env.afs = afero.NewOsFs()
		env.FS = filesystem.NewOS()
	default:
		env.Root = "/project"
		env.afs = afero.NewMemMapFs()
		env.FS = filesystem.NewAferoFS(env.afs)
		if err := env.afs.MkdirAll(env.Root, 0755); err != nil {
			t.Fatalf("failed to create project root: %v", err)
		}
	}
	return env
}

// NewProject creates an environment and lays out cfg in it
func NewProject(t *testing.T, envType EnvType, cfg ProjectConfig) *TestEnvironment {
	t.Helper()
	env := NewTestEnvironment(t, envType)
	env.Setup(cfg)
	return env
}

// Setup lays out files and directories under the root
func (e *TestEnvironment) Setup(cfg ProjectConfig) {
	e.t.Helper()
	for _, dir := range cfg.Dirs {
		if err := e.afs.MkdirAll(e.Path(dir), 0755); err != nil {
			e.t.Fatalf("failed to create dir %s: %v", dir, err)
		}
	}
	for name, content := range cfg.Files {
		e.WriteFile(name, content)
	}
}

// Path returns the absolute path of a root-relative name
func (e *TestEnvironment) Path(rel string) string {
	return filepath.Join(e.Root, filepath.FromSlash(rel))
}

// WriteFile writes a root-relative file, creating parents
func (e *TestEnvironment) WriteFile(rel, content string) {
	e.t.Helper()
	path := e.Path(rel)
	if err := e.afs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.t.Fatalf("failed to create parent of %s: %v", rel, err)
	}
	if err := afero.WriteFile(e.afs, path, []byte(content), 0644); err != nil {
		e.t.Fatalf("failed to write %s: %v", rel, err)
	}
}

// ReadFile reads a root-relative file
func (e *TestEnvironment) ReadFile(rel string) string {
	e.t.Helper()
	data, err := afero.ReadFile(e.afs, e.Path(rel))
	if err != nil {
		e.t.Fatalf("failed to read %s: %v", rel, err)
	}
	return string(data)
}

// Exists reports whether a root-relative path exists
func (e *TestEnvironment) Exists(rel string) bool {
	ok, err := afero.Exists(e.afs, e.Path(rel))
	return err == nil && ok
}
