// pkg/commands/gen/gen_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Memory FS, recording confirmer
// PURPOSE: Test the load, collect, reconcile, confirm and write sequence

package gen_test

import (
	"context"
	stderrors "errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/arthur-debert/pkgignore/pkg/commands/gen"
	"github.com/arthur-debert/pkgignore/pkg/config"
	"github.com/arthur-debert/pkgignore/pkg/errors"
	"github.com/arthur-debert/pkgignore/pkg/filesystem"
	"github.com/arthur-debert/pkgignore/pkg/patterns"
	"github.com/arthur-debert/pkgignore/pkg/testutil"
	"github.com/arthur-debert/pkgignore/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "# Generated by pkgignore (https://github.com/arthur-debert/pkgignore)"

func posix() *patterns.Policy {
	p := patterns.POSIX
	return &p
}

func windows() *patterns.Policy {
	p := patterns.Windows
	return &p
}

// standardProject has benchmark, coverage and test directories
func standardProject(t *testing.T) *testutil.TestEnvironment {
	return testutil.NewProject(t, testutil.EnvMemoryOnly, testutil.ProjectConfig{
		Files: map[string]string{"index.js": "", "package.json": "{}"},
		Dirs:  []string{"benchmark", "coverage", "test", "lib"},
	})
}

func options(env *testutil.TestEnvironment, confirmer types.Confirmer) gen.Options {
	return gen.Options{
		Root:      env.Root,
		FS:        env.FS,
		Config:    config.Default(),
		Policy:    posix(),
		Confirmer: confirmer,
	}
}

func TestRun_NoFile(t *testing.T) {
	env := standardProject(t)
	confirmer := &testutil.RecordingConfirmer{}

	outcome, err := gen.Run(context.Background(), options(env, confirmer))
	require.NoError(t, err)

	assert.Equal(t, types.StatusSaved, outcome.Status)
	assert.True(t, outcome.Created)
	assert.True(t, outcome.Written)
	assert.Equal(t, env.Path(".npmignore"), outcome.Path)
	assert.Equal(t, 0, confirmer.Calls(), "new manifests are written without asking")

	want := strings.Join([]string{header, "", ".npmignore", "benchmark/", "coverage/", "test/"}, "\n")
	assert.Equal(t, want, env.ReadFile(".npmignore"))
	assert.Equal(t, want, string(outcome.Content))
	assert.Equal(t, []string{".npmignore", "benchmark/", "coverage/", "test/"}, outcome.Additions)
}

func TestRun_NoFile_Windows(t *testing.T) {
	env := standardProject(t)
	opts := options(env, &testutil.RecordingConfirmer{})
	opts.Policy = windows()

	_, err := gen.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, header+"\r\n\r\n.npmignore\r\nbenchmark/\r\ncoverage/\r\ntest/", env.ReadFile(".npmignore"))
}

func TestRun_AlreadyPerfect(t *testing.T) {
	env := standardProject(t)
	existing := ".npmignore\r\ncoverage/\r\ntest/\r\nbenchmark/"
	env.WriteFile(".npmignore", existing)

	faulty := filesystem.NewFaulty(env.FS)
	faulty.WriteErrors[env.Path(".npmignore")] = fs.ErrPermission
	confirmer := &testutil.RecordingConfirmer{Answer: true}

	opts := options(env, confirmer)
	opts.FS = faulty

	outcome, err := gen.Run(context.Background(), opts)
	require.NoError(t, err, "no write is attempted")

	assert.Equal(t, types.StatusAlreadyPerfect, outcome.Status)
	assert.False(t, outcome.Written)
	assert.False(t, outcome.Created)
	assert.Equal(t, 0, confirmer.Calls())
	assert.Equal(t, existing, string(outcome.Content))
	assert.Equal(t, existing, env.ReadFile(".npmignore"))
}

func TestRun_Declined(t *testing.T) {
	env := standardProject(t)
	existing := ".npmignore\r\nbenchmark/"
	env.WriteFile(".npmignore", existing)
	confirmer := &testutil.RecordingConfirmer{Answer: false}

	outcome, err := gen.Run(context.Background(), options(env, confirmer))
	require.NoError(t, err)

	assert.Equal(t, types.StatusCanceled, outcome.Status)
	assert.False(t, outcome.Written)
	assert.Equal(t, existing, string(outcome.Content))
	assert.Equal(t, existing, env.ReadFile(".npmignore"))
	require.Equal(t, 1, confirmer.Calls())
	assert.Equal(t, "Add 2 patterns to "+env.Path(".npmignore")+"?", confirmer.Prompts[0])
}

func TestRun_Accepted(t *testing.T) {
	env := standardProject(t)
	env.WriteFile(".npmignore", ".npmignore\r\nbenchmark/")
	confirmer := &testutil.RecordingConfirmer{Answer: true}

	outcome, err := gen.Run(context.Background(), options(env, confirmer))
	require.NoError(t, err)

	assert.Equal(t, types.StatusSaved, outcome.Status)
	assert.True(t, outcome.Written)
	assert.False(t, outcome.Created)
	assert.Equal(t, 1, confirmer.Calls())
	assert.Equal(t, []string{"coverage/", "test/"}, outcome.Additions)
	assert.Equal(t, ".npmignore\nbenchmark/\n\ncoverage/\ntest/", env.ReadFile(".npmignore"))
}

func TestRun_Force(t *testing.T) {
	env := standardProject(t)
	env.WriteFile(".npmignore", ".npmignore\r\nbenchmark/")
	confirmer := &testutil.RecordingConfirmer{Answer: false}

	opts := options(env, confirmer)
	opts.Force = true

	outcome, err := gen.Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, types.StatusSaved, outcome.Status)
	assert.True(t, outcome.Written)
	assert.Equal(t, 0, confirmer.Calls())
}

func TestRun_ForceFromConfig(t *testing.T) {
	env := standardProject(t)
	env.WriteFile(".npmignore", "lib/")

	opts := options(env, nil)
	opts.Config.Confirm.Force = true

	outcome, err := gen.Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, types.StatusSaved, outcome.Status)
	assert.Equal(t, "lib/\n\n.npmignore\nbenchmark/\ncoverage/\ntest/", env.ReadFile(".npmignore"))
}

func TestRun_NoConfirmer(t *testing.T) {
	env := standardProject(t)
	env.WriteFile(".npmignore", "lib/")

	_, err := gen.Run(context.Background(), options(env, nil))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfirm))
	assert.Equal(t, "lib/", env.ReadFile(".npmignore"))
}

func TestRun_ConfirmerError(t *testing.T) {
	env := standardProject(t)
	env.WriteFile(".npmignore", "lib/")
	confirmer := &testutil.RecordingConfirmer{Err: stderrors.New("tty closed")}

	_, err := gen.Run(context.Background(), options(env, confirmer))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfirm))
	assert.Equal(t, "lib/", env.ReadFile(".npmignore"))
}

func TestRun_DryRun(t *testing.T) {
	t.Run("no file", func(t *testing.T) {
		env := standardProject(t)
		opts := options(env, nil)
		opts.DryRun = true

		outcome, err := gen.Run(context.Background(), opts)
		require.NoError(t, err)
		assert.Equal(t, types.StatusSaved, outcome.Status)
		assert.True(t, outcome.Created)
		assert.False(t, outcome.Written)
		assert.False(t, env.Exists(".npmignore"))
	})

	t.Run("forced update", func(t *testing.T) {
		env := standardProject(t)
		env.WriteFile(".npmignore", "lib/")
		opts := options(env, nil)
		opts.DryRun = true
		opts.Force = true

		outcome, err := gen.Run(context.Background(), opts)
		require.NoError(t, err)
		assert.Equal(t, types.StatusSaved, outcome.Status)
		assert.False(t, outcome.Written)
		assert.Contains(t, string(outcome.Content), "coverage/")
		assert.Equal(t, "lib/", env.ReadFile(".npmignore"))
	})
}

func TestRun_MergeScenario(t *testing.T) {
	existing := strings.Join([]string{".travis.yml", "!Makefile", "test", "example/", "!benchmark/"}, "\r\n")
	layout := testutil.ProjectConfig{
		Files: map[string]string{
			".travis.yml": "",
			"Gulpfile.js": "",
			"HISTORY":     "",
			"Makefile":    "",
			"index.js":    "",
		},
		Dirs: []string{"benchmark", "coverage", "example", "test"},
	}

	t.Run("posix", func(t *testing.T) {
		env := testutil.NewProject(t, testutil.EnvMemoryOnly, layout)
		env.WriteFile(".npmignore", existing)

		outcome, err := gen.Run(context.Background(), options(env, &testutil.RecordingConfirmer{Answer: true}))
		require.NoError(t, err)

		assert.Equal(t, types.StatusSaved, outcome.Status)
		assert.Equal(t, strings.Join([]string{
			".travis.yml", "!Makefile", "test", "example/", "!benchmark/",
			"",
			".npmignore", "coverage/", "Gulpfile.js", "HISTORY",
		}, "\n"), env.ReadFile(".npmignore"))
	})

	t.Run("windows", func(t *testing.T) {
		env := testutil.NewProject(t, testutil.EnvMemoryOnly, layout)
		env.WriteFile(".npmignore", existing)
		opts := options(env, &testutil.RecordingConfirmer{Answer: true})
		opts.Policy = windows()

		outcome, err := gen.Run(context.Background(), opts)
		require.NoError(t, err)

		assert.Equal(t, types.StatusSaved, outcome.Status)
		assert.Equal(t, strings.Join([]string{
			".travis.yml", "!Makefile", "test", "example/", "!benchmark/",
			"",
			".npmignore", "coverage/", "Gulpfile.js", "HISTORY", "test/",
		}, "\r\n"), env.ReadFile(".npmignore"))
	})
}

func TestRun_Convergence(t *testing.T) {
	env := standardProject(t)
	env.WriteFile(".npmignore", "# mine\nlib/\n")
	confirmer := &testutil.RecordingConfirmer{Answer: true}

	first, err := gen.Run(context.Background(), options(env, confirmer))
	require.NoError(t, err)
	require.Equal(t, types.StatusSaved, first.Status)

	second, err := gen.Run(context.Background(), options(env, confirmer))
	require.NoError(t, err)
	assert.Equal(t, types.StatusAlreadyPerfect, second.Status)
	assert.Equal(t, 1, confirmer.Calls())
}

func TestRun_CustomManifestName(t *testing.T) {
	env := standardProject(t)
	opts := options(env, nil)
	opts.Config.Manifest.Filename = ".pkgignore"
	opts.Config.Manifest.HeaderTool = ""

	outcome, err := gen.Run(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, env.Path(".pkgignore"), outcome.Path)
	assert.Equal(t, ".pkgignore\nbenchmark/\ncoverage/\ntest/", env.ReadFile(".pkgignore"))
}

func TestRun_CommentManifestName(t *testing.T) {
	env := standardProject(t)
	opts := options(env, nil)
	opts.Config.Manifest.Filename = "#ignore"

	var err error
	require.NotPanics(t, func() {
		_, err = gen.Run(context.Background(), opts)
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
	assert.False(t, env.Exists("#ignore"))
}

func TestRun_RootNotFound(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WriteFile("afile", "")

	for _, root := range []string{"/missing", env.Path("afile")} {
		opts := options(env, nil)
		opts.Root = root

		outcome, err := gen.Run(context.Background(), opts)
		assert.Nil(t, outcome)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRootNotFound), root)
	}
}

func TestRun_ManifestReadFailure(t *testing.T) {
	t.Run("directory", func(t *testing.T) {
		env := testutil.NewProject(t, testutil.EnvMemoryOnly, testutil.ProjectConfig{Dirs: []string{".npmignore"}})

		_, err := gen.Run(context.Background(), options(env, nil))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrManifestRead))
	})

	t.Run("unreadable", func(t *testing.T) {
		env := standardProject(t)
		env.WriteFile(".npmignore", "lib/")
		faulty := filesystem.NewFaulty(env.FS)
		faulty.ReadErrors[env.Path(".npmignore")] = fs.ErrPermission
		opts := options(env, nil)
		opts.FS = faulty

		_, err := gen.Run(context.Background(), opts)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrManifestRead))
		assert.ErrorIs(t, err, fs.ErrPermission)
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		env := standardProject(t)
		env.WriteFile(".npmignore", "lib/\n\xff\xfe")

		_, err := gen.Run(context.Background(), options(env, &testutil.RecordingConfirmer{Answer: true}))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrManifestRead))
		assert.Equal(t, env.Path(".npmignore"), errors.GetErrorDetails(err)["path"])
		assert.Equal(t, "lib/\n\xff\xfe", env.ReadFile(".npmignore"))
	})
}

func TestRun_WriteFailure(t *testing.T) {
	env := standardProject(t)
	faulty := filesystem.NewFaulty(env.FS)
	faulty.WriteErrors[env.Path(".npmignore")] = fs.ErrPermission
	opts := options(env, nil)
	opts.FS = faulty

	outcome, err := gen.Run(context.Background(), opts)
	assert.Nil(t, outcome)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManifestWrite))
	assert.False(t, env.Exists(".npmignore"))
}

func TestRun_CanceledContext(t *testing.T) {
	env := standardProject(t)
	env.WriteFile(".npmignore", "lib/")
	confirmer := &testutil.RecordingConfirmer{Answer: true}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gen.Run(ctx, options(env, confirmer))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, confirmer.Calls())
	assert.Equal(t, "lib/", env.ReadFile(".npmignore"))
}

func TestRun_CanceledWhileConfirming(t *testing.T) {
	env := standardProject(t)
	env.WriteFile(".npmignore", "lib/")

	ctx, cancel := context.WithCancel(context.Background())
	confirmer := types.ConfirmFunc(func(string) (bool, error) {
		cancel()
		return true, nil
	})

	_, err := gen.Run(ctx, options(env, confirmer))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "lib/", env.ReadFile(".npmignore"))
}

func TestPrepare(t *testing.T) {
	env := standardProject(t)
	env.WriteFile(".npmignore", "coverage")

	prep, err := gen.Prepare(options(env, nil))
	require.NoError(t, err)

	assert.Equal(t, env.Path(".npmignore"), prep.Path)
	assert.Equal(t, types.StatusNeedsUpdate, prep.Plan.Status)
	assert.Len(t, prep.Candidates, 4)
	assert.Equal(t, []string{".npmignore", "benchmark/", "test/"}, prep.Plan.AdditionLines())
}
