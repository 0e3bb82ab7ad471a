package display_test

import (
	"testing"

	"github.com/arthur-debert/pkgignore/pkg/commands/candidates"
	"github.com/arthur-debert/pkgignore/pkg/commands/check"
	"github.com/arthur-debert/pkgignore/pkg/commands/gen"
	"github.com/arthur-debert/pkgignore/pkg/commands/genconfig"
	"github.com/arthur-debert/pkgignore/pkg/types"
	"github.com/arthur-debert/pkgignore/pkg/ui/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromResult_Gen(t *testing.T) {
	view, ok := display.FromResult(&gen.Outcome{
		Status:    types.StatusSaved,
		Path:      "/p/.npmignore",
		Content:   []byte("x"),
		Additions: []string{"coverage/"},
		Written:   true,
	})
	require.True(t, ok)

	assert.Equal(t, "gen", view.Command)
	assert.Equal(t, "saved", view.Status)
	assert.Empty(t, view.Content, "content is only shown for dry runs")
	assert.Equal(t, []string{"OK: saved", "+ coverage/"}, display.Lines(view, display.Plain))
}

func TestFromResult_GenDryRun(t *testing.T) {
	view, ok := display.FromResult(&gen.Outcome{
		Status:  types.StatusSaved,
		Path:    "/p/.npmignore",
		Content: []byte(".npmignore\ncoverage/"),
		DryRun:  true,
	})
	require.True(t, ok)

	assert.Equal(t, []string{
		"OK: saved",
		"",
		"# dry run: /p/.npmignore",
		".npmignore\ncoverage/",
	}, display.Lines(view, display.Plain))
}

func TestFromResult_Check(t *testing.T) {
	view, ok := display.FromResult(&check.Report{Status: types.StatusNeedsUpdate, Missing: []string{"test/"}})
	require.True(t, ok)
	assert.Equal(t, []string{"OK: needs-update", "+ test/"}, display.Lines(view, display.Plain))
}

func TestFromResult_Candidates(t *testing.T) {
	view, ok := display.FromResult(&candidates.Result{Root: "/p", Patterns: []string{".npmignore", "test/"}})
	require.True(t, ok)
	assert.Equal(t, []string{".npmignore", "test/"}, display.Lines(view, display.Plain))
}

func TestFromResult_GenConfig(t *testing.T) {
	view, ok := display.FromResult(&genconfig.GenConfigResult{ConfigContent: "# a = 1\n", FilesWritten: []string{}})
	require.True(t, ok)
	assert.Equal(t, []string{"# a = 1"}, display.Lines(view, display.Plain))

	view, _ = display.FromResult(&genconfig.GenConfigResult{ConfigContent: "# a = 1\n", FilesWritten: []string{"/p/.pkgignore.toml"}})
	assert.Equal(t, []string{"Wrote /p/.pkgignore.toml"}, display.Lines(view, display.Plain))
}

func TestFromResult_Unknown(t *testing.T) {
	_, ok := display.FromResult(42)
	assert.False(t, ok)
}

func TestLines_StylerReceivesStyleNames(t *testing.T) {
	var used []string
	styler := func(style, text string) string {
		used = append(used, style)
		return text
	}

	display.Lines(&display.View{Command: "gen", Status: "canceled", Items: []string{"a"}}, styler)
	assert.Equal(t, []string{"Warning", "Added"}, used)
}
