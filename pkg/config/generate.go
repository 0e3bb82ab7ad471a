package config

import (
	"strings"

	"github.com/arthur-debert/pkgignore/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

const extraExample = `
# Extra catalog rows are appended after the built-in ones.
# probe is one of always, file, dir or glob.
#
# [[catalog.extra]]
# probe = "file"
# pattern = "Jakefile"
#
# [[catalog.extra]]
# probe = "dir"
# pattern = "fixtures"
# dir = true
`

// GenerateConfigContent renders cfg as TOML with every value commented out
func GenerateConfigContent(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return commentOutConfigValues(string(data)) + extraExample, nil
}

// commentOutConfigValues comments out every assignment line, keeping
// blank lines, comments and section headers
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}
	return strings.Join(result, "\n")
}
