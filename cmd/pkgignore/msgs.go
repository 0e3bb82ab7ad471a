package pkgignore

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Keep a package-exclusion manifest complete"
	MsgGenShort        = "Create or complete the manifest"
	MsgCheckShort      = "Check that the manifest is complete"
	MsgCandidatesShort = "List the patterns detected in the project"
	MsgGenConfigShort  = "Print or write the default configuration"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun   = "Print the resulting manifest instead of writing it"
	MsgFlagForce    = "Write pending updates without asking"
	MsgFlagRoot     = "Project root directory"
	MsgFlagConfig   = "Configuration file loaded after the project's own"
	MsgFlagFormat   = "Output format: auto, terminal, text or json"
	MsgFlagPlatform = "Platform policy: auto, posix or windows"
	MsgFlagWrite    = "Write .pkgignore.toml instead of printing"

	// Error messages
	MsgErrNoCommand = "no command specified"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/gen-long.txt
	msgGenLongRaw string
	MsgGenLong    = strings.TrimSpace(msgGenLongRaw)

	//go:embed msgs/gen-example.txt
	msgGenExampleRaw string
	MsgGenExample    = strings.TrimRight(msgGenExampleRaw, "\n")

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/check-example.txt
	msgCheckExampleRaw string
	MsgCheckExample    = strings.TrimRight(msgCheckExampleRaw, "\n")

	//go:embed msgs/candidates-long.txt
	msgCandidatesLongRaw string
	MsgCandidatesLong    = strings.TrimSpace(msgCandidatesLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)
)
