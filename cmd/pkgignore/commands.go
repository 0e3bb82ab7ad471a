// Package pkgignore wires the pkgignore command tree.
package pkgignore

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/pkgignore/internal/version"
	"github.com/arthur-debert/pkgignore/pkg/cobrax/topics"
	"github.com/arthur-debert/pkgignore/pkg/commands/candidates"
	"github.com/arthur-debert/pkgignore/pkg/commands/check"
	"github.com/arthur-debert/pkgignore/pkg/commands/gen"
	"github.com/arthur-debert/pkgignore/pkg/commands/genconfig"
	"github.com/arthur-debert/pkgignore/pkg/config"
	"github.com/arthur-debert/pkgignore/pkg/errors"
	"github.com/arthur-debert/pkgignore/pkg/logging"
	"github.com/arthur-debert/pkgignore/pkg/types"
	"github.com/arthur-debert/pkgignore/pkg/ui"
	"github.com/arthur-debert/pkgignore/pkg/ui/confirmations"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicsFS embed.FS

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	verbosity  int
	dryRun     bool
	force      bool
	root       string
	configFile string
	format     string
	platform   string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "pkgignore",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("pkgignore %s (commit %s, built %s)\n",
		version.Version, version.Commit, version.Date))

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	flags.BoolVar(&opts.force, "force", false, MsgFlagForce)
	flags.StringVarP(&opts.root, "root", "C", ".", MsgFlagRoot)
	flags.StringVar(&opts.configFile, "config", "", MsgFlagConfig)
	flags.StringVar(&opts.format, "format", "auto", MsgFlagFormat)
	flags.StringVar(&opts.platform, "platform", "", MsgFlagPlatform)

	_ = rootCmd.RegisterFlagCompletionFunc("format", fixedCompletions(ui.FormatNames()...))
	_ = rootCmd.RegisterFlagCompletionFunc("platform", fixedCompletions("auto", "posix", "windows"))

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.AddCommand(newGenCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newCandidatesCmd(opts))
	rootCmd.AddCommand(newGenConfigCmd(opts))
	rootCmd.AddCommand(newCompletionCmd())

	sub, err := fs.Sub(topicsFS, "topics")
	if err == nil {
		_, err = topics.Initialize(rootCmd, sub, topics.Options{
			Renderer: topics.NewGlamourRenderer(),
		})
	}
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// ExitCode maps a command error to the process exit status. A failed check
// exits with 2, any other error with 1.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.IsErrorCode(err, errors.ErrCheckFailed):
		return 2
	default:
		return 1
	}
}

// projectRoot resolves the --root flag to an absolute path
func (o *globalOptions) projectRoot() (string, error) {
	root, err := filepath.Abs(o.root)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "invalid root %s", o.root)
	}
	return root, nil
}

// loadConfig resolves the configuration for root, applying flag overrides
func (o *globalOptions) loadConfig(root string) (*config.Config, error) {
	overrides := map[string]interface{}{}
	if o.platform != "" {
		overrides["platform"] = o.platform
	}
	return config.Load(config.LoadOptions{
		Root:      root,
		File:      o.configFile,
		Overrides: overrides,
	})
}

func (o *globalOptions) renderer(w io.Writer) (ui.Renderer, error) {
	format, err := ui.ParseFormat(o.format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, w)
}

// confirmerFor asks on the command's input, interactively when it is a terminal
func confirmerFor(cmd *cobra.Command, def bool) types.Confirmer {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		return confirmations.New(f, cmd.ErrOrStderr(), def)
	}
	return confirmations.NewConsoleConfirmer(in, cmd.ErrOrStderr(), def)
}

func newGenCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "gen",
		Short:   MsgGenShort,
		Long:    MsgGenLong,
		Example: MsgGenExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := opts.projectRoot()
			if err != nil {
				return err
			}
			cfg, err := opts.loadConfig(root)
			if err != nil {
				return err
			}
			renderer, err := opts.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			outcome, err := gen.Run(cmd.Context(), gen.Options{
				Root:      root,
				Config:    cfg,
				Force:     opts.force,
				DryRun:    opts.dryRun,
				Confirmer: confirmerFor(cmd, cfg.Confirm.Default),
			})
			if err != nil {
				return err
			}
			return renderer.RenderResult(outcome)
		},
	}
}

func newCheckCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "check",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		Example: MsgCheckExample,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := opts.projectRoot()
			if err != nil {
				return err
			}
			cfg, err := opts.loadConfig(root)
			if err != nil {
				return err
			}
			renderer, err := opts.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			report, checkErr := check.Check(check.Options{Root: root, Config: cfg})
			if report != nil {
				if err := renderer.RenderResult(report); err != nil {
					return err
				}
			}
			return checkErr
		},
	}
}

func newCandidatesCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "candidates",
		Short:   MsgCandidatesShort,
		Long:    MsgCandidatesLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := opts.projectRoot()
			if err != nil {
				return err
			}
			cfg, err := opts.loadConfig(root)
			if err != nil {
				return err
			}
			renderer, err := opts.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			result, err := candidates.List(candidates.Options{Root: root, Config: cfg})
			if err != nil {
				return err
			}
			return renderer.RenderResult(result)
		},
	}
}

func newGenConfigCmd(opts *globalOptions) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := opts.projectRoot()
			if err != nil {
				return err
			}
			renderer, err := opts.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			result, err := genconfig.GenConfig(genconfig.GenConfigOptions{Root: root, Write: write})
			if err != nil {
				return err
			}
			return renderer.RenderResult(result)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

func fixedCompletions(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
