package cli

import (
	"embed"
	"fmt"

	"github.com/leighmacdonald/dotupdate/internal/version"
	"github.com/leighmacdonald/dotupdate/pkg/cobrax/topics"
	"github.com/leighmacdonald/dotupdate/pkg/config"
	"github.com/leighmacdonald/dotupdate/pkg/errors"
	"github.com/leighmacdonald/dotupdate/pkg/linker"
	"github.com/leighmacdonald/dotupdate/pkg/logging"
	"github.com/leighmacdonald/dotupdate/pkg/ui/report"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// LoggerName is the component name of CLI log lines.
const LoggerName = "dotupdate"

//go:embed topics
var helpTopics embed.FS

type rootOptions struct {
	verbosity  int
	debug      bool
	configFile string

	source string
	dest   string
	filter string
	ignore string
	backup bool
	test   bool
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "dotupdate",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbosity := opts.verbosity
			if opts.debug && verbosity < 1 {
				verbosity = 1
			}
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	pflags := rootCmd.PersistentFlags()
	pflags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	pflags.BoolVar(&opts.debug, "debug", false, MsgFlagDebug)

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.source, config.KeySource, "s", "", MsgFlagSource)
	flags.StringVarP(&opts.dest, config.KeyDest, "d", "", MsgFlagDest)
	flags.StringVarP(&opts.filter, config.KeyFilter, "f", "", MsgFlagFilter)
	flags.StringVarP(&opts.ignore, config.KeyIgnore, "i", "", MsgFlagIgnore)
	flags.BoolVarP(&opts.backup, config.KeyBackup, "b", false, MsgFlagBackup)
	flags.BoolVarP(&opts.test, config.KeyTest, "t", false, MsgFlagTest)
	flags.StringVarP(&opts.configFile, "config", "c", "", MsgFlagConfig)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenConfigCmd())

	initTemplateFormatting()
	rootCmd.SetUsageTemplate(usageTemplate)

	if tm, err := topics.New(helpTopics, "topics", topics.Options{}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	} else {
		tm.Install(rootCmd)
	}

	return rootCmd
}

// overrides collects the flags the user actually passed.
func overrides(cmd *cobra.Command, opts *rootOptions) map[string]interface{} {
	values := map[string]interface{}{
		config.KeySource: opts.source,
		config.KeyDest:   opts.dest,
		config.KeyFilter: opts.filter,
		config.KeyIgnore: opts.ignore,
		config.KeyBackup: opts.backup,
		config.KeyTest:   opts.test,
	}

	out := make(map[string]interface{}, len(values))
	for key, value := range values {
		if cmd.Flags().Changed(key) {
			out[key] = value
		}
	}
	return out
}

func runInstall(cmd *cobra.Command, opts *rootOptions) error {
	logger := logging.GetLogger(LoggerName)

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: opts.configFile,
		Overrides:  overrides(cmd, opts),
	})
	if err != nil {
		return err
	}

	logger.Debug().
		Str("config_file", cfg.File).
		Str("source", cfg.Source).
		Str("dest", cfg.Dest).
		Bool("dry_run", cfg.Test).
		Msg("Installing dotfiles")

	result, err := linker.Install(cfg.ToRequest())
	if err != nil {
		return err
	}

	return report.Render(cmd.OutOrStdout(), result)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenConfigShort,
		Example: `  # Start a config next to your dotfiles
  dotupdate genconfig > config.ini`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), config.GenerateConfigContent())
			return err
		},
	}
}

// Process exit statuses.
const (
	ExitOK = 0
	// ExitInvalidConfiguration covers aborted runs and unreadable config
	ExitInvalidConfiguration = 1
	// ExitUsage is a bad flag or argument rejected by cobra
	ExitUsage = 2
)

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.IsInvalidConfiguration(err):
		return ExitInvalidConfiguration
	case errors.GetErrorCode(err) == errors.ErrUnknown:
		return ExitUsage
	default:
		return ExitInvalidConfiguration
	}
}
