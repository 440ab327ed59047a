package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/textkit/core/config"
	tkerrors "github.com/msto63/textkit/core/errors"
	"github.com/msto63/textkit/core/log"
)

// rootOptions holds the persistent flags and the state resolved from them
// before a subcommand runs.
type rootOptions struct {
	cfgFile   string
	verbose   bool
	logFormat string

	settings config.Settings
	logger   *log.Logger
	timer    *log.Timer
}

// NewRootCmd builds the textkit command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{
		settings: config.DefaultSettings(),
		logger:   log.Discard(),
	}

	rootCmd := &cobra.Command{
		Use:   "textkit",
		Short: "Null-safe string utilities for the command line",
		Long: `textkit exposes the textkit string library as small commands.

Text is taken from the arguments or, when there are none, from stdin.
Settings are read from --config, ./textkit.toml or the user config
directory, and can be overridden with TEXTKIT_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.timer != nil {
				opts.timer.Stop()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default: ./textkit.toml)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")
	flags.StringVar(&opts.logFormat, "log-format", "", "log format: text, json or logfmt")

	rootCmd.AddCommand(
		newVersionCmd(opts),
		newArticleCmd(opts),
		newPluralCmd(opts),
		newClassifyCmd(opts),
		newLinesCmd(opts),
		newCommonPrefixCmd(opts),
		newReplaceCmd(opts),
		newFilenameCmd(opts),
		newQuoteCmd(opts),
		newUnquoteCmd(opts),
	)

	return rootCmd
}

// Execute runs the command tree against os.Args. Errors the logger has
// already reported are not printed a second time.
func Execute() error {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	if err != nil {
		var silent *SilentError
		if !errors.As(err, &silent) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	return err
}

// setup resolves settings and the logger for the command about to run.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	o.logger = log.NewWithConfig(log.Config{
		Level:  log.DefaultLevel(),
		Format: log.FormatText,
		Output: cmd.ErrOrStderr(),
		Name:   "textkit",
	}).WithCommand(cmd.CommandPath())

	path := o.cfgFile
	if path == "" {
		path = config.Discover(config.DefaultDiscoveryOptions())
	}

	settings, err := config.LoadSettings(path)
	if err != nil {
		return o.report(err)
	}

	if o.logFormat != "" {
		format, err := log.ParseFormat(o.logFormat)
		if err != nil {
			return o.report(tkerrors.CLIUsage("log-format", o.logFormat, "text, json or logfmt"))
		}
		settings.LogFormat = format
	}
	if (o.verbose || settings.Verbose) && settings.LogLevel > log.LevelDebug {
		settings.LogLevel = log.LevelDebug
	}
	o.settings = settings

	o.logger = log.NewWithConfig(log.Config{
		Level:  settings.LogLevel,
		Format: settings.LogFormat,
		Output: cmd.ErrOrStderr(),
		Name:   "textkit",
	}).WithRequestID(uuid.NewString()).WithCommand(cmd.CommandPath())

	o.logger.Debug("settings resolved", log.Fields{
		"source":     settings.Source,
		"log_level":  settings.LogLevel.String(),
		"log_format": settings.LogFormat.String(),
		"comparison": settings.Comparison.String(),
	})

	o.timer = o.logger.StartTimer(cmd.Name()).WithField("config", settings.Source)
	return nil
}

// report logs err through the command logger and stops the command timer
// with it. When the log line was actually written the error comes back
// wrapped in a SilentError.
func (o *rootOptions) report(err error) error {
	if err == nil {
		return nil
	}
	o.logger.LogError(err)
	if o.timer != nil {
		o.timer.StopWithError(err)
	}
	if o.logger.IsLevelEnabled(log.LevelForError(err)) {
		return NewSilentError(err)
	}
	return err
}
