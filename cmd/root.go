package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-wordwrap"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/deevus/texttable/config"
)

// logEnv overrides the default log level when --log-level is not given.
const logEnv = "TEXTTABLE_LOG"

const helpWidth = 80

// NewRootCmd builds the texttable command tree.
func NewRootCmd() *cobra.Command {
	var logFile *os.File
	root := &cobra.Command{
		Use:   "texttable",
		Short: "Render CSV, TSV, JSON and YAML files as text tables",
		Long: wordwrap.WrapString(`texttable lays out tabular data as plain text. Columns are as wide as their widest cell; when a table is bound to a width, the widest column gives up one character at a time until everything fits, and cells that no longer fit are cut with "..".

Nested lists and objects in JSON or YAML input are rendered as tables inside their cell. Styles from the config file choose separators, the fill shown in empty cells and how numbers are printed.`, helpWidth),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			f, err := setupLogging(cmd)
			logFile = f
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logFile == nil {
				return nil
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				With().Timestamp().Logger()
			err := logFile.Close()
			logFile = nil
			if err != nil {
				return fmt.Errorf("closing log file: %w", err)
			}
			return nil
		},
	}

	root.PersistentFlags().String("log-level", "", "log level (trace|debug|info|warn|error), also "+logEnv)
	root.PersistentFlags().String("log-file", "", "write logs to this file instead of stderr")
	root.PersistentFlags().String("config", "", "path to config file (default "+config.DefaultPath()+")")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newViewCmd())
	root.AddCommand(newStylesCmd())

	root.CompletionOptions.DisableDefaultCmd = true
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging points the global zerolog logger at stderr, or at the
// --log-file, with the level from --log-level or the environment. The
// opened log file is returned for the caller to close.
func setupLogging(cmd *cobra.Command) (*os.File, error) {
	level, _ := cmd.Flags().GetString("log-level")
	if level == "" {
		level = os.Getenv(logEnv)
	}
	if level == "" {
		level = zerolog.LevelWarnValue
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)

	var (
		out     io.Writer = cmd.ErrOrStderr()
		f       *os.File
		noColor bool
	)
	if path, _ := cmd.Flags().GetString("log-file"); path != "" {
		f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		out = f
		noColor = true
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: noColor}).
		With().Timestamp().Logger()
	return f, nil
}
