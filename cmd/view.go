package cmd

import (
	"fmt"
	"time"

	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/deevus/texttable/app"
)

type viewOptions struct {
	sourceFlags
	staleTTL time.Duration
}

func newViewCmd() *cobra.Command {
	opts := &viewOptions{}
	cmd := &cobra.Command{
		Use:   "view [files...]",
		Short: "Browse files as tables in the terminal",
		Long: `Open each file in its own tab.

Keys: q quit, r reload the tab, R reload every tab, 1-9 and Tab/Shift+Tab switch tabs, j/k/h/l scroll, - and + narrow and widen the table, 0 follows the terminal width again.

Logs go to --log-file while the viewer is open.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, args, opts)
		},
	}

	opts.register(cmd.Flags())
	cmd.Flags().DurationVar(&opts.staleTTL, "stale-ttl", 30*time.Second, "reload a tab on switch once its data is older than this")
	return cmd
}

func runView(cmd *cobra.Command, args []string, opts *viewOptions) error {
	for _, arg := range args {
		if arg == "-" {
			return fmt.Errorf("view cannot read from stdin, use render")
		}
	}

	style, err := opts.resolveStyle(cmd)
	if err != nil {
		return err
	}

	root := app.New(app.Params{
		Sources:  opts.sources(cmd, args, style),
		StaleTTL: opts.staleTTL,
		Width:    style.MaxWidth,
	})
	if err := root.Load(cmd.Context()); err != nil {
		log.Warn().Err(err).Msg("some tables failed to load")
	}

	if path, _ := cmd.Flags().GetString("log-file"); path == "" {
		// stderr belongs to the screen from here on
		log.Logger = log.Logger.Level(zerolog.Disabled)
	}

	vxApp, err := vxfw.NewApp(vaxis.Options{})
	if err != nil {
		return fmt.Errorf("starting terminal: %w", err)
	}
	return vxApp.Run(root)
}
