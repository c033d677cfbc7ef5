package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/deevus/texttable/table"
)

// terminalWidth asks for the width of the terminal with --max-width.
const terminalWidth = -1

type renderOptions struct {
	sourceFlags
	maxWidth int
	rows     []int
	columns  []int
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render [files...]",
		Short: "Print files as tables",
		Long: `Print each file as a table. "-" reads from stdin.

--max-width binds the table to a width: 0 removes the limit and -1 uses the width of the terminal. --rows and --columns print a selection, in the given order.`,
		Example: `  texttable render pools.csv
  texttable render --max-width -1 --style compact users.json
  kubectl get pods -o json | texttable render --columns 0,2 -`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, opts)
		},
	}

	opts.register(cmd.Flags())
	cmd.Flags().IntVarP(&opts.maxWidth, "max-width", "w", 0, "width limit, 0 for none, -1 for the terminal width (default from style)")
	cmd.Flags().IntSliceVar(&opts.rows, "rows", nil, "row indexes to print (default all)")
	cmd.Flags().IntSliceVar(&opts.columns, "columns", nil, "column indexes to print (default all)")
	return cmd
}

func runRender(cmd *cobra.Command, args []string, opts *renderOptions) error {
	style, err := opts.resolveStyle(cmd)
	if err != nil {
		return err
	}

	width := style.MaxWidth
	if cmd.Flags().Changed("max-width") {
		width = opts.maxWidth
	}
	if width < terminalWidth {
		return fmt.Errorf("--max-width must be -1 or more, got %d", width)
	}

	srcs := opts.sources(cmd, args, style)
	tables, err := srcs.LoadAll(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, t := range tables {
		name := srcs.All()[i].Name()
		if err := bindWidth(cmd, t, width); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if len(tables) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "==> %s <==\n", name)
		}
		if err := t.Log(out, opts.rows, opts.columns); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// bindWidth applies the width limit. A terminal narrower than the table
// minimum gets the minimum; an explicit width below it is an error.
func bindWidth(cmd *cobra.Command, t *table.Table, width int) error {
	if width != terminalWidth {
		return t.SetMaxWidth(width)
	}
	cols, ok := terminalColumns(cmd)
	if !ok {
		log.Debug().Msg("output is not a terminal, rendering without a width limit")
		return t.SetMaxWidth(table.NoLimit)
	}
	return t.SetMaxWidth(max(cols, t.MinWidth()))
}

func terminalColumns(cmd *cobra.Command) (int, bool) {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return 0, false
	}
	return w, true
}
