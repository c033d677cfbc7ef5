package cmd

import (
	"github.com/spf13/cobra"

	"github.com/deevus/texttable/config"
	"github.com/deevus/texttable/table"
)

func newStylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the configured styles",
		Args:  cobra.NoArgs,
		RunE:  runStyles,
	}
}

func runStyles(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	def, err := cfg.Style("")
	if err != nil {
		return err
	}
	def.MaxWidth = table.NoLimit

	t, err := stylesTable(cfg, def)
	if err != nil {
		return err
	}
	return t.Log(cmd.OutOrStdout(), nil, nil)
}

// stylesTable lists every style, rendered in the default style.
func stylesTable(cfg *config.Config, render config.Style) (*table.Table, error) {
	rows := make([][]any, 0, len(cfg.Styles))
	for _, name := range cfg.StyleNames() {
		s := cfg.Styles[name]
		var def any
		if name == cfg.DefaultStyle {
			def = "*"
		}
		var width any = "none"
		if s.MaxWidth != table.NoLimit {
			width = s.MaxWidth
		}
		rows = append(rows, []any{
			name, def, quoted(s.Fill), quoted(deref(s.HeadSeparator)), quoted(deref(s.RowSeparator)),
			quoted(s.ColumnSeparator), width, s.Numbers,
		})
	}

	t, err := table.New(append(render.Options(), table.WithData(rows))...)
	if err != nil {
		return nil, err
	}
	if err := t.AddHead(table.End, "name", "default", "fill", "head", "row", "column", "max width", "numbers"); err != nil {
		return nil, err
	}
	return t, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func quoted(s string) string {
	return `"` + s + `"`
}
