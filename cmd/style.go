package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/deevus/texttable/config"
	"github.com/deevus/texttable/internal"
)

// sourceFlags are shared by the commands that read tables.
type sourceFlags struct {
	style    string
	format   string
	noHeader bool
	fill     string
	headSep  string
	rowSep   string
	colSep   string
}

func (f *sourceFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.style, "style", "s", "", "style from the config file (default is the config's default_style)")
	fs.StringVarP(&f.format, "format", "f", internal.FormatAuto, "input format ("+strings.Join(internal.Formats, "|")+")")
	fs.BoolVar(&f.noHeader, "no-header", false, "treat the first CSV/TSV record as data")
	fs.StringVar(&f.fill, "fill", "", "text shown in empty cells")
	fs.StringVar(&f.headSep, "head-sep", "", `head separator: 2 characters, 1 to repeat, "" for none`)
	fs.StringVar(&f.rowSep, "row-sep", "", `row separator: 2 characters, 1 to repeat, "" for none`)
	fs.StringVar(&f.colSep, "col-sep", "", "column separator character")
}

// resolveStyle loads the config and applies the flags given on the command
// line on top of the selected style.
func (f *sourceFlags) resolveStyle(cmd *cobra.Command) (config.Style, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Style{}, err
	}
	style, err := cfg.Style(f.style)
	if err != nil {
		return config.Style{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("fill") {
		style.Fill = f.fill
	}
	if flags.Changed("head-sep") {
		style.HeadSeparator = &f.headSep
	}
	if flags.Changed("row-sep") {
		style.RowSeparator = &f.rowSep
	}
	if flags.Changed("col-sep") {
		style.ColumnSeparator = f.colSep
	}
	if err := style.Validate(); err != nil {
		return config.Style{}, fmt.Errorf("style flags: %w", err)
	}
	return style, nil
}

// sources opens the arguments with the resolved style. The width limit is
// left to the caller so it can be applied once the head is in place.
func (f *sourceFlags) sources(cmd *cobra.Command, args []string, style config.Style) *internal.Sources {
	style.MaxWidth = 0
	return internal.Open(args, internal.SourceOptions{
		Format: f.format,
		Header: !f.noHeader,
		Style:  style,
	}, cmd.InOrStdin())
}
