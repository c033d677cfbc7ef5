package internal

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/deevus/texttable/config"
	"github.com/deevus/texttable/table"
)

// Source produces one table.
type Source interface {
	Name() string
	Load(ctx context.Context) (*table.Table, error)
}

// FileSource reads a table from a file on disk.
type FileSource struct {
	Path   string
	Format string // csv, tsv, json, yaml; "" or auto picks from the extension
	Header bool   // first record becomes the head
	Style  config.Style
}

// Name returns the base name of the file.
func (s *FileSource) Name() string {
	return filepath.Base(s.Path)
}

// Load opens and decodes the file.
func (s *FileSource) Load(ctx context.Context) (*table.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	format, err := formatFor(s.Format, s.Path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", s.Path, err)
	}
	defer f.Close()

	return load(s.Name(), f, format, s.Header, s.Style)
}

// ReaderSource reads a table from a stream, usually stdin.
type ReaderSource struct {
	Label  string
	Reader io.Reader
	Format string // "" or auto sniffs json, otherwise csv
	Header bool
	Style  config.Style
}

// Name returns the label, or "stdin".
func (s *ReaderSource) Name() string {
	if s.Label == "" {
		return "stdin"
	}
	return s.Label
}

// Load reads the whole stream and decodes it.
func (s *ReaderSource) Load(ctx context.Context) (*table.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(s.Reader)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.Name(), err)
	}
	format := s.Format
	if format == "" || format == FormatAuto {
		format = sniff(data)
	}
	return load(s.Name(), strings.NewReader(string(data)), format, s.Header, s.Style)
}

func load(name string, r io.Reader, format string, header bool, style config.Style) (*table.Table, error) {
	start := time.Now()
	d := decoder{header: header, style: style}

	var (
		rows [][]any
		head []any
		err  error
	)
	switch format {
	case FormatCSV:
		rows, head, err = d.csv(r, ',')
	case FormatTSV:
		rows, head, err = d.csv(r, '\t')
	case FormatJSON, FormatYAML:
		rows, head, err = d.tree(r)
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}

	t, err := table.New(append(style.Options(), table.WithData(rows))...)
	if err != nil {
		return nil, fmt.Errorf("building table for %s: %w", name, err)
	}
	if head != nil {
		if err := t.AddHead(table.End, head...); err != nil {
			return nil, fmt.Errorf("building head for %s: %w", name, err)
		}
	}

	log.Debug().
		Str("source", name).
		Str("format", format).
		Int("rows", t.RowCount()).
		Int("columns", t.ColumnCount()).
		Dur("took", time.Since(start)).
		Msg("loaded source")
	return t, nil
}

// Sources holds the sources of one invocation in argument order.
type Sources struct {
	list []Source
}

// NewSources creates a Sources container from the given sources.
func NewSources(src ...Source) *Sources {
	return &Sources{list: src}
}

// SourceOptions apply to every source opened by Open.
type SourceOptions struct {
	Format string
	Header bool
	Style  config.Style
}

// Open creates a source per argument. "-" reads from stdin.
func Open(args []string, opts SourceOptions, stdin io.Reader) *Sources {
	src := make([]Source, 0, len(args))
	for _, arg := range args {
		if arg == "-" {
			src = append(src, &ReaderSource{Reader: stdin, Format: opts.Format, Header: opts.Header, Style: opts.Style})
			continue
		}
		src = append(src, &FileSource{Path: arg, Format: opts.Format, Header: opts.Header, Style: opts.Style})
	}
	return NewSources(src...)
}

// All returns the sources.
func (s *Sources) All() []Source {
	return s.list
}

// Len returns the number of sources.
func (s *Sources) Len() int {
	return len(s.list)
}

// LoadAll loads every source concurrently. Tables come back in source
// order; the first failure cancels the rest and is returned.
func (s *Sources) LoadAll(ctx context.Context) ([]*table.Table, error) {
	g, gctx := errgroup.WithContext(ctx)
	tables := make([]*table.Table, len(s.list))
	for i, src := range s.list {
		g.Go(func() error {
			t, err := src.Load(gctx)
			if err != nil {
				return fmt.Errorf("%s: %w", src.Name(), err)
			}
			tables[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}
