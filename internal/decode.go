package internal

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/deevus/texttable/config"
	"github.com/deevus/texttable/table"
)

type decoder struct {
	header bool
	style  config.Style
}

// csv reads delimited records. Empty fields become empty cells and
// numeric fields become numbers.
func (d *decoder) csv(r io.Reader, comma rune) ([][]any, []any, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	var head []any
	if d.header && len(records) > 0 {
		head = make([]any, len(records[0]))
		for i, field := range records[0] {
			head[i] = field
		}
		records = records[1:]
	}
	rows := make([][]any, len(records))
	for i, record := range records {
		row := make([]any, len(record))
		for j, field := range record {
			row[j] = d.field(field)
		}
		rows[i] = row
	}
	return rows, head, nil
}

func (d *decoder) field(s string) any {
	if s == "" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return d.formatInt(i)
	}
	if looksNumeric(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return d.formatFloat(f)
		}
	}
	return s
}

// looksNumeric rejects words strconv would still parse, such as "nan",
// "inf" and hex literals.
func looksNumeric(s string) bool {
	return !strings.ContainsFunc(s, func(r rune) bool {
		return r != 'e' && r != 'E' && (r < '0' || r > '9') && !strings.ContainsRune("+-._", r)
	})
}

func (d *decoder) formatInt(i int64) any {
	switch d.style.Numbers {
	case config.NumbersComma:
		return humanize.Comma(i)
	case config.NumbersBytes:
		if i >= 0 {
			return humanize.IBytes(uint64(i))
		}
	}
	return i
}

func (d *decoder) formatFloat(f float64) any {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return f
	}
	switch d.style.Numbers {
	case config.NumbersComma:
		return humanize.Commaf(f)
	case config.NumbersBytes:
		if f >= 0 && f == math.Trunc(f) && f < math.MaxUint64 {
			return humanize.IBytes(uint64(f))
		}
	}
	return f
}

// tree reads a JSON or YAML document. Both go through the YAML decoder so
// mapping keys keep their order.
func (d *decoder) tree(r io.Reader) ([][]any, []any, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, nil
		}
		return nil, nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil, nil
	}
	return d.grid(resolve(doc.Content[0]), d.header)
}

// grid lays a node out as rows:
//   - a sequence of mappings becomes one row per mapping under a head of
//     the keys in first-seen order;
//   - any other sequence becomes one row per element, sequences spreading
//     over columns;
//   - a mapping becomes key/value rows;
//   - a scalar becomes a single cell.
//
// header asks for a head where the layout has none of its own.
func (d *decoder) grid(n *yaml.Node, header bool) ([][]any, []any, error) {
	switch n.Kind {
	case yaml.SequenceNode:
		if len(n.Content) > 0 && allMappings(n.Content) {
			return d.records(n.Content)
		}
		rows := make([][]any, 0, len(n.Content))
		for _, item := range n.Content {
			item = resolve(item)
			if item.Kind != yaml.SequenceNode {
				v, err := d.value(item)
				if err != nil {
					return nil, nil, err
				}
				rows = append(rows, []any{v})
				continue
			}
			row := make([]any, len(item.Content))
			for i, c := range item.Content {
				v, err := d.value(c)
				if err != nil {
					return nil, nil, err
				}
				row[i] = v
			}
			rows = append(rows, row)
		}
		var head []any
		if header && len(rows) > 0 {
			head, rows = rows[0], rows[1:]
		}
		return rows, head, nil

	case yaml.MappingNode:
		rows := make([][]any, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := d.value(n.Content[i+1])
			if err != nil {
				return nil, nil, err
			}
			rows = append(rows, []any{n.Content[i].Value, v})
		}
		var head []any
		if header {
			head = []any{"key", "value"}
		}
		return rows, head, nil

	default:
		v, err := d.value(n)
		if err != nil {
			return nil, nil, err
		}
		return [][]any{{v}}, nil, nil
	}
}

func (d *decoder) records(items []*yaml.Node) ([][]any, []any, error) {
	var keys []string
	column := make(map[string]int)
	for _, item := range items {
		item = resolve(item)
		for i := 0; i+1 < len(item.Content); i += 2 {
			key := item.Content[i].Value
			if _, ok := column[key]; !ok {
				column[key] = len(keys)
				keys = append(keys, key)
			}
		}
	}

	rows := make([][]any, len(items))
	for r, item := range items {
		item = resolve(item)
		row := make([]any, len(keys))
		for i := 0; i+1 < len(item.Content); i += 2 {
			v, err := d.value(item.Content[i+1])
			if err != nil {
				return nil, nil, err
			}
			row[column[item.Content[i].Value]] = v
		}
		rows[r] = row
	}
	head := make([]any, len(keys))
	for i, k := range keys {
		head[i] = k
	}
	return rows, head, nil
}

// value converts a node to a cell value. Collections become nested tables
// styled like the outer one but without a width limit of their own.
func (d *decoder) value(n *yaml.Node) (any, error) {
	n = resolve(n)
	switch n.Kind {
	case yaml.SequenceNode, yaml.MappingNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		rows, head, err := d.grid(n, false)
		if err != nil {
			return nil, err
		}
		style := d.style
		style.MaxWidth = table.NoLimit
		t, err := table.New(append(style.Options(), table.WithData(rows))...)
		if err != nil {
			return nil, err
		}
		if head != nil {
			if err := t.AddHead(table.End, head...); err != nil {
				return nil, err
			}
		}
		return t, nil
	case yaml.ScalarNode:
		return d.scalar(n)
	default:
		return nil, fmt.Errorf("line %d: unexpected yaml node kind %d", n.Line, n.Kind)
	}
}

func (d *decoder) scalar(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			if u, uerr := strconv.ParseUint(n.Value, 0, 64); uerr == nil {
				return u, nil
			}
			return n.Value, nil
		}
		return d.formatInt(i), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return n.Value, nil
		}
		return d.formatFloat(f), nil
	default:
		return n.Value, nil
	}
}

func allMappings(items []*yaml.Node) bool {
	for _, item := range items {
		if resolve(item).Kind != yaml.MappingNode {
			return false
		}
	}
	return true
}

// resolve follows aliases to their anchors.
func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
