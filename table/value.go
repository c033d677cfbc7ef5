package table

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// Kind identifies which case of a Value is populated.
type Kind int

const (
	KindNone Kind = iota
	KindInt
	KindFloat
	KindString
	KindOpaque
	KindTable
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindOpaque:
		return "opaque"
	case KindTable:
		return "table"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is the content of a cell. Exactly one case is populated, selected
// by Kind. The zero Value is None.
type Value struct {
	kind   Kind
	i      int64
	f      float64
	s      string
	opaque any
	table  *Table
}

// None returns the empty value. It is distinct from String("").
func None() Value { return Value{} }

// Int returns an integer value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a text value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Opaque wraps any other value. It is rendered with fmt.Sprint and only
// goes through the text truncation path.
func Opaque(v any) Value { return Value{kind: KindOpaque, opaque: v} }

// Nested wraps a table so it can live inside a cell. A nil table is None.
func Nested(t *Table) Value {
	if t == nil {
		return None()
	}
	return Value{kind: KindTable, table: t}
}

// ValueOf converts a Go value to a Value. Integers and floats of every
// width map onto Int and Float, strings onto String, tables onto Nested;
// anything else is Opaque.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case nil:
		return None()
	case Value:
		return x
	case *Cell:
		if x == nil {
			return None()
		}
		return x.value
	case *Table:
		return Nested(x)
	case string:
		return String(x)
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return ValueOf(uint64(x))
	case uint8:
		return Int(int64(x))
	case uint16:
		return Int(int64(x))
	case uint32:
		return Int(int64(x))
	case uint64:
		if x > math.MaxInt64 {
			return Opaque(x)
		}
		return Int(int64(x))
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	default:
		return Opaque(v)
	}
}

// Kind reports which case is populated.
func (v Value) Kind() Kind { return v.kind }

// IsNone reports whether v is the empty value.
func (v Value) IsNone() bool { return v.kind == KindNone }

// Int returns the integer case and whether it is populated.
func (v Value) Int() (int64, bool) { return v.i, v.kind == KindInt }

// Float returns the float case and whether it is populated.
func (v Value) Float() (float64, bool) { return v.f, v.kind == KindFloat }

// Text returns the string case and whether it is populated.
func (v Value) Text() (string, bool) { return v.s, v.kind == KindString }

// Opaque returns the wrapped value and whether it is populated.
func (v Value) Opaque() (any, bool) { return v.opaque, v.kind == KindOpaque }

// Table returns the nested table and whether it is populated.
func (v Value) Table() (*Table, bool) { return v.table, v.kind == KindTable }

// String returns the untruncated text form of v. None renders as "".
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return formatFloat(v.f)
	case KindString:
		return v.s
	case KindOpaque:
		return fmt.Sprint(v.opaque)
	case KindTable:
		return v.table.String()
	default:
		return ""
	}
}

// copy returns a Value that shares no table, slice or map with v.
func (v Value) copy() Value {
	switch v.kind {
	case KindTable:
		return Nested(v.table.Clone())
	case KindOpaque:
		v.opaque = copyOpaque(v.opaque)
	}
	return v
}

// copyOpaque copies slices and maps, and the slices and maps inside them.
// Pointers, channels and structs are shared.
func copyOpaque(x any) any {
	if x == nil {
		return nil
	}
	return copyReflect(reflect.ValueOf(x)).Interface()
}

func copyReflect(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		dup := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := range v.Len() {
			dup.Index(i).Set(copyReflect(v.Index(i)))
		}
		return dup
	case reflect.Map:
		if v.IsNil() {
			return v
		}
		dup := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			dup.SetMapIndex(iter.Key(), copyReflect(iter.Value()))
		}
		return dup
	case reflect.Interface:
		if v.IsNil() {
			return v
		}
		dup := reflect.New(v.Type()).Elem()
		dup.Set(copyReflect(v.Elem()))
		return dup
	}
	return v
}

// formatFloat writes the shortest representation that round-trips,
// in positional form for magnitudes in [1e-4, 1e16) and in exponent form
// otherwise. Integral values keep a trailing ".0".
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
