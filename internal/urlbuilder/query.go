package urlbuilder

import (
	"fmt"
	"math"
	"net/url"
	"reflect"
	"sort"
	"strings"

	"github.com/spf13/cast"
)

// Param is a single query string entry.
type Param struct {
	Key   string
	Value any
}

// Query is an ordered set of query parameters. Keys are emitted in insertion order.
type Query []Param

// Add appends a key/value pair and returns the extended query.
func (q Query) Add(key string, value any) Query {
	return append(q, Param{Key: key, Value: value})
}

// String formats q keeping falsy values.
func (q Query) String() string {
	return FormatQuery(q, true)
}

// Scalar is a value written exactly as Text. Empty marks it falsy, for
// callers that decide falsiness from a typed reading of the same text.
type Scalar struct {
	Text  string
	Empty bool
}

func (s Scalar) String() string { return s.Text }

// FormatQuery turns params into a query string starting with '?'.
//
// Absent input (nil, "", a nil collection) yields "". A string is prefixed with
// '?' unless it already has one. A collection yields "?k1=v1&k2=v2", skipping
// falsy values unless retainNull is set; an empty collection yields "?".
// Keys and values are written verbatim, nothing is escaped.
func FormatQuery(params any, retainNull bool) string {
	switch p := params.(type) {
	case nil:
		return ""
	case string:
		return formatString(p)
	case Query:
		if p == nil {
			return ""
		}
		return formatPairs(p, retainNull)
	case []Param:
		if p == nil {
			return ""
		}
		return formatPairs(p, retainNull)
	case map[string]any:
		if p == nil {
			return ""
		}
		return formatPairs(fromMap(reflect.ValueOf(p)), retainNull)
	case map[string]string:
		if p == nil {
			return ""
		}
		return formatPairs(fromMap(reflect.ValueOf(p)), retainNull)
	case url.Values:
		if p == nil {
			return ""
		}
		joined := make(map[string]string, len(p))
		for k, vs := range p {
			joined[k] = strings.Join(vs, ",")
		}
		return formatPairs(fromMap(reflect.ValueOf(joined)), retainNull)
	case Scalar:
		if p.Empty {
			return ""
		}
		return formatString(p.Text)
	}

	if Falsy(params) {
		return ""
	}
	if s, ok := params.(fmt.Stringer); ok {
		return formatString(s.String())
	}
	if rv := reflect.ValueOf(params); rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		return formatPairs(fromMap(rv), retainNull)
	}
	return formatString(formatValue(params))
}

// Falsy reports whether v counts as an empty value: nil, false, a numeric
// zero, NaN, an empty string or a nil pointer, map, slice or interface.
func Falsy(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(Scalar); ok {
		return s.Empty
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return !rv.Bool()
	case reflect.String:
		return rv.Len() == 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func formatString(s string) string {
	if s == "" {
		return ""
	}
	if s[0] == '?' {
		return s
	}
	return "?" + s
}

func formatPairs(params []Param, retainNull bool) string {
	var sb strings.Builder
	sb.WriteByte('?')

	first := true
	for _, p := range params {
		if !retainNull && Falsy(p.Value) {
			continue
		}
		if !first {
			sb.WriteByte('&')
		}
		first = false
		sb.WriteString(p.Key)
		sb.WriteByte('=')
		sb.WriteString(formatValue(p.Value))
	}
	return sb.String()
}

// fromMap emits a string-keyed map in sorted key order.
func fromMap(rv reflect.Value) Query {
	keys := make([]string, 0, rv.Len())
	values := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k := iter.Key().String()
		keys = append(keys, k)
		values[k] = iter.Value().Interface()
	}
	sort.Strings(keys)

	q := make(Query, 0, len(keys))
	for _, k := range keys {
		q = q.Add(k, values[k])
	}
	return q
}

func formatValue(v any) string {
	if v == nil {
		return "null"
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		switch {
		case math.IsNaN(f):
			return "NaN"
		case math.IsInf(f, 1):
			return "Infinity"
		case math.IsInf(f, -1):
			return "-Infinity"
		}
	case reflect.Pointer:
		if rv.IsNil() {
			return "null"
		}
		if s, err := cast.ToStringE(v); err == nil {
			return s
		}
		return formatValue(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			break
		}
		parts := make([]string, rv.Len())
		for i := range parts {
			elem := rv.Index(i).Interface()
			if elem != nil {
				parts[i] = formatValue(elem)
			}
		}
		return strings.Join(parts, ",")
	}

	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}
