package urlbuilder

import (
	"errors"
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

type label string

func (l label) String() string { return "label-" + string(l) }

func TestFormatQuery(t *testing.T) {
	one := 1
	var nilPtr *int
	var nilURL *url.URL
	type tags map[string]bool

	tests := []struct {
		name   string
		params any
		retain bool
		want   string
	}{
		{name: "nil", params: nil, want: ""},
		{name: "empty string", params: "", want: ""},
		{name: "string gets prefix", params: "x=1", want: "?x=1"},
		{name: "string keeps prefix", params: "?x=1", want: "?x=1"},
		{name: "bare question mark", params: "?", want: "?"},
		{name: "nil query", params: Query(nil), want: ""},
		{name: "empty query", params: Query{}, want: "?"},
		{name: "empty query retained", params: Query{}, retain: true, want: "?"},
		{name: "all dropped", params: Query{{"a", nil}, {"b", false}}, want: "?"},
		{name: "sanitized", params: Query{{"a", 1}, {"b", nil}}, want: "?a=1"},
		{name: "retained", params: Query{{"a", 1}, {"b", nil}}, retain: true, want: "?a=1&b=null"},
		{
			name:   "falsy values dropped",
			params: Query{{"zero", 0}, {"empty", ""}, {"no", false}, {"nan", math.NaN()}, {"ptr", nilPtr}, {"ok", "y"}},
			want:   "?ok=y",
		},
		{
			name:   "falsy values retained",
			params: Query{{"zero", 0}, {"empty", ""}, {"no", false}, {"nan", math.NaN()}},
			retain: true,
			want:   "?zero=0&empty=&no=false&nan=NaN",
		},
		{name: "insertion order", params: Query{{"z", 1}, {"a", 2}, {"m", 3}}, want: "?z=1&a=2&m=3"},
		{name: "no escaping", params: Query{{"q", "a b&c"}}, want: "?q=a b&c"},
		{name: "param slice", params: []Param{{"a", "b"}}, want: "?a=b"},
		{name: "map sorted", params: map[string]any{"b": 2, "a": 1, "c": nil}, want: "?a=1&b=2"},
		{name: "string map", params: map[string]string{"b": "2", "a": ""}, retain: true, want: "?a=&b=2"},
		{name: "nil map", params: map[string]any(nil), want: ""},
		{name: "url values", params: url.Values{"tag": {"a", "b"}, "x": {"1"}}, want: "?tag=a,b&x=1"},
		{name: "stringer", params: label("x"), want: "?label-x"},
		{name: "scalar", params: 42, want: "?42"},
		{name: "zero scalar", params: 0, want: ""},
		{name: "pointer value", params: Query{{"n", &one}}, want: "?n=1"},
		{name: "int map", params: map[string]int{"b": 0, "a": 1}, want: "?a=1"},
		{name: "int map retained", params: map[string]int{"b": 0, "a": 1}, retain: true, want: "?a=1&b=0"},
		{name: "named map", params: tags{"x": true, "y": false}, want: "?x=true"},
		{name: "nil int map", params: map[string]int(nil), want: ""},
		{name: "typed nil stringer", params: nilURL, want: ""},
		{name: "url stringer", params: &url.URL{RawQuery: "a=1"}, want: "?a=1"},
		{name: "scalar text", params: Scalar{Text: "x=01"}, want: "?x=01"},
		{name: "empty scalar", params: Scalar{Text: "0", Empty: true}, want: ""},
		{
			name:   "scalar values keep text",
			params: Query{{"zip", Scalar{Text: "01234"}}, {"off", Scalar{Text: "0.0", Empty: true}}},
			want:   "?zip=01234",
		},
		{
			name:   "scalar values retained",
			params: Query{{"zip", Scalar{Text: "01234"}}, {"off", Scalar{Text: "0.0", Empty: true}}},
			retain: true,
			want:   "?zip=01234&off=0.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatQuery(tt.params, tt.retain))
		})
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, "null"},
		{true, "true"},
		{false, "false"},
		{1, "1"},
		{int64(-7), "-7"},
		{uint8(3), "3"},
		{1.5, "1.5"},
		{float64(1000000), "1000000"},
		{float32(0.25), "0.25"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{"text", "text"},
		{[]byte("raw"), "raw"},
		{[]int{1, 2, 3}, "1,2,3"},
		{[]any{"a", nil, 2}, "a,,2"},
		{errors.New("boom"), "boom"},
		{label("y"), "label-y"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatValue(tt.in), "formatValue(%#v)", tt.in)
	}
}

func TestFalsy(t *testing.T) {
	var nilMap map[string]int
	var nilErr error

	falsy := []any{nil, false, 0, int8(0), uint(0), 0.0, math.NaN(), "", nilMap, nilErr, (*string)(nil)}
	for _, v := range falsy {
		assert.True(t, Falsy(v), "Falsy(%#v)", v)
	}

	truthy := []any{true, 1, -1, 0.1, "0", "false", map[string]int{}, []int{}, struct{}{}}
	for _, v := range truthy {
		assert.False(t, Falsy(v), "Falsy(%#v)", v)
	}
}

func TestQuery_AddString(t *testing.T) {
	var q Query
	q = q.Add("a", 1).Add("b", nil).Add("a", 2)

	assert.Equal(t, "?a=1&b=null&a=2", q.String())
	assert.Equal(t, "", Query(nil).String())
}
