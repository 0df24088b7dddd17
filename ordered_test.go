package countries

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestOrderedMapJSONKeepsKeyOrder(t *testing.T) {
	var m OrderedMap[CurrencyInfo]
	err := json.Unmarshal([]byte(`{
		"USD": {"name": "United States dollar", "symbol": "$"},
		"GBP": {"name": "Pound sterling", "symbol": "£"},
		"EUR": {"name": "Euro", "symbol": "€"}
	}`), &m)
	require.NoError(t, err)

	assert.Equal(t, []string{"USD", "GBP", "EUR"}, m.Keys())
	code, info, ok := m.First()
	require.True(t, ok)
	assert.Equal(t, "USD", code)
	assert.Equal(t, "United States dollar", info.Name)

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"USD":{"name":"United States dollar","symbol":"$"},"GBP":{"name":"Pound sterling","symbol":"£"},"EUR":{"name":"Euro","symbol":"€"}}`, string(out))

	// JSONEq ignores order; the raw bytes must not.
	assert.Less(t, strings.Index(string(out), "USD"), strings.Index(string(out), "GBP"))
	assert.Less(t, strings.Index(string(out), "GBP"), strings.Index(string(out), "EUR"))
}

func TestOrderedMapUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{"empty object", `{}`, nil, false},
		{"empty array", `[]`, nil, false},
		{"null", `null`, nil, false},
		{"object", `{"b":"2","a":"1"}`, []string{"b", "a"}, false},
		{"non-empty array", `["a"]`, nil, true},
		{"scalar", `"a"`, nil, true},
		{"wrong value type", `{"a": 1}`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m OrderedMap[string]
			err := json.Unmarshal([]byte(tt.input), &m)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.want), m.Len())
			if tt.want != nil {
				assert.Equal(t, tt.want, m.Keys())
			}
		})
	}
}

func TestOrderedMapEmptyMarshalsAsObject(t *testing.T) {
	var m OrderedMap[string]
	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(out))
}

func TestOrderedMapSetKeepsFirstPosition(t *testing.T) {
	m := NewOrderedMap[int](3)
	m.set("a", 1)
	m.set("b", 2)
	m.set("a", 3)

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	assert.Equal(t, []int{3, 2}, m.Values())
	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.True(t, m.Has("b"))
	assert.False(t, m.Has("c"))
}

func TestOrderedMapCloneIsIndependent(t *testing.T) {
	m := NewOrderedMap[string](2)
	m.set("x", "1")
	c := m.Clone()
	c.set("y", "2")
	c.set("x", "changed")

	assert.Equal(t, []string{"x"}, m.Keys())
	v, _ := m.Get("x")
	assert.Equal(t, "1", v)
	assert.Equal(t, 2, c.Len())

	keys := m.Keys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"x"}, m.Keys())
}

func TestOrderedMapAllStopsEarly(t *testing.T) {
	m := NewOrderedMap[int](3)
	m.set("a", 1)
	m.set("b", 2)
	m.set("c", 3)

	var seen []string
	for k := range m.All() {
		seen = append(seen, k)
		if k == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
	assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3}, m.Map())
}

func TestOrderedMapYAML(t *testing.T) {
	var m OrderedMap[CurrencyInfo]
	err := yaml.Unmarshal([]byte(`
USD: {name: United States dollar, symbol: $}
GBP: {name: Pound sterling, symbol: £}
`), &m)
	require.NoError(t, err)
	assert.Equal(t, []string{"USD", "GBP"}, m.Keys())

	var bad OrderedMap[string]
	assert.Error(t, yaml.Unmarshal([]byte(`- a
- b`), &bad))
}
