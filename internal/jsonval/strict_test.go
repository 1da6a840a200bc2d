package jsonval

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrict_Scalars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Value
	}{
		{"null", `null`, nil},
		{"true", `true`, true},
		{"false", `false`, false},
		{"number", `42`, json.Number("42")},
		{"float keeps literal", `3.14`, json.Number("3.14")},
		{"string", `"hello"`, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStrict(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseStrict_PreservesMemberOrder(t *testing.T) {
	got, err := ParseStrict(`{"zebra":1,"apple":2,"mango":3}`)
	require.NoError(t, err)

	obj, ok := got.(Object)
	require.True(t, ok)
	require.Len(t, obj, 3)
	assert.Equal(t, "zebra", obj[0].Key)
	assert.Equal(t, "apple", obj[1].Key)
	assert.Equal(t, "mango", obj[2].Key)
}

func TestParseStrict_Nested(t *testing.T) {
	got, err := ParseStrict(`{"a":{"b":[1,2,3]}}`)
	require.NoError(t, err)

	obj, ok := got.(Object)
	require.True(t, ok)

	a, found := obj.Get("a")
	require.True(t, found)
	inner, ok := a.(Object)
	require.True(t, ok)

	b, found := inner.Get("b")
	require.True(t, found)
	arr, ok := b.(Array)
	require.True(t, ok)
	assert.Equal(t, Array{json.Number("1"), json.Number("2"), json.Number("3")}, arr)
}

func TestParseStrict_DuplicateKeysLastWins(t *testing.T) {
	got, err := ParseStrict(`{"a":1,"b":2,"a":3}`)
	require.NoError(t, err)

	obj := got.(Object)
	require.Len(t, obj, 2)
	// Last value wins, first position kept.
	assert.Equal(t, "a", obj[0].Key)
	assert.Equal(t, json.Number("3"), obj[0].Value)
	assert.Equal(t, "b", obj[1].Key)
}

func TestParseStrict_EmptyContainers(t *testing.T) {
	got, err := ParseStrict(`{"a":{},"b":[]}`)
	require.NoError(t, err)

	obj := got.(Object)
	a, _ := obj.Get("a")
	assert.Equal(t, Object{}, a)
	b, _ := obj.Get("b")
	assert.Equal(t, Array{}, b)
}

func TestParseStrict_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ``},
		{"unquoted keys", `{a: 1}`},
		{"single quotes", `{'a': 1}`},
		{"trailing comma", `[1,2,]`},
		{"truncated", `{"a":`},
		{"trailing data", `{} {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStrict(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestParseStrict_SyntaxErrorReportsOffset(t *testing.T) {
	_, err := ParseStrict(`{"a": }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offset")
}
