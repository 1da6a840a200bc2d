package jsonpath

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/swiftline/internal/jsonval"
	"github.com/mcncl/swiftline/internal/render"
)

func mustParse(t *testing.T, text string) jsonval.Value {
	t.Helper()
	v, err := jsonval.ParseStrict(text)
	require.NoError(t, err)
	return v
}

func TestResolve_ObjectAccess(t *testing.T) {
	data := mustParse(t, `{"a": {"b": {"c": "value"}}}`)

	got, found := Resolve(data, "a.b.c")
	require.True(t, found)
	assert.Equal(t, "value", got)
}

func TestResolve_ArrayAccess(t *testing.T) {
	data := mustParse(t, `{"items": [1, 2, 3]}`)

	got, found := Resolve(data, "items[0]")
	require.True(t, found)
	assert.Equal(t, json.Number("1"), got)

	got, found = Resolve(data, "items[2]")
	require.True(t, found)
	assert.Equal(t, json.Number("3"), got)
}

func TestResolve_MixedAccess(t *testing.T) {
	data := mustParse(t, `{"a": {"b": [{"c": "found"}]}}`)

	got, found := Resolve(data, "a.b[0].c")
	require.True(t, found)
	assert.Equal(t, "found", got)
}

func TestResolve_FieldThenIndex(t *testing.T) {
	data := mustParse(t, `{"a": {"b": [1, 2, 3]}}`)

	got, found := Resolve(data, "a.b[2]")
	require.True(t, found)
	assert.Equal(t, json.Number("3"), got)
}

func TestResolve_BracketOnlySegment(t *testing.T) {
	// A segment starting with '[' indexes the current value directly.
	data := mustParse(t, `[10, 20, 30]`)

	got, found := Resolve(data, "[1]")
	require.True(t, found)
	assert.Equal(t, json.Number("20"), got)
}

func TestResolve_MissingPath(t *testing.T) {
	data := mustParse(t, `{"a": {"b": "value"}}`)

	tests := []string{"a.x", "missing", "a.b.c"}
	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			_, found := Resolve(data, path)
			assert.False(t, found)
		})
	}
}

func TestResolve_InvalidArrayIndex(t *testing.T) {
	data := mustParse(t, `{"items": [1, 2]}`)

	tests := []string{
		"items[5]",   // out of range
		"items[abc]", // non-numeric
		"items[-1]",  // negative
		"items[1",    // missing closing bracket
		"items[]",    // empty index
	}
	for _, path := range tests {
		t.Run(path, func(t *testing.T) {
			_, found := Resolve(data, path)
			assert.False(t, found)
		})
	}
}

func TestResolve_EmptySegments(t *testing.T) {
	data := mustParse(t, `{"a": "value"}`)

	for _, path := range []string{"", "a..b", ".a", "a."} {
		t.Run("path_"+path, func(t *testing.T) {
			_, found := Resolve(data, path)
			assert.False(t, found)
		})
	}
}

func TestResolve_ChainedIndicesUnsupported(t *testing.T) {
	// Only one bracket suffix per segment is parsed; a[0][1] degrades to
	// not found rather than indexing twice.
	data := mustParse(t, `{"a": [[1, 2], [3, 4]]}`)

	_, found := Resolve(data, "a[0][1]")
	assert.False(t, found)
}

func TestResolve_IndexingNonArray(t *testing.T) {
	data := mustParse(t, `{"a": {"b": 1}}`)

	_, found := Resolve(data, "a[0]")
	assert.False(t, found)
}

func TestResolve_FieldOnNonObject(t *testing.T) {
	data := mustParse(t, `{"a": [1, 2]}`)

	_, found := Resolve(data, "a.b")
	assert.False(t, found)
}

func TestResolve_FoundNullIsFound(t *testing.T) {
	data := mustParse(t, `{"a": null}`)

	got, found := Resolve(data, "a")
	require.True(t, found)
	assert.Nil(t, got)
}

func TestResolve_RoundTripAddressability(t *testing.T) {
	// Serializing a resolved node and reparsing the document addresses the
	// same node again.
	doc := mustParse(t, `{"users": [{"name": "Alice", "tags": ["a", "b"]}, {"name": "Bob"}]}`)

	paths := []string{"users[0].name", "users[0].tags[1]", "users[1]"}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			node, found := Resolve(doc, path)
			require.True(t, found)

			reparsed := mustParse(t, render.JSON(doc, false))
			again, found := Resolve(reparsed, path)
			require.True(t, found)
			assert.Equal(t, node, again)
		})
	}
}

func TestSentinel(t *testing.T) {
	assert.Equal(t, "(null)", Sentinel)
}
