package jsonx

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractObject_PureJSON(t *testing.T) {
	obj, ok := ExtractObject(`{"a":1}`)
	require.True(t, ok)
	assert.Equal(t, `{"a":1}`, obj)
}

func TestExtractObject_SurroundingProse(t *testing.T) {
	in := "Sure! Here is the JSON you asked for:\n```json\n{\"manufacturer\": \"Siemens\", \"specs\": {\"voltage\": \"220V\"}}\n```\nLet me know if you need anything else."
	obj, ok := ExtractObject(in)
	require.True(t, ok)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(obj), &decoded))
	assert.Equal(t, "Siemens", decoded["manufacturer"])
}

func TestExtractObject_NestedBraces(t *testing.T) {
	in := `prefix {"outer": {"inner": {"deep": true}}} trailing {"second": 1}`
	obj, ok := ExtractObject(in)
	require.True(t, ok)
	assert.Equal(t, `{"outer": {"inner": {"deep": true}}}`, obj)
}

func TestExtractObject_NoObject(t *testing.T) {
	_, ok := ExtractObject("no json here")
	assert.False(t, ok)
}

func TestExtractObject_Unbalanced(t *testing.T) {
	_, ok := ExtractObject(`{"never": {"closes": 1}`)
	assert.False(t, ok)
}

func TestExtractArray_WithProse(t *testing.T) {
	arr, ok := ExtractArray(`The damages I can see are: ["burn marks", "rust"] overall.`)
	require.True(t, ok)

	var damages []string
	require.NoError(t, json.Unmarshal([]byte(arr), &damages))
	assert.Equal(t, []string{"burn marks", "rust"}, damages)
}

func TestExtractArray_Empty(t *testing.T) {
	arr, ok := ExtractArray("no damage found: []")
	require.True(t, ok)
	assert.Equal(t, "[]", arr)
}

func TestExtractArray_Missing(t *testing.T) {
	_, ok := ExtractArray("nothing")
	assert.False(t, ok)

	_, ok = ExtractArray("[never closes")
	assert.False(t, ok)
}
