package ai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONFencedJSON(t *testing.T) {
	text := "Here is the result:\n```json\n{\"title\": \"Two Sum\"}\n```\nHope that helps!"

	raw, ok := ExtractJSON(text)
	require.True(t, ok)

	var out map[string]string
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "Two Sum", out["title"])
}

func TestExtractJSONGenericFence(t *testing.T) {
	text := "```\n{\"summary\": \"ok\"}\n```"

	raw, ok := ExtractJSON(text)
	require.True(t, ok)
	assert.JSONEq(t, `{"summary": "ok"}`, string(raw))
}

func TestExtractJSONBareBraces(t *testing.T) {
	text := `The model says {"a": {"b": 1}} and nothing else.`

	raw, ok := ExtractJSON(text)
	require.True(t, ok)
	assert.JSONEq(t, `{"a": {"b": 1}}`, string(raw))
}

func TestExtractJSONNone(t *testing.T) {
	_, ok := ExtractJSON("no json here, sorry")
	assert.False(t, ok)

	_, ok = ExtractJSON("")
	assert.False(t, ok)
}

func TestExtractJSONFenceWithoutBraces(t *testing.T) {
	// a fenced block that is not an object falls through to the brace scan
	text := "```\njust some code\n```\ntrailing {\"x\": 1} object"

	raw, ok := ExtractJSON(text)
	require.True(t, ok)
	assert.JSONEq(t, `{"x": 1}`, string(raw))
}
