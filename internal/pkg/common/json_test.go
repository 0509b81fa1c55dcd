package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	var steps []string
	require.NoError(t, ParseJSON(`["a", "b"]`+"\n", &steps))
	assert.Equal(t, []string{"a", "b"}, steps)

	assert.Error(t, ParseJSON(`["a"] ["b"]`, &steps))
	assert.Error(t, ParseJSON(`{"a":1}`, &steps))
}

func TestParseJSONBytes(t *testing.T) {
	var out struct {
		Temp float64 `json:"temp"`
	}
	require.NoError(t, ParseJSONBytes([]byte(`{"temp":27.4}`), &out))
	assert.InDelta(t, 27.4, out.Temp, 1e-9)
}

func TestExtractJSONArray(t *testing.T) {
	raw, ok := ExtractJSONArray("Here you go:\n[\"Heat oil\", \"Add rice\"]\nEnjoy!")
	require.True(t, ok)
	assert.Equal(t, `["Heat oil", "Add rice"]`, raw)

	_, ok = ExtractJSONArray("no array here")
	assert.False(t, ok)
}
