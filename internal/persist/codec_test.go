package persist

import (
	"testing"

	"github.com/bethropolis/retrace/internal/core/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() history.Snapshot {
	return history.Snapshot{
		Undo: history.StackSnapshot{
			Capacity: 50,
			Actions: []history.EditAction{
				{Start: 0, Before: "", After: "line one\nline \"two\""},
				{Start: 5, Before: "one", After: "üñî 😀"},
				{Start: 3, Before: "\ttab\\slash", After: ""},
			},
		},
		Redo: history.StackSnapshot{
			Capacity: 0,
			Actions: []history.EditAction{
				{Start: 12, Before: "x", After: "y"},
			},
		},
		SuppressRecording: true,
	}
}

func TestCodecRoundTrip(t *testing.T) {
	for _, f := range []Format{FormatTOML, FormatYAML, FormatJSON} {
		t.Run(f.String(), func(t *testing.T) {
			want := sampleSnapshot()

			data, err := Encode(want, f)
			require.NoError(t, err)
			require.NotEmpty(t, data)

			got, err := Decode(data, f)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestCodecEmptySnapshot(t *testing.T) {
	for _, f := range []Format{FormatTOML, FormatYAML, FormatJSON} {
		t.Run(f.String(), func(t *testing.T) {
			data, err := Encode(history.Snapshot{}, f)
			require.NoError(t, err)

			got, err := Decode(data, f)
			require.NoError(t, err)
			assert.Empty(t, got.Undo.Actions)
			assert.Empty(t, got.Redo.Actions)
			assert.Equal(t, history.Unbounded, got.Undo.Capacity)
			assert.False(t, got.SuppressRecording)
		})
	}
}

func TestDecodeJSONIgnoresUnknownKeys(t *testing.T) {
	data := []byte(`{"version":2,"undo":{"capacity":3,"actions":[{"start":1,"before":"","after":"a","meta":{"k":[1,2]}}]},"redo":null}`)

	got, err := Decode(data, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Undo.Capacity)
	assert.Equal(t, []history.EditAction{{Start: 1, After: "a"}}, got.Undo.Actions)
	assert.Empty(t, got.Redo.Actions)
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode([]byte(`{"undo": [`), FormatJSON)
	assert.Error(t, err)

	_, err = Decode([]byte("undo = ["), FormatTOML)
	assert.Error(t, err)

	_, err = Decode([]byte("undo: [1, 2"), FormatYAML)
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"":     FormatTOML,
		"toml": FormatTOML,
		"YAML": FormatYAML,
		"yml":  FormatYAML,
		"json": FormatJSON,
	}
	for name, want := range tests {
		got, err := ParseFormat(name)
		assert.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
