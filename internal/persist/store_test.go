package persist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSaveLoadRemove(t *testing.T) {
	for _, f := range []Format{FormatTOML, FormatYAML, FormatJSON} {
		t.Run(f.String(), func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "history")
			store := NewStore(dir, f)
			doc := filepath.Join(t.TempDir(), "notes.txt")

			_, found, err := store.Load(doc)
			require.NoError(t, err)
			assert.False(t, found)

			want := sampleSnapshot()
			require.NoError(t, store.Save(doc, want))

			path, err := store.PathFor(doc)
			require.NoError(t, err)
			assert.FileExists(t, path)
			assert.True(t, strings.HasSuffix(path, ".undo."+f.Ext()))

			got, found, err := store.Load(doc)
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, want, got)

			require.NoError(t, store.Remove(doc))
			assert.NoFileExists(t, path)
			// Removing twice is fine
			assert.NoError(t, store.Remove(doc))
		})
	}
}

func TestStoreSaveReplacesAndLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, FormatJSON)
	doc := filepath.Join(dir, "a.txt")

	snap := sampleSnapshot()
	require.NoError(t, store.Save(doc, snap))
	snap.SuppressRecording = false
	require.NoError(t, store.Save(doc, snap))

	got, _, err := store.Load(doc)
	require.NoError(t, err)
	assert.False(t, got.SuppressRecording)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStorePathForKeepsDocumentsApart(t *testing.T) {
	store := NewStore(t.TempDir(), FormatTOML)

	a, err := store.PathFor(filepath.Join("one", "file.txt"))
	require.NoError(t, err)
	b, err := store.PathFor(filepath.Join("two", "file.txt"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Equal(t, store.Dir, filepath.Dir(a))

	_, err = store.PathFor("")
	assert.Error(t, err)
}

func TestStoreLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, FormatYAML)
	doc := filepath.Join(dir, "doc.txt")

	path, err := store.PathFor(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("undo: [oops"), 0o644))

	_, found, err := store.Load(doc)
	assert.Error(t, err)
	assert.False(t, found)
}
