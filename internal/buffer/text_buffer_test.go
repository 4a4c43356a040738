package buffer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextBufferReplace(t *testing.T) {
	assert := assert.New(t)
	b := NewTextBuffer("hello world")

	removed, err := b.Replace(0, 5, "goodbye")
	assert.NoError(err)
	assert.Equal("hello", removed)
	assert.Equal("goodbye world", b.Text())
	assert.True(b.IsModified())

	s, err := b.Slice(8, 13)
	assert.NoError(err)
	assert.Equal("world", s)

	_, err = b.Replace(5, 2, "")
	assert.ErrorIs(err, ErrOutOfBounds)
	_, err = b.Slice(0, 99)
	assert.ErrorIs(err, ErrOutOfBounds)
}

func TestTextBufferNoopReplaceKeepsClean(t *testing.T) {
	b := NewTextBuffer("abc")
	removed, err := b.Replace(1, 2, "b")
	assert.NoError(t, err)
	assert.Equal(t, "b", removed)
	assert.False(t, b.IsModified())

	b.SetText("abc")
	assert.False(t, b.IsModified())
	b.SetText("xyz")
	assert.True(t, b.IsModified())
}

func TestTextBufferLoadSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\r\nb\n"), 0o644))

	b := NewTextBuffer("")
	require.NoError(t, b.Load(path))
	assert.Equal(t, "a\nb\n", b.Text())
	assert.Equal(t, path, b.FilePath())
	assert.Equal(t, 4, b.Len())

	_, err := b.Replace(0, 1, "z")
	require.NoError(t, err)
	require.NoError(t, b.Save(""))
	assert.False(t, b.IsModified())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "z\nb\n", string(data))
}

func TestTextBufferLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")
	b := NewTextBuffer("old")
	require.NoError(t, b.Load(path))
	assert.Equal(t, "", b.Text())
	assert.Equal(t, path, b.FilePath())
}

func TestTextBufferSaveWithoutPath(t *testing.T) {
	assert.Error(t, NewTextBuffer("x").Save(""))
}
