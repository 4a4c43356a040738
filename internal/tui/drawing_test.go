package tui

import (
	"strings"
	"testing"

	"github.com/bethropolis/retrace/internal/buffer"
	"github.com/bethropolis/retrace/internal/core"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimTUI(t *testing.T, w, h int) (*TUI, tcell.SimulationScreen) {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	tuiManager := NewWithScreen(s)
	t.Cleanup(tuiManager.Close)
	return tuiManager, s
}

func row(s tcell.SimulationScreen, y int) string {
	cells, width, _ := s.GetContents()
	var sb strings.Builder
	for x := 0; x < width; x++ {
		sb.WriteString(string(cells[y*width+x].Runes))
	}
	return strings.TrimRight(sb.String(), " ")
}

func TestDrawBufferWithGutter(t *testing.T) {
	tuiManager, s := newSimTUI(t, 20, 4)
	editor := core.NewEditor(buffer.NewTextBuffer("first\n\tsecond"))

	DrawBuffer(tuiManager, editor)
	s.Show()

	assert.Equal(t, "1 first", row(s, 0))
	assert.Equal(t, "2     second", row(s, 1))
	assert.Equal(t, "", row(s, 2))
}

func TestDrawCursorPosition(t *testing.T) {
	tuiManager, s := newSimTUI(t, 20, 4)
	editor := core.NewEditor(buffer.NewTextBuffer("ab\n世x"))
	editor.SetCursor(len("ab\n世"))

	DrawCursor(tuiManager, editor)
	s.Show()

	x, y, visible := s.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 1, y)
	assert.Equal(t, 4, x) // Gutter of 2, then a double-width rune
}

func TestScrollToCursor(t *testing.T) {
	tuiManager, s := newSimTUI(t, 20, 3) // Two text rows plus the status bar
	editor := core.NewEditor(buffer.NewTextBuffer("l1\nl2\nl3\nl4"))
	editor.SetCursor(len(editor.Text()))

	tuiManager.ScrollToCursor(editor)
	viewY, viewX := tuiManager.Viewport()
	assert.Equal(t, 2, viewY)
	assert.Equal(t, 0, viewX)

	DrawBuffer(tuiManager, editor)
	s.Show()
	assert.Equal(t, "3 l3", row(s, 0))
	assert.Equal(t, "4 l4", row(s, 1))

	editor.SetCursor(0)
	tuiManager.ScrollToCursor(editor)
	viewY, _ = tuiManager.Viewport()
	assert.Equal(t, 0, viewY)
}
