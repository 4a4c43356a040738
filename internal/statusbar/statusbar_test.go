package statusbar

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func screenRow(s tcell.SimulationScreen, y int) string {
	cells, width, _ := s.GetContents()
	var sb strings.Builder
	for x := 0; x < width; x++ {
		c := cells[y*width+x]
		if len(c.Runes) > 0 {
			sb.WriteString(string(c.Runes))
		}
	}
	return strings.TrimRight(sb.String(), " ")
}

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestStatusBarDefaultText(t *testing.T) {
	s := newScreen(t, 80, 3)
	sb := New(DefaultConfig())
	sb.SetFileInfo("notes.txt", true)
	sb.SetCursorInfo(1, 4)
	sb.UndoAvailabilityChanged(true)

	sb.Draw(s, 80, 3)
	s.Show()

	row := screenRow(s, 2)
	assert.Contains(t, row, "notes.txt [Modified] -- Line: 2, Col: 5")
	assert.True(t, strings.HasSuffix(row, "[undo] [redo]"))

	canUndo, canRedo := sb.Availability()
	assert.True(t, canUndo)
	assert.False(t, canRedo)
}

func TestStatusBarTemporaryMessageExpires(t *testing.T) {
	s := newScreen(t, 60, 2)
	cfg := DefaultConfig()
	cfg.MessageTimeout = 10 * time.Millisecond
	sb := New(cfg)

	sb.SetTemporaryMessage("Saved %s", "x.txt")
	sb.Draw(s, 60, 2)
	s.Show()
	assert.Equal(t, "Saved x.txt", screenRow(s, 1))

	time.Sleep(20 * time.Millisecond)
	sb.Draw(s, 60, 2)
	s.Show()
	assert.Contains(t, screenRow(s, 1), "[No Name]")
}

func TestStatusBarIndicatorStyle(t *testing.T) {
	s := newScreen(t, 80, 1)
	cfg := DefaultConfig()
	sb := New(cfg)
	sb.RedoAvailabilityChanged(true)
	sb.Draw(s, 80, 1)
	s.Show()

	row := screenRow(s, 0)
	redoX := strings.Index(row, "[redo]")
	undoX := strings.Index(row, "[undo]")
	require.True(t, redoX > 0 && undoX > 0)

	_, _, redoStyle, _ := s.GetContent(redoX, 0)
	_, _, undoStyle, _ := s.GetContent(undoX, 0)
	assert.Equal(t, cfg.StyleAvailable, redoStyle)
	assert.NotEqual(t, cfg.StyleAvailable, undoStyle)
}
