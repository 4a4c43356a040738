// internal/core/editor.go
package core

import (
	"fmt"

	"github.com/bethropolis/retrace/internal/buffer"
	"github.com/bethropolis/retrace/internal/config"
	"github.com/bethropolis/retrace/internal/core/clipboard"
	"github.com/bethropolis/retrace/internal/core/history"
	"github.com/bethropolis/retrace/internal/core/text"
	"github.com/bethropolis/retrace/internal/event"
	"github.com/bethropolis/retrace/internal/logger"
	"github.com/bethropolis/retrace/internal/utils"
)

// Editor owns the text buffer and cursor and is the history engine's text host:
// every buffer mutation is reported to the history manager, including the ones
// the manager causes itself through ApplyText.
type Editor struct {
	buffer   buffer.Buffer
	cursor   int // Byte offset, always on a grapheme boundary
	tabWidth int

	eventManager   *event.Manager
	historyManager *history.Manager
	textOps        *text.Operations
	clipboard      *clipboard.Manager
}

// NewEditor creates a new Editor instance with a given buffer.
func NewEditor(buf buffer.Buffer) *Editor {
	e := &Editor{
		buffer:   buf,
		tabWidth: config.DefaultTabWidth,
	}
	e.historyManager = history.NewManager(e)
	e.textOps = text.NewOperations(e)
	e.clipboard = clipboard.NewManager(false)
	return e
}

// SetEventManager sets the event manager for dispatching events
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
	e.historyManager.SetEventManager(mgr)
}

func (e *Editor) SetClipboard(cb *clipboard.Manager) {
	e.clipboard = cb
}

func (e *Editor) SetTabWidth(n int) {
	if n > 0 {
		e.tabWidth = n
	}
}

func (e *Editor) TabWidth() int { return e.tabWidth }

func (e *Editor) GetBuffer() buffer.Buffer { return e.buffer }

func (e *Editor) GetEventManager() *event.Manager { return e.eventManager }

func (e *Editor) GetHistoryManager() *history.Manager { return e.historyManager }

func (e *Editor) GetCursor() int { return e.cursor }

// SetCursor moves the cursor, clamping it into the buffer.
func (e *Editor) SetCursor(offset int) {
	if offset < 0 {
		offset = 0
	}
	if n := e.buffer.Len(); offset > n {
		offset = n
	}
	e.cursor = offset
}

// --- history.TextHost ---

// Text returns the full buffer content.
func (e *Editor) Text() string {
	return e.buffer.Text()
}

// ApplyText replaces the whole buffer on behalf of the history manager and
// reports it like any other change, so the manager's pending suppression is consumed.
func (e *Editor) ApplyText(newText string, cursor int) {
	before := e.buffer.Text()
	e.buffer.SetText(newText)
	e.SetCursor(cursor)
	e.ReportChange(0, before, newText)
}

// ReportChange forwards a buffer mutation to the history manager and listeners.
func (e *Editor) ReportChange(start int, before, after string) {
	if err := e.historyManager.NotifyTextChanged(start, before, after); err != nil {
		logger.Errorf("Editor: failed to record change at %d: %v", start, err)
	}
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeBufferModified, event.BufferModifiedData{Start: start, Before: before, After: after})
	}
}

// --- Text operations, delegated to textOps ---

func (e *Editor) InsertText(s string) error { return e.textOps.InsertText(s) }

func (e *Editor) InsertRune(r rune) error { return e.textOps.InsertRune(r) }

func (e *Editor) InsertNewLine() error { return e.textOps.InsertNewLine() }

func (e *Editor) InsertTab() error { return e.textOps.InsertTab() }

func (e *Editor) DeleteBackward() error { return e.textOps.DeleteBackward() }

func (e *Editor) DeleteForward() error { return e.textOps.DeleteForward() }

// Replace swaps [start, end) for s as one user edit.
func (e *Editor) Replace(start, end int, s string) error { return e.textOps.Replace(start, end, s) }

// --- Cursor movement (grapheme aware) ---

func (e *Editor) MoveLeft() {
	e.cursor = utils.PrevGraphemeBoundary(e.buffer.Text(), e.cursor)
}

func (e *Editor) MoveRight() {
	e.cursor = utils.NextGraphemeBoundary(e.buffer.Text(), e.cursor)
}

func (e *Editor) MoveHome() {
	e.cursor = utils.LineStart(e.buffer.Text(), e.cursor)
}

func (e *Editor) MoveEnd() {
	e.cursor = utils.LineEnd(e.buffer.Text(), e.cursor)
}

// --- History ---

// Undo reverts the last edit. It returns false if there was nothing to undo.
func (e *Editor) Undo() (bool, error) {
	applied, err := e.historyManager.Undo()
	if err != nil {
		return false, err
	}
	return applied != nil, nil
}

// Redo reapplies the last undone edit. It returns false if there was nothing to redo.
func (e *Editor) Redo() (bool, error) {
	applied, err := e.historyManager.Redo()
	if err != nil {
		return false, err
	}
	return applied != nil, nil
}

func (e *Editor) CanUndo() bool { return e.historyManager.CanUndo() }

func (e *Editor) CanRedo() bool { return e.historyManager.CanRedo() }

// --- File operations ---

// Load reads filePath into the buffer and starts a fresh history.
func (e *Editor) Load(filePath string) error {
	if err := e.buffer.Load(filePath); err != nil {
		return err
	}
	e.cursor = 0
	e.historyManager.Clear()
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeBufferLoaded, event.BufferLoadedData{FilePath: filePath})
	}
	return nil
}

// Save writes the buffer to its file.
func (e *Editor) Save() error {
	if err := e.buffer.Save(""); err != nil {
		return fmt.Errorf("save failed: %w", err)
	}
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: e.buffer.FilePath()})
	}
	return nil
}
