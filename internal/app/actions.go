package app

import (
	"github.com/bethropolis/retrace/internal/input"
	"github.com/bethropolis/retrace/internal/logger"
)

// executeAction runs one decoded key action and reports whether a redraw is needed.
func (a *App) executeAction(ev input.ActionEvent) bool {
	actionProcessed := true
	var err error

	switch ev.Action {
	case input.ActionQuit:
		if a.editor.GetBuffer().IsModified() && !a.forceQuitPending {
			a.statusBar.SetTemporaryMessage("Unsaved changes! Press ESC again to quit.")
			a.forceQuitPending = true
			return true
		}
		a.quitting = true
		return false

	case input.ActionSave:
		if err := a.editor.Save(); err != nil {
			a.statusBar.SetTemporaryMessage("Save FAILED: %v", err)
		} else {
			a.statusBar.SetTemporaryMessage("Saved %s", a.editor.GetBuffer().FilePath())
		}

	// Movement actions
	case input.ActionMoveLeft:
		a.editor.MoveLeft()
	case input.ActionMoveRight:
		a.editor.MoveRight()
	case input.ActionMoveHome:
		a.editor.MoveHome()
	case input.ActionMoveEnd:
		a.editor.MoveEnd()

	// Text Modification actions
	case input.ActionInsertRune:
		err = a.editor.InsertRune(ev.Rune)
	case input.ActionInsertNewLine:
		err = a.editor.InsertNewLine()
	case input.ActionInsertTab:
		err = a.editor.InsertTab()
	case input.ActionDeleteCharBackward:
		err = a.editor.DeleteBackward()
	case input.ActionDeleteCharForward:
		err = a.editor.DeleteForward()

	case input.ActionCutLine:
		cut, cutErr := a.editor.CutLine()
		err = cutErr
		if cutErr == nil && !cut {
			actionProcessed = false
		}
	case input.ActionPaste:
		pasted, pasteErr := a.editor.Paste()
		err = pasteErr
		if pasteErr == nil && !pasted {
			a.statusBar.SetTemporaryMessage("Clipboard empty - nothing to paste")
		}

	// Undo/Redo actions
	case input.ActionUndo:
		undone, undoErr := a.editor.Undo()
		if undoErr != nil {
			a.statusBar.SetTemporaryMessage("Undo failed: %v", undoErr)
			logger.Warnf("App: undo error: %v", undoErr)
		} else if !undone {
			a.statusBar.SetTemporaryMessage("Nothing to undo")
		}
	case input.ActionRedo:
		redone, redoErr := a.editor.Redo()
		if redoErr != nil {
			a.statusBar.SetTemporaryMessage("Redo failed: %v", redoErr)
			logger.Warnf("App: redo error: %v", redoErr)
		} else if !redone {
			a.statusBar.SetTemporaryMessage("Nothing to redo")
		}

	default:
		actionProcessed = false
	}

	if err != nil {
		logger.Debugf("App: action %d failed: %v", ev.Action, err)
		actionProcessed = false
	}

	// Reset force quit flag
	if actionProcessed {
		a.forceQuitPending = false
	}
	return actionProcessed || err != nil
}
