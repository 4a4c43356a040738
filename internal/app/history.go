package app

import (
	"github.com/bethropolis/retrace/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// saveHistoryRequest is posted to the event loop when the save delay expires.
type saveHistoryRequest struct{}

// scheduleHistorySave debounces snapshot writes. The timer only posts an
// interrupt so the save runs on the event loop goroutine.
func (a *App) scheduleHistorySave() {
	if a.store == nil {
		return
	}
	a.saveDebouncer.Debounce(a.cfg.History.SaveDelay.Duration, func() {
		if err := a.tuiManager.PostEvent(tcell.NewEventInterrupt(saveHistoryRequest{})); err != nil {
			logger.DebugTagf("persist", "App: dropped save request: %v", err)
		}
	})
}

// saveHistory writes the snapshot for the current file. Nothing is written while
// the buffer differs from the file, since the history would not match it on reload.
func (a *App) saveHistory() {
	if a.store == nil {
		return
	}
	buf := a.editor.GetBuffer()
	path := buf.FilePath()
	if path == "" || buf.IsModified() {
		return
	}

	hm := a.editor.GetHistoryManager()
	if !hm.CanUndo() && !hm.CanRedo() {
		if err := a.store.Remove(path); err != nil {
			logger.Warnf("App: failed to remove history for '%s': %v", path, err)
		}
		return
	}
	if err := a.editor.SaveHistory(a.store); err != nil {
		logger.Warnf("App: failed to save history: %v", err)
		a.statusBar.SetTemporaryMessage("History not saved: %v", err)
		return
	}
	logger.DebugTagf("persist", "App: saved history for '%s'", path)
}

// restoreHistory loads the snapshot for the opened file. A snapshot that no
// longer matches the file is discarded.
func (a *App) restoreHistory() {
	if a.store == nil {
		return
	}
	restored, err := a.editor.RestoreHistory(a.store)
	if err != nil {
		logger.Warnf("App: discarding saved history: %v", err)
		if rmErr := a.store.Remove(a.editor.GetBuffer().FilePath()); rmErr != nil {
			logger.Warnf("App: failed to remove history: %v", rmErr)
		}
		a.statusBar.SetTemporaryMessage("Saved history discarded: file changed")
		return
	}
	if restored {
		hm := a.editor.GetHistoryManager()
		logger.Infof("App: restored history (%d undo, %d redo)", hm.UndoCount(), hm.RedoCount())
	}
}
