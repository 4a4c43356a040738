package app

import (
	"github.com/bethropolis/retrace/internal/event"
	"github.com/bethropolis/retrace/internal/logger"
)

// subscribeEvents wires the app's reactions to editor and history events.
func (a *App) subscribeEvents() {
	a.eventManager.Subscribe(event.TypeBufferModified, a.handleHistoryChanged)
	a.eventManager.Subscribe(event.TypeHistoryApplied, a.handleHistoryChanged)
	a.eventManager.Subscribe(event.TypeHistoryRestored, a.handleHistoryChanged)
	a.eventManager.Subscribe(event.TypeBufferSaved, a.handleBufferSaved)
	a.eventManager.Subscribe(event.TypeBufferLoaded, a.handleBufferLoaded)
}

// handleHistoryChanged schedules a snapshot save after any history-relevant change.
func (a *App) handleHistoryChanged(e event.Event) bool {
	a.scheduleHistorySave()
	return false
}

// handleBufferSaved writes the snapshot right away; the file now matches the history.
func (a *App) handleBufferSaved(e event.Event) bool {
	a.saveDebouncer.Flush()
	a.saveHistory()
	return false
}

func (a *App) handleBufferLoaded(e event.Event) bool {
	if data, ok := e.Data.(event.BufferLoadedData); ok {
		logger.Debugf("App: loaded '%s'", data.FilePath)
	}
	a.updateStatusBarContent()
	return false
}
