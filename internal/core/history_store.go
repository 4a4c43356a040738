package core

import (
	"errors"
	"fmt"

	"github.com/bethropolis/retrace/internal/persist"
)

// SaveHistory writes the current undo/redo history for the loaded file.
func (e *Editor) SaveHistory(store *persist.Store) error {
	path := e.buffer.FilePath()
	if path == "" {
		return errors.New("buffer has no file path")
	}
	return store.Save(path, e.historyManager.CaptureState())
}

// RestoreHistory loads history saved for the current file. It returns false when
// nothing was saved. A snapshot that no longer matches the file is an error and
// leaves the history untouched.
func (e *Editor) RestoreHistory(store *persist.Store) (bool, error) {
	path := e.buffer.FilePath()
	if path == "" {
		return false, nil
	}
	snap, found, err := store.Load(path)
	if err != nil || !found {
		return false, err
	}
	if err := e.historyManager.RestoreState(snap); err != nil {
		return false, fmt.Errorf("history for '%s': %w", path, err)
	}
	return true, nil
}
