package core

import "github.com/bethropolis/retrace/internal/logger"

// CutLine removes the cursor's line into the clipboard. It is recorded as one edit.
func (e *Editor) CutLine() (bool, error) {
	removed, err := e.textOps.DeleteLine()
	if err != nil || removed == "" {
		return false, err
	}
	if err := e.clipboard.Set(removed); err != nil {
		// The register still holds it
		logger.Warnf("Editor.CutLine: %v", err)
	}
	return true, nil
}

// Paste inserts the clipboard at the cursor. It is recorded as one edit.
func (e *Editor) Paste() (bool, error) {
	content := e.clipboard.Get()
	if content == "" {
		return false, nil
	}
	if err := e.textOps.InsertText(content); err != nil {
		return false, err
	}
	logger.Debugf("Editor: Pasted %d bytes", len(content))
	return true, nil
}
