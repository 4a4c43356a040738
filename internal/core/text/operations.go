package text

import (
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/retrace/internal/buffer"
	"github.com/bethropolis/retrace/internal/utils"
)

// Operations handles text insertion/deletion at the cursor
type Operations struct {
	editor EditorInterface
}

// EditorInterface defines editor methods needed
type EditorInterface interface {
	GetBuffer() buffer.Buffer
	GetCursor() int
	SetCursor(offset int)
	// ReportChange tells the editor a region of the buffer was replaced.
	ReportChange(start int, before, after string)
	TabWidth() int
}

// NewOperations creates a text operations manager
func NewOperations(editor EditorInterface) *Operations {
	return &Operations{
		editor: editor,
	}
}

// Replace swaps [start, end) for s, moves the cursor past s and reports the change.
func (o *Operations) Replace(start, end int, s string) error {
	removed, err := o.editor.GetBuffer().Replace(start, end, s)
	if err != nil {
		return err
	}
	o.editor.SetCursor(start + len(s))
	o.editor.ReportChange(start, removed, s)
	return nil
}

// InsertText inserts s at the cursor
func (o *Operations) InsertText(s string) error {
	if s == "" {
		return nil
	}
	cursor := o.editor.GetCursor()
	return o.Replace(cursor, cursor, s)
}

// InsertRune inserts a single rune at cursor
func (o *Operations) InsertRune(r rune) error {
	if !utf8.ValidRune(r) {
		return nil
	}
	return o.InsertText(string(r))
}

// InsertNewLine inserts a newline
func (o *Operations) InsertNewLine() error {
	return o.InsertText("\n")
}

// InsertTab inserts spaces up to the configured tab width
func (o *Operations) InsertTab() error {
	return o.InsertText(strings.Repeat(" ", o.editor.TabWidth()))
}

// DeleteBackward deletes the grapheme cluster before the cursor
func (o *Operations) DeleteBackward() error {
	cursor := o.editor.GetCursor()
	if cursor == 0 {
		return nil // Nothing to delete
	}
	start := utils.PrevGraphemeBoundary(o.editor.GetBuffer().Text(), cursor)
	return o.Replace(start, cursor, "")
}

// DeleteForward deletes the grapheme cluster at the cursor
func (o *Operations) DeleteForward() error {
	buf := o.editor.GetBuffer()
	cursor := o.editor.GetCursor()
	if cursor >= buf.Len() {
		return nil
	}
	end := utils.NextGraphemeBoundary(buf.Text(), cursor)
	return o.Replace(cursor, end, "")
}

// DeleteLine removes the line holding the cursor, including its newline,
// and returns the removed text.
func (o *Operations) DeleteLine() (string, error) {
	buf := o.editor.GetBuffer()
	text := buf.Text()
	cursor := o.editor.GetCursor()

	start := utils.LineStart(text, cursor)
	end := utils.LineEnd(text, cursor)
	if end < len(text) {
		end++ // Take the newline too
	} else if start > 0 {
		start-- // Last line: take the newline before it instead
	}
	if start == end {
		return "", nil
	}

	removed := text[start:end]
	if err := o.Replace(start, end, ""); err != nil {
		return "", err
	}
	return removed, nil
}
