// internal/buffer/text_buffer.go
package buffer

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrOutOfBounds is returned for offsets outside the buffer.
var ErrOutOfBounds = errors.New("offset out of bounds")

// TextBuffer keeps the whole document as one string.
type TextBuffer struct {
	text     string
	filePath string
	modified bool // Track if buffer has unsaved changes
}

// NewTextBuffer creates a buffer holding text.
func NewTextBuffer(text string) *TextBuffer {
	return &TextBuffer{text: text}
}

// Load reads a file into the buffer. Replaces existing content.
// A missing file gives an empty buffer bound to that path.
func (tb *TextBuffer) Load(filePath string) error {
	tb.modified = false

	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			tb.text = ""
			tb.filePath = filePath
			return nil
		}
		return fmt.Errorf("failed to open file '%s': %w", filePath, err)
	}

	// Normalize Windows line endings so offsets match what is displayed
	tb.text = strings.ReplaceAll(string(data), "\r\n", "\n")
	tb.filePath = filePath
	return nil
}

// Save writes the buffer content to filePath, or the loaded path when empty.
func (tb *TextBuffer) Save(filePath string) error {
	path := tb.filePath
	if filePath != "" { // Allow overriding path during save
		path = filePath
	}
	if path == "" {
		return errors.New("no file path specified for saving")
	}

	if err := os.WriteFile(path, []byte(tb.text), 0o644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}

	tb.filePath = path
	tb.modified = false
	return nil
}

func (tb *TextBuffer) Text() string { return tb.text }

func (tb *TextBuffer) Len() int { return len(tb.text) }

func (tb *TextBuffer) FilePath() string { return tb.filePath }

// IsModified returns true if the buffer has unsaved changes.
func (tb *TextBuffer) IsModified() bool { return tb.modified }

func (tb *TextBuffer) checkRange(start, end int) error {
	if start < 0 || end < start || end > len(tb.text) {
		return fmt.Errorf("range [%d,%d) in buffer of length %d: %w", start, end, len(tb.text), ErrOutOfBounds)
	}
	return nil
}

// Slice returns the text in [start, end).
func (tb *TextBuffer) Slice(start, end int) (string, error) {
	if err := tb.checkRange(start, end); err != nil {
		return "", err
	}
	return tb.text[start:end], nil
}

// Replace swaps [start, end) for s and returns the removed text.
func (tb *TextBuffer) Replace(start, end int, s string) (string, error) {
	if err := tb.checkRange(start, end); err != nil {
		return "", err
	}
	removed := tb.text[start:end]
	if removed == s {
		return removed, nil
	}
	tb.text = tb.text[:start] + s + tb.text[end:]
	tb.modified = true
	return removed, nil
}

// SetText replaces the whole content.
func (tb *TextBuffer) SetText(text string) {
	if text != tb.text {
		tb.text = text
		tb.modified = true
	}
}

// Ensure TextBuffer satisfies the Buffer interface
var _ Buffer = (*TextBuffer)(nil)
