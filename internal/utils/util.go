package utils

import (
	"strings"
	"sync"
	"time"

	"github.com/rivo/uniseg"
)

// NextGraphemeBoundary returns the byte offset just past the grapheme cluster at offset.
// Returns len(text) if offset is at or past the end.
func NextGraphemeBoundary(text string, offset int) int {
	if offset >= len(text) {
		return len(text)
	}
	if offset < 0 {
		offset = 0
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(text[offset:], -1)
	return offset + len(cluster)
}

// PrevGraphemeBoundary returns the byte offset where the grapheme cluster ending at offset starts.
// Returns 0 if offset is at or before the start.
func PrevGraphemeBoundary(text string, offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset > len(text) {
		offset = len(text)
	}
	if text[offset-1] == '\n' {
		return offset - 1
	}

	// Segment from the start of the line; clusters never span a newline here.
	pos := strings.LastIndexByte(text[:offset], '\n') + 1
	state := -1
	prev := pos
	for pos < offset {
		var cluster string
		cluster, _, _, state = uniseg.FirstGraphemeClusterInString(text[pos:offset], state)
		prev = pos
		pos += len(cluster)
	}
	return prev
}

// LineStart returns the offset of the first byte of the line holding offset.
func LineStart(text string, offset int) int {
	return strings.LastIndexByte(text[:offset], '\n') + 1
}

// LineEnd returns the offset of the newline ending the line holding offset, or len(text).
func LineEnd(text string, offset int) int {
	if i := strings.IndexByte(text[offset:], '\n'); i >= 0 {
		return offset + i
	}
	return len(text)
}

// LineCol converts a byte offset to a 0-based line and display column.
// Tabs advance to the next multiple of tabWidth.
func LineCol(text string, offset, tabWidth int) (line, col int) {
	if offset > len(text) {
		offset = len(text)
	}
	if offset < 0 {
		offset = 0
	}
	line = strings.Count(text[:offset], "\n")
	return line, VisualWidth(text[LineStart(text, offset):offset], 0, tabWidth)
}

// VisualWidth returns the column reached after drawing s starting at column start.
func VisualWidth(s string, start, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 1
	}
	col := start
	state := -1
	for len(s) > 0 {
		var cluster string
		var width int
		cluster, s, width, state = uniseg.FirstGraphemeClusterInString(s, state)
		if cluster == "\t" {
			col += tabWidth - col%tabWidth
			continue
		}
		col += width
	}
	return col
}

// DisplayWidth returns the number of terminal cells s occupies.
func DisplayWidth(s string) int {
	return uniseg.StringWidth(s)
}

// Debouncer provides a way to debounce function calls
type Debouncer struct {
	mutex      sync.Mutex
	timer      *time.Timer
	lastCalled time.Time
}

// Debounce calls the provided function after the specified duration,
// canceling any previous pending calls
func (d *Debouncer) Debounce(duration time.Duration, fn func()) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	// Cancel existing timer if present
	if d.timer != nil {
		d.timer.Stop()
	}

	// Schedule new timer
	d.timer = time.AfterFunc(duration, func() {
		d.mutex.Lock()
		d.lastCalled = time.Now()
		d.timer = nil
		d.mutex.Unlock()
		fn()
	})
}

// Flush cancels a pending call and reports whether one was pending.
// Callers that need the work done run it themselves afterwards.
func (d *Debouncer) Flush() bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.timer == nil {
		return false
	}
	stopped := d.timer.Stop()
	d.timer = nil
	return stopped
}

// LastCalled returns when the debounced function last ran.
func (d *Debouncer) LastCalled() time.Time {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	return d.lastCalled
}
