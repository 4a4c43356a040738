package utils

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGraphemeBoundaries(t *testing.T) {
	text := "a👍🏽b\nc"
	// a=1 byte, thumbs up with skin tone=8 bytes, b=1, newline=1, c=1
	assert.Equal(t, 1, NextGraphemeBoundary(text, 0))
	assert.Equal(t, 9, NextGraphemeBoundary(text, 1))
	assert.Equal(t, 1, PrevGraphemeBoundary(text, 9))
	assert.Equal(t, 10, PrevGraphemeBoundary(text, 11))
	assert.Equal(t, 11, PrevGraphemeBoundary(text, 12))
	assert.Equal(t, len(text), NextGraphemeBoundary(text, len(text)))
	assert.Equal(t, 0, PrevGraphemeBoundary(text, 0))
}

func TestLineBounds(t *testing.T) {
	text := "ab\ncd\n"
	assert.Equal(t, 0, LineStart(text, 2))
	assert.Equal(t, 3, LineStart(text, 4))
	assert.Equal(t, 2, LineEnd(text, 0))
	assert.Equal(t, 5, LineEnd(text, 3))
	assert.Equal(t, 6, LineEnd(text, 6))
}

func TestLineCol(t *testing.T) {
	text := "ab\n\tx世y"
	line, col := LineCol(text, len(text), 4)
	assert.Equal(t, 1, line)
	assert.Equal(t, 8, col) // tab to 4, x, wide rune 2, y

	line, col = LineCol(text, 1, 4)
	assert.Equal(t, 0, line)
	assert.Equal(t, 1, col)

	line, _ = LineCol(text, 999, 4)
	assert.Equal(t, 1, line)
}

func TestVisualWidthTabStops(t *testing.T) {
	assert.Equal(t, 4, VisualWidth("\t", 0, 4))
	assert.Equal(t, 4, VisualWidth("\t", 1, 4))
	assert.Equal(t, 8, VisualWidth("ab\tc\t", 0, 4))
	assert.Equal(t, 2, DisplayWidth("世"))
}

func TestDebouncerRunsOnceAfterQuietPeriod(t *testing.T) {
	var d Debouncer
	var calls int32

	for i := 0; i < 5; i++ {
		d.Debounce(20*time.Millisecond, func() { atomic.AddInt32(&calls, 1) })
	}

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.False(t, d.LastCalled().IsZero())
}

func TestDebouncerFlush(t *testing.T) {
	var d Debouncer
	var calls int32

	assert.False(t, d.Flush())

	d.Debounce(time.Hour, func() { atomic.AddInt32(&calls, 1) })
	assert.True(t, d.Flush())
	assert.False(t, d.Flush())
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}
