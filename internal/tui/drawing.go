// internal/tui/drawing.go
package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/bethropolis/retrace/internal/core"
	"github.com/bethropolis/retrace/internal/utils"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

const statusBarHeight = 1

var (
	defaultStyle    = tcell.StyleDefault
	lineNumberStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// gutterWidth returns the width of the line number column for lineCount lines.
func gutterWidth(lineCount, screenWidth int) (width, digits int) {
	if lineCount <= 0 {
		lineCount = 1
	}
	digits = int(math.Log10(float64(lineCount))) + 1
	width = digits + 1 // Space between number and text
	if width >= screenWidth {
		return 0, digits
	}
	return width, digits
}

// CursorLocation returns the cursor's line and visual column.
func CursorLocation(editor *core.Editor) (int, int) {
	return utils.LineCol(editor.Text(), editor.GetCursor(), editor.TabWidth())
}

// ScrollToCursor adjusts the viewport so the cursor is visible.
func (t *TUI) ScrollToCursor(editor *core.Editor) {
	width, height := t.Size()
	viewHeight := height - statusBarHeight
	gutter, _ := gutterWidth(strings.Count(editor.Text(), "\n")+1, width)
	textAreaWidth := width - gutter
	if viewHeight <= 0 || textAreaWidth <= 0 {
		return
	}

	line, col := CursorLocation(editor)
	if line < t.viewY {
		t.viewY = line
	} else if line >= t.viewY+viewHeight {
		t.viewY = line - viewHeight + 1
	}
	if col < t.viewX {
		t.viewX = col
	} else if col >= t.viewX+textAreaWidth {
		t.viewX = col - textAreaWidth + 1
	}
}

// DrawBuffer draws the visible portion of the editor's text.
func DrawBuffer(t *TUI, editor *core.Editor) {
	width, height := t.Size()
	viewHeight := height - statusBarHeight
	if viewHeight <= 0 || width <= 0 {
		return
	}

	lines := strings.Split(editor.Text(), "\n")
	gutter, digits := gutterWidth(len(lines), width)
	textAreaWidth := width - gutter
	cursorLine, _ := CursorLocation(editor)
	tabWidth := editor.TabWidth()

	for screenY := 0; screenY < viewHeight; screenY++ {
		lineIdx := screenY + t.viewY

		for x := 0; x < width; x++ {
			t.screen.SetContent(x, screenY, ' ', nil, defaultStyle)
		}
		if lineIdx >= len(lines) {
			continue
		}

		if gutter > 0 {
			style := lineNumberStyle
			if lineIdx == cursorLine {
				style = style.Bold(true)
			}
			for i, r := range fmt.Sprintf("%*d", digits, lineIdx+1) {
				t.screen.SetContent(i, screenY, r, nil, style)
			}
		}

		visualX := 0
		gr := uniseg.NewGraphemes(lines[lineIdx])
		for gr.Next() {
			runes := gr.Runes()
			clusterWidth := gr.Width()
			if runes[0] == '\t' {
				clusterWidth = tabWidth - visualX%tabWidth
			}
			screenX := visualX - t.viewX + gutter

			if visualX >= t.viewX && screenX+clusterWidth <= width {
				if runes[0] == '\t' {
					for i := 0; i < clusterWidth; i++ {
						t.screen.SetContent(screenX+i, screenY, ' ', nil, defaultStyle)
					}
				} else {
					t.screen.SetContent(screenX, screenY, runes[0], runes[1:], defaultStyle)
				}
			}

			visualX += clusterWidth
			if visualX >= t.viewX+textAreaWidth {
				break
			}
		}
	}
}

// DrawCursor positions the terminal cursor using visual width calculations.
func DrawCursor(t *TUI, editor *core.Editor) {
	width, height := t.Size()
	viewHeight := height - statusBarHeight
	gutter, _ := gutterWidth(strings.Count(editor.Text(), "\n")+1, width)

	line, col := CursorLocation(editor)
	screenX := col - t.viewX + gutter
	screenY := line - t.viewY

	if screenX < gutter || screenX >= width || screenY < 0 || screenY >= viewHeight {
		t.screen.HideCursor()
		return
	}
	t.screen.ShowCursor(screenX, screenY)
}
