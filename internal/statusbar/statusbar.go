// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg" // For proper Unicode width calculation
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style // Default background/foreground
	StyleAvailable tcell.Style // Style for an enabled [undo]/[redo] indicator
	StyleMessage   tcell.Style // Style for temporary messages
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleAvailable: tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlue).Bold(true),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		MessageTimeout: 4 * time.Second,
	}
}

// StatusBar represents the UI component for the status line.
// It doubles as the history listener: the [undo] and [redo] indicators are
// lit only while the matching action is possible.
type StatusBar struct {
	config Config
	mu     sync.RWMutex // Protect access to text fields

	filePath   string
	isModified bool
	line, col  int
	canUndo    bool
	canRedo    bool

	// Temporary message state
	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{
		config: config,
	}
}

// SetFileInfo updates the file path shown in the status bar.
func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
	sb.isModified = modified
}

// SetCursorInfo updates the 0-based line and display column shown.
func (sb *StatusBar) SetCursorInfo(line, col int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.line, sb.col = line, col
}

// UndoAvailabilityChanged implements history.Listener.
func (sb *StatusBar) UndoAvailabilityChanged(canUndo bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.canUndo = canUndo
}

// RedoAvailabilityChanged implements history.Listener.
func (sb *StatusBar) RedoAvailabilityChanged(canRedo bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.canRedo = canRedo
}

// Availability returns the indicator states.
func (sb *StatusBar) Availability() (canUndo, canRedo bool) {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.canUndo, sb.canRedo
}

// SetTemporaryMessage displays a message for a configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = time.Now()
}

// getDefaultDisplayText builds the default status line text. Caller holds the lock.
func (sb *StatusBar) getDefaultDisplayText() string {
	fPath := sb.filePath
	if fPath == "" {
		fPath = "[No Name]"
	}
	modifiedIndicator := ""
	if sb.isModified {
		modifiedIndicator = " [Modified]"
	}
	return fmt.Sprintf("%s%s -- Line: %d, Col: %d ", fPath, modifiedIndicator, sb.line+1, sb.col+1)
}

// Draw renders the status bar onto the last screen row.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	sb.mu.Lock()
	isTempMsgActive := !sb.tempMessageTime.IsZero() && time.Since(sb.tempMessageTime) <= sb.config.MessageTimeout
	if !sb.tempMessageTime.IsZero() && !isTempMsgActive {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	style := sb.config.StyleDefault
	var text string
	if isTempMsgActive {
		text = sb.tempMessage
		style = sb.config.StyleMessage
	} else {
		text = sb.getDefaultDisplayText()
	}
	canUndo, canRedo := sb.canUndo, sb.canRedo
	sb.mu.Unlock()

	// Fill background first
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, sb.config.StyleDefault)
	}

	x := drawString(screen, 0, y, width, text, style)
	if isTempMsgActive {
		return
	}
	x = drawIndicator(screen, x, y, width, "[undo]", canUndo, sb.config)
	drawIndicator(screen, x+1, y, width, "[redo]", canRedo, sb.config)
}

func drawIndicator(screen tcell.Screen, x, y, width int, label string, on bool, cfg Config) int {
	style := cfg.StyleDefault.Dim(true)
	if on {
		style = cfg.StyleAvailable
	}
	return drawString(screen, x, y, width, label, style)
}

// drawString draws text cluster by cluster and returns the next free column.
func drawString(screen tcell.Screen, x, y, width int, text string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusterWidth := gr.Width()
		if x+clusterWidth > width {
			break // Stop if cluster doesn't fit
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			screen.SetContent(x, y, runes[0], runes[1:], style)
		}
		x += clusterWidth
	}
	return x
}
