// internal/app/app.go
package app

import (
	"fmt"

	"github.com/bethropolis/retrace/internal/buffer"
	"github.com/bethropolis/retrace/internal/config"
	"github.com/bethropolis/retrace/internal/core"
	"github.com/bethropolis/retrace/internal/core/clipboard"
	"github.com/bethropolis/retrace/internal/event"
	"github.com/bethropolis/retrace/internal/input"
	"github.com/bethropolis/retrace/internal/logger"
	"github.com/bethropolis/retrace/internal/persist"
	"github.com/bethropolis/retrace/internal/statusbar"
	"github.com/bethropolis/retrace/internal/tui"
	"github.com/bethropolis/retrace/internal/utils"
	"github.com/gdamore/tcell/v2"
)

// Options configure a new App.
type Options struct {
	Config   *config.Config
	FilePath string
	Screen   tcell.Screen // Optional; a real terminal is opened when nil
}

// App encapsulates the core components and main loop of the editor.
type App struct {
	cfg            *config.Config
	tuiManager     *tui.TUI
	editor         *core.Editor
	statusBar      *statusbar.StatusBar
	eventManager   *event.Manager
	inputProcessor *input.InputProcessor

	// Snapshot persistence; store is nil when disabled
	store         *persist.Store
	saveDebouncer utils.Debouncer

	forceQuitPending bool
	quitting         bool
}

// NewApp creates and initializes a new application instance.
func NewApp(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	// --- Create Core Components ---
	var tuiManager *tui.TUI
	if opts.Screen != nil {
		tuiManager = tui.NewWithScreen(opts.Screen)
	} else {
		var err error
		tuiManager, err = tui.New()
		if err != nil {
			return nil, fmt.Errorf("TUI initialization failed: %w", err)
		}
	}

	eventManager := event.NewManager()
	statusCfg := statusbar.DefaultConfig()
	statusCfg.MessageTimeout = config.MessageTimeout
	statusBar := statusbar.New(statusCfg)

	editor := core.NewEditor(buffer.NewTextBuffer(""))
	editor.SetEventManager(eventManager)
	editor.SetTabWidth(cfg.Editor.TabWidth)
	editor.SetClipboard(clipboard.NewManager(cfg.Editor.SystemClipboard))

	historyManager := editor.GetHistoryManager()
	historyManager.SetListener(statusBar)
	historyManager.SetMaxHistory(cfg.History.MaxUndo)
	historyManager.SetMaxRedoHistory(cfg.History.MaxRedo)

	a := &App{
		cfg:            cfg,
		tuiManager:     tuiManager,
		editor:         editor,
		statusBar:      statusBar,
		eventManager:   eventManager,
		inputProcessor: input.NewInputProcessor(),
	}

	if cfg.History.Persist {
		format, err := persist.ParseFormat(cfg.History.SnapshotFormat)
		if err != nil {
			logger.Warnf("App: %v, using %s", err, persist.FormatTOML)
			format = persist.FormatTOML
		}
		a.store = persist.NewStore(cfg.History.SnapshotDir, format)
	}

	a.subscribeEvents()

	if opts.FilePath != "" {
		if err := editor.Load(opts.FilePath); err != nil {
			tuiManager.Close()
			return nil, fmt.Errorf("failed to load '%s': %w", opts.FilePath, err)
		}
		a.restoreHistory()
	}
	a.updateStatusBarContent()

	return a, nil
}

// Editor returns the editor driven by the app.
func (a *App) Editor() *core.Editor { return a.editor }

// Run starts the application's event loop and blocks until the user quits.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := a.tuiManager.PollEvent()
			if ev == nil { // Screen finalized
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("retrace - Ctrl+Z Undo | Ctrl+Y Redo | Ctrl+S Save | ESC Quit")
	a.drawEditor()

	for ev := range events {
		if a.handleEvent(ev) {
			a.drawEditor()
		}
		if a.quitting {
			break
		}
	}

	a.shutdown()
	return nil
}

// handleEvent processes one tcell event and reports whether a redraw is needed.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.GetScreen().Sync()
		return true
	case *tcell.EventKey:
		return a.executeAction(a.inputProcessor.ProcessEvent(e))
	case *tcell.EventInterrupt:
		if _, ok := e.Data().(saveHistoryRequest); ok {
			a.saveHistory()
		}
		return false
	}
	return false
}

func (a *App) shutdown() {
	if a.saveDebouncer.Flush() {
		a.saveHistory()
	}
	a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
	if a.editor.GetBuffer().IsModified() {
		logger.Warnf("App: exited with unsaved changes")
	}
	logger.Infof("App: exiting")
}

// --- Drawing ---

// drawEditor clears screen and redraws all components.
func (a *App) drawEditor() {
	a.updateStatusBarContent()

	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()

	a.tuiManager.Clear()
	a.tuiManager.ScrollToCursor(a.editor)
	tui.DrawBuffer(a.tuiManager, a.editor)
	a.statusBar.Draw(screen, width, height)
	tui.DrawCursor(a.tuiManager, a.editor)
	a.tuiManager.Show()
}

// updateStatusBarContent pushes current editor state to the status bar component.
func (a *App) updateStatusBarContent() {
	buf := a.editor.GetBuffer()
	a.statusBar.SetFileInfo(buf.FilePath(), buf.IsModified())
	a.statusBar.SetCursorInfo(tui.CursorLocation(a.editor))
}
