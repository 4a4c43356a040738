package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/retrace/internal/logger"
)

// Manager holds copied text, either in an internal register or on the system clipboard.
type Manager struct {
	register  string
	useSystem bool
}

// NewManager creates a clipboard manager. With useSystem set, the system clipboard
// is tried first and the internal register is the fallback.
func NewManager(useSystem bool) *Manager {
	if useSystem && clipboard.Unsupported {
		logger.Warnf("ClipboardManager: system clipboard unsupported, using internal register")
		useSystem = false
	}
	return &Manager{useSystem: useSystem}
}

// UsesSystem reports whether the system clipboard is in use.
func (m *Manager) UsesSystem() bool {
	return m.useSystem
}

// Set stores text.
func (m *Manager) Set(text string) error {
	m.register = text
	if !m.useSystem {
		return nil
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write system clipboard: %w", err)
	}
	logger.Debugf("ClipboardManager: Copied %d bytes to system clipboard", len(text))
	return nil
}

// Get returns the stored text. A failing system clipboard falls back to the register.
func (m *Manager) Get() string {
	if !m.useSystem {
		return m.register
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		logger.Warnf("ClipboardManager: system clipboard read failed, using register: %v", err)
		return m.register
	}
	return text
}
