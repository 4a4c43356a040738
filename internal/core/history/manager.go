package history

import (
	"errors"
	"fmt"

	"github.com/bethropolis/retrace/internal/event"
	"github.com/bethropolis/retrace/internal/logger"
)

// ErrNoHost is returned by Undo and Redo when no TextHost is attached.
var ErrNoHost = errors.New("no text host attached")

const logTag = "history"

// TextHost is the editor component whose text the history describes.
// ApplyText must be followed by exactly one NotifyTextChanged call for the change,
// which the Manager consumes instead of recording. The call may be deferred;
// each Undo or Redo leaves one pending suppression until its notification arrives.
type TextHost interface {
	Text() string
	ApplyText(text string, cursor int)
}

// Listener receives availability changes. It is only called when a stack
// goes from empty to non-empty or back.
type Listener interface {
	UndoAvailabilityChanged(canUndo bool)
	RedoAvailabilityChanged(canRedo bool)
}

// State tells the Manager whether the next reported text change is the user's.
type State int

const (
	StateIdle             State = iota // Reported changes are recorded
	StateApplyingHistory               // The next reported change is our own and is skipped
)

func (s State) String() string {
	if s == StateApplyingHistory {
		return "applying-history"
	}
	return "idle"
}

// AppliedChange is the outcome of an undo or redo.
type AppliedChange struct {
	Action EditAction // The action as stored on the stacks
	Text   string     // Full text after the change
	Cursor int        // Cursor position after the change
}

// Manager records edits on an undo stack and moves them between the undo and redo stacks.
// It is not safe for concurrent use; callers confine it to one goroutine.
type Manager struct {
	undo *ActionStack
	redo *ActionStack

	// pending counts self-applied changes whose notification has not arrived yet.
	pending int

	host     TextHost
	listener Listener
	events   *event.Manager
}

// NewManager creates a history manager with empty, unbounded stacks.
// host may be nil, in which case only the Plan methods can compute changes.
func NewManager(host TextHost) *Manager {
	return &Manager{
		undo: NewActionStack(),
		redo: NewActionStack(),
		host: host,
	}
}

func (m *Manager) SetHost(host TextHost) {
	m.host = host
}

func (m *Manager) SetListener(l Listener) {
	m.listener = l
}

// SetEventManager makes the Manager publish availability and history events.
func (m *Manager) SetEventManager(em *event.Manager) {
	m.events = em
}

// SetMaxHistory bounds the undo stack. n <= 0 means unbounded.
func (m *Manager) SetMaxHistory(n int) {
	m.undoChanged(m.undo.SetMaxCapacity(n))
}

// SetMaxRedoHistory bounds the redo stack. It is unbounded unless set.
func (m *Manager) SetMaxRedoHistory(n int) {
	m.redoChanged(m.redo.SetMaxCapacity(n))
}

func (m *Manager) State() State {
	if m.pending > 0 {
		return StateApplyingHistory
	}
	return StateIdle
}

// PendingSuppressions is the number of self-applied changes still to be reported.
func (m *Manager) PendingSuppressions() int { return m.pending }

func (m *Manager) CanUndo() bool { return !m.undo.IsEmpty() }

func (m *Manager) CanRedo() bool { return !m.redo.IsEmpty() }

func (m *Manager) UndoCount() int { return m.undo.Len() }

func (m *Manager) RedoCount() int { return m.redo.Len() }

// NotifyTextChanged is called by the host for every text mutation.
// A change caused by Undo or Redo consumes one pending suppression; anything else is recorded.
func (m *Manager) NotifyTextChanged(start int, before, after string) error {
	if m.pending > 0 {
		m.pending--
		logger.DebugTagf(logTag, "Skipped self-applied change at %d. Pending: %d", start, m.pending)
		return nil
	}
	return m.RecordEdit(start, before, after)
}

// RecordEdit pushes a user edit onto the undo stack and discards any redo history.
// An edit that changes nothing is ignored.
func (m *Manager) RecordEdit(start int, before, after string) error {
	action, err := NewEditAction(start, before, after)
	if err != nil {
		return fmt.Errorf("record edit: %w", err)
	}
	if action.IsNoop() {
		return nil
	}

	m.undoChanged(m.undo.Push(action))
	if !m.redo.IsEmpty() {
		m.redoChanged(m.redo.Clear())
	}

	logger.DebugTagf(logTag, "Recorded %s. Undo: %d", action, m.undo.Len())
	return nil
}

// Undo reverts the most recent edit. It returns nil when there is nothing to undo.
func (m *Manager) Undo() (*AppliedChange, error) {
	if m.undo.IsEmpty() {
		logger.DebugTagf(logTag, "Nothing to undo.")
		return nil, nil
	}
	if m.host == nil {
		return nil, fmt.Errorf("undo failed: %w", ErrNoHost)
	}

	action, change, _ := m.undo.Pop()
	text, cursor, err := action.RevertFrom(m.host.Text())
	if err != nil {
		// Put it back untouched; the caller's text has drifted from the history.
		m.undo.Push(action)
		return nil, fmt.Errorf("undo failed: %w", err)
	}
	m.undoChanged(change)

	m.pending++
	m.host.ApplyText(text, cursor)
	m.redoChanged(m.redo.Push(action))

	logger.DebugTagf(logTag, "Undid %s. Undo: %d, Redo: %d", action, m.undo.Len(), m.redo.Len())
	m.dispatch(event.TypeHistoryApplied, event.HistoryAppliedData{Redo: false, Start: action.Start, Cursor: cursor})
	return &AppliedChange{Action: action, Text: text, Cursor: cursor}, nil
}

// Redo reapplies the most recently undone edit. It returns nil when there is nothing to redo.
func (m *Manager) Redo() (*AppliedChange, error) {
	if m.redo.IsEmpty() {
		logger.DebugTagf(logTag, "Nothing to redo.")
		return nil, nil
	}
	if m.host == nil {
		return nil, fmt.Errorf("redo failed: %w", ErrNoHost)
	}

	action, change, _ := m.redo.Pop()
	text, cursor, err := action.ApplyTo(m.host.Text())
	if err != nil {
		m.redo.Push(action)
		return nil, fmt.Errorf("redo failed: %w", err)
	}
	m.redoChanged(change)

	m.pending++
	m.host.ApplyText(text, cursor)
	m.undoChanged(m.undo.Push(action))

	logger.DebugTagf(logTag, "Redid %s. Undo: %d, Redo: %d", action, m.undo.Len(), m.redo.Len())
	m.dispatch(event.TypeHistoryApplied, event.HistoryAppliedData{Redo: true, Start: action.Start, Cursor: cursor})
	return &AppliedChange{Action: action, Text: text, Cursor: cursor}, nil
}

// PlanUndo computes what Undo would produce against text without changing any state.
func (m *Manager) PlanUndo(text string) (*AppliedChange, error) {
	action, ok := m.undo.Peek()
	if !ok {
		return nil, nil
	}
	newText, cursor, err := action.RevertFrom(text)
	if err != nil {
		return nil, err
	}
	return &AppliedChange{Action: action, Text: newText, Cursor: cursor}, nil
}

// PlanRedo computes what Redo would produce against text without changing any state.
func (m *Manager) PlanRedo(text string) (*AppliedChange, error) {
	action, ok := m.redo.Peek()
	if !ok {
		return nil, nil
	}
	newText, cursor, err := action.ApplyTo(text)
	if err != nil {
		return nil, err
	}
	return &AppliedChange{Action: action, Text: newText, Cursor: cursor}, nil
}

// Clear drops all history, e.g. after a different file is loaded.
func (m *Manager) Clear() {
	m.undoChanged(m.undo.Clear())
	m.redoChanged(m.redo.Clear())
	m.pending = 0
	logger.DebugTagf(logTag, "Cleared.")
}

// CaptureState returns a deep copy of the history for persistence.
func (m *Manager) CaptureState() Snapshot {
	return Snapshot{
		Undo:              m.undo.Snapshot(),
		Redo:              m.redo.Snapshot(),
		SuppressRecording: m.pending > 0,
	}
}

// RestoreState replaces the history with snap. The snapshot is validated in full
// (against the host's text when a host is attached) before anything is changed.
// Availability events fire for the resulting size jumps.
func (m *Manager) RestoreState(snap Snapshot) error {
	var hostText *string
	if m.host != nil {
		t := m.host.Text()
		hostText = &t
	}
	if err := snap.Validate(hostText); err != nil {
		return fmt.Errorf("restore history: %w", err)
	}

	undo, err := StackFromSnapshot(snap.Undo)
	if err != nil {
		return fmt.Errorf("restore undo stack: %w", err)
	}
	redo, err := StackFromSnapshot(snap.Redo)
	if err != nil {
		return fmt.Errorf("restore redo stack: %w", err)
	}

	m.undoChanged(m.undo.CopyFrom(undo))
	m.redoChanged(m.redo.CopyFrom(redo))
	m.pending = 0
	if snap.SuppressRecording {
		m.pending = 1
	}

	logger.DebugTagf(logTag, "Restored. Undo: %d, Redo: %d, State: %v", m.undo.Len(), m.redo.Len(), m.State())
	m.dispatch(event.TypeHistoryRestored, event.HistoryRestoredData{UndoCount: m.undo.Len(), RedoCount: m.redo.Len()})
	return nil
}

// undoChanged turns a raw size change of the undo stack into an availability event.
func (m *Manager) undoChanged(c SizeChange) {
	available, changed := c.Transition()
	if !changed {
		return
	}
	if m.listener != nil {
		m.listener.UndoAvailabilityChanged(available)
	}
	m.dispatch(event.TypeUndoAvailabilityChanged, event.AvailabilityData{Available: available})
}

func (m *Manager) redoChanged(c SizeChange) {
	available, changed := c.Transition()
	if !changed {
		return
	}
	if m.listener != nil {
		m.listener.RedoAvailabilityChanged(available)
	}
	m.dispatch(event.TypeRedoAvailabilityChanged, event.AvailabilityData{Available: available})
}

func (m *Manager) dispatch(t event.Type, data interface{}) {
	if m.events != nil {
		m.events.Dispatch(t, data)
	}
}
