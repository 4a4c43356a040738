package history

import (
	"errors"
	"fmt"
)

var (
	ErrCapacityExceeded    = errors.New("stack holds more entries than its capacity")
	ErrInconsistentHistory = errors.New("history does not match the current text")
)

// StackSnapshot is the serializable form of an ActionStack.
// Actions are ordered oldest first; the last one is the top of the stack.
type StackSnapshot struct {
	Capacity int          `toml:"capacity" yaml:"capacity"`
	Actions  []EditAction `toml:"actions" yaml:"actions"`
}

// Snapshot is the serializable state of a Manager.
type Snapshot struct {
	Undo              StackSnapshot `toml:"undo" yaml:"undo"`
	Redo              StackSnapshot `toml:"redo" yaml:"redo"`
	// SuppressRecording is set when a self-applied change was still unreported.
	// Restoring it leaves exactly one suppression pending.
	SuppressRecording bool          `toml:"suppress_recording" yaml:"suppress_recording"`
}

// Validate checks a single stack snapshot for structural problems.
func (s StackSnapshot) Validate() error {
	if s.Capacity < 0 {
		return fmt.Errorf("capacity %d: %w", s.Capacity, ErrCapacityExceeded)
	}
	if s.Capacity != Unbounded && len(s.Actions) > s.Capacity {
		return fmt.Errorf("%d actions with capacity %d: %w", len(s.Actions), s.Capacity, ErrCapacityExceeded)
	}
	for i, a := range s.Actions {
		if a.Start < 0 {
			return fmt.Errorf("action %d: %w", i, ErrNegativeStart)
		}
		if a.IsNoop() {
			return fmt.Errorf("action %d: %w", i, ErrNoopAction)
		}
	}
	return nil
}

// Validate checks both stacks. When hostText is non-nil, it also checks that the
// top undo action can be reverted from it and the top redo action can be applied to it.
func (s Snapshot) Validate(hostText *string) error {
	if err := s.Undo.Validate(); err != nil {
		return fmt.Errorf("undo stack: %w", err)
	}
	if err := s.Redo.Validate(); err != nil {
		return fmt.Errorf("redo stack: %w", err)
	}
	if hostText == nil {
		return nil
	}

	text := *hostText
	if n := len(s.Undo.Actions); n > 0 {
		top := s.Undo.Actions[n-1]
		if !top.matches(text, top.After) {
			return fmt.Errorf("undo top %s: %w", top, ErrInconsistentHistory)
		}
	}
	if n := len(s.Redo.Actions); n > 0 {
		top := s.Redo.Actions[n-1]
		if !top.matches(text, top.Before) {
			return fmt.Errorf("redo top %s: %w", top, ErrInconsistentHistory)
		}
	}
	return nil
}
