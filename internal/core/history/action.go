// Package history provides undo/redo functionality via a pair of edit action stacks.
package history

import (
	"errors"
	"fmt"
)

var (
	ErrNegativeStart   = errors.New("start index is negative")
	ErrOutOfRange      = errors.New("edit region lies outside the text")
	ErrContentMismatch = errors.New("text at edit region does not match")
	ErrNoopAction      = errors.New("edit action changes nothing")
)

// ActionKind classifies an EditAction. Insert, delete and replace share one representation.
type ActionKind int

const (
	KindNoop ActionKind = iota
	KindInsert
	KindDelete
	KindReplace
)

func (k ActionKind) String() string {
	switch k {
	case KindInsert:
		return "insert"
	case KindDelete:
		return "delete"
	case KindReplace:
		return "replace"
	default:
		return "noop"
	}
}

// EditAction is a single, reversible replacement of a text region.
// Before is what occupied [Start, Start+len(Before)) prior to the edit, After is what occupies it now.
// Offsets are byte offsets.
type EditAction struct {
	Start  int    `toml:"start" yaml:"start"`
	Before string `toml:"before" yaml:"before"` // Empty for a pure insertion
	After  string `toml:"after" yaml:"after"`   // Empty for a pure deletion
}

// NewEditAction creates an action, rejecting negative offsets.
func NewEditAction(start int, before, after string) (EditAction, error) {
	if start < 0 {
		return EditAction{}, fmt.Errorf("new edit action at %d: %w", start, ErrNegativeStart)
	}
	return EditAction{Start: start, Before: before, After: after}, nil
}

// Inverse returns the action that undoes a.
func (a EditAction) Inverse() EditAction {
	return EditAction{Start: a.Start, Before: a.After, After: a.Before}
}

// IsInverseOf reports whether b undoes a (and therefore a undoes b).
func (a EditAction) IsInverseOf(b EditAction) bool {
	return a.Start == b.Start && a.Before == b.After && a.After == b.Before
}

// IsNoop reports whether applying the action would leave the text unchanged.
func (a EditAction) IsNoop() bool {
	return a.Before == a.After
}

func (a EditAction) Kind() ActionKind {
	switch {
	case a.IsNoop():
		return KindNoop
	case a.Before == "":
		return KindInsert
	case a.After == "":
		return KindDelete
	default:
		return KindReplace
	}
}

// Delta is the change in text length caused by the action.
func (a EditAction) Delta() int {
	return len(a.After) - len(a.Before)
}

// ApplyTo replaces the Before region of text with After and returns the new text
// together with the cursor position just past the inserted fragment.
func (a EditAction) ApplyTo(text string) (string, int, error) {
	if a.Start < 0 {
		return "", 0, ErrNegativeStart
	}
	end := a.Start + len(a.Before)
	if end > len(text) {
		return "", 0, fmt.Errorf("region [%d,%d) in text of length %d: %w", a.Start, end, len(text), ErrOutOfRange)
	}
	if text[a.Start:end] != a.Before {
		return "", 0, fmt.Errorf("region [%d,%d) holds %q, want %q: %w", a.Start, end, text[a.Start:end], a.Before, ErrContentMismatch)
	}
	return text[:a.Start] + a.After + text[end:], a.Start + len(a.After), nil
}

// RevertFrom undoes the action on text, which must currently hold After at Start.
func (a EditAction) RevertFrom(text string) (string, int, error) {
	return a.Inverse().ApplyTo(text)
}

// matches reports whether fragment sits at the action's start in text.
func (a EditAction) matches(text, fragment string) bool {
	end := a.Start + len(fragment)
	return a.Start >= 0 && end <= len(text) && text[a.Start:end] == fragment
}

func (a EditAction) String() string {
	return fmt.Sprintf("%s@%d(%q -> %q)", a.Kind(), a.Start, a.Before, a.After)
}
