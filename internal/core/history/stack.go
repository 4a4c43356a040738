package history

import "fmt"

// Unbounded is the capacity of a stack with no size limit.
const Unbounded = 0

// SizeChange reports a stack's size measured immediately before and after a mutation.
type SizeChange struct {
	Before int
	After  int
}

// Transition reports whether the change crossed the empty/non-empty boundary,
// and if so whether the stack is now non-empty.
func (c SizeChange) Transition() (available bool, changed bool) {
	switch {
	case c.Before == 0 && c.After > 0:
		return true, true
	case c.Before > 0 && c.After == 0:
		return false, true
	default:
		return c.After > 0, false
	}
}

// ActionStack is a capacity-bounded stack of EditActions.
// Entries are kept oldest first; the top of the stack is the last element.
type ActionStack struct {
	entries     []EditAction
	maxCapacity int // Unbounded when zero
}

// NewActionStack creates an empty, unbounded stack.
func NewActionStack() *ActionStack {
	return &ActionStack{}
}

// SetMaxCapacity bounds the stack to n entries. n <= 0 removes the bound.
// If the stack already holds more than n entries, the oldest are evicted.
func (s *ActionStack) SetMaxCapacity(n int) SizeChange {
	if n < 0 {
		n = Unbounded
	}
	s.maxCapacity = n

	before := len(s.entries)
	if n != Unbounded && before > n {
		s.entries = compact(s.entries[before-n:])
	}
	return SizeChange{Before: before, After: len(s.entries)}
}

// MaxCapacity returns the configured bound, or Unbounded.
func (s *ActionStack) MaxCapacity() int {
	return s.maxCapacity
}

// Push places action on top, evicting the bottom entry first when the stack is full.
func (s *ActionStack) Push(action EditAction) SizeChange {
	before := len(s.entries)

	if s.maxCapacity != Unbounded && len(s.entries) >= s.maxCapacity {
		s.entries[0] = EditAction{}
		s.entries = s.entries[1:]
	}
	s.entries = append(s.entries, action)

	return SizeChange{Before: before, After: len(s.entries)}
}

// Pop removes and returns the top entry. ok is false if the stack is empty.
func (s *ActionStack) Pop() (action EditAction, change SizeChange, ok bool) {
	before := len(s.entries)
	if before == 0 {
		return EditAction{}, SizeChange{}, false
	}

	action = s.entries[before-1]
	s.entries[before-1] = EditAction{}
	s.entries = s.entries[:before-1]

	return action, SizeChange{Before: before, After: len(s.entries)}, true
}

// Peek returns the top entry without removing it.
func (s *ActionStack) Peek() (EditAction, bool) {
	if len(s.entries) == 0 {
		return EditAction{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// Clear removes all entries.
func (s *ActionStack) Clear() SizeChange {
	before := len(s.entries)
	s.entries = nil
	return SizeChange{Before: before, After: 0}
}

func (s *ActionStack) IsEmpty() bool {
	return len(s.entries) == 0
}

func (s *ActionStack) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the stack contents, oldest first.
func (s *ActionStack) Entries() []EditAction {
	out := make([]EditAction, len(s.entries))
	copy(out, s.entries)
	return out
}

// CopyFrom replaces this stack's capacity and entries with a snapshot of other's.
func (s *ActionStack) CopyFrom(other *ActionStack) SizeChange {
	before := len(s.entries)
	s.maxCapacity = other.maxCapacity
	s.entries = other.Entries()
	return SizeChange{Before: before, After: len(s.entries)}
}

// Snapshot captures the stack as plain data.
func (s *ActionStack) Snapshot() StackSnapshot {
	return StackSnapshot{
		Capacity: s.maxCapacity,
		Actions:  s.Entries(),
	}
}

// StackFromSnapshot rebuilds a stack, failing on malformed data instead of truncating it.
func StackFromSnapshot(snap StackSnapshot) (*ActionStack, error) {
	if err := snap.Validate(); err != nil {
		return nil, err
	}
	s := &ActionStack{maxCapacity: snap.Capacity}
	s.entries = make([]EditAction, len(snap.Actions))
	copy(s.entries, snap.Actions)
	return s, nil
}

func (s *ActionStack) String() string {
	if s.maxCapacity == Unbounded {
		return fmt.Sprintf("stack(%d/unbounded)", len(s.entries))
	}
	return fmt.Sprintf("stack(%d/%d)", len(s.entries), s.maxCapacity)
}

// compact copies entries into a fresh backing array so evicted actions can be collected.
func compact(entries []EditAction) []EditAction {
	out := make([]EditAction, len(entries))
	copy(out, entries)
	return out
}
