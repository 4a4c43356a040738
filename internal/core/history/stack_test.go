package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insertAt(i int) EditAction {
	return EditAction{Start: i, After: "x"}
}

func TestSizeChangeTransition(t *testing.T) {
	tests := []struct {
		change    SizeChange
		available bool
		changed   bool
	}{
		{SizeChange{0, 1}, true, true},
		{SizeChange{1, 0}, false, true},
		{SizeChange{1, 2}, true, false},
		{SizeChange{2, 1}, true, false},
		{SizeChange{0, 0}, false, false},
		{SizeChange{0, 5}, true, true},
		{SizeChange{5, 0}, false, true},
	}
	for _, tt := range tests {
		available, changed := tt.change.Transition()
		assert.Equal(t, tt.available, available, "%+v", tt.change)
		assert.Equal(t, tt.changed, changed, "%+v", tt.change)
	}
}

func TestActionStackPushPop(t *testing.T) {
	assert := assert.New(t)
	s := NewActionStack()

	assert.True(s.IsEmpty())
	assert.Equal(SizeChange{0, 1}, s.Push(insertAt(0)))
	assert.Equal(SizeChange{1, 2}, s.Push(insertAt(1)))

	top, ok := s.Peek()
	assert.True(ok)
	assert.Equal(insertAt(1), top)

	a, change, ok := s.Pop()
	assert.True(ok)
	assert.Equal(insertAt(1), a)
	assert.Equal(SizeChange{2, 1}, change)

	a, change, ok = s.Pop()
	assert.True(ok)
	assert.Equal(insertAt(0), a)
	assert.Equal(SizeChange{1, 0}, change)

	_, _, ok = s.Pop()
	assert.False(ok)
	_, ok = s.Peek()
	assert.False(ok)
}

func TestActionStackEvictsOldest(t *testing.T) {
	s := NewActionStack()
	s.SetMaxCapacity(3)
	for i := 0; i < 3; i++ {
		s.Push(insertAt(i))
	}

	// A full stack keeps its size; the bottom entry is dropped
	assert.Equal(t, SizeChange{3, 3}, s.Push(insertAt(3)))
	assert.Equal(t, []EditAction{insertAt(1), insertAt(2), insertAt(3)}, s.Entries())
}

func TestActionStackCapacityOne(t *testing.T) {
	s := NewActionStack()
	s.SetMaxCapacity(1)
	s.Push(insertAt(0))
	s.Push(insertAt(1))

	assert.Equal(t, 1, s.Len())
	top, _ := s.Peek()
	assert.Equal(t, insertAt(1), top)
}

func TestActionStackShrinkCapacity(t *testing.T) {
	s := NewActionStack()
	for i := 0; i < 5; i++ {
		s.Push(insertAt(i))
	}

	change := s.SetMaxCapacity(2)
	assert.Equal(t, SizeChange{5, 2}, change)
	assert.Equal(t, []EditAction{insertAt(3), insertAt(4)}, s.Entries())
	assert.Equal(t, 2, s.MaxCapacity())

	// Growing or removing the bound keeps everything
	assert.Equal(t, SizeChange{2, 2}, s.SetMaxCapacity(Unbounded))
	assert.Equal(t, SizeChange{2, 2}, s.SetMaxCapacity(-7))
	assert.Equal(t, Unbounded, s.MaxCapacity())
}

func TestActionStackClear(t *testing.T) {
	s := NewActionStack()
	assert.Equal(t, SizeChange{0, 0}, s.Clear())

	s.Push(insertAt(0))
	s.Push(insertAt(1))
	assert.Equal(t, SizeChange{2, 0}, s.Clear())
	assert.True(t, s.IsEmpty())
}

func TestActionStackEntriesIsACopy(t *testing.T) {
	s := NewActionStack()
	s.Push(insertAt(0))

	entries := s.Entries()
	entries[0] = insertAt(9)

	top, _ := s.Peek()
	assert.Equal(t, insertAt(0), top)
}

func TestActionStackCopyFrom(t *testing.T) {
	src := NewActionStack()
	src.SetMaxCapacity(4)
	src.Push(insertAt(0))
	src.Push(insertAt(1))

	dst := NewActionStack()
	dst.Push(insertAt(7))
	change := dst.CopyFrom(src)

	assert.Equal(t, SizeChange{1, 2}, change)
	assert.Equal(t, src.Entries(), dst.Entries())
	assert.Equal(t, 4, dst.MaxCapacity())

	// Later pushes to the source do not leak into the copy
	src.Push(insertAt(2))
	assert.Equal(t, 2, dst.Len())
}

func TestActionStackSnapshotRoundTrip(t *testing.T) {
	s := NewActionStack()
	s.SetMaxCapacity(10)
	s.Push(EditAction{Start: 0, After: "ab"})
	s.Push(EditAction{Start: 1, Before: "b", After: "c"})

	rebuilt, err := StackFromSnapshot(s.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, s.Entries(), rebuilt.Entries())
	assert.Equal(t, s.MaxCapacity(), rebuilt.MaxCapacity())
	assert.Equal(t, "stack(2/10)", rebuilt.String())
}

func TestStackFromSnapshotRejectsOverflow(t *testing.T) {
	_, err := StackFromSnapshot(StackSnapshot{
		Capacity: 1,
		Actions:  []EditAction{insertAt(0), insertAt(1)},
	})
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}
