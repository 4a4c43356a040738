package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotValidateWithoutText(t *testing.T) {
	snap := Snapshot{
		Undo: StackSnapshot{Actions: []EditAction{{Start: 10, After: "far away"}}},
	}
	// Structure is fine; only a known text can prove it inconsistent
	assert.NoError(t, snap.Validate(nil))

	text := "short"
	assert.ErrorIs(t, snap.Validate(&text), ErrInconsistentHistory)
}

func TestSnapshotValidateChecksOnlyStackTops(t *testing.T) {
	text := "ab"
	snap := Snapshot{
		Undo: StackSnapshot{Actions: []EditAction{
			{Start: 0, After: "a"},
			{Start: 1, After: "b"},
		}},
	}
	assert.NoError(t, snap.Validate(&text))
}

func TestStackSnapshotValidateUnboundedAllowsAnyCount(t *testing.T) {
	s := StackSnapshot{Capacity: Unbounded}
	for i := 0; i < 100; i++ {
		s.Actions = append(s.Actions, EditAction{Start: i, After: "x"})
	}
	assert.NoError(t, s.Validate())
}
