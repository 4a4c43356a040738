package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestProcessEventDefaultBindings(t *testing.T) {
	p := NewInputProcessor()

	tests := []struct {
		key  tcell.Key
		want Action
	}{
		{tcell.KeyCtrlZ, ActionUndo},
		{tcell.KeyCtrlY, ActionRedo},
		{tcell.KeyCtrlS, ActionSave},
		{tcell.KeyCtrlV, ActionPaste},
		{tcell.KeyCtrlK, ActionCutLine},
		{tcell.KeyEscape, ActionQuit},
		{tcell.KeyBackspace2, ActionDeleteCharBackward},
		{tcell.KeyEnter, ActionInsertNewLine},
		{tcell.KeyF5, ActionUnknown},
	}
	for _, tt := range tests {
		ev := tcell.NewEventKey(tt.key, 0, tcell.ModNone)
		assert.Equal(t, tt.want, p.ProcessEvent(ev).Action, "key %v", tt.key)
	}
}

func TestProcessEventRunes(t *testing.T) {
	p := NewInputProcessor()

	got := p.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'ü', tcell.ModNone))
	assert.Equal(t, ActionEvent{Action: ActionInsertRune, Rune: 'ü'}, got)

	got = p.ProcessEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt))
	assert.Equal(t, ActionUnknown, got.Action)
}

func TestBindOverrides(t *testing.T) {
	p := NewInputProcessor()
	p.Bind(tcell.KeyCtrlR, ActionRedo)

	got := p.ProcessEvent(tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModNone))
	assert.Equal(t, ActionRedo, got.Action)
}
