package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/colonyops/tuidolist/internal/core/config"
	"github.com/colonyops/tuidolist/internal/core/machine"
	"github.com/colonyops/tuidolist/pkg/tuitest"
)

func TestKeyMap_Resolve(t *testing.T) {
	km := NewKeyMap(config.DefaultConfig().Keys)

	tests := []struct {
		name   string
		mode   machine.Mode
		msg    tea.KeyMsg
		want   machine.Event
		wantOK bool
	}{
		{"browse j", machine.ModeBrowsing, tuitest.KeyPress('j'), machine.Do(machine.ActionDown), true},
		{"browse arrow up", machine.ModeBrowsing, tuitest.KeyUp(), machine.Do(machine.ActionUp), true},
		{"browse add", machine.ModeBrowsing, tuitest.KeyPress('a'), machine.Do(machine.ActionAdd), true},
		{"browse edit", machine.ModeBrowsing, tuitest.KeyPress('e'), machine.Do(machine.ActionEdit), true},
		{"browse delete", machine.ModeBrowsing, tuitest.KeyPress('d'), machine.Do(machine.ActionDelete), true},
		{"browse toggle", machine.ModeBrowsing, tuitest.KeyPress('c'), machine.Do(machine.ActionToggle), true},
		{"browse open", machine.ModeBrowsing, tuitest.KeyEnter(), machine.Do(machine.ActionOpen), true},
		{"browse quit q", machine.ModeBrowsing, tuitest.KeyPress('q'), machine.Do(machine.ActionQuit), true},
		{"browse quit esc", machine.ModeBrowsing, tuitest.KeyEsc(), machine.Do(machine.ActionQuit), true},
		{"browse quit ctrl+c", machine.ModeBrowsing, tuitest.Key(tea.KeyCtrlC), machine.Do(machine.ActionQuit), true},
		{"browse unbound", machine.ModeBrowsing, tuitest.KeyPress('x'), machine.Event{}, false},

		{"form types q", machine.ModeAdding, tuitest.KeyPress('q'), machine.Type("q"), true},
		{"form types space", machine.ModeAdding, tuitest.KeyPress(' '), machine.Type(" "), true},
		{"form paste", machine.ModeEditing, tuitest.KeyPressString("oat milk"), machine.Type("oat milk"), true},
		{"form confirm", machine.ModeAdding, tuitest.KeyEnter(), machine.Do(machine.ActionConfirm), true},
		{"form cancel", machine.ModeEditing, tuitest.KeyEsc(), machine.Do(machine.ActionCancel), true},
		{"form tab", machine.ModeAdding, tuitest.KeyTab(), machine.Do(machine.ActionFocus), true},
		{"form shift+tab", machine.ModeAdding, tuitest.Key(tea.KeyShiftTab), machine.Do(machine.ActionFocus), true},
		{"form backspace", machine.ModeAdding, tuitest.KeyBackspace(), machine.Do(machine.ActionBackspace), true},
		{"form ignores ctrl+c", machine.ModeAdding, tuitest.Key(tea.KeyCtrlC), machine.Event{}, false},
		{"form ignores arrows", machine.ModeEditing, tuitest.KeyDown(), machine.Event{}, false},

		{"delete yes", machine.ModeConfirmingDelete, tuitest.KeyPress('y'), machine.Do(machine.ActionYes), true},
		{"delete no", machine.ModeConfirmingDelete, tuitest.KeyPress('n'), machine.Do(machine.ActionNo), true},
		{"delete esc", machine.ModeConfirmingDelete, tuitest.KeyEsc(), machine.Do(machine.ActionNo), true},
		{"delete ignores q", machine.ModeConfirmingDelete, tuitest.KeyPress('q'), machine.Event{}, false},

		{"view esc", machine.ModeViewing, tuitest.KeyEsc(), machine.Do(machine.ActionCancel), true},
		{"view ignores q", machine.ModeViewing, tuitest.KeyPress('q'), machine.Event{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.Resolve(tt.mode, tt.msg)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyMap_CustomBindings(t *testing.T) {
	keys := config.DefaultConfig().Keys
	keys[config.ActionToggle] = []string{"space", "x"}
	keys[config.ActionQuit] = []string{"ctrl+q"}

	km := NewKeyMap(keys)

	ev, ok := km.Resolve(machine.ModeBrowsing, tuitest.KeyPress(' '))
	assert.True(t, ok)
	assert.Equal(t, machine.ActionToggle, ev.Action)

	ev, ok = km.Resolve(machine.ModeBrowsing, tuitest.KeyPress('x'))
	assert.True(t, ok)
	assert.Equal(t, machine.ActionToggle, ev.Action)

	_, ok = km.Resolve(machine.ModeBrowsing, tuitest.KeyPress('q'))
	assert.False(t, ok, "q is no longer bound")
}

func TestKeyMap_Help(t *testing.T) {
	km := NewKeyMap(config.DefaultConfig().Keys)

	for _, mode := range machine.Modes {
		assert.NotEmpty(t, km.Help(mode).ShortHelp(), mode.String())
	}
	assert.Len(t, km.Help(machine.ModeBrowsing).ShortHelp(), 8)
}
