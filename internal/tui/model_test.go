package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tuidolist/internal/core/machine"
	"github.com/colonyops/tuidolist/internal/core/todo"
	"github.com/colonyops/tuidolist/pkg/tuitest"
)

type fakeSaver struct {
	saves []todo.List
	err   error
}

func (f *fakeSaver) Save(_ context.Context, items todo.List) error {
	f.saves = append(f.saves, items)
	return f.err
}

func newTestModel(items todo.List, saver machine.Saver) Model {
	m := New(context.Background(), Options{Items: items, Saver: saver})
	next, _ := m.Update(tuitest.WindowSize(80, 24))
	return next.(Model)
}

// send feeds messages through Update and returns the final model and the
// command produced by the last message.
func send(m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func sampleItems() todo.List {
	return todo.List{
		{Name: "milk", Description: "2 liters"},
		{Name: "eggs", Done: true},
		{Name: "bread", Description: "**rye**, sliced"},
	}
}

func TestModel_AddItem(t *testing.T) {
	saver := &fakeSaver{}
	m := newTestModel(nil, saver)

	msgs := []tea.Msg{tuitest.KeyPress('a')}
	msgs = append(msgs, tuitest.Type("quit")...)
	msgs = append(msgs, tuitest.KeyTab())
	msgs = append(msgs, tuitest.Type("smoking")...)
	msgs = append(msgs, tuitest.KeyEnter())

	m, cmd := send(m, msgs...)
	assert.Nil(t, cmd)

	s := m.State()
	assert.Equal(t, machine.ModeBrowsing, s.Mode)
	require.Len(t, s.Items, 1)
	assert.Equal(t, todo.Item{Name: "quit", Description: "smoking"}, s.Items[0])
	assert.Equal(t, 0, s.Selected)

	require.Len(t, saver.saves, 1)
	assert.Equal(t, s.Items, saver.saves[0])
}

func TestModel_EmptyNameIsNotSaved(t *testing.T) {
	saver := &fakeSaver{}
	m := newTestModel(nil, saver)

	m, _ = send(m, tuitest.KeyPress('a'), tuitest.KeyEnter())

	assert.Equal(t, machine.ModeAdding, m.State().Mode)
	assert.Empty(t, saver.saves)
}

func TestModel_EditItem(t *testing.T) {
	saver := &fakeSaver{}
	m := newTestModel(sampleItems(), saver)

	m, _ = send(m,
		tuitest.KeyDown(), tuitest.KeyDown(),
		tuitest.KeyPress('e'),
		tuitest.KeyBackspace(), tuitest.KeyBackspace(), tuitest.KeyBackspace(), tuitest.KeyBackspace(), tuitest.KeyBackspace(),
		tuitest.KeyPressString("toast"),
		tuitest.KeyEnter(),
	)

	s := m.State()
	require.Len(t, s.Items, 3)
	assert.Equal(t, "toast", s.Items[2].Name)
	assert.Equal(t, "**rye**, sliced", s.Items[2].Description)
	assert.Equal(t, 2, s.Selected)
	assert.Len(t, saver.saves, 1)
}

func TestModel_ToggleAndDelete(t *testing.T) {
	saver := &fakeSaver{}
	m := newTestModel(sampleItems(), saver)

	m, _ = send(m, tuitest.KeyPress('c'))
	assert.True(t, m.State().Items[0].Done)

	m, _ = send(m, tuitest.KeyPress('d'))
	assert.Equal(t, machine.ModeConfirmingDelete, m.State().Mode)

	m, _ = send(m, tuitest.KeyPress('y'))
	s := m.State()
	assert.Equal(t, machine.ModeBrowsing, s.Mode)
	assert.Equal(t, []string{"eggs", "bread"}, names(s.Items))
	assert.Len(t, saver.saves, 2)
}

func TestModel_FormKeysDoNotQuit(t *testing.T) {
	m := newTestModel(nil, &fakeSaver{})

	m, cmd := send(m, tuitest.KeyPress('a'), tuitest.KeyPress('q'), tuitest.Key(tea.KeyCtrlC))
	assert.False(t, isQuit(cmd))
	assert.Equal(t, "q", m.State().Draft.Name)
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(sampleItems(), &fakeSaver{})

	_, cmd := send(m, tuitest.KeyPress('q'))
	assert.True(t, isQuit(cmd))
}

func TestModel_SaveFailureStops(t *testing.T) {
	saver := &fakeSaver{err: errors.New("disk full")}
	m := newTestModel(sampleItems(), saver)

	m, cmd := send(m, tuitest.KeyPress('c'))
	assert.True(t, isQuit(cmd))
	require.Error(t, m.Err())
	assert.ErrorContains(t, m.Err(), "disk full")

	// Further input is ignored once the store has failed.
	m, cmd = send(m, tuitest.KeyPress('c'))
	assert.Nil(t, cmd)
	assert.Len(t, saver.saves, 1)
}

func TestModel_ViewEachMode(t *testing.T) {
	m := newTestModel(sampleItems(), &fakeSaver{})

	out := tuitest.StripANSI(m.View())
	assert.Contains(t, out, "tuidolist")
	assert.Contains(t, out, "2 pending · 1 done")
	assert.Contains(t, out, "milk")
	assert.Contains(t, out, "eggs")

	m, _ = send(m, tuitest.KeyPress('a'), tuitest.KeyPress('h'), tuitest.KeyPress('i'))
	out = tuitest.StripANSI(m.View())
	assert.Contains(t, out, "New item")
	assert.Contains(t, out, "hi")
	assert.Contains(t, out, "Description")

	m, _ = send(m, tuitest.KeyEsc(), tuitest.KeyPress('e'))
	out = tuitest.StripANSI(m.View())
	assert.Contains(t, out, "Edit item")
	assert.Contains(t, out, "milk")

	m, _ = send(m, tuitest.KeyEsc(), tuitest.KeyPress('d'))
	out = tuitest.StripANSI(m.View())
	assert.Contains(t, out, "Delete item?")
	assert.Contains(t, out, `"milk"`)

	m, _ = send(m, tuitest.KeyPress('n'), tuitest.KeyEnter())
	out = tuitest.StripANSI(m.View())
	assert.Equal(t, machine.ModeViewing, m.State().Mode)
	assert.Contains(t, out, "milk")
	assert.Contains(t, out, "2 liters")
}

func TestModel_ViewEmptyList(t *testing.T) {
	m := newTestModel(nil, &fakeSaver{})

	out := tuitest.StripANSI(m.View())
	assert.Contains(t, out, "all done :)")
	assert.Contains(t, out, "0 pending · 0 done")
}

func TestModel_ViewMarkdownDescription(t *testing.T) {
	m := New(context.Background(), Options{Items: sampleItems(), Saver: &fakeSaver{}, Markdown: true})
	m, _ = send(m, tuitest.WindowSize(60, 20), tuitest.KeyDown(), tuitest.KeyDown(), tuitest.KeyEnter())

	out := tuitest.StripANSI(m.View())
	assert.Contains(t, out, "rye")
	assert.NotContains(t, out, "**rye**")
}

func TestModel_ViewScrollsToSelection(t *testing.T) {
	items := make(todo.List, 30)
	for i := range items {
		items[i] = todo.Item{Name: fmt.Sprintf("item-%02d", i)}
	}

	m := New(context.Background(), Options{Items: items, Saver: &fakeSaver{}})
	msgs := []tea.Msg{tuitest.WindowSize(40, 10)}
	for range 20 {
		msgs = append(msgs, tuitest.KeyDown())
	}
	m, _ = send(m, msgs...)

	out := tuitest.StripANSI(m.View())
	assert.Contains(t, out, "item-20")
	assert.NotContains(t, out, "item-00")
}

func TestModel_ViewNeverPanics(t *testing.T) {
	sizes := []tea.WindowSizeMsg{{}, tuitest.WindowSize(1, 1), tuitest.WindowSize(10, 3), tuitest.WindowSize(200, 60)}
	lists := map[string]todo.List{"empty": nil, "items": sampleItems()}

	// Keys that reach each mode from browsing; with an empty list only
	// adding is reachable and the rest stay in browsing.
	paths := map[string][]tea.Msg{
		"browsing":          nil,
		"adding":            {tuitest.KeyPress('a')},
		"editing":           {tuitest.KeyPress('e')},
		"confirming-delete": {tuitest.KeyPress('d')},
		"viewing":           {tuitest.KeyEnter()},
	}

	for listName, items := range lists {
		for pathName, path := range paths {
			for _, size := range sizes {
				name := fmt.Sprintf("%s/%s/%dx%d", listName, pathName, size.Width, size.Height)
				t.Run(name, func(t *testing.T) {
					m := New(context.Background(), Options{Items: items, Saver: &fakeSaver{}, Markdown: true})
					m, _ = send(m, append([]tea.Msg{size}, path...)...)
					assert.NotPanics(t, func() { _ = m.View() })
				})
			}
		}
	}
}

func names(items todo.List) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Name)
	}
	return out
}
