// Package machine implements the interaction state machine behind the todo
// list: one active Mode, the item collection, the highlighted position and
// the add/edit draft. It has no terminal or file dependency; every confirmed
// mutation is handed to a Saver before Handle returns.
package machine

import (
	"context"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/colonyops/tuidolist/internal/core/logging"
	"github.com/colonyops/tuidolist/internal/core/todo"
)

// Saver persists the full collection.
type Saver interface {
	Save(ctx context.Context, items todo.List) error
}

// Draft is the unsaved text of the add/edit form.
type Draft struct {
	Name        string
	Description string
	Focus       Focus
}

// Field returns the text of the focused field.
func (d Draft) Field() string {
	if d.Focus == FocusDescription {
		return d.Description
	}
	return d.Name
}

func (d *Draft) field() *string {
	if d.Focus == FocusDescription {
		return &d.Description
	}
	return &d.Name
}

// State is a snapshot of everything the renderer needs.
type State struct {
	Mode     Mode
	Items    todo.List
	Selected int // -1 only when Items is empty
	Draft    Draft
}

// SelectedItem returns the highlighted item.
func (s State) SelectedItem() (todo.Item, bool) {
	if !s.Items.Valid(s.Selected) {
		return todo.Item{}, false
	}
	return s.Items[s.Selected], true
}

// Result describes the side effects of handling one event.
type Result struct {
	Quit      bool // quit accepted; the event loop should stop
	Persisted bool // the collection was saved
}

// Machine owns the interaction state. It is not safe for concurrent use; the
// event loop is its only caller.
type Machine struct {
	state State
	saver Saver
	log   zerolog.Logger
}

// New creates a machine in browsing mode over items. The first item is
// highlighted when there is one.
func New(items todo.List, saver Saver) *Machine {
	items = items.Clone()
	return &Machine{
		state: State{
			Mode:     ModeBrowsing,
			Items:    items,
			Selected: items.Clamp(0),
		},
		saver: saver,
		log:   logging.Component("machine"),
	}
}

// State returns a copy of the current state.
func (m *Machine) State() State {
	s := m.state
	s.Items = s.Items.Clone()
	return s
}

// Mode returns the active mode.
func (m *Machine) Mode() Mode {
	return m.state.Mode
}

// Handle applies one event. A non-nil error means a confirmed mutation could
// not be saved; the in-memory change has still been applied.
func (m *Machine) Handle(ctx context.Context, ev Event) (Result, error) {
	from := m.state.Mode

	var (
		res Result
		err error
	)

	switch from {
	case ModeBrowsing:
		res, err = m.browse(ctx, ev)
	case ModeAdding, ModeEditing:
		res, err = m.form(ctx, ev)
	case ModeConfirmingDelete:
		res, err = m.confirmDelete(ctx, ev)
	case ModeViewing:
		m.view(ev)
	}

	if to := m.state.Mode; to != from {
		m.log.Debug().
			Stringer("from", from).
			Stringer("to", to).
			Stringer("action", ev.Action).
			Msg("mode changed")
	}

	return res, err
}

func (m *Machine) browse(ctx context.Context, ev Event) (Result, error) {
	s := &m.state
	hasSelection := s.Items.Valid(s.Selected)

	switch ev.Action {
	case ActionUp:
		if hasSelection {
			s.Selected = s.Items.Clamp(s.Selected - 1)
		}
	case ActionDown:
		if hasSelection {
			s.Selected = s.Items.Clamp(s.Selected + 1)
		}
	case ActionAdd:
		s.Draft = Draft{}
		s.Mode = ModeAdding
	case ActionEdit:
		if hasSelection {
			item := s.Items[s.Selected]
			s.Draft = Draft{Name: item.Name, Description: item.Description, Focus: FocusName}
			s.Mode = ModeEditing
		}
	case ActionDelete:
		if hasSelection {
			s.Mode = ModeConfirmingDelete
		}
	case ActionToggle:
		if hasSelection {
			s.Items.Toggle(s.Selected)
			return m.persist(ctx)
		}
	case ActionOpen:
		if hasSelection {
			s.Mode = ModeViewing
		}
	case ActionQuit:
		return Result{Quit: true}, nil
	}

	return Result{}, nil
}

func (m *Machine) form(ctx context.Context, ev Event) (Result, error) {
	s := &m.state

	switch ev.Action {
	case ActionInput:
		*s.Draft.field() += printable(ev.Text)
	case ActionBackspace:
		field := s.Draft.field()
		if _, size := utf8.DecodeLastRuneInString(*field); size > 0 {
			*field = (*field)[:len(*field)-size]
		}
	case ActionFocus:
		if s.Draft.Focus == FocusName {
			s.Draft.Focus = FocusDescription
		} else {
			s.Draft.Focus = FocusName
		}
	case ActionCancel:
		m.leaveForm()
	case ActionConfirm:
		if todo.ValidateName(s.Draft.Name) != nil {
			return Result{}, nil
		}
		return m.submit(ctx)
	}

	return Result{}, nil
}

func (m *Machine) submit(ctx context.Context) (Result, error) {
	s := &m.state
	draft := s.Draft
	mode := s.Mode
	m.leaveForm()

	switch mode {
	case ModeAdding:
		s.Items.Append(todo.Item{Name: draft.Name, Description: draft.Description})
		s.Selected = s.Items.Clamp(s.Selected)
	case ModeEditing:
		if !s.Items.Replace(s.Selected, draft.Name, draft.Description) {
			return Result{}, nil
		}
	}

	return m.persist(ctx)
}

func (m *Machine) confirmDelete(ctx context.Context, ev Event) (Result, error) {
	s := &m.state

	switch ev.Action {
	case ActionYes:
		s.Mode = ModeBrowsing
		if s.Items.Remove(s.Selected) {
			s.Selected = s.Items.Clamp(s.Selected)
			return m.persist(ctx)
		}
		s.Selected = s.Items.Clamp(s.Selected)
	case ActionNo:
		s.Mode = ModeBrowsing
	}

	return Result{}, nil
}

func (m *Machine) view(ev Event) {
	if ev.Action == ActionCancel {
		m.state.Mode = ModeBrowsing
	}
}

// leaveForm returns to browsing with an empty draft focused on the name.
func (m *Machine) leaveForm() {
	m.state.Draft = Draft{}
	m.state.Mode = ModeBrowsing
}

func (m *Machine) persist(ctx context.Context) (Result, error) {
	if err := m.saver.Save(ctx, m.state.Items.Clone()); err != nil {
		return Result{}, fmt.Errorf("persist items: %w", err)
	}
	return Result{Persisted: true}, nil
}

// printable drops control characters from typed or pasted text.
func printable(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, text)
}
