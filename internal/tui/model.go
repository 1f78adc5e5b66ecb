// Package tui runs the interactive todo list on top of the interaction
// machine: it turns key presses into machine events and renders snapshots.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/colonyops/tuidolist/internal/core/config"
	"github.com/colonyops/tuidolist/internal/core/logging"
	"github.com/colonyops/tuidolist/internal/core/machine"
	"github.com/colonyops/tuidolist/internal/core/styles"
	"github.com/colonyops/tuidolist/internal/core/todo"
)

// Options configures a Model.
type Options struct {
	Items    todo.List
	Saver    machine.Saver
	Keys     config.Keys
	Markdown bool // render descriptions as markdown in the detail view
}

// Model is the bubbletea model for the todo list.
type Model struct {
	ctx      context.Context
	machine  *machine.Machine
	keys     KeyMap
	help     help.Model
	markdown *markdownRenderer

	width  int
	height int
	err    error

	log zerolog.Logger
}

// New creates a model in browsing mode. Keys falls back to the default
// bindings when empty.
func New(ctx context.Context, opts Options) Model {
	keys := opts.Keys
	if len(keys) == 0 {
		keys = config.DefaultConfig().Keys
	}

	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpDescStyle
	h.Styles.ShortSeparator = styles.HelpDescStyle
	h.Styles.FullKey = styles.HelpKeyStyle
	h.Styles.FullDesc = styles.HelpDescStyle

	var md *markdownRenderer
	if opts.Markdown {
		md = &markdownRenderer{}
	}

	return Model{
		ctx:      ctx,
		machine:  machine.New(opts.Items, opts.Saver),
		keys:     NewKeyMap(keys),
		help:     h,
		markdown: md,
		log:      logging.Component("tui"),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.err != nil {
		return m, nil
	}

	ev, ok := m.keys.Resolve(m.machine.Mode(), msg)
	if !ok {
		return m, nil
	}

	res, err := m.machine.Handle(m.ctx, ev)
	if err != nil {
		m.log.Error().Err(err).Stringer("action", ev.Action).Msg("save failed, stopping")
		m.err = err
		return m, tea.Quit
	}

	if res.Quit {
		return m, tea.Quit
	}

	return m, nil
}

// State returns the machine state being rendered.
func (m Model) State() machine.State {
	return m.machine.State()
}

// Err returns the store failure that ended the program, if any.
func (m Model) Err() error {
	return m.err
}
