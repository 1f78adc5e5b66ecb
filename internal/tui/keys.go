package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/tuidolist/internal/core/config"
	"github.com/colonyops/tuidolist/internal/core/machine"
)

var actionHelp = map[string]string{
	config.ActionUp:      "up",
	config.ActionDown:    "down",
	config.ActionAdd:     "add",
	config.ActionEdit:    "edit",
	config.ActionDelete:  "delete",
	config.ActionToggle:  "done",
	config.ActionOpen:    "view",
	config.ActionQuit:    "quit",
	config.ActionConfirm: "save",
	config.ActionCancel:  "back",
	config.ActionFocus:   "next field",
	config.ActionYes:     "delete",
	config.ActionNo:      "keep",
}

var actionEvents = map[string]machine.Action{
	config.ActionUp:      machine.ActionUp,
	config.ActionDown:    machine.ActionDown,
	config.ActionAdd:     machine.ActionAdd,
	config.ActionEdit:    machine.ActionEdit,
	config.ActionDelete:  machine.ActionDelete,
	config.ActionToggle:  machine.ActionToggle,
	config.ActionOpen:    machine.ActionOpen,
	config.ActionQuit:    machine.ActionQuit,
	config.ActionConfirm: machine.ActionConfirm,
	config.ActionCancel:  machine.ActionCancel,
	config.ActionFocus:   machine.ActionFocus,
	config.ActionYes:     machine.ActionYes,
	config.ActionNo:      machine.ActionNo,
}

type binding struct {
	action machine.Action
	key    key.Binding
}

// KeyMap resolves terminal keys to machine events for each mode.
type KeyMap struct {
	browse []binding
	form   []binding
	delete []binding
	view   []binding
}

// NewKeyMap builds the per-mode bindings from configured keys.
func NewKeyMap(keys config.Keys) KeyMap {
	groups := make(map[string][]binding, len(config.KeyGroups))
	for _, group := range config.KeyGroups {
		bindings := make([]binding, 0, len(group.Actions))
		for _, action := range group.Actions {
			bindings = append(bindings, newBinding(action, keys[action]))
		}
		groups[group.Name] = bindings
	}

	return KeyMap{
		browse: groups["browse"],
		form:   groups["form"],
		delete: groups["delete"],
		view:   groups["view"],
	}
}

func newBinding(action string, keys []string) binding {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, normalizeKey(k))
	}

	helpKey := ""
	if len(keys) > 0 {
		helpKey = keys[0]
	}

	return binding{
		action: actionEvents[action],
		key: key.NewBinding(
			key.WithKeys(names...),
			key.WithHelp(helpKey, actionHelp[action]),
		),
	}
}

// normalizeKey maps config key names onto tea.KeyMsg.String() output.
func normalizeKey(k string) string {
	if k == "space" {
		return " "
	}
	return k
}

func (km KeyMap) bindings(mode machine.Mode) []binding {
	switch mode {
	case machine.ModeBrowsing:
		return km.browse
	case machine.ModeAdding, machine.ModeEditing:
		return km.form
	case machine.ModeConfirmingDelete:
		return km.delete
	case machine.ModeViewing:
		return km.view
	default:
		return nil
	}
}

// Resolve maps a key press to an event for the given mode. In form modes any
// key that is not a form binding edits the focused field.
func (km KeyMap) Resolve(mode machine.Mode, msg tea.KeyMsg) (machine.Event, bool) {
	for _, b := range km.bindings(mode) {
		if key.Matches(msg, b.key) {
			return machine.Do(b.action), true
		}
	}

	if !mode.IsForm() {
		return machine.Event{}, false
	}

	switch msg.Type {
	case tea.KeyBackspace:
		return machine.Do(machine.ActionBackspace), true
	case tea.KeyRunes, tea.KeySpace:
		if msg.Alt || len(msg.Runes) == 0 {
			return machine.Event{}, false
		}
		return machine.Type(string(msg.Runes)), true
	}

	return machine.Event{}, false
}

// Help returns the help key map for a mode.
func (km KeyMap) Help(mode machine.Mode) help.KeyMap {
	bindings := km.bindings(mode)
	keys := make([]key.Binding, 0, len(bindings))
	for _, b := range bindings {
		keys = append(keys, b.key)
	}
	return helpKeys(keys)
}

// helpKeys adapts a binding list to bubbles' help.KeyMap.
type helpKeys []key.Binding

func (h helpKeys) ShortHelp() []key.Binding { return h }

func (h helpKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h} }
