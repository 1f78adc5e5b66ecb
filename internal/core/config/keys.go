package config

// Logical actions that can be bound to keys under the `keys` config section.
const (
	ActionUp      = "up"
	ActionDown    = "down"
	ActionAdd     = "add"
	ActionEdit    = "edit"
	ActionDelete  = "delete"
	ActionToggle  = "toggle"
	ActionOpen    = "open"
	ActionQuit    = "quit"
	ActionConfirm = "confirm"
	ActionCancel  = "cancel"
	ActionFocus   = "focus"
	ActionYes     = "yes"
	ActionNo      = "no"
)

// KeyGroup is a set of actions that are active at the same time. A key may
// appear at most once within a group.
type KeyGroup struct {
	Name    string
	Actions []string
}

// KeyGroups lists the action groups per interaction mode.
var KeyGroups = []KeyGroup{
	{Name: "browse", Actions: []string{ActionUp, ActionDown, ActionAdd, ActionEdit, ActionDelete, ActionToggle, ActionOpen, ActionQuit}},
	{Name: "form", Actions: []string{ActionConfirm, ActionCancel, ActionFocus}},
	{Name: "delete", Actions: []string{ActionYes, ActionNo}},
	{Name: "view", Actions: []string{ActionCancel}},
}

// formActions are checked against printable keys, since text typed into the
// form would otherwise be swallowed.
var formActions = []string{ActionConfirm, ActionCancel, ActionFocus}

// Keys maps an action name to the key strings that trigger it. Key strings use
// the terminal key names, e.g. "enter", "ctrl+c", "tab", "j".
type Keys map[string][]string

func defaultKeys() Keys {
	return Keys{
		ActionUp:      {"up", "k"},
		ActionDown:    {"down", "j"},
		ActionAdd:     {"a"},
		ActionEdit:    {"e"},
		ActionDelete:  {"d"},
		ActionToggle:  {"c"},
		ActionOpen:    {"enter"},
		ActionQuit:    {"esc", "q", "ctrl+c"},
		ActionConfirm: {"enter"},
		ActionCancel:  {"esc"},
		ActionFocus:   {"tab", "shift+tab"},
		ActionYes:     {"y"},
		ActionNo:      {"n", "esc"},
	}
}

// ActionNames returns every bindable action.
func ActionNames() []string {
	return []string{
		ActionUp, ActionDown, ActionAdd, ActionEdit, ActionDelete, ActionToggle, ActionOpen,
		ActionQuit, ActionConfirm, ActionCancel, ActionFocus, ActionYes, ActionNo,
	}
}

func isValidAction(action string) bool {
	for _, name := range ActionNames() {
		if name == action {
			return true
		}
	}
	return false
}

// mergeKeys overlays user bindings onto the defaults. A user entry replaces
// the whole binding list for that action.
func mergeKeys(defaults, user Keys) Keys {
	result := make(Keys, len(defaults)+len(user))
	for action, keys := range defaults {
		result[action] = keys
	}
	for action, keys := range user {
		result[action] = keys
	}
	return result
}
