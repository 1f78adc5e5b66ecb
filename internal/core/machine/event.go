package machine

// Mode is the single active interaction mode.
type Mode int

const (
	ModeBrowsing Mode = iota
	ModeAdding
	ModeEditing
	ModeConfirmingDelete
	ModeViewing
)

// Modes lists every mode in declaration order.
var Modes = []Mode{ModeBrowsing, ModeAdding, ModeEditing, ModeConfirmingDelete, ModeViewing}

func (m Mode) String() string {
	switch m {
	case ModeBrowsing:
		return "browsing"
	case ModeAdding:
		return "adding"
	case ModeEditing:
		return "editing"
	case ModeConfirmingDelete:
		return "confirming-delete"
	case ModeViewing:
		return "viewing"
	default:
		return "unknown"
	}
}

// IsForm reports whether the mode edits the draft buffer.
func (m Mode) IsForm() bool {
	return m == ModeAdding || m == ModeEditing
}

// Focus selects which draft field receives text input.
type Focus int

const (
	FocusName Focus = iota
	FocusDescription
)

func (f Focus) String() string {
	if f == FocusDescription {
		return "description"
	}
	return "name"
}

// Action is a logical input, independent of the concrete key that produced it.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionAdd
	ActionEdit
	ActionDelete
	ActionToggle
	ActionOpen
	ActionQuit
	ActionConfirm
	ActionCancel
	ActionFocus
	ActionYes
	ActionNo
	ActionInput
	ActionBackspace
)

var actionNames = map[Action]string{
	ActionNone:      "none",
	ActionUp:        "up",
	ActionDown:      "down",
	ActionAdd:       "add",
	ActionEdit:      "edit",
	ActionDelete:    "delete",
	ActionToggle:    "toggle",
	ActionOpen:      "open",
	ActionQuit:      "quit",
	ActionConfirm:   "confirm",
	ActionCancel:    "cancel",
	ActionFocus:     "focus",
	ActionYes:       "yes",
	ActionNo:        "no",
	ActionInput:     "input",
	ActionBackspace: "backspace",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Event is one unit of input handed to the machine.
type Event struct {
	Action Action
	Text   string // ActionInput only
}

// Do returns an event for a logical action.
func Do(a Action) Event {
	return Event{Action: a}
}

// Type returns a text input event.
func Type(text string) Event {
	return Event{Action: ActionInput, Text: text}
}
