package styles

// Item markers shown in the list and detail views.
var (
	IconDone    = "✓"
	IconPending = "○"
	IconCursor  = "›"
	IconCaret   = "▏"
)
