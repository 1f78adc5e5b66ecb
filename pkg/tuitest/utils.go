// Package tuitest provides testing utilities for TUI components.
package tuitest

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape codes and trailing whitespace so view output
// can be compared as plain text.
func StripANSI(s string) string {
	s = ansi.Strip(s)
	lines := strings.Split(s, "\n")
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		result = append(result, strings.TrimRight(line, " "))
	}
	return strings.TrimRight(strings.Join(result, "\n"), "\n")
}

// KeyPress creates a key press message for a single rune.
func KeyPress(key rune) tea.KeyMsg {
	if key == ' ' {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{key}}
}

// KeyPressString creates a single key message carrying all of s, the way a
// paste arrives.
func KeyPressString(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Paste: true}
}

// Type returns one key press per rune of s.
func Type(s string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, KeyPress(r))
	}
	return msgs
}

// Key creates a key message for a special key such as tea.KeyEnter.
func Key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// KeyDown creates a down arrow key press message.
func KeyDown() tea.KeyMsg { return Key(tea.KeyDown) }

// KeyUp creates an up arrow key press message.
func KeyUp() tea.KeyMsg { return Key(tea.KeyUp) }

// KeyEnter creates an enter key press message.
func KeyEnter() tea.KeyMsg { return Key(tea.KeyEnter) }

// KeyEsc creates an escape key press message.
func KeyEsc() tea.KeyMsg { return Key(tea.KeyEsc) }

// KeyTab creates a tab key press message.
func KeyTab() tea.KeyMsg { return Key(tea.KeyTab) }

// KeyBackspace creates a backspace key press message.
func KeyBackspace() tea.KeyMsg { return Key(tea.KeyBackspace) }

// WindowSize creates a window size message.
func WindowSize(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}
