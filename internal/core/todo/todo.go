// Package todo defines the todo item domain model and the ordered collection
// that holds it.
package todo

import (
	"errors"
	"strings"
)

// ErrNameRequired is returned when an item would be committed without a name.
var ErrNameRequired = errors.New("name is required")

// Item is a single todo entry. Its identity is its position in a List.
type Item struct {
	Done        bool   `json:"is_done"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// New builds a pending item. Returns ErrNameRequired if name is empty.
func New(name, description string) (Item, error) {
	if err := ValidateName(name); err != nil {
		return Item{}, err
	}
	return Item{Name: name, Description: description}, nil
}

// ValidateName reports whether name can label a committed item.
func ValidateName(name string) error {
	if name == "" {
		return ErrNameRequired
	}
	return nil
}

// ValidateNameInput is ValidateName for interactive input, where a name made
// only of whitespace is also rejected.
func ValidateNameInput(name string) error {
	return ValidateName(strings.TrimSpace(name))
}

// List is the ordered item collection. Insertion order is display order.
type List []Item

// Clone returns a copy that shares no backing array with l.
func (l List) Clone() List {
	if l == nil {
		return List{}
	}
	out := make(List, len(l))
	copy(out, l)
	return out
}

// Valid reports whether idx addresses an item.
func (l List) Valid(idx int) bool {
	return idx >= 0 && idx < len(l)
}

// Append adds item at the end and returns its index.
func (l *List) Append(item Item) int {
	*l = append(*l, item)
	return len(*l) - 1
}

// Toggle flips the completion flag of the item at idx.
func (l List) Toggle(idx int) bool {
	if !l.Valid(idx) {
		return false
	}
	l[idx].Done = !l[idx].Done
	return true
}

// Replace overwrites the name and description of the item at idx, keeping
// its completion flag.
func (l List) Replace(idx int, name, description string) bool {
	if !l.Valid(idx) {
		return false
	}
	l[idx].Name = name
	l[idx].Description = description
	return true
}

// Remove deletes the item at idx, shifting later items down by one.
func (l *List) Remove(idx int) bool {
	if !l.Valid(idx) {
		return false
	}
	*l = append((*l)[:idx], (*l)[idx+1:]...)
	return true
}

// Clamp returns the nearest valid selection for sel, or -1 when l is empty.
func (l List) Clamp(sel int) int {
	switch {
	case len(l) == 0:
		return -1
	case sel < 0:
		return 0
	case sel >= len(l):
		return len(l) - 1
	default:
		return sel
	}
}

// Counts returns the number of completed and pending items.
func (l List) Counts() (done, pending int) {
	for _, item := range l {
		if item.Done {
			done++
		} else {
			pending++
		}
	}
	return done, pending
}

// WithoutDone returns the items that are not completed, preserving order.
func (l List) WithoutDone() List {
	out := make(List, 0, len(l))
	for _, item := range l {
		if !item.Done {
			out = append(out, item)
		}
	}
	return out
}
