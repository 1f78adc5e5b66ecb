package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/tuidolist/internal/core/machine"
	"github.com/colonyops/tuidolist/internal/core/styles"
	"github.com/colonyops/tuidolist/internal/core/todo"
)

const (
	appTitle      = "tuidolist"
	emptyMessage  = "all done :)"
	modalMaxWidth = 60
	modalMinWidth = 20
	chromeHeight  = 4 // title, blank line, blank line, help
)

// View implements tea.Model.
func (m Model) View() string {
	s := m.machine.State()

	var body string
	switch s.Mode {
	case machine.ModeBrowsing:
		body = m.listView(s)
	case machine.ModeAdding, machine.ModeEditing:
		body = m.centered(m.formView(s))
	case machine.ModeConfirmingDelete:
		body = m.centered(m.deleteView(s))
	case machine.ModeViewing:
		body = m.detailView(s)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, "", m.help.View(m.keys.Help(s.Mode)))
}

func (m Model) listView(s machine.State) string {
	done, pending := s.Items.Counts()
	header := styles.TitleStyle.Render(appTitle) + "  " +
		styles.TextMutedStyle.Render(fmt.Sprintf("%d pending · %d done", pending, done))

	if len(s.Items) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, "", styles.EmptyStyle.Render(emptyMessage))
	}

	start, end := visibleRange(len(s.Items), s.Selected, m.height-chromeHeight)

	rows := make([]string, 0, end-start+2)
	rows = append(rows, header, "")
	for i := start; i < end; i++ {
		rows = append(rows, m.itemRow(s.Items[i], i == s.Selected))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) itemRow(item todo.Item, selected bool) string {
	marker := "  "
	if selected {
		marker = styles.ItemSelectedStyle.Render(styles.IconCursor) + " "
	}

	icon := styles.IconPending
	if item.Done {
		icon = styles.IconDone
	}

	name := item.Name
	if m.width > 0 {
		name = ansi.Truncate(name, max(m.width-6, 1), "…")
	}

	style := styles.ItemStyle
	switch {
	case selected && item.Done:
		style = styles.ItemSelectedStyle.Strikethrough(true)
	case selected:
		style = styles.ItemSelectedStyle
	case item.Done:
		style = styles.ItemDoneStyle
	}

	return marker + icon + " " + style.Render(name)
}

// visibleRange returns the window of rows to draw so that selected stays on
// screen. A non-positive height draws everything.
func visibleRange(total, selected, height int) (int, int) {
	if height <= 0 || total <= height {
		return 0, total
	}

	start := 0
	if selected >= height {
		start = selected - height + 1
	}
	return start, min(start+height, total)
}

func (m Model) formView(s machine.State) string {
	title := "New item"
	if s.Mode == machine.ModeEditing {
		title = "Edit item"
	}

	width := m.modalWidth()
	fieldWidth := max(width-8, 1) // modal border + padding, field border + padding

	name := m.formField("Name", s.Draft.Name, s.Draft.Focus == machine.FocusName, fieldWidth)
	desc := m.formField("Description", s.Draft.Description, s.Draft.Focus == machine.FocusDescription, fieldWidth)

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render(title),
		"",
		name,
		"",
		desc,
	)

	return styles.ModalStyle.Width(width).Render(content)
}

func (m Model) formField(label, value string, focused bool, width int) string {
	labelStyle, fieldStyle := styles.FormTitleBlurredStyle, styles.FormFieldStyle
	if focused {
		labelStyle, fieldStyle = styles.FormTitleStyle, styles.FormFieldFocusedStyle
		value += styles.IconCaret
	}

	return fieldStyle.Width(width).Render(
		lipgloss.JoinVertical(lipgloss.Left, labelStyle.Render(label), value),
	)
}

func (m Model) deleteView(s machine.State) string {
	name := "this item"
	if item, ok := s.SelectedItem(); ok {
		name = fmt.Sprintf("%q", item.Name)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render("Delete item?"),
		"",
		"Remove "+name+" from the list.",
	)

	return styles.ModalStyle.Width(m.modalWidth()).Render(content)
}

func (m Model) detailView(s machine.State) string {
	item, ok := s.SelectedItem()
	if !ok {
		return styles.EmptyStyle.Render("nothing selected")
	}

	status := styles.TextMutedStyle.Render(styles.IconPending + " pending")
	if item.Done {
		status = styles.SuccessStyle.Render(styles.IconDone + " done")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render(item.Name),
		status,
		"",
		m.description(item.Description),
	)
}

func (m Model) description(text string) string {
	if text == "" {
		return styles.EmptyStyle.Render("no description")
	}

	if m.markdown != nil {
		out, err := m.markdown.Render(text, m.width)
		if err == nil {
			return out
		}
		m.log.Warn().Err(err).Msg("markdown render failed, showing raw text")
	}

	if m.width > 0 {
		return lipgloss.NewStyle().Width(m.width).Render(text)
	}
	return text
}

func (m Model) modalWidth() int {
	if m.width <= 0 {
		return modalMaxWidth
	}
	return min(modalMaxWidth, max(m.width-4, modalMinWidth))
}

// centered places a modal in the middle of the screen above the help line.
func (m Model) centered(modal string) string {
	if m.width <= 0 || m.height <= chromeHeight {
		return modal
	}
	return lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, modal)
}
