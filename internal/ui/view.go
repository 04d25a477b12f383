package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dori/wille/internal/model"
	"github.com/dori/wille/internal/store"
	"github.com/dori/wille/internal/ui/theme"
)

const barWidth = 20

// View renders the UI
func (m RootModel) View() string {
	styles := theme.Current.Styles

	sections := []string{m.renderHeader(), ""}

	if dialog := m.renderDialog(); dialog != "" {
		sections = append(sections, dialog)
	} else {
		sections = append(sections, m.renderRows())
	}

	sections = append(sections, "")
	if m.statusMsg != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Current.Theme.Info).Render(m.statusMsg))
	}
	if m.editing {
		sections = append(sections, styles.HelpDesc.Render("enter/esc finish editing"))
	} else {
		h := m.help
		h.Styles.ShortKey = styles.HelpKey
		h.Styles.ShortDesc = styles.HelpDesc
		h.Styles.ShortSeparator = styles.HelpSeparator
		h.Styles.FullKey = styles.HelpKey
		h.Styles.FullDesc = styles.HelpDesc
		h.Styles.FullSeparator = styles.HelpSeparator
		sections = append(sections, h.View(m.keys))
	}

	return strings.Join(sections, "\n")
}

// renderHeader renders the title, filter and progress line
func (m RootModel) renderHeader() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme
	p := m.ctl.Progress()

	title := styles.Header.Render("Wille does WHAT?")
	filter := styles.Muted.Render(fmt.Sprintf("[%s]", m.ctl.Filter().Label()))
	mood := lipgloss.NewStyle().Foreground(t.MoodColor(p.Mood)).
		Render(fmt.Sprintf("%s %s", p.Mood.Emoji(), ProgressBar(p, barWidth)))

	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", filter, "  ", mood)
}

// ProgressBar draws a fixed-width bar followed by the percentage
func ProgressBar(p model.Progress, width int) string {
	if width < 5 {
		width = 5
	}
	filled := p.Percent * width / 100
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %3d%%", bar, p.Percent)
}

// renderRows renders subjects with their visible todos
func (m RootModel) renderRows() string {
	styles := theme.Current.Styles
	rows := m.rows()
	if len(rows) == 0 {
		return styles.Muted.Render("  No groups yet. Press n to add one.")
	}

	lines := make([]string, 0, len(rows))
	for i, r := range rows {
		focused := i == m.cursor
		editing := m.editing && r == m.editRow

		switch r.kind {
		case rowSubject:
			s, _ := m.ctl.Subject(r.id)
			if editing {
				lines = append(lines, styles.Input.Render(m.input.View()))
				continue
			}
			style := styles.Subject
			if focused {
				style = styles.SubjectFocused
			}
			lines = append(lines, style.Render("▸ "+displayTitle(s.Title)))

		case rowTodo:
			t, _ := m.ctl.Todo(r.id)
			if editing {
				lines = append(lines, styles.Input.MarginLeft(3).Render(m.input.View()))
				continue
			}
			lines = append(lines, m.renderTodo(t, focused))
		}
	}
	return strings.Join(lines, "\n")
}

func (m RootModel) renderTodo(t model.Todo, focused bool) string {
	styles := theme.Current.Styles

	box := "[ ]"
	style := styles.Todo
	if t.Done {
		box = "[x]"
		style = styles.TodoDone
	}
	if focused {
		style = styles.TodoFocused
	}

	line := style.Render(fmt.Sprintf("%s %s", box, displayTitle(t.Title)))
	if !focused {
		return line
	}

	// Move hints only appear where a move is possible
	var hints []string
	if m.ctl.CanMove(model.DirectionUp, t.ID) {
		hints = append(hints, "K ↑")
	}
	if m.ctl.CanMove(model.DirectionDown, t.ID) {
		hints = append(hints, "J ↓")
	}
	if len(hints) == 0 {
		return line
	}
	return line + " " + styles.Hint.Render(strings.Join(hints, " "))
}

// renderDialog renders the pending confirmation, if any
func (m RootModel) renderDialog() string {
	p := m.ctl.Pending()
	var body string
	switch p.Kind {
	case store.PendingRemoveSubject:
		s, _ := m.ctl.Subject(p.SubjectID)
		n := 0
		for _, t := range m.ctl.Todos() {
			if t.SubjectID == p.SubjectID {
				n++
			}
		}
		body = fmt.Sprintf("Remove group %q and its %d plan(s)?", displayTitle(s.Title), n)
	case store.PendingReset:
		body = "Remove every group and plan?"
	default:
		return ""
	}

	styles := theme.Current.Styles
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.Header.Render("알림"),
		"",
		body,
		"",
		styles.HelpKey.Render("y")+styles.HelpDesc.Render(" 확인  ")+
			styles.HelpKey.Render("n")+styles.HelpDesc.Render(" 취소"),
	)
	return styles.Dialog.Render(content)
}

func displayTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
