package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/dori/wille/internal/model"
	"github.com/dori/wille/internal/store"
	"github.com/dori/wille/internal/ui/theme"
)

type rowKind int

const (
	rowSubject rowKind = iota
	rowTodo
)

// row is one line of the list: a subject header or one of its todos
type row struct {
	kind rowKind
	id   int64
}

// RootModel renders the controller state and turns keys into commands
type RootModel struct {
	ctl    *store.Controller
	logger *log.Logger
	keys   KeyMap
	help   help.Model
	input  textinput.Model
	width  int
	height int

	cursor      int
	editing     bool
	editRow     row
	helpVisible bool

	statusMsg string
}

// NewRootModel creates the root model over a loaded controller
func NewRootModel(ctl *store.Controller, logger *log.Logger) RootModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	in := textinput.New()
	in.Prompt = "✎ "
	in.CharLimit = 200

	return RootModel{
		ctl:    ctl,
		logger: logger.WithPrefix("ui"),
		keys:   DefaultKeyMap(),
		help:   h,
		input:  in,
	}
}

// Init initializes the model
func (m RootModel) Init() tea.Cmd {
	return nil
}

// rows lists subjects in order, each followed by its visible todos
func (m RootModel) rows() []row {
	var rows []row
	for _, s := range m.ctl.Subjects() {
		rows = append(rows, row{kind: rowSubject, id: s.ID})
		for _, t := range m.ctl.TodosForSubject(s.ID) {
			rows = append(rows, row{kind: rowTodo, id: t.ID})
		}
	}
	return rows
}

// current returns the row under the cursor
func (m RootModel) current() (row, bool) {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return row{}, false
	}
	return rows[m.cursor], true
}

// focus moves the cursor to r if it is visible
func (m *RootModel) focus(r row) {
	for i, candidate := range m.rows() {
		if candidate == r {
			m.cursor = i
			return
		}
	}
}

func (m *RootModel) clampCursor() {
	n := len(m.rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// subjectOf returns the subject a row belongs to
func (m RootModel) subjectOf(r row) (int64, bool) {
	if r.kind == rowSubject {
		return r.id, true
	}
	t, ok := m.ctl.Todo(r.id)
	return t.SubjectID, ok
}

// Update handles messages
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = msg.Width - 10
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		m.statusMsg = ""
		switch {
		case !m.ctl.Pending().Idle():
			return m.updateDialog(msg)
		case m.editing:
			return m.updateEditing(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

// updateDialog only accepts confirm or cancel
func (m RootModel) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.logger.Debug("confirm", "pending", m.ctl.Pending().Kind)
		m.ctl.Confirm()
		m.clampCursor()
	case key.Matches(msg, m.keys.Cancel):
		m.ctl.Cancel()
	}
	return m, nil
}

// updateEditing feeds the text input and writes every change through
func (m RootModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Done) {
		m.editing = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	var title string
	switch m.editRow.kind {
	case rowSubject:
		m.ctl.ChangeSubjectTitle(m.editRow.id, m.input.Value())
		s, _ := m.ctl.Subject(m.editRow.id)
		title = s.Title
	case rowTodo:
		m.ctl.ChangeTodoTitle(m.editRow.id, m.input.Value())
		t, _ := m.ctl.Todo(m.editRow.id)
		title = t.Title
	}
	if title != m.input.Value() {
		m.input.SetValue(title)
		m.input.CursorEnd()
	}
	return m, cmd
}

// updateList handles keys while browsing
func (m RootModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.rows()
	cur, hasCur := m.current()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
		m.help.ShowAll = m.helpVisible

	case key.Matches(msg, m.keys.ThemeCycle):
		m.cycleTheme()

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = len(rows) - 1
		m.clampCursor()

	case key.Matches(msg, m.keys.AddSubject):
		s := m.ctl.AddSubject()
		m.focus(row{kind: rowSubject, id: s.ID})

	case key.Matches(msg, m.keys.Filter):
		m.ctl.SetFilter(m.ctl.Filter().Next())
		m.clampCursor()
		m.statusMsg = "Filter: " + m.ctl.Filter().Label()

	case key.Matches(msg, m.keys.Reset):
		if !m.ctl.RequestReset() {
			m.statusMsg = "Nothing to reset"
		}

	case !hasCur:
		// Everything below acts on the row under the cursor

	case key.Matches(msg, m.keys.AddTodo):
		if subjectID, ok := m.subjectOf(cur); ok {
			if t, ok := m.ctl.AddTodo(subjectID); ok {
				m.focus(row{kind: rowTodo, id: t.ID})
			}
		}

	case key.Matches(msg, m.keys.Edit):
		return m.startEditing(cur)

	case key.Matches(msg, m.keys.Toggle):
		if cur.kind == rowTodo {
			m.ctl.ToggleTodoDone(cur.id)
			m.clampCursor()
		}

	case key.Matches(msg, m.keys.MoveUp):
		m.move(cur, model.DirectionUp)
	case key.Matches(msg, m.keys.MoveDown):
		m.move(cur, model.DirectionDown)

	case key.Matches(msg, m.keys.Delete):
		if cur.kind == rowTodo {
			m.ctl.RemoveTodo(cur.id)
			m.clampCursor()
		} else {
			m.ctl.RequestRemoveSubject(cur.id)
		}
	}

	return m, nil
}

func (m RootModel) startEditing(r row) (tea.Model, tea.Cmd) {
	var value string
	switch r.kind {
	case rowSubject:
		s, _ := m.ctl.Subject(r.id)
		value = s.Title
	case rowTodo:
		t, _ := m.ctl.Todo(r.id)
		if t.Done {
			m.statusMsg = "Finished plans cannot be edited, undo done first"
			return m, nil
		}
		value = t.Title
	}

	m.editing = true
	m.editRow = r
	m.input.SetValue(value)
	m.input.CursorEnd()
	cmd := m.input.Focus()
	return m, cmd
}

func (m *RootModel) move(r row, dir model.Direction) {
	if r.kind != rowTodo || !m.ctl.CanMove(dir, r.id) {
		return
	}
	m.ctl.MoveTodo(dir, r.id)
	m.focus(r)
}

// cycleTheme cycles through available themes
func (m *RootModel) cycleTheme() {
	themes := theme.Available()
	current := theme.Current.Theme.Name

	for i, t := range themes {
		if t.Name == current {
			next := themes[(i+1)%len(themes)]
			theme.SetTheme(next)
			m.statusMsg = fmt.Sprintf("Theme: %s", next.Name)
			return
		}
	}
}
