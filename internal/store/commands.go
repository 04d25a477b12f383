package store

import (
	"slices"

	"github.com/dori/wille/internal/model"
)

// AddSubject appends a subject with the default title
func (c *Controller) AddSubject() model.Subject {
	s := model.Subject{ID: c.ids.Next(), Title: model.DefaultSubjectTitle}
	c.subjects = append(c.subjects, s)
	c.saveSubjects()
	c.emit("add_subject", s.ID)
	return s
}

// RemoveSubjectAndTodos removes a subject together with all of its todos
func (c *Controller) RemoveSubjectAndTodos(subjectID int64) {
	idx := model.IndexOfSubject(c.subjects, subjectID)
	if idx < 0 {
		return
	}

	c.subjects = slices.Delete(c.subjects, idx, idx+1)
	c.todos = slices.DeleteFunc(c.todos, func(t model.Todo) bool {
		return t.SubjectID == subjectID
	})
	if c.pending.Kind == PendingRemoveSubject && c.pending.SubjectID == subjectID {
		c.pending = Pending{}
	}
	c.saveAll()
	c.emit("remove_subject", subjectID)
}

// AddTodo appends a todo with the default title to an existing subject
func (c *Controller) AddTodo(subjectID int64) (model.Todo, bool) {
	if model.IndexOfSubject(c.subjects, subjectID) < 0 {
		return model.Todo{}, false
	}

	t := model.Todo{
		ID:        c.ids.Next(),
		Title:     model.DefaultTodoTitle,
		SubjectID: subjectID,
	}
	c.todos = append(c.todos, t)
	c.saveTodos()
	c.emit("add_todo", t.ID)
	return t, true
}

// RemoveTodo removes a single todo
func (c *Controller) RemoveTodo(todoID int64) {
	i := c.todoIndex(todoID)
	if i < 0 {
		return
	}
	c.todos = slices.Delete(c.todos, i, i+1)
	c.saveTodos()
	c.emit("remove_todo", todoID)
}

// ChangeTodoTitle normalizes raw and stores it as the todo's title
func (c *Controller) ChangeTodoTitle(todoID int64, raw string) {
	c.updateTodo(todoID, "change_todo_title", func(t *model.Todo) {
		t.Title = model.NormalizeTitle(raw)
	})
}

// ChangeSubjectTitle normalizes raw and stores it as the subject's title
func (c *Controller) ChangeSubjectTitle(subjectID int64, raw string) {
	idx := model.IndexOfSubject(c.subjects, subjectID)
	if idx < 0 {
		return
	}
	c.subjects[idx].Title = model.NormalizeTitle(raw)
	c.saveSubjects()
	c.emit("change_subject_title", subjectID)
}

// ToggleTodoDone flips the todo's done flag
func (c *Controller) ToggleTodoDone(todoID int64) {
	c.updateTodo(todoID, "toggle_todo_done", func(t *model.Todo) {
		t.Done = !t.Done
	})
}

// MoveTodo reassigns the todo to the subject before (up) or after (down) its
// current one. At the first or last subject it does nothing.
func (c *Controller) MoveTodo(dir model.Direction, todoID int64) {
	target, ok := c.adjacentSubject(dir, todoID)
	if !ok {
		return
	}
	c.updateTodo(todoID, "move_todo", func(t *model.Todo) {
		t.SubjectID = target
	})
}

// SetFilter replaces the active filter. The filter is never persisted.
func (c *Controller) SetFilter(f model.Filter) {
	c.filter = f
}

// ResetAll clears both collections
func (c *Controller) ResetAll() {
	c.todos = []model.Todo{}
	c.subjects = []model.Subject{}
	c.pending = Pending{}
	c.saveAll()
	c.emit("reset", 0)
}

// updateTodo applies fn to the todo in place and writes the collection through
func (c *Controller) updateTodo(todoID int64, command string, fn func(*model.Todo)) {
	i := c.todoIndex(todoID)
	if i < 0 {
		return
	}
	fn(&c.todos[i])
	c.saveTodos()
	c.emit(command, todoID)
}
