// Package store owns the todo and subject collections. Every change goes
// through a Controller command and is written through to storage before the
// command returns.
package store

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/dori/wille/internal/model"
)

// Keys under which the collections are persisted
const (
	KeyTodos    = "todos"
	KeySubjects = "subjects"
)

// Storage is the persistence the controller writes through to
type Storage interface {
	Get(key string, v any) bool
	Set(key string, v any)
	SetMany(values map[string]any)
}

// Event describes a completed mutation
type Event struct {
	Command string
	ID      int64
}

// Option configures a Controller
type Option func(*Controller)

// WithIDGenerator replaces the clock based id generator
func WithIDGenerator(ids IDGenerator) Option {
	return func(c *Controller) {
		c.ids = ids
	}
}

// WithLogger sets the logger used for command tracing
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithObserver registers a function called after every mutation
func WithObserver(fn func(Event)) Option {
	return func(c *Controller) {
		c.observers = append(c.observers, fn)
	}
}

// Controller is the single owner of todos, subjects, the active filter and
// the pending confirmation. It is not safe for concurrent use.
type Controller struct {
	storage   Storage
	ids       IDGenerator
	logger    *log.Logger
	observers []func(Event)

	todos    []model.Todo
	subjects []model.Subject
	filter   model.Filter
	pending  Pending
}

// Load creates a controller and reads the persisted collections once.
// Missing or unreadable collections start empty.
func Load(storage Storage, opts ...Option) *Controller {
	c := &Controller{
		storage:  storage,
		filter:   model.FilterAll,
		todos:    []model.Todo{},
		subjects: []model.Subject{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}

	var todos []model.Todo
	if storage.Get(KeyTodos, &todos) && todos != nil {
		c.todos = todos
	}
	var subjects []model.Subject
	if storage.Get(KeySubjects, &subjects) && subjects != nil {
		c.subjects = subjects
	}

	c.dropOrphans()

	if c.ids == nil {
		c.ids = NewClockIDs(nil)
	}
	if s, ok := c.ids.(Seeder); ok {
		s.Seed(c.maxID())
	}

	c.logger.Debug("loaded", "subjects", len(c.subjects), "todos", len(c.todos))
	return c
}

// dropOrphans removes loaded todos whose subject was never saved and writes
// the repaired collection back
func (c *Controller) dropOrphans() {
	before := len(c.todos)
	c.todos = slices.DeleteFunc(c.todos, func(t model.Todo) bool {
		return model.IndexOfSubject(c.subjects, t.SubjectID) < 0
	})
	if dropped := before - len(c.todos); dropped > 0 {
		c.logger.Warn("dropped todos without a subject", "count", dropped)
		c.saveTodos()
	}
}

func (c *Controller) maxID() int64 {
	var highest int64
	for _, t := range c.todos {
		if t.ID > highest {
			highest = t.ID
		}
	}
	for _, s := range c.subjects {
		if s.ID > highest {
			highest = s.ID
		}
	}
	return highest
}

// VisibleTodos returns the todos that pass the active filter, in insertion order
func (c *Controller) VisibleTodos() []model.Todo {
	out := make([]model.Todo, 0, len(c.todos))
	for _, t := range c.todos {
		if c.filter.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// TodosForSubject returns the visible todos of one subject
func (c *Controller) TodosForSubject(subjectID int64) []model.Todo {
	var out []model.Todo
	for _, t := range c.todos {
		if t.SubjectID == subjectID && c.filter.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// Todos returns every todo regardless of filter
func (c *Controller) Todos() []model.Todo {
	return slices.Clone(c.todos)
}

// Subjects returns the subjects in display order
func (c *Controller) Subjects() []model.Subject {
	return slices.Clone(c.subjects)
}

// Todo returns the todo with the given ID
func (c *Controller) Todo(id int64) (model.Todo, bool) {
	i := c.todoIndex(id)
	if i < 0 {
		return model.Todo{}, false
	}
	return c.todos[i], true
}

// Subject returns the subject with the given ID
func (c *Controller) Subject(id int64) (model.Subject, bool) {
	i := model.IndexOfSubject(c.subjects, id)
	if i < 0 {
		return model.Subject{}, false
	}
	return c.subjects[i], true
}

// Filter returns the active filter
func (c *Controller) Filter() model.Filter {
	return c.filter
}

// Progress summarizes completion over all todos, ignoring the filter
func (c *Controller) Progress() model.Progress {
	return model.NewProgress(model.CountDone(c.todos), len(c.todos))
}

// CanMove reports whether MoveTodo would change the todo's subject
func (c *Controller) CanMove(dir model.Direction, todoID int64) bool {
	_, ok := c.adjacentSubject(dir, todoID)
	return ok
}

func (c *Controller) todoIndex(id int64) int {
	for i, t := range c.todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (c *Controller) adjacentSubject(dir model.Direction, todoID int64) (int64, bool) {
	i := c.todoIndex(todoID)
	if i < 0 {
		return 0, false
	}
	idx := model.IndexOfSubject(c.subjects, c.todos[i].SubjectID)
	if idx < 0 {
		return 0, false
	}

	switch dir {
	case model.DirectionUp:
		if idx > 0 {
			return c.subjects[idx-1].ID, true
		}
	case model.DirectionDown:
		if idx < len(c.subjects)-1 {
			return c.subjects[idx+1].ID, true
		}
	}
	return 0, false
}

func (c *Controller) saveTodos() {
	c.storage.Set(KeyTodos, c.todos)
}

func (c *Controller) saveSubjects() {
	c.storage.Set(KeySubjects, c.subjects)
}

func (c *Controller) saveAll() {
	c.storage.SetMany(map[string]any{
		KeyTodos:    c.todos,
		KeySubjects: c.subjects,
	})
}

func (c *Controller) emit(command string, id int64) {
	c.logger.Debug(command, "id", id)
	for _, fn := range c.observers {
		fn(Event{Command: command, ID: id})
	}
}
