package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveSubjectConfirmation(t *testing.T) {
	c, _ := newController(t)
	s := c.AddSubject()
	c.AddTodo(s.ID)

	assert.True(t, c.RequestRemoveSubject(s.ID))
	assert.Equal(t, Pending{Kind: PendingRemoveSubject, SubjectID: s.ID}, c.Pending())

	c.Cancel()
	assert.True(t, c.Pending().Idle())
	assert.Len(t, c.Subjects(), 1, "cancel leaves data alone")

	assert.True(t, c.RequestRemoveSubject(s.ID))
	c.Confirm()
	assert.True(t, c.Pending().Idle())
	assert.Empty(t, c.Subjects())
	assert.Empty(t, c.Todos())
}

func TestRequestRemoveMissingSubject(t *testing.T) {
	c, _ := newController(t)
	assert.False(t, c.RequestRemoveSubject(5))
	assert.True(t, c.Pending().Idle())
}

func TestResetConfirmation(t *testing.T) {
	c, _ := newController(t)
	assert.False(t, c.RequestReset(), "reset needs at least one subject")

	s := c.AddSubject()
	c.AddTodo(s.ID)

	assert.True(t, c.RequestReset())
	assert.Equal(t, PendingReset, c.Pending().Kind)
	c.Cancel()
	assert.Len(t, c.Subjects(), 1)

	assert.True(t, c.RequestReset())
	c.Confirm()
	assert.True(t, c.Pending().Idle())
	assert.Empty(t, c.Subjects())
	assert.Empty(t, c.Todos())
}

func TestOnlyOnePendingConfirmation(t *testing.T) {
	c, _ := newController(t)
	a := c.AddSubject()
	b := c.AddSubject()

	assert.True(t, c.RequestRemoveSubject(a.ID))
	assert.False(t, c.RequestRemoveSubject(b.ID))
	assert.False(t, c.RequestReset())
	assert.Equal(t, a.ID, c.Pending().SubjectID)

	c.Confirm()
	assert.Len(t, c.Subjects(), 1)
	assert.Equal(t, b.ID, c.Subjects()[0].ID)
}

func TestConfirmWhileIdleDoesNothing(t *testing.T) {
	c, _ := newController(t)
	c.AddSubject()
	c.Confirm()
	c.Cancel()
	assert.Len(t, c.Subjects(), 1)
}

func TestPendingKindString(t *testing.T) {
	assert.Equal(t, "idle", PendingNone.String())
	assert.Equal(t, "remove_subject", PendingRemoveSubject.String())
	assert.Equal(t, "reset", PendingReset.String())
}

func TestDirectRemovalClearsPendingRequest(t *testing.T) {
	c, _ := newController(t)
	keep := c.AddSubject()
	gone := c.AddSubject()

	assert.True(t, c.RequestRemoveSubject(gone.ID))
	c.RemoveSubjectAndTodos(keep.ID)
	assert.Equal(t, Pending{Kind: PendingRemoveSubject, SubjectID: gone.ID}, c.Pending(),
		"removing another subject leaves the request alone")

	c.RemoveSubjectAndTodos(gone.ID)
	assert.True(t, c.Pending().Idle())
}
