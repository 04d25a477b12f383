package store

// PendingKind names the destructive command awaiting confirmation
type PendingKind int

const (
	PendingNone PendingKind = iota
	PendingRemoveSubject
	PendingReset
)

// String returns the state name
func (k PendingKind) String() string {
	switch k {
	case PendingRemoveSubject:
		return "remove_subject"
	case PendingReset:
		return "reset"
	default:
		return "idle"
	}
}

// Pending is the confirmation state. The zero value is idle.
type Pending struct {
	Kind      PendingKind
	SubjectID int64
}

// Idle reports whether nothing awaits confirmation
func (p Pending) Idle() bool {
	return p.Kind == PendingNone
}

// Pending returns the current confirmation state
func (c *Controller) Pending() Pending {
	return c.pending
}

// RequestRemoveSubject asks for confirmation before removing a subject and
// its todos. It returns false when another confirmation is pending or the
// subject does not exist.
func (c *Controller) RequestRemoveSubject(subjectID int64) bool {
	if !c.pending.Idle() {
		return false
	}
	if _, ok := c.Subject(subjectID); !ok {
		return false
	}
	c.pending = Pending{Kind: PendingRemoveSubject, SubjectID: subjectID}
	return true
}

// RequestReset asks for confirmation before clearing everything. It is only
// available while idle and at least one subject exists.
func (c *Controller) RequestReset() bool {
	if !c.pending.Idle() || len(c.subjects) == 0 {
		return false
	}
	c.pending = Pending{Kind: PendingReset}
	return true
}

// Confirm runs the pending command and returns to idle
func (c *Controller) Confirm() {
	p := c.pending
	c.pending = Pending{}

	switch p.Kind {
	case PendingRemoveSubject:
		c.RemoveSubjectAndTodos(p.SubjectID)
	case PendingReset:
		c.ResetAll()
	}
}

// Cancel drops the pending command
func (c *Controller) Cancel() {
	c.pending = Pending{}
}
