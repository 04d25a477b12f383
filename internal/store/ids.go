package store

import "time"

// IDGenerator hands out ids for new todos and subjects
type IDGenerator interface {
	Next() int64
}

// Seeder is implemented by generators that must stay above already used ids
type Seeder interface {
	Seed(highest int64)
}

// ClockIDs derives ids from the wall clock in milliseconds. Two ids taken in
// the same millisecond, or after the clock stepped back, still increase
// strictly.
type ClockIDs struct {
	now  func() time.Time
	last int64
}

// NewClockIDs creates a clock generator. A nil now uses time.Now.
func NewClockIDs(now func() time.Time) *ClockIDs {
	if now == nil {
		now = time.Now
	}
	return &ClockIDs{now: now}
}

// Next returns the next id
func (g *ClockIDs) Next() int64 {
	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// Seed makes every later id greater than highest
func (g *ClockIDs) Seed(highest int64) {
	if highest > g.last {
		g.last = highest
	}
}

// SequenceIDs counts up from one
type SequenceIDs struct {
	last int64
}

// Next returns the next id
func (g *SequenceIDs) Next() int64 {
	g.last++
	return g.last
}

// Seed makes every later id greater than highest
func (g *SequenceIDs) Seed(highest int64) {
	if highest > g.last {
		g.last = highest
	}
}
