package model

import "math"

// Mood is the face shown for a completion percentage
type Mood string

const (
	MoodWorst   Mood = "worst"
	MoodSad     Mood = "sad"
	MoodNeutral Mood = "neutral"
	MoodHappy   Mood = "happy"
	MoodCool    Mood = "cool"
	MoodJoyful  Mood = "joyful"
)

// Progress summarizes how much of the todo list is done
type Progress struct {
	Done    int
	Total   int
	Percent int
	Mood    Mood
}

// NewProgress computes the completion percentage and mood for the counts
func NewProgress(done, total int) Progress {
	p := Progress{Done: done, Total: total, Mood: MoodNeutral}
	if total <= 0 {
		p.Total = 0
		return p
	}
	p.Percent = int(math.Round(100 * float64(done) / float64(total)))
	p.Mood = MoodFor(p.Percent)
	return p
}

// MoodFor maps a completion percentage of a non-empty list to its mood
func MoodFor(percent int) Mood {
	switch {
	case percent >= 100:
		return MoodJoyful
	case percent >= 80:
		return MoodCool
	case percent >= 60:
		return MoodHappy
	case percent >= 40:
		return MoodNeutral
	case percent >= 20:
		return MoodSad
	default:
		return MoodWorst
	}
}

// Complete reports whether every todo is done
func (p Progress) Complete() bool {
	return p.Total > 0 && p.Done == p.Total
}

// Emoji returns the face for the mood
func (m Mood) Emoji() string {
	switch m {
	case MoodWorst:
		return "😫"
	case MoodSad:
		return "😞"
	case MoodHappy:
		return "🙂"
	case MoodCool:
		return "😎"
	case MoodJoyful:
		return "🥳"
	default:
		return "😐"
	}
}
