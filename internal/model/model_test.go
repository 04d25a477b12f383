package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTitle(t *testing.T) {
	cases := map[string]string{
		"":              "",
		"   ":           "",
		"  a   b":       "a b",
		"a b":           "a b",
		"\tplan\n now":  "plan now",
		"typing ":       "typing ",
		"typing   ":     "typing ",
		" 새로운   계획 ": "새로운 계획 ",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeTitle(in), "input %q", in)
	}
}

func TestNormalizeTitleIdempotent(t *testing.T) {
	for _, in := range []string{"  a   b", " x ", "a\t\tb\nc", "plain"} {
		once := NormalizeTitle(in)
		assert.Equal(t, once, NormalizeTitle(once))
	}
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter("done")
	require.NoError(t, err)
	assert.Equal(t, FilterDone, f)

	f, err = ParseFilter("")
	require.NoError(t, err)
	assert.Equal(t, FilterAll, f)

	_, err = ParseFilter("someday")
	assert.Error(t, err)
}

func TestFilterNextCycles(t *testing.T) {
	assert.Equal(t, FilterDone, FilterAll.Next())
	assert.Equal(t, FilterUndone, FilterDone.Next())
	assert.Equal(t, FilterAll, FilterUndone.Next())
}

func TestFilterMatch(t *testing.T) {
	done := Todo{Done: true}
	open := Todo{}
	assert.True(t, FilterAll.Match(done))
	assert.True(t, FilterAll.Match(open))
	assert.True(t, FilterDone.Match(done))
	assert.False(t, FilterDone.Match(open))
	assert.True(t, FilterUndone.Match(open))
	assert.False(t, FilterUndone.Match(done))
}

func TestNewProgress(t *testing.T) {
	empty := NewProgress(0, 0)
	assert.Equal(t, 0, empty.Percent)
	assert.Equal(t, MoodNeutral, empty.Mood)
	assert.False(t, empty.Complete())

	wantMoods := []Mood{MoodWorst, MoodSad, MoodNeutral, MoodHappy, MoodCool, MoodJoyful}
	for done := 0; done <= 5; done++ {
		p := NewProgress(done, 5)
		assert.Equal(t, done*20, p.Percent)
		assert.Equal(t, wantMoods[done], p.Mood)
	}
	assert.True(t, NewProgress(5, 5).Complete())
}

func TestNewProgressRounds(t *testing.T) {
	assert.Equal(t, 33, NewProgress(1, 3).Percent)
	assert.Equal(t, 67, NewProgress(2, 3).Percent)
	assert.Equal(t, MoodHappy, NewProgress(2, 3).Mood)
}

func TestIndexOfSubject(t *testing.T) {
	subjects := []Subject{{ID: 1}, {ID: 7}, {ID: 3}}
	assert.Equal(t, 1, IndexOfSubject(subjects, 7))
	assert.Equal(t, -1, IndexOfSubject(subjects, 9))
}
