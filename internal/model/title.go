package model

import (
	"strings"
	"unicode"
)

// NormalizeTitle strips leading whitespace and collapses every other run of
// whitespace into a single space. A trailing space survives so that a title
// can still be typed word by word.
func NormalizeTitle(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	inSpace := false
	started := false
	for _, r := range raw {
		if unicode.IsSpace(r) {
			inSpace = true
			continue
		}
		if inSpace && started {
			b.WriteByte(' ')
		}
		inSpace = false
		started = true
		b.WriteRune(r)
	}
	if inSpace && started {
		b.WriteByte(' ')
	}
	return b.String()
}
