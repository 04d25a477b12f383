package model

import (
	"fmt"
	"strings"
)

// Filter selects which todos are visible
type Filter string

const (
	FilterAll    Filter = "ALL"
	FilterDone   Filter = "DONE"
	FilterUndone Filter = "UNDONE"
)

// Filters lists every filter in selector order
var Filters = []Filter{FilterAll, FilterDone, FilterUndone}

// ParseFilter parses a filter name, ignoring case
func ParseFilter(s string) (Filter, error) {
	f := Filter(strings.ToUpper(strings.TrimSpace(s)))
	switch f {
	case FilterAll, FilterDone, FilterUndone:
		return f, nil
	case "":
		return FilterAll, nil
	}
	return FilterAll, fmt.Errorf("unknown filter %q (want all, done or undone)", s)
}

// Match reports whether a todo passes the filter
func (f Filter) Match(t Todo) bool {
	switch f {
	case FilterDone:
		return t.Done
	case FilterUndone:
		return !t.Done
	default:
		return true
	}
}

// Next returns the filter after f in selector order
func (f Filter) Next() Filter {
	for i, cur := range Filters {
		if cur == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterAll
}

// Label returns the display label for the filter
func (f Filter) Label() string {
	switch f {
	case FilterDone:
		return "완료"
	case FilterUndone:
		return "미완료"
	default:
		return "전체"
	}
}
