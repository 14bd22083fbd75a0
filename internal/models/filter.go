package models

import "fmt"

// Filter selects which subset of the task list is displayed.
type Filter int

const (
	FilterAll Filter = iota
	FilterUnfinished
	FilterInProgress
	FilterCompleted
)

var filterNames = [...]string{
	FilterAll:        "all",
	FilterUnfinished: "unfinished",
	FilterInProgress: "in-progress",
	FilterCompleted:  "completed",
}

// Filters lists every filter in display order.
var Filters = []Filter{FilterAll, FilterUnfinished, FilterInProgress, FilterCompleted}

func (f Filter) String() string {
	if f < 0 || int(f) >= len(filterNames) {
		return fmt.Sprintf("Filter(%d)", int(f))
	}
	return filterNames[f]
}

// Label is the button caption for the filter.
func (f Filter) Label() string {
	switch f {
	case FilterUnfinished:
		return "Unfinished"
	case FilterInProgress:
		return "In progress"
	case FilterCompleted:
		return "Completed"
	default:
		return "All"
	}
}

// ParseFilter converts a query or form value into a Filter. An empty value
// means FilterAll.
func ParseFilter(s string) (Filter, error) {
	if s == "" {
		return FilterAll, nil
	}
	for i, name := range filterNames {
		if name == s {
			return Filter(i), nil
		}
	}
	return FilterAll, fmt.Errorf("filter must be 'all', 'unfinished', 'in-progress', or 'completed', got %q", s)
}

// Matches reports whether the task belongs to the filtered subset.
func (f Filter) Matches(t Task) bool {
	switch f {
	case FilterUnfinished:
		return t.Status == StatusUnfinished
	case FilterInProgress:
		return t.Status == StatusInProgress
	case FilterCompleted:
		return t.Status == StatusCompleted
	default:
		return true
	}
}

// Apply returns the tasks matching f in their original order.
// The input slice is never modified.
func (f Filter) Apply(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}
