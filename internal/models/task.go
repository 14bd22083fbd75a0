package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyText is returned when a task would be stored without text.
	ErrEmptyText = errors.New("text is required")

	// ErrTaskNotFound is returned when no stored task carries the requested id.
	ErrTaskNotFound = errors.New("task not found")
)

// Status is the lifecycle stage of a task.
type Status int

const (
	StatusUnfinished Status = iota
	StatusInProgress
	StatusCompleted
)

var statusNames = [...]string{
	StatusUnfinished: "unfinished",
	StatusInProgress: "in-progress",
	StatusCompleted:  "completed",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// Next returns the status that follows s in the
// unfinished -> in-progress -> completed -> unfinished cycle.
func (s Status) Next() Status {
	switch s {
	case StatusUnfinished:
		return StatusInProgress
	case StatusInProgress:
		return StatusCompleted
	default:
		return StatusUnfinished
	}
}

// ParseStatus converts the stored representation into a Status.
func ParseStatus(s string) (Status, error) {
	for i, name := range statusNames {
		if name == s {
			return Status(i), nil
		}
	}
	return 0, fmt.Errorf("status must be 'unfinished', 'in-progress', or 'completed', got %q", s)
}

func (s Status) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(statusNames) {
		return nil, fmt.Errorf("invalid status %d", int(s))
	}
	return []byte(statusNames[s]), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	v, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Priority tags a task for visual emphasis.
type Priority int

const (
	PriorityMedium Priority = iota
	PriorityLow
	PriorityHigh
)

var priorityNames = [...]string{
	PriorityMedium: "medium",
	PriorityLow:    "low",
	PriorityHigh:   "high",
}

// Priorities lists every priority in the order the form shows them.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

func (p Priority) String() string {
	if p < 0 || int(p) >= len(priorityNames) {
		return fmt.Sprintf("Priority(%d)", int(p))
	}
	return priorityNames[p]
}

// ParsePriority converts the stored representation into a Priority.
func ParsePriority(s string) (Priority, error) {
	for i, name := range priorityNames {
		if name == s {
			return Priority(i), nil
		}
	}
	return 0, fmt.Errorf("priority must be 'high', 'medium', or 'low', got %q", s)
}

func (p Priority) MarshalText() ([]byte, error) {
	if p < 0 || int(p) >= len(priorityNames) {
		return nil, fmt.Errorf("invalid priority %d", int(p))
	}
	return []byte(priorityNames[p]), nil
}

func (p *Priority) UnmarshalText(b []byte) error {
	v, err := ParsePriority(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Task represents a single to-do item.
type Task struct {
	ID       int64    `json:"id"`
	Text     string   `json:"text"`
	Status   Status   `json:"status"`
	Date     string   `json:"date"`
	Priority Priority `json:"priority"`
}

// Validate checks that the task has valid field values.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Text) == "" {
		return ErrEmptyText
	}

	if _, err := t.Status.MarshalText(); err != nil {
		return err
	}

	if _, err := t.Priority.MarshalText(); err != nil {
		return err
	}

	return nil
}
