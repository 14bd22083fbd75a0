// Package session holds the per-browser UI state: the active filter, the
// priority chosen for the next submission, the form draft and the edit mode.
// None of it is persisted.
package session

import (
	"sync"
	"time"

	"mytodos/internal/models"
)

// Mode is the state of the add/edit form.
type Mode struct {
	editing bool
	taskID  int64
}

// Idle is the mode in which the form adds new tasks.
var Idle = Mode{}

// Editing returns the mode in which the form edits taskID.
func Editing(taskID int64) Mode {
	return Mode{editing: true, taskID: taskID}
}

// IsEditing reports whether a task is being edited, and which one.
func (m Mode) IsEditing() (int64, bool) {
	return m.taskID, m.editing
}

// Draft holds the current values of the form inputs.
type Draft struct {
	Text string
	Date string
}

// Session is the UI state of one browser.
type Session struct {
	ID string

	mu       sync.Mutex
	filter   models.Filter
	priority models.Priority
	mode     Mode
	draft    Draft

	// lastSeen is guarded by the owning Manager's lock.
	lastSeen time.Time
}

// New returns a session with the default state: all tasks shown, medium
// priority selected, idle form.
func New(id string) *Session {
	return &Session{
		ID:       id,
		filter:   models.FilterAll,
		priority: models.PriorityMedium,
		mode:     Idle,
	}
}

// State is a consistent copy of a session's fields.
type State struct {
	Filter   models.Filter
	Priority models.Priority
	Mode     Mode
	Draft    Draft
}

// Snapshot returns the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return State{
		Filter:   s.filter,
		Priority: s.priority,
		Mode:     s.mode,
		Draft:    s.draft,
	}
}

func (s *Session) SelectFilter(f models.Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filter = f
}

func (s *Session) SelectPriority(p models.Priority) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.priority = p
}

// SetDraft records what the user has typed so far.
func (s *Session) SetDraft(d Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft = d
}

// BeginEdit switches the form to editing task and fills it with the task's
// values. A pending edit of another task is replaced.
func (s *Session) BeginEdit(task models.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mode = Editing(task.ID)
	s.priority = task.Priority
	s.draft = Draft{
		Text: task.Text,
		Date: models.InputDate(task.Date),
	}
}

// CancelEdit drops a pending edit and clears the form.
func (s *Session) CancelEdit() {
	s.ResetForm()
}

// ResetForm clears the draft, selects medium priority and returns to idle.
// The filter is kept.
func (s *Session) ResetForm() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mode = Idle
	s.priority = models.PriorityMedium
	s.draft = Draft{}
}
