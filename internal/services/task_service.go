package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"mytodos/internal/models"
)

// TaskStorage loads and saves whole task lists.
type TaskStorage interface {
	Load(ctx context.Context, key string) []models.Task
	Save(ctx context.Context, key string, tasks []models.Task) error
}

// TaskService runs every task operation as a fresh read-modify-write of the
// stored list. Operations are O(n) in the list length.
type TaskService struct {
	storage TaskStorage
	key     string
	now     func() time.Time

	// mu serializes read-modify-write cycles across concurrent requests.
	mu sync.Mutex
}

// NewTaskService creates a service storing its list under key. A nil now
// uses time.Now.
func NewTaskService(storage TaskStorage, key string, now func() time.Time) *TaskService {
	if now == nil {
		now = time.Now
	}
	return &TaskService{
		storage: storage,
		key:     key,
		now:     now,
	}
}

// List returns the stored tasks matching filter, in insertion order.
func (s *TaskService) List(ctx context.Context, filter models.Filter) []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	return filter.Apply(s.storage.Load(ctx, s.key))
}

// Get returns the stored task with the given id.
func (s *TaskService) Get(ctx context.Context, id int64) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := findTask(s.storage.Load(ctx, s.key), id)
	if !ok {
		return models.Task{}, models.ErrTaskNotFound
	}
	return task, nil
}

// Add appends a new unfinished task. An empty date defaults to today.
func (s *TaskService) Add(ctx context.Context, text, date string, priority models.Priority) (models.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		log.Warn().Str("mod", "tasks").Msg("add ignored: please fill in the input")
		return models.Task{}, models.ErrEmptyText
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if date == "" {
		date = models.ShortDate(now)
	}

	tasks := s.storage.Load(ctx, s.key)
	task := models.Task{
		ID:       nextID(tasks, now.UnixMilli()),
		Text:     text,
		Status:   models.StatusUnfinished,
		Date:     date,
		Priority: priority,
	}
	if err := task.Validate(); err != nil {
		return models.Task{}, err
	}

	if err := s.storage.Save(ctx, s.key, appendTask(tasks, task)); err != nil {
		return models.Task{}, err
	}

	log.Debug().Str("mod", "tasks").Int64("id", task.ID).Msg("task added")
	return task, nil
}

// Delete removes the task with the given id. The list is saved even when
// nothing matched, in which case ErrTaskNotFound is returned.
func (s *TaskService) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, found := removeTask(s.storage.Load(ctx, s.key), id)
	if err := s.storage.Save(ctx, s.key, tasks); err != nil {
		return err
	}
	if !found {
		return models.ErrTaskNotFound
	}

	log.Debug().Str("mod", "tasks").Int64("id", id).Msg("task deleted")
	return nil
}

// ToggleStatus advances the task's status one step around the
// unfinished -> in-progress -> completed cycle.
func (s *TaskService) ToggleStatus(ctx context.Context, id int64) (models.Task, error) {
	return s.update(ctx, id, func(t *models.Task) {
		t.Status = t.Status.Next()
	})
}

// Edit replaces the text, date and priority of a task. Its id and status are
// kept. Blank text is rejected like it is for Add.
func (s *TaskService) Edit(ctx context.Context, id int64, text, date string, priority models.Priority) (models.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		log.Warn().Str("mod", "tasks").Int64("id", id).Msg("edit ignored: please fill in the input")
		return models.Task{}, models.ErrEmptyText
	}

	return s.update(ctx, id, func(t *models.Task) {
		t.Text = text
		t.Date = date
		t.Priority = priority
	})
}

func (s *TaskService) update(ctx context.Context, id int64, fn func(*models.Task)) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, task, found := updateTask(s.storage.Load(ctx, s.key), id, fn)
	if err := s.storage.Save(ctx, s.key, tasks); err != nil {
		return models.Task{}, err
	}
	if !found {
		return models.Task{}, models.ErrTaskNotFound
	}

	log.Debug().Str("mod", "tasks").Int64("id", id).Str("status", task.Status.String()).Msg("task updated")
	return task, nil
}
