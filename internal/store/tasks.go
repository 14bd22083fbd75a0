package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"mytodos/internal/models"
)

// DefaultTasksKey is the key the task list is stored under.
const DefaultTasksKey = "todos"

// TaskStorage reads and writes whole task lists as JSON values in a KV.
type TaskStorage struct {
	kv KV
}

// NewTaskStorage creates a TaskStorage backed by kv.
func NewTaskStorage(kv KV) *TaskStorage {
	return &TaskStorage{kv: kv}
}

// Load returns the list stored at key. A missing key, an unparsable value
// and a failing backend all yield an empty list.
func (s *TaskStorage) Load(ctx context.Context, key string) []models.Task {
	data, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		log.Error().Str("mod", "store").Str("key", key).Err(err).Msg("failed to read tasks, treating as empty")
		return []models.Task{}
	}
	if !ok {
		return []models.Task{}
	}

	var tasks []models.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		log.Warn().Str("mod", "store").Str("key", key).Err(err).Msg("stored tasks are corrupt, treating as empty")
		return []models.Task{}
	}
	if tasks == nil {
		tasks = []models.Task{}
	}

	return tasks
}

// Save overwrites the list stored at key.
func (s *TaskStorage) Save(ctx context.Context, key string, tasks []models.Task) error {
	if tasks == nil {
		tasks = []models.Task{}
	}

	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}

	if err := s.kv.Put(ctx, key, data); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}

	return nil
}
