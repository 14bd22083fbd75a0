package services

import "mytodos/internal/models"

// The functions below compute a new task list from the current one. They never
// modify their input, so callers can compare before and after.

// nextID returns a fresh id derived from nowMillis that is strictly greater
// than every id already in tasks.
func nextID(tasks []models.Task, nowMillis int64) int64 {
	id := nowMillis
	for _, t := range tasks {
		if t.ID >= id {
			id = t.ID + 1
		}
	}
	return id
}

func appendTask(tasks []models.Task, task models.Task) []models.Task {
	out := make([]models.Task, 0, len(tasks)+1)
	out = append(out, tasks...)
	return append(out, task)
}

func removeTask(tasks []models.Task, id int64) ([]models.Task, bool) {
	out := make([]models.Task, 0, len(tasks))
	found := false
	for _, t := range tasks {
		if t.ID == id {
			found = true
			continue
		}
		out = append(out, t)
	}
	return out, found
}

// updateTask applies fn to the task carrying id and returns the updated copy.
func updateTask(tasks []models.Task, id int64, fn func(*models.Task)) ([]models.Task, models.Task, bool) {
	out := make([]models.Task, len(tasks))
	copy(out, tasks)
	for i := range out {
		if out[i].ID == id {
			fn(&out[i])
			return out, out[i], true
		}
	}
	return out, models.Task{}, false
}

func findTask(tasks []models.Task, id int64) (models.Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}
