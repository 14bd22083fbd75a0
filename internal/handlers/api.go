package handlers

import (
	"encoding/json"
	"net/http"

	"mytodos/internal/models"
)

// taskRequest is the JSON body accepted by the create and update endpoints.
type taskRequest struct {
	Text     string `json:"text"`
	Date     string `json:"date"`
	Priority string `json:"priority"`
}

func decodeTaskRequest(r *http.Request) (taskRequest, models.Priority, error) {
	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, 0, err
	}

	priority := models.PriorityMedium
	if req.Priority != "" {
		p, err := models.ParsePriority(req.Priority)
		if err != nil {
			return req, 0, err
		}
		priority = p
	}

	return req, priority, nil
}

// ListTasks returns the stored tasks, optionally filtered by ?filter=.
func (h *Handlers) ListTasks(w http.ResponseWriter, r *http.Request) {
	f, err := models.ParseFilter(r.URL.Query().Get("filter"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	tasks := h.tasks.List(r.Context(), f)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(tasks),
		"tasks": tasks,
	})
}

// CreateTask appends a task.
func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	req, priority, err := decodeTaskRequest(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json: " + err.Error()})
		return
	}

	task, err := h.tasks.Add(r.Context(), req.Text, req.Date, priority)
	if err != nil {
		respondJSONError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, task)
}

// UpdateTask replaces the text, date and priority of a task.
func (h *Handlers) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid task id"})
		return
	}

	req, priority, err := decodeTaskRequest(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json: " + err.Error()})
		return
	}

	task, err := h.tasks.Edit(r.Context(), id, req.Text, req.Date, priority)
	if err != nil {
		respondJSONError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, task)
}

// DeleteTask deletes a task.
func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid task id"})
		return
	}

	if err := h.tasks.Delete(r.Context(), id); err != nil {
		respondJSONError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ToggleTask advances the status of a task and returns it.
func (h *Handlers) ToggleTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid task id"})
		return
	}

	task, err := h.tasks.ToggleStatus(r.Context(), id)
	if err != nil {
		respondJSONError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, task)
}
