package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"mytodos/internal/models"
	"mytodos/internal/render"
	"mytodos/internal/session"
)

// Home renders the task page for the caller's session.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	st := h.viewSession(w, r).Snapshot()
	editingID, editing := st.Mode.IsEditing()

	data := render.PageData{
		Title:     h.title,
		Tasks:     h.tasks.List(r.Context(), st.Filter),
		Filter:    st.Filter,
		Priority:  st.Priority,
		DraftText: st.Draft.Text,
		DraftDate: st.Draft.Date,
		Editing:   editing,
		EditingID: editingID,
	}

	var buf bytes.Buffer
	if err := h.renderer.Page(&buf, data); err != nil {
		respondServerError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// TaskList renders only the list region for the caller's filter, for clients
// that refresh the list without reloading the page.
func (h *Handlers) TaskList(w http.ResponseWriter, r *http.Request) {
	st := h.viewSession(w, r).Snapshot()

	var buf bytes.Buffer
	if err := h.renderer.TaskList(&buf, h.tasks.List(r.Context(), st.Filter)); err != nil {
		respondServerError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// SubmitForm handles the add/edit form. The intent field says which control
// submitted it: add, edit, cancel or priority:<level>.
func (h *Handlers) SubmitForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	sess := h.session(w, r)
	st := sess.Snapshot()
	draft := session.Draft{
		Text: r.FormValue("text"),
		Date: r.FormValue("date"),
	}

	intent := r.FormValue("intent")
	switch {
	case intent == "add":
		_, err := h.tasks.Add(ctx, draft.Text, draft.Date, st.Priority)
		if errors.Is(err, models.ErrEmptyText) {
			sess.SetDraft(draft)
			break
		}
		if err != nil {
			respondServerError(w, err)
			return
		}
		sess.ResetForm()

	case intent == "edit":
		id, editing := st.Mode.IsEditing()
		if !editing {
			break
		}
		_, err := h.tasks.Edit(ctx, id, draft.Text, draft.Date, st.Priority)
		if errors.Is(err, models.ErrEmptyText) {
			sess.SetDraft(draft)
			break
		}
		if err != nil && !errors.Is(err, models.ErrTaskNotFound) {
			respondServerError(w, err)
			return
		}
		sess.ResetForm()

	case intent == "cancel":
		sess.CancelEdit()

	case strings.HasPrefix(intent, "priority:"):
		p, err := models.ParsePriority(strings.TrimPrefix(intent, "priority:"))
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		sess.SetDraft(draft)
		sess.SelectPriority(p)

	default:
		respondError(w, http.StatusBadRequest, "unknown form intent")
		return
	}

	redirectHome(w, r)
}

// SelectFilter changes which subset of tasks the caller sees.
func (h *Handlers) SelectFilter(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	f, err := models.ParseFilter(r.FormValue("filter"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.session(w, r).SelectFilter(f)
	redirectHome(w, r)
}

// action is a card control activation, encoded as "<kind>:<id>".
type action struct {
	kind string
	id   int64
}

func parseAction(v string) (action, error) {
	kind, idStr, ok := strings.Cut(v, ":")
	if !ok {
		return action{}, fmt.Errorf("malformed action %q", v)
	}

	switch kind {
	case "delete", "edit", "status":
	default:
		return action{}, fmt.Errorf("unknown action %q", kind)
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return action{}, fmt.Errorf("malformed task id in action %q: %w", v, err)
	}

	return action{kind: kind, id: id}, nil
}

// Action is the single entry point for every control on the task cards.
// Stale or unknown targets are ignored.
func (h *Handlers) Action(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	a, err := parseAction(r.FormValue("action"))
	if err != nil {
		log.Debug().Str("mod", "http").Err(err).Msg("ignoring card action")
		redirectHome(w, r)
		return
	}

	switch a.kind {
	case "delete":
		err = h.tasks.Delete(ctx, a.id)
	case "status":
		_, err = h.tasks.ToggleStatus(ctx, a.id)
	case "edit":
		var task models.Task
		task, err = h.tasks.Get(ctx, a.id)
		if err == nil {
			h.session(w, r).BeginEdit(task)
		}
	}

	if err != nil && !errors.Is(err, models.ErrTaskNotFound) {
		respondServerError(w, err)
		return
	}

	redirectHome(w, r)
}
