package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/server/models"
	"github.com/dmitrijs2005/taskboard/internal/server/services"
)

// TaskHandler serves the owner-scoped task CRUD, batch delete and stats.
// The owner id always comes from the Identity attached by the gateway.
type TaskHandler struct {
	tasks TaskService
}

func NewTaskHandler(tasks TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

func (h *TaskHandler) identity(r *http.Request) (*Identity, error) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		return nil, errUnauthorized("Not authorized, no token")
	}
	return identity, nil
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) error {
	identity, err := h.identity(r)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}
	if fields := req.Validate(); len(fields) > 0 {
		return errValidation(fields)
	}

	// store the sanitized values the validation rules were checked against
	task, err := h.tasks.Create(r.Context(), identity.ID,
		strings.TrimSpace(req.Title), strings.TrimSpace(req.Description),
		models.TaskStatus(req.Status), models.TaskPriority(req.Priority))
	if err != nil {
		return err
	}

	respondData(w, http.StatusCreated, newTaskResponse(task))
	return nil
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) error {
	identity, err := h.identity(r)
	if err != nil {
		return err
	}

	filter, fields := taskFilterFromQuery(r)
	if len(fields) > 0 {
		return errValidation(fields)
	}

	tasks, err := h.tasks.List(r.Context(), identity.ID, filter)
	if err != nil {
		return err
	}

	respondList(w, http.StatusOK, len(tasks), newTaskResponseList(tasks))
	return nil
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) error {
	identity, err := h.identity(r)
	if err != nil {
		return err
	}

	task, err := h.tasks.Get(r.Context(), identity.ID, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return errNotFound("Task not found")
		}
		return err
	}

	respondData(w, http.StatusOK, newTaskResponse(task))
	return nil
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) error {
	identity, err := h.identity(r)
	if err != nil {
		return err
	}

	var req updateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}
	if fields := req.Validate(); len(fields) > 0 {
		return errValidation(fields)
	}

	update := services.TaskUpdate{}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		update.Title = &title
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		update.Description = &description
	}
	if req.Status != nil {
		status := models.TaskStatus(*req.Status)
		update.Status = &status
	}
	if req.Priority != nil {
		priority := models.TaskPriority(*req.Priority)
		update.Priority = &priority
	}

	task, err := h.tasks.Update(r.Context(), identity.ID, chi.URLParam(r, "id"), update)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return errNotFound("Task not found")
		}
		return err
	}

	respondData(w, http.StatusOK, newTaskResponse(task))
	return nil
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	identity, err := h.identity(r)
	if err != nil {
		return err
	}

	if err := h.tasks.Delete(r.Context(), identity.ID, chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return errNotFound("Task not found")
		}
		return err
	}

	respondMessage(w, http.StatusOK, "Task deleted successfully")
	return nil
}

func (h *TaskHandler) DeleteBatch(w http.ResponseWriter, r *http.Request) error {
	identity, err := h.identity(r)
	if err != nil {
		return err
	}

	var req batchDeleteRequest
	if err := decodeJSON(r, &req); err != nil {
		return err
	}
	if fields := req.Validate(); len(fields) > 0 {
		return errValidation(fields)
	}

	n, err := h.tasks.DeleteBatch(r.Context(), identity.ID, req.TaskIDs)
	if err != nil {
		return err
	}

	respondJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: fmt.Sprintf("%d tasks deleted", n),
		Data:    map[string]int64{"deletedCount": n},
	})
	return nil
}

func (h *TaskHandler) Stats(w http.ResponseWriter, r *http.Request) error {
	identity, err := h.identity(r)
	if err != nil {
		return err
	}

	stats, err := h.tasks.Stats(r.Context(), identity.ID)
	if err != nil {
		return err
	}

	respondData(w, http.StatusOK, newStatsResponse(stats))
	return nil
}
