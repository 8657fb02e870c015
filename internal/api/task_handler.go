package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/devtask-api/internal/api/middleware"
	"github.com/phrazzld/devtask-api/internal/api/shared"
	"github.com/phrazzld/devtask-api/internal/domain"
	"github.com/phrazzld/devtask-api/internal/platform/logger"
	"github.com/phrazzld/devtask-api/internal/store"
)

// TaskHandler handles the owner-scoped task CRUD endpoints. Every handler
// requires the authentication middleware to have resolved the current
// user; the owner of every task touched here is always that user.
type TaskHandler struct {
	taskStore store.TaskStore
	validator *validator.Validate
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskStore store.TaskStore) *TaskHandler {
	return &TaskHandler{
		taskStore: taskStore,
		validator: validator.New(),
	}
}

// CreateTask handles POST /tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "authentication required")
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid task data")
		return
	}

	task, err := domain.NewTask(user.ID, req.Title, domain.TaskStatus(req.Status), req.TimeLogged)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid task data")
		return
	}

	if err := h.taskStore.Create(r.Context(), task); err != nil {
		log := logger.FromContext(r.Context())
		log.Error("failed to create task", "error", err, "owner_id", user.ID)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "failed to create task", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newTaskResponse(task))
}

// ListTasks handles GET /tasks. Only the current user's tasks are returned.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "authentication required")
		return
	}

	tasks, err := h.taskStore.ListByOwner(r.Context(), user.ID)
	if err != nil {
		log := logger.FromContext(r.Context())
		log.Error("failed to list tasks", "error", err, "owner_id", user.ID)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "failed to list tasks", err)
		return
	}

	responses := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, newTaskResponse(task))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// UpdateTask handles PUT /tasks/{id}. Only fields present in the request
// are changed; a task owned by another user is reported as not found.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "authentication required")
		return
	}

	taskID, ok := taskIDFromPath(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "task not found")
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid task data")
		return
	}

	task, err := h.taskStore.GetForOwner(r.Context(), taskID, user.ID)
	if err != nil {
		h.respondTaskError(w, r, err, "failed to load task")
		return
	}

	patch := store.TaskPatch{
		Title:      req.Title,
		TimeLogged: req.TimeLogged,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		patch.Status = &status
	}
	patch.Apply(task)

	if err := task.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "invalid task data")
		return
	}

	if err := h.taskStore.Update(r.Context(), task); err != nil {
		// A concurrent delete between the lookup and the write is observed
		// here as not found.
		h.respondTaskError(w, r, err, "failed to update task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newTaskResponse(task))
}

// DeleteTask handles DELETE /tasks/{id}. Deletion is permanent; repeating
// the call yields a 404.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.CurrentUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "authentication required")
		return
	}

	taskID, ok := taskIDFromPath(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "task not found")
		return
	}

	if err := h.taskStore.Delete(r.Context(), taskID, user.ID); err != nil {
		h.respondTaskError(w, r, err, "failed to delete task")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// respondTaskError maps a store error from a task operation to its
// response, logging unexpected failures.
func (h *TaskHandler) respondTaskError(w http.ResponseWriter, r *http.Request, err error, logMsg string) {
	if errors.Is(err, store.ErrTaskNotFound) {
		shared.RespondWithError(w, r, http.StatusNotFound, "task not found")
		return
	}

	log := logger.FromContext(r.Context())
	log.Error(logMsg, "error", err)
	shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, GetSafeErrorMessage(err), err)
}

// taskIDFromPath extracts the task ID from the URL path. A non-numeric or
// non-positive ID cannot refer to any task, so callers treat it as not
// found rather than leaking parse details.
func taskIDFromPath(r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
