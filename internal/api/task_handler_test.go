package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/devtask-api/internal/api/shared"
	"github.com/phrazzld/devtask-api/internal/domain"
)

// newTaskTestRouter mounts the task routes behind a middleware that
// injects the given user, standing in for the real authentication chain.
func newTaskTestRouter(tasks *fakeTaskStore, user *domain.User) http.Handler {
	h := NewTaskHandler(tasks)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				if user != nil {
					ctx := context.WithValue(req.Context(), shared.CurrentUserContextKey, user)
					req = req.WithContext(ctx)
				}
				next.ServeHTTP(w, req)
			})
		})
		r.Post("/tasks", h.CreateTask)
		r.Get("/tasks", h.ListTasks)
		r.Put("/tasks/{id}", h.UpdateTask)
		r.Delete("/tasks/{id}", h.DeleteTask)
	})
	return r
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeTask(t *testing.T, rec *httptest.ResponseRecorder) TaskResponse {
	t.Helper()
	var resp TaskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

var testOwner = &domain.User{ID: 1, Email: "alice@example.com", HashedPassword: "x"}

func TestCreateTask(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		router := newTaskTestRouter(newFakeTaskStore(), testOwner)

		rec := doJSON(t, router, http.MethodPost, "/tasks",
			CreateTaskRequest{Title: "write spec"})

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeTask(t, rec)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "write spec", resp.Title)
		assert.Equal(t, "todo", resp.Status)
		assert.Zero(t, resp.TimeLogged)
	})

	t.Run("explicit_fields", func(t *testing.T) {
		router := newTaskTestRouter(newFakeTaskStore(), testOwner)

		rec := doJSON(t, router, http.MethodPost, "/tasks",
			CreateTaskRequest{Title: "review PR", Status: "in_progress", TimeLogged: 1.5})

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeTask(t, rec)
		assert.Equal(t, "in_progress", resp.Status)
		assert.Equal(t, 1.5, resp.TimeLogged)
	})

	t.Run("missing_title", func(t *testing.T) {
		router := newTaskTestRouter(newFakeTaskStore(), testOwner)

		rec := doJSON(t, router, http.MethodPost, "/tasks", CreateTaskRequest{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid_status", func(t *testing.T) {
		router := newTaskTestRouter(newFakeTaskStore(), testOwner)

		rec := doJSON(t, router, http.MethodPost, "/tasks",
			CreateTaskRequest{Title: "x", Status: "blocked"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("negative_time_logged", func(t *testing.T) {
		router := newTaskTestRouter(newFakeTaskStore(), testOwner)

		rec := doJSON(t, router, http.MethodPost, "/tasks",
			CreateTaskRequest{Title: "x", TimeLogged: -1})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no_user_in_context", func(t *testing.T) {
		router := newTaskTestRouter(newFakeTaskStore(), nil)

		rec := doJSON(t, router, http.MethodPost, "/tasks",
			CreateTaskRequest{Title: "x"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestListTasks(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		router := newTaskTestRouter(newFakeTaskStore(), testOwner)

		rec := doJSON(t, router, http.MethodGet, "/tasks", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("owner_isolation", func(t *testing.T) {
		tasks := newFakeTaskStore()
		bob := &domain.User{ID: 2, Email: "bob@example.com", HashedPassword: "x"}

		aliceRouter := newTaskTestRouter(tasks, testOwner)
		bobRouter := newTaskTestRouter(tasks, bob)

		require.Equal(t, http.StatusOK,
			doJSON(t, aliceRouter, http.MethodPost, "/tasks", CreateTaskRequest{Title: "alice one"}).Code)
		require.Equal(t, http.StatusOK,
			doJSON(t, aliceRouter, http.MethodPost, "/tasks", CreateTaskRequest{Title: "alice two"}).Code)
		require.Equal(t, http.StatusOK,
			doJSON(t, bobRouter, http.MethodPost, "/tasks", CreateTaskRequest{Title: "bob one"}).Code)

		rec := doJSON(t, aliceRouter, http.MethodGet, "/tasks", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var listed []TaskResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
		require.Len(t, listed, 2)
		assert.Equal(t, "alice one", listed[0].Title)
		assert.Equal(t, "alice two", listed[1].Title)
	})
}

func TestUpdateTask(t *testing.T) {
	createTask := func(t *testing.T, router http.Handler, title string) TaskResponse {
		t.Helper()
		rec := doJSON(t, router, http.MethodPost, "/tasks", CreateTaskRequest{Title: title})
		require.Equal(t, http.StatusOK, rec.Code)
		return decodeTask(t, rec)
	}

	t.Run("partial_update_preserves_other_fields", func(t *testing.T) {
		router := newTaskTestRouter(newFakeTaskStore(), testOwner)
		created := createTask(t, router, "write spec")

		timeLogged := 2.5
		rec := doJSON(t, router, http.MethodPut, fmt.Sprintf("/tasks/%d", created.ID),
			UpdateTaskRequest{TimeLogged: &timeLogged})

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeTask(t, rec)
		assert.Equal(t, "write spec", resp.Title)
		assert.Equal(t, "todo", resp.Status)
		assert.Equal(t, 2.5, resp.TimeLogged)
	})

	t.Run("full_update", func(t *testing.T) {
		router := newTaskTestRouter(newFakeTaskStore(), testOwner)
		created := createTask(t, router, "write spec")

		title := "ship it"
		status := "done"
		timeLogged := 8.0
		rec := doJSON(t, router, http.MethodPut, fmt.Sprintf("/tasks/%d", created.ID),
			UpdateTaskRequest{Title: &title, Status: &status, TimeLogged: &timeLogged})

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeTask(t, rec)
		assert.Equal(t, "ship it", resp.Title)
		assert.Equal(t, "done", resp.Status)
		assert.Equal(t, 8.0, resp.TimeLogged)
	})

	t.Run("unknown_id", func(t *testing.T) {
		router := newTaskTestRouter(newFakeTaskStore(), testOwner)

		title := "x"
		rec := doJSON(t, router, http.MethodPut, "/tasks/999",
			UpdateTaskRequest{Title: &title})
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "task not found")
	})

	t.Run("other_owners_task", func(t *testing.T) {
		tasks := newFakeTaskStore()
		bob := &domain.User{ID: 2, Email: "bob@example.com", HashedPassword: "x"}
		created := createTask(t, newTaskTestRouter(tasks, testOwner), "alice only")

		title := "hijacked"
		rec := doJSON(t, newTaskTestRouter(tasks, bob), http.MethodPut,
			fmt.Sprintf("/tasks/%d", created.ID), UpdateTaskRequest{Title: &title})

		// Indistinguishable from a missing task.
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed_id", func(t *testing.T) {
		router := newTaskTestRouter(newFakeTaskStore(), testOwner)

		title := "x"
		rec := doJSON(t, router, http.MethodPut, "/tasks/abc",
			UpdateTaskRequest{Title: &title})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid_status", func(t *testing.T) {
		router := newTaskTestRouter(newFakeTaskStore(), testOwner)
		created := createTask(t, router, "write spec")

		status := "blocked"
		rec := doJSON(t, router, http.MethodPut, fmt.Sprintf("/tasks/%d", created.ID),
			UpdateTaskRequest{Status: &status})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty_body_is_noop", func(t *testing.T) {
		router := newTaskTestRouter(newFakeTaskStore(), testOwner)
		created := createTask(t, router, "write spec")

		rec := doJSON(t, router, http.MethodPut, fmt.Sprintf("/tasks/%d", created.ID),
			UpdateTaskRequest{})

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeTask(t, rec)
		assert.Equal(t, created, resp)
	})
}

func TestDeleteTask(t *testing.T) {
	t.Run("delete_then_repeat", func(t *testing.T) {
		router := newTaskTestRouter(newFakeTaskStore(), testOwner)

		created := doJSON(t, router, http.MethodPost, "/tasks", CreateTaskRequest{Title: "temp"})
		require.Equal(t, http.StatusOK, created.Code)
		id := decodeTask(t, created).ID

		rec := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())

		again := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil)
		assert.Equal(t, http.StatusNotFound, again.Code)
	})

	t.Run("other_owners_task", func(t *testing.T) {
		tasks := newFakeTaskStore()
		bob := &domain.User{ID: 2, Email: "bob@example.com", HashedPassword: "x"}

		created := doJSON(t, newTaskTestRouter(tasks, testOwner), http.MethodPost,
			"/tasks", CreateTaskRequest{Title: "alice only"})
		require.Equal(t, http.StatusOK, created.Code)
		id := decodeTask(t, created).ID

		rec := doJSON(t, newTaskTestRouter(tasks, bob), http.MethodDelete,
			fmt.Sprintf("/tasks/%d", id), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		// Alice's task survives.
		still := doJSON(t, newTaskTestRouter(tasks, testOwner), http.MethodGet, "/tasks", nil)
		var listed []TaskResponse
		require.NoError(t, json.Unmarshal(still.Body.Bytes(), &listed))
		assert.Len(t, listed, 1)
	})

	t.Run("malformed_id", func(t *testing.T) {
		router := newTaskTestRouter(newFakeTaskStore(), testOwner)

		rec := doJSON(t, router, http.MethodDelete, "/tasks/not-a-number", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
