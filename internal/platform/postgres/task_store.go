package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/devtask-api/internal/domain"
	"github.com/phrazzld/devtask-api/internal/platform/logger"
	"github.com/phrazzld/devtask-api/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface using a
// PostgreSQL database as the storage backend. All single-task statements
// filter by both id and owner_id so that another user's task is
// indistinguishable from a missing one.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. The database handle is initialized and managed by
// the caller. If logger is nil, the default logger is used.
func NewPostgresTaskStore(db store.DBTX, log *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if log == nil {
		log = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: log.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// Create implements store.TaskStore.Create.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO tasks (title, status, time_logged, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		task.Title,
		string(task.Status),
		task.TimeLogged,
		task.OwnerID,
		task.CreatedAt,
	).Scan(&task.ID)

	if err != nil {
		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.Int64("owner_id", task.OwnerID))
		return MapError(err)
	}

	log.Debug("task created",
		slog.Int64("task_id", task.ID),
		slog.Int64("owner_id", task.OwnerID))
	return nil
}

// ListByOwner implements store.TaskStore.ListByOwner.
// Tasks are ordered by id, which matches insertion order.
func (s *PostgresTaskStore) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, status, time_logged, owner_id, created_at
		FROM tasks
		WHERE owner_id = $1
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		log.Error("failed to list tasks",
			slog.String("error", err.Error()),
			slog.Int64("owner_id", ownerID))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Warn("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Error("failed to scan task row",
				slog.String("error", err.Error()),
				slog.Int64("owner_id", ownerID))
			return nil, MapError(err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		log.Error("task row iteration failed",
			slog.String("error", err.Error()),
			slog.Int64("owner_id", ownerID))
		return nil, MapError(err)
	}

	return tasks, nil
}

// GetForOwner implements store.TaskStore.GetForOwner.
// The owner check is part of the lookup itself, not a separate
// authorization step.
func (s *PostgresTaskStore) GetForOwner(ctx context.Context, id, ownerID int64) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, status, time_logged, owner_id, created_at
		FROM tasks
		WHERE id = $1 AND owner_id = $2
	`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found",
				slog.Int64("task_id", id),
				slog.Int64("owner_id", ownerID))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, MapError(err)
	}

	return task, nil
}

// Update implements store.TaskStore.Update.
// Only the mutable fields are written; owner and creation time are fixed
// for the task's lifetime.
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("task_id", task.ID))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE tasks
		SET title = $1, status = $2, time_logged = $3
		WHERE id = $4 AND owner_id = $5
	`

	result, err := s.db.ExecContext(ctx, query,
		task.Title,
		string(task.Status),
		task.TimeLogged,
		task.ID,
		task.OwnerID,
	)
	if err != nil {
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", task.ID))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrTaskNotFound); err != nil {
		log.Debug("task not found during update",
			slog.Int64("task_id", task.ID),
			slog.Int64("owner_id", task.OwnerID))
		return err
	}

	log.Debug("task updated", slog.Int64("task_id", task.ID))
	return nil
}

// Delete implements store.TaskStore.Delete. Removal is permanent.
func (s *PostgresTaskStore) Delete(ctx context.Context, id, ownerID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM tasks
		WHERE id = $1 AND owner_id = $2
	`

	result, err := s.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrTaskNotFound); err != nil {
		log.Debug("task not found during delete",
			slog.Int64("task_id", id),
			slog.Int64("owner_id", ownerID))
		return err
	}

	log.Debug("task deleted", slog.Int64("task_id", id))
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var task domain.Task
	var status string

	err := row.Scan(
		&task.ID,
		&task.Title,
		&status,
		&task.TimeLogged,
		&task.OwnerID,
		&task.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	task.Status = domain.TaskStatus(status)
	return &task, nil
}
