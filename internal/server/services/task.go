package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/server/models"
	"github.com/dmitrijs2005/taskboard/internal/server/repositories/repomanager"
)

// recentTaskLimit caps the "most recent" slice in Stats.
const recentTaskLimit = 5

// TaskUpdate carries a partial task change; nil fields are untouched.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *models.TaskStatus
	Priority    *models.TaskPriority
}

// TaskService implements owner-scoped task operations. The owner id always
// comes from the authenticated identity resolved by the gateway; it is a
// required argument on every method and is never taken from client input.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

// Create stores a new task for userID. Empty status and priority fall back
// to the defaults (pending, medium).
func (s *TaskService) Create(ctx context.Context, userID, title, description string, status models.TaskStatus, priority models.TaskPriority) (*models.Task, error) {
	if status == "" {
		status = models.TaskStatusPending
	}
	if priority == "" {
		priority = models.TaskPriorityMedium
	}

	now := time.Now().UTC()
	task := &models.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Status:      status,
		Priority:    priority,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	repo := s.repomanager.Tasks(s.db)
	if err := repo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}

	return task, nil
}

// List returns userID's tasks narrowed by filter.
func (s *TaskService) List(ctx context.Context, userID string, filter models.TaskFilter) ([]*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)

	result, err := repo.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}
	return result, nil
}

// Get returns the task only if userID owns it; otherwise common.ErrNotFound.
func (s *TaskService) Get(ctx context.Context, userID, id string) (*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)

	task, err := repo.Get(ctx, id, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error loading task: %w", err)
	}
	return task, nil
}

// Update applies a partial change to a task userID owns. A task owned by
// someone else reads as common.ErrNotFound, same as a missing id.
func (s *TaskService) Update(ctx context.Context, userID, id string, update TaskUpdate) (*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)

	task, err := repo.Get(ctx, id, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error loading task: %w", err)
	}

	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.Status != nil {
		task.Status = *update.Status
	}
	if update.Priority != nil {
		task.Priority = *update.Priority
	}
	task.UpdatedAt = time.Now().UTC()

	if err := repo.Update(ctx, task); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("error updating task: %w", err)
	}

	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, userID, id string) error {
	repo := s.repomanager.Tasks(s.db)

	if err := repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return fmt.Errorf("error deleting task: %w", err)
	}
	return nil
}

// DeleteBatch removes the caller-owned subset of ids and reports how many
// rows were deleted, which may be fewer than requested.
func (s *TaskService) DeleteBatch(ctx context.Context, userID string, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	repo := s.repomanager.Tasks(s.db)
	n, err := repo.DeleteBatch(ctx, ids, userID)
	if err != nil {
		return 0, fmt.Errorf("error deleting tasks: %w", err)
	}
	return n, nil
}

// Stats aggregates userID's tasks: total, per-status counts (all statuses
// present, zero-filled), and the five most recent tasks.
func (s *TaskService) Stats(ctx context.Context, userID string) (*models.TaskStats, error) {
	repo := s.repomanager.Tasks(s.db)

	counts, err := repo.CountByStatus(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error counting tasks: %w", err)
	}

	byStatus := map[models.TaskStatus]int64{
		models.TaskStatusPending:    0,
		models.TaskStatusInProgress: 0,
		models.TaskStatusCompleted:  0,
	}
	var total int64
	for status, n := range counts {
		byStatus[status] = n
		total += n
	}

	recent, err := repo.ListRecent(ctx, userID, recentTaskLimit)
	if err != nil {
		return nil, fmt.Errorf("error loading recent tasks: %w", err)
	}

	return &models.TaskStats{Total: total, ByStatus: byStatus, Recent: recent}, nil
}
