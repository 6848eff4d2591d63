// Package tasks provides owner-scoped persistence for task records. Every
// query carries the owner's user id; a task belonging to another user is
// indistinguishable from a missing one.
package tasks

import (
	"context"

	"github.com/dmitrijs2005/taskboard/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, task *models.Task) error
	List(ctx context.Context, userID string, filter models.TaskFilter) ([]*models.Task, error)
	Get(ctx context.Context, id, userID string) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id, userID string) error
	// DeleteBatch removes the caller-owned subset of ids and returns how
	// many rows were actually deleted.
	DeleteBatch(ctx context.Context, ids []string, userID string) (int64, error)
	CountByStatus(ctx context.Context, userID string) (map[models.TaskStatus]int64, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]*models.Task, error)
}
