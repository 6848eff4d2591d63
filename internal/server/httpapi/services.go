package httpapi

import (
	"context"

	"github.com/dmitrijs2005/taskboard/internal/server/models"
	"github.com/dmitrijs2005/taskboard/internal/server/services"
)

// UserService is the identity surface the HTTP layer needs. Implemented by
// services.UserService.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, update services.ProfileUpdate) (*models.User, error)
}

// TaskService is the task surface the HTTP layer needs. Implemented by
// services.TaskService.
type TaskService interface {
	Create(ctx context.Context, userID, title, description string, status models.TaskStatus, priority models.TaskPriority) (*models.Task, error)
	List(ctx context.Context, userID string, filter models.TaskFilter) ([]*models.Task, error)
	Get(ctx context.Context, userID, id string) (*models.Task, error)
	Update(ctx context.Context, userID, id string, update services.TaskUpdate) (*models.Task, error)
	Delete(ctx context.Context, userID, id string) error
	DeleteBatch(ctx context.Context, userID string, ids []string) (int64, error)
	Stats(ctx context.Context, userID string) (*models.TaskStats, error)
}
