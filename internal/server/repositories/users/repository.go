// Package users provides persistence for user identity records.
package users

import (
	"context"

	"github.com/dmitrijs2005/taskboard/internal/server/models"
)

// Repository is the credential store contract.
//
// GetByEmail is the only accessor that returns the password hash; it exists
// for the login path. GetByID never populates the hash.
type Repository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}
