package repositories

import (
	"context"

	"ctws/internal/models"
	"ctws/internal/schemas"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	// Create inserts the user and, when set, its telegram credentials in one transaction.
	Create(ctx context.Context, user *models.User) error
	Find(ctx context.Context, filter schemas.UserFilter, include schemas.UserInclude) (*models.User, error)
	List(ctx context.Context, include schemas.UserInclude, nav schemas.Navigation) ([]models.User, error)
	Exists(ctx context.Context, id uint) (bool, error)
	AddBodyParameters(ctx context.Context, params *models.UserBodyParameters) error
}
