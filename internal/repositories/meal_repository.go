package repositories

import (
	"context"

	"ctws/internal/models"
	"ctws/internal/schemas"
)

// MealRepository defines the interface for meal data access.
type MealRepository interface {
	List(ctx context.Context, filter schemas.MealFilter, nav schemas.Navigation) ([]models.Meal, error)
	Create(ctx context.Context, meal *models.Meal) error
	GetByID(ctx context.Context, id uint, includeDeleted bool) (*models.Meal, error)
	MarkDeleted(ctx context.Context, meal *models.Meal) error
}
