package repositories

import (
	"context"

	"ctws/internal/models"
	"ctws/internal/schemas"

	"gorm.io/gorm"
)

// GORMMealRepository is a GORM implementation of MealRepository.
type GORMMealRepository struct {
	db *gorm.DB
}

// NewGORMMealRepository creates a new instance of GORMMealRepository.
func NewGORMMealRepository(db *gorm.DB) *GORMMealRepository {
	return &GORMMealRepository{
		db: db,
	}
}

// List returns the meals matching filter, one page at a time.
func (r *GORMMealRepository) List(ctx context.Context, filter schemas.MealFilter, nav schemas.Navigation) ([]models.Meal, error) {
	meals := make([]models.Meal, 0)
	if err := ApplyMealFilter(r.db.WithContext(ctx), filter, nav).Find(&meals).Error; err != nil {
		return nil, translateError(err, "failed to list meals")
	}
	return meals, nil
}

// Create inserts a new meal. The creation time is assigned here.
func (r *GORMMealRepository) Create(ctx context.Context, meal *models.Meal) error {
	meal.IsDeleted = false
	if err := r.db.WithContext(ctx).Create(meal).Error; err != nil {
		return translateError(err, "failed to create meal")
	}
	return nil
}

// GetByID retrieves a meal. Soft-deleted meals are only returned when includeDeleted is set.
func (r *GORMMealRepository) GetByID(ctx context.Context, id uint, includeDeleted bool) (*models.Meal, error) {
	q := r.db.WithContext(ctx).Where("id = ?", id)
	if !includeDeleted {
		q = q.Where("is_deleted = ?", false)
	}

	var meal models.Meal
	if err := q.First(&meal).Error; err != nil {
		return nil, translateError(err, "meal with ID %d", id)
	}
	return &meal, nil
}

// MarkDeleted sets the soft-delete flag. The row itself is kept.
func (r *GORMMealRepository) MarkDeleted(ctx context.Context, meal *models.Meal) error {
	res := r.db.WithContext(ctx).Model(&models.Meal{}).Where("id = ?", meal.ID).Update("is_deleted", true)
	if res.Error != nil {
		return translateError(res.Error, "failed to delete meal %d", meal.ID)
	}
	if res.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, "meal with ID %d", meal.ID)
	}
	meal.IsDeleted = true
	return nil
}
