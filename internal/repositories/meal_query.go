package repositories

import (
	"ctws/internal/models"
	"ctws/internal/schemas"

	"gorm.io/gorm"
)

// ApplyMealFilter is the only place meal listings are built. Predicates are
// applied in a fixed order: visibility, owner, lower bound, upper bound; then
// ordering by id and the page window. Both date bounds are exclusive.
func ApplyMealFilter(db *gorm.DB, filter schemas.MealFilter, nav schemas.Navigation) *gorm.DB {
	q := db.Model(&models.Meal{})
	if !filter.IncludeDeleted {
		q = q.Where("meals.is_deleted = ?", false)
	}
	if filter.UserID != nil {
		q = q.Where("meals.user_id = ?", *filter.UserID)
	}
	if filter.DateGt != nil {
		q = q.Where("meals.created_at > ?", filter.DateGt.UTC())
	}
	if filter.DateLt != nil {
		q = q.Where("meals.created_at < ?", filter.DateLt.UTC())
	}
	return q.Order("meals.id ASC").Offset(nav.Offset).Limit(nav.Limit)
}
