package services

import (
	"context"
	"fmt"

	"ctws/internal/events"
	"ctws/internal/metrics"
	"ctws/internal/models"
	"ctws/internal/repositories"
	"ctws/internal/schemas"
)

// MealService handles business logic related to meals.
type MealService struct {
	meals   repositories.MealRepository
	users   repositories.UserRepository
	emitter *events.Emitter
	metrics *metrics.Metrics
}

// NewMealService creates a new MealService. emitter and m may be nil.
func NewMealService(meals repositories.MealRepository, users repositories.UserRepository, emitter *events.Emitter, m *metrics.Metrics) *MealService {
	return &MealService{
		meals:   meals,
		users:   users,
		emitter: emitter,
		metrics: m,
	}
}

// GetMeals lists meals matching filter. Filter and page are checked before
// storage is touched.
func (s *MealService) GetMeals(ctx context.Context, filter schemas.MealFilter, nav schemas.Navigation) ([]models.Meal, error) {
	if err := schemas.Validate(nav); err != nil {
		return nil, err
	}
	if err := schemas.Validate(filter); err != nil {
		return nil, err
	}
	return s.meals.List(ctx, filter, nav)
}

// AddMeal stores a meal for an existing user.
func (s *MealService) AddMeal(ctx context.Context, req schemas.MealCreate) (*models.Meal, error) {
	if err := schemas.Validate(req); err != nil {
		return nil, err
	}

	exists, err := s.users.Exists(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("user with ID %d: %w", req.UserID, repositories.ErrNotFound)
	}

	meal := req.Model(req.UserID)
	if err := s.meals.Create(ctx, meal); err != nil {
		return nil, err
	}

	s.metrics.RecordWrite("meal")
	s.emitter.Emit(ctx, events.MealCreated, schemas.NewMealResponse(meal))
	return meal, nil
}

// GetMeal retrieves one meal. Soft-deleted meals are hidden unless includeDeleted is set.
func (s *MealService) GetMeal(ctx context.Context, id uint, includeDeleted bool) (*models.Meal, error) {
	return s.meals.GetByID(ctx, id, includeDeleted)
}

// DeleteMeal soft-deletes a visible meal and returns it. A meal that is
// missing or already deleted is reported as not found.
func (s *MealService) DeleteMeal(ctx context.Context, id uint) (*models.Meal, error) {
	meal, err := s.meals.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if err := s.meals.MarkDeleted(ctx, meal); err != nil {
		return nil, err
	}

	s.emitter.Emit(ctx, events.MealDeleted, schemas.NewMealResponse(meal))
	return meal, nil
}
