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

// UserService handles business logic related to users and their body parameters.
type UserService struct {
	users   repositories.UserRepository
	emitter *events.Emitter
	metrics *metrics.Metrics
}

// NewUserService creates a new UserService. emitter and m may be nil.
func NewUserService(users repositories.UserRepository, emitter *events.Emitter, m *metrics.Metrics) *UserService {
	return &UserService{
		users:   users,
		emitter: emitter,
		metrics: m,
	}
}

// CreateUser registers a user, optionally with telegram credentials.
func (s *UserService) CreateUser(ctx context.Context, req schemas.UserCreate) (*models.User, error) {
	if err := schemas.Validate(req); err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
	}
	if tc := req.TelegramCredentials; tc != nil {
		user.TelegramCredentials = &models.UserTelegramCredentials{
			TelegramID:       tc.TelegramID,
			TelegramUsername: tc.TelegramUsername,
		}
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.metrics.RecordWrite("user")
	s.emitter.Emit(ctx, events.UserCreated, schemas.NewUserResponse(user))
	return user, nil
}

// AddBodyParameters appends one measurement to the user's history.
func (s *UserService) AddBodyParameters(ctx context.Context, userID uint, req schemas.BodyParametersCreate) (*models.UserBodyParameters, error) {
	if err := schemas.Validate(req); err != nil {
		return nil, err
	}

	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("user with ID %d: %w", userID, repositories.ErrNotFound)
	}

	params := &models.UserBodyParameters{
		UserID:   userID,
		WeightKg: *req.WeightKg,
		HeightCm: *req.HeightCm,
		AgeYr:    *req.AgeYr,
	}
	if err := s.users.AddBodyParameters(ctx, params); err != nil {
		return nil, err
	}

	s.metrics.RecordWrite("body_parameters")
	s.emitter.Emit(ctx, events.BodyParametersAdded, map[string]interface{}{
		"user_id":    userID,
		"weight_kg":  params.WeightKg,
		"height_cm":  params.HeightCm,
		"age_yr":     params.AgeYr,
		"created_at": params.CreatedAt.UTC(),
	})
	return params, nil
}

// GetUser finds one user by id, telegram id or both. A filter without any
// selector is rejected before storage is touched.
func (s *UserService) GetUser(ctx context.Context, filter schemas.UserFilter, include schemas.UserInclude) (*models.User, error) {
	if err := schemas.Validate(filter); err != nil {
		return nil, err
	}
	return s.users.Find(ctx, filter, include)
}

// GetUsers lists users one page at a time.
func (s *UserService) GetUsers(ctx context.Context, include schemas.UserInclude, nav schemas.Navigation) ([]models.User, error) {
	if err := schemas.Validate(nav); err != nil {
		return nil, err
	}
	return s.users.List(ctx, include, nav)
}
