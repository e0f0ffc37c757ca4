package services_test

import (
	"context"

	"ctws/internal/models"
	"ctws/internal/schemas"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Find(ctx context.Context, filter schemas.UserFilter, include schemas.UserInclude) (*models.User, error) {
	args := m.Called(ctx, filter, include)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, include schemas.UserInclude, nav schemas.Navigation) ([]models.User, error) {
	args := m.Called(ctx, include, nav)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) AddBodyParameters(ctx context.Context, params *models.UserBodyParameters) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

// MockMealRepository is a mock implementation of repositories.MealRepository
type MockMealRepository struct {
	mock.Mock
}

func (m *MockMealRepository) List(ctx context.Context, filter schemas.MealFilter, nav schemas.Navigation) ([]models.Meal, error) {
	args := m.Called(ctx, filter, nav)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Meal), args.Error(1)
}

func (m *MockMealRepository) Create(ctx context.Context, meal *models.Meal) error {
	args := m.Called(ctx, meal)
	return args.Error(0)
}

func (m *MockMealRepository) GetByID(ctx context.Context, id uint, includeDeleted bool) (*models.Meal, error) {
	args := m.Called(ctx, id, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meal), args.Error(1)
}

func (m *MockMealRepository) MarkDeleted(ctx context.Context, meal *models.Meal) error {
	args := m.Called(ctx, meal)
	return args.Error(0)
}

// MockTelegramCredentialsRepository is a mock implementation of repositories.TelegramCredentialsRepository
type MockTelegramCredentialsRepository struct {
	mock.Mock
}

func (m *MockTelegramCredentialsRepository) Create(ctx context.Context, creds *models.UserTelegramCredentials) error {
	args := m.Called(ctx, creds)
	return args.Error(0)
}

// MockPublisher is a mock implementation of events.Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(routingKey string, body []byte) error {
	args := m.Called(routingKey, body)
	return args.Error(0)
}
