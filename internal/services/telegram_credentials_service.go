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

// TelegramCredentialsService links Telegram accounts to existing users.
type TelegramCredentialsService struct {
	creds   repositories.TelegramCredentialsRepository
	users   repositories.UserRepository
	emitter *events.Emitter
	metrics *metrics.Metrics
}

func NewTelegramCredentialsService(creds repositories.TelegramCredentialsRepository, users repositories.UserRepository, emitter *events.Emitter, m *metrics.Metrics) *TelegramCredentialsService {
	return &TelegramCredentialsService{
		creds:   creds,
		users:   users,
		emitter: emitter,
		metrics: m,
	}
}

// CreateTelegramCredentials attaches credentials to userID. A user has at
// most one set, and a telegram id belongs to at most one user.
func (s *TelegramCredentialsService) CreateTelegramCredentials(ctx context.Context, userID uint, req schemas.TelegramCredentialsCreate) (*models.UserTelegramCredentials, error) {
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

	creds := &models.UserTelegramCredentials{
		TelegramID:       req.TelegramID,
		TelegramUsername: req.TelegramUsername,
		UserID:           userID,
	}
	if err := s.creds.Create(ctx, creds); err != nil {
		return nil, err
	}

	s.metrics.RecordWrite("telegram_credentials")
	s.emitter.Emit(ctx, events.TelegramCredentialsCreated, map[string]interface{}{
		"user_id":           userID,
		"telegram_id":       creds.TelegramID,
		"telegram_username": creds.TelegramUsername,
	})
	return creds, nil
}
