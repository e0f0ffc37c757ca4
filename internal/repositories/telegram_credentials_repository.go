package repositories

import (
	"context"

	"ctws/internal/models"

	"gorm.io/gorm"
)

// TelegramCredentialsRepository defines the interface for telegram credential data access.
type TelegramCredentialsRepository interface {
	Create(ctx context.Context, creds *models.UserTelegramCredentials) error
}

// GORMTelegramCredentialsRepository is a GORM implementation of TelegramCredentialsRepository.
type GORMTelegramCredentialsRepository struct {
	db *gorm.DB
}

func NewGORMTelegramCredentialsRepository(db *gorm.DB) *GORMTelegramCredentialsRepository {
	return &GORMTelegramCredentialsRepository{db: db}
}

// Create links a telegram account to a user. A taken telegram id, or a user
// that already has credentials, is reported as ErrConflict.
func (r *GORMTelegramCredentialsRepository) Create(ctx context.Context, creds *models.UserTelegramCredentials) error {
	if err := r.db.WithContext(ctx).Create(creds).Error; err != nil {
		return translateError(err, "failed to create telegram credentials %d", creds.TelegramID)
	}
	return nil
}
