package repositories

import (
	"context"

	"ctws/internal/models"
	"ctws/internal/schemas"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create inserts a new user. Credentials are inserted explicitly rather than
// through association saving, which would upsert an existing telegram id.
func (r *GORMUserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(user).Error; err != nil {
			return translateError(err, "failed to create user")
		}
		if creds := user.TelegramCredentials; creds != nil {
			creds.UserID = user.ID
			if err := tx.Create(creds).Error; err != nil {
				return translateError(err, "failed to create telegram credentials %d", creds.TelegramID)
			}
		}
		return nil
	})
}

// Find retrieves a single user by id, telegram id, or both.
func (r *GORMUserRepository) Find(ctx context.Context, filter schemas.UserFilter, include schemas.UserInclude) (*models.User, error) {
	q := withIncludes(r.db.WithContext(ctx), include)
	if filter.HasID() {
		q = q.Where("users.id = ?", *filter.ID)
	}
	if filter.HasTelegramID() {
		q = q.Joins("JOIN user_telegram_credentials ON user_telegram_credentials.user_id = users.id").
			Where("user_telegram_credentials.telegram_id = ?", *filter.TelegramID)
	}

	var user models.User
	if err := q.First(&user).Error; err != nil {
		return nil, translateError(err, "failed to get user")
	}
	return &user, nil
}

// List returns one page of users ordered by id.
func (r *GORMUserRepository) List(ctx context.Context, include schemas.UserInclude, nav schemas.Navigation) ([]models.User, error) {
	var users []models.User
	err := withIncludes(r.db.WithContext(ctx), include).
		Order("users.id ASC").
		Offset(nav.Offset).
		Limit(nav.Limit).
		Find(&users).Error
	if err != nil {
		return nil, translateError(err, "failed to list users")
	}
	return users, nil
}

// Exists reports whether a user with the given id is stored.
func (r *GORMUserRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, translateError(err, "failed to check user %d", id)
	}
	return count > 0, nil
}

// AddBodyParameters appends an entry to a user's measurement history.
func (r *GORMUserRepository) AddBodyParameters(ctx context.Context, params *models.UserBodyParameters) error {
	if err := r.db.WithContext(ctx).Create(params).Error; err != nil {
		return translateError(err, "failed to add body parameters for user %d", params.UserID)
	}
	return nil
}

// withIncludes preloads the relations requested by include.
func withIncludes(db *gorm.DB, include schemas.UserInclude) *gorm.DB {
	if include.BodyParams {
		db = db.Preload("BodyParameters", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("user_body_parameters.id ASC")
		})
	}
	if include.TelegramCredentials {
		db = db.Preload("TelegramCredentials")
	}
	return db
}
