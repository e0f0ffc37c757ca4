package schemas

import (
	"time"

	"ctws/internal/models"

	"github.com/go-playground/validator/v10"
)

// UserFilter selects a single user by id, by telegram id, or both.
type UserFilter struct {
	ID         *uint  `json:"id" query:"id"`
	TelegramID *int64 `json:"telegram_id" query:"telegram_id"`
}

// userFilterRules requires at least one selector. Zero counts as absent.
func userFilterRules(sl validator.StructLevel) {
	f := sl.Current().Interface().(UserFilter)
	if !f.HasID() && !f.HasTelegramID() {
		sl.ReportError(f.ID, "id", "ID", tagSelector, "")
	}
}

func (f UserFilter) HasID() bool {
	return f.ID != nil && *f.ID != 0
}

func (f UserFilter) HasTelegramID() bool {
	return f.TelegramID != nil && *f.TelegramID != 0
}

// UserInclude controls which related records are loaded with a user.
type UserInclude struct {
	BodyParams          bool
	TelegramCredentials bool
}

// IncludeAll loads every relation.
func IncludeAll() UserInclude {
	return UserInclude{BodyParams: true, TelegramCredentials: true}
}

// UserIncludeQuery is the raw query-string form of UserInclude; absent flags
// default to true.
type UserIncludeQuery struct {
	BodyParams          *bool `query:"include_body_params"`
	TelegramCredentials *bool `query:"include_telegram_credentials"`
}

func (q UserIncludeQuery) Include() UserInclude {
	inc := IncludeAll()
	if q.BodyParams != nil {
		inc.BodyParams = *q.BodyParams
	}
	if q.TelegramCredentials != nil {
		inc.TelegramCredentials = *q.TelegramCredentials
	}
	return inc
}

// UserCreate is the request body for registering a user.
type UserCreate struct {
	Username            *string                    `json:"username" validate:"omitempty,min=1,max=100"`
	Email               *string                    `json:"email" validate:"omitempty,min=1,max=255"`
	TelegramCredentials *TelegramCredentialsCreate `json:"telegram_credentials"`
}

// TelegramCredentialsCreate links a Telegram account to a user.
type TelegramCredentialsCreate struct {
	TelegramID       int64  `json:"telegram_id" validate:"required,gt=0"`
	TelegramUsername string `json:"telegram_username" validate:"max=64"`
}

// TelegramCredentials is the wire form of stored credentials.
type TelegramCredentials struct {
	TelegramID       int64  `json:"telegram_id"`
	TelegramUsername string `json:"telegram_username"`
}

func NewTelegramCredentials(c *models.UserTelegramCredentials) *TelegramCredentials {
	if c == nil {
		return nil
	}
	return &TelegramCredentials{
		TelegramID:       c.TelegramID,
		TelegramUsername: c.TelegramUsername,
	}
}

// BodyParametersCreate is one new body measurement.
type BodyParametersCreate struct {
	WeightKg *float64 `json:"weight_kg" validate:"required,gt=0"`
	HeightCm *float64 `json:"height_cm" validate:"required,gt=0"`
	AgeYr    *int     `json:"age_yr" validate:"required,gt=0"`
}

// BodyParameters is the wire form of one history entry.
type BodyParameters struct {
	WeightKg  float64   `json:"weight_kg"`
	HeightCm  float64   `json:"height_cm"`
	AgeYr     int       `json:"age_yr"`
	CreatedAt time.Time `json:"created_at"`
}

// UserResponse is the wire form of a user with whichever relations were loaded.
type UserResponse struct {
	ID                    uint                 `json:"id"`
	Username              *string              `json:"username"`
	Email                 *string              `json:"email"`
	TelegramCredentials   *TelegramCredentials `json:"telegram_credentials"`
	BodyParametersHistory []BodyParameters     `json:"body_parameters_history"`
}

func NewUserResponse(u *models.User) UserResponse {
	history := make([]BodyParameters, 0, len(u.BodyParameters))
	for _, p := range u.BodyParameters {
		history = append(history, BodyParameters{
			WeightKg:  p.WeightKg,
			HeightCm:  p.HeightCm,
			AgeYr:     p.AgeYr,
			CreatedAt: p.CreatedAt.UTC(),
		})
	}
	return UserResponse{
		ID:                    u.ID,
		Username:              u.Username,
		Email:                 u.Email,
		TelegramCredentials:   NewTelegramCredentials(u.TelegramCredentials),
		BodyParametersHistory: history,
	}
}

func NewUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}

// Echo is the body accepted and returned by the echo endpoint.
type Echo struct {
	Message string `json:"message" validate:"required"`
}
