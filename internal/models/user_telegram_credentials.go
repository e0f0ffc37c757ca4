package models

// UserTelegramCredentials links a user to a Telegram account.
// TelegramID is assigned by Telegram, so it is not auto-incremented.
type UserTelegramCredentials struct {
	TelegramID       int64  `json:"telegram_id" gorm:"primaryKey;autoIncrement:false"`
	TelegramUsername string `json:"telegram_username" gorm:"type:varchar(64);not null"`
	UserID           uint   `json:"-" gorm:"uniqueIndex;not null"`
}

func (UserTelegramCredentials) TableName() string {
	return "user_telegram_credentials"
}
