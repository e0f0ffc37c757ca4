package models

// User is the owner of meals, body parameter history and telegram credentials.
// Username and email are optional but unique when present.
type User struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	Username *string `json:"username" gorm:"uniqueIndex;type:varchar(100)"`
	Email    *string `json:"email" gorm:"uniqueIndex;type:varchar(255)"`

	Meals               []Meal                   `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE"`
	BodyParameters      []UserBodyParameters     `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE"`
	TelegramCredentials *UserTelegramCredentials `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE"`
}

// TableName pins the table name used by every driver.
func (User) TableName() string {
	return "users"
}
