package models

import "time"

// Meal is a single logged meal with its nutrition facts.
// Meals are never removed; IsDeleted hides them from regular reads.
type Meal struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Description *string   `json:"description"`
	Calories    int       `json:"calories" gorm:"not null"`
	Protein     float64   `json:"protein" gorm:"not null"` // grams
	Fat         float64   `json:"fat" gorm:"not null"`     // grams
	Carbs       float64   `json:"carbs" gorm:"not null"`   // grams
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	IsDeleted   bool      `json:"is_deleted" gorm:"not null;default:false;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null;index"`
}

func (Meal) TableName() string {
	return "meals"
}
