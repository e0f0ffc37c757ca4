package models

import "time"

// UserBodyParameters is one snapshot in a user's append-only measurement history.
type UserBodyParameters struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	UserID    uint      `json:"-" gorm:"not null;index"`
	WeightKg  float64   `json:"weight_kg" gorm:"not null"`
	HeightCm  float64   `json:"height_cm" gorm:"not null"`
	AgeYr     int       `json:"age_yr" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
}

func (UserBodyParameters) TableName() string {
	return "user_body_parameters"
}
