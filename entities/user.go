package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"not null;uniqueIndex" json:"email"`
	Password     string    `gorm:"not null" json:"-"`
	Phone        *string   `json:"phone,omitempty"`
	Role         string    `gorm:"not null;default:'user'" json:"role"`
	WeeklyBudget *float64  `json:"weekly_budget,omitempty"`

	Timestamp
}

func (User) TableName() string {
	return "users"
}
