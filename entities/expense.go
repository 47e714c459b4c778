package entities

import (
	"github.com/google/uuid"
	"time"
)

type Expense struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount    float64   `gorm:"not null" json:"amount"`
	SpentAt   time.Time `gorm:"type:timestamp with time zone;not null;index" json:"spent_at"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `gorm:"type:timestamp with time zone;not null" json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (Expense) TableName() string {
	return "expenses"
}
