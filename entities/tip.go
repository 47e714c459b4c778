package entities

import (
	"github.com/google/uuid"
)

type Tip struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"not null;index" json:"category"`

	Timestamp
}

func (Tip) TableName() string {
	return "tips"
}
