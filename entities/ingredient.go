package entities

import (
	"github.com/google/uuid"
)

type Ingredient struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name          string    `gorm:"not null;uniqueIndex" json:"name"`
	Category      string    `json:"category"`
	Calories      float64   `json:"calories"`
	Protein       float64   `json:"protein"`
	Carbohydrates float64   `json:"carbohydrates"`
	Fat           float64   `json:"fat"`

	Timestamp
}

func (Ingredient) TableName() string {
	return "ingredients"
}
