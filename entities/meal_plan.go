package entities

import (
	"github.com/google/uuid"
	"time"
)

type MealPlan struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string    `gorm:"not null" json:"title"`
	StartDate time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null" json:"end_date"`

	User    *User         `gorm:"foreignKey:UserID" json:"-"`
	Recipes []*PlanRecipe `gorm:"foreignKey:PlanID" json:"recipes,omitempty"`
	Timestamp
}

func (MealPlan) TableName() string {
	return "meal_plans"
}

type PlanRecipe struct {
	PlanID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"plan_id"`
	RecipeID uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	MealType string    `gorm:"primaryKey" json:"meal_type"`

	Plan   *MealPlan `gorm:"foreignKey:PlanID" json:"-"`
	Recipe *Recipe   `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
}

func (PlanRecipe) TableName() string {
	return "plan_recipes"
}
