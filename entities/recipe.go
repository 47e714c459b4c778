// File: entities/recipe.go
package entities

import (
	"github.com/google/uuid"
	"time"
)

type Recipe struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Name         string     `gorm:"not null" json:"name"`
	Instructions string     `gorm:"type:text;not null" json:"instructions"`
	PrepMinutes  *int       `json:"prep_minutes,omitempty"`
	Difficulty   string     `json:"difficulty"`
	ImageURL     string     `json:"image_url,omitempty"`

	User        *User               `gorm:"foreignKey:UserID" json:"-"`
	Ingredients []*RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients,omitempty"`
	Timestamp
}

func (Recipe) TableName() string {
	return "recipes"
}

// RecipeIngredient is the recipe ↔ ingredient association. The whole set of a
// recipe is replaced on every save.
type RecipeIngredient struct {
	RecipeID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	IngredientID uuid.UUID `gorm:"type:uuid;primaryKey" json:"ingredient_id"`
	Quantity     float64   `gorm:"not null" json:"quantity"`
	Unit         string    `gorm:"not null" json:"unit"`

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}

func (RecipeIngredient) TableName() string {
	return "recipe_ingredients"
}

type Favorite struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamp with time zone;not null" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID" json:"-"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"-"`
}

func (Favorite) TableName() string {
	return "favorites"
}

type Rating struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_ratings_user_recipe" json:"user_id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_ratings_user_recipe" json:"recipe_id"`
	Stars     int       `gorm:"not null;check:stars >= 1 AND stars <= 5" json:"stars"`
	Comment   *string   `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt time.Time `gorm:"type:timestamp with time zone;not null" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID" json:"-"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"-"`
}

func (Rating) TableName() string {
	return "ratings"
}
