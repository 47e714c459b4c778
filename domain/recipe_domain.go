package domain

import (
	"errors"
	"mime/multipart"
	"strings"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessSaveRecipe      = "recipe saved successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessToggleFavorite  = "favorite updated successfully"
	MessageSuccessRateRecipe      = "recipe rated successfully"
	MessageSuccessUploadImage     = "recipe image uploaded successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedSaveRecipe      = "failed to save recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedToggleFavorite  = "failed to update favorite"
	MessageFailedRateRecipe      = "failed to rate recipe"
	MessageFailedUploadImage     = "failed to upload recipe image"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to recipe")
	ErrRecipeNameRequired       = errors.New("recipe name is required")
	ErrRecipeInstructions       = errors.New("recipe instructions are required")
	ErrInvalidStars             = errors.New("stars must be between 1 and 5")
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
	DifficultyOther  = "other"
)

var accentFolder = strings.NewReplacer("á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u")

// Checked in order, so "Dificultad media" is medium.
var difficultyKeywords = []struct {
	level    string
	keywords []string
}{
	{DifficultyEasy, []string{"facil", "easy", "sencill", "baja"}},
	{DifficultyMedium, []string{"media", "medio", "medium", "intermedi"}},
	{DifficultyHard, []string{"dificil", "hard", "alta", "avanzad"}},
}

// ClassifyDifficulty maps a free-text difficulty onto easy, medium or hard by
// keyword, ignoring case and accents. Anything unrecognised is other.
func ClassifyDifficulty(s string) string {
	folded := accentFolder.Replace(strings.ToLower(strings.TrimSpace(s)))
	for _, group := range difficultyKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(folded, kw) {
				return group.level
			}
		}
	}
	return DifficultyOther
}

type (
	RecipeIngredientRequest struct {
		IngredientID string  `json:"ingredient_id" validate:"required,uuid"`
		Quantity     float64 `json:"quantity" validate:"gte=0"`
		Unit         string  `json:"unit" validate:"max=32"`
	}

	CreateRecipeRequest struct {
		Name         string                    `json:"name" validate:"required,max=200"`
		Instructions string                    `json:"instructions" validate:"required"`
		PrepMinutes  *int                      `json:"prep_minutes" validate:"omitempty,gte=0"`
		Difficulty   string                    `json:"difficulty" validate:"omitempty,max=32"`
		Ingredients  []RecipeIngredientRequest `json:"ingredients" validate:"omitempty,dive"`
	}

	// UpdateRecipeRequest only touches the fields that are set. A non-nil
	// Ingredients replaces the whole ingredient list.
	UpdateRecipeRequest struct {
		Name         *string                    `json:"name" validate:"omitempty,min=1,max=200"`
		Instructions *string                    `json:"instructions" validate:"omitempty,min=1"`
		PrepMinutes  *int                       `json:"prep_minutes" validate:"omitempty,gte=0"`
		Difficulty   *string                    `json:"difficulty" validate:"omitempty,max=32"`
		Ingredients  *[]RecipeIngredientRequest `json:"ingredients" validate:"omitempty,dive"`
	}

	RateRecipeRequest struct {
		Stars   int     `json:"stars" validate:"required,min=1,max=5"`
		Comment *string `json:"comment" validate:"omitempty,max=1000"`
	}

	UploadRecipeImageRequest struct {
		RecipeID string                `json:"recipe_id" form:"recipe_id" validate:"required,uuid"`
		Image    *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	RecipeFilter struct {
		Query         string `query:"q"`
		FavoritesOnly bool   `query:"favorites"`
	}

	RecipeIngredient struct {
		IngredientID string  `json:"ingredient_id"`
		Name         string  `json:"name"`
		Quantity     float64 `json:"quantity"`
		Unit         string  `json:"unit"`
	}

	Recipe struct {
		ID              string             `json:"id"`
		Name            string             `json:"name"`
		Instructions    string             `json:"instructions"`
		PrepMinutes     *int               `json:"prep_minutes,omitempty"`
		Difficulty      string             `json:"difficulty"`
		DifficultyLevel string             `json:"difficulty_level"`
		ImageURL        string             `json:"image_url,omitempty"`
		OwnerID         string             `json:"owner_id,omitempty"`
		Ingredients     []RecipeIngredient `json:"ingredients"`
		IsFavorite      bool               `json:"is_favorite"`
		CreatedAt       time.Time          `json:"created_at"`
	}

	RatingSummary struct {
		Average float64 `json:"average"`
		Count   int64   `json:"count"`
	}

	RecipeDetail struct {
		Recipe
		Rating RatingSummary `json:"rating"`
	}

	RatingResponse struct {
		ID        string    `json:"id"`
		RecipeID  string    `json:"recipe_id"`
		Stars     int       `json:"stars"`
		Comment   *string   `json:"comment,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}
)
