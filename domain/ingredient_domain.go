package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	MessageSuccessGetIngredients    = "ingredients retrieved successfully"
	MessageSuccessAddIngredient     = "ingredient added successfully"
	MessageSuccessUpdateIngredient  = "ingredient updated successfully"
	MessageSuccessDeleteIngredient  = "ingredient deleted successfully"
	MessageSuccessGetIngredientUses = "ingredient usage retrieved successfully"

	MessageFailedGetIngredients    = "failed to retrieve ingredients"
	MessageFailedAddIngredient     = "failed to add ingredient"
	MessageFailedUpdateIngredient  = "failed to update ingredient"
	MessageFailedDeleteIngredient  = "failed to delete ingredient"
	MessageFailedGetIngredientUses = "failed to retrieve ingredient usage"

	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrIngredientExists   = errors.New("ingredient already exists")
	ErrIngredientInUse    = errors.New("ingredient is used by recipes")
)

// IngredientInUseError names the recipes blocking an ingredient delete.
type IngredientInUseError struct {
	Recipes []string
}

func (e *IngredientInUseError) Error() string {
	return fmt.Sprintf("%s: %s", ErrIngredientInUse, strings.Join(e.Recipes, ", "))
}

func (e *IngredientInUseError) Unwrap() error {
	return ErrIngredientInUse
}

type (
	AddIngredientRequest struct {
		Name          string  `json:"name" validate:"required,max=120"`
		Category      string  `json:"category" validate:"omitempty,max=60"`
		Calories      float64 `json:"calories" validate:"gte=0"`
		Protein       float64 `json:"protein" validate:"gte=0"`
		Carbohydrates float64 `json:"carbohydrates" validate:"gte=0"`
		Fat           float64 `json:"fat" validate:"gte=0"`
	}

	UpdateIngredientRequest struct {
		Name          *string  `json:"name" validate:"omitempty,min=1,max=120"`
		Category      *string  `json:"category" validate:"omitempty,max=60"`
		Calories      *float64 `json:"calories" validate:"omitempty,gte=0"`
		Protein       *float64 `json:"protein" validate:"omitempty,gte=0"`
		Carbohydrates *float64 `json:"carbohydrates" validate:"omitempty,gte=0"`
		Fat           *float64 `json:"fat" validate:"omitempty,gte=0"`
	}

	IngredientResponse struct {
		ID            string  `json:"id"`
		Name          string  `json:"name"`
		Category      string  `json:"category"`
		Calories      float64 `json:"calories"`
		Protein       float64 `json:"protein"`
		Carbohydrates float64 `json:"carbohydrates"`
		Fat           float64 `json:"fat"`
	}

	IngredientUsage struct {
		RecipeID   string  `json:"recipe_id"`
		RecipeName string  `json:"recipe_name"`
		Quantity   float64 `json:"quantity"`
		Unit       string  `json:"unit"`
	}
)
