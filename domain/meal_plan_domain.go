package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetMealPlans      = "meal plans retrieved successfully"
	MessageSuccessGetMealPlanDetail = "meal plan retrieved successfully"
	MessageSuccessSaveMealPlan      = "meal plan saved successfully"
	MessageSuccessDeleteMealPlan    = "meal plan deleted successfully"
	MessageSuccessAddPlanRecipe     = "recipe added to meal plan"
	MessageSuccessRemovePlanRecipe  = "recipe removed from meal plan"

	MessageFailedGetMealPlans      = "failed to retrieve meal plans"
	MessageFailedGetMealPlanDetail = "failed to retrieve meal plan"
	MessageFailedSaveMealPlan      = "failed to save meal plan"
	MessageFailedDeleteMealPlan    = "failed to delete meal plan"
	MessageFailedAddPlanRecipe     = "failed to add recipe to meal plan"
	MessageFailedRemovePlanRecipe  = "failed to remove recipe from meal plan"

	ErrMealPlanNotFound       = errors.New("meal plan not found")
	ErrUnauthorizedPlanAccess = errors.New("unauthorized access to meal plan")
	ErrInvalidDateRange       = errors.New("end date must not be before start date")
	ErrInvalidDate            = errors.New("dates must use the YYYY-MM-DD format")
	ErrInvalidMealType        = errors.New("invalid meal type")
	ErrPlanRecipeExists       = errors.New("recipe already planned for this meal")
	ErrPlanRecipeNotFound     = errors.New("recipe is not in this meal plan")
)

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealSnack     = "snack"
	MealDinner    = "dinner"
	MealOther     = "other"
)

var MealTypes = []string{MealBreakfast, MealLunch, MealSnack, MealDinner, MealOther}

func IsMealType(s string) bool {
	for _, m := range MealTypes {
		if m == s {
			return true
		}
	}
	return false
}

const DateLayout = "2006-01-02"

// ParseDate reads the leading YYYY-MM-DD of s, so full timestamps are accepted
// and truncated to their date.
func ParseDate(s string) (time.Time, error) {
	return ParseDateIn(s, time.UTC)
}

// ParseDateIn is ParseDate with the result at midnight in loc.
func ParseDateIn(s string, loc *time.Location) (time.Time, error) {
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

type (
	CreateMealPlanRequest struct {
		Title     string `json:"title" validate:"required,max=200"`
		StartDate string `json:"start_date" validate:"required"`
		EndDate   string `json:"end_date" validate:"required"`
	}

	UpdateMealPlanRequest struct {
		Title     *string `json:"title" validate:"omitempty,min=1,max=200"`
		StartDate *string `json:"start_date" validate:"omitempty"`
		EndDate   *string `json:"end_date" validate:"omitempty"`
	}

	PlanRecipeRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
		MealType string `json:"meal_type" validate:"required,oneof=breakfast lunch snack dinner other"`
	}

	PlanRecipe struct {
		RecipeID   string `json:"recipe_id"`
		RecipeName string `json:"recipe_name"`
		MealType   string `json:"meal_type"`
	}

	MealPlan struct {
		ID        string    `json:"id"`
		Title     string    `json:"title"`
		StartDate string    `json:"start_date"`
		EndDate   string    `json:"end_date"`
		CreatedAt time.Time `json:"created_at"`
	}

	MealPlanDetail struct {
		MealPlan
		Recipes []PlanRecipe `json:"recipes"`
	}
)
