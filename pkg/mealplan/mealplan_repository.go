package mealplan

import (
	"MealGo-Backend/entities"
	"MealGo-Backend/pkg/store"
	"context"

	"github.com/google/uuid"
)

type (
	MealPlanRepository interface {
		GetMealPlans(ctx context.Context, userID uuid.UUID) ([]entities.MealPlan, error)
		GetMealPlanByID(ctx context.Context, id uuid.UUID) (*entities.MealPlan, error)
		CreateMealPlan(ctx context.Context, plan *entities.MealPlan) (*entities.MealPlan, error)
		UpdateMealPlan(ctx context.Context, id uuid.UUID, fields map[store.Column]any) (*entities.MealPlan, error)
		DeleteMealPlan(ctx context.Context, id uuid.UUID) error
		GetPlanRecipes(ctx context.Context, planID uuid.UUID) ([]entities.PlanRecipe, error)
		AddPlanRecipe(ctx context.Context, row *entities.PlanRecipe) error
		RemovePlanRecipe(ctx context.Context, planID, recipeID uuid.UUID, mealType string) (int, error)
	}

	mealPlanRepository struct {
		store *store.Facade
	}
)

func NewMealPlanRepository(s *store.Facade) MealPlanRepository {
	return &mealPlanRepository{store: s}
}

func (r *mealPlanRepository) GetMealPlans(ctx context.Context, userID uuid.UUID) ([]entities.MealPlan, error) {
	return store.ListWhere[entities.MealPlan](ctx, r.store, store.ColUserID, userID, store.ColCreatedAt, false)
}

func (r *mealPlanRepository) GetMealPlanByID(ctx context.Context, id uuid.UUID) (*entities.MealPlan, error) {
	return store.Get[entities.MealPlan](ctx, r.store, store.ColID, id)
}

func (r *mealPlanRepository) CreateMealPlan(ctx context.Context, plan *entities.MealPlan) (*entities.MealPlan, error) {
	return store.Insert(ctx, r.store, plan)
}

func (r *mealPlanRepository) UpdateMealPlan(ctx context.Context, id uuid.UUID, fields map[store.Column]any) (*entities.MealPlan, error) {
	return store.Update[entities.MealPlan](ctx, r.store, store.ColID, id, fields)
}

func (r *mealPlanRepository) DeleteMealPlan(ctx context.Context, id uuid.UUID) error {
	return r.store.DeleteMealPlan(ctx, id)
}

func (r *mealPlanRepository) GetPlanRecipes(ctx context.Context, planID uuid.UUID) ([]entities.PlanRecipe, error) {
	return r.store.PlanRecipes(ctx, planID)
}

func (r *mealPlanRepository) AddPlanRecipe(ctx context.Context, row *entities.PlanRecipe) error {
	_, err := store.Insert(ctx, r.store, row)
	return err
}

func (r *mealPlanRepository) RemovePlanRecipe(ctx context.Context, planID, recipeID uuid.UUID, mealType string) (int, error) {
	rows, err := store.DeleteMatch[entities.PlanRecipe](ctx, r.store, map[store.Column]any{
		store.ColPlanID:   planID,
		store.ColRecipeID: recipeID,
		store.ColMealType: mealType,
	})
	return len(rows), err
}
