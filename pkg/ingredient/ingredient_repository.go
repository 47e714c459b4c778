package ingredient

import (
	"MealGo-Backend/entities"
	"MealGo-Backend/pkg/store"
	"context"

	"github.com/google/uuid"
)

type (
	IngredientRepository interface {
		GetIngredients(ctx context.Context) ([]entities.Ingredient, error)
		GetIngredientByID(ctx context.Context, id uuid.UUID) (*entities.Ingredient, error)
		CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) (*entities.Ingredient, error)
		UpdateIngredient(ctx context.Context, id uuid.UUID, fields map[store.Column]any) (*entities.Ingredient, error)
		DeleteIngredient(ctx context.Context, id uuid.UUID) (int, error)
		GetIngredientUsage(ctx context.Context, id uuid.UUID) ([]entities.RecipeIngredient, error)
	}

	ingredientRepository struct {
		store *store.Facade
	}
)

func NewIngredientRepository(s *store.Facade) IngredientRepository {
	return &ingredientRepository{store: s}
}

func (r *ingredientRepository) GetIngredients(ctx context.Context) ([]entities.Ingredient, error) {
	return store.ListOrdered[entities.Ingredient](ctx, r.store, store.ColName, true)
}

func (r *ingredientRepository) GetIngredientByID(ctx context.Context, id uuid.UUID) (*entities.Ingredient, error) {
	return store.Get[entities.Ingredient](ctx, r.store, store.ColID, id)
}

func (r *ingredientRepository) CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) (*entities.Ingredient, error) {
	return store.Insert(ctx, r.store, ingredient)
}

func (r *ingredientRepository) UpdateIngredient(ctx context.Context, id uuid.UUID, fields map[store.Column]any) (*entities.Ingredient, error) {
	return store.Update[entities.Ingredient](ctx, r.store, store.ColID, id, fields)
}

func (r *ingredientRepository) DeleteIngredient(ctx context.Context, id uuid.UUID) (int, error) {
	rows, err := store.Delete[entities.Ingredient](ctx, r.store, store.ColID, id)
	return len(rows), err
}

func (r *ingredientRepository) GetIngredientUsage(ctx context.Context, id uuid.UUID) ([]entities.RecipeIngredient, error) {
	return r.store.IngredientUsageInRecipes(ctx, id)
}
