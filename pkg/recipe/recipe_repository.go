package recipe

import (
	"MealGo-Backend/entities"
	"MealGo-Backend/pkg/store"
	"context"

	"github.com/google/uuid"
)

type (
	RecipeRepository interface {
		GetRecipes(ctx context.Context) ([]entities.Recipe, error)
		GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error)
		CreateRecipe(ctx context.Context, recipe *entities.Recipe, items []entities.RecipeIngredient) (*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, id uuid.UUID, fields map[store.Column]any, items *[]entities.RecipeIngredient) error
		DeleteRecipe(ctx context.Context, id uuid.UUID) error
		GetFavoriteRecipeIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
		IsFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error)
		AddFavorite(ctx context.Context, userID, recipeID uuid.UUID) error
		RemoveFavorite(ctx context.Context, userID, recipeID uuid.UUID) error
		UpsertRating(ctx context.Context, rating *entities.Rating) (*entities.Rating, error)
		GetRatingSummary(ctx context.Context, recipeID uuid.UUID) (*store.RatingSummary, error)
	}

	recipeRepository struct {
		store *store.Facade
	}
)

func NewRecipeRepository(s *store.Facade) RecipeRepository {
	return &recipeRepository{store: s}
}

func (r *recipeRepository) GetRecipes(ctx context.Context) ([]entities.Recipe, error) {
	return r.store.RecipesWithIngredients(ctx)
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error) {
	return r.store.RecipeWithIngredients(ctx, id)
}

// CreateRecipe inserts the recipe and its ingredient rows in one transaction.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe, items []entities.RecipeIngredient) (*entities.Recipe, error) {
	err := r.store.Transaction(ctx, func(tx *store.Facade) error {
		if _, err := store.Insert(ctx, tx, recipe); err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.ReplaceRecipeIngredients(ctx, recipe.ID, items)
	})
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

// UpdateRecipe applies fields and, when items is non-nil, swaps the ingredient
// set. Both happen in one transaction.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, id uuid.UUID, fields map[store.Column]any, items *[]entities.RecipeIngredient) error {
	return r.store.Transaction(ctx, func(tx *store.Facade) error {
		if len(fields) > 0 {
			if _, err := store.Update[entities.Recipe](ctx, tx, store.ColID, id, fields); err != nil {
				return err
			}
		}
		if items == nil {
			return nil
		}
		return tx.ReplaceRecipeIngredients(ctx, id, *items)
	})
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	return r.store.DeleteRecipe(ctx, id)
}

func (r *recipeRepository) GetFavoriteRecipeIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return r.store.FavoriteRecipeIDs(ctx, userID)
}

func (r *recipeRepository) IsFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	return r.store.IsFavorite(ctx, userID, recipeID)
}

func (r *recipeRepository) AddFavorite(ctx context.Context, userID, recipeID uuid.UUID) error {
	_, err := store.Insert(ctx, r.store, &entities.Favorite{UserID: userID, RecipeID: recipeID})
	if store.IsDuplicate(err) {
		return nil
	}
	return err
}

func (r *recipeRepository) RemoveFavorite(ctx context.Context, userID, recipeID uuid.UUID) error {
	_, err := store.DeleteMatch[entities.Favorite](ctx, r.store, map[store.Column]any{
		store.ColUserID:   userID,
		store.ColRecipeID: recipeID,
	})
	return err
}

func (r *recipeRepository) UpsertRating(ctx context.Context, rating *entities.Rating) (*entities.Rating, error) {
	return r.store.UpsertRating(ctx, rating)
}

func (r *recipeRepository) GetRatingSummary(ctx context.Context, recipeID uuid.UUID) (*store.RatingSummary, error) {
	return r.store.RatingSummary(ctx, recipeID)
}
