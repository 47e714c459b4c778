package store

import (
	"context"
	"errors"
	"time"

	"MealGo-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultWeeklyBudget is used when a user has no budget of their own.
const DefaultWeeklyBudget = 1200.0

type WeeklySpend struct {
	WeekStart time.Time `json:"week_start"`
	Budget    float64   `json:"budget"`
	Spent     float64   `json:"spent"`
}

func (w WeeklySpend) Remaining() float64 {
	return w.Budget - w.Spent
}

type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// RecipeWithIngredients loads one recipe with its association rows and the
// ingredient each of them points to.
func (f *Facade) RecipeWithIngredients(ctx context.Context, id uuid.UUID) (*entities.Recipe, error) {
	var recipe entities.Recipe
	err := f.conn(ctx).
		Preload("Ingredients.Ingredient").
		Where("id = ?", id).
		First(&recipe).Error
	observe(TableRecipes, "recipe_with_ingredients", err)
	if err != nil {
		return nil, translate(err)
	}
	return &recipe, nil
}

func (f *Facade) RecipesWithIngredients(ctx context.Context) ([]entities.Recipe, error) {
	var recipes []entities.Recipe
	err := f.conn(ctx).
		Preload("Ingredients.Ingredient").
		Order("created_at desc").
		Find(&recipes).Error
	observe(TableRecipes, "recipes_with_ingredients", err)
	if err != nil {
		return nil, translate(err)
	}
	return recipes, nil
}

// IngredientUsageInRecipes lists the association rows referencing the
// ingredient, each with its recipe embedded.
func (f *Facade) IngredientUsageInRecipes(ctx context.Context, ingredientID uuid.UUID) ([]entities.RecipeIngredient, error) {
	var usage []entities.RecipeIngredient
	err := f.conn(ctx).
		Preload("Recipe").
		Where("ingredient_id = ?", ingredientID).
		Find(&usage).Error
	observe(TableRecipeIngredients, "ingredient_usage", err)
	if err != nil {
		return nil, translate(err)
	}
	return usage, nil
}

// ActiveSubscriptionForUser returns the row with status active and no close
// date, with its plan embedded.
func (f *Facade) ActiveSubscriptionForUser(ctx context.Context, userID uuid.UUID) (*entities.UserSubscription, error) {
	var row entities.UserSubscription
	err := f.conn(ctx).
		Preload("Subscription").
		Where("user_id = ? AND status = ? AND close_date IS NULL", userID, entities.SubscriptionActive).
		Order("start_date desc").
		First(&row).Error
	observe(TableUserSubscriptions, "active_subscription", err)
	if err != nil {
		return nil, translate(err)
	}
	return &row, nil
}

// ActiveSubscriptionsForUsers returns the active rows of every listed user in
// one query, with plans embedded. Users without one are simply absent.
func (f *Facade) ActiveSubscriptionsForUsers(ctx context.Context, userIDs []uuid.UUID) ([]entities.UserSubscription, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var rows []entities.UserSubscription
	err := f.conn(ctx).
		Preload("Subscription").
		Where("user_id IN ? AND status = ? AND close_date IS NULL", userIDs, entities.SubscriptionActive).
		Order("start_date desc").
		Find(&rows).Error
	observe(TableUserSubscriptions, "active_subscriptions", err)
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

// WeeklySpend sums the user's expenses in the seven days starting at weekStart
// and pairs the total with the user's weekly budget.
func (f *Facade) WeeklySpend(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*WeeklySpend, error) {
	start := DateOnly(weekStart)
	out := &WeeklySpend{WeekStart: start, Budget: DefaultWeeklyBudget}

	var user entities.User
	err := f.conn(ctx).Select("id", "weekly_budget").Where("id = ?", userID).First(&user).Error
	switch {
	case err == nil:
		if user.WeeklyBudget != nil {
			out.Budget = *user.WeeklyBudget
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		observe(TableUsers, "weekly_spend", err)
		return nil, translate(err)
	}

	err = f.conn(ctx).
		Model(&entities.Expense{}).
		Where("user_id = ? AND spent_at >= ? AND spent_at < ?", userID, start, start.AddDate(0, 0, 7)).
		Select("COALESCE(SUM(amount), 0) as total").
		Row().Scan(&out.Spent)
	observe(TableExpenses, "weekly_spend", err)
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// PlanRecipes returns the recipes of a meal plan ordered by meal type.
func (f *Facade) PlanRecipes(ctx context.Context, planID uuid.UUID) ([]entities.PlanRecipe, error) {
	var rows []entities.PlanRecipe
	err := f.conn(ctx).
		Preload("Recipe").
		Where("plan_id = ?", planID).
		Order("meal_type asc").
		Find(&rows).Error
	observe(TablePlanRecipes, "plan_recipes", err)
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

func (f *Facade) FavoriteRecipeIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := f.conn(ctx).
		Model(&entities.Favorite{}).
		Where("user_id = ?", userID).
		Pluck("recipe_id", &ids).Error
	observe(TableFavorites, "favorite_ids", err)
	if err != nil {
		return nil, translate(err)
	}
	return ids, nil
}

func (f *Facade) IsFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	var count int64
	err := f.conn(ctx).
		Model(&entities.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	observe(TableFavorites, "is_favorite", err)
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

func (f *Facade) RatingSummary(ctx context.Context, recipeID uuid.UUID) (*RatingSummary, error) {
	var out RatingSummary
	err := f.conn(ctx).
		Model(&entities.Rating{}).
		Where("recipe_id = ?", recipeID).
		Select("COALESCE(AVG(stars), 0) as average, COUNT(*) as count").
		Row().Scan(&out.Average, &out.Count)
	observe(TableRatings, "rating_summary", err)
	if err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

// TipsByCategories lists tips whose category is one of categories, ordered by
// title. An empty list returns nothing.
func (f *Facade) TipsByCategories(ctx context.Context, categories []string) ([]entities.Tip, error) {
	if len(categories) == 0 {
		return nil, nil
	}
	var tips []entities.Tip
	err := f.conn(ctx).
		Where("category IN ?", categories).
		Order("title asc").
		Find(&tips).Error
	observe(TableTips, "tips_by_categories", err)
	if err != nil {
		return nil, translate(err)
	}
	return tips, nil
}

// ExpensesBetween lists a user's expenses in [from, to), newest first.
func (f *Facade) ExpensesBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]entities.Expense, error) {
	var rows []entities.Expense
	err := f.conn(ctx).
		Where("user_id = ? AND spent_at >= ? AND spent_at < ?", userID, from, to).
		Order("spent_at desc").
		Find(&rows).Error
	observe(TableExpenses, "expenses_between", err)
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}
