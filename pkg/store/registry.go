package store

import (
	"fmt"
)

// Table names every relation the facade is allowed to touch. Values match the
// TableName of the corresponding entity.
type Table string

// Column names a column of a registered table.
type Column string

const (
	TableUsers             Table = "users"
	TableRecipes           Table = "recipes"
	TableIngredients       Table = "ingredients"
	TableRecipeIngredients Table = "recipe_ingredients"
	TableMealPlans         Table = "meal_plans"
	TablePlanRecipes       Table = "plan_recipes"
	TableFavorites         Table = "favorites"
	TableRatings           Table = "ratings"
	TableSubscriptions     Table = "subscriptions"
	TableUserSubscriptions Table = "user_subscriptions"
	TableTips              Table = "tips"
	TableExpenses          Table = "expenses"
)

const (
	ColID             Column = "id"
	ColName           Column = "name"
	ColEmail          Column = "email"
	ColPassword       Column = "password"
	ColPhone          Column = "phone"
	ColRole           Column = "role"
	ColWeeklyBudget   Column = "weekly_budget"
	ColCreatedAt      Column = "created_at"
	ColUpdatedAt      Column = "updated_at"
	ColUserID         Column = "user_id"
	ColInstructions   Column = "instructions"
	ColPrepMinutes    Column = "prep_minutes"
	ColDifficulty     Column = "difficulty"
	ColImageURL       Column = "image_url"
	ColCategory       Column = "category"
	ColCalories       Column = "calories"
	ColProtein        Column = "protein"
	ColCarbohydrates  Column = "carbohydrates"
	ColFat            Column = "fat"
	ColRecipeID       Column = "recipe_id"
	ColIngredientID   Column = "ingredient_id"
	ColQuantity       Column = "quantity"
	ColUnit           Column = "unit"
	ColTitle          Column = "title"
	ColStartDate      Column = "start_date"
	ColEndDate        Column = "end_date"
	ColPlanID         Column = "plan_id"
	ColMealType       Column = "meal_type"
	ColStars          Column = "stars"
	ColComment        Column = "comment"
	ColDescription    Column = "description"
	ColPrice          Column = "price"
	ColIsActive       Column = "is_active"
	ColSubscriptionID Column = "subscription_id"
	ColStatus         Column = "status"
	ColCloseDate      Column = "close_date"
	ColAmount         Column = "amount"
	ColSpentAt        Column = "spent_at"
	ColNote           Column = "note"
)

var registry = map[Table][]Column{
	TableUsers: {
		ColID, ColName, ColEmail, ColPassword, ColPhone, ColRole, ColWeeklyBudget,
		ColCreatedAt, ColUpdatedAt,
	},
	TableRecipes: {
		ColID, ColUserID, ColName, ColInstructions, ColPrepMinutes, ColDifficulty, ColImageURL,
		ColCreatedAt, ColUpdatedAt,
	},
	TableIngredients: {
		ColID, ColName, ColCategory, ColCalories, ColProtein, ColCarbohydrates, ColFat,
		ColCreatedAt, ColUpdatedAt,
	},
	TableRecipeIngredients: {ColRecipeID, ColIngredientID, ColQuantity, ColUnit},
	TableMealPlans: {
		ColID, ColUserID, ColTitle, ColStartDate, ColEndDate, ColCreatedAt, ColUpdatedAt,
	},
	TablePlanRecipes: {ColPlanID, ColRecipeID, ColMealType},
	TableFavorites:   {ColUserID, ColRecipeID, ColCreatedAt},
	TableRatings:     {ColID, ColUserID, ColRecipeID, ColStars, ColComment, ColCreatedAt},
	TableSubscriptions: {
		ColID, ColName, ColDescription, ColPrice, ColIsActive, ColCreatedAt, ColUpdatedAt,
	},
	TableUserSubscriptions: {ColUserID, ColSubscriptionID, ColStartDate, ColStatus, ColCloseDate},
	TableTips: {
		ColID, ColTitle, ColDescription, ColCategory, ColCreatedAt, ColUpdatedAt,
	},
	TableExpenses: {ColID, ColUserID, ColAmount, ColSpentAt, ColNote, ColCreatedAt},
}

// Tables returns every registered table.
func Tables() []Table {
	tables := make([]Table, 0, len(registry))
	for t := range registry {
		tables = append(tables, t)
	}
	return tables
}

func (t Table) Valid() bool {
	_, ok := registry[t]
	return ok
}

func (t Table) Columns() []Column {
	return append([]Column(nil), registry[t]...)
}

func (t Table) HasColumn(c Column) bool {
	for _, col := range registry[t] {
		if col == c {
			return true
		}
	}
	return false
}

func (t Table) HasCreatedAt() bool {
	return t.HasColumn(ColCreatedAt)
}

// check rejects unknown tables and columns before any SQL is built from them.
func (t Table) check(cols ...Column) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTable, string(t))
	}
	for _, c := range cols {
		if !t.HasColumn(c) {
			return fmt.Errorf("%w: %q on %q", ErrUnknownColumn, string(c), string(t))
		}
	}
	return nil
}
