package store

import (
	"context"
	"os"
	"testing"
	"time"

	migration "MealGo-Backend/cmd/database/migrate"
	"MealGo-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openPostgres connects to TEST_POSTGRES_DSN and rebuilds the schema. Tests
// calling it are skipped when the variable is unset.
func openPostgres(t *testing.T) *Facade {
	t.Helper()
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, migration.Reset(db))
	require.NoError(t, migration.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return New(db)
}

func seedUser(t *testing.T, f *Facade, email string) *entities.User {
	t.Helper()
	u, err := Insert(context.Background(), f, &entities.User{Name: "Ana", Email: email, Password: "x"})
	require.NoError(t, err)
	return u
}

func TestIntegrationListNewestFirst(t *testing.T) {
	f := openPostgres(t)
	ctx := context.Background()
	base := time.Now().Add(-time.Hour).Truncate(time.Second)

	for i, title := range []string{"oldest", "middle", "newest"} {
		tip := &entities.Tip{Title: title, Category: "habits"}
		tip.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		_, err := Insert(ctx, f, tip)
		require.NoError(t, err)
	}

	tips, err := List[entities.Tip](ctx, f)
	require.NoError(t, err)
	require.Len(t, tips, 3)
	assert.Equal(t, "newest", tips[0].Title)
	assert.Equal(t, "middle", tips[1].Title)
	assert.Equal(t, "oldest", tips[2].Title)
}

func TestIntegrationInsertUpdateDelete(t *testing.T) {
	f := openPostgres(t)
	ctx := context.Background()

	tomato, err := Insert(ctx, f, &entities.Ingredient{Name: "Tomato", Category: "vegetable", Calories: 18})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, tomato.ID)
	onion, err := Insert(ctx, f, &entities.Ingredient{Name: "Onion", Category: "vegetable", Calories: 40})
	require.NoError(t, err)

	got, err := Get[entities.Ingredient](ctx, f, ColID, tomato.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tomato", got.Name)

	_, err = Insert(ctx, f, &entities.Ingredient{Name: "Tomato"})
	assert.True(t, IsDuplicate(err))

	updated, err := Update[entities.Ingredient](ctx, f, ColID, tomato.ID, map[Column]any{ColCalories: 20.0})
	require.NoError(t, err)
	assert.Equal(t, 20.0, updated.Calories)
	assert.Equal(t, "Tomato", updated.Name)
	assert.Equal(t, "vegetable", updated.Category)

	untouched, err := Get[entities.Ingredient](ctx, f, ColID, onion.ID)
	require.NoError(t, err)
	assert.Equal(t, 40.0, untouched.Calories)

	_, err = Update[entities.Ingredient](ctx, f, ColID, uuid.New(), map[Column]any{ColFat: 1.0})
	assert.True(t, IsNotFound(err))

	removed, err := Delete[entities.Ingredient](ctx, f, ColID, tomato.ID)
	require.NoError(t, err)
	require.Len(t, removed, 1)
	assert.Equal(t, tomato.ID, removed[0].ID)

	left, err := ListOrdered[entities.Ingredient](ctx, f, ColName, true)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "Onion", left[0].Name)
}

func TestIntegrationReplaceRecipeIngredients(t *testing.T) {
	f := openPostgres(t)
	ctx := context.Background()

	x, err := Insert(ctx, f, &entities.Ingredient{Name: "Rice"})
	require.NoError(t, err)
	y, err := Insert(ctx, f, &entities.Ingredient{Name: "Beans"})
	require.NoError(t, err)
	recipe, err := Insert(ctx, f, &entities.Recipe{Name: "Rice and beans", Instructions: "Boil"})
	require.NoError(t, err)

	require.NoError(t, f.ReplaceRecipeIngredients(ctx, recipe.ID, []entities.RecipeIngredient{
		{IngredientID: x.ID}, {IngredientID: y.ID},
	}))
	require.NoError(t, f.ReplaceRecipeIngredients(ctx, recipe.ID, nil))
	rows, err := ListWhere[entities.RecipeIngredient](ctx, f, ColRecipeID, recipe.ID, ColIngredientID, true)
	require.NoError(t, err)
	assert.Empty(t, rows)

	require.NoError(t, f.ReplaceRecipeIngredients(ctx, recipe.ID, []entities.RecipeIngredient{
		{IngredientID: x.ID, Quantity: 2, Unit: "g"},
	}))
	rows, err = ListWhere[entities.RecipeIngredient](ctx, f, ColRecipeID, recipe.ID, ColIngredientID, true)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, x.ID, rows[0].IngredientID)
	assert.Equal(t, 2.0, rows[0].Quantity)
	assert.Equal(t, "g", rows[0].Unit)
}

func TestIntegrationActivateSubscriptionIdempotent(t *testing.T) {
	f := openPostgres(t)
	ctx := context.Background()
	user := seedUser(t, f, "ana@example.com")
	basic, err := Insert(ctx, f, &entities.Subscription{Name: "Basic", Price: 0, IsActive: true})
	require.NoError(t, err)
	premium, err := Insert(ctx, f, &entities.Subscription{Name: "Premium", Price: 49000, IsActive: true})
	require.NoError(t, err)

	day := testDay()
	_, err = f.ActivateSubscription(ctx, user.ID, basic.ID, day)
	require.NoError(t, err)
	_, err = f.ActivateSubscription(ctx, user.ID, basic.ID, day.Add(3*time.Hour))
	require.NoError(t, err)

	rows, err := ListWhere[entities.UserSubscription](ctx, f, ColUserID, user.ID, ColStartDate, true)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, entities.SubscriptionActive, rows[0].Status)
	assert.Nil(t, rows[0].CloseDate)

	_, err = f.ActivateSubscription(ctx, user.ID, premium.ID, day)
	require.NoError(t, err)
	active, err := f.ActiveSubscriptionForUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, premium.ID, active.SubscriptionID)
	require.NotNil(t, active.Subscription)
	assert.Equal(t, "Premium", active.Subscription.Name)

	n, err := f.CloseActiveSubscription(ctx, user.ID, day)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = f.ActiveSubscriptionForUser(ctx, user.ID)
	assert.True(t, IsNotFound(err))

	n, err = f.CloseActiveSubscription(ctx, user.ID, day)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestIntegrationTomatoSalad(t *testing.T) {
	f := openPostgres(t)
	ctx := context.Background()

	tomato, err := Insert(ctx, f, &entities.Ingredient{Name: "Tomato"})
	require.NoError(t, err)
	salad, err := Insert(ctx, f, &entities.Recipe{Name: "Salad", Instructions: "Chop"})
	require.NoError(t, err)
	require.NoError(t, f.ReplaceRecipeIngredients(ctx, salad.ID, []entities.RecipeIngredient{{IngredientID: tomato.ID}}))

	got, err := f.RecipeWithIngredients(ctx, salad.ID)
	require.NoError(t, err)
	require.Len(t, got.Ingredients, 1)
	require.NotNil(t, got.Ingredients[0].Ingredient)
	assert.Equal(t, "Tomato", got.Ingredients[0].Ingredient.Name)
	assert.Equal(t, DefaultQuantity, got.Ingredients[0].Quantity)
	assert.Equal(t, DefaultUnit, got.Ingredients[0].Unit)

	usage, err := f.IngredientUsageInRecipes(ctx, tomato.ID)
	require.NoError(t, err)
	require.Len(t, usage, 1)
	assert.Equal(t, "Salad", usage[0].Recipe.Name)

	require.NoError(t, f.DeleteRecipe(ctx, salad.ID))
	usage, err = f.IngredientUsageInRecipes(ctx, tomato.ID)
	require.NoError(t, err)
	assert.Empty(t, usage)
}

func TestIntegrationWeeklySpend(t *testing.T) {
	f := openPostgres(t)
	ctx := context.Background()
	user := seedUser(t, f, "luis@example.com")
	week := StartOfWeek(testDay())

	for _, e := range []entities.Expense{
		{UserID: user.ID, Amount: 100, SpentAt: week.Add(time.Hour)},
		{UserID: user.ID, Amount: 50.5, SpentAt: week.AddDate(0, 0, 6)},
		{UserID: user.ID, Amount: 999, SpentAt: week.AddDate(0, 0, 7)},
	} {
		_, err := Insert(ctx, f, &e)
		require.NoError(t, err)
	}

	spend, err := f.WeeklySpend(ctx, user.ID, week)
	require.NoError(t, err)
	assert.Equal(t, DefaultWeeklyBudget, spend.Budget)
	assert.InDelta(t, 150.5, spend.Spent, 0.001)

	_, err = Update[entities.User](ctx, f, ColID, user.ID, map[Column]any{ColWeeklyBudget: 500.0})
	require.NoError(t, err)
	spend, err = f.WeeklySpend(ctx, user.ID, week)
	require.NoError(t, err)
	assert.Equal(t, 500.0, spend.Budget)
	assert.InDelta(t, 349.5, spend.Remaining(), 0.001)
}

func TestIntegrationDeleteUser(t *testing.T) {
	f := openPostgres(t)
	ctx := context.Background()
	user := seedUser(t, f, "eva@example.com")

	recipe, err := Insert(ctx, f, &entities.Recipe{UserID: &user.ID, Name: "Soup", Instructions: "Simmer"})
	require.NoError(t, err)
	plan, err := Insert(ctx, f, &entities.MealPlan{UserID: user.ID, Title: "Week", StartDate: testDay(), EndDate: testDay()})
	require.NoError(t, err)
	_, err = Insert(ctx, f, &entities.PlanRecipe{PlanID: plan.ID, RecipeID: recipe.ID, MealType: "lunch"})
	require.NoError(t, err)
	_, err = Insert(ctx, f, &entities.Favorite{UserID: user.ID, RecipeID: recipe.ID})
	require.NoError(t, err)

	require.NoError(t, f.DeleteUser(ctx, user.ID))

	kept, err := Get[entities.Recipe](ctx, f, ColID, recipe.ID)
	require.NoError(t, err)
	assert.Nil(t, kept.UserID)

	plans, err := ListWhere[entities.MealPlan](ctx, f, ColUserID, user.ID, ColCreatedAt, false)
	require.NoError(t, err)
	assert.Empty(t, plans)

	assert.True(t, IsNotFound(f.DeleteUser(ctx, user.ID)))
}

func TestIntegrationEnsureUserByEmail(t *testing.T) {
	f := openPostgres(t)
	ctx := context.Background()

	first, created, err := f.EnsureUserByEmail(ctx, "new@example.com", "New")
	require.NoError(t, err)
	assert.True(t, created)

	again, created, err := f.EnsureUserByEmail(ctx, "new@example.com", "Other")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, "New", again.Name)
}
