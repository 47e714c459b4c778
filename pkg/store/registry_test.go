package store

import (
	"sort"
	"sync"
	"testing"

	"MealGo-Backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestRegistryMatchesEntities(t *testing.T) {
	models := []Row{
		entities.User{},
		entities.Recipe{},
		entities.Ingredient{},
		entities.RecipeIngredient{},
		entities.MealPlan{},
		entities.PlanRecipe{},
		entities.Favorite{},
		entities.Rating{},
		entities.Subscription{},
		entities.UserSubscription{},
		entities.Tip{},
		entities.Expense{},
	}
	require.Len(t, models, len(registry))

	cache := &sync.Map{}
	for _, m := range models {
		s, err := schema.Parse(m, cache, schema.NamingStrategy{})
		require.NoError(t, err)

		table := Table(m.TableName())
		require.True(t, table.Valid(), "table %s not registered", table)

		want := make([]string, 0)
		for _, c := range table.Columns() {
			want = append(want, string(c))
		}
		got := append([]string(nil), s.DBNames...)
		sort.Strings(want)
		sort.Strings(got)
		assert.Equal(t, want, got, "columns of %s", table)
	}
}

func TestTableCheck(t *testing.T) {
	assert.NoError(t, TableRecipes.check(ColName, ColCreatedAt))
	assert.ErrorIs(t, TableRecipes.check(ColStars), ErrUnknownColumn)
	assert.ErrorIs(t, Table("receta").check(), ErrUnknownTable)

	assert.True(t, TableTips.HasCreatedAt())
	assert.False(t, TablePlanRecipes.HasCreatedAt())
	assert.False(t, TableUserSubscriptions.HasCreatedAt())
}

func TestColumnsReturnsCopy(t *testing.T) {
	cols := TableFavorites.Columns()
	cols[0] = "tampered"
	assert.Equal(t, ColUserID, TableFavorites.Columns()[0])
}
