package migration

import (
	"MealGo-Backend/entities"
	"fmt"

	"gorm.io/gorm"
)

// constraints gorm tags cannot express.
var constraints = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_user_subscriptions_active
		ON user_subscriptions (user_id)
		WHERE status = 'active' AND close_date IS NULL`,
}

func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		return fmt.Errorf("create uuid-ossp extension: %w", err)
	}

	models := []struct {
		name  string
		model any
	}{
		{"user", &entities.User{}},
		{"ingredient", &entities.Ingredient{}},
		{"recipe", &entities.Recipe{}},
		{"recipe ingredient", &entities.RecipeIngredient{}},
		{"meal plan", &entities.MealPlan{}},
		{"plan recipe", &entities.PlanRecipe{}},
		{"favorite", &entities.Favorite{}},
		{"rating", &entities.Rating{}},
		{"subscription", &entities.Subscription{}},
		{"user subscription", &entities.UserSubscription{}},
		{"tip", &entities.Tip{}},
		{"expense", &entities.Expense{}},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			return fmt.Errorf("error migrating %s database: %w", m.name, err)
		}
	}

	for _, stmt := range constraints {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("error applying constraint: %w", err)
		}
	}
	return nil
}

// Reset drops every table Migrate creates. Integration tests use it to start
// from an empty schema.
func Reset(db *gorm.DB) error {
	return db.Migrator().DropTable(
		&entities.Expense{},
		&entities.Tip{},
		&entities.UserSubscription{},
		&entities.Subscription{},
		&entities.Rating{},
		&entities.Favorite{},
		&entities.PlanRecipe{},
		&entities.MealPlan{},
		&entities.RecipeIngredient{},
		&entities.Recipe{},
		&entities.Ingredient{},
		&entities.User{},
	)
}
