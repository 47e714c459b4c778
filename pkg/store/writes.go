package store

import (
	"context"
	"time"

	"MealGo-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

const (
	DefaultQuantity = 1.0
	DefaultUnit     = "unit"
)

// ReplaceRecipeIngredients swaps the whole ingredient set of a recipe for
// items inside one transaction. Duplicate ingredient ids keep the last entry;
// an empty list leaves the recipe without ingredients.
func (f *Facade) ReplaceRecipeIngredients(ctx context.Context, recipeID uuid.UUID, items []entities.RecipeIngredient) error {
	rows := make([]entities.RecipeIngredient, 0, len(items))
	seen := make(map[uuid.UUID]int, len(items))
	for _, item := range items {
		row := entities.RecipeIngredient{
			RecipeID:     recipeID,
			IngredientID: item.IngredientID,
			Quantity:     item.Quantity,
			Unit:         item.Unit,
		}
		if row.Quantity <= 0 {
			row.Quantity = DefaultQuantity
		}
		if row.Unit == "" {
			row.Unit = DefaultUnit
		}
		if i, ok := seen[row.IngredientID]; ok {
			rows[i] = row
			continue
		}
		seen[row.IngredientID] = len(rows)
		rows = append(rows, row)
	}

	err := f.Transaction(ctx, func(tx *Facade) error {
		if err := tx.db.Where("recipe_id = ?", recipeID).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.db.Omit(clause.Associations).Create(&rows).Error
	})
	observe(TableRecipeIngredients, "replace", err)
	return translate(err)
}

// DeleteRecipe removes a recipe together with every row that points at it.
func (f *Facade) DeleteRecipe(ctx context.Context, recipeID uuid.UUID) error {
	err := f.Transaction(ctx, func(tx *Facade) error {
		children := []any{
			&entities.RecipeIngredient{},
			&entities.PlanRecipe{},
			&entities.Favorite{},
			&entities.Rating{},
		}
		for _, model := range children {
			if err := tx.db.Where("recipe_id = ?", recipeID).Delete(model).Error; err != nil {
				return err
			}
		}
		res := tx.db.Where("id = ?", recipeID).Delete(&entities.Recipe{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	observe(TableRecipes, "cascade_delete", err)
	return translate(err)
}

// DeleteMealPlan removes a plan and its plan recipes.
func (f *Facade) DeleteMealPlan(ctx context.Context, planID uuid.UUID) error {
	err := f.Transaction(ctx, func(tx *Facade) error {
		if err := tx.db.Where("plan_id = ?", planID).Delete(&entities.PlanRecipe{}).Error; err != nil {
			return err
		}
		res := tx.db.Where("id = ?", planID).Delete(&entities.MealPlan{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	observe(TableMealPlans, "cascade_delete", err)
	return translate(err)
}

// DeleteUser removes a user and everything they own. Recipes they authored
// stay in the catalogue without an owner.
func (f *Facade) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	err := f.Transaction(ctx, func(tx *Facade) error {
		plans := tx.db.Model(&entities.MealPlan{}).Select("id").Where("user_id = ?", userID)
		if err := tx.db.Where("plan_id IN (?)", plans).Delete(&entities.PlanRecipe{}).Error; err != nil {
			return err
		}
		owned := []any{
			&entities.MealPlan{},
			&entities.Favorite{},
			&entities.Rating{},
			&entities.UserSubscription{},
			&entities.Expense{},
		}
		for _, model := range owned {
			if err := tx.db.Where("user_id = ?", userID).Delete(model).Error; err != nil {
				return err
			}
		}
		if err := tx.db.Model(&entities.Recipe{}).
			Where("user_id = ?", userID).
			Update("user_id", nil).Error; err != nil {
			return err
		}
		res := tx.db.Where("id = ?", userID).Delete(&entities.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	observe(TableUsers, "cascade_delete", err)
	return translate(err)
}

// ActivateSubscription makes plan the user's only active subscription. Other
// active rows are closed as of today and the (user, plan, today) row is
// upserted back to active, so repeating the call on the same day is a no-op.
func (f *Facade) ActivateSubscription(ctx context.Context, userID, planID uuid.UUID, today time.Time) (*entities.UserSubscription, error) {
	day := DateOnly(today)
	row := entities.UserSubscription{
		UserID:         userID,
		SubscriptionID: planID,
		StartDate:      day,
		Status:         entities.SubscriptionActive,
	}

	err := f.Transaction(ctx, func(tx *Facade) error {
		if err := tx.db.Model(&entities.UserSubscription{}).
			Where("user_id = ? AND status = ? AND close_date IS NULL", userID, entities.SubscriptionActive).
			Where("NOT (subscription_id = ? AND start_date = ?)", planID, day).
			Updates(map[string]any{
				"status":     entities.SubscriptionClosed,
				"close_date": day,
			}).Error; err != nil {
			return err
		}

		return tx.db.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "subscription_id"}, {Name: "start_date"}},
			DoUpdates: clause.Assignments(map[string]any{
				"status":     entities.SubscriptionActive,
				"close_date": nil,
			}),
		}).Create(&row).Error
	})
	observe(TableUserSubscriptions, "activate", err)
	if err != nil {
		return nil, translate(err)
	}
	return &row, nil
}

// CloseActiveSubscription closes the user's active subscription as of today.
// It returns the number of rows closed; zero is not an error.
func (f *Facade) CloseActiveSubscription(ctx context.Context, userID uuid.UUID, today time.Time) (int64, error) {
	res := f.conn(ctx).
		Model(&entities.UserSubscription{}).
		Where("user_id = ? AND status = ? AND close_date IS NULL", userID, entities.SubscriptionActive).
		Updates(map[string]any{
			"status":     entities.SubscriptionClosed,
			"close_date": DateOnly(today),
		})
	observe(TableUserSubscriptions, "close", res.Error)
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

// UpsertRating stores the user's rating of a recipe, replacing an earlier one.
func (f *Facade) UpsertRating(ctx context.Context, rating *entities.Rating) (*entities.Rating, error) {
	err := f.conn(ctx).Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"stars", "comment", "created_at"}),
	}).Create(rating).Error
	observe(TableRatings, "upsert", err)
	if err != nil {
		return nil, translate(err)
	}
	return rating, nil
}

// EnsureUserByEmail returns the user registered under email, creating one
// named name when there is none. Created users get an unusable password and
// must set one before they can log in. The bool reports whether a row was
// created.
func (f *Facade) EnsureUserByEmail(ctx context.Context, email, name string) (*entities.User, bool, error) {
	var user entities.User
	res := f.conn(ctx).
		Where(entities.User{Email: email}).
		Attrs(entities.User{Name: name, Password: "!" + uuid.NewString()}).
		FirstOrCreate(&user)
	observe(TableUsers, "ensure", res.Error)
	if res.Error != nil {
		return nil, false, translate(res.Error)
	}
	return &user, res.RowsAffected > 0, nil
}
