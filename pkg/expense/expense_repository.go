package expense

import (
	"MealGo-Backend/entities"
	"MealGo-Backend/pkg/store"
	"context"
	"time"

	"github.com/google/uuid"
)

type (
	ExpenseRepository interface {
		CreateExpense(ctx context.Context, expense *entities.Expense) (*entities.Expense, error)
		GetExpensesBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]entities.Expense, error)
		DeleteExpense(ctx context.Context, id, userID uuid.UUID) (int, error)
		GetWeeklySpend(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*store.WeeklySpend, error)
	}

	expenseRepository struct {
		store *store.Facade
	}
)

func NewExpenseRepository(s *store.Facade) ExpenseRepository {
	return &expenseRepository{store: s}
}

func (r *expenseRepository) CreateExpense(ctx context.Context, expense *entities.Expense) (*entities.Expense, error) {
	return store.Insert(ctx, r.store, expense)
}

func (r *expenseRepository) GetExpensesBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]entities.Expense, error) {
	return r.store.ExpensesBetween(ctx, userID, from, to)
}

// DeleteExpense only removes the row when it belongs to userID.
func (r *expenseRepository) DeleteExpense(ctx context.Context, id, userID uuid.UUID) (int, error) {
	rows, err := store.DeleteMatch[entities.Expense](ctx, r.store, map[store.Column]any{
		store.ColID:     id,
		store.ColUserID: userID,
	})
	return len(rows), err
}

func (r *expenseRepository) GetWeeklySpend(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*store.WeeklySpend, error) {
	return r.store.WeeklySpend(ctx, userID, weekStart)
}
