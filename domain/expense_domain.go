package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddExpense     = "expense recorded successfully"
	MessageSuccessGetExpenses    = "expenses retrieved successfully"
	MessageSuccessDeleteExpense  = "expense deleted successfully"
	MessageSuccessGetWeeklySpend = "weekly spend retrieved successfully"

	MessageFailedAddExpense     = "failed to record expense"
	MessageFailedGetExpenses    = "failed to retrieve expenses"
	MessageFailedDeleteExpense  = "failed to delete expense"
	MessageFailedGetWeeklySpend = "failed to retrieve weekly spend"

	ErrExpenseNotFound = errors.New("expense not found")
)

type (
	AddExpenseRequest struct {
		Amount  float64 `json:"amount" validate:"required,gt=0"`
		SpentAt string  `json:"spent_at" validate:"omitempty"`
		Note    string  `json:"note" validate:"omitempty,max=500"`
	}

	Expense struct {
		ID      string    `json:"id"`
		Amount  float64   `json:"amount"`
		SpentAt time.Time `json:"spent_at"`
		Note    string    `json:"note,omitempty"`
	}

	WeeklySpendResponse struct {
		WeekStart string  `json:"week_start"`
		Budget    float64 `json:"budget"`
		Spent     float64 `json:"spent"`
		Remaining float64 `json:"remaining"`
	}
)
