package handlers

import (
	"MealGo-Backend/domain"
	"MealGo-Backend/internal/api/presenters"
	"MealGo-Backend/pkg/expense"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ExpenseHandler interface {
		AddExpense(c *fiber.Ctx) error
		GetExpenses(c *fiber.Ctx) error
		DeleteExpense(c *fiber.Ctx) error
		GetWeeklySpend(c *fiber.Ctx) error
	}

	expenseHandler struct {
		expenseService expense.ExpenseService
		validator      *validator.Validate
	}
)

func NewExpenseHandler(expenseService expense.ExpenseService, validator *validator.Validate) ExpenseHandler {
	return &expenseHandler{
		expenseService: expenseService,
		validator:      validator,
	}
}

func (h *expenseHandler) AddExpense(c *fiber.Ctx) error {
	req := new(domain.AddExpenseRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddExpense, err)
	}

	res, err := h.expenseService.AddExpense(c.Context(), *req, userID(c))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddExpense, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddExpense)
}

// GetExpenses lists the expenses of the week containing ?week=YYYY-MM-DD,
// defaulting to the current week.
func (h *expenseHandler) GetExpenses(c *fiber.Ctx) error {
	res, err := h.expenseService.GetExpenses(c.Context(), userID(c), c.Query("week"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetExpenses, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetExpenses)
}

func (h *expenseHandler) DeleteExpense(c *fiber.Ctx) error {
	if err := h.expenseService.DeleteExpense(c.Context(), c.Params("id"), userID(c)); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeleteExpense, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteExpense)
}

func (h *expenseHandler) GetWeeklySpend(c *fiber.Ctx) error {
	res, err := h.expenseService.GetWeeklySpend(c.Context(), userID(c), c.Query("week"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetWeeklySpend, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWeeklySpend)
}
