package handlers

import (
	"MealGo-Backend/domain"
	"MealGo-Backend/internal/utils/storage"
	"errors"

	"github.com/gofiber/fiber/v2"
)

var statusByError = []struct {
	status int
	errs   []error
}{
	{fiber.StatusNotFound, []error{
		domain.ErrRecipeNotFound, domain.ErrIngredientNotFound, domain.ErrMealPlanNotFound,
		domain.ErrPlanRecipeNotFound, domain.ErrUserNotFound, domain.ErrPlanNotFound,
		domain.ErrNoActiveSubscription, domain.ErrTipNotFound, domain.ErrExpenseNotFound,
	}},
	{fiber.StatusConflict, []error{
		domain.ErrIngredientExists, domain.ErrIngredientInUse, domain.ErrPlanRecipeExists,
		domain.ErrEmailAlreadyExists, domain.ErrPlanAlreadyExists,
	}},
	{fiber.StatusForbidden, []error{
		domain.ErrUnauthorizedRecipeAccess, domain.ErrUnauthorizedPlanAccess, domain.ErrUserNotAllowed,
	}},
	{fiber.StatusUnauthorized, []error{
		domain.ErrCredentialsInvalid, domain.ErrTokenNotFound, domain.ErrTokenExpired,
		domain.ErrTokenInvalid, domain.ErrInvalidSignature,
	}},
	{fiber.StatusPaymentRequired, []error{domain.ErrPaymentRequired}},
	{fiber.StatusBadGateway, []error{domain.ErrPaymentFailed}},
	{fiber.StatusServiceUnavailable, []error{storage.ErrStorageDisabled}},
	{fiber.StatusBadRequest, []error{
		domain.ErrParseUUID, domain.ErrRecipeNameRequired, domain.ErrRecipeInstructions,
		domain.ErrInvalidStars, domain.ErrInvalidDateRange, domain.ErrInvalidDate,
		domain.ErrInvalidMealType, domain.ErrInvalidTipCategory, domain.ErrFreePlanCheckout,
		domain.ErrPlanInactive, domain.ErrInvalidOrderID, storage.ErrFileNotAllowed,
	}},
}

// statusFor maps a service error onto an HTTP status. Errors not raised by
// the domain are internal.
func statusFor(err error) int {
	for _, group := range statusByError {
		for _, target := range group.errs {
			if errors.Is(err, target) {
				return group.status
			}
		}
	}
	return fiber.StatusInternalServerError
}

func userID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}

func role(c *fiber.Ctx) string {
	r, _ := c.Locals("role").(string)
	return r
}
