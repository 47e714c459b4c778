package handlers

import (
	"MealGo-Backend/domain"
	"MealGo-Backend/internal/api/presenters"
	"MealGo-Backend/pkg/mealplan"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MealPlanHandler interface {
		GetMealPlans(c *fiber.Ctx) error
		GetMealPlanDetail(c *fiber.Ctx) error
		CreateMealPlan(c *fiber.Ctx) error
		UpdateMealPlan(c *fiber.Ctx) error
		DeleteMealPlan(c *fiber.Ctx) error
		AddRecipe(c *fiber.Ctx) error
		RemoveRecipe(c *fiber.Ctx) error
	}

	mealPlanHandler struct {
		mealPlanService mealplan.MealPlanService
		validator       *validator.Validate
	}
)

func NewMealPlanHandler(mealPlanService mealplan.MealPlanService, validator *validator.Validate) MealPlanHandler {
	return &mealPlanHandler{
		mealPlanService: mealPlanService,
		validator:       validator,
	}
}

func (h *mealPlanHandler) GetMealPlans(c *fiber.Ctx) error {
	res, err := h.mealPlanService.GetMealPlans(c.Context(), userID(c))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetMealPlans, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMealPlans)
}

func (h *mealPlanHandler) GetMealPlanDetail(c *fiber.Ctx) error {
	res, err := h.mealPlanService.GetMealPlanDetail(c.Context(), c.Params("id"), userID(c))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetMealPlanDetail, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMealPlanDetail)
}

func (h *mealPlanHandler) CreateMealPlan(c *fiber.Ctx) error {
	req := new(domain.CreateMealPlanRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveMealPlan, err)
	}

	res, err := h.mealPlanService.CreateMealPlan(c.Context(), *req, userID(c))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedSaveMealPlan, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSaveMealPlan)
}

func (h *mealPlanHandler) UpdateMealPlan(c *fiber.Ctx) error {
	req := new(domain.UpdateMealPlanRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveMealPlan, err)
	}

	res, err := h.mealPlanService.UpdateMealPlan(c.Context(), c.Params("id"), *req, userID(c))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedSaveMealPlan, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSaveMealPlan)
}

func (h *mealPlanHandler) DeleteMealPlan(c *fiber.Ctx) error {
	if err := h.mealPlanService.DeleteMealPlan(c.Context(), c.Params("id"), userID(c)); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeleteMealPlan, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMealPlan)
}

func (h *mealPlanHandler) AddRecipe(c *fiber.Ctx) error {
	req := new(domain.PlanRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPlanRecipe, err)
	}

	if err := h.mealPlanService.AddRecipe(c.Context(), c.Params("id"), *req, userID(c)); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedAddPlanRecipe, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessAddPlanRecipe)
}

// RemoveRecipe takes the composite key from the path:
// /meal-plans/:id/recipes/:recipe_id/:meal_type.
func (h *mealPlanHandler) RemoveRecipe(c *fiber.Ctx) error {
	req := domain.PlanRecipeRequest{
		RecipeID: c.Params("recipe_id"),
		MealType: c.Params("meal_type"),
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemovePlanRecipe, err)
	}

	if err := h.mealPlanService.RemoveRecipe(c.Context(), c.Params("id"), req, userID(c)); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedRemovePlanRecipe, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemovePlanRecipe)
}
