package handlers

import (
	"MealGo-Backend/domain"
	"MealGo-Backend/internal/api/presenters"
	"MealGo-Backend/pkg/tip"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	TipHandler interface {
		GetTips(c *fiber.Ctx) error
		CreateTip(c *fiber.Ctx) error
		UpdateTip(c *fiber.Ctx) error
		DeleteTip(c *fiber.Ctx) error
	}

	tipHandler struct {
		tipService tip.TipService
		validator  *validator.Validate
	}
)

func NewTipHandler(tipService tip.TipService, validator *validator.Validate) TipHandler {
	return &tipHandler{
		tipService: tipService,
		validator:  validator,
	}
}

func (h *tipHandler) GetTips(c *fiber.Ctx) error {
	filter := new(domain.TipFilter)
	if err := c.QueryParser(filter); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTips, err)
	}

	res, err := h.tipService.GetTips(c.Context(), *filter)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetTips, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTips)
}

func (h *tipHandler) CreateTip(c *fiber.Ctx) error {
	req := new(domain.TipRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveTip, err)
	}

	res, err := h.tipService.CreateTip(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedSaveTip, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSaveTip)
}

func (h *tipHandler) UpdateTip(c *fiber.Ctx) error {
	req := new(domain.TipRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveTip, err)
	}

	res, err := h.tipService.UpdateTip(c.Context(), c.Params("id"), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedSaveTip, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSaveTip)
}

func (h *tipHandler) DeleteTip(c *fiber.Ctx) error {
	if err := h.tipService.DeleteTip(c.Context(), c.Params("id")); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedDeleteTip, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteTip)
}
