package handlers

import (
	"MealGo-Backend/domain"
	"MealGo-Backend/internal/api/presenters"
	"MealGo-Backend/internal/utils/logger"
	"MealGo-Backend/pkg/subscription"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type (
	SubscriptionHandler interface {
		GetPlans(c *fiber.Ctx) error
		CreatePlan(c *fiber.Ctx) error
		ActivatePlan(c *fiber.Ctx) error
		AssignPlan(c *fiber.Ctx) error
		ClosePlan(c *fiber.Ctx) error
		CloseUserPlan(c *fiber.Ctx) error
		GetCurrentSubscription(c *fiber.Ctx) error
		CreateTransaction(c *fiber.Ctx) error
		MidtransWebhookHandler(c *fiber.Ctx) error
	}

	subscriptionHandler struct {
		subscriptionService subscription.SubscriptionService
		validator           *validator.Validate
	}
)

func NewSubscriptionHandler(subscriptionService subscription.SubscriptionService, validator *validator.Validate) SubscriptionHandler {
	return &subscriptionHandler{
		subscriptionService: subscriptionService,
		validator:           validator,
	}
}

func (h *subscriptionHandler) GetPlans(c *fiber.Ctx) error {
	res, err := h.subscriptionService.GetPlans(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetPlans, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetPlans)
}

func (h *subscriptionHandler) CreatePlan(c *fiber.Ctx) error {
	req := new(domain.CreatePlanRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePlan, err)
	}

	res, err := h.subscriptionService.CreatePlan(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCreatePlan, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreatePlan)
}

func (h *subscriptionHandler) ActivatePlan(c *fiber.Ctx) error {
	req := new(domain.ActivatePlanRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedActivatePlan, err)
	}

	res, err := h.subscriptionService.ActivatePlan(c.Context(), *req, userID(c))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedActivatePlan, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessActivatePlan)
}

// AssignPlan activates a plan for the user in the path, without payment.
func (h *subscriptionHandler) AssignPlan(c *fiber.Ctx) error {
	req := new(domain.ActivatePlanRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedActivatePlan, err)
	}

	res, err := h.subscriptionService.AssignPlan(c.Context(), req.SubscriptionID, c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedActivatePlan, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessActivatePlan)
}

func (h *subscriptionHandler) ClosePlan(c *fiber.Ctx) error {
	return h.close(c, userID(c))
}

func (h *subscriptionHandler) CloseUserPlan(c *fiber.Ctx) error {
	return h.close(c, c.Params("id"))
}

func (h *subscriptionHandler) close(c *fiber.Ctx, id string) error {
	closed, err := h.subscriptionService.ClosePlan(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCloseSubscription, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"closed": closed}, fiber.StatusOK, domain.MessageSuccessCloseSubscription)
}

func (h *subscriptionHandler) GetCurrentSubscription(c *fiber.Ctx) error {
	res, err := h.subscriptionService.GetCurrentSubscription(c.Context(), userID(c))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetSubscription, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSubscription)
}

func (h *subscriptionHandler) CreateTransaction(c *fiber.Ctx) error {
	req := new(domain.ActivatePlanRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCheckout, err)
	}

	res, err := h.subscriptionService.Checkout(c.Context(), *req, userID(c))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedCheckout, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCheckout)
}

// MidtransWebhookHandler receives payment notifications. Failures are logged
// since midtrans retries on non-2xx answers.
func (h *subscriptionHandler) MidtransWebhookHandler(c *fiber.Ctx) error {
	req := new(domain.MidtransNotification)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPaymentNotification, err)
	}

	if err := h.subscriptionService.HandleNotification(c.Context(), *req); err != nil {
		logger.Error("payment notification failed",
			zap.String("order_id", req.OrderID),
			zap.String("status", req.TransactionStatus),
			zap.Error(err))
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedPaymentNotification, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessPaymentNotification)
}
