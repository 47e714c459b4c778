package domain

import (
	"errors"
)

var (
	MessageSuccessGetPlans            = "subscription plans retrieved successfully"
	MessageSuccessCreatePlan          = "subscription plan created successfully"
	MessageSuccessActivatePlan        = "subscription activated successfully"
	MessageSuccessCloseSubscription   = "subscription closed successfully"
	MessageSuccessGetSubscription     = "current subscription retrieved successfully"
	MessageSuccessCheckout            = "checkout created successfully"
	MessageSuccessPaymentNotification = "payment notification processed"

	MessageFailedGetPlans            = "failed to retrieve subscription plans"
	MessageFailedCreatePlan          = "failed to create subscription plan"
	MessageFailedActivatePlan        = "failed to activate subscription"
	MessageFailedCloseSubscription   = "failed to close subscription"
	MessageFailedGetSubscription     = "failed to retrieve current subscription"
	MessageFailedCheckout            = "failed to create checkout"
	MessageFailedPaymentNotification = "failed to process payment notification"

	ErrPlanNotFound         = errors.New("subscription plan not found")
	ErrPlanInactive         = errors.New("subscription plan is not available")
	ErrPlanAlreadyExists    = errors.New("subscription plan already exists")
	ErrNoActiveSubscription = errors.New("user has no active subscription")
	ErrFreePlanCheckout     = errors.New("free plans do not need checkout")
	ErrPaymentFailed        = errors.New("payment processing failed")
	ErrInvalidOrderID       = errors.New("invalid order id")
	ErrInvalidSignature     = errors.New("invalid notification signature")
	ErrPaymentRequired      = errors.New("paid plans are activated through checkout")
	ErrMissingServerKey     = errors.New("midtrans server key is not configured")
)

type (
	CreatePlanRequest struct {
		Name        string  `json:"name" validate:"required,max=120"`
		Description string  `json:"description" validate:"omitempty,max=1000"`
		Price       float64 `json:"price" validate:"gte=0"`
		IsActive    bool    `json:"is_active"`
	}

	ActivatePlanRequest struct {
		SubscriptionID string `json:"subscription_id" validate:"required,uuid"`
	}

	SubscriptionPlan struct {
		ID          string  `json:"id"`
		Name        string  `json:"name"`
		Description string  `json:"description,omitempty"`
		Price       float64 `json:"price"`
		IsActive    bool    `json:"is_active"`
	}

	ActiveSubscription struct {
		SubscriptionID string `json:"subscription_id"`
		Name           string `json:"name"`
		Status         string `json:"status"`
		StartDate      string `json:"start_date"`
	}

	CheckoutResponse struct {
		OrderID     string `json:"order_id"`
		Token       string `json:"token"`
		RedirectURL string `json:"redirect_url"`
	}

	MidtransNotification struct {
		OrderID           string `json:"order_id" validate:"required"`
		StatusCode        string `json:"status_code" validate:"required"`
		GrossAmount       string `json:"gross_amount" validate:"required"`
		SignatureKey      string `json:"signature_key" validate:"required"`
		TransactionStatus string `json:"transaction_status" validate:"required"`
		FraudStatus       string `json:"fraud_status"`
		PaymentType       string `json:"payment_type"`
	}
)
