package subscription

import (
	"MealGo-Backend/domain"
	"MealGo-Backend/entities"
	"MealGo-Backend/internal/utils/logger"
	"MealGo-Backend/internal/utils/mailing"
	"MealGo-Backend/pkg/midtrans"
	"MealGo-Backend/pkg/store"
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type (
	SubscriptionService interface {
		GetPlans(ctx context.Context) ([]domain.SubscriptionPlan, error)
		CreatePlan(ctx context.Context, req domain.CreatePlanRequest) (*domain.SubscriptionPlan, error)
		ActivatePlan(ctx context.Context, req domain.ActivatePlanRequest, userID string) (*domain.ActiveSubscription, error)
		AssignPlan(ctx context.Context, planID string, userID string) (*domain.ActiveSubscription, error)
		ClosePlan(ctx context.Context, userID string) (int64, error)
		GetCurrentSubscription(ctx context.Context, userID string) (*domain.ActiveSubscription, error)
		Checkout(ctx context.Context, req domain.ActivatePlanRequest, userID string) (*domain.CheckoutResponse, error)
		HandleNotification(ctx context.Context, n domain.MidtransNotification) error
	}

	subscriptionService struct {
		subscriptionRepository SubscriptionRepository
		midtransService        midtrans.MidtransService
		mailer                 mailing.Mailer
		now                    func() time.Time
	}
)

func NewSubscriptionService(
	subscriptionRepository SubscriptionRepository,
	midtransService midtrans.MidtransService,
	mailer mailing.Mailer,
) SubscriptionService {
	return &subscriptionService{
		subscriptionRepository: subscriptionRepository,
		midtransService:        midtransService,
		mailer:                 mailer,
		now:                    time.Now,
	}
}

func toPlan(p *entities.Subscription) domain.SubscriptionPlan {
	return domain.SubscriptionPlan{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		IsActive:    p.IsActive,
	}
}

func toActive(row *entities.UserSubscription, plan *entities.Subscription) *domain.ActiveSubscription {
	res := &domain.ActiveSubscription{
		SubscriptionID: row.SubscriptionID.String(),
		Status:         row.Status,
		StartDate:      row.StartDate.Format(domain.DateLayout),
	}
	if plan != nil {
		res.Name = plan.Name
	}
	return res
}

func (s *subscriptionService) GetPlans(ctx context.Context) ([]domain.SubscriptionPlan, error) {
	plans, err := s.subscriptionRepository.GetPlans(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]domain.SubscriptionPlan, 0, len(plans))
	for i := range plans {
		result = append(result, toPlan(&plans[i]))
	}
	return result, nil
}

func (s *subscriptionService) CreatePlan(ctx context.Context, req domain.CreatePlanRequest) (*domain.SubscriptionPlan, error) {
	plan, err := s.subscriptionRepository.CreatePlan(ctx, &entities.Subscription{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		IsActive:    req.IsActive,
	})
	if err != nil {
		if store.IsDuplicate(err) {
			return nil, domain.ErrPlanAlreadyExists
		}
		return nil, err
	}
	res := toPlan(plan)
	return &res, nil
}

func (s *subscriptionService) loadPlan(ctx context.Context, planID string) (*entities.Subscription, error) {
	id, err := uuid.Parse(planID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	plan, err := s.subscriptionRepository.GetPlanByID(ctx, id)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, domain.ErrPlanNotFound
		}
		return nil, err
	}
	return plan, nil
}

func (s *subscriptionService) activate(ctx context.Context, userID uuid.UUID, plan *entities.Subscription) (*domain.ActiveSubscription, error) {
	row, err := s.subscriptionRepository.ActivateSubscription(ctx, userID, plan.ID, s.now())
	if err != nil {
		return nil, err
	}

	if user, err := s.subscriptionRepository.GetUserByID(ctx, userID); err == nil {
		if err := s.mailer.SendMail(user.Email, "Your MealGo plan is active", mailing.SubscriptionBody(user.Name, plan.Name)); err != nil {
			logger.Warn("failed to send subscription mail", zap.String("user_id", userID.String()), zap.Error(err))
		}
	}
	return toActive(row, plan), nil
}

// ActivatePlan lets a user switch to a free plan directly. Paid plans go
// through Checkout.
func (s *subscriptionService) ActivatePlan(ctx context.Context, req domain.ActivatePlanRequest, userID string) (*domain.ActiveSubscription, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	plan, err := s.loadPlan(ctx, req.SubscriptionID)
	if err != nil {
		return nil, err
	}
	if !plan.IsActive {
		return nil, domain.ErrPlanInactive
	}
	if plan.Price > 0 {
		return nil, domain.ErrPaymentRequired
	}
	return s.activate(ctx, uid, plan)
}

// AssignPlan activates any plan for a user without payment. Admin only.
func (s *subscriptionService) AssignPlan(ctx context.Context, planID string, userID string) (*domain.ActiveSubscription, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	plan, err := s.loadPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	if _, err := s.subscriptionRepository.GetUserByID(ctx, uid); err != nil {
		if store.IsNotFound(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return s.activate(ctx, uid, plan)
}

func (s *subscriptionService) ClosePlan(ctx context.Context, userID string) (int64, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return 0, domain.ErrParseUUID
	}
	return s.subscriptionRepository.CloseActiveSubscription(ctx, uid, s.now())
}

func (s *subscriptionService) GetCurrentSubscription(ctx context.Context, userID string) (*domain.ActiveSubscription, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	row, err := s.subscriptionRepository.GetActiveSubscription(ctx, uid)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, domain.ErrNoActiveSubscription
		}
		return nil, err
	}
	return toActive(row, row.Subscription), nil
}

func (s *subscriptionService) Checkout(ctx context.Context, req domain.ActivatePlanRequest, userID string) (*domain.CheckoutResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	plan, err := s.loadPlan(ctx, req.SubscriptionID)
	if err != nil {
		return nil, err
	}
	if !plan.IsActive {
		return nil, domain.ErrPlanInactive
	}
	if plan.Price <= 0 {
		return nil, domain.ErrFreePlanCheckout
	}
	user, err := s.subscriptionRepository.GetUserByID(ctx, uid)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	orderID, err := EncodeOrderID(uid, plan.ID)
	if err != nil {
		return nil, err
	}
	return s.midtransService.CreateTransaction(ctx, midtrans.CheckoutRequest{
		OrderID:       orderID,
		Amount:        int64(math.Round(plan.Price)),
		ItemID:        plan.ID.String(),
		ItemName:      plan.Name,
		CustomerName:  user.Name,
		CustomerEmail: user.Email,
	})
}

func paid(n domain.MidtransNotification) bool {
	switch n.TransactionStatus {
	case "settlement":
		return true
	case "capture":
		return n.FraudStatus == "" || n.FraudStatus == "accept"
	}
	return false
}

// HandleNotification activates the purchased plan once midtrans reports the
// payment as settled. Other statuses are acknowledged and ignored.
func (s *subscriptionService) HandleNotification(ctx context.Context, n domain.MidtransNotification) error {
	if !s.midtransService.VerifySignature(n) {
		return domain.ErrInvalidSignature
	}
	if !paid(n) {
		logger.Info("ignoring payment notification",
			zap.String("order_id", n.OrderID),
			zap.String("status", n.TransactionStatus))
		return nil
	}

	userID, planID, err := DecodeOrderID(n.OrderID)
	if err != nil {
		return err
	}
	plan, err := s.subscriptionRepository.GetPlanByID(ctx, planID)
	if err != nil {
		if store.IsNotFound(err) {
			return domain.ErrPlanNotFound
		}
		return err
	}
	_, err = s.activate(ctx, userID, plan)
	return err
}
