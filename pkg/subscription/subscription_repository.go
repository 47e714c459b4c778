package subscription

import (
	"MealGo-Backend/entities"
	"MealGo-Backend/pkg/store"
	"context"
	"time"

	"github.com/google/uuid"
)

type (
	SubscriptionRepository interface {
		GetPlans(ctx context.Context) ([]entities.Subscription, error)
		GetPlanByID(ctx context.Context, id uuid.UUID) (*entities.Subscription, error)
		CreatePlan(ctx context.Context, plan *entities.Subscription) (*entities.Subscription, error)
		GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
		GetActiveSubscription(ctx context.Context, userID uuid.UUID) (*entities.UserSubscription, error)
		ActivateSubscription(ctx context.Context, userID, planID uuid.UUID, today time.Time) (*entities.UserSubscription, error)
		CloseActiveSubscription(ctx context.Context, userID uuid.UUID, today time.Time) (int64, error)
	}

	subscriptionRepository struct {
		store *store.Facade
	}
)

func NewSubscriptionRepository(s *store.Facade) SubscriptionRepository {
	return &subscriptionRepository{store: s}
}

func (r *subscriptionRepository) GetPlans(ctx context.Context) ([]entities.Subscription, error) {
	return store.ListOrdered[entities.Subscription](ctx, r.store, store.ColPrice, true)
}

func (r *subscriptionRepository) GetPlanByID(ctx context.Context, id uuid.UUID) (*entities.Subscription, error) {
	return store.Get[entities.Subscription](ctx, r.store, store.ColID, id)
}

func (r *subscriptionRepository) CreatePlan(ctx context.Context, plan *entities.Subscription) (*entities.Subscription, error) {
	return store.Insert(ctx, r.store, plan)
}

func (r *subscriptionRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return store.Get[entities.User](ctx, r.store, store.ColID, id)
}

func (r *subscriptionRepository) GetActiveSubscription(ctx context.Context, userID uuid.UUID) (*entities.UserSubscription, error) {
	return r.store.ActiveSubscriptionForUser(ctx, userID)
}

func (r *subscriptionRepository) ActivateSubscription(ctx context.Context, userID, planID uuid.UUID, today time.Time) (*entities.UserSubscription, error) {
	return r.store.ActivateSubscription(ctx, userID, planID, today)
}

func (r *subscriptionRepository) CloseActiveSubscription(ctx context.Context, userID uuid.UUID, today time.Time) (int64, error) {
	return r.store.CloseActiveSubscription(ctx, userID, today)
}
