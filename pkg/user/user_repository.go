package user

import (
	"MealGo-Backend/entities"
	"MealGo-Backend/pkg/store"
	"context"
	"time"

	"github.com/google/uuid"
)

type (
	UserRepository interface {
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
		GetUsers(ctx context.Context, page, limit int) ([]entities.User, int64, error)
		CreateUser(ctx context.Context, user *entities.User) (*entities.User, error)
		EnsureUserByEmail(ctx context.Context, email, name string) (*entities.User, bool, error)
		UpdateUser(ctx context.Context, id uuid.UUID, fields map[store.Column]any) (*entities.User, error)
		DeleteUser(ctx context.Context, id uuid.UUID) error
		GetActiveSubscription(ctx context.Context, userID uuid.UUID) (*entities.UserSubscription, error)
		GetActiveSubscriptions(ctx context.Context, userIDs []uuid.UUID) ([]entities.UserSubscription, error)
		ActivateSubscription(ctx context.Context, userID, planID uuid.UUID, today time.Time) error
	}

	userRepository struct {
		store *store.Facade
	}
)

func NewUserRepository(s *store.Facade) UserRepository {
	return &userRepository{store: s}
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return store.Get[entities.User](ctx, r.store, store.ColEmail, email)
}

func (r *userRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return store.Get[entities.User](ctx, r.store, store.ColID, id)
}

func (r *userRepository) GetUsers(ctx context.Context, page, limit int) ([]entities.User, int64, error) {
	return store.ListPage[entities.User](ctx, r.store, page, limit)
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) (*entities.User, error) {
	return store.Insert(ctx, r.store, user)
}

func (r *userRepository) EnsureUserByEmail(ctx context.Context, email, name string) (*entities.User, bool, error) {
	return r.store.EnsureUserByEmail(ctx, email, name)
}

func (r *userRepository) UpdateUser(ctx context.Context, id uuid.UUID, fields map[store.Column]any) (*entities.User, error) {
	return store.Update[entities.User](ctx, r.store, store.ColID, id, fields)
}

func (r *userRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return r.store.DeleteUser(ctx, id)
}

func (r *userRepository) GetActiveSubscription(ctx context.Context, userID uuid.UUID) (*entities.UserSubscription, error) {
	return r.store.ActiveSubscriptionForUser(ctx, userID)
}

func (r *userRepository) GetActiveSubscriptions(ctx context.Context, userIDs []uuid.UUID) ([]entities.UserSubscription, error) {
	return r.store.ActiveSubscriptionsForUsers(ctx, userIDs)
}

func (r *userRepository) ActivateSubscription(ctx context.Context, userID, planID uuid.UUID, today time.Time) error {
	_, err := r.store.ActivateSubscription(ctx, userID, planID, today)
	return err
}
