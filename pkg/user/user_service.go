package user

import (
	"MealGo-Backend/domain"
	"MealGo-Backend/entities"
	"MealGo-Backend/internal/utils"
	"MealGo-Backend/internal/utils/logger"
	"MealGo-Backend/internal/utils/mailing"
	"MealGo-Backend/pkg/jwt"
	"MealGo-Backend/pkg/store"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (*domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (*domain.UserResponse, error)
		GetUsers(ctx context.Context, page domain.PaginationRequest) (*domain.UserListResponse, error)
		GetUserByID(ctx context.Context, userID string) (*domain.UserResponse, error)
		CreateUser(ctx context.Context, req domain.CreateUserRequest) (*domain.UserResponse, error)
		UpdateUser(ctx context.Context, userID string, req domain.UpdateUserRequest) (*domain.UserResponse, error)
		DeleteUser(ctx context.Context, userID string) error
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		mailer         mailing.Mailer
		now            func() time.Time
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, mailer mailing.Mailer) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		mailer:         mailer,
		now:            time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func newUserResponse(user *entities.User, sub *entities.UserSubscription) domain.UserResponse {
	res := domain.UserResponse{
		ID:           user.ID.String(),
		Name:         user.Name,
		Email:        user.Email,
		Phone:        user.Phone,
		Role:         user.Role,
		WeeklyBudget: user.WeeklyBudget,
		CreatedAt:    user.CreatedAt,
	}
	if sub != nil {
		res.Subscription = &domain.ActiveSubscription{
			SubscriptionID: sub.SubscriptionID.String(),
			Status:         sub.Status,
			StartDate:      sub.StartDate.Format(domain.DateLayout),
		}
		if sub.Subscription != nil {
			res.Subscription.Name = sub.Subscription.Name
		}
	}
	return res
}

func (s *userService) toResponse(ctx context.Context, user *entities.User) (*domain.UserResponse, error) {
	sub, err := s.userRepository.GetActiveSubscription(ctx, user.ID)
	if err != nil {
		if !store.IsNotFound(err) {
			return nil, err
		}
		sub = nil
	}
	res := newUserResponse(user, sub)
	return &res, nil
}

func (s *userService) welcome(user *entities.User) {
	if err := s.mailer.SendMail(user.Email, "Welcome to MealGo", mailing.WelcomeBody(user.Name)); err != nil {
		logger.Warn("failed to send welcome mail", zap.String("user_id", user.ID.String()), zap.Error(err))
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.UserResponse, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, domain.ErrHashPassword
	}

	user, err := s.userRepository.CreateUser(ctx, &entities.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    normalizeEmail(req.Email),
		Password: hash,
		Phone:    req.Phone,
		Role:     domain.RoleUser,
	})
	if err != nil {
		if store.IsDuplicate(err) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, err
	}

	s.welcome(user)
	return s.toResponse(ctx, user)
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if store.IsNotFound(err) {
			return nil, domain.ErrCredentialsInvalid
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(req.Password, user.Password) {
		return nil, domain.ErrCredentialsInvalid
	}

	token, err := s.jwtService.GenerateTokenUser(user.ID.String(), user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &domain.LoginResponse{Token: token, Role: user.Role}, nil
}

func (s *userService) load(ctx context.Context, userID string) (*entities.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Me(ctx context.Context, userID string) (*domain.UserResponse, error) {
	user, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, user)
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.UserResponse, error) {
	return s.Me(ctx, userID)
}

// GetUsers returns one page of accounts, newest first. Active subscriptions
// are loaded for that page only, in a single query.
func (s *userService) GetUsers(ctx context.Context, page domain.PaginationRequest) (*domain.UserListResponse, error) {
	page.Normalize()
	users, total, err := s.userRepository.GetUsers(ctx, page.Page, page.Limit)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(users))
	for i := range users {
		ids[i] = users[i].ID
	}
	subs, err := s.userRepository.GetActiveSubscriptions(ctx, ids)
	if err != nil {
		return nil, err
	}
	active := make(map[uuid.UUID]*entities.UserSubscription, len(subs))
	for i := range subs {
		if _, ok := active[subs[i].UserID]; !ok {
			active[subs[i].UserID] = &subs[i]
		}
	}

	result := make([]domain.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, newUserResponse(&users[i], active[users[i].ID]))
	}
	return &domain.UserListResponse{
		Users:      result,
		Pagination: domain.NewPaginationResponse(page, total),
	}, nil
}

// CreateUser provisions an account for an admin. With a password it behaves
// like Register; without one the account is created locked, and an existing
// account under the same email is returned unchanged.
func (s *userService) CreateUser(ctx context.Context, req domain.CreateUserRequest) (*domain.UserResponse, error) {
	var planID uuid.UUID
	if req.SubscriptionID != "" {
		id, err := uuid.Parse(req.SubscriptionID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		planID = id
	}

	email := normalizeEmail(req.Email)
	name := strings.TrimSpace(req.Name)

	var (
		user    *entities.User
		created bool
		err     error
	)
	if req.Password != "" {
		hash, herr := utils.HashPassword(req.Password)
		if herr != nil {
			return nil, domain.ErrHashPassword
		}
		user, err = s.userRepository.CreateUser(ctx, &entities.User{
			Name:         name,
			Email:        email,
			Password:     hash,
			Phone:        req.Phone,
			Role:         domain.RoleUser,
			WeeklyBudget: req.WeeklyBudget,
		})
		if err != nil {
			if store.IsDuplicate(err) {
				return nil, domain.ErrEmailAlreadyExists
			}
			return nil, err
		}
		created = true
	} else {
		user, created, err = s.userRepository.EnsureUserByEmail(ctx, email, name)
		if err != nil {
			return nil, err
		}
		fields := map[store.Column]any{}
		if req.Phone != nil {
			fields[store.ColPhone] = *req.Phone
		}
		if req.WeeklyBudget != nil {
			fields[store.ColWeeklyBudget] = *req.WeeklyBudget
		}
		if created && len(fields) > 0 {
			if user, err = s.userRepository.UpdateUser(ctx, user.ID, fields); err != nil {
				return nil, err
			}
		}
	}

	if planID != uuid.Nil {
		if err := s.userRepository.ActivateSubscription(ctx, user.ID, planID, s.now()); err != nil {
			if errors.Is(err, store.ErrReferenced) {
				return nil, domain.ErrPlanNotFound
			}
			return nil, err
		}
	}
	if created {
		s.welcome(user)
	}
	return s.toResponse(ctx, user)
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req domain.UpdateUserRequest) (*domain.UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	fields := map[store.Column]any{}
	if req.Name != nil {
		fields[store.ColName] = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		fields[store.ColPhone] = *req.Phone
	}
	if req.WeeklyBudget != nil {
		fields[store.ColWeeklyBudget] = *req.WeeklyBudget
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, domain.ErrHashPassword
		}
		fields[store.ColPassword] = hash
	}
	if len(fields) == 0 {
		return s.Me(ctx, userID)
	}

	user, err := s.userRepository.UpdateUser(ctx, id, fields)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return s.toResponse(ctx, user)
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		if store.IsNotFound(err) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return nil
}
