package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister   = "user registered successfully"
	MessageSuccessLogin      = "login successful"
	MessageSuccessLogout     = "logout successful"
	MessageSuccessGetDetail  = "success get user detail"
	MessageSuccessGetUsers   = "users retrieved successfully"
	MessageSuccessCreateUser = "user created successfully"
	MessageSuccessUpdateUser = "user updated successfully"
	MessageSuccessDeleteUser = "user deleted successfully"

	MessageFailedRegister   = "failed to register user"
	MessageFailedLogin      = "failed to login"
	MessageFailedGetDetail  = "failed to get user detail"
	MessageFailedGetUsers   = "failed to retrieve users"
	MessageFailedCreateUser = "failed to create user"
	MessageFailedUpdateUser = "failed to update user"
	MessageFailedDeleteUser = "failed to delete user"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrCredentialsInvalid = errors.New("email or password is wrong")
	ErrHashPassword       = errors.New("failed to hash password")
)

type (
	RegisterRequest struct {
		Name     string  `json:"name" validate:"required,max=120"`
		Email    string  `json:"email" validate:"required,email"`
		Password string  `json:"password" validate:"required,min=8"`
		Phone    *string `json:"phone" validate:"omitempty,max=32"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	// CreateUserRequest is the admin form. Without a password the account is
	// created locked; SubscriptionID activates an initial plan.
	CreateUserRequest struct {
		Name           string   `json:"name" validate:"required,max=120"`
		Email          string   `json:"email" validate:"required,email"`
		Password       string   `json:"password" validate:"omitempty,min=8"`
		Phone          *string  `json:"phone" validate:"omitempty,max=32"`
		WeeklyBudget   *float64 `json:"weekly_budget" validate:"omitempty,gte=0"`
		SubscriptionID string   `json:"subscription_id" validate:"omitempty,uuid"`
	}

	UpdateUserRequest struct {
		Name         *string  `json:"name" validate:"omitempty,min=1,max=120"`
		Phone        *string  `json:"phone" validate:"omitempty,max=32"`
		WeeklyBudget *float64 `json:"weekly_budget" validate:"omitempty,gte=0"`
		Password     *string  `json:"password" validate:"omitempty,min=8"`
	}

	UserResponse struct {
		ID           string              `json:"id"`
		Name         string              `json:"name"`
		Email        string              `json:"email"`
		Phone        *string             `json:"phone,omitempty"`
		Role         string              `json:"role"`
		WeeklyBudget *float64            `json:"weekly_budget,omitempty"`
		Subscription *ActiveSubscription `json:"subscription,omitempty"`
		CreatedAt    time.Time           `json:"created_at"`
	}

	UserListResponse struct {
		Users      []UserResponse     `json:"users"`
		Pagination PaginationResponse `json:"pagination"`
	}
)
