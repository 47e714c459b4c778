package mealplan

import (
	"context"
	"fmt"
	"testing"
	"time"

	"MealGo-Backend/domain"
	"MealGo-Backend/entities"
	"MealGo-Backend/pkg/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockMealPlanRepository struct {
	mock.Mock
}

func (m *mockMealPlanRepository) GetMealPlans(ctx context.Context, userID uuid.UUID) ([]entities.MealPlan, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]entities.MealPlan), args.Error(1)
}

func (m *mockMealPlanRepository) GetMealPlanByID(ctx context.Context, id uuid.UUID) (*entities.MealPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MealPlan), args.Error(1)
}

func (m *mockMealPlanRepository) CreateMealPlan(ctx context.Context, plan *entities.MealPlan) (*entities.MealPlan, error) {
	args := m.Called(ctx, plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MealPlan), args.Error(1)
}

func (m *mockMealPlanRepository) UpdateMealPlan(ctx context.Context, id uuid.UUID, fields map[store.Column]any) (*entities.MealPlan, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MealPlan), args.Error(1)
}

func (m *mockMealPlanRepository) DeleteMealPlan(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockMealPlanRepository) GetPlanRecipes(ctx context.Context, planID uuid.UUID) ([]entities.PlanRecipe, error) {
	args := m.Called(ctx, planID)
	return args.Get(0).([]entities.PlanRecipe), args.Error(1)
}

func (m *mockMealPlanRepository) AddPlanRecipe(ctx context.Context, row *entities.PlanRecipe) error {
	return m.Called(ctx, row).Error(0)
}

func (m *mockMealPlanRepository) RemovePlanRecipe(ctx context.Context, planID, recipeID uuid.UUID, mealType string) (int, error) {
	args := m.Called(ctx, planID, recipeID, mealType)
	return args.Int(0), args.Error(1)
}

func date(s string) time.Time {
	t, _ := time.Parse(domain.DateLayout, s)
	return t
}

func TestCreateMealPlanDates(t *testing.T) {
	repo := new(mockMealPlanRepository)
	svc := NewMealPlanService(repo)
	userID := uuid.New()

	_, err := svc.CreateMealPlan(context.Background(), domain.CreateMealPlanRequest{
		Title: "Week", StartDate: "2026-10-19", EndDate: "2026-10-12",
	}, userID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	_, err = svc.CreateMealPlan(context.Background(), domain.CreateMealPlanRequest{
		Title: "Week", StartDate: "19/10/2026", EndDate: "2026-10-25",
	}, userID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidDate)

	repo.On("CreateMealPlan", mock.Anything, mock.MatchedBy(func(p *entities.MealPlan) bool {
		return p.StartDate.Equal(date("2026-10-19")) && p.EndDate.Equal(date("2026-10-25")) && p.UserID == userID
	})).Return(&entities.MealPlan{ID: uuid.New(), Title: "Week", StartDate: date("2026-10-19"), EndDate: date("2026-10-25")}, nil)

	plan, err := svc.CreateMealPlan(context.Background(), domain.CreateMealPlanRequest{
		Title: "Week", StartDate: "2026-10-19T08:00:00Z", EndDate: "2026-10-25",
	}, userID.String())
	require.NoError(t, err)
	assert.Equal(t, "2026-10-19", plan.StartDate)
	repo.AssertExpectations(t)
}

func TestMealPlanOwnership(t *testing.T) {
	repo := new(mockMealPlanRepository)
	svc := NewMealPlanService(repo)
	planID := uuid.New()

	repo.On("GetMealPlanByID", mock.Anything, planID).Return(&entities.MealPlan{ID: planID, UserID: uuid.New()}, nil)

	err := svc.DeleteMealPlan(context.Background(), planID.String(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUnauthorizedPlanAccess)
	repo.AssertNotCalled(t, "DeleteMealPlan", mock.Anything, mock.Anything)
}

func TestGetMealPlanDetail(t *testing.T) {
	repo := new(mockMealPlanRepository)
	svc := NewMealPlanService(repo)
	userID := uuid.New()
	planID := uuid.New()
	recipeID := uuid.New()

	repo.On("GetMealPlanByID", mock.Anything, planID).Return(&entities.MealPlan{ID: planID, UserID: userID, Title: "Week"}, nil)
	repo.On("GetPlanRecipes", mock.Anything, planID).Return([]entities.PlanRecipe{
		{PlanID: planID, RecipeID: recipeID, MealType: domain.MealBreakfast, Recipe: &entities.Recipe{Name: "Oats"}},
	}, nil)

	detail, err := svc.GetMealPlanDetail(context.Background(), planID.String(), userID.String())
	require.NoError(t, err)
	require.Len(t, detail.Recipes, 1)
	assert.Equal(t, "Oats", detail.Recipes[0].RecipeName)
	assert.Equal(t, domain.MealBreakfast, detail.Recipes[0].MealType)
}

func TestAddAndRemoveRecipe(t *testing.T) {
	repo := new(mockMealPlanRepository)
	svc := NewMealPlanService(repo)
	userID := uuid.New()
	planID := uuid.New()
	recipeID := uuid.New()
	req := domain.PlanRecipeRequest{RecipeID: recipeID.String(), MealType: domain.MealDinner}

	repo.On("GetMealPlanByID", mock.Anything, planID).Return(&entities.MealPlan{ID: planID, UserID: userID}, nil)

	err := svc.AddRecipe(context.Background(), planID.String(), domain.PlanRecipeRequest{RecipeID: recipeID.String(), MealType: "brunch"}, userID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidMealType)

	repo.On("AddPlanRecipe", mock.Anything, &entities.PlanRecipe{PlanID: planID, RecipeID: recipeID, MealType: domain.MealDinner}).
		Return(fmt.Errorf("%w: pk", store.ErrDuplicate)).Once()
	assert.ErrorIs(t, svc.AddRecipe(context.Background(), planID.String(), req, userID.String()), domain.ErrPlanRecipeExists)

	repo.On("RemovePlanRecipe", mock.Anything, planID, recipeID, domain.MealDinner).Return(0, nil).Once()
	assert.ErrorIs(t, svc.RemoveRecipe(context.Background(), planID.String(), req, userID.String()), domain.ErrPlanRecipeNotFound)

	repo.On("RemovePlanRecipe", mock.Anything, planID, recipeID, domain.MealDinner).Return(1, nil).Once()
	assert.NoError(t, svc.RemoveRecipe(context.Background(), planID.String(), req, userID.String()))
}
