package mealplan

import (
	"MealGo-Backend/domain"
	"MealGo-Backend/entities"
	"MealGo-Backend/pkg/store"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type (
	MealPlanService interface {
		GetMealPlans(ctx context.Context, userID string) ([]domain.MealPlan, error)
		GetMealPlanDetail(ctx context.Context, planID string, userID string) (domain.MealPlanDetail, error)
		CreateMealPlan(ctx context.Context, req domain.CreateMealPlanRequest, userID string) (domain.MealPlan, error)
		UpdateMealPlan(ctx context.Context, planID string, req domain.UpdateMealPlanRequest, userID string) (domain.MealPlan, error)
		DeleteMealPlan(ctx context.Context, planID string, userID string) error
		AddRecipe(ctx context.Context, planID string, req domain.PlanRecipeRequest, userID string) error
		RemoveRecipe(ctx context.Context, planID string, req domain.PlanRecipeRequest, userID string) error
	}

	mealPlanService struct {
		mealPlanRepository MealPlanRepository
	}
)

func NewMealPlanService(mealPlanRepository MealPlanRepository) MealPlanService {
	return &mealPlanService{mealPlanRepository: mealPlanRepository}
}

func toMealPlan(p *entities.MealPlan) domain.MealPlan {
	return domain.MealPlan{
		ID:        p.ID.String(),
		Title:     p.Title,
		StartDate: p.StartDate.Format(domain.DateLayout),
		EndDate:   p.EndDate.Format(domain.DateLayout),
		CreatedAt: p.CreatedAt,
	}
}

func parseRange(start, end string) (time.Time, time.Time, error) {
	s, err := domain.ParseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	e, err := domain.ParseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if e.Before(s) {
		return time.Time{}, time.Time{}, domain.ErrInvalidDateRange
	}
	return s, e, nil
}

// ownedPlan loads the plan and checks it belongs to userID.
func (s *mealPlanService) ownedPlan(ctx context.Context, planID, userID string) (*entities.MealPlan, error) {
	id, err := uuid.Parse(planID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	plan, err := s.mealPlanRepository.GetMealPlanByID(ctx, id)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, domain.ErrMealPlanNotFound
		}
		return nil, err
	}
	if plan.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedPlanAccess
	}
	return plan, nil
}

func (s *mealPlanService) GetMealPlans(ctx context.Context, userID string) ([]domain.MealPlan, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	plans, err := s.mealPlanRepository.GetMealPlans(ctx, id)
	if err != nil {
		return nil, err
	}
	result := make([]domain.MealPlan, 0, len(plans))
	for i := range plans {
		result = append(result, toMealPlan(&plans[i]))
	}
	return result, nil
}

func (s *mealPlanService) GetMealPlanDetail(ctx context.Context, planID string, userID string) (domain.MealPlanDetail, error) {
	plan, err := s.ownedPlan(ctx, planID, userID)
	if err != nil {
		return domain.MealPlanDetail{}, err
	}

	rows, err := s.mealPlanRepository.GetPlanRecipes(ctx, plan.ID)
	if err != nil {
		return domain.MealPlanDetail{}, err
	}
	recipes := make([]domain.PlanRecipe, 0, len(rows))
	for _, row := range rows {
		item := domain.PlanRecipe{RecipeID: row.RecipeID.String(), MealType: row.MealType}
		if row.Recipe != nil {
			item.RecipeName = row.Recipe.Name
		}
		recipes = append(recipes, item)
	}

	return domain.MealPlanDetail{MealPlan: toMealPlan(plan), Recipes: recipes}, nil
}

func (s *mealPlanService) CreateMealPlan(ctx context.Context, req domain.CreateMealPlanRequest, userID string) (domain.MealPlan, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return domain.MealPlan{}, domain.ErrParseUUID
	}
	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return domain.MealPlan{}, err
	}

	plan, err := s.mealPlanRepository.CreateMealPlan(ctx, &entities.MealPlan{
		UserID:    id,
		Title:     strings.TrimSpace(req.Title),
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return domain.MealPlan{}, err
	}
	return toMealPlan(plan), nil
}

func (s *mealPlanService) UpdateMealPlan(ctx context.Context, planID string, req domain.UpdateMealPlanRequest, userID string) (domain.MealPlan, error) {
	plan, err := s.ownedPlan(ctx, planID, userID)
	if err != nil {
		return domain.MealPlan{}, err
	}

	start := plan.StartDate.Format(domain.DateLayout)
	end := plan.EndDate.Format(domain.DateLayout)
	if req.StartDate != nil {
		start = *req.StartDate
	}
	if req.EndDate != nil {
		end = *req.EndDate
	}
	startDate, endDate, err := parseRange(start, end)
	if err != nil {
		return domain.MealPlan{}, err
	}

	fields := map[store.Column]any{}
	if req.Title != nil {
		fields[store.ColTitle] = strings.TrimSpace(*req.Title)
	}
	if req.StartDate != nil {
		fields[store.ColStartDate] = startDate
	}
	if req.EndDate != nil {
		fields[store.ColEndDate] = endDate
	}
	if len(fields) == 0 {
		return toMealPlan(plan), nil
	}

	updated, err := s.mealPlanRepository.UpdateMealPlan(ctx, plan.ID, fields)
	if err != nil {
		if store.IsNotFound(err) {
			return domain.MealPlan{}, domain.ErrMealPlanNotFound
		}
		return domain.MealPlan{}, err
	}
	return toMealPlan(updated), nil
}

func (s *mealPlanService) DeleteMealPlan(ctx context.Context, planID string, userID string) error {
	plan, err := s.ownedPlan(ctx, planID, userID)
	if err != nil {
		return err
	}
	if err := s.mealPlanRepository.DeleteMealPlan(ctx, plan.ID); err != nil {
		if store.IsNotFound(err) {
			return domain.ErrMealPlanNotFound
		}
		return err
	}
	return nil
}

func (s *mealPlanService) AddRecipe(ctx context.Context, planID string, req domain.PlanRecipeRequest, userID string) error {
	plan, err := s.ownedPlan(ctx, planID, userID)
	if err != nil {
		return err
	}
	recipeID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return domain.ErrParseUUID
	}
	if !domain.IsMealType(req.MealType) {
		return domain.ErrInvalidMealType
	}

	err = s.mealPlanRepository.AddPlanRecipe(ctx, &entities.PlanRecipe{
		PlanID:   plan.ID,
		RecipeID: recipeID,
		MealType: req.MealType,
	})
	switch {
	case err == nil:
		return nil
	case store.IsDuplicate(err):
		return domain.ErrPlanRecipeExists
	case errors.Is(err, store.ErrReferenced):
		return domain.ErrRecipeNotFound
	}
	return err
}

func (s *mealPlanService) RemoveRecipe(ctx context.Context, planID string, req domain.PlanRecipeRequest, userID string) error {
	plan, err := s.ownedPlan(ctx, planID, userID)
	if err != nil {
		return err
	}
	recipeID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return domain.ErrParseUUID
	}

	n, err := s.mealPlanRepository.RemovePlanRecipe(ctx, plan.ID, recipeID, req.MealType)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrPlanRecipeNotFound
	}
	return nil
}
