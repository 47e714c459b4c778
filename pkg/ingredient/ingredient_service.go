package ingredient

import (
	"MealGo-Backend/domain"
	"MealGo-Backend/entities"
	"MealGo-Backend/pkg/store"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

type (
	IngredientService interface {
		GetIngredients(ctx context.Context) ([]domain.IngredientResponse, error)
		AddIngredient(ctx context.Context, req domain.AddIngredientRequest) (*domain.IngredientResponse, error)
		UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest) (*domain.IngredientResponse, error)
		DeleteIngredient(ctx context.Context, id string) error
		GetIngredientUsage(ctx context.Context, id string) ([]domain.IngredientUsage, error)
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

func toIngredientResponse(i *entities.Ingredient) domain.IngredientResponse {
	return domain.IngredientResponse{
		ID:            i.ID.String(),
		Name:          i.Name,
		Category:      i.Category,
		Calories:      i.Calories,
		Protein:       i.Protein,
		Carbohydrates: i.Carbohydrates,
		Fat:           i.Fat,
	}
}

func mapStoreError(err error) error {
	switch {
	case store.IsNotFound(err):
		return domain.ErrIngredientNotFound
	case store.IsDuplicate(err):
		return domain.ErrIngredientExists
	}
	return err
}

func (s *ingredientService) GetIngredients(ctx context.Context) ([]domain.IngredientResponse, error) {
	items, err := s.ingredientRepository.GetIngredients(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.IngredientResponse, 0, len(items))
	for i := range items {
		result = append(result, toIngredientResponse(&items[i]))
	}
	return result, nil
}

func (s *ingredientService) AddIngredient(ctx context.Context, req domain.AddIngredientRequest) (*domain.IngredientResponse, error) {
	created, err := s.ingredientRepository.CreateIngredient(ctx, &entities.Ingredient{
		Name:          strings.TrimSpace(req.Name),
		Category:      strings.TrimSpace(req.Category),
		Calories:      req.Calories,
		Protein:       req.Protein,
		Carbohydrates: req.Carbohydrates,
		Fat:           req.Fat,
	})
	if err != nil {
		return nil, mapStoreError(err)
	}

	res := toIngredientResponse(created)
	return &res, nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest) (*domain.IngredientResponse, error) {
	ingredientID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	fields := map[store.Column]any{}
	if req.Name != nil {
		fields[store.ColName] = strings.TrimSpace(*req.Name)
	}
	if req.Category != nil {
		fields[store.ColCategory] = strings.TrimSpace(*req.Category)
	}
	if req.Calories != nil {
		fields[store.ColCalories] = *req.Calories
	}
	if req.Protein != nil {
		fields[store.ColProtein] = *req.Protein
	}
	if req.Carbohydrates != nil {
		fields[store.ColCarbohydrates] = *req.Carbohydrates
	}
	if req.Fat != nil {
		fields[store.ColFat] = *req.Fat
	}

	var updated *entities.Ingredient
	if len(fields) == 0 {
		updated, err = s.ingredientRepository.GetIngredientByID(ctx, ingredientID)
	} else {
		updated, err = s.ingredientRepository.UpdateIngredient(ctx, ingredientID, fields)
	}
	if err != nil {
		return nil, mapStoreError(err)
	}

	res := toIngredientResponse(updated)
	return &res, nil
}

// DeleteIngredient refuses to remove an ingredient that recipes still use and
// reports their names instead.
func (s *ingredientService) DeleteIngredient(ctx context.Context, id string) error {
	ingredientID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrParseUUID
	}

	usage, err := s.ingredientRepository.GetIngredientUsage(ctx, ingredientID)
	if err != nil {
		return err
	}
	if len(usage) > 0 {
		return &domain.IngredientInUseError{Recipes: recipeNames(usage)}
	}

	n, err := s.ingredientRepository.DeleteIngredient(ctx, ingredientID)
	if err != nil {
		if errors.Is(err, store.ErrReferenced) {
			return domain.ErrIngredientInUse
		}
		return err
	}
	if n == 0 {
		return domain.ErrIngredientNotFound
	}
	return nil
}

func (s *ingredientService) GetIngredientUsage(ctx context.Context, id string) ([]domain.IngredientUsage, error) {
	ingredientID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	usage, err := s.ingredientRepository.GetIngredientUsage(ctx, ingredientID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.IngredientUsage, 0, len(usage))
	for _, u := range usage {
		item := domain.IngredientUsage{
			RecipeID: u.RecipeID.String(),
			Quantity: u.Quantity,
			Unit:     u.Unit,
		}
		if u.Recipe != nil {
			item.RecipeName = u.Recipe.Name
		}
		result = append(result, item)
	}
	return result, nil
}

func recipeNames(usage []entities.RecipeIngredient) []string {
	names := make([]string, 0, len(usage))
	for _, u := range usage {
		if u.Recipe != nil {
			names = append(names, u.Recipe.Name)
			continue
		}
		names = append(names, u.RecipeID.String())
	}
	return names
}
