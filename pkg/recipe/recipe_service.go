package recipe

import (
	"MealGo-Backend/domain"
	"MealGo-Backend/entities"
	"MealGo-Backend/internal/utils/logger"
	"MealGo-Backend/internal/utils/storage"
	"MealGo-Backend/pkg/store"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, filter domain.RecipeFilter, userID string) ([]domain.Recipe, error)
		GetRecipeDetail(ctx context.Context, recipeID string, userID string) (domain.RecipeDetail, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.Recipe, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID, role string) (domain.Recipe, error)
		DeleteRecipe(ctx context.Context, recipeID string, userID, role string) error
		ToggleFavorite(ctx context.Context, recipeID string, userID string) (bool, error)
		RateRecipe(ctx context.Context, recipeID string, req domain.RateRecipeRequest, userID string) (domain.RatingResponse, error)
		UploadRecipeImage(ctx context.Context, req domain.UploadRecipeImageRequest, userID, role string) (string, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		s3:               s3,
	}
}

func parseIDs(ids ...string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		out = append(out, parsed)
	}
	return out, nil
}

func toRecipe(r *entities.Recipe, favorite bool) domain.Recipe {
	res := domain.Recipe{
		ID:              r.ID.String(),
		Name:            r.Name,
		Instructions:    r.Instructions,
		PrepMinutes:     r.PrepMinutes,
		Difficulty:      r.Difficulty,
		DifficultyLevel: domain.ClassifyDifficulty(r.Difficulty),
		ImageURL:        r.ImageURL,
		Ingredients:     make([]domain.RecipeIngredient, 0, len(r.Ingredients)),
		IsFavorite:      favorite,
		CreatedAt:       r.CreatedAt,
	}
	if r.UserID != nil {
		res.OwnerID = r.UserID.String()
	}
	for _, ri := range r.Ingredients {
		item := domain.RecipeIngredient{
			IngredientID: ri.IngredientID.String(),
			Quantity:     ri.Quantity,
			Unit:         ri.Unit,
		}
		if ri.Ingredient != nil {
			item.Name = ri.Ingredient.Name
		}
		res.Ingredients = append(res.Ingredients, item)
	}
	return res
}

func toRecipeIngredients(items []domain.RecipeIngredientRequest) ([]entities.RecipeIngredient, error) {
	out := make([]entities.RecipeIngredient, 0, len(items))
	for _, item := range items {
		id, err := uuid.Parse(item.IngredientID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		out = append(out, entities.RecipeIngredient{
			IngredientID: id,
			Quantity:     item.Quantity,
			Unit:         strings.TrimSpace(item.Unit),
		})
	}
	return out, nil
}

func mapStoreError(err error) error {
	switch {
	case store.IsNotFound(err):
		return domain.ErrRecipeNotFound
	case errors.Is(err, store.ErrReferenced):
		return domain.ErrIngredientNotFound
	}
	return err
}

// FilterRecipes keeps recipes whose name, instructions or difficulty contain
// the query, ignoring case. FavoritesOnly further keeps only favorites.
func FilterRecipes(recipes []domain.Recipe, filter domain.RecipeFilter) []domain.Recipe {
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	out := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if filter.FavoritesOnly && !r.IsFavorite {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(r.Name), query) &&
			!strings.Contains(strings.ToLower(r.Instructions), query) &&
			!strings.Contains(strings.ToLower(r.Difficulty), query) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (s *recipeService) GetRecipes(ctx context.Context, filter domain.RecipeFilter, userID string) ([]domain.Recipe, error) {
	ids, err := parseIDs(userID)
	if err != nil {
		return nil, err
	}

	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return nil, err
	}
	favoriteIDs, err := s.recipeRepository.GetFavoriteRecipeIDs(ctx, ids[0])
	if err != nil {
		return nil, err
	}
	favorites := make(map[uuid.UUID]bool, len(favoriteIDs))
	for _, id := range favoriteIDs {
		favorites[id] = true
	}

	result := make([]domain.Recipe, 0, len(recipes))
	for i := range recipes {
		result = append(result, toRecipe(&recipes[i], favorites[recipes[i].ID]))
	}
	return FilterRecipes(result, filter), nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string, userID string) (domain.RecipeDetail, error) {
	ids, err := parseIDs(recipeID, userID)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, ids[0])
	if err != nil {
		return domain.RecipeDetail{}, mapStoreError(err)
	}
	favorite, err := s.recipeRepository.IsFavorite(ctx, ids[1], ids[0])
	if err != nil {
		return domain.RecipeDetail{}, err
	}
	summary, err := s.recipeRepository.GetRatingSummary(ctx, ids[0])
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	return domain.RecipeDetail{
		Recipe: toRecipe(recipe, favorite),
		Rating: domain.RatingSummary{Average: summary.Average, Count: summary.Count},
	}, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.Recipe, error) {
	ids, err := parseIDs(userID)
	if err != nil {
		return domain.Recipe{}, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return domain.Recipe{}, domain.ErrRecipeNameRequired
	}
	if strings.TrimSpace(req.Instructions) == "" {
		return domain.Recipe{}, domain.ErrRecipeInstructions
	}
	items, err := toRecipeIngredients(req.Ingredients)
	if err != nil {
		return domain.Recipe{}, err
	}

	recipe := &entities.Recipe{
		UserID:       &ids[0],
		Name:         strings.TrimSpace(req.Name),
		Instructions: strings.TrimSpace(req.Instructions),
		PrepMinutes:  req.PrepMinutes,
		Difficulty:   strings.TrimSpace(req.Difficulty),
	}
	if _, err := s.recipeRepository.CreateRecipe(ctx, recipe, items); err != nil {
		return domain.Recipe{}, mapStoreError(err)
	}

	created, err := s.recipeRepository.GetRecipeByID(ctx, recipe.ID)
	if err != nil {
		return domain.Recipe{}, mapStoreError(err)
	}
	return toRecipe(created, false), nil
}

// authorize loads the recipe and checks that the caller owns it. Admins may
// touch any recipe, and recipes without an owner are admin-only.
func (s *recipeService) authorize(ctx context.Context, recipeID uuid.UUID, userID, role string) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	if role == domain.RoleAdmin {
		return recipe, nil
	}
	if recipe.UserID == nil || recipe.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedRecipeAccess
	}
	return recipe, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID, role string) (domain.Recipe, error) {
	ids, err := parseIDs(recipeID)
	if err != nil {
		return domain.Recipe{}, err
	}
	if _, err := s.authorize(ctx, ids[0], userID, role); err != nil {
		return domain.Recipe{}, err
	}

	fields := map[store.Column]any{}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return domain.Recipe{}, domain.ErrRecipeNameRequired
		}
		fields[store.ColName] = strings.TrimSpace(*req.Name)
	}
	if req.Instructions != nil {
		if strings.TrimSpace(*req.Instructions) == "" {
			return domain.Recipe{}, domain.ErrRecipeInstructions
		}
		fields[store.ColInstructions] = strings.TrimSpace(*req.Instructions)
	}
	if req.PrepMinutes != nil {
		fields[store.ColPrepMinutes] = *req.PrepMinutes
	}
	if req.Difficulty != nil {
		fields[store.ColDifficulty] = strings.TrimSpace(*req.Difficulty)
	}

	var items *[]entities.RecipeIngredient
	if req.Ingredients != nil {
		converted, err := toRecipeIngredients(*req.Ingredients)
		if err != nil {
			return domain.Recipe{}, err
		}
		items = &converted
		if len(fields) == 0 {
			fields[store.ColUpdatedAt] = time.Now()
		}
	}

	if len(fields) > 0 || items != nil {
		if err := s.recipeRepository.UpdateRecipe(ctx, ids[0], fields, items); err != nil {
			return domain.Recipe{}, mapStoreError(err)
		}
	}

	updated, err := s.recipeRepository.GetRecipeByID(ctx, ids[0])
	if err != nil {
		return domain.Recipe{}, mapStoreError(err)
	}
	return toRecipe(updated, false), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string, userID, role string) error {
	ids, err := parseIDs(recipeID)
	if err != nil {
		return err
	}
	recipe, err := s.authorize(ctx, ids[0], userID, role)
	if err != nil {
		return err
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, ids[0]); err != nil {
		return mapStoreError(err)
	}

	if recipe.ImageURL != "" {
		if key := s.s3.GetObjectKeyFromLink(recipe.ImageURL); key != "" {
			if err := s.s3.DeleteFile(ctx, key); err != nil {
				logger.Warn("failed to delete recipe image", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return nil
}

// ToggleFavorite flips the favorite flag and returns the new state.
func (s *recipeService) ToggleFavorite(ctx context.Context, recipeID string, userID string) (bool, error) {
	ids, err := parseIDs(recipeID, userID)
	if err != nil {
		return false, err
	}

	favorite, err := s.recipeRepository.IsFavorite(ctx, ids[1], ids[0])
	if err != nil {
		return false, err
	}
	if favorite {
		return false, s.recipeRepository.RemoveFavorite(ctx, ids[1], ids[0])
	}
	if err := s.recipeRepository.AddFavorite(ctx, ids[1], ids[0]); err != nil {
		return false, mapStoreError(err)
	}
	return true, nil
}

func (s *recipeService) RateRecipe(ctx context.Context, recipeID string, req domain.RateRecipeRequest, userID string) (domain.RatingResponse, error) {
	ids, err := parseIDs(recipeID, userID)
	if err != nil {
		return domain.RatingResponse{}, err
	}
	if req.Stars < 1 || req.Stars > 5 {
		return domain.RatingResponse{}, domain.ErrInvalidStars
	}

	rating, err := s.recipeRepository.UpsertRating(ctx, &entities.Rating{
		UserID:    ids[1],
		RecipeID:  ids[0],
		Stars:     req.Stars,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	})
	if err != nil {
		if errors.Is(err, store.ErrReferenced) {
			return domain.RatingResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RatingResponse{}, err
	}

	return domain.RatingResponse{
		ID:        rating.ID.String(),
		RecipeID:  rating.RecipeID.String(),
		Stars:     rating.Stars,
		Comment:   rating.Comment,
		CreatedAt: rating.CreatedAt,
	}, nil
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, req domain.UploadRecipeImageRequest, userID, role string) (string, error) {
	ids, err := parseIDs(req.RecipeID)
	if err != nil {
		return "", err
	}
	recipe, err := s.authorize(ctx, ids[0], userID, role)
	if err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("recipe-%s", recipe.ID.String())
	var objectKey string
	if existingKey := s.s3.GetObjectKeyFromLink(recipe.ImageURL); existingKey != "" {
		objectKey, err = s.s3.UpdateFile(ctx, existingKey, req.Image, storage.AllowImage...)
	} else {
		objectKey, err = s.s3.UploadFile(ctx, fileName, req.Image, "recipes", storage.AllowImage...)
	}
	if err != nil {
		return "", err
	}

	link := s.s3.GetPublicLinkKey(objectKey)
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe.ID, map[store.Column]any{store.ColImageURL: link}, nil); err != nil {
		return "", mapStoreError(err)
	}
	return link, nil
}
