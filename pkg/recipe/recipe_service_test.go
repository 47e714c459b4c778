package recipe

import (
	"context"
	"mime/multipart"
	"testing"

	"MealGo-Backend/domain"
	"MealGo-Backend/entities"
	"MealGo-Backend/pkg/store"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRecipeRepository struct {
	mock.Mock
}

func (m *mockRecipeRepository) GetRecipes(ctx context.Context) ([]entities.Recipe, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entities.Recipe), args.Error(1)
}

func (m *mockRecipeRepository) GetRecipeByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Recipe), args.Error(1)
}

func (m *mockRecipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe, items []entities.RecipeIngredient) (*entities.Recipe, error) {
	args := m.Called(ctx, recipe, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Recipe), args.Error(1)
}

func (m *mockRecipeRepository) UpdateRecipe(ctx context.Context, id uuid.UUID, fields map[store.Column]any, items *[]entities.RecipeIngredient) error {
	return m.Called(ctx, id, fields, items).Error(0)
}

func (m *mockRecipeRepository) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRecipeRepository) GetFavoriteRecipeIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *mockRecipeRepository) IsFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, recipeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRecipeRepository) AddFavorite(ctx context.Context, userID, recipeID uuid.UUID) error {
	return m.Called(ctx, userID, recipeID).Error(0)
}

func (m *mockRecipeRepository) RemoveFavorite(ctx context.Context, userID, recipeID uuid.UUID) error {
	return m.Called(ctx, userID, recipeID).Error(0)
}

func (m *mockRecipeRepository) UpsertRating(ctx context.Context, rating *entities.Rating) (*entities.Rating, error) {
	args := m.Called(ctx, rating)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Rating), args.Error(1)
}

func (m *mockRecipeRepository) GetRatingSummary(ctx context.Context, recipeID uuid.UUID) (*store.RatingSummary, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.RatingSummary), args.Error(1)
}

type mockS3 struct {
	mock.Mock
}

func (m *mockS3) UploadFile(ctx context.Context, fileName string, file *multipart.FileHeader, folder string, allowed ...string) (string, error) {
	args := m.Called(ctx, fileName, file, folder)
	return args.String(0), args.Error(1)
}

func (m *mockS3) UpdateFile(ctx context.Context, objectKey string, file *multipart.FileHeader, allowed ...string) (string, error) {
	args := m.Called(ctx, objectKey, file)
	return args.String(0), args.Error(1)
}

func (m *mockS3) DeleteFile(ctx context.Context, objectKey string) error {
	return m.Called(ctx, objectKey).Error(0)
}

func (m *mockS3) GetPublicLinkKey(objectKey string) string {
	return "https://cdn.example.com/" + objectKey
}

func (m *mockS3) GetObjectKeyFromLink(link string) string {
	const prefix = "https://cdn.example.com/"
	if len(link) > len(prefix) && link[:len(prefix)] == prefix {
		return link[len(prefix):]
	}
	return ""
}

func TestFilterRecipes(t *testing.T) {
	recipes := []domain.Recipe{
		{Name: "Tomato Salad", Instructions: "Chop", Difficulty: "fácil", IsFavorite: true},
		{Name: "Lentil Soup", Instructions: "Simmer the tomatoes", Difficulty: "media"},
		{Name: "Paella", Instructions: "Patience", Difficulty: "Difícil"},
	}

	cases := []struct {
		name   string
		filter domain.RecipeFilter
		want   []string
	}{
		{"empty query keeps all", domain.RecipeFilter{}, []string{"Tomato Salad", "Lentil Soup", "Paella"}},
		{"matches name and instructions", domain.RecipeFilter{Query: "TOMATO"}, []string{"Tomato Salad", "Lentil Soup"}},
		{"matches difficulty", domain.RecipeFilter{Query: "difícil"}, []string{"Paella"}},
		{"favorites only", domain.RecipeFilter{FavoritesOnly: true}, []string{"Tomato Salad"}},
		{"favorites and query", domain.RecipeFilter{Query: "soup", FavoritesOnly: true}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := []string{}
			for _, r := range FilterRecipes(recipes, tc.filter) {
				got = append(got, r.Name)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGetRecipesMarksFavorites(t *testing.T) {
	repo := new(mockRecipeRepository)
	svc := NewRecipeService(repo, new(mockS3))
	userID := uuid.New()
	fav := uuid.New()
	other := uuid.New()
	tomato := &entities.Ingredient{Name: "Tomato"}

	repo.On("GetRecipes", mock.Anything).Return([]entities.Recipe{
		{ID: fav, Name: "Salad", Difficulty: "easy", Ingredients: []*entities.RecipeIngredient{{Quantity: 2, Unit: "unit", Ingredient: tomato}}},
		{ID: other, Name: "Soup", Difficulty: "hard"},
	}, nil)
	repo.On("GetFavoriteRecipeIDs", mock.Anything, userID).Return([]uuid.UUID{fav}, nil)

	res, err := svc.GetRecipes(context.Background(), domain.RecipeFilter{}, userID.String())
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.True(t, res[0].IsFavorite)
	assert.False(t, res[1].IsFavorite)
	assert.Equal(t, "Tomato", res[0].Ingredients[0].Name)
	assert.Equal(t, domain.DifficultyHard, res[1].DifficultyLevel)
}

func TestCreateRecipe(t *testing.T) {
	repo := new(mockRecipeRepository)
	svc := NewRecipeService(repo, new(mockS3))
	userID := uuid.New()
	tomatoID := uuid.New()

	_, err := svc.CreateRecipe(context.Background(), domain.CreateRecipeRequest{Name: " ", Instructions: "x"}, userID.String())
	assert.ErrorIs(t, err, domain.ErrRecipeNameRequired)
	_, err = svc.CreateRecipe(context.Background(), domain.CreateRecipeRequest{Name: "Salad"}, userID.String())
	assert.ErrorIs(t, err, domain.ErrRecipeInstructions)

	repo.On("CreateRecipe", mock.Anything, mock.MatchedBy(func(r *entities.Recipe) bool {
		return r.Name == "Salad" && r.UserID != nil && *r.UserID == userID
	}), []entities.RecipeIngredient{{IngredientID: tomatoID, Quantity: 2, Unit: "g"}}).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entities.Recipe).ID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
		}).
		Return(&entities.Recipe{}, nil)
	repo.On("GetRecipeByID", mock.Anything, uuid.MustParse("11111111-1111-1111-1111-111111111111")).
		Return(&entities.Recipe{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Name: "Salad", UserID: &userID}, nil)

	res, err := svc.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Name:         "Salad",
		Instructions: "Chop",
		Ingredients:  []domain.RecipeIngredientRequest{{IngredientID: tomatoID.String(), Quantity: 2, Unit: " g "}},
	}, userID.String())
	require.NoError(t, err)
	assert.Equal(t, "Salad", res.Name)
	assert.Equal(t, userID.String(), res.OwnerID)
	repo.AssertExpectations(t)
}

func TestUpdateRecipeRequiresOwner(t *testing.T) {
	repo := new(mockRecipeRepository)
	svc := NewRecipeService(repo, new(mockS3))
	owner := uuid.New()
	recipeID := uuid.New()
	name := "Better salad"

	repo.On("GetRecipeByID", mock.Anything, recipeID).Return(&entities.Recipe{ID: recipeID, UserID: &owner}, nil)

	_, err := svc.UpdateRecipe(context.Background(), recipeID.String(), domain.UpdateRecipeRequest{Name: &name}, uuid.NewString(), domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedRecipeAccess)
	repo.AssertNotCalled(t, "UpdateRecipe", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	repo.On("UpdateRecipe", mock.Anything, recipeID, map[store.Column]any{store.ColName: name}, (*[]entities.RecipeIngredient)(nil)).Return(nil)
	_, err = svc.UpdateRecipe(context.Background(), recipeID.String(), domain.UpdateRecipeRequest{Name: &name}, uuid.NewString(), domain.RoleAdmin)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDeleteRecipeRemovesImage(t *testing.T) {
	repo := new(mockRecipeRepository)
	s3 := new(mockS3)
	svc := NewRecipeService(repo, s3)
	owner := uuid.New()
	recipeID := uuid.New()

	repo.On("GetRecipeByID", mock.Anything, recipeID).
		Return(&entities.Recipe{ID: recipeID, UserID: &owner, ImageURL: "https://cdn.example.com/recipes/r.png"}, nil)
	repo.On("DeleteRecipe", mock.Anything, recipeID).Return(nil)
	s3.On("DeleteFile", mock.Anything, "recipes/r.png").Return(nil)

	require.NoError(t, svc.DeleteRecipe(context.Background(), recipeID.String(), owner.String(), domain.RoleUser))
	repo.AssertExpectations(t)
	s3.AssertExpectations(t)
}

func TestDeleteRecipeNotFound(t *testing.T) {
	repo := new(mockRecipeRepository)
	svc := NewRecipeService(repo, new(mockS3))
	recipeID := uuid.New()

	repo.On("GetRecipeByID", mock.Anything, recipeID).Return(nil, store.ErrNotFound)
	err := svc.DeleteRecipe(context.Background(), recipeID.String(), uuid.NewString(), domain.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestToggleFavorite(t *testing.T) {
	repo := new(mockRecipeRepository)
	svc := NewRecipeService(repo, new(mockS3))
	userID := uuid.New()
	recipeID := uuid.New()

	repo.On("IsFavorite", mock.Anything, userID, recipeID).Return(false, nil).Once()
	repo.On("AddFavorite", mock.Anything, userID, recipeID).Return(nil).Once()
	on, err := svc.ToggleFavorite(context.Background(), recipeID.String(), userID.String())
	require.NoError(t, err)
	assert.True(t, on)

	repo.On("IsFavorite", mock.Anything, userID, recipeID).Return(true, nil).Once()
	repo.On("RemoveFavorite", mock.Anything, userID, recipeID).Return(nil).Once()
	on, err = svc.ToggleFavorite(context.Background(), recipeID.String(), userID.String())
	require.NoError(t, err)
	assert.False(t, on)
	repo.AssertExpectations(t)
}

func TestRateRecipe(t *testing.T) {
	repo := new(mockRecipeRepository)
	svc := NewRecipeService(repo, new(mockS3))
	userID := uuid.New()
	recipeID := uuid.New()

	_, err := svc.RateRecipe(context.Background(), recipeID.String(), domain.RateRecipeRequest{Stars: 6}, userID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidStars)

	repo.On("UpsertRating", mock.Anything, mock.MatchedBy(func(r *entities.Rating) bool {
		return r.Stars == 4 && r.UserID == userID && r.RecipeID == recipeID
	})).Return(&entities.Rating{ID: uuid.New(), RecipeID: recipeID, Stars: 4}, nil)

	res, err := svc.RateRecipe(context.Background(), recipeID.String(), domain.RateRecipeRequest{Stars: 4}, userID.String())
	require.NoError(t, err)
	assert.Equal(t, 4, res.Stars)
}
