package expense

import (
	"context"
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

type mockExpenseRepository struct {
	mock.Mock
}

func (m *mockExpenseRepository) CreateExpense(ctx context.Context, expense *entities.Expense) (*entities.Expense, error) {
	args := m.Called(ctx, expense)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Expense), args.Error(1)
}

func (m *mockExpenseRepository) GetExpensesBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]entities.Expense, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Get(0).([]entities.Expense), args.Error(1)
}

func (m *mockExpenseRepository) DeleteExpense(ctx context.Context, id, userID uuid.UUID) (int, error) {
	args := m.Called(ctx, id, userID)
	return args.Int(0), args.Error(1)
}

func (m *mockExpenseRepository) GetWeeklySpend(ctx context.Context, userID uuid.UUID, weekStart time.Time) (*store.WeeklySpend, error) {
	args := m.Called(ctx, userID, weekStart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.WeeklySpend), args.Error(1)
}

// Wednesday.
var fixedNow = time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)

func newTestService() (*expenseService, *mockExpenseRepository) {
	repo := new(mockExpenseRepository)
	svc := NewExpenseService(repo, time.UTC).(*expenseService)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo
}

func TestAddExpense(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, repo := newTestService()

	var saved *entities.Expense
	repo.On("CreateExpense", ctx, mock.AnythingOfType("*entities.Expense")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*entities.Expense) }).
		Return(&entities.Expense{ID: uuid.New(), UserID: userID, Amount: 35.5}, nil)

	_, err := svc.AddExpense(ctx, domain.AddExpenseRequest{Amount: 35.5, SpentAt: "2026-10-12", Note: " market "}, userID.String())
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC), saved.SpentAt)
	assert.Equal(t, "market", saved.Note)

	_, err = svc.AddExpense(ctx, domain.AddExpenseRequest{Amount: 1, SpentAt: "yesterday"}, userID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestGetWeeklySpend(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, repo := newTestService()
	monday := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)

	repo.On("GetWeeklySpend", ctx, userID, monday).Return(&store.WeeklySpend{
		WeekStart: monday,
		Budget:    store.DefaultWeeklyBudget,
		Spent:     200,
	}, nil)

	res, err := svc.GetWeeklySpend(ctx, userID.String(), "")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-12", res.WeekStart)
	assert.Equal(t, 1000.0, res.Remaining)

	res, err = svc.GetWeeklySpend(ctx, userID.String(), "2026-10-18")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-12", res.WeekStart)
}

func TestGetExpensesUsesWeekWindow(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	svc, repo := newTestService()
	monday := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)

	repo.On("GetExpensesBetween", ctx, userID, monday, monday.AddDate(0, 0, 7)).Return([]entities.Expense{
		{ID: uuid.New(), Amount: 10, SpentAt: fixedNow},
	}, nil)

	res, err := svc.GetExpenses(ctx, userID.String(), "")
	require.NoError(t, err)
	assert.Len(t, res, 1)
}

func TestWeekBoundariesUseServiceLocation(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	bogota := time.FixedZone("COT", -5*60*60)
	repo := new(mockExpenseRepository)
	svc := NewExpenseService(repo, bogota).(*expenseService)
	// Monday 03:00 UTC is still Sunday evening in Bogota.
	svc.now = func() time.Time { return time.Date(2026, 10, 12, 3, 0, 0, 0, time.UTC) }

	monday := time.Date(2026, 10, 5, 0, 0, 0, 0, bogota)
	sameInstant := mock.MatchedBy(func(got time.Time) bool { return got.Equal(monday) })
	repo.On("GetWeeklySpend", ctx, userID, sameInstant).Return(&store.WeeklySpend{
		WeekStart: monday,
		Budget:    store.DefaultWeeklyBudget,
	}, nil).Twice()

	current, err := svc.GetWeeklySpend(ctx, userID.String(), "")
	require.NoError(t, err)
	explicit, err := svc.GetWeeklySpend(ctx, userID.String(), "2026-10-11")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-05", current.WeekStart)
	assert.Equal(t, current.WeekStart, explicit.WeekStart)

	var saved *entities.Expense
	repo.On("CreateExpense", ctx, mock.AnythingOfType("*entities.Expense")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*entities.Expense) }).
		Return(&entities.Expense{ID: uuid.New(), UserID: userID, Amount: 12}, nil)
	_, err = svc.AddExpense(ctx, domain.AddExpenseRequest{Amount: 12, SpentAt: "2026-10-11"}, userID.String())
	require.NoError(t, err)
	assert.True(t, saved.SpentAt.Equal(time.Date(2026, 10, 11, 0, 0, 0, 0, bogota)))
	repo.AssertExpectations(t)
}

func TestDeleteExpenseOfAnotherUser(t *testing.T) {
	ctx := context.Background()
	id, userID := uuid.New(), uuid.New()
	svc, repo := newTestService()
	repo.On("DeleteExpense", ctx, id, userID).Return(0, nil)

	assert.ErrorIs(t, svc.DeleteExpense(ctx, id.String(), userID.String()), domain.ErrExpenseNotFound)
}
