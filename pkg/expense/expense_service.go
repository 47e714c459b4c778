package expense

import (
	"MealGo-Backend/domain"
	"MealGo-Backend/entities"
	"MealGo-Backend/pkg/store"
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type (
	ExpenseService interface {
		AddExpense(ctx context.Context, req domain.AddExpenseRequest, userID string) (*domain.Expense, error)
		GetExpenses(ctx context.Context, userID string, week string) ([]domain.Expense, error)
		DeleteExpense(ctx context.Context, expenseID string, userID string) error
		GetWeeklySpend(ctx context.Context, userID string, week string) (*domain.WeeklySpendResponse, error)
	}

	expenseService struct {
		expenseRepository ExpenseRepository
		loc               *time.Location
		now               func() time.Time
	}
)

// NewExpenseService resolves dates and week boundaries in loc, UTC when nil.
func NewExpenseService(expenseRepository ExpenseRepository, loc *time.Location) ExpenseService {
	if loc == nil {
		loc = time.UTC
	}
	return &expenseService{
		expenseRepository: expenseRepository,
		loc:               loc,
		now:               time.Now,
	}
}

func (s *expenseService) today() time.Time {
	return s.now().In(s.loc)
}

func (s *expenseService) parseDate(day string) (time.Time, error) {
	return domain.ParseDateIn(day, s.loc)
}

func toExpense(e *entities.Expense) domain.Expense {
	return domain.Expense{
		ID:      e.ID.String(),
		Amount:  e.Amount,
		SpentAt: e.SpentAt,
		Note:    e.Note,
	}
}

// weekOf returns the Monday starting the week that contains day, or the
// current week when day is empty.
func (s *expenseService) weekOf(day string) (time.Time, error) {
	if day == "" {
		return store.StartOfWeek(s.today()), nil
	}
	t, err := s.parseDate(day)
	if err != nil {
		return time.Time{}, err
	}
	return store.StartOfWeek(t), nil
}

func (s *expenseService) AddExpense(ctx context.Context, req domain.AddExpenseRequest, userID string) (*domain.Expense, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	spentAt := s.today()
	if req.SpentAt != "" {
		if spentAt, err = s.parseDate(req.SpentAt); err != nil {
			return nil, err
		}
	}

	expense, err := s.expenseRepository.CreateExpense(ctx, &entities.Expense{
		UserID:  uid,
		Amount:  req.Amount,
		SpentAt: spentAt,
		Note:    strings.TrimSpace(req.Note),
	})
	if err != nil {
		return nil, err
	}
	res := toExpense(expense)
	return &res, nil
}

func (s *expenseService) GetExpenses(ctx context.Context, userID string, week string) ([]domain.Expense, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	start, err := s.weekOf(week)
	if err != nil {
		return nil, err
	}

	rows, err := s.expenseRepository.GetExpensesBetween(ctx, uid, start, start.AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}
	result := make([]domain.Expense, 0, len(rows))
	for i := range rows {
		result = append(result, toExpense(&rows[i]))
	}
	return result, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string, userID string) error {
	id, err := uuid.Parse(expenseID)
	if err != nil {
		return domain.ErrParseUUID
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	n, err := s.expenseRepository.DeleteExpense(ctx, id, uid)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrExpenseNotFound
	}
	return nil
}

func (s *expenseService) GetWeeklySpend(ctx context.Context, userID string, week string) (*domain.WeeklySpendResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	start, err := s.weekOf(week)
	if err != nil {
		return nil, err
	}

	spend, err := s.expenseRepository.GetWeeklySpend(ctx, uid, start)
	if err != nil {
		return nil, err
	}
	return &domain.WeeklySpendResponse{
		WeekStart: spend.WeekStart.Format(domain.DateLayout),
		Budget:    spend.Budget,
		Spent:     spend.Spent,
		Remaining: spend.Remaining(),
	}, nil
}
