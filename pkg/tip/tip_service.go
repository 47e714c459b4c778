package tip

import (
	"MealGo-Backend/domain"
	"MealGo-Backend/entities"
	"MealGo-Backend/pkg/store"
	"context"
	"strings"

	"github.com/google/uuid"
)

type (
	TipService interface {
		GetTips(ctx context.Context, filter domain.TipFilter) ([]domain.Tip, error)
		CreateTip(ctx context.Context, req domain.TipRequest) (*domain.Tip, error)
		UpdateTip(ctx context.Context, tipID string, req domain.TipRequest) (*domain.Tip, error)
		DeleteTip(ctx context.Context, tipID string) error
	}

	tipService struct {
		tipRepository TipRepository
	}
)

func NewTipService(tipRepository TipRepository) TipService {
	return &tipService{tipRepository: tipRepository}
}

func toTip(t *entities.Tip) domain.Tip {
	return domain.Tip{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Category:    t.Category,
	}
}

// FilterTips keeps tips whose title or description contains query, ignoring
// case.
func FilterTips(tips []domain.Tip, query string) []domain.Tip {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return tips
	}
	out := make([]domain.Tip, 0, len(tips))
	for _, t := range tips {
		if strings.Contains(strings.ToLower(t.Title), query) ||
			strings.Contains(strings.ToLower(t.Description), query) {
			out = append(out, t)
		}
	}
	return out
}

// GetTips lists tips sorted by title. Unknown categories in the filter are
// dropped; a filter made only of unknown categories matches nothing.
func (s *tipService) GetTips(ctx context.Context, filter domain.TipFilter) ([]domain.Tip, error) {
	var (
		rows []entities.Tip
		err  error
	)
	if len(filter.Categories) == 0 {
		rows, err = s.tipRepository.GetTips(ctx)
	} else {
		categories := make([]string, 0, len(filter.Categories))
		for _, raw := range filter.Categories {
			for _, part := range strings.Split(raw, ",") {
				if c, ok := domain.ParseTipCategory(part); ok {
					categories = append(categories, c)
				}
			}
		}
		if len(categories) == 0 {
			return []domain.Tip{}, nil
		}
		rows, err = s.tipRepository.GetTipsByCategories(ctx, categories)
	}
	if err != nil {
		return nil, err
	}

	tips := make([]domain.Tip, 0, len(rows))
	for i := range rows {
		tips = append(tips, toTip(&rows[i]))
	}
	return FilterTips(tips, filter.Query), nil
}

func (s *tipService) CreateTip(ctx context.Context, req domain.TipRequest) (*domain.Tip, error) {
	category, ok := domain.ParseTipCategory(req.Category)
	if !ok {
		return nil, domain.ErrInvalidTipCategory
	}

	tip, err := s.tipRepository.CreateTip(ctx, &entities.Tip{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Category:    category,
	})
	if err != nil {
		return nil, err
	}
	res := toTip(tip)
	return &res, nil
}

func (s *tipService) UpdateTip(ctx context.Context, tipID string, req domain.TipRequest) (*domain.Tip, error) {
	id, err := uuid.Parse(tipID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	category, ok := domain.ParseTipCategory(req.Category)
	if !ok {
		return nil, domain.ErrInvalidTipCategory
	}

	tip, err := s.tipRepository.UpdateTip(ctx, id, map[store.Column]any{
		store.ColTitle:       strings.TrimSpace(req.Title),
		store.ColDescription: req.Description,
		store.ColCategory:    category,
	})
	if err != nil {
		if store.IsNotFound(err) {
			return nil, domain.ErrTipNotFound
		}
		return nil, err
	}
	res := toTip(tip)
	return &res, nil
}

func (s *tipService) DeleteTip(ctx context.Context, tipID string) error {
	id, err := uuid.Parse(tipID)
	if err != nil {
		return domain.ErrParseUUID
	}
	n, err := s.tipRepository.DeleteTip(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrTipNotFound
	}
	return nil
}
