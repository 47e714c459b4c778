package tip

import (
	"MealGo-Backend/entities"
	"MealGo-Backend/pkg/store"
	"context"

	"github.com/google/uuid"
)

type (
	TipRepository interface {
		GetTips(ctx context.Context) ([]entities.Tip, error)
		GetTipsByCategories(ctx context.Context, categories []string) ([]entities.Tip, error)
		CreateTip(ctx context.Context, tip *entities.Tip) (*entities.Tip, error)
		UpdateTip(ctx context.Context, id uuid.UUID, fields map[store.Column]any) (*entities.Tip, error)
		DeleteTip(ctx context.Context, id uuid.UUID) (int, error)
	}

	tipRepository struct {
		store *store.Facade
	}
)

func NewTipRepository(s *store.Facade) TipRepository {
	return &tipRepository{store: s}
}

func (r *tipRepository) GetTips(ctx context.Context) ([]entities.Tip, error) {
	return store.ListOrdered[entities.Tip](ctx, r.store, store.ColTitle, true)
}

func (r *tipRepository) GetTipsByCategories(ctx context.Context, categories []string) ([]entities.Tip, error) {
	return r.store.TipsByCategories(ctx, categories)
}

func (r *tipRepository) CreateTip(ctx context.Context, tip *entities.Tip) (*entities.Tip, error) {
	return store.Insert(ctx, r.store, tip)
}

func (r *tipRepository) UpdateTip(ctx context.Context, id uuid.UUID, fields map[store.Column]any) (*entities.Tip, error) {
	return store.Update[entities.Tip](ctx, r.store, store.ColID, id, fields)
}

func (r *tipRepository) DeleteTip(ctx context.Context, id uuid.UUID) (int, error) {
	rows, err := store.Delete[entities.Tip](ctx, r.store, store.ColID, id)
	return len(rows), err
}
