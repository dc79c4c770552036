package itemmock

import (
	"context"

	domain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/item"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies item.Repository.
// Fill in the function fields a test needs; unfilled reads return
// context.Canceled, unfilled writes succeed.
type Repo struct {
	CreateFn               func(ctx context.Context, it *domain.Item) error
	GetByIDFn              func(ctx context.Context, id uint64) (*domain.Item, error)
	GetByItemIDFn          func(ctx context.Context, itemID string) (*domain.Item, error)
	GetByItemIDForUpdateFn func(ctx context.Context, itemID string) (*domain.Item, error)
	SaveFn                 func(ctx context.Context, it *domain.Item) error
	IncrementQuantityFn    func(ctx context.Context, id uint64, delta int) error
	ListFn                 func(ctx context.Context) ([]domain.Item, error)
}

func (m *Repo) Create(ctx context.Context, it *domain.Item) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, it)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Item, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByItemID(ctx context.Context, itemID string) (*domain.Item, error) {
	if m.GetByItemIDFn != nil {
		return m.GetByItemIDFn(ctx, itemID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByItemIDForUpdate(ctx context.Context, itemID string) (*domain.Item, error) {
	if m.GetByItemIDForUpdateFn != nil {
		return m.GetByItemIDForUpdateFn(ctx, itemID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, it *domain.Item) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, it)
	}
	return nil
}

func (m *Repo) IncrementQuantity(ctx context.Context, id uint64, delta int) error {
	if m.IncrementQuantityFn != nil {
		return m.IncrementQuantityFn(ctx, id, delta)
	}
	return nil
}

func (m *Repo) List(ctx context.Context) ([]domain.Item, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}
