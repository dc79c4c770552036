package stocklogmock

import (
	"context"

	domain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/stocklog"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	CreateFn       func(ctx context.Context, e *domain.Entry) error
	ListByItemIDFn func(ctx context.Context, itemID uint64) ([]domain.Entry, error)
}

func (m *Repo) Create(ctx context.Context, e *domain.Entry) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *Repo) ListByItemID(ctx context.Context, itemID uint64) ([]domain.Entry, error) {
	if m.ListByItemIDFn != nil {
		return m.ListByItemIDFn(ctx, itemID)
	}
	return nil, context.Canceled
}
