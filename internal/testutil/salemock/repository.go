package salemock

import (
	"context"

	domain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/sale"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	CreateFn      func(ctx context.Context, s *domain.Sale) error
	GetByIDFn     func(ctx context.Context, id uint64) (*domain.Sale, error)
	GetBySaleIDFn func(ctx context.Context, saleID string) (*domain.Sale, error)
}

func (m *Repo) Create(ctx context.Context, s *domain.Sale) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Sale, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetBySaleID(ctx context.Context, saleID string) (*domain.Sale, error) {
	if m.GetBySaleIDFn != nil {
		return m.GetBySaleIDFn(ctx, saleID)
	}
	return nil, context.Canceled
}
