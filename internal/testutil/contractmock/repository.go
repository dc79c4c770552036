package contractmock

import (
	"context"

	domain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/contract"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	CreateFn                   func(ctx context.Context, c *domain.Contract) error
	GetByContractIDFn          func(ctx context.Context, contractID string) (*domain.Contract, error)
	GetByContractIDForUpdateFn func(ctx context.Context, contractID string) (*domain.Contract, error)
	GetBySaleIDFn              func(ctx context.Context, saleID uint64) (*domain.Contract, error)
	SaveFn                     func(ctx context.Context, c *domain.Contract) error
	ListPendingFn              func(ctx context.Context) ([]domain.Contract, error)
	CountPendingByItemIDFn     func(ctx context.Context, itemID uint64) (int64, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Contract) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByContractID(ctx context.Context, contractID string) (*domain.Contract, error) {
	if m.GetByContractIDFn != nil {
		return m.GetByContractIDFn(ctx, contractID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByContractIDForUpdate(ctx context.Context, contractID string) (*domain.Contract, error) {
	if m.GetByContractIDForUpdateFn != nil {
		return m.GetByContractIDForUpdateFn(ctx, contractID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetBySaleID(ctx context.Context, saleID uint64) (*domain.Contract, error) {
	if m.GetBySaleIDFn != nil {
		return m.GetBySaleIDFn(ctx, saleID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, c *domain.Contract) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) ListPending(ctx context.Context) ([]domain.Contract, error) {
	if m.ListPendingFn != nil {
		return m.ListPendingFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) CountPendingByItemID(ctx context.Context, itemID uint64) (int64, error) {
	if m.CountPendingByItemIDFn != nil {
		return m.CountPendingByItemIDFn(ctx, itemID)
	}
	return 0, nil
}
