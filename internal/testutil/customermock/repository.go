package customermock

import (
	"context"

	domain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/customer"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	CreateFn                   func(ctx context.Context, c *domain.Customer) error
	GetByIDFn                  func(ctx context.Context, id uint64) (*domain.Customer, error)
	GetByNationalIDFn          func(ctx context.Context, nationalID string) (*domain.Customer, error)
	SaveFn                     func(ctx context.Context, c *domain.Customer) error
	CreateSponsorFn            func(ctx context.Context, s *domain.Sponsor) error
	ListSponsorsByContractIDFn func(ctx context.Context, contractID uint64) ([]domain.Sponsor, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Customer) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Customer, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByNationalID(ctx context.Context, nationalID string) (*domain.Customer, error) {
	if m.GetByNationalIDFn != nil {
		return m.GetByNationalIDFn(ctx, nationalID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, c *domain.Customer) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) CreateSponsor(ctx context.Context, s *domain.Sponsor) error {
	if m.CreateSponsorFn != nil {
		return m.CreateSponsorFn(ctx, s)
	}
	return nil
}

func (m *Repo) ListSponsorsByContractID(ctx context.Context, contractID uint64) ([]domain.Sponsor, error) {
	if m.ListSponsorsByContractIDFn != nil {
		return m.ListSponsorsByContractIDFn(ctx, contractID)
	}
	return nil, context.Canceled
}
