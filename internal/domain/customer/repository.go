package customer

import "context"

type Repository interface {
	Create(ctx context.Context, c *Customer) error
	GetByID(ctx context.Context, id uint64) (*Customer, error)
	GetByNationalID(ctx context.Context, nationalID string) (*Customer, error)
	Save(ctx context.Context, c *Customer) error

	CreateSponsor(ctx context.Context, s *Sponsor) error
	ListSponsorsByContractID(ctx context.Context, contractID uint64) ([]Sponsor, error)
}
