package sale

import "context"

type Repository interface {
	Create(ctx context.Context, s *Sale) error
	GetByID(ctx context.Context, id uint64) (*Sale, error)
	GetBySaleID(ctx context.Context, saleID string) (*Sale, error)
}
