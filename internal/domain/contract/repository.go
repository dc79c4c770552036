package contract

import "context"

type Repository interface {
	Create(ctx context.Context, c *Contract) error
	GetByContractID(ctx context.Context, contractID string) (*Contract, error)
	// GetByContractIDForUpdate locks the row; approve/reject serialize on it.
	GetByContractIDForUpdate(ctx context.Context, contractID string) (*Contract, error)
	GetBySaleID(ctx context.Context, saleID uint64) (*Contract, error)
	Save(ctx context.Context, c *Contract) error
	ListPending(ctx context.Context) ([]Contract, error)
	// CountPendingByItemID feeds availableQuantity = quantity - pending count.
	CountPendingByItemID(ctx context.Context, itemID uint64) (int64, error)
}
