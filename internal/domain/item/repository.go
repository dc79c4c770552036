package item

import "context"

type Repository interface {
	Create(ctx context.Context, it *Item) error
	GetByID(ctx context.Context, id uint64) (*Item, error)
	GetByItemID(ctx context.Context, itemID string) (*Item, error)
	// GetByItemIDForUpdate reads the row with an exclusive lock; use inside a
	// transaction when the quantity/reservation count is about to change.
	GetByItemIDForUpdate(ctx context.Context, itemID string) (*Item, error)
	Save(ctx context.Context, it *Item) error
	// IncrementQuantity applies delta atomically in SQL (no read-modify-write).
	IncrementQuantity(ctx context.Context, id uint64, delta int) error
	List(ctx context.Context) ([]Item, error)
}
