package stocklog

import "context"

type Repository interface {
	Create(ctx context.Context, e *Entry) error
	ListByItemID(ctx context.Context, itemID uint64) ([]Entry, error)
}
