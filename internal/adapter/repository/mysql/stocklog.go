package mysql

import (
	"context"

	"gorm.io/gorm"

	stocklogDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/stocklog"
)

type StockLogRepository struct{ db *gorm.DB }

func NewStockLogRepository(db *gorm.DB) *StockLogRepository { return &StockLogRepository{db: db} }

func (r *StockLogRepository) Create(ctx context.Context, e *stocklogDomain.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *StockLogRepository) ListByItemID(ctx context.Context, itemID uint64) ([]stocklogDomain.Entry, error) {
	var out []stocklogDomain.Entry
	res := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("logged_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
