package mysql

import (
	"context"

	"gorm.io/gorm"

	itemDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/item"
)

type ItemRepository struct{ db *gorm.DB }

func NewItemRepository(db *gorm.DB) *ItemRepository { return &ItemRepository{db: db} }

func (r *ItemRepository) Create(ctx context.Context, it *itemDomain.Item) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *ItemRepository) GetByID(ctx context.Context, id uint64) (*itemDomain.Item, error) {
	var out itemDomain.Item
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *ItemRepository) GetByItemID(ctx context.Context, itemID string) (*itemDomain.Item, error) {
	var out itemDomain.Item
	res := r.db.WithContext(ctx).Where("item_id = ?", itemID).First(&out)
	return &out, res.Error
}

func (r *ItemRepository) GetByItemIDForUpdate(ctx context.Context, itemID string) (*itemDomain.Item, error) {
	var out itemDomain.Item
	res := forUpdate(r.db.WithContext(ctx)).Where("item_id = ?", itemID).First(&out)
	return &out, res.Error
}

func (r *ItemRepository) Save(ctx context.Context, it *itemDomain.Item) error {
	return r.db.WithContext(ctx).Save(it).Error
}

func (r *ItemRepository) IncrementQuantity(ctx context.Context, id uint64, delta int) error {
	return r.db.WithContext(ctx).
		Model(&itemDomain.Item{}).
		Where("id = ?", id).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", delta)).Error
}

func (r *ItemRepository) List(ctx context.Context) ([]itemDomain.Item, error) {
	var out []itemDomain.Item
	res := r.db.WithContext(ctx).Order("name ASC").Find(&out)
	return out, res.Error
}
