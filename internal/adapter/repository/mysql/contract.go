package mysql

import (
	"context"

	"gorm.io/gorm"

	contractDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/contract"
)

type ContractRepository struct{ db *gorm.DB }

func NewContractRepository(db *gorm.DB) *ContractRepository { return &ContractRepository{db: db} }

func (r *ContractRepository) Create(ctx context.Context, c *contractDomain.Contract) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ContractRepository) GetByContractID(ctx context.Context, contractID string) (*contractDomain.Contract, error) {
	var out contractDomain.Contract
	res := r.db.WithContext(ctx).Where("contract_id = ?", contractID).First(&out)
	return &out, res.Error
}

func (r *ContractRepository) GetByContractIDForUpdate(ctx context.Context, contractID string) (*contractDomain.Contract, error) {
	var out contractDomain.Contract
	res := forUpdate(r.db.WithContext(ctx)).Where("contract_id = ?", contractID).First(&out)
	return &out, res.Error
}

func (r *ContractRepository) GetBySaleID(ctx context.Context, saleID uint64) (*contractDomain.Contract, error) {
	var out contractDomain.Contract
	res := r.db.WithContext(ctx).Where("sale_id = ?", saleID).First(&out)
	return &out, res.Error
}

func (r *ContractRepository) Save(ctx context.Context, c *contractDomain.Contract) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ContractRepository) ListPending(ctx context.Context) ([]contractDomain.Contract, error) {
	var out []contractDomain.Contract
	res := r.db.WithContext(ctx).
		Where("status = ?", contractDomain.StatusPending).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *ContractRepository) CountPendingByItemID(ctx context.Context, itemID uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&contractDomain.Contract{}).
		Where("item_id = ? AND status = ?", itemID, contractDomain.StatusPending).
		Count(&n)
	return n, res.Error
}
