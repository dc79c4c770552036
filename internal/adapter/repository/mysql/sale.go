package mysql

import (
	"context"

	"gorm.io/gorm"

	saleDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/sale"
)

type SaleRepository struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) *SaleRepository { return &SaleRepository{db: db} }

func (r *SaleRepository) Create(ctx context.Context, s *saleDomain.Sale) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SaleRepository) GetByID(ctx context.Context, id uint64) (*saleDomain.Sale, error) {
	var out saleDomain.Sale
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *SaleRepository) GetBySaleID(ctx context.Context, saleID string) (*saleDomain.Sale, error) {
	var out saleDomain.Sale
	res := r.db.WithContext(ctx).Where("sale_id = ?", saleID).First(&out)
	return &out, res.Error
}
