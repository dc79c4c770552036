package mysql

import (
	"context"

	"gorm.io/gorm"

	customerDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/customer"
)

type CustomerRepository struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) *CustomerRepository { return &CustomerRepository{db: db} }

func (r *CustomerRepository) Create(ctx context.Context, c *customerDomain.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uint64) (*customerDomain.Customer, error) {
	var out customerDomain.Customer
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *CustomerRepository) GetByNationalID(ctx context.Context, nationalID string) (*customerDomain.Customer, error) {
	var out customerDomain.Customer
	res := r.db.WithContext(ctx).Where("national_id = ?", nationalID).First(&out)
	return &out, res.Error
}

func (r *CustomerRepository) Save(ctx context.Context, c *customerDomain.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CustomerRepository) CreateSponsor(ctx context.Context, s *customerDomain.Sponsor) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *CustomerRepository) ListSponsorsByContractID(ctx context.Context, contractID uint64) ([]customerDomain.Sponsor, error) {
	var out []customerDomain.Sponsor
	res := r.db.WithContext(ctx).
		Where("contract_id = ?", contractID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
