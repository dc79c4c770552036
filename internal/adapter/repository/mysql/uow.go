package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/AhmadTubaileh/Software-project-sub000/internal/domain/contract"
	"github.com/AhmadTubaileh/Software-project-sub000/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func bindRepos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Items:     &ItemRepository{db: tx},
		StockLogs: &StockLogRepository{db: tx},
		Sales:     &SaleRepository{db: tx},
		Contracts: &ContractRepository{db: tx},
		Approvals: &ApprovalRepository{db: tx},
		Customers: &CustomerRepository{db: tx},
		Payments:  &PaymentRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(bindRepos(tx))
	})
}

func (u *GormUoW) WithinContractTx(ctx context.Context, contractID string, fn func(r uow.Repos, c *contract.Contract) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := bindRepos(tx)
		// lock the contract row up-front to prevent races
		c, err := r.Contracts.GetByContractIDForUpdate(ctx, contractID)
		if err != nil {
			return err
		}
		return fn(r, c)
	})
}
