package uow

import (
	"context"

	"github.com/AhmadTubaileh/Software-project-sub000/internal/domain/approval"
	"github.com/AhmadTubaileh/Software-project-sub000/internal/domain/contract"
	"github.com/AhmadTubaileh/Software-project-sub000/internal/domain/customer"
	"github.com/AhmadTubaileh/Software-project-sub000/internal/domain/item"
	"github.com/AhmadTubaileh/Software-project-sub000/internal/domain/payment"
	"github.com/AhmadTubaileh/Software-project-sub000/internal/domain/sale"
	"github.com/AhmadTubaileh/Software-project-sub000/internal/domain/stocklog"
)

type Repos struct {
	Items     item.Repository
	StockLogs stocklog.Repository
	Sales     sale.Repository
	Contracts contract.Repository
	Approvals approval.Repository
	Customers customer.Repository
	Payments  payment.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the contract first, then pass it in
	WithinContractTx(ctx context.Context, contractID string, fn func(r Repos, c *contract.Contract) error) error
}
