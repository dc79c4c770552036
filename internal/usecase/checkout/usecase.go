package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	itemDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/item"
	saleDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/sale"
	stocklogDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/stocklog"
	"github.com/AhmadTubaileh/Software-project-sub000/internal/domain/uow"
	"github.com/AhmadTubaileh/Software-project-sub000/pkg/id"
)

var ErrInvalidInput = errors.New("invalid input")

// Usecase handles direct point-of-sale cash checkout. Unlike installment
// reservations, a cash sale decrements the physical quantity.
type Usecase struct {
	uow uow.UnitOfWork
	log zerolog.Logger
}

func NewUsecase(tx uow.UnitOfWork, log zerolog.Logger) *Usecase {
	return &Usecase{uow: tx, log: log}
}

type CheckoutInput struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
	WorkerID string `json:"worker_id"`
}

type CheckoutResult struct {
	SaleID string          `json:"sale_id"`
	Total  decimal.Decimal `json:"total"`
}

// Checkout sells quantity units for cash. It shares the item row lock with
// contract application so the availability check and the decrement are one
// atomic step against pending reservations.
func (u *Usecase) Checkout(ctx context.Context, in CheckoutInput) (*CheckoutResult, error) {
	if in.ItemID == "" || in.WorkerID == "" || in.Quantity <= 0 {
		return nil, ErrInvalidInput
	}

	var res *CheckoutResult
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		it, err := r.Items.GetByItemIDForUpdate(ctx, in.ItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return itemDomain.ErrNotFound
			}
			return err
		}
		if !it.Available {
			return itemDomain.ErrNotEligible
		}

		pending, err := r.Contracts.CountPendingByItemID(ctx, it.ID)
		if err != nil {
			return err
		}
		if it.Quantity-int(pending) < in.Quantity {
			return itemDomain.ErrNoStock
		}

		if err := r.Items.IncrementQuantity(ctx, it.ID, -in.Quantity); err != nil {
			return err
		}

		now := time.Now().UTC()
		total := it.CashPrice.Mul(decimal.NewFromInt(int64(in.Quantity)))
		s := &saleDomain.Sale{
			SaleID:   id.NewID32(),
			ItemID:   it.ID,
			WorkerID: in.WorkerID,
			Kind:     saleDomain.KindCash,
			Amount:   total,
			SaleDate: now,
		}
		if err := r.Sales.Create(ctx, s); err != nil {
			return err
		}

		if err := r.StockLogs.Create(ctx, &stocklogDomain.Entry{
			ItemID:   it.ID,
			WorkerID: in.WorkerID,
			Change:   -in.Quantity,
			Kind:     stocklogDomain.KindSale,
			Note:     "cash checkout",
			LoggedAt: now,
		}); err != nil {
			return err
		}

		res = &CheckoutResult{SaleID: s.SaleID, Total: total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
