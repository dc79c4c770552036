package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	contractDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/contract"
	paymentDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/payment"
	stocklogDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/stocklog"
	"github.com/AhmadTubaileh/Software-project-sub000/internal/domain/uow"
	"github.com/AhmadTubaileh/Software-project-sub000/pkg/id"
)

type Usecase struct {
	repos uow.Repos
	uow   uow.UnitOfWork
	log   zerolog.Logger
}

func NewUsecase(repos uow.Repos, tx uow.UnitOfWork, log zerolog.Logger) *Usecase {
	return &Usecase{repos: repos, uow: tx, log: log}
}

// Apply credits a submitted amount against one schedule entry and rolls any
// excess forward month by month. The target row is locked for the duration of
// the transaction; every credited entry gets exactly one ledger row and the
// rows across a cascade sum to the cash received; either the whole cascade
// commits or none of it does.
func (u *Usecase) Apply(ctx context.Context, in ApplyInput) (*ApplyResult, error) {
	if in.PaymentID == "" || in.WorkerID == "" || !in.Amount.IsPositive() {
		return nil, paymentDomain.ErrInvalidAmount
	}

	var res *ApplyResult
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		entry, err := r.Payments.GetByPaymentIDForUpdate(ctx, in.PaymentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return paymentDomain.ErrNotFound
			}
			return err
		}

		now := time.Now().UTC()
		switch in.Amount.Cmp(entry.AmountDue) {
		case 0:
			// exact: one credit settles the month
			if err := u.credit(ctx, r, entry, in.Amount, true, now, in.WorkerID); err != nil {
				return err
			}
		case -1:
			// partial: the month keeps owing the remainder
			if err := u.credit(ctx, r, entry, in.Amount, false, now, in.WorkerID); err != nil {
				return err
			}
		default:
			// overpayment: the target month's amount_paid carries the full
			// submitted amount, but its ledger row records only what the
			// month absorbed; the cascaded months get their own rows, so
			// the ledger always sums to the cash received
			excess := in.Amount.Sub(entry.AmountDue)
			if err := u.creditRecorded(ctx, r, entry, in.Amount, entry.AmountDue, true, now, in.WorkerID); err != nil {
				return err
			}
			if err := u.cascade(ctx, r, entry, excess, now, in.WorkerID); err != nil {
				return err
			}
		}

		c, err := r.Contracts.GetBySaleID(ctx, entry.SaleID)
		if err != nil {
			return err
		}

		if err := r.StockLogs.Create(ctx, &stocklogDomain.Entry{
			ItemID:   c.ItemID,
			WorkerID: in.WorkerID,
			Change:   0,
			Kind:     stocklogDomain.KindSale,
			Note:     "installment payment received",
			LoggedAt: now,
		}); err != nil {
			return err
		}

		outstanding, err := r.Payments.CountOutstanding(ctx, entry.SaleID)
		if err != nil {
			return err
		}
		completed := false
		if outstanding == 0 && c.Status == contractDomain.StatusActive {
			c.Status = contractDomain.StatusCompleted
			c.StatusUpdatedAt = now
			if err := r.Contracts.Save(ctx, c); err != nil {
				return err
			}
			completed = true
		}

		res = &ApplyResult{
			Message:           fmt.Sprintf("payment of %s applied to month %d", in.Amount.StringFixed(2), entry.MonthNumber),
			ContractCompleted: completed,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// cascade rolls excess forward over the outstanding months in order. A loop,
// not recursion: a deep overpayment must not grow the stack with the number
// of months it settles.
func (u *Usecase) cascade(ctx context.Context, r uow.Repos, from *paymentDomain.ScheduleEntry, excess decimal.Decimal, now time.Time, workerID string) error {
	cursor := from.MonthNumber
	for excess.IsPositive() {
		next, err := r.Payments.NextOutstanding(ctx, from.SaleID, cursor)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// nothing left to credit; the excess is absorbed
				u.log.Info().
					Str("payment_id", from.PaymentID).
					Str("excess", excess.StringFixed(2)).
					Msg("overpayment excess absorbed, no outstanding months remain")
				return nil
			}
			return err
		}
		if excess.Cmp(next.AmountDue) >= 0 {
			// settle the month at its own due amount, not the excess
			due := next.AmountDue
			if err := u.credit(ctx, r, next, due, true, now, workerID); err != nil {
				return err
			}
			excess = excess.Sub(due)
		} else {
			if err := u.credit(ctx, r, next, excess, false, now, workerID); err != nil {
				return err
			}
			excess = decimal.Zero
		}
		cursor = next.MonthNumber
	}
	return nil
}

// credit applies one amount to one entry and appends the matching ledger row.
// full settles the month (amount_due -> 0, status paid, paid_date today);
// otherwise the entry goes partial and keeps the remainder due.
func (u *Usecase) credit(ctx context.Context, r uow.Repos, e *paymentDomain.ScheduleEntry, amount decimal.Decimal, full bool, now time.Time, workerID string) error {
	return u.creditRecorded(ctx, r, e, amount, amount, full, now, workerID)
}

// creditRecorded is credit with a separate ledger amount. The two only differ
// on an overpaid target month, whose entry absorbs the full submitted amount
// while the ledger row carries just the month's own due.
func (u *Usecase) creditRecorded(ctx context.Context, r uow.Repos, e *paymentDomain.ScheduleEntry, amount, recorded decimal.Decimal, full bool, now time.Time, workerID string) error {
	e.AmountPaid = e.AmountPaid.Add(amount)
	if full {
		e.AmountDue = decimal.Zero
		e.Status = paymentDomain.StatusPaid
		e.PaidDate = &now
	} else {
		e.AmountDue = e.AmountDue.Sub(amount)
		e.Status = paymentDomain.StatusPartial
	}
	if err := r.Payments.Save(ctx, e); err != nil {
		return err
	}
	return r.Payments.CreateTransaction(ctx, &paymentDomain.Transaction{
		TransactionID: id.NewID32(),
		PaymentID:     e.ID,
		AmountPaid:    recorded,
		WorkerID:      workerID,
		PaymentDate:   now,
	})
}

// Schedule returns every entry of a sale in month order.
func (u *Usecase) Schedule(ctx context.Context, saleID string) (*ScheduleDTO, error) {
	s, err := u.repos.Sales.GetBySaleID(ctx, saleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, paymentDomain.ErrNotFound
		}
		return nil, err
	}
	entries, err := u.repos.Payments.ListBySaleID(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	dto := &ScheduleDTO{SaleID: s.SaleID, Entries: make([]ScheduleEntryDTO, 0, len(entries))}
	for _, e := range entries {
		dto.Entries = append(dto.Entries, ScheduleEntryDTO{
			PaymentID:   e.PaymentID,
			MonthNumber: e.MonthNumber,
			DueDate:     e.DueDate,
			AmountDue:   e.AmountDue,
			AmountPaid:  e.AmountPaid,
			Status:      string(e.Status),
			PaidDate:    e.PaidDate,
		})
	}
	return dto, nil
}

// Overdue lists entries past their due date that still owe anything.
func (u *Usecase) Overdue(ctx context.Context) ([]paymentDomain.OverdueRow, error) {
	return u.repos.Payments.ListOverdue(ctx, time.Now().UTC())
}
