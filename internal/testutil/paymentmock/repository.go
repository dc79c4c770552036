package paymentmock

import (
	"context"
	"time"

	domain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/payment"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	BulkCreateFn                  func(ctx context.Context, entries []domain.ScheduleEntry) error
	GetByPaymentIDFn              func(ctx context.Context, paymentID string) (*domain.ScheduleEntry, error)
	GetByPaymentIDForUpdateFn     func(ctx context.Context, paymentID string) (*domain.ScheduleEntry, error)
	NextOutstandingFn             func(ctx context.Context, saleID uint64, afterMonth int) (*domain.ScheduleEntry, error)
	CountOutstandingFn            func(ctx context.Context, saleID uint64) (int64, error)
	ListBySaleIDFn                func(ctx context.Context, saleID uint64) ([]domain.ScheduleEntry, error)
	ListOverdueFn                 func(ctx context.Context, asOf time.Time) ([]domain.OverdueRow, error)
	SaveFn                        func(ctx context.Context, e *domain.ScheduleEntry) error
	CreateTransactionFn           func(ctx context.Context, t *domain.Transaction) error
	ListTransactionsByPaymentIDFn func(ctx context.Context, paymentID uint64) ([]domain.Transaction, error)
}

func (m *Repo) BulkCreate(ctx context.Context, entries []domain.ScheduleEntry) error {
	if m.BulkCreateFn != nil {
		return m.BulkCreateFn(ctx, entries)
	}
	return nil
}

func (m *Repo) GetByPaymentID(ctx context.Context, paymentID string) (*domain.ScheduleEntry, error) {
	if m.GetByPaymentIDFn != nil {
		return m.GetByPaymentIDFn(ctx, paymentID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByPaymentIDForUpdate(ctx context.Context, paymentID string) (*domain.ScheduleEntry, error) {
	if m.GetByPaymentIDForUpdateFn != nil {
		return m.GetByPaymentIDForUpdateFn(ctx, paymentID)
	}
	return nil, context.Canceled
}

func (m *Repo) NextOutstanding(ctx context.Context, saleID uint64, afterMonth int) (*domain.ScheduleEntry, error) {
	if m.NextOutstandingFn != nil {
		return m.NextOutstandingFn(ctx, saleID, afterMonth)
	}
	return nil, context.Canceled
}

func (m *Repo) CountOutstanding(ctx context.Context, saleID uint64) (int64, error) {
	if m.CountOutstandingFn != nil {
		return m.CountOutstandingFn(ctx, saleID)
	}
	return 0, nil
}

func (m *Repo) ListBySaleID(ctx context.Context, saleID uint64) ([]domain.ScheduleEntry, error) {
	if m.ListBySaleIDFn != nil {
		return m.ListBySaleIDFn(ctx, saleID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.OverdueRow, error) {
	if m.ListOverdueFn != nil {
		return m.ListOverdueFn(ctx, asOf)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, e *domain.ScheduleEntry) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, e)
	}
	return nil
}

func (m *Repo) CreateTransaction(ctx context.Context, t *domain.Transaction) error {
	if m.CreateTransactionFn != nil {
		return m.CreateTransactionFn(ctx, t)
	}
	return nil
}

func (m *Repo) ListTransactionsByPaymentID(ctx context.Context, paymentID uint64) ([]domain.Transaction, error) {
	if m.ListTransactionsByPaymentIDFn != nil {
		return m.ListTransactionsByPaymentIDFn(ctx, paymentID)
	}
	return nil, context.Canceled
}
