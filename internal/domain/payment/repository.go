package payment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// OverdueRow is a read-only projection joining an overdue schedule entry with
// its contract, customer and item.
type OverdueRow struct {
	PaymentID    string          `json:"payment_id"`
	SaleID       string          `json:"sale_id"`
	ContractID   string          `json:"contract_id"`
	MonthNumber  int             `json:"month_number"`
	DueDate      time.Time       `json:"due_date"`
	AmountDue    decimal.Decimal `json:"amount_due"`
	AmountPaid   decimal.Decimal `json:"amount_paid"`
	Status       string          `json:"status"`
	CustomerName string          `json:"customer_name"`
	Phone        string          `json:"phone"`
	ItemName     string          `json:"item_name"`
}

type Repository interface {
	BulkCreate(ctx context.Context, entries []ScheduleEntry) error
	GetByPaymentID(ctx context.Context, paymentID string) (*ScheduleEntry, error)
	// GetByPaymentIDForUpdate locks the row for the whole transaction so two
	// concurrent submissions cannot both read the same stale amount_due.
	GetByPaymentIDForUpdate(ctx context.Context, paymentID string) (*ScheduleEntry, error)
	// NextOutstanding returns the lowest-numbered entry of the sale after
	// afterMonth that still owes anything.
	NextOutstanding(ctx context.Context, saleID uint64, afterMonth int) (*ScheduleEntry, error)
	CountOutstanding(ctx context.Context, saleID uint64) (int64, error)
	ListBySaleID(ctx context.Context, saleID uint64) ([]ScheduleEntry, error)
	ListOverdue(ctx context.Context, asOf time.Time) ([]OverdueRow, error)
	Save(ctx context.Context, e *ScheduleEntry) error

	CreateTransaction(ctx context.Context, t *Transaction) error
	ListTransactionsByPaymentID(ctx context.Context, paymentID uint64) ([]Transaction, error)
}
