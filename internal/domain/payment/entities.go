package payment

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("payment not found")
	// ErrInvalidAmount: submitted amounts must be strictly positive.
	ErrInvalidAmount = errors.New("payment amount must be positive")
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPartial Status = "partial"
	StatusPaid    Status = "paid"
)

// ScheduleEntry is one contracted month. amount_due only moves toward zero;
// amount_paid accumulates everything credited to the month, including the
// full submitted amount of an overpayment that targeted it.
type ScheduleEntry struct {
	ID        uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	PaymentID string `gorm:"column:payment_id;type:char(32);not null;uniqueIndex:ux_payments_payment_id" json:"payment_id"`
	// FK to sales.id; month_number is unique per sale.
	SaleID      uint64 `gorm:"column:sale_id;not null;uniqueIndex:ux_payments_sale_month,priority:1" json:"-"`
	MonthNumber int    `gorm:"column:month_number;not null;uniqueIndex:ux_payments_sale_month,priority:2" json:"month_number"`

	DueDate    time.Time       `gorm:"column:due_date;type:date;not null" json:"due_date"`
	AmountDue  decimal.Decimal `gorm:"column:amount_due;type:decimal(18,2);not null" json:"amount_due"`
	AmountPaid decimal.Decimal `gorm:"column:amount_paid;type:decimal(18,2);not null" json:"amount_paid"`
	Status     Status          `gorm:"column:status;type:enum('pending','partial','paid');default:'pending'" json:"status"`
	PaidDate   *time.Time      `gorm:"column:paid_date" json:"paid_date,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ScheduleEntry) TableName() string { return "installment_payments" }

// Transaction is the append-only ledger row behind every credit to a
// schedule entry. Never updated, never deleted.
type Transaction struct {
	ID            uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	TransactionID string `gorm:"column:transaction_id;type:char(32);not null;uniqueIndex:ux_transactions_transaction_id" json:"transaction_id"`
	// FK to installment_payments.id
	PaymentID   uint64          `gorm:"column:payment_id;not null;index" json:"-"`
	AmountPaid  decimal.Decimal `gorm:"column:amount_paid;type:decimal(18,2);not null" json:"amount_paid"`
	WorkerID    string          `gorm:"column:worker_id;type:char(32);not null" json:"worker_id"`
	PaymentDate time.Time       `gorm:"column:payment_date;not null" json:"payment_date"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Transaction) TableName() string { return "installment_transactions" }
