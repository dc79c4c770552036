package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

type ApplyInput struct {
	PaymentID string
	Amount    decimal.Decimal
	WorkerID  string
}

type ApplyResult struct {
	Message           string `json:"message"`
	ContractCompleted bool   `json:"contract_completed"`
}

type ScheduleEntryDTO struct {
	PaymentID   string          `json:"payment_id"`
	MonthNumber int             `json:"month_number"`
	DueDate     time.Time       `json:"due_date"`
	AmountDue   decimal.Decimal `json:"amount_due"`
	AmountPaid  decimal.Decimal `json:"amount_paid"`
	Status      string          `json:"status"`
	PaidDate    *time.Time      `json:"paid_date,omitempty"`
}

type ScheduleDTO struct {
	SaleID  string             `json:"sale_id"`
	Entries []ScheduleEntryDTO `json:"entries"`
}
