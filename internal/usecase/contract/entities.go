package contract

import (
	"time"

	"github.com/shopspring/decimal"
)

type CustomerInput struct {
	NationalID string `json:"national_id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}

type SponsorInput struct {
	NationalID string `json:"national_id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
}

type ApplyInput struct {
	Customer CustomerInput  `json:"customer"`
	Sponsors []SponsorInput `json:"sponsors"`

	ItemID         string          `json:"item_id"`
	WorkerID       string          `json:"worker_id"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	DownPayment    decimal.Decimal `json:"down_payment"`
	Months         int             `json:"months"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	StartDate      time.Time       `json:"start_date"`
}

type ApplyResult struct {
	ContractID string `json:"contract_id"`
	SaleID     string `json:"sale_id"`
}

type ApproveInput struct {
	ContractID string
	ApproverID string
}

type ApproveResult struct {
	PaymentsCreated int `json:"payments_created"`
}

type RejectInput struct {
	ContractID string
	ApproverID string
	Reason     string
}

// ContractDTO is the joined read projection for one contract.
type ContractDTO struct {
	ContractID     string          `json:"contract_id"`
	SaleID         string          `json:"sale_id"`
	Status         string          `json:"status"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	DownPayment    decimal.Decimal `json:"down_payment"`
	Months         int             `json:"months"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	StartDate      time.Time       `json:"start_date"`
	WorkerID       string          `json:"worker_id"`
	CreatedAt      time.Time       `json:"created_at"`

	Customer CustomerInput  `json:"customer"`
	Sponsors []SponsorInput `json:"sponsors"`

	ItemName string `json:"item_name"`
	ItemID   string `json:"item_id"`

	ApprovalStatus string     `json:"approval_status"`
	ApproverID     *string    `json:"approver_id,omitempty"`
	RejectReason   string     `json:"reject_reason,omitempty"`
	DecidedAt      *time.Time `json:"decided_at,omitempty"`
}

// PendingContractDTO is one row of the review queue.
type PendingContractDTO struct {
	ContractID     string          `json:"contract_id"`
	SaleID         string          `json:"sale_id"`
	CustomerName   string          `json:"customer_name"`
	NationalID     string          `json:"national_id"`
	ItemName       string          `json:"item_name"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	Months         int             `json:"months"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	AppliedAt      time.Time       `json:"applied_at"`
}
