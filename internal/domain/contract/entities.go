package contract

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("contract not found")
	// ErrNotPending: the guard for approve/reject. The caller cannot tell a
	// missing contract from an already-processed one on purpose.
	ErrNotPending = errors.New("contract not found or already processed")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusRejected  Status = "rejected"
)

// Contract is one customer's financed purchase of one item.
// While pending it reserves a unit of the item without touching
// items.quantity; only rejection gives the unit back.
type Contract struct {
	ID         uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	ContractID string `gorm:"column:contract_id;type:char(32);not null;uniqueIndex:ux_contracts_contract_id" json:"contract_id"`
	SaleID     uint64 `gorm:"column:sale_id;not null;index" json:"-"`
	ItemID     uint64 `gorm:"column:item_id;not null;index:idx_contracts_item_status" json:"-"`
	CustomerID uint64 `gorm:"column:customer_id;not null;index" json:"-"`
	WorkerID   string `gorm:"column:worker_id;type:char(32);not null" json:"worker_id"`

	TotalPrice     decimal.Decimal `gorm:"column:total_price;type:decimal(18,2);not null" json:"total_price"`
	DownPayment    decimal.Decimal `gorm:"column:down_payment;type:decimal(18,2)" json:"down_payment"`
	Months         int             `gorm:"column:months;not null" json:"months"`
	MonthlyPayment decimal.Decimal `gorm:"column:monthly_payment;type:decimal(18,2);not null" json:"monthly_payment"`
	StartDate      time.Time       `gorm:"column:start_date;type:date;not null" json:"start_date"`

	Status          Status    `gorm:"column:status;type:enum('pending','active','completed','rejected');default:'pending';index:idx_contracts_item_status" json:"status"`
	StatusUpdatedAt time.Time `gorm:"column:status_updated_at;autoCreateTime" json:"status_updated_at"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Contract) TableName() string { return "installment_contracts" }
