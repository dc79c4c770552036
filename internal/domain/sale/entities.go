package sale

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("sale not found")

type Kind string

const (
	KindCash        Kind = "cash"
	KindInstallment Kind = "installment"
)

type Sale struct {
	ID       uint64          `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	SaleID   string          `gorm:"column:sale_id;type:char(32);not null;uniqueIndex:ux_sales_sale_id" json:"sale_id"`
	ItemID   uint64          `gorm:"column:item_id;not null;index" json:"item_id"`
	WorkerID string          `gorm:"column:worker_id;type:char(32);not null" json:"worker_id"`
	Kind     Kind            `gorm:"column:kind;type:enum('cash','installment');not null" json:"kind"`
	Amount   decimal.Decimal `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	SaleDate time.Time       `gorm:"column:sale_date;not null" json:"sale_date"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Sale) TableName() string { return "sales" }
