package item

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("item not found")
	// ErrNoStock: no unit left once pending reservations are subtracted.
	ErrNoStock = errors.New("no available quantity to reserve")
	// ErrNotEligible: item exists but may not be sold right now (flagged
	// unavailable, or not offered on installment for contract applications).
	ErrNotEligible = errors.New("item not available for sale")
)

type Item struct {
	ID     uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	ItemID string `gorm:"column:item_id;type:char(32);not null;uniqueIndex:ux_items_item_id" json:"item_id"`
	Name   string `gorm:"column:name;size:255;not null" json:"name"`

	CashPrice         decimal.Decimal `gorm:"column:cash_price;type:decimal(18,2);not null" json:"cash_price"`
	InstallmentPrice  decimal.Decimal `gorm:"column:installment_price;type:decimal(18,2)" json:"installment_price"`
	InstallmentMonths int             `gorm:"column:installment_months" json:"installment_months"`
	MonthlyAmount     decimal.Decimal `gorm:"column:monthly_amount;type:decimal(18,2)" json:"monthly_amount"`

	Available   bool `gorm:"column:available;default:true" json:"available"`
	Installment bool `gorm:"column:installment;default:false" json:"installment"`
	// Physical units on hand. Never goes negative; pending installment
	// contracts reserve against it without decrementing it.
	Quantity int `gorm:"column:quantity;not null" json:"quantity"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Item) TableName() string { return "items" }
