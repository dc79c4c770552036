package customer

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("customer not found")

// Customer is keyed by a unique national ID-card number. Apply matches on it:
// update the existing row if found, insert otherwise.
type Customer struct {
	ID         uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	CustomerID string `gorm:"column:customer_id;type:char(32);not null;uniqueIndex:ux_customers_customer_id" json:"customer_id"`
	NationalID string `gorm:"column:national_id;size:32;not null;uniqueIndex:ux_customers_national_id" json:"national_id"`
	Name       string `gorm:"column:name;size:255;not null" json:"name"`
	Phone      string `gorm:"column:phone;size:32" json:"phone"`
	Address    string `gorm:"column:address;size:255" json:"address"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Customer) TableName() string { return "customers" }

// Sponsor is a co-signer on one contract. Never deleted once referenced.
type Sponsor struct {
	ID         uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	SponsorID  string `gorm:"column:sponsor_id;type:char(32);not null;uniqueIndex:ux_sponsors_sponsor_id" json:"sponsor_id"`
	ContractID uint64 `gorm:"column:contract_id;not null;index" json:"-"`
	NationalID string `gorm:"column:national_id;size:32;not null" json:"national_id"`
	Name       string `gorm:"column:name;size:255;not null" json:"name"`
	Phone      string `gorm:"column:phone;size:32" json:"phone"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Sponsor) TableName() string { return "sponsors" }
