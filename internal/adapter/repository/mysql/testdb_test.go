package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	itemDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/item"
)

// --- SQLite-friendly schema only for tests (no ENUM) ---
//
// The domain models carry MySQL enum column types that sqlite cannot parse,
// so AutoMigrate here runs against these mirrors instead. Table and column
// names match the domain models exactly; only the enum columns become text.

type itemSQLite struct {
	ID                uint64          `gorm:"primaryKey;column:id"`
	ItemID            string          `gorm:"size:32;column:item_id;uniqueIndex:ux_items_item_id"`
	Name              string          `gorm:"column:name"`
	CashPrice         decimal.Decimal `gorm:"column:cash_price;type:decimal(18,2)"`
	InstallmentPrice  decimal.Decimal `gorm:"column:installment_price;type:decimal(18,2)"`
	InstallmentMonths int             `gorm:"column:installment_months"`
	MonthlyAmount     decimal.Decimal `gorm:"column:monthly_amount;type:decimal(18,2)"`
	Available         bool            `gorm:"column:available"`
	Installment       bool            `gorm:"column:installment"`
	Quantity          int             `gorm:"column:quantity"`
	CreatedAt         time.Time       `gorm:"column:created_at"`
	UpdatedAt         time.Time       `gorm:"column:updated_at"`
}

func (itemSQLite) TableName() string { return "items" }

type saleSQLite struct {
	ID        uint64          `gorm:"primaryKey;column:id"`
	SaleID    string          `gorm:"size:32;column:sale_id;uniqueIndex:ux_sales_sale_id"`
	ItemID    uint64          `gorm:"column:item_id"`
	WorkerID  string          `gorm:"size:32;column:worker_id"`
	Kind      string          `gorm:"type:text;column:kind"` // ← no enum
	Amount    decimal.Decimal `gorm:"column:amount;type:decimal(18,2)"`
	SaleDate  time.Time       `gorm:"column:sale_date"`
	CreatedAt time.Time       `gorm:"column:created_at"`
	UpdatedAt time.Time       `gorm:"column:updated_at"`
}

func (saleSQLite) TableName() string { return "sales" }

type contractSQLite struct {
	ID              uint64          `gorm:"primaryKey;column:id"`
	ContractID      string          `gorm:"size:32;column:contract_id;uniqueIndex:ux_contracts_contract_id"`
	SaleID          uint64          `gorm:"column:sale_id"`
	ItemID          uint64          `gorm:"column:item_id"`
	CustomerID      uint64          `gorm:"column:customer_id"`
	WorkerID        string          `gorm:"size:32;column:worker_id"`
	TotalPrice      decimal.Decimal `gorm:"column:total_price;type:decimal(18,2)"`
	DownPayment     decimal.Decimal `gorm:"column:down_payment;type:decimal(18,2)"`
	Months          int             `gorm:"column:months"`
	MonthlyPayment  decimal.Decimal `gorm:"column:monthly_payment;type:decimal(18,2)"`
	StartDate       time.Time       `gorm:"column:start_date"`
	Status          string          `gorm:"type:text;column:status"` // ← no enum
	StatusUpdatedAt time.Time       `gorm:"column:status_updated_at"`
	CreatedAt       time.Time       `gorm:"column:created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt  `gorm:"column:deleted_at"`
}

func (contractSQLite) TableName() string { return "installment_contracts" }

type approvalSQLite struct {
	ID         uint64     `gorm:"primaryKey;column:id"`
	ApprovalID string     `gorm:"size:32;column:approval_id;uniqueIndex:ux_approvals_approval_id"`
	ContractID uint64     `gorm:"column:contract_id;uniqueIndex:ux_approvals_contract"`
	Status     string     `gorm:"type:text;column:status"` // ← no enum
	ApproverID *string    `gorm:"size:32;column:approver_id"`
	Reason     string     `gorm:"column:reason"`
	DecidedAt  *time.Time `gorm:"column:decided_at"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at"`
}

func (approvalSQLite) TableName() string { return "contract_approvals" }

type customerSQLite struct {
	ID         uint64    `gorm:"primaryKey;column:id"`
	CustomerID string    `gorm:"size:32;column:customer_id;uniqueIndex:ux_customers_customer_id"`
	NationalID string    `gorm:"size:32;column:national_id;uniqueIndex:ux_customers_national_id"`
	Name       string    `gorm:"column:name"`
	Phone      string    `gorm:"column:phone"`
	Address    string    `gorm:"column:address"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (customerSQLite) TableName() string { return "customers" }

type sponsorSQLite struct {
	ID         uint64    `gorm:"primaryKey;column:id"`
	SponsorID  string    `gorm:"size:32;column:sponsor_id;uniqueIndex:ux_sponsors_sponsor_id"`
	ContractID uint64    `gorm:"column:contract_id"`
	NationalID string    `gorm:"size:32;column:national_id"`
	Name       string    `gorm:"column:name"`
	Phone      string    `gorm:"column:phone"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (sponsorSQLite) TableName() string { return "sponsors" }

type scheduleEntrySQLite struct {
	ID          uint64          `gorm:"primaryKey;column:id"`
	PaymentID   string          `gorm:"size:32;column:payment_id;uniqueIndex:ux_payments_payment_id"`
	SaleID      uint64          `gorm:"column:sale_id;uniqueIndex:ux_payments_sale_month,priority:1"`
	MonthNumber int             `gorm:"column:month_number;uniqueIndex:ux_payments_sale_month,priority:2"`
	DueDate     time.Time       `gorm:"column:due_date"`
	AmountDue   decimal.Decimal `gorm:"column:amount_due;type:decimal(18,2)"`
	AmountPaid  decimal.Decimal `gorm:"column:amount_paid;type:decimal(18,2)"`
	Status      string          `gorm:"type:text;column:status"` // ← no enum
	PaidDate    *time.Time      `gorm:"column:paid_date"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"`
}

func (scheduleEntrySQLite) TableName() string { return "installment_payments" }

type transactionSQLite struct {
	ID            uint64          `gorm:"primaryKey;column:id"`
	TransactionID string          `gorm:"size:32;column:transaction_id;uniqueIndex:ux_transactions_transaction_id"`
	PaymentID     uint64          `gorm:"column:payment_id"`
	AmountPaid    decimal.Decimal `gorm:"column:amount_paid;type:decimal(18,2)"`
	WorkerID      string          `gorm:"size:32;column:worker_id"`
	PaymentDate   time.Time       `gorm:"column:payment_date"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
}

func (transactionSQLite) TableName() string { return "installment_transactions" }

type stockLogSQLite struct {
	ID        uint64    `gorm:"primaryKey;column:id"`
	ItemID    uint64    `gorm:"column:item_id"`
	WorkerID  string    `gorm:"size:32;column:worker_id"`
	Change    int       `gorm:"column:change"`
	Kind      string    `gorm:"type:text;column:kind"` // ← no enum
	Note      string    `gorm:"column:note"`
	LoggedAt  time.Time `gorm:"column:logged_at"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (stockLogSQLite) TableName() string { return "stock_logs" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&itemSQLite{},
		&saleSQLite{},
		&contractSQLite{},
		&approvalSQLite{},
		&customerSQLite{},
		&sponsorSQLite{},
		&scheduleEntrySQLite{},
		&transactionSQLite{},
		&stockLogSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func seedItem(t *testing.T, db *gorm.DB, itemID string, qty int) *itemDomain.Item {
	t.Helper()
	it := &itemDomain.Item{
		ItemID:            itemID,
		Name:              "refrigerator",
		CashPrice:         decimal.NewFromInt(500),
		InstallmentPrice:  decimal.NewFromInt(600),
		InstallmentMonths: 12,
		MonthlyAmount:     decimal.NewFromInt(50),
		Available:         true,
		Installment:       true,
		Quantity:          qty,
	}
	if err := NewItemRepository(db).Create(context.Background(), it); err != nil {
		t.Fatalf("seed item: %v", err)
	}
	return it
}
