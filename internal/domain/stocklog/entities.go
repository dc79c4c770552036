package stocklog

import "time"

type Kind string

const (
	// KindSale marks checkout and installment activity. Apply/approve/payment
	// write zero-change rows of this kind so the trail stays append-only even
	// when the physical count does not move.
	KindSale Kind = "sale"
	// KindReturn marks units going back on the shelf, including reservation
	// release on contract rejection (+1).
	KindReturn Kind = "return"
)

// Entry is one append-only inventory audit row.
type Entry struct {
	ID       uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	ItemID   uint64    `gorm:"column:item_id;not null;index" json:"item_id"`
	WorkerID string    `gorm:"column:worker_id;type:char(32);not null" json:"worker_id"`
	Change   int       `gorm:"column:change;not null" json:"change"`
	Kind     Kind      `gorm:"column:kind;type:enum('sale','return');not null" json:"kind"`
	Note     string    `gorm:"column:note;size:255" json:"note"`
	LoggedAt time.Time `gorm:"column:logged_at;not null" json:"logged_at"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Entry) TableName() string { return "stock_logs" }
