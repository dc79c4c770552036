package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	paymentDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/payment"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) BulkCreate(ctx context.Context, entries []paymentDomain.ScheduleEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&entries).Error
}

func (r *PaymentRepository) GetByPaymentID(ctx context.Context, paymentID string) (*paymentDomain.ScheduleEntry, error) {
	var out paymentDomain.ScheduleEntry
	res := r.db.WithContext(ctx).Where("payment_id = ?", paymentID).First(&out)
	return &out, res.Error
}

func (r *PaymentRepository) GetByPaymentIDForUpdate(ctx context.Context, paymentID string) (*paymentDomain.ScheduleEntry, error) {
	var out paymentDomain.ScheduleEntry
	res := forUpdate(r.db.WithContext(ctx)).Where("payment_id = ?", paymentID).First(&out)
	return &out, res.Error
}

func (r *PaymentRepository) NextOutstanding(ctx context.Context, saleID uint64, afterMonth int) (*paymentDomain.ScheduleEntry, error) {
	var out paymentDomain.ScheduleEntry
	res := forUpdate(r.db.WithContext(ctx)).
		Where("sale_id = ? AND month_number > ? AND amount_due > 0", saleID, afterMonth).
		Order("month_number ASC").
		First(&out)
	return &out, res.Error
}

func (r *PaymentRepository) CountOutstanding(ctx context.Context, saleID uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&paymentDomain.ScheduleEntry{}).
		Where("sale_id = ? AND amount_due > 0", saleID).
		Count(&n)
	return n, res.Error
}

func (r *PaymentRepository) ListBySaleID(ctx context.Context, saleID uint64) ([]paymentDomain.ScheduleEntry, error) {
	var out []paymentDomain.ScheduleEntry
	res := r.db.WithContext(ctx).
		Where("sale_id = ?", saleID).
		Order("month_number ASC").
		Find(&out)
	return out, res.Error
}

func (r *PaymentRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]paymentDomain.OverdueRow, error) {
	var out []paymentDomain.OverdueRow
	res := r.db.WithContext(ctx).
		Table("installment_payments AS p").
		Select(`p.payment_id, s.sale_id, c.contract_id,
			p.month_number, p.due_date, p.amount_due, p.amount_paid, p.status,
			cu.name AS customer_name, cu.phone AS phone, i.name AS item_name`).
		Joins("JOIN sales s ON s.id = p.sale_id").
		Joins("JOIN installment_contracts c ON c.sale_id = p.sale_id AND c.deleted_at IS NULL").
		Joins("JOIN customers cu ON cu.id = c.customer_id").
		Joins("JOIN items i ON i.id = c.item_id").
		Where("p.due_date < ? AND p.amount_due > 0", asOf).
		Order("p.due_date ASC, p.month_number ASC").
		Scan(&out)
	return out, res.Error
}

func (r *PaymentRepository) Save(ctx context.Context, e *paymentDomain.ScheduleEntry) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *PaymentRepository) CreateTransaction(ctx context.Context, t *paymentDomain.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *PaymentRepository) ListTransactionsByPaymentID(ctx context.Context, paymentID uint64) ([]paymentDomain.Transaction, error) {
	var out []paymentDomain.Transaction
	res := r.db.WithContext(ctx).
		Where("payment_id = ?", paymentID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
