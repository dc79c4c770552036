package payment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/AhmadTubaileh/Software-project-sub000/pkg/id"
)

// BuildSchedule derives the full set of monthly obligations for an approved
// contract: months rows numbered 1..months, each owing the monthly payment,
// due start+n calendar months (AddDate, so end-of-month dates normalize the
// way the platform calendar does). months <= 0 yields no rows; the contract
// still goes active with nothing to collect.
func BuildSchedule(saleID uint64, months int, monthly decimal.Decimal, start time.Time) []ScheduleEntry {
	if months <= 0 {
		return nil
	}
	out := make([]ScheduleEntry, 0, months)
	for n := 1; n <= months; n++ {
		out = append(out, ScheduleEntry{
			PaymentID:   id.NewID32(),
			SaleID:      saleID,
			MonthNumber: n,
			DueDate:     start.AddDate(0, n, 0),
			AmountDue:   monthly,
			AmountPaid:  decimal.Zero,
			Status:      StatusPending,
		})
	}
	return out
}
