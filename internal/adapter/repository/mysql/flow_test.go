package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	contractDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/contract"
	paymentDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/payment"
	uowDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/uow"
	contractUC "github.com/AhmadTubaileh/Software-project-sub000/internal/usecase/contract"
	paymentUC "github.com/AhmadTubaileh/Software-project-sub000/internal/usecase/payment"
	"github.com/AhmadTubaileh/Software-project-sub000/pkg/id"
)

// The tests below run the real usecases against sqlite through the gorm
// unit of work, end to end: apply, approve/reject, then pay to completion.

type stack struct {
	db          *gorm.DB
	contracts   *contractUC.Usecase
	payments    *paymentUC.Usecase
	itemRepo    *ItemRepository
	stockRepo   *StockLogRepository
	paymentRepo *PaymentRepository
}

func newStack(t *testing.T) *stack {
	t.Helper()
	db := openTestDB(t)
	repos := bindRepos(db)
	u := NewGormUoW(db)
	return &stack{
		db:          db,
		contracts:   contractUC.NewUsecase(repos, u, zerolog.Nop()),
		payments:    paymentUC.NewUsecase(repos, u, zerolog.Nop()),
		itemRepo:    NewItemRepository(db),
		stockRepo:   NewStockLogRepository(db),
		paymentRepo: NewPaymentRepository(db),
	}
}

func flowApplyInput(itemID string, months int) contractUC.ApplyInput {
	return contractUC.ApplyInput{
		Customer: contractUC.CustomerInput{
			NationalID: "9876543210",
			Name:       "Sami Odeh",
			Phone:      "0599000001",
			Address:    "Nablus",
		},
		Sponsors: []contractUC.SponsorInput{
			{NationalID: "1231231230", Name: "Omar Odeh", Phone: "0599000002"},
		},
		ItemID:         itemID,
		WorkerID:       id.NewID32(),
		TotalPrice:     decimal.NewFromInt(600),
		DownPayment:    decimal.NewFromInt(100),
		Months:         months,
		MonthlyPayment: decimal.NewFromInt(100),
		StartDate:      time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestFlow_ApplyApprovePayToCompletion(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	it := seedItem(t, s.db, id.NewID32(), 1)

	applied, err := s.contracts.Apply(ctx, flowApplyInput(it.ItemID, 5))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	// the single unit is reserved: a second application must be gated
	if _, err := s.contracts.Apply(ctx, flowApplyInput(it.ItemID, 5)); err == nil {
		t.Fatalf("second application for the last unit must fail")
	}

	approver := id.NewID32()
	approved, err := s.contracts.Approve(ctx, contractUC.ApproveInput{
		ContractID: applied.ContractID, ApproverID: approver,
	})
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if approved.PaymentsCreated != 5 {
		t.Fatalf("PaymentsCreated = %d, want 5", approved.PaymentsCreated)
	}

	// approval consumes the reservation without touching the physical count
	after, err := s.itemRepo.GetByID(ctx, it.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if after.Quantity != 1 {
		t.Fatalf("quantity = %d, want 1", after.Quantity)
	}

	sched, err := s.payments.Schedule(ctx, applied.SaleID)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if len(sched.Entries) != 5 {
		t.Fatalf("schedule has %d entries, want 5", len(sched.Entries))
	}

	// month 1 partial, then an overpayment that clears everything
	if _, err := s.payments.Apply(ctx, paymentUC.ApplyInput{
		PaymentID: sched.Entries[0].PaymentID,
		Amount:    decimal.NewFromInt(40),
		WorkerID:  id.NewID32(),
	}); err != nil {
		t.Fatalf("partial payment: %v", err)
	}

	res, err := s.payments.Apply(ctx, paymentUC.ApplyInput{
		PaymentID: sched.Entries[0].PaymentID,
		Amount:    decimal.NewFromInt(460), // 60 remainder + 4 x 100
		WorkerID:  id.NewID32(),
	})
	if err != nil {
		t.Fatalf("overpayment: %v", err)
	}
	if !res.ContractCompleted {
		t.Fatalf("contract must complete when the cascade clears the schedule")
	}

	final, err := s.payments.Schedule(ctx, applied.SaleID)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	for _, e := range final.Entries {
		if e.Status != string(paymentDomain.StatusPaid) || !e.AmountDue.IsZero() {
			t.Errorf("month %d: status=%s due=%s, want paid/0", e.MonthNumber, e.Status, e.AmountDue)
		}
	}

	got, err := s.contracts.GetByID(ctx, applied.ContractID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != string(contractDomain.StatusCompleted) {
		t.Errorf("contract status = %s, want completed", got.Status)
	}

	// ledger: 40 then 60 on month 1, 100 on each of months 2..5; one row
	// per credited month, summing to the 500 of cash received
	var txCount int64
	if err := s.db.Table("installment_transactions").Count(&txCount).Error; err != nil {
		t.Fatalf("count transactions: %v", err)
	}
	if txCount != 6 {
		t.Errorf("transaction rows = %d, want 6", txCount)
	}
	var txTotal decimal.Decimal
	if err := s.db.Table("installment_transactions").
		Select("COALESCE(SUM(amount_paid), 0)").Scan(&txTotal).Error; err != nil {
		t.Fatalf("sum transactions: %v", err)
	}
	if !txTotal.Equal(decimal.NewFromInt(500)) {
		t.Errorf("ledger total = %s, want 500", txTotal)
	}

	// audit trail: apply + approve + 2 payments, all zero-change
	logs, err := s.stockRepo.ListByItemID(ctx, it.ID)
	if err != nil {
		t.Fatalf("ListByItemID: %v", err)
	}
	if len(logs) != 4 {
		t.Fatalf("stock logs = %d, want 4", len(logs))
	}
	for _, l := range logs {
		if l.Change != 0 {
			t.Errorf("log %d: change = %d, want 0", l.ID, l.Change)
		}
	}
}

func TestFlow_RejectReleasesReservation(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	it := seedItem(t, s.db, id.NewID32(), 1)

	applied, err := s.contracts.Apply(ctx, flowApplyInput(it.ItemID, 5))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if err := s.contracts.Reject(ctx, contractUC.RejectInput{
		ContractID: applied.ContractID,
		ApproverID: id.NewID32(),
		Reason:     "income too low",
	}); err != nil {
		t.Fatalf("Reject: %v", err)
	}

	after, err := s.itemRepo.GetByID(ctx, it.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if after.Quantity != 2 {
		t.Fatalf("quantity = %d, want 2 after release", after.Quantity)
	}

	logs, err := s.stockRepo.ListByItemID(ctx, it.ID)
	if err != nil {
		t.Fatalf("ListByItemID: %v", err)
	}
	last := logs[0] // ListByItemID returns newest first
	if last.Change != 1 {
		t.Errorf("release log change = %d, want 1", last.Change)
	}

	// the released unit is available again
	if _, err := s.contracts.Apply(ctx, flowApplyInput(it.ItemID, 5)); err != nil {
		t.Fatalf("apply after release: %v", err)
	}

	// a decided contract cannot be decided again
	if _, err := s.contracts.Approve(ctx, contractUC.ApproveInput{
		ContractID: applied.ContractID, ApproverID: id.NewID32(),
	}); !errors.Is(err, contractDomain.ErrNotPending) {
		t.Fatalf("approve after reject: want ErrNotPending, got %v", err)
	}
}

var errLedgerDown = errors.New("ledger write refused")

// ledgerFaultUoW is the gorm unit of work with a payments repo that refuses
// the nth CreateTransaction, forcing a failure in the middle of a cascade.
type ledgerFaultUoW struct {
	db     *gorm.DB
	failOn int
	calls  int
}

func (u *ledgerFaultUoW) WithinTx(ctx context.Context, fn func(r uowDomain.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := bindRepos(tx)
		r.Payments = &faultingPayments{Repository: r.Payments, uow: u}
		return fn(r)
	})
}

func (u *ledgerFaultUoW) WithinContractTx(ctx context.Context, contractID string, fn func(r uowDomain.Repos, c *contractDomain.Contract) error) error {
	return NewGormUoW(u.db).WithinContractTx(ctx, contractID, fn)
}

type faultingPayments struct {
	paymentDomain.Repository
	uow *ledgerFaultUoW
}

func (p *faultingPayments) CreateTransaction(ctx context.Context, tr *paymentDomain.Transaction) error {
	p.uow.calls++
	if p.uow.calls == p.uow.failOn {
		return errLedgerDown
	}
	return p.Repository.CreateTransaction(ctx, tr)
}

func TestFlow_CascadeRollsBackAsOneUnit(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	it := seedItem(t, s.db, id.NewID32(), 1)

	applied, err := s.contracts.Apply(ctx, flowApplyInput(it.ItemID, 3))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if _, err := s.contracts.Approve(ctx, contractUC.ApproveInput{
		ContractID: applied.ContractID, ApproverID: id.NewID32(),
	}); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	sched, err := s.payments.Schedule(ctx, applied.SaleID)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	// ledger refuses the second row: the target month is already credited
	// when the first cascaded month fails
	faulty := paymentUC.NewUsecase(bindRepos(s.db), &ledgerFaultUoW{db: s.db, failOn: 2}, zerolog.Nop())
	if _, err := faulty.Apply(ctx, paymentUC.ApplyInput{
		PaymentID: sched.Entries[0].PaymentID,
		Amount:    decimal.NewFromInt(250),
		WorkerID:  id.NewID32(),
	}); !errors.Is(err, errLedgerDown) {
		t.Fatalf("want errLedgerDown, got %v", err)
	}

	// the half-applied cascade must leave no trace
	after, err := s.payments.Schedule(ctx, applied.SaleID)
	if err != nil {
		t.Fatalf("Schedule after rollback: %v", err)
	}
	for _, e := range after.Entries {
		if e.Status != string(paymentDomain.StatusPending) ||
			!e.AmountDue.Equal(decimal.NewFromInt(100)) || !e.AmountPaid.IsZero() {
			t.Errorf("month %d: status=%s due=%s paid=%s, want pending/100/0",
				e.MonthNumber, e.Status, e.AmountDue, e.AmountPaid)
		}
	}
	var txCount int64
	if err := s.db.Table("installment_transactions").Count(&txCount).Error; err != nil {
		t.Fatalf("count transactions: %v", err)
	}
	if txCount != 0 {
		t.Errorf("transaction rows = %d, want 0 after rollback", txCount)
	}

	// the same submission goes through once the ledger is healthy again
	if _, err := s.payments.Apply(ctx, paymentUC.ApplyInput{
		PaymentID: sched.Entries[0].PaymentID,
		Amount:    decimal.NewFromInt(250),
		WorkerID:  id.NewID32(),
	}); err != nil {
		t.Fatalf("Apply after recovery: %v", err)
	}
	var txTotal decimal.Decimal
	if err := s.db.Table("installment_transactions").
		Select("COALESCE(SUM(amount_paid), 0)").Scan(&txTotal).Error; err != nil {
		t.Fatalf("sum transactions: %v", err)
	}
	if !txTotal.Equal(decimal.NewFromInt(250)) {
		t.Errorf("ledger total = %s, want 250", txTotal)
	}
}

func TestFlow_ZeroMonthContract(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	it := seedItem(t, s.db, id.NewID32(), 1)

	applied, err := s.contracts.Apply(ctx, flowApplyInput(it.ItemID, 0))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	res, err := s.contracts.Approve(ctx, contractUC.ApproveInput{
		ContractID: applied.ContractID, ApproverID: id.NewID32(),
	})
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if res.PaymentsCreated != 0 {
		t.Errorf("PaymentsCreated = %d, want 0", res.PaymentsCreated)
	}

	got, err := s.contracts.GetByID(ctx, applied.ContractID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != string(contractDomain.StatusActive) {
		t.Errorf("status = %s, want active", got.Status)
	}
}
