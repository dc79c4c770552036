package contract

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	approvalDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/approval"
	contractDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/contract"
	customerDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/customer"
	itemDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/item"
	paymentDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/payment"
	saleDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/sale"
	stocklogDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/stocklog"
	"github.com/AhmadTubaileh/Software-project-sub000/internal/domain/uow"
	"github.com/AhmadTubaileh/Software-project-sub000/pkg/id"
)

var ErrInvalidInput = errors.New("invalid input")

type Usecase struct {
	// repos bound to the base connection serve the read projections;
	// every mutation goes through the unit of work instead.
	repos uow.Repos
	uow   uow.UnitOfWork
	log   zerolog.Logger
}

func NewUsecase(repos uow.Repos, tx uow.UnitOfWork, log zerolog.Logger) *Usecase {
	return &Usecase{repos: repos, uow: tx, log: log}
}

// Apply runs the whole application as one transaction: upsert the customer by
// national ID, gate on available quantity under the item row lock, then create
// sale, contract (pending), approval (pending_review), sponsors and a
// zero-change stock log. Any failure rolls the whole thing back.
func (u *Usecase) Apply(ctx context.Context, in ApplyInput) (*ApplyResult, error) {
	if in.Customer.NationalID == "" || in.ItemID == "" || in.WorkerID == "" {
		return nil, ErrInvalidInput
	}
	if in.TotalPrice.IsNegative() || in.MonthlyPayment.IsNegative() {
		return nil, ErrInvalidInput
	}

	var res *ApplyResult
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		it, err := r.Items.GetByItemIDForUpdate(ctx, in.ItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return itemDomain.ErrNotFound
			}
			return err
		}
		if !it.Available || !it.Installment {
			return itemDomain.ErrNotEligible
		}

		// Re-checked under the row lock: two concurrent applications for the
		// last unit must not both pass this gate.
		pending, err := r.Contracts.CountPendingByItemID(ctx, it.ID)
		if err != nil {
			return err
		}
		if it.Quantity-int(pending) <= 0 {
			return itemDomain.ErrNoStock
		}

		cust, err := u.upsertCustomer(ctx, r, in.Customer)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		s := &saleDomain.Sale{
			SaleID:   id.NewID32(),
			ItemID:   it.ID,
			WorkerID: in.WorkerID,
			Kind:     saleDomain.KindInstallment,
			Amount:   in.TotalPrice,
			SaleDate: now,
		}
		if err := r.Sales.Create(ctx, s); err != nil {
			return err
		}

		c := &contractDomain.Contract{
			ContractID:      id.NewID32(),
			SaleID:          s.ID,
			ItemID:          it.ID,
			CustomerID:      cust.ID,
			WorkerID:        in.WorkerID,
			TotalPrice:      in.TotalPrice,
			DownPayment:     in.DownPayment,
			Months:          in.Months,
			MonthlyPayment:  in.MonthlyPayment,
			StartDate:       in.StartDate,
			Status:          contractDomain.StatusPending,
			StatusUpdatedAt: now,
		}
		if err := r.Contracts.Create(ctx, c); err != nil {
			return err
		}

		a := &approvalDomain.Approval{
			ApprovalID: id.NewID32(),
			ContractID: c.ID,
			Status:     approvalDomain.StatusPendingReview,
		}
		if err := r.Approvals.Create(ctx, a); err != nil {
			return err
		}

		for _, sp := range in.Sponsors {
			if err := r.Customers.CreateSponsor(ctx, &customerDomain.Sponsor{
				SponsorID:  id.NewID32(),
				ContractID: c.ID,
				NationalID: sp.NationalID,
				Name:       sp.Name,
				Phone:      sp.Phone,
			}); err != nil {
				return err
			}
		}

		if err := r.StockLogs.Create(ctx, &stocklogDomain.Entry{
			ItemID:   it.ID,
			WorkerID: in.WorkerID,
			Change:   0,
			Kind:     stocklogDomain.KindSale,
			Note:     "installment application",
			LoggedAt: now,
		}); err != nil {
			return err
		}

		res = &ApplyResult{ContractID: c.ContractID, SaleID: s.SaleID}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// upsertCustomer matches by national ID: update the row if it exists, insert
// if it does not.
func (u *Usecase) upsertCustomer(ctx context.Context, r uow.Repos, in CustomerInput) (*customerDomain.Customer, error) {
	cust, err := r.Customers.GetByNationalID(ctx, in.NationalID)
	switch {
	case err == nil:
		cust.Name = in.Name
		cust.Phone = in.Phone
		cust.Address = in.Address
		if err := r.Customers.Save(ctx, cust); err != nil {
			return nil, err
		}
		return cust, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		cust = &customerDomain.Customer{
			CustomerID: id.NewID32(),
			NationalID: in.NationalID,
			Name:       in.Name,
			Phone:      in.Phone,
			Address:    in.Address,
		}
		if err := r.Customers.Create(ctx, cust); err != nil {
			return nil, err
		}
		return cust, nil
	default:
		return nil, err
	}
}

// Approve moves pending -> active and materializes the payment schedule.
// Item quantity is untouched: the reserved unit is consumed conceptually,
// never physically decremented.
func (u *Usecase) Approve(ctx context.Context, in ApproveInput) (*ApproveResult, error) {
	if in.ContractID == "" || in.ApproverID == "" {
		return nil, ErrInvalidInput
	}

	var res *ApproveResult
	err := u.uow.WithinContractTx(ctx, in.ContractID, func(r uow.Repos, c *contractDomain.Contract) error {
		if c.Status != contractDomain.StatusPending {
			return contractDomain.ErrNotPending
		}

		a, err := r.Approvals.GetByContractID(ctx, c.ID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		c.Status = contractDomain.StatusActive
		c.StatusUpdatedAt = now
		if err := r.Contracts.Save(ctx, c); err != nil {
			return err
		}

		a.Status = approvalDomain.StatusApproved
		a.ApproverID = &in.ApproverID
		a.DecidedAt = &now
		if err := r.Approvals.Save(ctx, a); err != nil {
			return err
		}

		entries := paymentDomain.BuildSchedule(c.SaleID, c.Months, c.MonthlyPayment, c.StartDate)
		if err := r.Payments.BulkCreate(ctx, entries); err != nil {
			return err
		}
		if len(entries) == 0 {
			u.log.Warn().Str("contract_id", c.ContractID).
				Msg("contract approved with zero scheduled months")
		}

		if err := r.StockLogs.Create(ctx, &stocklogDomain.Entry{
			ItemID:   c.ItemID,
			WorkerID: in.ApproverID,
			Change:   0,
			Kind:     stocklogDomain.KindSale,
			Note:     "contract approved",
			LoggedAt: now,
		}); err != nil {
			return err
		}

		res = &ApproveResult{PaymentsCreated: len(entries)}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, contractDomain.ErrNotPending
		}
		return nil, err
	}
	return res, nil
}

// Reject moves pending -> rejected and gives the reserved unit back:
// quantity +1 plus a return-type stock log, distinguishing the release from
// an actual customer return.
func (u *Usecase) Reject(ctx context.Context, in RejectInput) error {
	if in.ContractID == "" || in.ApproverID == "" {
		return ErrInvalidInput
	}

	err := u.uow.WithinContractTx(ctx, in.ContractID, func(r uow.Repos, c *contractDomain.Contract) error {
		if c.Status != contractDomain.StatusPending {
			return contractDomain.ErrNotPending
		}

		a, err := r.Approvals.GetByContractID(ctx, c.ID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		c.Status = contractDomain.StatusRejected
		c.StatusUpdatedAt = now
		if err := r.Contracts.Save(ctx, c); err != nil {
			return err
		}

		a.Status = approvalDomain.StatusRejected
		a.ApproverID = &in.ApproverID
		a.Reason = in.Reason
		a.DecidedAt = &now
		if err := r.Approvals.Save(ctx, a); err != nil {
			return err
		}

		if err := r.Items.IncrementQuantity(ctx, c.ItemID, 1); err != nil {
			return err
		}

		return r.StockLogs.Create(ctx, &stocklogDomain.Entry{
			ItemID:   c.ItemID,
			WorkerID: in.ApproverID,
			Change:   1,
			Kind:     stocklogDomain.KindReturn,
			Note:     "reservation released on rejection",
			LoggedAt: now,
		})
	})
	if err != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return contractDomain.ErrNotPending
	}
	return err
}
