package contract

import (
	"context"
	"errors"

	"gorm.io/gorm"

	contractDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/contract"
)

// ListPending returns the review queue, oldest application first.
func (u *Usecase) ListPending(ctx context.Context) ([]PendingContractDTO, error) {
	contracts, err := u.repos.Contracts.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]PendingContractDTO, 0, len(contracts))
	for _, c := range contracts {
		s, err := u.repos.Sales.GetByID(ctx, c.SaleID)
		if err != nil {
			return nil, err
		}
		cust, err := u.repos.Customers.GetByID(ctx, c.CustomerID)
		if err != nil {
			return nil, err
		}
		it, err := u.repos.Items.GetByID(ctx, c.ItemID)
		if err != nil {
			return nil, err
		}
		out = append(out, PendingContractDTO{
			ContractID:     c.ContractID,
			SaleID:         s.SaleID,
			CustomerName:   cust.Name,
			NationalID:     cust.NationalID,
			ItemName:       it.Name,
			TotalPrice:     c.TotalPrice,
			Months:         c.Months,
			MonthlyPayment: c.MonthlyPayment,
			AppliedAt:      c.CreatedAt,
		})
	}
	return out, nil
}

// GetByID joins the contract with its customer, sponsors, item and approval.
func (u *Usecase) GetByID(ctx context.Context, contractID string) (*ContractDTO, error) {
	c, err := u.repos.Contracts.GetByContractID(ctx, contractID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, contractDomain.ErrNotFound
		}
		return nil, err
	}
	s, err := u.repos.Sales.GetByID(ctx, c.SaleID)
	if err != nil {
		return nil, err
	}
	cust, err := u.repos.Customers.GetByID(ctx, c.CustomerID)
	if err != nil {
		return nil, err
	}
	it, err := u.repos.Items.GetByID(ctx, c.ItemID)
	if err != nil {
		return nil, err
	}
	a, err := u.repos.Approvals.GetByContractID(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	sponsors, err := u.repos.Customers.ListSponsorsByContractID(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	dto := &ContractDTO{
		ContractID:     c.ContractID,
		SaleID:         s.SaleID,
		Status:         string(c.Status),
		TotalPrice:     c.TotalPrice,
		DownPayment:    c.DownPayment,
		Months:         c.Months,
		MonthlyPayment: c.MonthlyPayment,
		StartDate:      c.StartDate,
		WorkerID:       c.WorkerID,
		CreatedAt:      c.CreatedAt,
		Customer: CustomerInput{
			NationalID: cust.NationalID,
			Name:       cust.Name,
			Phone:      cust.Phone,
			Address:    cust.Address,
		},
		ItemName:       it.Name,
		ItemID:         it.ItemID,
		ApprovalStatus: string(a.Status),
		ApproverID:     a.ApproverID,
		RejectReason:   a.Reason,
		DecidedAt:      a.DecidedAt,
	}
	for _, sp := range sponsors {
		dto.Sponsors = append(dto.Sponsors, SponsorInput{
			NationalID: sp.NationalID,
			Name:       sp.Name,
			Phone:      sp.Phone,
		})
	}
	return dto, nil
}
