package item

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	itemDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/item"
	"github.com/AhmadTubaileh/Software-project-sub000/internal/domain/uow"
)

type Usecase struct{ repos uow.Repos }

func NewUsecase(repos uow.Repos) *Usecase { return &Usecase{repos: repos} }

// ItemDTO carries the catalog row plus the derived available quantity:
// physical quantity minus units reserved by pending contracts.
type ItemDTO struct {
	ItemID            string          `json:"item_id"`
	Name              string          `json:"name"`
	CashPrice         decimal.Decimal `json:"cash_price"`
	InstallmentPrice  decimal.Decimal `json:"installment_price"`
	InstallmentMonths int             `json:"installment_months"`
	MonthlyAmount     decimal.Decimal `json:"monthly_amount"`
	Available         bool            `json:"available"`
	Installment       bool            `json:"installment"`
	Quantity          int             `json:"quantity"`
	AvailableQuantity int             `json:"available_quantity"`
	CreatedAt         time.Time       `json:"created_at"`
}

func (u *Usecase) toDTO(ctx context.Context, it *itemDomain.Item) (*ItemDTO, error) {
	pending, err := u.repos.Contracts.CountPendingByItemID(ctx, it.ID)
	if err != nil {
		return nil, err
	}
	return &ItemDTO{
		ItemID:            it.ItemID,
		Name:              it.Name,
		CashPrice:         it.CashPrice,
		InstallmentPrice:  it.InstallmentPrice,
		InstallmentMonths: it.InstallmentMonths,
		MonthlyAmount:     it.MonthlyAmount,
		Available:         it.Available,
		Installment:       it.Installment,
		Quantity:          it.Quantity,
		AvailableQuantity: it.Quantity - int(pending),
		CreatedAt:         it.CreatedAt,
	}, nil
}

func (u *Usecase) Get(ctx context.Context, itemID string) (*ItemDTO, error) {
	it, err := u.repos.Items.GetByItemID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, itemDomain.ErrNotFound
		}
		return nil, err
	}
	return u.toDTO(ctx, it)
}

func (u *Usecase) List(ctx context.Context) ([]ItemDTO, error) {
	items, err := u.repos.Items.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ItemDTO, 0, len(items))
	for i := range items {
		dto, err := u.toDTO(ctx, &items[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *dto)
	}
	return out, nil
}
