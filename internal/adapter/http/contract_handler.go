package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	uc "github.com/AhmadTubaileh/Software-project-sub000/internal/usecase/contract"
)

type ContractHandler struct{ uc *uc.Usecase }

func NewContractHandler(u *uc.Usecase) *ContractHandler { return &ContractHandler{uc: u} }

type customerReq struct {
	NationalID string `json:"national_id" validate:"required,natid"`
	Name       string `json:"name"        validate:"required"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}

type sponsorReq struct {
	NationalID string `json:"national_id" validate:"required,natid"`
	Name       string `json:"name"        validate:"required"`
	Phone      string `json:"phone"`
}

type applyContractReq struct {
	Customer customerReq  `json:"customer"  validate:"required"`
	Sponsors []sponsorReq `json:"sponsors"  validate:"dive"`

	ItemID         string          `json:"item_id"         validate:"required,hex32"`
	WorkerID       string          `json:"worker_id"       validate:"required,hex32"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	DownPayment    decimal.Decimal `json:"down_payment"`
	Months         int             `json:"months"          validate:"gte=0,lte=120"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	// Canonical date `YYYY-MM-DD` (aligns with schema DATE)
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
}

func (h *ContractHandler) Apply(c echo.Context) error {
	var req applyContractReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	start, _ := time.Parse("2006-01-02", req.StartDate)

	in := uc.ApplyInput{
		Customer: uc.CustomerInput{
			NationalID: req.Customer.NationalID,
			Name:       req.Customer.Name,
			Phone:      req.Customer.Phone,
			Address:    req.Customer.Address,
		},
		ItemID:         req.ItemID,
		WorkerID:       req.WorkerID,
		TotalPrice:     req.TotalPrice,
		DownPayment:    req.DownPayment,
		Months:         req.Months,
		MonthlyPayment: req.MonthlyPayment,
		StartDate:      start,
	}
	for _, sp := range req.Sponsors {
		in.Sponsors = append(in.Sponsors, uc.SponsorInput{
			NationalID: sp.NationalID,
			Name:       sp.Name,
			Phone:      sp.Phone,
		})
	}

	res, err := h.uc.Apply(c.Request().Context(), in)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

type decideContractReq struct {
	ApproverID string `json:"approver_id" validate:"required,hex32"`
	Reason     string `json:"reason"`
}

func (h *ContractHandler) Approve(c echo.Context) error {
	contractID := c.Param("contract_id")
	if contractID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing contract_id path param"})
	}
	var req decideContractReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	res, err := h.uc.Approve(c.Request().Context(), uc.ApproveInput{
		ContractID: contractID,
		ApproverID: req.ApproverID,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *ContractHandler) Reject(c echo.Context) error {
	contractID := c.Param("contract_id")
	if contractID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing contract_id path param"})
	}
	var req decideContractReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	if err := h.uc.Reject(c.Request().Context(), uc.RejectInput{
		ContractID: contractID,
		ApproverID: req.ApproverID,
		Reason:     req.Reason,
	}); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "contract rejected"})
}

func (h *ContractHandler) ListPending(c echo.Context) error {
	out, err := h.uc.ListPending(c.Request().Context())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ContractHandler) Get(c echo.Context) error {
	dto, err := h.uc.GetByID(c.Request().Context(), c.Param("contract_id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
