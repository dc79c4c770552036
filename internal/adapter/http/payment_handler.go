package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	uc "github.com/AhmadTubaileh/Software-project-sub000/internal/usecase/payment"
)

type PaymentHandler struct{ uc *uc.Usecase }

func NewPaymentHandler(u *uc.Usecase) *PaymentHandler { return &PaymentHandler{uc: u} }

type applyPaymentReq struct {
	Amount   decimal.Decimal `json:"amount"`
	WorkerID string          `json:"worker_id" validate:"required,hex32"`
}

func (h *PaymentHandler) Apply(c echo.Context) error {
	paymentID := c.Param("payment_id")
	if paymentID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing payment_id path param"})
	}
	var req applyPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	res, err := h.uc.Apply(c.Request().Context(), uc.ApplyInput{
		PaymentID: paymentID,
		Amount:    req.Amount,
		WorkerID:  req.WorkerID,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *PaymentHandler) Schedule(c echo.Context) error {
	dto, err := h.uc.Schedule(c.Request().Context(), c.Param("sale_id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PaymentHandler) Overdue(c echo.Context) error {
	rows, err := h.uc.Overdue(c.Request().Context())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}
