package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	contractDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/contract"
	customerDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/customer"
	itemDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/item"
	paymentDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/payment"
	saleDomain "github.com/AhmadTubaileh/Software-project-sub000/internal/domain/sale"
	checkoutUC "github.com/AhmadTubaileh/Software-project-sub000/internal/usecase/checkout"
	contractUC "github.com/AhmadTubaileh/Software-project-sub000/internal/usecase/contract"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// statusFor maps domain sentinels to HTTP statuses; anything unmapped is a
// storage-level failure and stays a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, itemDomain.ErrNotFound),
		errors.Is(err, contractDomain.ErrNotFound),
		errors.Is(err, paymentDomain.ErrNotFound),
		errors.Is(err, saleDomain.ErrNotFound),
		errors.Is(err, customerDomain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, contractDomain.ErrNotPending):
		return http.StatusConflict
	case errors.Is(err, itemDomain.ErrNoStock),
		errors.Is(err, itemDomain.ErrNotEligible):
		return http.StatusUnprocessableEntity
	case errors.Is(err, paymentDomain.ErrInvalidAmount),
		errors.Is(err, contractUC.ErrInvalidInput),
		errors.Is(err, checkoutUC.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondErr(c echo.Context, err error) error {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		// never leak storage internals to clients
		return c.JSON(code, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(code, ErrorResponse{Error: err.Error()})
}
