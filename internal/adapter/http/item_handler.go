package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	checkoutUC "github.com/AhmadTubaileh/Software-project-sub000/internal/usecase/checkout"
	itemUC "github.com/AhmadTubaileh/Software-project-sub000/internal/usecase/item"
)

type ItemHandler struct {
	items    *itemUC.Usecase
	checkout *checkoutUC.Usecase
}

func NewItemHandler(items *itemUC.Usecase, checkout *checkoutUC.Usecase) *ItemHandler {
	return &ItemHandler{items: items, checkout: checkout}
}

func (h *ItemHandler) List(c echo.Context) error {
	out, err := h.items.List(c.Request().Context())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ItemHandler) Get(c echo.Context) error {
	dto, err := h.items.Get(c.Request().Context(), c.Param("item_id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type checkoutReq struct {
	ItemID   string `json:"item_id"   validate:"required,hex32"`
	Quantity int    `json:"quantity"  validate:"required,gte=1"`
	WorkerID string `json:"worker_id" validate:"required,hex32"`
}

func (h *ItemHandler) Checkout(c echo.Context) error {
	var req checkoutReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	res, err := h.checkout.Checkout(c.Request().Context(), checkoutUC.CheckoutInput{
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
		WorkerID: req.WorkerID,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}
