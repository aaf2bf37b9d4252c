package http

import (
	"log"
	"net/http"

	"profitshare-backend/internal/domain/order"
	"profitshare-backend/internal/usecase/allocation"

	"github.com/labstack/echo/v4"
)

type AllocationHandler struct {
	uc     *allocation.Usecase
	orders order.Repository
}

func NewAllocationHandler(uc *allocation.Usecase, orders order.Repository) *AllocationHandler {
	return &AllocationHandler{uc: uc, orders: orders}
}

// none is the uniform "no profit assigned" payload. Allocation misses are a
// normal outcome of the order workflow, not an error, so they ride a 200.
var none = map[string]string{"result": "none"}

func (h *AllocationHandler) PreAssign(c echo.Context) error {
	orderID := c.Param("order_id")
	if !reHex32.MatchString(orderID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid order_id path param"})
	}

	ctx := c.Request().Context()
	ord, err := h.orders.GetByOrderID(ctx, orderID)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "order not found"})
	}
	if ord.HasAssignment() {
		return c.JSON(http.StatusOK, none)
	}

	s := h.uc.PreAssign(ctx, ord, ord.OwnerID, ord.Total)
	if s == nil {
		return c.JSON(http.StatusOK, none)
	}
	if err := h.orders.Save(ctx, ord); err != nil {
		log.Printf("http: persist preassign order=%s: %v", orderID, err)
		return c.JSON(http.StatusOK, none)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *AllocationHandler) Finalize(c echo.Context) error {
	orderID := c.Param("order_id")
	if !reHex32.MatchString(orderID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid order_id path param"})
	}

	ctx := c.Request().Context()
	ord, err := h.orders.GetByOrderID(ctx, orderID)
	if err != nil {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "order not found"})
	}

	s := h.uc.Finalize(ctx, ord.OrderID, ord.OwnerID)
	if s == nil {
		return c.JSON(http.StatusOK, none)
	}
	return c.JSON(http.StatusOK, s)
}
