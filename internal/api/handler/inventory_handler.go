package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
	"github.com/sweetshop/inventory-system/internal/metrics"
)

// InventoryHandler handles HTTP requests for stock mutations.
type InventoryHandler struct {
	service ports.InventoryService
}

func NewInventoryHandler(service ports.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// Purchase handles POST /api/sweets/:id/purchase. Each call buys exactly
// one unit.
//
// @Summary      Purchase one unit of a sweet
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Sweet id"
// @Success      200  {object}  sweetResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /api/sweets/{id}/purchase [post]
func (h *InventoryHandler) Purchase(c echo.Context) error {
	sweet, err := h.service.Purchase(c.Request().Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSweetNotFound):
			metrics.PurchasesTotal.WithLabelValues("not_found").Inc()
			return c.JSON(http.StatusNotFound, errorResponse{Error: "sweet not found"})
		case errors.Is(err, domain.ErrOutOfStock):
			metrics.PurchasesTotal.WithLabelValues("out_of_stock").Inc()
			return c.JSON(http.StatusConflict, errorResponse{Error: "out of stock"})
		}
		metrics.PurchasesTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.PurchasesTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, toSweetResponse(sweet))
}

// Restock handles POST /api/sweets/:id/restock (admin only).
//
// @Summary      Restock a sweet
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Sweet id"
// @Param        body  body      restockRequest  true  "Restock amount"
// @Success      200   {object}  sweetResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/sweets/{id}/restock [post]
func (h *InventoryHandler) Restock(c echo.Context) error {
	var req restockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	sweet, err := h.service.Restock(c.Request().Context(), c.Param("id"), req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSweetNotFound):
			metrics.RestocksTotal.WithLabelValues("not_found").Inc()
			return c.JSON(http.StatusNotFound, errorResponse{Error: "sweet not found"})
		case errors.Is(err, domain.ErrInvalidQuantity):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		metrics.RestocksTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.RestocksTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, toSweetResponse(sweet))
}
