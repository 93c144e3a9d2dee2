package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
	"github.com/sweetshop/inventory-system/internal/metrics"
)

// SweetHandler handles HTTP requests for catalog operations.
type SweetHandler struct {
	service ports.CatalogService
}

func NewSweetHandler(service ports.CatalogService) *SweetHandler {
	return &SweetHandler{service: service}
}

// List handles GET /api/sweets.
//
// @Summary      List all sweets
// @Tags         sweets
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listSweetsResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/sweets [get]
func (h *SweetHandler) List(c echo.Context) error {
	sweets, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListSweetsResponse(sweets))
}

// Get handles GET /api/sweets/:id.
//
// @Summary      Get a sweet by id
// @Tags         sweets
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Sweet id"
// @Success      200  {object}  sweetResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/sweets/{id} [get]
func (h *SweetHandler) Get(c echo.Context) error {
	sweet, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrSweetNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "sweet not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, toSweetResponse(sweet))
}

// Search handles GET /api/sweets/search. All query parameters are optional
// and AND-combined: name (case-insensitive substring), category (exact),
// min_price and max_price (inclusive bounds).
//
// @Summary      Search sweets
// @Tags         sweets
// @Produce      json
// @Security     BearerAuth
// @Param        name       query     string  false  "Name substring, case-insensitive"
// @Param        category   query     string  false  "Exact category"
// @Param        min_price  query     number  false  "Inclusive lower price bound"
// @Param        max_price  query     number  false  "Inclusive upper price bound"
// @Success      200        {object}  listSweetsResponse
// @Failure      400        {object}  errorResponse
// @Router       /api/sweets/search [get]
func (h *SweetHandler) Search(c echo.Context) error {
	input := ports.SearchSweetsInput{
		Name:     c.QueryParam("name"),
		Category: c.QueryParam("category"),
	}

	minPrice, err := parsePriceParam(c.QueryParam("min_price"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "min_price must be a number"})
	}
	maxPrice, err := parsePriceParam(c.QueryParam("max_price"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "max_price must be a number"})
	}
	input.MinPrice = minPrice
	input.MaxPrice = maxPrice

	sweets, err := h.service.Search(c.Request().Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPrice) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, toListSweetsResponse(sweets))
}

// Create handles POST /api/sweets (admin only).
//
// @Summary      Add a sweet to the catalog
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSweetRequest  true  "Sweet details"
// @Success      201   {object}  sweetResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/sweets [post]
func (h *SweetHandler) Create(c echo.Context) error {
	var req createSweetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	sweet, err := h.service.Create(c.Request().Context(), ports.CreateSweetInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Quantity: req.Quantity,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPrice) || errors.Is(err, domain.ErrInvalidQuantity) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	metrics.SweetsCreatedTotal.WithLabelValues(sweet.Category).Inc()
	return c.JSON(http.StatusCreated, toSweetResponse(sweet))
}

// Update handles PUT /api/sweets/:id (admin only). Only fields present in
// the payload are written; omitted fields keep their stored values.
//
// @Summary      Update a sweet
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Sweet id"
// @Param        body  body      updateSweetRequest  true  "Fields to update"
// @Success      200   {object}  sweetResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/sweets/{id} [put]
func (h *SweetHandler) Update(c echo.Context) error {
	var req updateSweetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	sweet, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateSweetInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Quantity: req.Quantity,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSweetNotFound):
			return c.JSON(http.StatusNotFound, errorResponse{Error: "sweet not found"})
		case errors.Is(err, domain.ErrInvalidPrice), errors.Is(err, domain.ErrInvalidQuantity):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}
	return c.JSON(http.StatusOK, toSweetResponse(sweet))
}

// Delete handles DELETE /api/sweets/:id (admin only).
//
// @Summary      Delete a sweet
// @Tags         sweets
// @Security     BearerAuth
// @Param        id  path  string  true  "Sweet id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/sweets/{id} [delete]
func (h *SweetHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrSweetNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "sweet not found"})
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// parsePriceParam parses an optional decimal query parameter; empty means
// "no constraint".
func parsePriceParam(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
