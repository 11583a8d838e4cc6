package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shopor/catalog-api/internal/api/metrics"
	"github.com/shopor/catalog-api/internal/core/domain"
	"github.com/shopor/catalog-api/internal/core/ports"
)

// ItemHandler handles the item CRUD endpoints.
type ItemHandler struct {
	items ports.ItemService
}

func NewItemHandler(items ports.ItemService) *ItemHandler {
	return &ItemHandler{items: items}
}

// Create handles POST /items.
//
// @Summary      Create an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      itemRequest  true  "Item fields"
// @Success      201   {object}  itemResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /items [post]
func (h *ItemHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	item, err := h.items.Create(c.Request().Context(), p, req.toInput())
	if err != nil {
		return err
	}

	metrics.ItemWritesTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, itemResponse{Message: "Item created", Item: item})
}

// List handles GET /items.
//
// @Summary      List all items
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Item
// @Failure      401  {object}  map[string]string
// @Router       /items [get]
func (h *ItemHandler) List(c echo.Context) error {
	items, err := h.items.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Update handles PUT /items/:id.
//
// @Summary      Update an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int          true  "Item id"
// @Param        body  body      itemRequest  true  "Replacement fields"
// @Success      200   {object}  itemResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /items/{id} [put]
func (h *ItemHandler) Update(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	id, err := itemID(c)
	if err != nil {
		return err
	}

	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	item, err := h.items.Update(c.Request().Context(), p, id, req.toInput())
	if err != nil {
		return err
	}

	metrics.ItemWritesTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, itemResponse{Message: "Item updated", Item: item})
}

// Delete handles DELETE /items/:id.
//
// @Summary      Delete an item
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Item id"
// @Success      200  {object}  itemResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /items/{id} [delete]
func (h *ItemHandler) Delete(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	id, err := itemID(c)
	if err != nil {
		return err
	}

	if err := h.items.Delete(c.Request().Context(), p, id); err != nil {
		return err
	}

	metrics.ItemWritesTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, itemResponse{Message: "Item deleted"})
}

// itemID parses the :id route parameter. The id is compared by numeric value,
// so anything that does not parse as an integer can match no stored item and
// is reported as not found.
func itemID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, domain.ErrItemNotFound
	}
	return id, nil
}
