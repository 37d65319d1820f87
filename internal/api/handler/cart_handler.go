package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/photographyhub/course-platform/internal/api/metrics"
	"github.com/photographyhub/course-platform/internal/core/ports"
)

// CartHandler handles HTTP requests against the caller's own cart. The
// owning account always comes from the verified credential, never from the
// request body.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

type addCartItemRequest struct {
	ProductID string `json:"productID" validate:"required"`
	Quantity  int    `json:"quantity"  validate:"required,gt=0"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// List handles GET /cart.
//
// @Summary      List the caller's cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.CartItem
// @Failure      401  {object}  errorResponse
// @Router       /cart [get]
func (h *CartHandler) List(c echo.Context) error {
	accountID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Add handles POST /cart.
//
// @Summary      Add a product to the caller's cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addCartItemRequest  true  "Product and quantity"
// @Success      201   {object}  domain.CartItem
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /cart [post]
func (h *CartHandler) Add(c echo.Context) error {
	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	accountID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	item, err := h.service.Add(c.Request().Context(), accountID, req.ProductID, req.Quantity)
	if err != nil {
		return err
	}

	metrics.CartMutationsTotal.WithLabelValues("add").Inc()
	return c.JSON(http.StatusCreated, item)
}

// Update handles PUT /cart/:cartItemID.
//
// @Summary      Change the quantity on a cart item
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        cartItemID  path      string                 true  "Cart item ID"
// @Param        body        body      updateCartItemRequest  true  "New quantity"
// @Success      200         {object}  domain.CartItem
// @Failure      400         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /cart/{cartItemID} [put]
func (h *CartHandler) Update(c echo.Context) error {
	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	accountID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	item, err := h.service.UpdateQuantity(c.Request().Context(), accountID, c.Param("cartItemID"), req.Quantity)
	if err != nil {
		return err
	}

	metrics.CartMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, item)
}

// Remove handles DELETE /cart/:cartItemID.
//
// @Summary      Remove a cart item
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        cartItemID  path      string  true  "Cart item ID"
// @Success      200         {object}  map[string]string
// @Failure      404         {object}  errorResponse
// @Router       /cart/{cartItemID} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	accountID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.Remove(c.Request().Context(), accountID, c.Param("cartItemID")); err != nil {
		return err
	}

	metrics.CartMutationsTotal.WithLabelValues("remove").Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "cart item removed"})
}
