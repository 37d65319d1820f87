package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/photographyhub/course-platform/internal/core/ports"
)

// ProductHandler handles HTTP requests for the shop catalog.
type ProductHandler struct {
	service ports.ProductService
	audit   ports.AuditDispatcher
}

func NewProductHandler(service ports.ProductService, audit ports.AuditDispatcher) *ProductHandler {
	return &ProductHandler{service: service, audit: audit}
}

type createProductRequest struct {
	ProductName string  `json:"productName" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Stock       *int    `json:"stock"       validate:"required,gte=0"`
	Category    string  `json:"category"`
}

// List handles GET /shop/products — public, no auth.
//
// @Summary      List all products
// @Tags         shop
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /shop/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Create handles POST /shop/products — admin only.
//
// @Summary      Add a product
// @Tags         shop
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /shop/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	accountID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	product, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		Name:        req.ProductName,
		Description: req.Description,
		Price:       req.Price,
		Stock:       *req.Stock,
		Category:    req.Category,
	})
	if err != nil {
		return err
	}

	h.emit(accountID, role, "product_create", product.ID)
	return c.JSON(http.StatusCreated, product)
}

// Delete handles DELETE /shop/products/:id — admin only.
//
// @Summary      Delete a product
// @Tags         shop
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  errorResponse
// @Router       /shop/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	accountID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	h.emit(accountID, role, "product_delete", id)
	return c.JSON(http.StatusOK, map[string]string{"message": "product deleted"})
}

func (h *ProductHandler) emit(actorID, role, action, productID string) {
	if h.audit == nil {
		return
	}
	h.audit.Enqueue(ports.AuditEventInput{
		ActorID:  actorID,
		Role:     role,
		Action:   action,
		Entity:   "product",
		EntityID: productID,
		At:       time.Now().UTC(),
	})
}
