package handlers

import (
	"net/http"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/dto"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type productHandler struct {
	productService portssvc.ProductSvcFacade
}

func newProductHandler(ps portssvc.ProductSvcFacade) *productHandler {
	return &productHandler{productService: ps}
}

func registerProductRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade) {
	h := newProductHandler(productService)
	manager := middleware.RequireTier(domain.TierManager)

	products := rg.Group("/products")
	{
		products.POST("", manager, h.registerProduct)
		products.GET("", h.listProducts)
		products.GET("/:id", h.getProduct)
		products.DELETE("/:id", manager, h.deleteProduct)
	}
}

// registerProduct godoc
// @Summary Register a product for a client
// @Description Stores the product and e-mails a registration confirmation to the client.
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} domain.Product
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Product code already used by this client"
// @Security BearerAuth
// @Router /products [post]
func (h *productHandler) registerProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.RegisterProduct(c.Request.Context(), req)
	if err != nil {
		handleServiceError(c, err, "Product not found", "Failed to register product")
		return
	}
	c.JSON(http.StatusCreated, product)
}

// listProducts godoc
// @Summary List products
// @Tags products
// @Produce json
// @Param clientId query int false "Client ID"
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {array} domain.Product
// @Security BearerAuth
// @Router /products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	var params dto.ListProductsParams
	if !bindQuery(c, &params) {
		return
	}

	products, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, err, "Product not found", "Failed to list products")
		return
	}
	c.JSON(http.StatusOK, products)
}

// getProduct godoc
// @Summary Get a product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{id} [get]
func (h *productHandler) getProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.GetProductByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Product not found", "Failed to retrieve product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// deleteProduct godoc
// @Summary Delete a product
// @Tags products
// @Param id path int true "Product ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /products/{id} [delete]
func (h *productHandler) deleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		handleServiceError(c, err, "Product not found", "Failed to delete product")
		return
	}
	c.Status(http.StatusNoContent)
}
