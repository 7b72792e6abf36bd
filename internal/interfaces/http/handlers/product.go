// internal/interfaces/http/handlers/product.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// ProductHandler handles catalog endpoints, public and admin.
type ProductHandler struct {
	catalog *catalog.Store
}

// NewProductHandler creates a new product handler
func NewProductHandler(store *catalog.Store) *ProductHandler {
	return &ProductHandler{catalog: store}
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		if !catalog.ValidCategory(category) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown category",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Products retrieved successfully",
			"data":    h.catalog.ListByCategory(category),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    h.catalog.List(),
	})
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	product, err := h.catalog.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// SearchProducts handles GET /products/search. Facets, free text and
// sort arrive as query parameters.
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	var sel catalog.Selection
	if err := c.ShouldBindQuery(&sel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid search parameters",
			"details": err.Error(),
		})
		return
	}

	results := h.catalog.Search(sel)
	c.JSON(http.StatusOK, gin.H{
		"message": "Search completed successfully",
		"data":    results,
		"count":   len(results),
	})
}

// ListCategories handles GET /products/categories
func (h *ProductHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Categories retrieved successfully",
		"data":    catalog.Categories(),
	})
}

// NotifyMeRequest carries a back-in-stock alert subscription.
type NotifyMeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// NotifyMe handles POST /products/:id/notify-me
func (h *ProductHandler) NotifyMe(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	var req NotifyMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	err := h.catalog.RequestStockAlert(c.Request.Context(), id, req.Email)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"message": "We'll let you know when it's back in stock",
		})
	case errors.Is(err, catalog.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, catalog.ErrAlreadyInStock):
		c.JSON(http.StatusConflict, gin.H{"error": "Product is already in stock"})
	case errors.Is(err, catalog.ErrDuplicateAlert):
		c.JSON(http.StatusConflict, gin.H{"error": "You're already on the list for this product"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// CreateProduct handles POST /admin/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var p catalog.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Brand) == "" || p.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Name, brand and a positive price are required",
		})
		return
	}

	created, err := h.catalog.Add(c.Request.Context(), p)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"data":    created,
	})
}

// UpdateProduct handles PUT /admin/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	var patch catalog.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	updated, err := h.catalog.Update(c.Request.Context(), id, patch)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{
			"message": "Product updated successfully",
			"data":    updated,
		})
	case errors.Is(err, catalog.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// DeleteProduct handles DELETE /admin/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	if err := h.catalog.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
	})
}

// StockAlerts handles GET /admin/products/:id/stock-alerts
func (h *ProductHandler) StockAlerts(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Stock alerts retrieved successfully",
		"data":    h.catalog.StockAlerts(id),
	})
}

// parseProductID parses the :id path parameter, writing the error
// response itself on failure.
func parseProductID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return 0, false
	}
	return uint(id), true
}
