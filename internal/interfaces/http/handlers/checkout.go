// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/pkg/pdf"
)

// CheckoutHandler handles checkout and order endpoints
type CheckoutHandler struct {
	checkout *checkout.Service
	orders   *order.Service
	pdf      *pdf.Service
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(co *checkout.Service, orders *order.Service, pdfService *pdf.Service) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: co,
		orders:   orders,
		pdf:      pdfService,
	}
}

// Checkout handles POST /checkout
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req checkout.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	placed, err := h.checkout.Process(c.Request.Context(), resolveOwner(c), &req)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    placed,
	})
}

// ListOrders handles GET /orders
func (h *CheckoutHandler) ListOrders(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context(), resolveOwner(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve orders",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data":    orders,
		"count":   len(orders),
	})
}

// GetOrder handles GET /orders/:number
func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	o, err := h.orders.Get(c.Request.Context(), resolveOwner(c), c.Param("number"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    o,
	})
}

// DownloadReceipt handles GET /orders/:number/receipt
func (h *CheckoutHandler) DownloadReceipt(c *gin.Context) {
	o, err := h.orders.Get(c.Request.Context(), resolveOwner(c), c.Param("number"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	buf, err := h.pdf.GenerateReceipt(o)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate receipt",
		})
		return
	}

	filename := fmt.Sprintf("receipt-%s.pdf", o.OrderNumber)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
