// internal/interfaces/http/handlers/history.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/history"
)

// HistoryHandler handles recently viewed endpoints
type HistoryHandler struct {
	history *history.Service
	catalog *catalog.Store
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(h *history.Service, store *catalog.Store) *HistoryHandler {
	return &HistoryHandler{
		history: h,
		catalog: store,
	}
}

// GetRecentlyViewed handles GET /recently-viewed
func (h *HistoryHandler) GetRecentlyViewed(c *gin.Context) {
	entries, err := h.history.List(c.Request.Context(), resolveOwner(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve viewing history",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Recently viewed retrieved successfully",
		"data":    entries,
	})
}

// RecordViewRequest identifies the viewed product.
type RecordViewRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// RecordView handles POST /recently-viewed
func (h *HistoryHandler) RecordView(c *gin.Context) {
	var req RecordViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.catalog.Get(req.ProductID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if err := h.history.Record(c.Request.Context(), resolveOwner(c), product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to record view",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "View recorded",
	})
}
