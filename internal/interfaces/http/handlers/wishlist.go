// internal/interfaces/http/handlers/wishlist.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/wishlist"
)

// WishlistHandler handles wishlist endpoints
type WishlistHandler struct {
	wishlists *wishlist.Service
	catalog   *catalog.Store
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(wishlists *wishlist.Service, store *catalog.Store) *WishlistHandler {
	return &WishlistHandler{
		wishlists: wishlists,
		catalog:   store,
	}
}

// GetWishlist handles GET /wishlist
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	entries, err := h.wishlists.List(c.Request.Context(), resolveOwner(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve wishlist",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist retrieved successfully",
		"data":    entries,
		"count":   len(entries),
	})
}

// ToggleRequest identifies the product to toggle.
type ToggleRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// ToggleWishlist handles POST /wishlist/toggle
func (h *WishlistHandler) ToggleWishlist(c *gin.Context) {
	var req ToggleRequest
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

	inWishlist, err := h.wishlists.Toggle(c.Request.Context(), resolveOwner(c), product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update wishlist",
		})
		return
	}

	message := "Removed from wishlist"
	if inWishlist {
		message = "Added to wishlist"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data": gin.H{
			"product_id":  req.ProductID,
			"in_wishlist": inWishlist,
		},
	})
}

// RemoveFromWishlist handles DELETE /wishlist/:id
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		return
	}

	err := h.wishlists.Remove(c.Request.Context(), resolveOwner(c), id)
	if err != nil {
		if errors.Is(err, wishlist.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in wishlist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update wishlist",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from wishlist",
	})
}

// ClearWishlist handles DELETE /wishlist
func (h *WishlistHandler) ClearWishlist(c *gin.Context) {
	if err := h.wishlists.Clear(c.Request.Context(), resolveOwner(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear wishlist",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Wishlist cleared successfully",
	})
}
