// internal/interfaces/http/handlers/engagement.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/engagement"
)

// EngagementHandler handles contact and newsletter endpoints
type EngagementHandler struct {
	engagement *engagement.Service
}

// NewEngagementHandler creates a new engagement handler
func NewEngagementHandler(svc *engagement.Service) *EngagementHandler {
	return &EngagementHandler{engagement: svc}
}

// SubmitContact handles POST /contact
func (h *EngagementHandler) SubmitContact(c *gin.Context) {
	var req engagement.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	msg, err := h.engagement.SubmitContact(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Thank you for your message! We'll get back to you soon.",
		"data":    gin.H{"id": msg.ID},
	})
}

// SubscribeRequest carries a newsletter signup.
type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Subscribe handles POST /newsletter
func (h *EngagementHandler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	err := h.engagement.Subscribe(c.Request.Context(), req.Email)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{
			"message": "You're subscribed! Welcome to the list.",
		})
	case errors.Is(err, engagement.ErrAlreadySubscribed):
		c.JSON(http.StatusConflict, gin.H{"error": "This email is already subscribed"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// ListMessages handles GET /admin/contact-messages
func (h *EngagementHandler) ListMessages(c *gin.Context) {
	messages, err := h.engagement.Messages(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve contact messages",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Contact messages retrieved successfully",
		"data":    messages,
	})
}

// ListSubscribers handles GET /admin/newsletter
func (h *EngagementHandler) ListSubscribers(c *gin.Context) {
	subscribers, err := h.engagement.Subscribers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve subscribers",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Subscribers retrieved successfully",
		"data":    subscribers,
	})
}
