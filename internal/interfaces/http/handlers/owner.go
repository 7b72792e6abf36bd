// internal/interfaces/http/handlers/owner.go
package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

const sessionCookieName = "session_id"

// resolveOwner returns the storage owner key for the request:
// "user:<id>" for authenticated users, "guest:<session>" otherwise. A
// guest session cookie is minted on first contact.
func resolveOwner(c *gin.Context) string {
	if userID, ok := middleware.GetUserIDFromContext(c); ok {
		return fmt.Sprintf("user:%d", userID)
	}
	return "guest:" + getOrCreateSessionID(c)
}

// guestOwner returns the guest owner key for the request's session
// cookie without minting a new one. Empty when no cookie is present.
func guestOwner(c *gin.Context) string {
	sessionID, err := c.Cookie(sessionCookieName)
	if err != nil || sessionID == "" {
		return ""
	}
	return "guest:" + sessionID
}

// getOrCreateSessionID reads the guest session cookie, creating it when
// absent.
func getOrCreateSessionID(c *gin.Context) string {
	sessionID, err := c.Cookie(sessionCookieName)
	if err != nil || sessionID == "" {
		sessionID = uuid.New().String()
		// 30 days, HTTP-only
		c.SetCookie(sessionCookieName, sessionID, 30*24*3600, "/", "", false, true)
	}
	return sessionID
}
