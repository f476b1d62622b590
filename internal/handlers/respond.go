package handlers

import (
	"net/http"

	"taskify/backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

// Every response carries the {success, ...} envelope; failures add a
// message. Nothing else leaks past the handler boundary.

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

// currentUserID reads the caller identity resolved by the auth
// middleware; a missing identity means the middleware was bypassed and
// the request must not proceed.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "User not authenticated")
		return uuid.Nil, false
	}
	return userID, true
}
