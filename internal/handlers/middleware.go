package handlers

import (
	"errors"
	"net/http"

	"contact_management/internal/models"
	"contact_management/internal/service"

	"github.com/gin-gonic/gin"
)

// authHeader carries the raw session token.
const authHeader = "X-Token"

const userContextKey = "currentUser"

// authMiddleware resolves the inbound session token to its user and
// stores the user in the request context. A missing, empty or unknown
// token aborts with 401 and the generic message.
func (h *Handler) authMiddleware(c *gin.Context) {
	token := c.GetHeader(authHeader)

	user, err := h.services.Users.ResolveToken(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, service.ErrUnauthorized) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"errors": service.ErrUnauthorized.Error()})
			return
		}
		h.log.Errorw("auth_resolution_failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"errors": "Internal Server Error"})
		return
	}

	c.Set(userContextKey, *user)
	c.Next()
}

// currentUser returns the user resolved by authMiddleware. Only valid on
// routes registered behind it.
func currentUser(c *gin.Context) models.User {
	return c.MustGet(userContextKey).(models.User)
}
