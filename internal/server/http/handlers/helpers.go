package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/fintrack/internal/server/http/middleware"
)

// CurrentIdentity extracts the authenticated username from context.
func CurrentIdentity(c *gin.Context) string {
	val, ok := c.Get(middleware.IdentityContextKey)
	if !ok {
		return ""
	}
	identity, _ := val.(string)
	return identity
}
