package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/fintrack/internal/server/http/dto"
)

// IdentityContextKey is a gin context key for the authenticated
// username.
const IdentityContextKey = "identity"

// TokenParser verifies a presented token and returns the identity it
// asserts.
type TokenParser interface {
	ParseToken(token string) (string, error)
}

// AuthRequired ensures the caller presents a valid bearer token before
// reaching the handler. A missing token and an invalid one are reported
// with different statuses so the client can tell "log in" from "token
// rejected".
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "no token provided"})
			return
		}

		identity, err := parser.ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "invalid token"})
			return
		}

		c.Set(IdentityContextKey, identity)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
