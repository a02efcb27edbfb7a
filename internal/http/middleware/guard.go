package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/domain"
)

// Context keys for the identity resolved by the guard.
const (
	ContextUserID      = "user_id"
	ContextRoles       = "user_roles"
	ContextAccessToken = "access_token"
)

// Guard is the per-request enforcement point embedded in every service.
// It speaks to the token and role services through an AuthClient, which
// is either an in-process adapter or the RPC client; either way a
// failure or timeout rejects the request.
type Guard struct {
	authClient domain.AuthClient
}

// NewGuard creates a guard over the given auth client.
func NewGuard(authClient domain.AuthClient) *Guard {
	return &Guard{authClient: authClient}
}

// Authenticate extracts the bearer credential, resolves it to an
// identity, and attaches that identity to the request context.
func (g *Guard) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}
		token := tokenParts[1]

		identity, err := g.authClient.ValidateToken(c.Request.Context(), token)
		if err != nil {
			// Timeout and invalid-token collapse to the same answer so
			// infrastructure state never leaks to the caller.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, identity.UserID)
		c.Set(ContextRoles, identity.Roles)
		c.Set(ContextAccessToken, token)
		c.Next()
	}
}

// RequireRoles declares the route's required roles at registration
// time. Access is granted when any declared role is satisfied; with no
// roles declared the check is skipped. Must run after Authenticate.
func (g *Guard) RequireRoles(required ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(required) == 0 {
			c.Next()
			return
		}

		v, exists := c.Get(ContextUserID)
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "User not authenticated"})
			c.Abort()
			return
		}
		userID, ok := v.(uint)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "User not authenticated"})
			c.Abort()
			return
		}

		hasAccess, err := g.authClient.ValidateRoles(c.Request.Context(), userID, required)
		if err != nil || !hasAccess {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient role permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}
