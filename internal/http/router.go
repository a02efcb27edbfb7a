package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/domain"
	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/internal/http/handlers"
	"github.com/Pratham3232/Market-Place-Mobile-Application-Backend/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, guard *middleware.Guard) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/signup-login", ah.SignupLogin)
	auth.POST("/signup-login-verify", ah.SignupLoginVerify)
	auth.POST("/refresh", ah.Refresh)

	authed := r.Group("/auth").Use(guard.Authenticate())
	authed.GET("/me", ah.Me)
	authed.POST("/logout", ah.Logout)

	adm := r.Group("/").Use(guard.Authenticate(), guard.RequireRoles(domain.RoleAdmin))
	adm.POST("/auth/remove-block", ah.RemoveBlock)
	adm.POST("/admin/users/:id/roles", ah.GrantRole)

	return r
}
