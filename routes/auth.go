package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/leconstantin/storefront-api/auth"
	"github.com/leconstantin/storefront-api/middleware"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers the "/auth/*" endpoints. No auth middleware,
// but each is rate limited.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	authGroup.Use(middleware.RateLimiter())
	{
		authGroup.POST("/register", auth.Register(db))
		authGroup.POST("/login", auth.Login(db))
		authGroup.POST("/guest", auth.CreateGuestSession(db))
	}
}
