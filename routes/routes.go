package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth routes (rate limited)
	SetupAuthRoutes(r, db)

	// Public catalog + direct orders
	SetupPublicRoutes(r, db)

	// User routes (JWT-protected): cart, orders
	SetupUserRoutes(r, db)

	// Store-owner routes
	SetupStoreRoutes(r, db)

	// Admin routes (email allow-list)
	SetupAdminRoutes(r, db)
}
