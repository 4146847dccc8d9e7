package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/leconstantin/storefront-api/controllers/order"
	"github.com/leconstantin/storefront-api/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires a valid
// token plus membership in the ADMIN_EMAILS allow-list.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		adminGroup.GET("/orders", orderControllers.GetAllOrdersHandler(db))
	}
}
