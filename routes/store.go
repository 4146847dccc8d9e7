package routes

import (
	"github.com/gin-gonic/gin"
	activityControllers "github.com/leconstantin/storefront-api/controllers/activity"
	orderControllers "github.com/leconstantin/storefront-api/controllers/order"
	productControllers "github.com/leconstantin/storefront-api/controllers/product"
	storeControllers "github.com/leconstantin/storefront-api/controllers/store"
	"github.com/leconstantin/storefront-api/middleware"
	"gorm.io/gorm"
)

// SetupStoreRoutes registers the store-owner endpoints. Ownership of the
// individual store is checked inside the handlers.
func SetupStoreRoutes(r *gin.Engine, db *gorm.DB) {
	stores := r.Group("/stores")
	stores.Use(middleware.ValidateToken)
	{
		stores.POST("", storeControllers.CreateStore(db))
		stores.GET("/mine", storeControllers.GetMyStore(db))
		stores.PUT("/:id", storeControllers.UpdateStore(db))
		stores.GET("/:id/stats", storeControllers.GetDashboardStats(db))
		stores.GET("/:id/orders", orderControllers.GetStoreOrdersHandler(db))
		stores.GET("/:id/orders/export", orderControllers.ExportStoreOrdersToExcel(db))
		stores.GET("/:id/activities", activityControllers.GetStoreActivities(db))
		stores.POST("/:id/products", productControllers.CreateProductHandler(db))
		stores.POST("/:id/catalog/import", productControllers.ImportCatalogHandler(db))
	}

	// Store-scoped mutations outside the /stores prefix
	protected := r.Group("/")
	protected.Use(middleware.ValidateToken)
	{
		protected.PUT("/orders/:id/status", orderControllers.UpdateOrderStatusHandler(db))
		protected.PUT("/products/:id", productControllers.UpdateProductHandler(db))
	}
}
