package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/leconstantin/storefront-api/controllers/order"
	productControllers "github.com/leconstantin/storefront-api/controllers/product"
	"github.com/leconstantin/storefront-api/middleware"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers the storefront-facing endpoints. Direct
// purchase resolves identity when a token is present but allows guests.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/products", productControllers.GetProducts(db))
	r.GET("/products/:id", productControllers.GetProductByID(db))
	r.GET("/stores/:id/products", productControllers.GetStoreProducts(db))

	// Direct purchase, guest checkout allowed
	r.POST("/orders", middleware.OptionalToken, orderControllers.CreateOrderHandler(db))

	// Websocket feed of newly placed orders
	r.GET("/orders/ws", orderControllers.OrderFeedHandler)
}
