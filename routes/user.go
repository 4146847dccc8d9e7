package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/leconstantin/storefront-api/controllers/cart"
	orderControllers "github.com/leconstantin/storefront-api/controllers/order"
	userControllers "github.com/leconstantin/storefront-api/controllers/user"
	"github.com/leconstantin/storefront-api/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetMyCart(db))
			cartGroup.POST("", cartControllers.AddToCart(db))
			cartGroup.PUT("/:item_id", cartControllers.UpdateCartQuantity(db))
			cartGroup.DELETE("/:item_id", cartControllers.RemoveFromCart(db))
			cartGroup.DELETE("", cartControllers.ClearCart(db))
		}

		// ──────────────── Orders ────────────────
		userGroup.GET("/orders", orderControllers.GetMyOrdersHandler(db))
		userGroup.POST("/orders/checkout", orderControllers.CheckoutFromCartHandler(db))

		// ──────────────── Checkout Details ────────────────
		userGroup.PUT("/checkout-info", userControllers.SaveCheckoutInfoHandler(db))
		userGroup.PUT("/shipping-method", userControllers.SelectShippingMethodHandler(db))
		userGroup.PUT("/phone", userControllers.UpdatePhoneHandler(db))
	}
}
