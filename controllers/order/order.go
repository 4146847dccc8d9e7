package orderControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/leconstantin/storefront-api/middleware"
	"github.com/leconstantin/storefront-api/models"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("not enough stock")
	ErrCartEmpty         = errors.New("cart is empty")
	ErrOrderNotFound     = errors.New("order not found")
	ErrNotAuthorized     = errors.New("not authorized")
	ErrOrderNotPending   = errors.New("order is no longer pending")
	ErrInvalidStatus     = errors.New("invalid order status")
)

// ContactInfo is the customer contact snapshot stored on every order.
type ContactInfo struct {
	Name  string `json:"customer_name" binding:"required"`
	Email string `json:"customer_email" binding:"required,email"`
	Phone string `json:"customer_phone"`
}

type CreateOrderInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
	ContactInfo
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// CreateOrder places a direct order for one product. customerID is nil for
// guest checkout, which this path allows.
func CreateOrder(db *gorm.DB, customerID *string, productID uint, qty int, contact ContactInfo) (uint, error) {
	var orderID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		id, err := placeOrder(tx, customerID, productID, qty, contact)
		if err != nil {
			return err
		}
		orderID = id
		return nil
	})
	return orderID, err
}

// CreateOrderFromCart turns every cart line into an order in one
// transaction. If any line fails stock validation the whole checkout rolls
// back: no orders, no decrements, cart untouched.
func CreateOrderFromCart(db *gorm.DB, userID string, contact ContactInfo) ([]uint, error) {
	var orderIDs []uint
	err := db.Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Where("user_id = ?", userID).Order("id").Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrCartEmpty
		}

		for _, item := range items {
			id, err := placeOrder(tx, &userID, item.ProductID, item.Quantity, contact)
			if errors.Is(err, ErrProductNotFound) {
				// Dangling line, the product was removed. Skip it.
				continue
			}
			if err != nil {
				return err
			}
			orderIDs = append(orderIDs, id)

			if err := tx.Delete(&models.CartItem{}, item.ID).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return orderIDs, nil
}

// placeOrder validates stock, inserts a pending order, decrements tracked
// stock, and appends the order_placed activity. Must run inside a
// transaction: the decrement re-checks remaining stock in its WHERE clause
// so concurrent orders cannot drive stock negative.
func placeOrder(tx *gorm.DB, customerID *string, productID uint, qty int, contact ContactInfo) (uint, error) {
	var product models.Product
	if err := tx.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrProductNotFound
		}
		return 0, err
	}

	if !product.CanFulfill(qty) {
		return 0, fmt.Errorf("%w for %s", ErrInsufficientStock, product.Name)
	}

	order := models.Order{
		ProductID:     product.ID,
		StoreID:       product.StoreID,
		CustomerID:    customerID,
		CustomerName:  contact.Name,
		CustomerEmail: contact.Email,
		CustomerPhone: contact.Phone,
		Quantity:      qty,
		TotalAmount:   product.Price * float64(qty),
		Status:        models.OrderStatusPending,
		CreatedAt:     time.Now(),
	}
	if err := tx.Create(&order).Error; err != nil {
		return 0, err
	}

	if product.StockQuantity != nil {
		result := tx.Model(&models.Product{}).
			Where("id = ? AND stock_quantity >= ?", product.ID, qty).
			Updates(map[string]interface{}{
				"stock_quantity": gorm.Expr("stock_quantity - ?", qty),
				"in_stock":       gorm.Expr("stock_quantity - ? > 0", qty),
			})
		if result.Error != nil {
			return 0, result.Error
		}
		if result.RowsAffected == 0 {
			return 0, fmt.Errorf("%w for %s", ErrInsufficientStock, product.Name)
		}
	}

	activity := models.Activity{
		StoreID:     product.StoreID,
		Type:        models.ActivityOrderPlaced,
		Description: fmt.Sprintf("New order placed for %s", product.Name),
		OrderID:     &order.ID,
		Amount:      &order.TotalAmount,
		CreatedAt:   time.Now(),
	}
	if err := tx.Create(&activity).Error; err != nil {
		return 0, err
	}

	return order.ID, nil
}

// SetStatus transitions a pending order to confirmed or cancelled. Only the
// owner of the order's store may do this. Cancelling does not restore
// decremented stock.
func SetStatus(db *gorm.DB, userID string, orderID uint, status models.OrderStatus) error {
	if status != models.OrderStatusConfirmed && status != models.OrderStatusCancelled {
		return ErrInvalidStatus
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		var store models.Store
		if err := tx.First(&store, order.StoreID).Error; err != nil || store.OwnerID != userID {
			return ErrNotAuthorized
		}

		if order.Status != models.OrderStatusPending {
			return ErrOrderNotPending
		}

		if err := tx.Model(&order).Update("status", status).Error; err != nil {
			return err
		}

		activityType := models.ActivityOrderConfirmed
		if status == models.OrderStatusCancelled {
			activityType = models.ActivityOrderCancelled
		}
		activity := models.Activity{
			StoreID:     order.StoreID,
			Type:        activityType,
			Description: fmt.Sprintf("Order %s", status),
			OrderID:     &order.ID,
			Amount:      &order.TotalAmount,
			CreatedAt:   time.Now(),
		}
		return tx.Create(&activity).Error
	})
}

// -------- Handlers --------

// POST /orders (direct purchase, guest allowed)
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var customerID *string
		if id, ok := middleware.UserID(c); ok {
			customerID = &id
		}

		orderID, err := CreateOrder(db, customerID, input.ProductID, input.Quantity, input.ContactInfo)
		if err != nil {
			respondOrderError(c, err)
			return
		}

		broadcastOrderPlaced(db, orderID)
		c.JSON(http.StatusCreated, gin.H{"order_id": orderID})
	}
}

// POST /user/orders/checkout
func CheckoutFromCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Must be logged in to checkout from cart"})
			return
		}

		var contact ContactInfo
		if err := c.ShouldBindJSON(&contact); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		orderIDs, err := CreateOrderFromCart(db, userID, contact)
		if err != nil {
			respondOrderError(c, err)
			return
		}

		for _, id := range orderIDs {
			broadcastOrderPlaced(db, id)
		}
		c.JSON(http.StatusCreated, gin.H{"order_ids": orderIDs})
	}
}

// GET /stores/:id/orders (owner only)
func GetStoreOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		storeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid store ID"})
			return
		}

		var store models.Store
		if err := db.First(&store, storeID).Error; err != nil || store.OwnerID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
			return
		}

		var orders []models.Order
		if err := db.
			Where("store_id = ?", storeID).
			Preload("Product").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /user/orders
func GetMyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.
			Where("customer_id = ?", userID).
			Preload("Product").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /admin/orders (admin allow-list only, guarded in routes)
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Product").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /orders/:id/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		var input UpdateStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := SetStatus(db, userID, uint(orderID), models.OrderStatus(input.Status)); err != nil {
			respondOrderError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

func respondOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	case errors.Is(err, ErrInsufficientStock):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrCartEmpty):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
	case errors.Is(err, ErrOrderNotPending):
		c.JSON(http.StatusConflict, gin.H{"error": "Order is no longer pending"})
	case errors.Is(err, ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be confirmed or cancelled"})
	case errors.Is(err, ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update this order"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}
