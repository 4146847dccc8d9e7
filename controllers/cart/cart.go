package cartControllers

import (
	"errors"
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
	ErrInsufficientStock = errors.New("not enough stock available")
	ErrItemNotFound      = errors.New("cart item not found")
)

type AddItemInput struct {
	ProductID       uint   `json:"product_id" binding:"required"`
	Quantity        int    `json:"quantity" binding:"required,min=1"`
	SelectedVariant string `json:"selected_variant"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}

// AddItem puts qty units of a product into the user's cart. Re-adding a
// product increments the existing line instead of duplicating it.
func AddItem(db *gorm.DB, userID string, productID uint, qty int, variant string) (*models.CartItem, error) {
	var line models.CartItem
	err := db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		if !product.CanFulfill(qty) {
			return ErrInsufficientStock
		}

		err := tx.Where("user_id = ? AND product_id = ?", userID, productID).First(&line).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			line = models.CartItem{
				UserID:          userID,
				ProductID:       productID,
				Quantity:        qty,
				SelectedVariant: variant,
				AddedAt:         time.Now(),
			}
			return tx.Create(&line).Error
		}

		line.Quantity += qty
		line.AddedAt = time.Now()
		return tx.Save(&line).Error
	})
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// SetQuantity replaces a line's quantity. A quantity of zero or less deletes
// the line; the caller is told whether the item was removed.
func SetQuantity(db *gorm.DB, userID string, itemID uint, qty int) (removed bool, err error) {
	err = db.Transaction(func(tx *gorm.DB) error {
		var line models.CartItem
		if err := tx.First(&line, itemID).Error; err != nil || line.UserID != userID {
			return ErrItemNotFound
		}

		if qty <= 0 {
			removed = true
			return tx.Delete(&line).Error
		}

		line.Quantity = qty
		return tx.Save(&line).Error
	})
	return removed, err
}

// RemoveItem deletes a line the user owns.
func RemoveItem(db *gorm.DB, userID string, itemID uint) error {
	result := db.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// Clear deletes every line belonging to the user.
func Clear(db *gorm.DB, userID string) error {
	return db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}

// List returns the user's cart lines joined with their product snapshot.
// Lines whose product no longer exists are silently dropped.
func List(db *gorm.DB, userID string) ([]models.CartLine, error) {
	var items []models.CartItem
	if err := db.Where("user_id = ?", userID).Order("added_at").Find(&items).Error; err != nil {
		return nil, err
	}

	lines := make([]models.CartLine, 0, len(items))
	for _, item := range items {
		var product models.Product
		if err := db.First(&product, item.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		lines = append(lines, models.CartLine{CartItem: item, Product: product})
	}
	return lines, nil
}

// -------- Handlers --------

// POST /user/cart
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Must be logged in to add to cart"})
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		line, err := AddItem(db, userID, input.ProductID, input.Quantity, input.SelectedVariant)
		if err != nil {
			switch {
			case errors.Is(err, ErrProductNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			case errors.Is(err, ErrInsufficientStock):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Not enough stock available"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Added to cart successfully", "item": line})
	}
}

// GET /user/cart
func GetMyCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		lines, err := List(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, lines)
	}
}

// PUT /user/cart/:item_id
func UpdateCartQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		removed, err := SetQuantity(db, userID, uint(itemID), input.Quantity)
		if err != nil {
			if errors.Is(err, ErrItemNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		if removed {
			c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart updated successfully"})
	}
}

// DELETE /user/cart/:item_id
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
			return
		}

		if err := RemoveItem(db, userID, uint(itemID)); err != nil {
			if errors.Is(err, ErrItemNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
	}
}

// DELETE /user/cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if err := Clear(db, userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared successfully"})
	}
}
