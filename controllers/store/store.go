package storeControllers

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
	ErrStoreExists   = errors.New("you can only own one store")
	ErrStoreNotFound = errors.New("store not found")
	ErrNotAuthorized = errors.New("not authorized")
)

type CreateStoreInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type UpdateStoreInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Website     *string `json:"website"`
}

// Create opens a store for userID. The precondition read gives a friendly
// error; the unique index on owner_id closes the check-then-act race under
// concurrent requests.
func Create(db *gorm.DB, userID, name, description string) (uint, error) {
	var storeID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		var existing models.Store
		if err := tx.Where("owner_id = ?", userID).First(&existing).Error; err == nil {
			return ErrStoreExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		store := models.Store{
			OwnerID:     userID,
			Name:        name,
			Description: description,
			CreatedAt:   time.Now(),
		}
		if err := tx.Create(&store).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrStoreExists
			}
			return err
		}
		storeID = store.ID

		activity := models.Activity{
			StoreID:     store.ID,
			Type:        models.ActivityStoreUpdated,
			Description: fmt.Sprintf("Store %q was created", name),
			CreatedAt:   time.Now(),
		}
		return tx.Create(&activity).Error
	})
	return storeID, err
}

// Update patches descriptive fields. Owner only.
func Update(db *gorm.DB, userID string, storeID uint, input UpdateStoreInput) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var store models.Store
		if err := tx.First(&store, storeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStoreNotFound
			}
			return err
		}
		if store.OwnerID != userID {
			return ErrNotAuthorized
		}

		store.Name = input.Name
		store.Description = input.Description
		if input.Address != nil {
			store.Address = *input.Address
		}
		if input.Phone != nil {
			store.Phone = *input.Phone
		}
		if input.Email != nil {
			store.Email = *input.Email
		}
		if input.Website != nil {
			store.Website = *input.Website
		}
		if err := tx.Save(&store).Error; err != nil {
			return err
		}

		activity := models.Activity{
			StoreID:     store.ID,
			Type:        models.ActivityStoreUpdated,
			Description: "Store details were updated",
			CreatedAt:   time.Now(),
		}
		return tx.Create(&activity).Error
	})
}

// DashboardStats aggregates a store's order and product numbers for the
// owner dashboard.
type DashboardStats struct {
	TotalOrders       int64   `json:"total_orders"`
	TotalRevenue      float64 `json:"total_revenue"` // confirmed orders only
	TotalCustomers    int     `json:"total_customers"`
	TotalProducts     int64   `json:"total_products"`
	RecentOrdersCount int     `json:"recent_orders_count"` // last 7 days
	PendingOrders     int64   `json:"pending_orders"`
}

func Stats(db *gorm.DB, userID string, storeID uint) (*DashboardStats, error) {
	var store models.Store
	if err := db.First(&store, storeID).Error; err != nil || store.OwnerID != userID {
		return nil, ErrNotAuthorized
	}

	var orders []models.Order
	if err := db.Where("store_id = ?", storeID).Find(&orders).Error; err != nil {
		return nil, err
	}

	stats := DashboardStats{TotalOrders: int64(len(orders))}

	customers := make(map[string]bool)
	sevenDaysAgo := time.Now().AddDate(0, 0, -7)
	for _, order := range orders {
		if order.Status == models.OrderStatusConfirmed {
			stats.TotalRevenue += order.TotalAmount
		}
		if order.Status == models.OrderStatusPending {
			stats.PendingOrders++
		}
		if order.CreatedAt.After(sevenDaysAgo) {
			stats.RecentOrdersCount++
		}
		key := order.CustomerEmail
		if order.CustomerID != nil {
			key = *order.CustomerID
		}
		customers[key] = true
	}
	stats.TotalCustomers = len(customers)

	if err := db.Model(&models.Product{}).
		Where("store_id = ?", storeID).
		Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

// -------- Handlers --------

// POST /stores
func CreateStore(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Must be logged in to create a store"})
			return
		}

		var input CreateStoreInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		storeID, err := Create(db, userID, input.Name, input.Description)
		if err != nil {
			if errors.Is(err, ErrStoreExists) {
				c.JSON(http.StatusConflict, gin.H{"error": "You can only own one store"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create store"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"store_id": storeID})
	}
}

// PUT /stores/:id
func UpdateStore(db *gorm.DB) gin.HandlerFunc {
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

		var input UpdateStoreInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := Update(db, userID, uint(storeID), input); err != nil {
			switch {
			case errors.Is(err, ErrStoreNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
			case errors.Is(err, ErrNotAuthorized):
				c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update this store"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update store"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Store updated successfully"})
	}
}

// GET /stores/mine
func GetMyStore(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var store models.Store
		if err := db.Where("owner_id = ?", userID).First(&store).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, nil)
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch store"})
			return
		}
		c.JSON(http.StatusOK, store)
	}
}

// GET /stores/:id/stats
func GetDashboardStats(db *gorm.DB) gin.HandlerFunc {
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

		stats, err := Stats(db, userID, uint(storeID))
		if err != nil {
			if errors.Is(err, ErrNotAuthorized) {
				c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
