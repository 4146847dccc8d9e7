package activityControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/leconstantin/storefront-api/middleware"
	"github.com/leconstantin/storefront-api/models"
	"gorm.io/gorm"
)

const defaultLimit = 50

// GET /stores/:id/activities?limit=N (owner only, newest first)
func GetStoreActivities(db *gorm.DB) gin.HandlerFunc {
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

		limit := defaultLimit
		if raw := c.Query("limit"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 {
				limit = n
			}
		}

		var activities []models.Activity
		if err := db.
			Where("store_id = ?", storeID).
			Order("created_at DESC").
			Limit(limit).
			Find(&activities).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activities"})
			return
		}
		c.JSON(http.StatusOK, activities)
	}
}
