package productControllers

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

// CatalogItem is the shape of one listing from the upstream catalog feed.
// Only the mapping into local products lives here; fetching the feed is the
// caller's problem.
type CatalogItem struct {
	ExternalID       string  `json:"external_id" binding:"required"`
	Handle           string  `json:"handle"`
	Title            string  `json:"title" binding:"required"`
	Price            float64 `json:"price"`
	ImageURL         string  `json:"image_url"`
	Collection       string  `json:"collection"`
	AvailableForSale bool    `json:"available_for_sale"`
	StockQuantity    *int    `json:"stock_quantity"`
}

type ImportResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

// ImportCatalog upserts a batch of upstream listings into the store's
// products, keyed by external id so re-running an import is idempotent.
func ImportCatalog(db *gorm.DB, userID string, storeID uint, items []CatalogItem) (*ImportResult, error) {
	result := &ImportResult{}
	err := db.Transaction(func(tx *gorm.DB) error {
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

		for _, item := range items {
			if item.Price < 0 {
				return ErrNegativePrice
			}
			if item.StockQuantity != nil && *item.StockQuantity < 0 {
				return ErrNegativeStock
			}

			stock := item.StockQuantity
			if stock == nil && !item.AvailableForSale {
				// Unavailable upstream with no count: record tracked zero
				// stock so the derived flag stays a function of quantity.
				zero := 0
				stock = &zero
			}

			var product models.Product
			err := tx.Where("external_id = ?", item.ExternalID).First(&product).Error
			if err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
				externalID := item.ExternalID
				product = models.Product{
					StoreID:       storeID,
					ExternalID:    &externalID,
					Handle:        item.Handle,
					Name:          item.Title,
					Price:         item.Price,
					ImageURL:      item.ImageURL,
					Collection:    item.Collection,
					StockQuantity: stock,
					CreatedAt:     time.Now(),
				}
				product.RecomputeInStock()
				if err := tx.Create(&product).Error; err != nil {
					return err
				}
				result.Created++
				continue
			}

			product.Handle = item.Handle
			product.Name = item.Title
			product.Price = item.Price
			product.ImageURL = item.ImageURL
			product.Collection = item.Collection
			product.StockQuantity = stock
			product.RecomputeInStock()
			if err := tx.Save(&product).Error; err != nil {
				return err
			}
			result.Updated++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// POST /stores/:id/catalog/import
func ImportCatalogHandler(db *gorm.DB) gin.HandlerFunc {
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

		var items []CatalogItem
		if err := c.ShouldBindJSON(&items); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if len(items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No catalog items supplied"})
			return
		}

		result, err := ImportCatalog(db, userID, uint(storeID), items)
		if err != nil {
			respondProductError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
