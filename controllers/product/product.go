package productControllers

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
	ErrStoreNotFound = errors.New("store not found")
	ErrNotAuthorized = errors.New("not authorized")
	ErrNegativePrice = errors.New("price cannot be negative")
	ErrNegativeStock = errors.New("stock quantity cannot be negative")
)

type CreateProductInput struct {
	Name          string  `json:"name" binding:"required"`
	Price         float64 `json:"price" binding:"min=0"`
	ImageURL      string  `json:"image_url"`
	Collection    string  `json:"collection"`
	StockQuantity *int    `json:"stock_quantity"`
}

type UpdateProductInput struct {
	Name          *string  `json:"name"`
	Price         *float64 `json:"price"`
	ImageURL      *string  `json:"image_url"`
	Collection    *string  `json:"collection"`
	StockQuantity *int     `json:"stock_quantity"`
}

// CreateProduct adds a product to the caller's store and logs the
// product_added activity. A missing stock quantity means tracked zero
// stock, not untracked.
func CreateProduct(db *gorm.DB, userID string, storeID uint, input CreateProductInput) (uint, error) {
	if input.Price < 0 {
		return 0, ErrNegativePrice
	}
	if input.StockQuantity != nil && *input.StockQuantity < 0 {
		return 0, ErrNegativeStock
	}

	var productID uint
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

		stock := 0
		if input.StockQuantity != nil {
			stock = *input.StockQuantity
		}

		product := models.Product{
			StoreID:       storeID,
			Name:          input.Name,
			Price:         input.Price,
			ImageURL:      input.ImageURL,
			Collection:    input.Collection,
			StockQuantity: &stock,
			CreatedAt:     time.Now(),
		}
		product.RecomputeInStock()

		if err := tx.Create(&product).Error; err != nil {
			return err
		}
		productID = product.ID

		activity := models.Activity{
			StoreID:     storeID,
			Type:        models.ActivityProductAdded,
			Description: fmt.Sprintf("Product %q was added", input.Name),
			ProductID:   &product.ID,
			CreatedAt:   time.Now(),
		}
		return tx.Create(&activity).Error
	})
	return productID, err
}

// UpdateProduct partially updates a product owned by the caller's store.
func UpdateProduct(db *gorm.DB, userID string, productID uint, input UpdateProductInput) error {
	if input.Price != nil && *input.Price < 0 {
		return ErrNegativePrice
	}
	if input.StockQuantity != nil && *input.StockQuantity < 0 {
		return ErrNegativeStock
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			return err
		}

		var store models.Store
		if err := tx.First(&store, product.StoreID).Error; err != nil || store.OwnerID != userID {
			return ErrNotAuthorized
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.ImageURL != nil {
			product.ImageURL = *input.ImageURL
		}
		if input.Collection != nil {
			product.Collection = *input.Collection
		}
		if input.StockQuantity != nil {
			product.StockQuantity = input.StockQuantity
		}
		product.RecomputeInStock()

		return tx.Save(&product).Error
	})
}

// -------- Handlers --------

// GET /products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GET /stores/:id/products
func GetStoreProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		storeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid store ID"})
			return
		}

		var products []models.Product
		if err := db.Where("store_id = ?", storeID).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// POST /stores/:id/products
func CreateProductHandler(db *gorm.DB) gin.HandlerFunc {
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

		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		productID, err := CreateProduct(db, userID, uint(storeID), input)
		if err != nil {
			respondProductError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"product_id": productID})
	}
}

// PUT /products/:id
func UpdateProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := UpdateProduct(db, userID, uint(productID), input); err != nil {
			respondProductError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
	}
}

func respondProductError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrStoreNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Store not found"})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, ErrNegativePrice), errors.Is(err, ErrNegativeStock):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}
