package productControllers

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/leconstantin/storefront-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Store{}, &models.Product{},
		&models.CartItem{}, &models.Order{}, &models.Activity{},
	))
	return db
}

func seedStore(t *testing.T, db *gorm.DB, ownerID string) models.Store {
	t.Helper()
	store := models.Store{OwnerID: ownerID, Name: "Test Store"}
	require.NoError(t, db.Create(&store).Error)
	return store
}

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }

func TestCreateProductDefaultsToTrackedZeroStock(t *testing.T) {
	db := setupTestDB(t)
	store := seedStore(t, db, "owner-1")

	productID, err := CreateProduct(db, "owner-1", store.ID, CreateProductInput{
		Name:  "Coffee Mug",
		Price: 15.99,
	})
	require.NoError(t, err)

	var product models.Product
	require.NoError(t, db.First(&product, productID).Error)
	require.NotNil(t, product.StockQuantity)
	assert.Equal(t, 0, *product.StockQuantity)
	assert.False(t, product.InStock)

	var activities []models.Activity
	require.NoError(t, db.Where("store_id = ?", store.ID).Find(&activities).Error)
	require.Len(t, activities, 1)
	assert.Equal(t, models.ActivityProductAdded, activities[0].Type)
	require.NotNil(t, activities[0].ProductID)
	assert.Equal(t, productID, *activities[0].ProductID)
}

func TestCreateProductOwnerOnly(t *testing.T) {
	db := setupTestDB(t)
	store := seedStore(t, db, "owner-1")

	_, err := CreateProduct(db, "intruder", store.ID, CreateProductInput{Name: "X", Price: 1})
	assert.ErrorIs(t, err, ErrNotAuthorized)

	_, err = CreateProduct(db, "owner-1", 404, CreateProductInput{Name: "X", Price: 1})
	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func TestUpdateProductRecomputesInStock(t *testing.T) {
	db := setupTestDB(t)
	store := seedStore(t, db, "owner-1")

	productID, err := CreateProduct(db, "owner-1", store.ID, CreateProductInput{
		Name: "Shoes", Price: 89.99, StockQuantity: intPtr(15),
	})
	require.NoError(t, err)

	require.NoError(t, UpdateProduct(db, "owner-1", productID, UpdateProductInput{
		StockQuantity: intPtr(0),
	}))

	var product models.Product
	require.NoError(t, db.First(&product, productID).Error)
	assert.False(t, product.InStock)
	assert.Equal(t, "Shoes", product.Name, "untouched fields survive a partial update")

	assert.ErrorIs(t,
		UpdateProduct(db, "intruder", productID, UpdateProductInput{}),
		ErrNotAuthorized)
}

func TestCreateProductRejectsNegativeValues(t *testing.T) {
	db := setupTestDB(t)
	store := seedStore(t, db, "owner-1")

	_, err := CreateProduct(db, "owner-1", store.ID, CreateProductInput{Name: "X", Price: -1})
	assert.ErrorIs(t, err, ErrNegativePrice)

	_, err = CreateProduct(db, "owner-1", store.ID, CreateProductInput{
		Name: "X", Price: 1, StockQuantity: intPtr(-5),
	})
	assert.ErrorIs(t, err, ErrNegativeStock)

	var count int64
	db.Model(&models.Product{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestUpdateProductRejectsNegativeValues(t *testing.T) {
	db := setupTestDB(t)
	store := seedStore(t, db, "owner-1")

	productID, err := CreateProduct(db, "owner-1", store.ID, CreateProductInput{
		Name: "Lamp", Price: 40, StockQuantity: intPtr(8),
	})
	require.NoError(t, err)

	assert.ErrorIs(t,
		UpdateProduct(db, "owner-1", productID, UpdateProductInput{Price: floatPtr(-50)}),
		ErrNegativePrice)
	assert.ErrorIs(t,
		UpdateProduct(db, "owner-1", productID, UpdateProductInput{StockQuantity: intPtr(-3)}),
		ErrNegativeStock)

	var product models.Product
	require.NoError(t, db.First(&product, productID).Error)
	assert.Equal(t, 40.0, product.Price, "rejected update leaves the price alone")
	require.NotNil(t, product.StockQuantity)
	assert.Equal(t, 8, *product.StockQuantity, "rejected update leaves the stock alone")
	assert.True(t, product.InStock)
}

func TestImportCatalogRejectsNegativeValues(t *testing.T) {
	db := setupTestDB(t)
	store := seedStore(t, db, "owner-1")

	_, err := ImportCatalog(db, "owner-1", store.ID, []CatalogItem{
		{ExternalID: "gid://shop/9", Title: "Bad Price", Price: -9.99},
	})
	assert.ErrorIs(t, err, ErrNegativePrice)

	_, err = ImportCatalog(db, "owner-1", store.ID, []CatalogItem{
		{ExternalID: "gid://shop/10", Title: "Bad Stock", Price: 9.99, StockQuantity: intPtr(-1)},
	})
	assert.ErrorIs(t, err, ErrNegativeStock)

	var count int64
	db.Model(&models.Product{}).Count(&count)
	assert.Equal(t, int64(0), count, "a rejected batch imports nothing")
}

func TestImportCatalogUpsertsByExternalID(t *testing.T) {
	db := setupTestDB(t)
	store := seedStore(t, db, "owner-1")

	items := []CatalogItem{
		{ExternalID: "gid://shop/1", Handle: "headphones", Title: "Headphones",
			Price: 199.99, AvailableForSale: true, StockQuantity: intPtr(25)},
		{ExternalID: "gid://shop/2", Handle: "mug", Title: "Coffee Mug",
			Price: 15.99, AvailableForSale: true},
	}

	result, err := ImportCatalog(db, "owner-1", store.ID, items)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 0, result.Updated)

	// Re-import with a price change: same rows, updated in place.
	items[0].Price = 149.99
	result, err = ImportCatalog(db, "owner-1", store.ID, items)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 2, result.Updated)

	var count int64
	db.Model(&models.Product{}).Count(&count)
	assert.Equal(t, int64(2), count)

	var product models.Product
	require.NoError(t, db.Where("external_id = ?", "gid://shop/1").First(&product).Error)
	assert.Equal(t, 149.99, product.Price)
	assert.True(t, product.InStock)
}

func TestImportCatalogMapsUnavailableToZeroStock(t *testing.T) {
	db := setupTestDB(t)
	store := seedStore(t, db, "owner-1")

	result, err := ImportCatalog(db, "owner-1", store.ID, []CatalogItem{
		{ExternalID: "gid://shop/3", Title: "Retired Item", Price: 5, AvailableForSale: false},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)

	var product models.Product
	require.NoError(t, db.Where("external_id = ?", "gid://shop/3").First(&product).Error)
	require.NotNil(t, product.StockQuantity)
	assert.Equal(t, 0, *product.StockQuantity)
	assert.False(t, product.InStock)
}

func TestImportCatalogOwnerOnly(t *testing.T) {
	db := setupTestDB(t)
	store := seedStore(t, db, "owner-1")

	_, err := ImportCatalog(db, "intruder", store.ID, []CatalogItem{
		{ExternalID: "x", Title: "X"},
	})
	assert.ErrorIs(t, err, ErrNotAuthorized)
}
