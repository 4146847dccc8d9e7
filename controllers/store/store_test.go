package storeControllers

import (
	"testing"
	"time"

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

func strPtr(s string) *string { return &s }

func TestCreateStoreOnePerOwner(t *testing.T) {
	db := setupTestDB(t)

	storeID, err := Create(db, "user-1", "First Store", "desc")
	require.NoError(t, err)
	assert.NotZero(t, storeID)

	_, err = Create(db, "user-1", "Second Store", "desc")
	assert.ErrorIs(t, err, ErrStoreExists)

	// A different owner is fine.
	_, err = Create(db, "user-2", "Other Store", "desc")
	require.NoError(t, err)

	var count int64
	db.Model(&models.Store{}).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestCreateStoreLogsActivity(t *testing.T) {
	db := setupTestDB(t)

	storeID, err := Create(db, "user-1", "My Store", "desc")
	require.NoError(t, err)

	var activities []models.Activity
	require.NoError(t, db.Where("store_id = ?", storeID).Find(&activities).Error)
	require.Len(t, activities, 1)
	assert.Equal(t, models.ActivityStoreUpdated, activities[0].Type)
	assert.Contains(t, activities[0].Description, "My Store")
}

func TestUpdateStoreOwnerOnly(t *testing.T) {
	db := setupTestDB(t)

	storeID, err := Create(db, "user-1", "My Store", "desc")
	require.NoError(t, err)

	input := UpdateStoreInput{
		Name:        "Renamed",
		Description: "new desc",
		Phone:       strPtr("555-1234"),
	}
	err = Update(db, "intruder", storeID, input)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	require.NoError(t, Update(db, "user-1", storeID, input))

	var store models.Store
	require.NoError(t, db.First(&store, storeID).Error)
	assert.Equal(t, "Renamed", store.Name)
	assert.Equal(t, "555-1234", store.Phone)

	var activities int64
	db.Model(&models.Activity{}).Where("store_id = ?", storeID).Count(&activities)
	assert.Equal(t, int64(2), activities, "create + update each log once")
}

func TestUpdateMissingStore(t *testing.T) {
	db := setupTestDB(t)

	err := Update(db, "user-1", 404, UpdateStoreInput{Name: "x", Description: "y"})
	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func TestDashboardStats(t *testing.T) {
	db := setupTestDB(t)

	storeID, err := Create(db, "owner-1", "My Store", "desc")
	require.NoError(t, err)

	stock := 100
	product := models.Product{StoreID: storeID, Name: "Gadget", Price: 10, StockQuantity: &stock}
	product.RecomputeInStock()
	require.NoError(t, db.Create(&product).Error)

	cust := "user-1"
	orders := []models.Order{
		{ProductID: product.ID, StoreID: storeID, CustomerID: &cust, CustomerName: "A",
			CustomerEmail: "a@x.com", Quantity: 1, TotalAmount: 10,
			Status: models.OrderStatusConfirmed, CreatedAt: time.Now()},
		{ProductID: product.ID, StoreID: storeID, CustomerID: &cust, CustomerName: "A",
			CustomerEmail: "a@x.com", Quantity: 2, TotalAmount: 20,
			Status: models.OrderStatusPending, CreatedAt: time.Now()},
		{ProductID: product.ID, StoreID: storeID, CustomerName: "B",
			CustomerEmail: "b@x.com", Quantity: 1, TotalAmount: 10,
			Status: models.OrderStatusCancelled, CreatedAt: time.Now().AddDate(0, 0, -30)},
	}
	require.NoError(t, db.Create(&orders).Error)

	_, err = Stats(db, "intruder", storeID)
	assert.ErrorIs(t, err, ErrNotAuthorized)

	stats, err := Stats(db, "owner-1", storeID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalOrders)
	assert.Equal(t, 10.00, stats.TotalRevenue, "only confirmed orders count")
	assert.Equal(t, 2, stats.TotalCustomers)
	assert.Equal(t, int64(1), stats.TotalProducts)
	assert.Equal(t, int64(1), stats.PendingOrders)
	assert.Equal(t, 2, stats.RecentOrdersCount)
}
