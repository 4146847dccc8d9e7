package userControllers

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

func seedUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	user := models.User{
		ID:        "user-1",
		Email:     "old@example.com",
		Phone:     "111",
		CreatedAt: time.Now(),
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestSaveCheckoutInfoRoutesEmailPhoneField(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db)

	// An "@" means the field is an email address.
	require.NoError(t, SaveCheckoutInfo(db, "user-1", CheckoutInfoInput{
		EmailPhone: "new@example.com",
	}))

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", "user-1").Error)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, "111", user.Phone, "phone untouched when an email was entered")

	// No "@" means it is a phone number.
	require.NoError(t, SaveCheckoutInfo(db, "user-1", CheckoutInfoInput{
		EmailPhone: "0123456789",
	}))

	require.NoError(t, db.First(&user, "id = ?", "user-1").Error)
	assert.Equal(t, "new@example.com", user.Email, "email untouched when a phone was entered")
	assert.Equal(t, "0123456789", user.Phone)
}

func TestSaveCheckoutInfoPatchesOnlyProvidedFields(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db)

	require.NoError(t, SaveCheckoutInfo(db, "user-1", CheckoutInfoInput{
		EmailPhone:     "new@example.com",
		FirstName:      strPtr("Ada"),
		Country:        strPtr("Kenya"),
		City:           strPtr("Nairobi"),
		ReceiveUpdates: boolPtr(true),
		SaveInfo:       boolPtr(true),
	}))

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", "user-1").Error)
	assert.Equal(t, "Ada", user.FirstName)
	assert.Equal(t, "Kenya", user.Address.Country)
	assert.Equal(t, "Nairobi", user.Address.City)
	assert.True(t, user.ReceiveUpdates)
	assert.True(t, user.SaveInfo)

	// A later save without those fields leaves them alone.
	require.NoError(t, SaveCheckoutInfo(db, "user-1", CheckoutInfoInput{
		EmailPhone: "new@example.com",
		LastName:   strPtr("Lovelace"),
	}))

	require.NoError(t, db.First(&user, "id = ?", "user-1").Error)
	assert.Equal(t, "Ada", user.FirstName)
	assert.Equal(t, "Lovelace", user.LastName)
	assert.True(t, user.ReceiveUpdates)
}

func TestSaveCheckoutInfoUnknownUser(t *testing.T) {
	db := setupTestDB(t)

	err := SaveCheckoutInfo(db, "nobody", CheckoutInfoInput{EmailPhone: "a@b.c"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSelectShippingMethod(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db)

	require.NoError(t, SelectShippingMethod(db, "user-1", ShippingMethodInput{
		Method: "express",
		Price:  12.50,
	}))

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", "user-1").Error)
	assert.Equal(t, "express", user.ShippingMethod)
	assert.Equal(t, 12.50, user.ShippingPrice)

	assert.ErrorIs(t,
		SelectShippingMethod(db, "nobody", ShippingMethodInput{Method: "standard"}),
		ErrUserNotFound)
}

func TestUpdatePhone(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db)

	require.NoError(t, UpdatePhone(db, "user-1", "0712345678"))

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", "user-1").Error)
	assert.Equal(t, "0712345678", user.Phone)

	assert.ErrorIs(t, UpdatePhone(db, "nobody", "0712345678"), ErrUserNotFound)
}
