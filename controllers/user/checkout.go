package userControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/leconstantin/storefront-api/middleware"
	"github.com/leconstantin/storefront-api/models"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

// CheckoutInfoInput mirrors the checkout form. EmailPhone is a single field
// the form collects; it is routed to email or phone depending on whether it
// contains an "@".
type CheckoutInfoInput struct {
	EmailPhone     string  `json:"email_phone" binding:"required"`
	ReceiveUpdates *bool   `json:"receive_updates"`
	Country        *string `json:"country"`
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	Apartment      *string `json:"apartment"`
	City           *string `json:"city"`
	State          *string `json:"state"`
	RoadNumber     *string `json:"road_number"`
	SaveInfo       *bool   `json:"save_info"`
}

// SaveCheckoutInfo patches the user's contact and address details from the
// checkout form. Absent fields keep their stored values.
func SaveCheckoutInfo(db *gorm.DB, userID string, input CheckoutInfoInput) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if strings.Contains(input.EmailPhone, "@") {
			user.Email = input.EmailPhone
		} else {
			user.Phone = input.EmailPhone
		}

		if input.ReceiveUpdates != nil {
			user.ReceiveUpdates = *input.ReceiveUpdates
		}
		if input.Country != nil {
			user.Address.Country = *input.Country
		}
		if input.FirstName != nil {
			user.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			user.LastName = *input.LastName
		}
		if input.Apartment != nil {
			user.Address.Apartment = *input.Apartment
		}
		if input.City != nil {
			user.Address.City = *input.City
		}
		if input.State != nil {
			user.Address.State = *input.State
		}
		if input.RoadNumber != nil {
			user.Address.RoadNumber = *input.RoadNumber
		}
		if input.SaveInfo != nil {
			user.SaveInfo = *input.SaveInfo
		}

		return tx.Save(&user).Error
	})
}

type ShippingMethodInput struct {
	Method string  `json:"method" binding:"required"`
	Price  float64 `json:"price"`
}

// SelectShippingMethod records the user's shipping choice for checkout.
func SelectShippingMethod(db *gorm.DB, userID string, input ShippingMethodInput) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"shipping_method": input.Method,
		"shipping_price":  input.Price,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UpdatePhone stores the phone number the user wants to pay with.
func UpdatePhone(db *gorm.DB, userID string, phone string) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).Update("phone", phone)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// PUT /user/checkout-info
func SaveCheckoutInfoHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input CheckoutInfoInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := SaveCheckoutInfo(db, userID, input); err != nil {
			respondCheckoutError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"saved": true})
	}
}

// PUT /user/shipping-method
func SelectShippingMethodHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input ShippingMethodInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := SelectShippingMethod(db, userID, input); err != nil {
			respondCheckoutError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"saved": true})
	}
}

// PUT /user/phone
func UpdatePhoneHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input struct {
			Phone string `json:"phone" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := UpdatePhone(db, userID, input.Phone); err != nil {
			respondCheckoutError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"saved": true})
	}
}

func respondCheckoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save checkout info"})
	}
}
