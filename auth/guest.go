package auth

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/leconstantin/storefront-api/models"
	"gorm.io/gorm"
)

const guestTTL = 24 * time.Hour

// POST /auth/guest
//
// Issues a short-lived anonymous identity so visitors can place direct
// orders without registering. Expired guest rows are swept opportunistically.
func CreateGuestSession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		guest := models.GuestUser{
			ID:        "guest_" + randomHex(16),
			ExpiresAt: time.Now().Add(guestTTL),
		}

		if err := db.Create(&guest).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create guest session"})
			return
		}

		if err := db.Where("expires_at < ?", time.Now()).Delete(&models.GuestUser{}).Error; err != nil {
			log.Printf("⚠️ Failed to sweep expired guests: %v", err)
		}

		claims := jwt.MapClaims{
			"user_id": guest.ID,
			"role":    "guest",
			"exp":     guest.ExpiresAt.Unix(),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
			SignedString([]byte(os.Getenv("JWT_SECRET")))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"guest_id":   guest.ID,
			"token":      token,
			"expires_at": guest.ExpiresAt,
		})
	}
}

func randomHex(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "fallback_guest"
	}
	return hex.EncodeToString(buf)
}
