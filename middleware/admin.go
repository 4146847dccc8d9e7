package middleware

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireAdmin allows only callers whose email is on the ADMIN_EMAILS
// allow-list (comma-separated, matched case-insensitively). Must run after
// ValidateToken. An unset variable means nobody is an admin.
func RequireAdmin(c *gin.Context) {
	email, _ := c.Get("email")
	callerEmail, ok := email.(string)
	if !ok || callerEmail == "" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized - Admin access required"})
		c.Abort()
		return
	}

	if !IsAdminEmail(callerEmail) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized - Admin access required"})
		c.Abort()
		return
	}
	c.Next()
}

// IsAdminEmail checks the configured allow-list.
func IsAdminEmail(email string) bool {
	for _, admin := range strings.Split(os.Getenv("ADMIN_EMAILS"), ",") {
		admin = strings.TrimSpace(admin)
		if admin != "" && strings.EqualFold(admin, email) {
			return true
		}
	}
	return false
}
