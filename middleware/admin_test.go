package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAdminEmail(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", "owner@example.com, Second.Admin@Example.COM")

	assert.True(t, IsAdminEmail("owner@example.com"))
	assert.True(t, IsAdminEmail("OWNER@EXAMPLE.COM"), "match is case-insensitive")
	assert.True(t, IsAdminEmail("second.admin@example.com"))
	assert.False(t, IsAdminEmail("visitor@example.com"))
	assert.False(t, IsAdminEmail(""))
}

func TestIsAdminEmailUnsetListDeniesEveryone(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", "")

	assert.False(t, IsAdminEmail("owner@example.com"))
}
