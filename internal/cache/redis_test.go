package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		expected string
	}{
		{"simple id", "123", "account:123"},
		{"objectid format", "507f1f77bcf86cd799439011", "account:507f1f77bcf86cd799439011"},
		{"empty string", "", "account:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AccountCacheKey(tt.userID)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCurrentBusinessCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		expected string
	}{
		{"objectid format", "507f1f77bcf86cd799439011", "session:current_business:507f1f77bcf86cd799439011"},
		{"empty string", "", "session:current_business:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CurrentBusinessCacheKey(tt.userID)
			assert.Equal(t, tt.expected, result)
		})
	}
}
