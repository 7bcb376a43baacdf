package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"niyam/internal/gateway"
)

func TestNormalizeUser(t *testing.T) {
	tests := []struct {
		name            string
		raw             gateway.RawUser
		expectedDisplay string
	}{
		{
			name:            "first name preferred",
			raw:             gateway.RawUser{ID: "u1", FirstName: "Asha", Username: "asha99"},
			expectedDisplay: "Asha",
		},
		{
			name:            "username fallback",
			raw:             gateway.RawUser{ID: "u2", Username: "asha99"},
			expectedDisplay: "asha99",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := NormalizeUser(tt.raw)
			assert.Equal(t, tt.expectedDisplay, user.DisplayName)
			assert.Equal(t, tt.raw.ID, user.ID)
		})
	}
}

func TestNormalizeAdmin(t *testing.T) {
	tests := []struct {
		name            string
		raw             gateway.RawAdmin
		expectedDisplay string
	}{
		{
			name:            "first name preferred",
			raw:             gateway.RawAdmin{ID: "a1", FirstName: "Ravi", AdminName: "ravi-admin"},
			expectedDisplay: "Ravi",
		},
		{
			name:            "adminname fallback",
			raw:             gateway.RawAdmin{ID: "a2", AdminName: "ravi-admin"},
			expectedDisplay: "ravi-admin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := NormalizeAdmin(tt.raw)
			assert.Equal(t, tt.expectedDisplay, user.DisplayName)
			assert.Equal(t, tt.raw.ID, user.ID)
		})
	}
}

func TestNormalizePreservesFullFieldSet(t *testing.T) {
	raw := gateway.RawUser{
		ID:        "u1",
		Username:  "asha99",
		FirstName: "Asha",
		Email:     "asha@example.com",
		Role:      "user",
		ImageURL:  "https://img.example.com/a.png",
		Bio:       "Lawyer",
		Address:   "Kathmandu",
		CreatedAt: "2025-06-01T10:00:00Z",
	}

	user := NormalizeUser(raw)
	assert.Equal(t, raw.Email, user.Email)
	assert.Equal(t, raw.Role, user.Role)
	assert.Equal(t, raw.ImageURL, user.ImageURL)
	assert.Equal(t, raw.Bio, user.Bio)
	assert.Equal(t, raw.Address, user.Address)
	assert.Equal(t, 2025, user.CreatedAt.Year())
}
