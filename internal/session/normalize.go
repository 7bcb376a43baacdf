package session

import (
	"time"

	"niyam/internal/gateway"
)

// One explicit mapping function per raw variant. Both preserve the full field
// set; displayName falls back to the username or adminname when a first name
// is absent.

// NormalizeUser converts a raw backend user record into the unified session
// shape.
func NormalizeUser(raw gateway.RawUser) *SessionUser {
	display := raw.FirstName
	if display == "" {
		display = raw.Username
	}
	return &SessionUser{
		ID:          raw.ID,
		DisplayName: display,
		Email:       raw.Email,
		Role:        raw.Role,
		ImageURL:    raw.ImageURL,
		Bio:         raw.Bio,
		Address:     raw.Address,
		CreatedAt:   parseTime(raw.CreatedAt),
	}
}

// NormalizeAdmin converts a raw backend admin record into the unified session
// shape.
func NormalizeAdmin(raw gateway.RawAdmin) *SessionUser {
	display := raw.FirstName
	if display == "" {
		display = raw.AdminName
	}
	return &SessionUser{
		ID:          raw.ID,
		DisplayName: display,
		Email:       raw.Email,
		Role:        raw.Role,
		ImageURL:    raw.ImageURL,
		Bio:         raw.Bio,
		Address:     raw.Address,
		CreatedAt:   parseTime(raw.CreatedAt),
	}
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
