package entity

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	Token             uuid.UUID  `json:"token"`
	UserID            string     `json:"user_id"`
	Role              UserRole   `json:"role"`
	ManagedFacilityID string     `json:"managed_facility_id,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	ExpiresAt         time.Time  `json:"expires_at"`
	RevokedAt         *time.Time `json:"revoked_at,omitempty"`
}

// Valid reports whether the session can authenticate a request at the given time.
func (s *Session) Valid(at time.Time) bool {
	return s.RevokedAt == nil && at.Before(s.ExpiresAt)
}
