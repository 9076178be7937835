package utils

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func GenerateUUIDString() string {
	return uuid.New().String()
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// ==================== BOOKING ID ====================

// GenerateBookingID creates a booking reference in the BMTxxxxxx format.
// Uniqueness is the booking ledger's job; callers retry on collision.
func GenerateBookingID() string {
	return fmt.Sprintf("BMT%06d", rand.Intn(1000000))
}
