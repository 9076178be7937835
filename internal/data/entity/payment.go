package entity

import "time"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// PaymentMethods are the accepted payment method tags.
var PaymentMethods = []string{"upi", "card", "wallet", "cash"}

// Payment records the online booking-fee payment for a booking.
// The remaining amount is settled at the venue.
type Payment struct {
	ID        string        `json:"id"`
	BookingID string        `json:"booking_id"`
	Method    string        `json:"method"`
	Amount    int           `json:"amount"`
	Status    PaymentStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}
