package entity

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusRefunded  BookingStatus = "refunded"
)

// legalTransitions: pending -> confirmed, confirmed -> cancelled | refunded.
// cancelled and refunded are terminal.
var legalTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed},
	BookingStatusConfirmed: {BookingStatusCancelled, BookingStatusRefunded},
}

// CanTransitionTo reports whether status may legally change to target.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, t := range legalTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

type Booking struct {
	ID              string        `json:"id"`
	FacilityID      string        `json:"facility_id"`
	FacilityName    string        `json:"facility_name"`
	Location        string        `json:"location"`
	Date            time.Time     `json:"date"`
	Slots           []string      `json:"slots"`
	CustomerName    string        `json:"customer_name"`
	Phone           string        `json:"phone"`
	Email           string        `json:"email"`
	PaymentMethod   string        `json:"payment_method"`
	PromoCode       string        `json:"promo_code,omitempty"`
	Subtotal        int           `json:"subtotal"`
	Discount        int           `json:"discount"`
	TotalAmount     int           `json:"total_amount"`
	BookingFee      int           `json:"booking_fee"`
	RemainingAmount int           `json:"remaining_amount"`
	Status          BookingStatus `json:"status"`
	UserID          string        `json:"user_id"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}
