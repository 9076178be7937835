package entity

// Quote is the pricing breakdown for a slot selection.
// Invariant: RemainingAmount + BookingFee == TotalAmount, RemainingAmount >= 0.
type Quote struct {
	Subtotal        int    `json:"subtotal"`
	Discount        int    `json:"discount"`
	TotalAmount     int    `json:"total_amount"`
	BookingFee      int    `json:"booking_fee"`
	RemainingAmount int    `json:"remaining_amount"`
	PromoCode       string `json:"promo_code,omitempty"`
}
