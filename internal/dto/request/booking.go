package request

type CreateBookingRequest struct {
	FacilityID    string   `json:"facility_id" validate:"required"`
	Date          string   `json:"date" validate:"required,datetime=2006-01-02"`
	Slots         []string `json:"slots" validate:"required,min=1,dive,required"`
	CustomerName  string   `json:"customer_name" validate:"required,min=2,max=100"`
	Phone         string   `json:"phone" validate:"required,min=10,max=15"`
	Email         string   `json:"email" validate:"required,email"`
	PaymentMethod string   `json:"payment_method" validate:"required,oneof=upi card wallet cash"`
	PromoCode     string   `json:"promo_code,omitempty"`
	// Confirm skips the explicit payment step and enters confirmed directly.
	Confirm bool `json:"confirm,omitempty"`
}

type ProcessPaymentRequest struct {
	BookingID string `json:"booking_id" validate:"required"`
	Amount    int    `json:"amount" validate:"required,gt=0"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled refunded"`
}
