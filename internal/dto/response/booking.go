package response

import (
	"time"

	"turf-booking/internal/data/entity"
)

type BookingResponse struct {
	ID              string               `json:"id"`
	FacilityID      string               `json:"facility_id"`
	FacilityName    string               `json:"facility_name"`
	Location        string               `json:"location"`
	Date            string               `json:"date"`
	Slots           []string             `json:"slots"`
	CustomerName    string               `json:"customer_name"`
	Phone           string               `json:"phone"`
	Email           string               `json:"email"`
	PaymentMethod   string               `json:"payment_method"`
	PromoCode       string               `json:"promo_code,omitempty"`
	Subtotal        int                  `json:"subtotal"`
	Discount        int                  `json:"discount"`
	TotalAmount     int                  `json:"total_amount"`
	BookingFee      int                  `json:"booking_fee"`
	RemainingAmount int                  `json:"remaining_amount"`
	Status          entity.BookingStatus `json:"status"`
	Payment         *PaymentResponse     `json:"payment,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
}

type PaymentResponse struct {
	ID        string               `json:"id"`
	BookingID string               `json:"booking_id"`
	Method    string               `json:"method"`
	Amount    int                  `json:"amount"`
	Status    entity.PaymentStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
}

// Helper converters

func BookingToResponse(b *entity.Booking, payment *entity.Payment) BookingResponse {
	resp := BookingResponse{
		ID:              b.ID,
		FacilityID:      b.FacilityID,
		FacilityName:    b.FacilityName,
		Location:        b.Location,
		Date:            b.Date.Format("2006-01-02"),
		Slots:           b.Slots,
		CustomerName:    b.CustomerName,
		Phone:           b.Phone,
		Email:           b.Email,
		PaymentMethod:   b.PaymentMethod,
		PromoCode:       b.PromoCode,
		Subtotal:        b.Subtotal,
		Discount:        b.Discount,
		TotalAmount:     b.TotalAmount,
		BookingFee:      b.BookingFee,
		RemainingAmount: b.RemainingAmount,
		Status:          b.Status,
		CreatedAt:       b.CreatedAt,
	}

	if payment != nil {
		resp.Payment = PaymentToResponse(payment)
	}

	return resp
}

func PaymentToResponse(payment *entity.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:        payment.ID,
		BookingID: payment.BookingID,
		Method:    payment.Method,
		Amount:    payment.Amount,
		Status:    payment.Status,
		CreatedAt: payment.CreatedAt,
	}
}
