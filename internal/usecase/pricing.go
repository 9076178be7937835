package usecase

import (
	"fmt"

	"turf-booking/internal/data/entity"
	"turf-booking/pkg/errs"
)

// DefaultBookingFee is the fixed amount collected online at booking time.
const DefaultBookingFee = 100

// PricingEngine derives the price breakdown for a slot selection. It is a
// pure component: same inputs, same quote.
type PricingEngine struct {
	fee int
}

func NewPricingEngine(fee int) *PricingEngine {
	if fee <= 0 {
		fee = DefaultBookingFee
	}
	return &PricingEngine{fee: fee}
}

// Quote computes subtotal, discount, total, fee and remaining amount.
// promo may be nil (no discount). The fee is capped at the total so the
// remaining amount never goes negative, and the invariant
// remaining + fee == total holds exactly (integer arithmetic, floor discount).
func (p *PricingEngine) Quote(pricePerHour, slotCount int, promo *entity.PromoCode) (entity.Quote, error) {
	if pricePerHour <= 0 {
		return entity.Quote{}, fmt.Errorf("price per hour must be positive: %w", errs.ErrInvalidInput)
	}
	if slotCount <= 0 {
		return entity.Quote{}, fmt.Errorf("slot count must be positive: %w", errs.ErrInvalidInput)
	}

	subtotal := pricePerHour * slotCount

	discount := 0
	promoCode := ""
	if promo != nil {
		discount = int(float64(subtotal) * promo.DiscountFraction)
		promoCode = promo.Code
	}

	total := subtotal - discount

	fee := p.fee
	if fee > total {
		fee = total
	}

	return entity.Quote{
		Subtotal:        subtotal,
		Discount:        discount,
		TotalAmount:     total,
		BookingFee:      fee,
		RemainingAmount: total - fee,
		PromoCode:       promoCode,
	}, nil
}
