package entity

import "time"

// PromoCode is one entry of the deterministic discount registry.
type PromoCode struct {
	Code             string    `json:"code"`
	DiscountFraction float64   `json:"discount_fraction"`
	ValidFrom        time.Time `json:"valid_from"`
	ValidUntil       time.Time `json:"valid_until"`
	UsageCap         int       `json:"usage_cap"` // 0 = unlimited
	Used             int       `json:"used"`
}

// Active reports whether the code may be applied at the given time.
func (p *PromoCode) Active(at time.Time) bool {
	if at.Before(p.ValidFrom) || at.After(p.ValidUntil) {
		return false
	}
	if p.UsageCap > 0 && p.Used >= p.UsageCap {
		return false
	}
	return true
}
