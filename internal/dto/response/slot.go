package response

import (
	"turf-booking/internal/data/entity"
)

type SlotGridResponse struct {
	FacilityID string            `json:"facility_id"`
	Date       string            `json:"date"`
	Slots      []entity.SlotView `json:"slots"`
}

type ReserveSlotResponse struct {
	FacilityID string            `json:"facility_id"`
	Date       string            `json:"date"`
	Time       string            `json:"time"`
	Reserved   bool              `json:"reserved"`
	Status     entity.SlotStatus `json:"status"`
}
