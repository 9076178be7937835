package response

import (
	"turf-booking/internal/data/entity"
)

type FacilityResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Location     string   `json:"location"`
	PricePerHour int      `json:"price_per_hour"`
	Rating       float64  `json:"rating"`
	Reviews      int      `json:"reviews"`
	Sports       []string `json:"sports"`
	Facilities   []string `json:"facilities"`
	Images       []string `json:"images"`
	IsAvailable  bool     `json:"is_available"`
	Description  string   `json:"description,omitempty"`
}

func FacilityToResponse(f *entity.Facility) *FacilityResponse {
	return &FacilityResponse{
		ID:           f.ID,
		Name:         f.Name,
		Location:     f.Location,
		PricePerHour: f.PricePerHour,
		Rating:       f.Rating,
		Reviews:      f.Reviews,
		Sports:       f.Sports,
		Facilities:   f.Facilities,
		Images:       f.Images,
		IsAvailable:  f.IsAvailable,
		Description:  f.Description,
	}
}

func FacilitiesToResponse(facilities []*entity.Facility) []*FacilityResponse {
	out := make([]*FacilityResponse, len(facilities))
	for i, f := range facilities {
		out[i] = FacilityToResponse(f)
	}
	return out
}
