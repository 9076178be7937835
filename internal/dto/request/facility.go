package request

type FacilityRequest struct {
	Name         string   `json:"name" validate:"required,min=2,max=100"`
	Location     string   `json:"location" validate:"required"`
	PricePerHour int      `json:"price_per_hour" validate:"required,gt=0"`
	Sports       []string `json:"sports" validate:"required,min=1,dive,required"`
	Facilities   []string `json:"facilities,omitempty"`
	Images       []string `json:"images,omitempty"`
	Description  string   `json:"description,omitempty"`
}

type FacilityUpdateRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Location     *string  `json:"location,omitempty"`
	PricePerHour *int     `json:"price_per_hour,omitempty" validate:"omitempty,gt=0"`
	Rating       *float64 `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	Sports       []string `json:"sports,omitempty"`
	Facilities   []string `json:"facilities,omitempty"`
	Images       []string `json:"images,omitempty"`
	Description  *string  `json:"description,omitempty"`
	IsAvailable  *bool    `json:"is_available,omitempty"`
}

type UpdateImagesRequest struct {
	Images []string `json:"images" validate:"required,dive,required"`
}

// SearchFacilitiesRequest carries the conjunctive search criteria, parsed
// from query parameters.
type SearchFacilitiesRequest struct {
	Sport     string  `json:"sport,omitempty"`
	MinRating float64 `json:"min_rating,omitempty"`
	MinPrice  int     `json:"min_price,omitempty"`
	MaxPrice  int     `json:"max_price,omitempty"`
	Query     string  `json:"query,omitempty"`
}
