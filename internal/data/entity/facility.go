package entity

import "time"

type Facility struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	PricePerHour int       `json:"price_per_hour"`
	Rating       float64   `json:"rating"`
	Reviews      int       `json:"reviews"`
	Sports       []string  `json:"sports"`
	Facilities   []string  `json:"facilities"`
	Images       []string  `json:"images"`
	IsAvailable  bool      `json:"is_available"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
