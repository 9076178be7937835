package entity

import "time"

// ManagerAccount is one entry of the turf-manager directory. Admins create
// these; the account logs in with role manager scoped to its facility.
type ManagerAccount struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	PasswordHash      string    `json:"password_hash"`
	ManagedFacilityID string    `json:"managed_facility_id"`
	FacilityName      string    `json:"facility_name"`
	CreatedAt         time.Time `json:"created_at"`
}
