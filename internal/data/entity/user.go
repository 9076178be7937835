package entity

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleUser    UserRole = "user"
)

type User struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	PasswordHash      string   `json:"-"`
	Role              UserRole `json:"role"`
	Avatar            string   `json:"avatar,omitempty"`
	ManagedFacilityID string   `json:"managed_facility_id,omitempty"`
}
