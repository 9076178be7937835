package response

import (
	"time"

	"turf-booking/internal/data/entity"
)

type AuthResponse struct {
	UserID            string          `json:"user_id"`
	Token             string          `json:"token,omitempty"`
	ExpiresAt         time.Time       `json:"expires_at,omitempty"`
	Name              string          `json:"name"`
	Email             string          `json:"email"`
	Role              entity.UserRole `json:"role"`
	Avatar            string          `json:"avatar,omitempty"`
	ManagedFacilityID string          `json:"managed_facility_id,omitempty"`
}

type ManagerResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	ManagedFacilityID string    `json:"managed_facility_id"`
	FacilityName      string    `json:"facility_name"`
	CreatedAt         time.Time `json:"created_at"`
}

// Helper converters

func AuthToResponse(user *entity.User, session *entity.Session) *AuthResponse {
	resp := &AuthResponse{
		UserID:            user.ID,
		Name:              user.Name,
		Email:             user.Email,
		Role:              user.Role,
		Avatar:            user.Avatar,
		ManagedFacilityID: user.ManagedFacilityID,
	}

	if session != nil {
		resp.Token = session.Token.String()
		resp.ExpiresAt = session.ExpiresAt
	}

	return resp
}

func ManagerToResponse(m *entity.ManagerAccount) *ManagerResponse {
	return &ManagerResponse{
		ID:                m.ID,
		Name:              m.Name,
		Email:             m.Email,
		ManagedFacilityID: m.ManagedFacilityID,
		FacilityName:      m.FacilityName,
		CreatedAt:         m.CreatedAt,
	}
}
