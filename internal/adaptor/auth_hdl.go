package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"turf-booking/internal/dto/request"
	"turf-booking/internal/usecase"
	"turf-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	// Decode request body
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "login")
		return
	}

	utils.ResponseSuccess(w, "Login successful", response)
}

// Logout handles POST /api/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		// Fall back to the raw header when the middleware did not run
		authHeader := r.Header.Get("Authorization")
		token = strings.TrimPrefix(authHeader, "Bearer ")
	}
	if token == "" {
		utils.ResponseBadRequest(w, "No token provided", nil)
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		handleServiceError(h.log, w, err, "logout")
		return
	}

	utils.ResponseSuccess(w, "Logout successful", nil)
}

// Me handles GET /api/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	response, err := h.service.Me(r.Context(), userID)
	if err != nil {
		handleServiceError(h.log, w, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved", response)
}

// CreateManager handles POST /api/admin/managers
func (h *AuthHandler) CreateManager(w http.ResponseWriter, r *http.Request) {
	var req request.CreateManagerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.CreateManager(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create manager")
		return
	}

	utils.ResponseCreated(w, "Manager account created", response)
}

// ListManagers handles GET /api/admin/managers
func (h *AuthHandler) ListManagers(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.ListManagers(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list managers")
		return
	}

	utils.ResponseSuccess(w, "Managers retrieved", response)
}

// ManagerByFacility handles GET /api/admin/facilities/{id}/manager
func (h *AuthHandler) ManagerByFacility(w http.ResponseWriter, r *http.Request) {
	facilityID := chi.URLParam(r, "id")

	response, err := h.service.ManagerByFacility(r.Context(), facilityID)
	if err != nil {
		handleServiceError(h.log, w, err, "get facility manager")
		return
	}

	utils.ResponseSuccess(w, "Manager retrieved", response)
}
