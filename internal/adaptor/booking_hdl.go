package adaptor

import (
	"encoding/json"
	"net/http"

	"turf-booking/internal/data/entity"
	"turf-booking/internal/dto/request"
	"turf-booking/internal/usecase"
	"turf-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

// GetSlots handles GET /api/facilities/{id}/slots?date=YYYY-MM-DD
func (h *BookingHandler) GetSlots(w http.ResponseWriter, r *http.Request) {
	facilityID := chi.URLParam(r, "id")
	date := r.URL.Query().Get("date")
	if date == "" {
		utils.ResponseBadRequest(w, "Query parameter 'date' is required", nil)
		return
	}

	response, err := h.service.GetSlotGrid(r.Context(), facilityID, date)
	if err != nil {
		handleServiceError(h.log, w, err, "get slots")
		return
	}

	utils.ResponseSuccess(w, "Slots retrieved", response)
}

// ReserveSlot handles POST /api/facilities/{id}/slots/{date}/{time}/reserve
func (h *BookingHandler) ReserveSlot(w http.ResponseWriter, r *http.Request) {
	facilityID := chi.URLParam(r, "id")
	date := chi.URLParam(r, "date")
	timeLabel := chi.URLParam(r, "time")

	response, err := h.service.ReserveSlot(r.Context(), facilityID, date, timeLabel)
	if err != nil {
		handleServiceError(h.log, w, err, "reserve slot")
		return
	}

	if !response.Reserved {
		utils.ResponseConflict(w, "Slot is not available")
		return
	}

	utils.ResponseSuccess(w, "Slot reserved", response)
}

// Create handles POST /api/bookings
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.CreateBooking(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "Booking created", response)
}

// GetByID handles GET /api/bookings/{id}
func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	response, err := h.service.GetBookingByID(r.Context(), id, callerFromContext(r))
	if err != nil {
		handleServiceError(h.log, w, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "Booking retrieved", response)
}

// ListMine handles GET /api/user/bookings
func (h *BookingHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	req := request.PaginatedRequest{
		Page:    utils.ParseInt(r.URL.Query().Get("page"), 1),
		PerPage: utils.ParseInt(r.URL.Query().Get("per_page"), 10),
	}

	response, err := h.service.GetUserBookings(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved", response)
}

// Cancel handles PUT /api/bookings/{id}/cancel
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}
	role, _ := utils.GetRoleFromContext(r.Context())

	response, err := h.service.CancelBooking(r.Context(), id, userID, entity.UserRole(role))
	if err != nil {
		handleServiceError(h.log, w, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled", response)
}

// Pay handles POST /api/pay
func (h *BookingHandler) Pay(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	var req request.ProcessPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.ProcessPayment(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "process payment")
		return
	}

	utils.ResponseSuccess(w, "Payment successful", response)
}

// ListAll handles GET /api/admin/bookings
func (h *BookingHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.ListAllBookings(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list all bookings")
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved", response)
}

// ListForFacility handles GET /api/manager/bookings
func (h *BookingHandler) ListForFacility(w http.ResponseWriter, r *http.Request) {
	facilityID, ok := utils.GetManagedFacilityFromContext(r.Context())
	if !ok || facilityID == "" {
		utils.ResponseForbidden(w, "No facility assigned")
		return
	}

	response, err := h.service.ListFacilityBookings(r.Context(), facilityID)
	if err != nil {
		handleServiceError(h.log, w, err, "list facility bookings")
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved", response)
}

// UpdateStatus handles PUT /api/admin/bookings/{id}/status and
// PUT /api/manager/bookings/{id}/status
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req request.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	// Managers may only touch bookings of their own facility
	if role, _ := utils.GetRoleFromContext(r.Context()); role == string(entity.RoleManager) {
		caller := callerFromContext(r)
		if _, err := h.service.GetBookingByID(r.Context(), id, caller); err != nil {
			handleServiceError(h.log, w, err, "update booking status")
			return
		}
	}

	response, err := h.service.Transition(r.Context(), id, entity.BookingStatus(req.Status))
	if err != nil {
		handleServiceError(h.log, w, err, "update booking status")
		return
	}

	utils.ResponseSuccess(w, "Booking status updated", response)
}

func callerFromContext(r *http.Request) usecase.Caller {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	role, _ := utils.GetRoleFromContext(r.Context())
	facilityID, _ := utils.GetManagedFacilityFromContext(r.Context())

	return usecase.Caller{
		UserID:            userID,
		Role:              entity.UserRole(role),
		ManagedFacilityID: facilityID,
	}
}
