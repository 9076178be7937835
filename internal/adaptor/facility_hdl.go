package adaptor

import (
	"encoding/json"
	"net/http"

	"turf-booking/internal/dto/request"
	"turf-booking/internal/usecase"
	"turf-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FacilityHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewFacilityHandler(service usecase.CatalogService, log *zap.Logger) *FacilityHandler {
	return &FacilityHandler{
		service: service,
		log:     log,
	}
}

// List handles GET /api/facilities
//
// With any of the sport/min_rating/min_price/max_price/q query parameters
// present it behaves as search, otherwise it returns the full catalog.
func (h *FacilityHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if q.Get("sport") == "" && q.Get("min_rating") == "" &&
		q.Get("min_price") == "" && q.Get("max_price") == "" && q.Get("q") == "" {
		response, err := h.service.ListFacilities(r.Context())
		if err != nil {
			handleServiceError(h.log, w, err, "list facilities")
			return
		}
		utils.ResponseSuccess(w, "Facilities retrieved", response)
		return
	}

	req := request.SearchFacilitiesRequest{
		Sport:     q.Get("sport"),
		MinRating: utils.ParseFloat(q.Get("min_rating"), 0),
		MinPrice:  utils.ParseInt(q.Get("min_price"), 0),
		MaxPrice:  utils.ParseInt(q.Get("max_price"), 0),
		Query:     q.Get("q"),
	}

	response, err := h.service.Search(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "search facilities")
		return
	}

	utils.ResponseSuccess(w, "Facilities retrieved", response)
}

// GetByID handles GET /api/facilities/{id}
func (h *FacilityHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	response, err := h.service.GetFacilityByID(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, err, "get facility")
		return
	}

	utils.ResponseSuccess(w, "Facility retrieved", response)
}

// TopRated handles GET /api/facilities/top-rated
func (h *FacilityHandler) TopRated(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseInt(r.URL.Query().Get("limit"), 4)

	response, err := h.service.TopRated(r.Context(), limit)
	if err != nil {
		handleServiceError(h.log, w, err, "top rated facilities")
		return
	}

	utils.ResponseSuccess(w, "Top rated facilities retrieved", response)
}

// Featured handles GET /api/facilities/featured
func (h *FacilityHandler) Featured(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.Featured(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "featured facilities")
		return
	}

	utils.ResponseSuccess(w, "Featured facilities retrieved", response)
}

// ByCategory handles GET /api/facilities/category/{category}
func (h *FacilityHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")

	response, err := h.service.ByCategory(r.Context(), category)
	if err != nil {
		handleServiceError(h.log, w, err, "facilities by category")
		return
	}

	utils.ResponseSuccess(w, "Facilities retrieved", response)
}

// Create handles POST /api/admin/facilities
func (h *FacilityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.FacilityRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.CreateFacility(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create facility")
		return
	}

	utils.ResponseCreated(w, "Facility created", response)
}

// Update handles PUT /api/admin/facilities/{id}
func (h *FacilityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req request.FacilityUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.UpdateFacility(r.Context(), id, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update facility")
		return
	}

	utils.ResponseSuccess(w, "Facility updated", response)
}

// UpdateImages handles PUT /api/manager/facility/images
func (h *FacilityHandler) UpdateImages(w http.ResponseWriter, r *http.Request) {
	facilityID, ok := utils.GetManagedFacilityFromContext(r.Context())
	if !ok || facilityID == "" {
		utils.ResponseForbidden(w, "No facility assigned")
		return
	}

	var req request.UpdateImagesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.UpdateImages(r.Context(), facilityID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update facility images")
		return
	}

	utils.ResponseSuccess(w, "Facility images updated", response)
}
