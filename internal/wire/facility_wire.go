package wire

import (
	"turf-booking/internal/adaptor"
	"turf-booking/internal/data/repository"
	"turf-booking/pkg/middleware"
	"turf-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireFacility(
	r chi.Router,
	facilityHandler *adaptor.FacilityHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Fixed paths before the {id} wildcard
	r.Get("/api/facilities", facilityHandler.List)
	r.Get("/api/facilities/top-rated", facilityHandler.TopRated)
	r.Get("/api/facilities/featured", facilityHandler.Featured)
	r.Get("/api/facilities/category/{category}", facilityHandler.ByCategory)
	r.Get("/api/facilities/{id}", facilityHandler.GetByID)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(log))

		r.Post("/api/admin/facilities", facilityHandler.Create)
		r.Put("/api/admin/facilities/{id}", facilityHandler.Update)
	})

	// ==================== MANAGER ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Manager(log))

		r.Put("/api/manager/facility/images", facilityHandler.UpdateImages)
	})
}
