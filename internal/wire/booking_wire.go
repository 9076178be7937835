package wire

import (
	"turf-booking/internal/adaptor"
	"turf-booking/internal/data/repository"
	"turf-booking/pkg/middleware"
	"turf-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Browsing the day grid needs no session
	r.Get("/api/facilities/{id}/slots", bookingHandler.GetSlots)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Post("/api/facilities/{id}/slots/{date}/{time}/reserve", bookingHandler.ReserveSlot)
		r.Post("/api/bookings", bookingHandler.Create)
		r.Get("/api/bookings/{id}", bookingHandler.GetByID)
		r.Get("/api/user/bookings", bookingHandler.ListMine)
		r.Put("/api/bookings/{id}/cancel", bookingHandler.Cancel)
		r.Post("/api/pay", bookingHandler.Pay)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(log))

		r.Get("/api/admin/bookings", bookingHandler.ListAll)
		r.Put("/api/admin/bookings/{id}/status", bookingHandler.UpdateStatus)
	})

	// ==================== MANAGER ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Manager(log))

		r.Get("/api/manager/bookings", bookingHandler.ListForFacility)
		r.Put("/api/manager/bookings/{id}/status", bookingHandler.UpdateStatus)
	})
}
