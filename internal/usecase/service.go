package usecase

import (
	"turf-booking/internal/data/repository"
	"turf-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Catalog CatalogService
	Booking BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	pricing := NewPricingEngine(config.Booking.Fee)

	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Catalog: NewCatalogService(repo, log),
		Booking: NewBookingService(repo, pricing, config, log),
	}
}
