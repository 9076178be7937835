package repository

import (
	"context"

	"turf-booking/pkg/storage"
	"turf-booking/pkg/utils"

	"go.uber.org/zap"
)

type Repository struct {
	Facility FacilityRepository
	Slot     SlotRepository
	Booking  BookingRepository
	Promo    PromoRepository
	User     UserRepository
	Manager  ManagerRepository
	Session  SessionRepository
	Payment  PaymentRepository
}

func NewRepository(store storage.Store, config *utils.Config, log *zap.Logger) *Repository {
	repo := &Repository{
		Facility: NewFacilityRepository(log),
		Slot:     NewSlotRepository(availabilityPolicy(config.Slots), log),
		Booking:  NewBookingRepository(store, log),
		Promo:    NewPromoRepository(seedPromoCodes(), log),
		User:     NewUserRepository(seedUsers(), log),
		Manager:  NewManagerRepository(store, log),
		Session:  NewSessionRepository(store, log),
		Payment:  NewPaymentRepository(log),
	}

	// Sample catalog
	ctx := context.Background()
	for _, f := range seedFacilities() {
		if err := repo.Facility.Create(ctx, f); err != nil {
			log.Warn("Failed to seed facility", zap.Error(err), zap.String("facility_id", f.ID))
		}
	}

	return repo
}

func availabilityPolicy(config utils.SlotConfig) AvailabilityPolicy {
	if config.Policy == "blackout" {
		return NewBlackoutPolicy()
	}
	return NewWeightedRandomPolicy(config.RandomSeed)
}
