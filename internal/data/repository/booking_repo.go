package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"turf-booking/internal/data/entity"
	"turf-booking/pkg/errs"
	"turf-booking/pkg/storage"

	"go.uber.org/zap"
)

// bookingsCollection is the persisted collection name, kept from the
// localStorage key the app used before.
const bookingsCollection = "galli2ground_bookings"

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id string) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID string) (int64, error)
	FindByFacilityID(ctx context.Context, facilityID string) ([]*entity.Booking, error)
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) error
}

type bookingRepository struct {
	mu    sync.RWMutex
	store storage.Store
	items []*entity.Booking // insertion order
	byID  map[string]*entity.Booking
	log   *zap.Logger
}

func NewBookingRepository(store storage.Store, log *zap.Logger) BookingRepository {
	r := &bookingRepository{
		store: store,
		byID:  make(map[string]*entity.Booking),
		log:   log.With(zap.String("repository", "booking")),
	}

	var persisted []*entity.Booking
	found, err := store.Get(bookingsCollection, &persisted)
	if err != nil {
		r.log.Warn("Failed to load persisted bookings, starting empty", zap.Error(err))
		return r
	}
	if found {
		r.items = persisted
		for _, b := range persisted {
			r.byID[b.ID] = b
		}
		r.log.Info("Bookings loaded", zap.Int("count", len(persisted)))
	}

	return r
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[booking.ID]; exists {
		return fmt.Errorf("booking id %s already exists", booking.ID)
	}

	r.items = append(r.items, booking)
	r.byID[booking.ID] = booking

	if err := r.persistLocked(); err != nil {
		r.log.Error("Failed to persist booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID),
		)
		return fmt.Errorf("persist booking %s: %w", booking.ID, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*entity.Booking
	for _, b := range r.items {
		if b.UserID == userID {
			matched = append(matched, b)
		}
	}

	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}

	return matched, nil
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, b := range r.items {
		if b.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (r *bookingRepository) FindByFacilityID(ctx context.Context, facilityID string) ([]*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*entity.Booking
	for _, b := range r.items {
		if b.FacilityID == facilityID {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Booking, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id string, status entity.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("booking %s: %w", id, errs.ErrNotFound)
	}

	booking.Status = status
	booking.UpdatedAt = time.Now()

	if err := r.persistLocked(); err != nil {
		r.log.Error("Failed to persist booking status",
			zap.Error(err),
			zap.String("booking_id", id),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("persist booking %s: %w", id, err)
	}

	return nil
}

func (r *bookingRepository) persistLocked() error {
	return r.store.Put(bookingsCollection, r.items)
}
