package repository

import (
	"context"
	"sync"

	"turf-booking/internal/data/entity"

	"go.uber.org/zap"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByBookingID(ctx context.Context, bookingID string) (*entity.Payment, error)
}

type paymentRepository struct {
	mu        sync.RWMutex
	byBooking map[string]*entity.Payment
	log       *zap.Logger
}

func NewPaymentRepository(log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		byBooking: make(map[string]*entity.Payment),
		log:       log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byBooking[payment.BookingID] = payment
	return nil
}

func (r *paymentRepository) FindByBookingID(ctx context.Context, bookingID string) (*entity.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payment, ok := r.byBooking[bookingID]
	if !ok {
		return nil, nil
	}
	return payment, nil
}
