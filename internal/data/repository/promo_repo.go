package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"turf-booking/internal/data/entity"
	"turf-booking/pkg/errs"

	"go.uber.org/zap"
)

// PromoRepository is the deterministic promo-code registry. Lookup either
// resolves to an active code or does not; there is no randomness here.
type PromoRepository interface {
	FindActive(ctx context.Context, code string, at time.Time) (*entity.PromoCode, error)
	IncrementUsage(ctx context.Context, code string) error
}

type promoRepository struct {
	mu    sync.Mutex
	codes map[string]*entity.PromoCode
	log   *zap.Logger
}

func NewPromoRepository(codes []*entity.PromoCode, log *zap.Logger) PromoRepository {
	r := &promoRepository{
		codes: make(map[string]*entity.PromoCode),
		log:   log.With(zap.String("repository", "promo")),
	}
	for _, c := range codes {
		r.codes[strings.ToUpper(c.Code)] = c
	}
	return r
}

// FindActive returns the code when it exists and is inside its validity
// window with usage remaining; nil otherwise.
func (r *promoRepository) FindActive(ctx context.Context, code string, at time.Time) (*entity.PromoCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	promo, ok := r.codes[strings.ToUpper(code)]
	if !ok || !promo.Active(at) {
		return nil, nil
	}
	return promo, nil
}

func (r *promoRepository) IncrementUsage(ctx context.Context, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	promo, ok := r.codes[strings.ToUpper(code)]
	if !ok {
		return fmt.Errorf("promo code %s: %w", code, errs.ErrNotFound)
	}

	promo.Used++
	return nil
}
