package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"turf-booking/internal/data/entity"
	"turf-booking/pkg/errs"

	"go.uber.org/zap"
)

// FacilityFilter holds conjunctive search criteria. Zero values mean
// "criterion not set".
type FacilityFilter struct {
	Sport     string
	MinRating float64
	MinPrice  int
	MaxPrice  int
	Query     string
}

type FacilityRepository interface {
	Create(ctx context.Context, facility *entity.Facility) error
	FindByID(ctx context.Context, id string) (*entity.Facility, error)
	FindAll(ctx context.Context) ([]*entity.Facility, error)
	Search(ctx context.Context, filter FacilityFilter) ([]*entity.Facility, error)
	TopRated(ctx context.Context, limit int) ([]*entity.Facility, error)
	Update(ctx context.Context, facility *entity.Facility) error
}

type facilityRepository struct {
	mu    sync.RWMutex
	items []*entity.Facility // catalog order
	byID  map[string]*entity.Facility
	log   *zap.Logger
}

func NewFacilityRepository(log *zap.Logger) FacilityRepository {
	return &facilityRepository{
		byID: make(map[string]*entity.Facility),
		log:  log.With(zap.String("repository", "facility")),
	}
}

func (r *facilityRepository) Create(ctx context.Context, facility *entity.Facility) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[facility.ID]; exists {
		return fmt.Errorf("facility %s already exists: %w", facility.ID, errs.ErrInvalidInput)
	}

	r.items = append(r.items, facility)
	r.byID[facility.ID] = facility
	return nil
}

func (r *facilityRepository) FindByID(ctx context.Context, id string) (*entity.Facility, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	facility, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return facility, nil
}

func (r *facilityRepository) FindAll(ctx context.Context) ([]*entity.Facility, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Facility, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *facilityRepository) Search(ctx context.Context, filter FacilityFilter) ([]*entity.Facility, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.Facility
	for _, f := range r.items {
		if matchesFilter(f, filter) {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *facilityRepository) TopRated(ctx context.Context, limit int) ([]*entity.Facility, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Facility, len(r.items))
	copy(out, r.items)

	// Stable sort keeps catalog order for rating ties
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rating > out[j].Rating
	})

	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *facilityRepository) Update(ctx context.Context, facility *entity.Facility) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[facility.ID]
	if !ok {
		return fmt.Errorf("facility %s: %w", facility.ID, errs.ErrNotFound)
	}

	*existing = *facility
	return nil
}

// matchesFilter applies every set criterion as an AND filter.
func matchesFilter(f *entity.Facility, filter FacilityFilter) bool {
	if filter.Sport != "" {
		found := false
		for _, sport := range f.Sports {
			if strings.Contains(strings.ToLower(sport), strings.ToLower(filter.Sport)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if filter.MinPrice > 0 && f.PricePerHour < filter.MinPrice {
		return false
	}
	if filter.MaxPrice > 0 && f.PricePerHour > filter.MaxPrice {
		return false
	}

	if filter.MinRating > 0 && f.Rating < filter.MinRating {
		return false
	}

	if filter.Query != "" {
		fields := append([]string{f.Name, f.Location}, f.Sports...)
		fields = append(fields, f.Facilities...)
		haystack := strings.ToLower(strings.Join(fields, " "))
		if !strings.Contains(haystack, strings.ToLower(filter.Query)) {
			return false
		}
	}

	return true
}
