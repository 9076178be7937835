package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"turf-booking/internal/data/entity"
	"turf-booking/pkg/errs"
	"turf-booking/pkg/storage"

	"go.uber.org/zap"
)

const managersCollection = "galli2ground_turf_managers"

type ManagerRepository interface {
	Create(ctx context.Context, manager *entity.ManagerAccount) error
	FindByID(ctx context.Context, id string) (*entity.ManagerAccount, error)
	FindByEmail(ctx context.Context, email string) (*entity.ManagerAccount, error)
	FindByFacilityID(ctx context.Context, facilityID string) (*entity.ManagerAccount, error)
	FindAll(ctx context.Context) ([]*entity.ManagerAccount, error)
}

type managerRepository struct {
	mu    sync.RWMutex
	store storage.Store
	items []*entity.ManagerAccount
	log   *zap.Logger
}

func NewManagerRepository(store storage.Store, log *zap.Logger) ManagerRepository {
	r := &managerRepository{
		store: store,
		log:   log.With(zap.String("repository", "manager")),
	}

	var persisted []*entity.ManagerAccount
	found, err := store.Get(managersCollection, &persisted)
	if err != nil {
		r.log.Warn("Failed to load persisted managers, starting empty", zap.Error(err))
		return r
	}
	if found {
		r.items = persisted
	}

	return r
}

func (r *managerRepository) Create(ctx context.Context, manager *entity.ManagerAccount) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.items {
		if strings.EqualFold(m.Email, manager.Email) {
			return fmt.Errorf("manager email %s already registered: %w", manager.Email, errs.ErrInvalidInput)
		}
	}

	r.items = append(r.items, manager)

	if err := r.store.Put(managersCollection, r.items); err != nil {
		r.log.Error("Failed to persist manager account",
			zap.Error(err),
			zap.String("email", manager.Email),
		)
		return fmt.Errorf("persist manager account: %w", err)
	}

	return nil
}

func (r *managerRepository) FindByID(ctx context.Context, id string) (*entity.ManagerAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.items {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *managerRepository) FindByEmail(ctx context.Context, email string) (*entity.ManagerAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.items {
		if strings.EqualFold(m.Email, email) {
			return m, nil
		}
	}
	return nil, nil
}

func (r *managerRepository) FindByFacilityID(ctx context.Context, facilityID string) (*entity.ManagerAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.items {
		if m.ManagedFacilityID == facilityID {
			return m, nil
		}
	}
	return nil, nil
}

func (r *managerRepository) FindAll(ctx context.Context) ([]*entity.ManagerAccount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.ManagerAccount, len(r.items))
	copy(out, r.items)
	return out, nil
}
