package repository

import (
	"context"
	"strings"
	"sync"

	"turf-booking/internal/data/entity"

	"go.uber.org/zap"
)

// UserRepository holds the fixed demo identity table. There is no real
// registration flow; turf managers live in their own directory.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

type userRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*entity.User
	byID    map[string]*entity.User
	log     *zap.Logger
}

func NewUserRepository(users []*entity.User, log *zap.Logger) UserRepository {
	r := &userRepository{
		byEmail: make(map[string]*entity.User),
		byID:    make(map[string]*entity.User),
		log:     log.With(zap.String("repository", "user")),
	}
	for _, u := range users {
		r.byEmail[strings.ToLower(u.Email)] = u
		r.byID[u.ID] = u
	}
	return r
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return user, nil
}
