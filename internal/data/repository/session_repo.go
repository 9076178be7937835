package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"turf-booking/internal/data/entity"
	"turf-booking/pkg/storage"

	"go.uber.org/zap"
)

const sessionsCollection = "galli2ground_user"

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindValidSession(ctx context.Context, token string) (*entity.Session, error)
	Revoke(ctx context.Context, token string) error
	CleanExpired(ctx context.Context) error
}

type sessionRepository struct {
	mu       sync.RWMutex
	store    storage.Store
	sessions map[string]*entity.Session // keyed by token string
	log      *zap.Logger
}

func NewSessionRepository(store storage.Store, log *zap.Logger) SessionRepository {
	r := &sessionRepository{
		store:    store,
		sessions: make(map[string]*entity.Session),
		log:      log.With(zap.String("repository", "session")),
	}

	var persisted []*entity.Session
	found, err := store.Get(sessionsCollection, &persisted)
	if err != nil {
		r.log.Warn("Failed to load persisted sessions, starting empty", zap.Error(err))
		return r
	}
	if found {
		for _, s := range persisted {
			r.sessions[s.Token.String()] = s
		}
	}

	return r
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.Token.String()] = session

	if err := r.persistLocked(); err != nil {
		r.log.Error("Failed to persist session",
			zap.Error(err),
			zap.String("user_id", session.UserID),
		)
		return fmt.Errorf("persist session: %w", err)
	}

	return nil
}

func (r *sessionRepository) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[token]
	if !ok || !session.Valid(time.Now()) {
		return nil, nil
	}
	return session, nil
}

func (r *sessionRepository) Revoke(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[token]
	if !ok {
		return nil
	}

	now := time.Now()
	session.RevokedAt = &now

	if err := r.persistLocked(); err != nil {
		r.log.Error("Failed to persist session revocation", zap.Error(err))
		return fmt.Errorf("persist session revocation: %w", err)
	}

	return nil
}

func (r *sessionRepository) CleanExpired(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for token, session := range r.sessions {
		if !session.Valid(now) {
			delete(r.sessions, token)
		}
	}

	return r.persistLocked()
}

func (r *sessionRepository) persistLocked() error {
	out := make([]*entity.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s)
	}
	return r.store.Put(sessionsCollection, out)
}
