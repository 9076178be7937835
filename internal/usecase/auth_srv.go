package usecase

import (
	"context"
	"fmt"
	"time"

	"turf-booking/internal/data/entity"
	"turf-booking/internal/data/repository"
	"turf-booking/internal/dto/request"
	"turf-booking/internal/dto/response"
	"turf-booking/pkg/errs"
	"turf-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, userID string) (*response.AuthResponse, error)

	// Manager directory (admin)
	CreateManager(ctx context.Context, req *request.CreateManagerRequest) (*response.ManagerResponse, error)
	ListManagers(ctx context.Context) ([]*response.ManagerResponse, error)
	ManagerByFacility(ctx context.Context, facilityID string) (*response.ManagerResponse, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errors := utils.ValidateStruct(req); len(errors) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errors))
		return nil, fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errors), errs.ErrInvalidInput)
	}

	// 2. Simulated network latency, single suspension point
	if err := sleepCtx(ctx, time.Duration(s.config.Auth.LoginDelayMs)*time.Millisecond); err != nil {
		return nil, err
	}

	// 3. Demo identity table
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check identity table", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check identity table: %w", err)
	}
	if user != nil && utils.CheckPassword(user.PasswordHash, req.Password) {
		return s.startSession(ctx, user)
	}

	// 4. Turf manager directory
	manager, err := s.repo.Manager.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check manager directory", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check manager directory: %w", err)
	}
	if manager != nil && utils.CheckPassword(manager.PasswordHash, req.Password) {
		return s.startSession(ctx, &entity.User{
			ID:                manager.ID,
			Name:              manager.Name,
			Email:             manager.Email,
			Role:              entity.RoleManager,
			Avatar:            "🏢",
			ManagedFacilityID: manager.ManagedFacilityID,
		})
	}

	s.log.Warn("Login failed", zap.String("email", req.Email))
	return nil, fmt.Errorf("invalid credentials: %w", errs.ErrAuthenticationFailed)
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.repo.Session.Revoke(ctx, token); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("revoke session: %w", err)
	}

	s.log.Info("Session revoked")
	return nil
}

func (s *authService) Me(ctx context.Context, userID string) (*response.AuthResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user %s: %w", userID, err)
	}
	if user != nil {
		return response.AuthToResponse(user, nil), nil
	}

	manager, err := s.repo.Manager.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find manager %s: %w", userID, err)
	}
	if manager != nil {
		return response.AuthToResponse(&entity.User{
			ID:                manager.ID,
			Name:              manager.Name,
			Email:             manager.Email,
			Role:              entity.RoleManager,
			Avatar:            "🏢",
			ManagedFacilityID: manager.ManagedFacilityID,
		}, nil), nil
	}

	return nil, fmt.Errorf("identity %s: %w", userID, errs.ErrNotFound)
}

// ==================== MANAGER DIRECTORY ====================

func (s *authService) CreateManager(ctx context.Context, req *request.CreateManagerRequest) (*response.ManagerResponse, error) {
	if errors := utils.ValidateStruct(req); len(errors) > 0 {
		s.log.Warn("Create manager validation failed", zap.Any("errors", errors))
		return nil, fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errors), errs.ErrInvalidInput)
	}

	facility, err := s.repo.Facility.FindByID(ctx, req.FacilityID)
	if err != nil {
		return nil, fmt.Errorf("find facility %s: %w", req.FacilityID, err)
	}
	if facility == nil {
		return nil, fmt.Errorf("facility %s: %w", req.FacilityID, errs.ErrNotFound)
	}

	existing, err := s.repo.Manager.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check manager email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("email %s already registered: %w", req.Email, errs.ErrInvalidInput)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash manager password", zap.Error(err))
		return nil, fmt.Errorf("process password: %w", err)
	}

	manager := &entity.ManagerAccount{
		ID:                utils.GenerateUUIDString(),
		Name:              req.Name,
		Email:             req.Email,
		PasswordHash:      hash,
		ManagedFacilityID: facility.ID,
		FacilityName:      facility.Name,
		CreatedAt:         time.Now(),
	}

	if err := s.repo.Manager.Create(ctx, manager); err != nil {
		s.log.Error("Failed to create manager account",
			zap.Error(err),
			zap.String("email", req.Email),
		)
		return nil, fmt.Errorf("create manager account: %w", err)
	}

	s.log.Info("Manager account created",
		zap.String("manager_id", manager.ID),
		zap.String("facility_id", facility.ID),
	)

	return response.ManagerToResponse(manager), nil
}

func (s *authService) ListManagers(ctx context.Context) ([]*response.ManagerResponse, error) {
	managers, err := s.repo.Manager.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list managers: %w", err)
	}

	out := make([]*response.ManagerResponse, len(managers))
	for i, m := range managers {
		out[i] = response.ManagerToResponse(m)
	}
	return out, nil
}

func (s *authService) ManagerByFacility(ctx context.Context, facilityID string) (*response.ManagerResponse, error) {
	manager, err := s.repo.Manager.FindByFacilityID(ctx, facilityID)
	if err != nil {
		return nil, fmt.Errorf("find manager for facility %s: %w", facilityID, err)
	}
	if manager == nil {
		return nil, fmt.Errorf("manager for facility %s: %w", facilityID, errs.ErrNotFound)
	}
	return response.ManagerToResponse(manager), nil
}

// ==================== HELPERS ====================

func (s *authService) startSession(ctx context.Context, user *entity.User) (*response.AuthResponse, error) {
	now := time.Now()
	session := &entity.Session{
		Token:             utils.GenerateSessionToken(),
		UserID:            user.ID,
		Role:              user.Role,
		ManagedFacilityID: user.ManagedFacilityID,
		CreatedAt:         now,
		ExpiresAt:         now.Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		s.log.Error("Failed to create session",
			zap.Error(err),
			zap.String("user_id", user.ID),
		)
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)

	return response.AuthToResponse(user, session), nil
}

// sleepCtx waits for d or until ctx is cancelled, whichever comes first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
