package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"turf-booking/internal/data/entity"
	"turf-booking/internal/data/repository"
	"turf-booking/internal/dto/request"
	"turf-booking/internal/dto/response"
	"turf-booking/pkg/errs"
	"turf-booking/pkg/utils"

	"go.uber.org/zap"
)

const featuredCount = 4

type CatalogService interface {
	ListFacilities(ctx context.Context) ([]*response.FacilityResponse, error)
	GetFacilityByID(ctx context.Context, id string) (*response.FacilityResponse, error)
	Search(ctx context.Context, req *request.SearchFacilitiesRequest) ([]*response.FacilityResponse, error)
	TopRated(ctx context.Context, limit int) ([]*response.FacilityResponse, error)
	Featured(ctx context.Context) ([]*response.FacilityResponse, error)
	ByCategory(ctx context.Context, category string) ([]*response.FacilityResponse, error)

	// Admin catalog management
	CreateFacility(ctx context.Context, req *request.FacilityRequest) (*response.FacilityResponse, error)
	UpdateFacility(ctx context.Context, id string, req *request.FacilityUpdateRequest) (*response.FacilityResponse, error)

	// Manager surface
	UpdateImages(ctx context.Context, facilityID string, req *request.UpdateImagesRequest) (*response.FacilityResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListFacilities(ctx context.Context) ([]*response.FacilityResponse, error) {
	facilities, err := s.repo.Facility.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list facilities: %w", err)
	}
	return response.FacilitiesToResponse(facilities), nil
}

func (s *catalogService) GetFacilityByID(ctx context.Context, id string) (*response.FacilityResponse, error) {
	facility, err := s.repo.Facility.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find facility %s: %w", id, err)
	}
	if facility == nil {
		return nil, fmt.Errorf("facility %s: %w", id, errs.ErrNotFound)
	}
	return response.FacilityToResponse(facility), nil
}

func (s *catalogService) Search(ctx context.Context, req *request.SearchFacilitiesRequest) ([]*response.FacilityResponse, error) {
	filter := repository.FacilityFilter{
		Sport:     req.Sport,
		MinRating: req.MinRating,
		MinPrice:  req.MinPrice,
		MaxPrice:  req.MaxPrice,
		Query:     req.Query,
	}

	facilities, err := s.repo.Facility.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search facilities: %w", err)
	}
	return response.FacilitiesToResponse(facilities), nil
}

func (s *catalogService) TopRated(ctx context.Context, limit int) ([]*response.FacilityResponse, error) {
	facilities, err := s.repo.Facility.TopRated(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("top rated facilities: %w", err)
	}
	return response.FacilitiesToResponse(facilities), nil
}

// Featured returns the leading slice of the catalog in insertion order.
func (s *catalogService) Featured(ctx context.Context) ([]*response.FacilityResponse, error) {
	facilities, err := s.repo.Facility.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("featured facilities: %w", err)
	}
	if len(facilities) > featuredCount {
		facilities = facilities[:featuredCount]
	}
	return response.FacilitiesToResponse(facilities), nil
}

func (s *catalogService) ByCategory(ctx context.Context, category string) ([]*response.FacilityResponse, error) {
	switch strings.ToLower(category) {
	case "top-rated":
		return s.TopRated(ctx, featuredCount)
	case "nearby":
		facilities, err := s.repo.Facility.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("nearby facilities: %w", err)
		}
		var nearby []*entity.Facility
		for _, f := range facilities {
			if strings.Contains(strings.ToLower(f.Location), "kolhapur") {
				nearby = append(nearby, f)
			}
		}
		return response.FacilitiesToResponse(nearby), nil
	case "recently-added":
		facilities, err := s.repo.Facility.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("recently added facilities: %w", err)
		}
		if len(facilities) > featuredCount {
			facilities = facilities[len(facilities)-featuredCount:]
		}
		return response.FacilitiesToResponse(facilities), nil
	default:
		return nil, fmt.Errorf("unknown category %q: %w", category, errs.ErrInvalidInput)
	}
}

// ==================== ADMIN ====================

func (s *catalogService) CreateFacility(ctx context.Context, req *request.FacilityRequest) (*response.FacilityResponse, error) {
	if errors := utils.ValidateStruct(req); len(errors) > 0 {
		s.log.Warn("Create facility validation failed", zap.Any("errors", errors))
		return nil, fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errors), errs.ErrInvalidInput)
	}

	facility := &entity.Facility{
		ID:           utils.GenerateUUIDString(),
		Name:         req.Name,
		Location:     req.Location,
		PricePerHour: req.PricePerHour,
		Sports:       req.Sports,
		Facilities:   req.Facilities,
		Images:       req.Images,
		IsAvailable:  true,
		Description:  req.Description,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Facility.Create(ctx, facility); err != nil {
		s.log.Error("Failed to create facility", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create facility: %w", err)
	}

	s.log.Info("Facility created",
		zap.String("facility_id", facility.ID),
		zap.String("name", facility.Name),
	)

	return response.FacilityToResponse(facility), nil
}

func (s *catalogService) UpdateFacility(ctx context.Context, id string, req *request.FacilityUpdateRequest) (*response.FacilityResponse, error) {
	if errors := utils.ValidateStruct(req); len(errors) > 0 {
		return nil, fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errors), errs.ErrInvalidInput)
	}

	facility, err := s.repo.Facility.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find facility %s: %w", id, err)
	}
	if facility == nil {
		return nil, fmt.Errorf("facility %s: %w", id, errs.ErrNotFound)
	}

	if req.Name != nil {
		facility.Name = *req.Name
	}
	if req.Location != nil {
		facility.Location = *req.Location
	}
	if req.PricePerHour != nil {
		if *req.PricePerHour <= 0 {
			return nil, fmt.Errorf("price per hour must be positive: %w", errs.ErrInvalidInput)
		}
		facility.PricePerHour = *req.PricePerHour
	}
	if req.Rating != nil {
		facility.Rating = *req.Rating
	}
	if req.Sports != nil {
		facility.Sports = req.Sports
	}
	if req.Facilities != nil {
		facility.Facilities = req.Facilities
	}
	if req.Images != nil {
		facility.Images = req.Images
	}
	if req.Description != nil {
		facility.Description = *req.Description
	}
	if req.IsAvailable != nil {
		facility.IsAvailable = *req.IsAvailable
	}

	if err := s.repo.Facility.Update(ctx, facility); err != nil {
		s.log.Error("Failed to update facility", zap.Error(err), zap.String("facility_id", id))
		return nil, fmt.Errorf("update facility %s: %w", id, err)
	}

	s.log.Info("Facility updated", zap.String("facility_id", id))
	return response.FacilityToResponse(facility), nil
}

// ==================== MANAGER ====================

func (s *catalogService) UpdateImages(ctx context.Context, facilityID string, req *request.UpdateImagesRequest) (*response.FacilityResponse, error) {
	if errors := utils.ValidateStruct(req); len(errors) > 0 {
		return nil, fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errors), errs.ErrInvalidInput)
	}

	facility, err := s.repo.Facility.FindByID(ctx, facilityID)
	if err != nil {
		return nil, fmt.Errorf("find facility %s: %w", facilityID, err)
	}
	if facility == nil {
		return nil, fmt.Errorf("facility %s: %w", facilityID, errs.ErrNotFound)
	}

	facility.Images = req.Images
	if err := s.repo.Facility.Update(ctx, facility); err != nil {
		s.log.Error("Failed to update facility images",
			zap.Error(err),
			zap.String("facility_id", facilityID),
		)
		return nil, fmt.Errorf("update facility images: %w", err)
	}

	s.log.Info("Facility images updated",
		zap.String("facility_id", facilityID),
		zap.Int("image_count", len(req.Images)),
	)

	return response.FacilityToResponse(facility), nil
}
