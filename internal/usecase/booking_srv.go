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

const (
	bookingDateLayout = "2006-01-02"

	// bookingIDAttempts bounds the retry loop on reference collisions.
	bookingIDAttempts = 5
)

type BookingService interface {
	// Slot ledger surface
	GetSlotGrid(ctx context.Context, facilityID, date string) (*response.SlotGridResponse, error)
	ReserveSlot(ctx context.Context, facilityID, date, timeLabel string) (*response.ReserveSlotResponse, error)

	// Booking ledger surface
	CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBookingByID(ctx context.Context, id string, caller Caller) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	CancelBooking(ctx context.Context, id, userID string, role entity.UserRole) (*response.BookingResponse, error)
	ProcessPayment(ctx context.Context, userID string, req *request.ProcessPaymentRequest) (*response.BookingResponse, error)

	// Back-office surface
	ListAllBookings(ctx context.Context) ([]response.BookingResponse, error)
	ListFacilityBookings(ctx context.Context, facilityID string) ([]response.BookingResponse, error)
	Transition(ctx context.Context, id string, target entity.BookingStatus) (*response.BookingResponse, error)
}

type bookingService struct {
	repo    *repository.Repository
	pricing *PricingEngine
	config  *utils.Config
	log     *zap.Logger
}

func NewBookingService(repo *repository.Repository, pricing *PricingEngine, config *utils.Config, log *zap.Logger) BookingService {
	return &bookingService{
		repo:    repo,
		pricing: pricing,
		config:  config,
		log:     log.With(zap.String("service", "booking")),
	}
}

// ==================== SLOT LEDGER ====================

func (s *bookingService) GetSlotGrid(ctx context.Context, facilityID, date string) (*response.SlotGridResponse, error) {
	if _, err := s.facilityForBooking(ctx, facilityID); err != nil {
		return nil, err
	}

	day, err := parseBookingDate(date)
	if err != nil {
		return nil, err
	}

	grid, err := s.repo.Slot.DayGrid(ctx, facilityID, day)
	if err != nil {
		return nil, fmt.Errorf("slot grid for facility %s: %w", facilityID, err)
	}

	return &response.SlotGridResponse{
		FacilityID: facilityID,
		Date:       date,
		Slots:      grid,
	}, nil
}

func (s *bookingService) ReserveSlot(ctx context.Context, facilityID, date, timeLabel string) (*response.ReserveSlotResponse, error) {
	if _, err := s.facilityForBooking(ctx, facilityID); err != nil {
		return nil, err
	}

	day, err := parseBookingDate(date)
	if err != nil {
		return nil, err
	}

	reserved, err := s.repo.Slot.Reserve(ctx, facilityID, day, timeLabel)
	if err != nil {
		return nil, fmt.Errorf("reserve slot: %w", err)
	}

	status, err := s.repo.Slot.GetStatus(ctx, facilityID, day, timeLabel)
	if err != nil {
		return nil, fmt.Errorf("slot status: %w", err)
	}

	return &response.ReserveSlotResponse{
		FacilityID: facilityID,
		Date:       date,
		Time:       timeLabel,
		Reserved:   reserved,
		Status:     status,
	}, nil
}

// ==================== BOOKING LEDGER ====================

func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// 1. Validate input
	if errors := utils.ValidateStruct(req); len(errors) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errors))
		return nil, fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errors), errs.ErrInvalidInput)
	}

	day, err := parseBookingDate(req.Date)
	if err != nil {
		return nil, err
	}

	// 2. Facility must exist and be open for booking
	facility, err := s.facilityForBooking(ctx, req.FacilityID)
	if err != nil {
		return nil, err
	}

	// 3. Resolve promo; an unknown or inactive code simply yields no discount
	var promo *entity.PromoCode
	if code := strings.TrimSpace(req.PromoCode); code != "" {
		promo, err = s.repo.Promo.FindActive(ctx, code, time.Now())
		if err != nil {
			return nil, fmt.Errorf("resolve promo code: %w", err)
		}
	}

	quote, err := s.pricing.Quote(facility.PricePerHour, len(req.Slots), promo)
	if err != nil {
		return nil, fmt.Errorf("price booking: %w", err)
	}

	// 4. Reserve every requested slot; roll back the ones already taken if
	// any reservation fails, so a partial booking never survives.
	var reserved []string
	for _, slot := range req.Slots {
		ok, err := s.repo.Slot.Reserve(ctx, req.FacilityID, day, slot)
		if err == nil && !ok {
			err = fmt.Errorf("slot %q on %s is taken: %w", slot, req.Date, errs.ErrSlotUnavailable)
		}
		if err != nil {
			s.releaseSlots(ctx, req.FacilityID, day, reserved)
			return nil, err
		}
		reserved = append(reserved, slot)
	}

	status := entity.BookingStatusPending
	if req.Confirm {
		status = entity.BookingStatusConfirmed
	}

	now := time.Now()
	booking := &entity.Booking{
		FacilityID:      facility.ID,
		FacilityName:    facility.Name,
		Location:        facility.Location,
		Date:            day,
		Slots:           req.Slots,
		CustomerName:    req.CustomerName,
		Phone:           req.Phone,
		Email:           req.Email,
		PaymentMethod:   req.PaymentMethod,
		PromoCode:       quote.PromoCode,
		Subtotal:        quote.Subtotal,
		Discount:        quote.Discount,
		TotalAmount:     quote.TotalAmount,
		BookingFee:      quote.BookingFee,
		RemainingAmount: quote.RemainingAmount,
		Status:          status,
		UserID:          userID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// 5. Persist under a collision-checked reference
	if err := s.createWithUniqueID(ctx, booking); err != nil {
		s.releaseSlots(ctx, req.FacilityID, day, reserved)
		return nil, err
	}

	if promo != nil {
		if err := s.repo.Promo.IncrementUsage(ctx, promo.Code); err != nil {
			s.log.Warn("Failed to count promo usage", zap.Error(err), zap.String("code", promo.Code))
		}
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID),
		zap.String("facility_id", facility.ID),
		zap.String("user_id", userID),
		zap.Int("slots", len(req.Slots)),
		zap.String("status", string(status)),
	)

	resp := response.BookingToResponse(booking, nil)
	return &resp, nil
}

// Caller identifies who is asking, so record-level authorization can be
// decided next to the data it guards.
type Caller struct {
	UserID            string
	Role              entity.UserRole
	ManagedFacilityID string
}

func (c Caller) canSee(b *entity.Booking) bool {
	switch c.Role {
	case entity.RoleAdmin:
		return true
	case entity.RoleManager:
		return c.ManagedFacilityID == b.FacilityID
	default:
		return c.UserID == b.UserID
	}
}

func (s *bookingService) GetBookingByID(ctx context.Context, id string, caller Caller) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking %s: %w", id, err)
	}
	if booking == nil || !caller.canSee(booking) {
		return nil, fmt.Errorf("booking %s: %w", id, errs.ErrNotFound)
	}

	payment, err := s.repo.Payment.FindByBookingID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find payment for booking %s: %w", id, err)
	}

	resp := response.BookingToResponse(booking, payment)
	return &resp, nil
}

// GetUserBookings lists the caller's own bookings only, newest page math
// applied over the insertion-ordered ledger.
func (s *bookingService) GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list user bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count user bookings: %w", err)
	}

	return response.NewPaginatedResponse(s.toResponses(ctx, bookings), req.Page, req.PerPage, total), nil
}

func (s *bookingService) CancelBooking(ctx context.Context, id, userID string, role entity.UserRole) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking %s: %w", id, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", id, errs.ErrNotFound)
	}

	if role != entity.RoleAdmin && booking.UserID != userID {
		return nil, fmt.Errorf("booking %s: %w", id, errs.ErrNotFound)
	}

	return s.transition(ctx, booking, entity.BookingStatusCancelled)
}

// ProcessPayment collects the booking fee through the simulated gateway and
// confirms the booking on success.
func (s *bookingService) ProcessPayment(ctx context.Context, userID string, req *request.ProcessPaymentRequest) (*response.BookingResponse, error) {
	if errors := utils.ValidateStruct(req); len(errors) > 0 {
		return nil, fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errors), errs.ErrInvalidInput)
	}

	booking, err := s.repo.Booking.FindByID(ctx, req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking %s: %w", req.BookingID, err)
	}
	if booking == nil || booking.UserID != userID {
		return nil, fmt.Errorf("booking %s: %w", req.BookingID, errs.ErrNotFound)
	}

	if booking.Status != entity.BookingStatusPending {
		return nil, fmt.Errorf("booking %s is %s, not payable: %w", booking.ID, booking.Status, errs.ErrInvalidTransition)
	}
	if req.Amount != booking.BookingFee {
		return nil, fmt.Errorf("amount %d does not match booking fee %d: %w", req.Amount, booking.BookingFee, errs.ErrInvalidInput)
	}

	if err := s.chargeGateway(ctx, booking); err != nil {
		return nil, err
	}

	payment := &entity.Payment{
		ID:        utils.GenerateUUIDString(),
		BookingID: booking.ID,
		Method:    booking.PaymentMethod,
		Amount:    booking.BookingFee,
		Status:    entity.PaymentStatusCompleted,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	resp, err := s.transition(ctx, booking, entity.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}
	resp.Payment = response.PaymentToResponse(payment)

	s.log.Info("Payment completed",
		zap.String("booking_id", booking.ID),
		zap.String("method", booking.PaymentMethod),
		zap.Int("amount", payment.Amount),
	)

	return resp, nil
}

// ==================== BACK OFFICE ====================

func (s *bookingService) ListAllBookings(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return s.toResponses(ctx, bookings), nil
}

func (s *bookingService) ListFacilityBookings(ctx context.Context, facilityID string) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByFacilityID(ctx, facilityID)
	if err != nil {
		return nil, fmt.Errorf("list facility bookings: %w", err)
	}
	return s.toResponses(ctx, bookings), nil
}

// Transition moves a booking to target when the status machine allows it;
// illegal moves leave the record untouched.
func (s *bookingService) Transition(ctx context.Context, id string, target entity.BookingStatus) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking %s: %w", id, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", id, errs.ErrNotFound)
	}
	return s.transition(ctx, booking, target)
}

// ==================== HELPERS ====================

func (s *bookingService) transition(ctx context.Context, booking *entity.Booking, target entity.BookingStatus) (*response.BookingResponse, error) {
	if !booking.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("booking %s: %s -> %s: %w", booking.ID, booking.Status, target, errs.ErrInvalidTransition)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, target); err != nil {
		return nil, fmt.Errorf("update booking %s status: %w", booking.ID, err)
	}
	booking.Status = target
	booking.UpdatedAt = time.Now()

	s.log.Info("Booking status changed",
		zap.String("booking_id", booking.ID),
		zap.String("status", string(target)),
	)

	resp := response.BookingToResponse(booking, nil)
	return &resp, nil
}

func (s *bookingService) facilityForBooking(ctx context.Context, facilityID string) (*entity.Facility, error) {
	facility, err := s.repo.Facility.FindByID(ctx, facilityID)
	if err != nil {
		return nil, fmt.Errorf("find facility %s: %w", facilityID, err)
	}
	if facility == nil {
		return nil, fmt.Errorf("facility %s: %w", facilityID, errs.ErrNotFound)
	}
	if !facility.IsAvailable {
		return nil, fmt.Errorf("facility %s is closed for booking: %w", facilityID, errs.ErrSlotUnavailable)
	}
	return facility, nil
}

func (s *bookingService) createWithUniqueID(ctx context.Context, booking *entity.Booking) error {
	for attempt := 0; attempt < bookingIDAttempts; attempt++ {
		id := utils.GenerateBookingID()
		existing, err := s.repo.Booking.FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("check booking reference: %w", err)
		}
		if existing != nil {
			continue
		}

		booking.ID = id
		if err := s.repo.Booking.Create(ctx, booking); err != nil {
			return fmt.Errorf("create booking: %w", err)
		}
		return nil
	}
	return fmt.Errorf("could not allocate a booking reference after %d attempts", bookingIDAttempts)
}

func (s *bookingService) releaseSlots(ctx context.Context, facilityID string, day time.Time, slots []string) {
	for _, slot := range slots {
		if err := s.repo.Slot.Release(ctx, facilityID, day, slot); err != nil {
			s.log.Error("Failed to release slot after rollback",
				zap.Error(err),
				zap.String("facility_id", facilityID),
				zap.String("time", slot),
			)
		}
	}
}

// chargeGateway runs the simulated payment provider with bounded retries.
func (s *bookingService) chargeGateway(ctx context.Context, booking *entity.Booking) error {
	delay := time.Duration(s.config.Payment.DelayMs) * time.Millisecond
	attempts := s.config.Payment.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := sleepCtx(ctx, delay); err != nil {
			return err
		}

		if err := simulateCharge(booking); err != nil {
			lastErr = err
			s.log.Warn("Payment attempt failed",
				zap.String("booking_id", booking.ID),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			continue
		}
		return nil
	}

	return fmt.Errorf("payment declined after %d attempts: %w", attempts, lastErr)
}

// simulateCharge stands in for a real provider. Cash collections cannot be
// taken online, everything else succeeds.
func simulateCharge(booking *entity.Booking) error {
	if booking.PaymentMethod == "cash" {
		return fmt.Errorf("method cash must be settled at the venue")
	}
	return nil
}

func parseBookingDate(date string) (time.Time, error) {
	day, err := time.Parse(bookingDateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q must be YYYY-MM-DD: %w", date, errs.ErrInvalidInput)
	}
	return day, nil
}

func (s *bookingService) toResponses(ctx context.Context, bookings []*entity.Booking) []response.BookingResponse {
	out := make([]response.BookingResponse, len(bookings))
	for i, b := range bookings {
		payment, err := s.repo.Payment.FindByBookingID(ctx, b.ID)
		if err != nil {
			s.log.Warn("Failed to attach payment", zap.Error(err), zap.String("booking_id", b.ID))
		}
		out[i] = response.BookingToResponse(b, payment)
	}
	return out
}
