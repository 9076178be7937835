package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"turf-booking/internal/data/entity"
	"turf-booking/internal/data/repository"
	"turf-booking/internal/dto/request"
	"turf-booking/pkg/errs"
	"turf-booking/pkg/storage"
	"turf-booking/pkg/utils"

	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*Service, *repository.Repository) {
	t.Helper()

	store, err := storage.InitStore(utils.StoreConfig{})
	if err != nil {
		t.Fatalf("InitStore error: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	config := &utils.Config{
		Booking: utils.BookingConfig{Fee: 100},
		Session: utils.SessionConfig{ExpiryHours: 24},
		Slots:   utils.SlotConfig{Policy: "blackout"},
		Payment: utils.PaymentConfig{DelayMs: 0, MaxAttempts: 2},
		Auth:    utils.AuthConfig{LoginDelayMs: 0},
	}

	repo := repository.NewRepository(store, config, zap.NewNop())
	return NewService(repo, config, zap.NewNop()), repo
}

func testDate() string {
	return time.Now().AddDate(0, 0, 1).Format("2006-01-02")
}

func newBookingRequest() *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		FacilityID:    "1",
		Date:          testDate(),
		Slots:         []string{"6:00 PM", "7:00 PM"},
		CustomerName:  "Rahul Patil",
		Phone:         "9876543210",
		Email:         "rahul@example.com",
		PaymentMethod: "upi",
	}
}

func TestCreateBooking(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	booking, err := svc.Booking.CreateBooking(ctx, "3", newBookingRequest())
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}

	if !strings.HasPrefix(booking.ID, "BMT") || len(booking.ID) != 9 {
		t.Errorf("booking id = %q, want BMT + 6 digits", booking.ID)
	}
	if booking.Status != entity.BookingStatusPending {
		t.Errorf("status = %s, want pending", booking.Status)
	}

	// Facility 1 charges 1200/hour, two slots, no promo
	if booking.Subtotal != 2400 || booking.TotalAmount != 2400 {
		t.Errorf("subtotal/total = %d/%d, want 2400/2400", booking.Subtotal, booking.TotalAmount)
	}
	if booking.BookingFee != 100 || booking.RemainingAmount != 2300 {
		t.Errorf("fee/remaining = %d/%d, want 100/2300", booking.BookingFee, booking.RemainingAmount)
	}

	// Both slots must now be booked in the ledger
	day, _ := time.Parse("2006-01-02", testDate())
	for _, label := range []string{"6:00 PM", "7:00 PM"} {
		status, err := repo.Slot.GetStatus(ctx, "1", day, label)
		if err != nil {
			t.Fatalf("GetStatus error: %v", err)
		}
		if status != entity.SlotStatusBooked {
			t.Errorf("slot %q = %s, want booked", label, status)
		}
	}
}

func TestCreateBookingWithPromo(t *testing.T) {
	svc, _ := newTestService(t)

	req := newBookingRequest()
	req.PromoCode = "GALLI10"

	booking, err := svc.Booking.CreateBooking(context.Background(), "3", req)
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}

	if booking.Discount != 240 {
		t.Errorf("discount = %d, want 240", booking.Discount)
	}
	if booking.TotalAmount != 2160 {
		t.Errorf("total = %d, want 2160", booking.TotalAmount)
	}
	if booking.PromoCode != "GALLI10" {
		t.Errorf("promo code = %q, want GALLI10", booking.PromoCode)
	}
}

// An unknown promo code is not an error, it just earns no discount.
func TestCreateBookingUnknownPromo(t *testing.T) {
	svc, _ := newTestService(t)

	req := newBookingRequest()
	req.PromoCode = "NOSUCHCODE"

	booking, err := svc.Booking.CreateBooking(context.Background(), "3", req)
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}
	if booking.Discount != 0 {
		t.Errorf("discount = %d, want 0", booking.Discount)
	}
	if booking.PromoCode != "" {
		t.Errorf("promo code = %q, want empty", booking.PromoCode)
	}
}

func TestCreateBookingConfirmDirectly(t *testing.T) {
	svc, _ := newTestService(t)

	req := newBookingRequest()
	req.Confirm = true

	booking, err := svc.Booking.CreateBooking(context.Background(), "3", req)
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}
	if booking.Status != entity.BookingStatusConfirmed {
		t.Errorf("status = %s, want confirmed", booking.Status)
	}
}

// When one requested slot is taken, no slot of the request stays reserved.
func TestCreateBookingRollsBackOnConflict(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	day, _ := time.Parse("2006-01-02", testDate())

	// Occupy the second slot up front
	if _, err := repo.Slot.Reserve(ctx, "1", day, "7:00 PM"); err != nil {
		t.Fatalf("Reserve error: %v", err)
	}

	_, err := svc.Booking.CreateBooking(ctx, "3", newBookingRequest())
	if !errors.Is(err, errs.ErrSlotUnavailable) {
		t.Fatalf("CreateBooking: got %v, want ErrSlotUnavailable", err)
	}

	// The first slot was reserved during the attempt and must be released
	status, err := repo.Slot.GetStatus(ctx, "1", day, "6:00 PM")
	if err != nil {
		t.Fatalf("GetStatus error: %v", err)
	}
	if status != entity.SlotStatusAvailable {
		t.Errorf("slot 6:00 PM = %s, want available after rollback", status)
	}
}

func TestCreateBookingClosedFacility(t *testing.T) {
	svc, _ := newTestService(t)

	// Facility 3 is seeded as closed for booking
	req := newBookingRequest()
	req.FacilityID = "3"

	_, err := svc.Booking.CreateBooking(context.Background(), "3", req)
	if !errors.Is(err, errs.ErrSlotUnavailable) {
		t.Errorf("closed facility: got %v, want ErrSlotUnavailable", err)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*request.CreateBookingRequest)
	}{
		{"missing facility", func(r *request.CreateBookingRequest) { r.FacilityID = "" }},
		{"bad date format", func(r *request.CreateBookingRequest) { r.Date = "20-01-2026" }},
		{"no slots", func(r *request.CreateBookingRequest) { r.Slots = nil }},
		{"short phone", func(r *request.CreateBookingRequest) { r.Phone = "12345" }},
		{"bad email", func(r *request.CreateBookingRequest) { r.Email = "not-an-email" }},
		{"bad payment method", func(r *request.CreateBookingRequest) { r.PaymentMethod = "cheque" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newBookingRequest()
			tt.mutate(req)

			_, err := svc.Booking.CreateBooking(ctx, "3", req)
			if !errors.Is(err, errs.ErrInvalidInput) {
				t.Errorf("got %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestTransitionLegality(t *testing.T) {
	tests := []struct {
		from   entity.BookingStatus
		to     entity.BookingStatus
		wantOK bool
	}{
		{entity.BookingStatusPending, entity.BookingStatusConfirmed, true},
		{entity.BookingStatusConfirmed, entity.BookingStatusCancelled, true},
		{entity.BookingStatusConfirmed, entity.BookingStatusRefunded, true},
		{entity.BookingStatusPending, entity.BookingStatusCancelled, false},
		{entity.BookingStatusPending, entity.BookingStatusRefunded, false},
		{entity.BookingStatusCancelled, entity.BookingStatusConfirmed, false},
		{entity.BookingStatusRefunded, entity.BookingStatusPending, false},
		{entity.BookingStatusConfirmed, entity.BookingStatusConfirmed, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.wantOK {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.wantOK)
		}
	}
}

// An illegal transition must fail and leave the record unchanged.
func TestTransitionIllegalLeavesRecordUnchanged(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	booking, err := svc.Booking.CreateBooking(ctx, "3", newBookingRequest())
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}

	_, err = svc.Booking.Transition(ctx, booking.ID, entity.BookingStatusRefunded)
	if !errors.Is(err, errs.ErrInvalidTransition) {
		t.Fatalf("pending -> refunded: got %v, want ErrInvalidTransition", err)
	}

	got, err := svc.Booking.GetBookingByID(ctx, booking.ID, Caller{UserID: "3", Role: entity.RoleUser})
	if err != nil {
		t.Fatalf("GetBookingByID error: %v", err)
	}
	if got.Status != entity.BookingStatusPending {
		t.Errorf("status after illegal transition = %s, want pending", got.Status)
	}
}

func TestProcessPayment(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	booking, err := svc.Booking.CreateBooking(ctx, "3", newBookingRequest())
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}

	paid, err := svc.Booking.ProcessPayment(ctx, "3", &request.ProcessPaymentRequest{
		BookingID: booking.ID,
		Amount:    booking.BookingFee,
	})
	if err != nil {
		t.Fatalf("ProcessPayment error: %v", err)
	}

	if paid.Status != entity.BookingStatusConfirmed {
		t.Errorf("status after payment = %s, want confirmed", paid.Status)
	}
	if paid.Payment == nil {
		t.Fatal("payment record missing from response")
	}
	if paid.Payment.Amount != booking.BookingFee {
		t.Errorf("payment amount = %d, want %d", paid.Payment.Amount, booking.BookingFee)
	}
	if paid.Payment.Status != entity.PaymentStatusCompleted {
		t.Errorf("payment status = %s, want completed", paid.Payment.Status)
	}
}

func TestProcessPaymentWrongAmount(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	booking, err := svc.Booking.CreateBooking(ctx, "3", newBookingRequest())
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}

	_, err = svc.Booking.ProcessPayment(ctx, "3", &request.ProcessPaymentRequest{
		BookingID: booking.ID,
		Amount:    booking.BookingFee + 1,
	})
	if !errors.Is(err, errs.ErrInvalidInput) {
		t.Errorf("wrong amount: got %v, want ErrInvalidInput", err)
	}
}

func TestProcessPaymentWrongOwner(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	booking, err := svc.Booking.CreateBooking(ctx, "3", newBookingRequest())
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}

	_, err = svc.Booking.ProcessPayment(ctx, "someone-else", &request.ProcessPaymentRequest{
		BookingID: booking.ID,
		Amount:    booking.BookingFee,
	})
	if !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("foreign booking: got %v, want ErrNotFound", err)
	}
}

func TestGetUserBookingsOwnerOnly(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Booking.CreateBooking(ctx, "3", newBookingRequest()); err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}

	other := newBookingRequest()
	other.Slots = []string{"8:00 PM"}
	if _, err := svc.Booking.CreateBooking(ctx, "other-user", other); err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}

	page := &request.PaginatedRequest{Page: 1, PerPage: 10}

	mine, err := svc.Booking.GetUserBookings(ctx, "3", page)
	if err != nil {
		t.Fatalf("GetUserBookings error: %v", err)
	}
	if len(mine.Data) != 1 {
		t.Errorf("user 3 sees %d bookings, want 1", len(mine.Data))
	}

	theirs, err := svc.Booking.GetUserBookings(ctx, "other-user", page)
	if err != nil {
		t.Fatalf("GetUserBookings error: %v", err)
	}
	if len(theirs.Data) != 1 {
		t.Errorf("other user sees %d bookings, want 1", len(theirs.Data))
	}
}

func TestGetBookingAuthorization(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	booking, err := svc.Booking.CreateBooking(ctx, "3", newBookingRequest())
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}

	tests := []struct {
		name    string
		caller  Caller
		wantErr bool
	}{
		{"owner", Caller{UserID: "3", Role: entity.RoleUser}, false},
		{"admin", Caller{UserID: "1", Role: entity.RoleAdmin}, false},
		{"facility manager", Caller{UserID: "2", Role: entity.RoleManager, ManagedFacilityID: "1"}, false},
		{"other user", Caller{UserID: "99", Role: entity.RoleUser}, true},
		{"manager of another facility", Caller{UserID: "5", Role: entity.RoleManager, ManagedFacilityID: "2"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Booking.GetBookingByID(ctx, booking.ID, tt.caller)
			if tt.wantErr && !errors.Is(err, errs.ErrNotFound) {
				t.Errorf("got %v, want ErrNotFound", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestCancelBooking(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	req := newBookingRequest()
	req.Confirm = true
	booking, err := svc.Booking.CreateBooking(ctx, "3", req)
	if err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}

	// A stranger cannot cancel someone else's booking
	if _, err := svc.Booking.CancelBooking(ctx, booking.ID, "99", entity.RoleUser); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("foreign cancel: got %v, want ErrNotFound", err)
	}

	cancelled, err := svc.Booking.CancelBooking(ctx, booking.ID, "3", entity.RoleUser)
	if err != nil {
		t.Fatalf("CancelBooking error: %v", err)
	}
	if cancelled.Status != entity.BookingStatusCancelled {
		t.Errorf("status = %s, want cancelled", cancelled.Status)
	}
}

func TestListFacilityBookings(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Booking.CreateBooking(ctx, "3", newBookingRequest()); err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}

	other := newBookingRequest()
	other.FacilityID = "2"
	if _, err := svc.Booking.CreateBooking(ctx, "3", other); err != nil {
		t.Fatalf("CreateBooking error: %v", err)
	}

	bookings, err := svc.Booking.ListFacilityBookings(ctx, "1")
	if err != nil {
		t.Fatalf("ListFacilityBookings error: %v", err)
	}
	if len(bookings) != 1 {
		t.Fatalf("facility 1 has %d bookings, want 1", len(bookings))
	}
	if bookings[0].FacilityID != "1" {
		t.Errorf("booking facility = %s, want 1", bookings[0].FacilityID)
	}

	all, err := svc.Booking.ListAllBookings(ctx)
	if err != nil {
		t.Fatalf("ListAllBookings error: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("admin sees %d bookings, want 2", len(all))
	}
}
