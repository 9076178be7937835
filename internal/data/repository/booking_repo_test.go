package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"turf-booking/internal/data/entity"
	"turf-booking/pkg/errs"
	"turf-booking/pkg/storage"
	"turf-booking/pkg/utils"

	"go.uber.org/zap"
)

func newBooking(id, userID, facilityID string) *entity.Booking {
	now := time.Now()
	return &entity.Booking{
		ID:         id,
		FacilityID: facilityID,
		Date:       now.AddDate(0, 0, 1),
		Slots:      []string{"6:00 PM"},
		Status:     entity.BookingStatusPending,
		UserID:     userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestBookingRepoCreateAndFind(t *testing.T) {
	store, _ := storage.InitStore(utils.StoreConfig{})
	repo := NewBookingRepository(store, zap.NewNop())
	ctx := context.Background()

	if err := repo.Create(ctx, newBooking("BMT000001", "3", "1")); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := repo.FindByID(ctx, "BMT000001")
	if err != nil {
		t.Fatalf("FindByID error: %v", err)
	}
	if got == nil || got.UserID != "3" {
		t.Fatalf("FindByID = %+v, want user 3", got)
	}

	missing, err := repo.FindByID(ctx, "BMT999999")
	if err != nil {
		t.Fatalf("FindByID error: %v", err)
	}
	if missing != nil {
		t.Error("unknown reference should yield nil")
	}

	// Duplicate references are rejected
	if err := repo.Create(ctx, newBooking("BMT000001", "4", "2")); err == nil {
		t.Error("duplicate reference should fail")
	}
}

func TestBookingRepoUserFilter(t *testing.T) {
	store, _ := storage.InitStore(utils.StoreConfig{})
	repo := NewBookingRepository(store, zap.NewNop())
	ctx := context.Background()

	for i, b := range []*entity.Booking{
		newBooking("BMT000001", "3", "1"),
		newBooking("BMT000002", "4", "1"),
		newBooking("BMT000003", "3", "2"),
	} {
		if err := repo.Create(ctx, b); err != nil {
			t.Fatalf("Create %d error: %v", i, err)
		}
	}

	mine, err := repo.FindByUserID(ctx, "3", 10, 0)
	if err != nil {
		t.Fatalf("FindByUserID error: %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("user 3 has %d bookings, want 2", len(mine))
	}

	count, err := repo.CountByUserID(ctx, "3")
	if err != nil {
		t.Fatalf("CountByUserID error: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}

	// Pagination honors limit and offset
	page, err := repo.FindByUserID(ctx, "3", 1, 1)
	if err != nil {
		t.Fatalf("FindByUserID error: %v", err)
	}
	if len(page) != 1 || page[0].ID != "BMT000003" {
		t.Errorf("second page = %+v, want [BMT000003]", page)
	}

	byFacility, err := repo.FindByFacilityID(ctx, "1")
	if err != nil {
		t.Fatalf("FindByFacilityID error: %v", err)
	}
	if len(byFacility) != 2 {
		t.Errorf("facility 1 has %d bookings, want 2", len(byFacility))
	}
}

func TestBookingRepoUpdateStatus(t *testing.T) {
	store, _ := storage.InitStore(utils.StoreConfig{})
	repo := NewBookingRepository(store, zap.NewNop())
	ctx := context.Background()

	if err := repo.Create(ctx, newBooking("BMT000001", "3", "1")); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := repo.UpdateStatus(ctx, "BMT000001", entity.BookingStatusConfirmed); err != nil {
		t.Fatalf("UpdateStatus error: %v", err)
	}

	got, _ := repo.FindByID(ctx, "BMT000001")
	if got.Status != entity.BookingStatusConfirmed {
		t.Errorf("status = %s, want confirmed", got.Status)
	}

	if err := repo.UpdateStatus(ctx, "BMT999999", entity.BookingStatusConfirmed); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("unknown reference: got %v, want ErrNotFound", err)
	}
}

// Bookings written through one repository must survive a restart.
func TestBookingRepoPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	ctx := context.Background()

	store, err := storage.InitStore(utils.StoreConfig{Path: path})
	if err != nil {
		t.Fatalf("InitStore error: %v", err)
	}
	repo := NewBookingRepository(store, zap.NewNop())
	if err := repo.Create(ctx, newBooking("BMT000042", "3", "1")); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	store.Close()

	reopened, err := storage.InitStore(utils.StoreConfig{Path: path})
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer reopened.Close()

	fresh := NewBookingRepository(reopened, zap.NewNop())
	got, err := fresh.FindByID(ctx, "BMT000042")
	if err != nil {
		t.Fatalf("FindByID after reload error: %v", err)
	}
	if got == nil || got.UserID != "3" {
		t.Fatalf("booking not reloaded: %+v", got)
	}
}
