package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"turf-booking/internal/data/entity"
	"turf-booking/pkg/errs"

	"go.uber.org/zap"
)

const slotDateLayout = "2006-01-02"

// SlotRepository is the slot availability ledger. A slot is identified by the
// triple (facilityID, date, timeLabel); its status is drawn once from the
// availability policy, cached for the process lifetime, and only ever changes
// through Reserve (available -> booked) or the compensating Release.
type SlotRepository interface {
	GetStatus(ctx context.Context, facilityID string, date time.Time, timeLabel string) (entity.SlotStatus, error)
	DayGrid(ctx context.Context, facilityID string, date time.Time) ([]entity.SlotView, error)
	Reserve(ctx context.Context, facilityID string, date time.Time, timeLabel string) (bool, error)
	Release(ctx context.Context, facilityID string, date time.Time, timeLabel string) error
}

type slotRepository struct {
	mu     sync.Mutex
	slots  map[string]entity.SlotStatus
	policy AvailabilityPolicy
	log    *zap.Logger
}

func NewSlotRepository(policy AvailabilityPolicy, log *zap.Logger) SlotRepository {
	return &slotRepository{
		slots:  make(map[string]entity.SlotStatus),
		policy: policy,
		log:    log.With(zap.String("repository", "slot")),
	}
}

func slotKey(facilityID, dateKey, timeLabel string) string {
	return facilityID + "|" + dateKey + "|" + timeLabel
}

// validateSlot checks the triple before any draw is cached: unknown labels and
// past dates never enter the ledger.
func validateSlot(date time.Time, timeLabel string) (string, error) {
	if !entity.IsValidTimeLabel(timeLabel) {
		return "", fmt.Errorf("time label %q outside operating hours: %w", timeLabel, errs.ErrInvalidInput)
	}

	dateKey := date.Format(slotDateLayout)
	today := time.Now().Format(slotDateLayout)
	if dateKey < today {
		return "", fmt.Errorf("date %s is in the past: %w", dateKey, errs.ErrInvalidInput)
	}

	return dateKey, nil
}

func (r *slotRepository) GetStatus(ctx context.Context, facilityID string, date time.Time, timeLabel string) (entity.SlotStatus, error) {
	dateKey, err := validateSlot(date, timeLabel)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.statusLocked(facilityID, dateKey, timeLabel), nil
}

func (r *slotRepository) DayGrid(ctx context.Context, facilityID string, date time.Time) ([]entity.SlotView, error) {
	labels := entity.TimeLabels()

	dateKey, err := validateSlot(date, labels[0])
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	grid := make([]entity.SlotView, len(labels))
	for i, label := range labels {
		grid[i] = entity.SlotView{
			Time:   label,
			Status: r.statusLocked(facilityID, dateKey, label),
		}
	}
	return grid, nil
}

// Reserve transitions available -> booked. It is the sole external write path
// into the ledger and is atomic per triple: the check and the transition
// happen under one lock, so concurrent reservations of the same triple cannot
// both succeed. A non-available slot fails with false and no mutation.
func (r *slotRepository) Reserve(ctx context.Context, facilityID string, date time.Time, timeLabel string) (bool, error) {
	dateKey, err := validateSlot(date, timeLabel)
	if err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	status := r.statusLocked(facilityID, dateKey, timeLabel)
	if status != entity.SlotStatusAvailable {
		return false, nil
	}

	r.slots[slotKey(facilityID, dateKey, timeLabel)] = entity.SlotStatusBooked

	r.log.Info("Slot reserved",
		zap.String("facility_id", facilityID),
		zap.String("date", dateKey),
		zap.String("time", timeLabel),
	)

	return true, nil
}

// Release undoes a reservation (booked -> available). Only booking creation
// uses it, to roll back partially reserved selections; releasing a slot that
// is not booked is a no-op.
func (r *slotRepository) Release(ctx context.Context, facilityID string, date time.Time, timeLabel string) error {
	dateKey, err := validateSlot(date, timeLabel)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := slotKey(facilityID, dateKey, timeLabel)
	if r.slots[key] != entity.SlotStatusBooked {
		return nil
	}

	r.slots[key] = entity.SlotStatusAvailable

	r.log.Info("Slot released",
		zap.String("facility_id", facilityID),
		zap.String("date", dateKey),
		zap.String("time", timeLabel),
	)

	return nil
}

// statusLocked returns the cached status for a triple, drawing and caching it
// on first observation. Caller must hold r.mu.
func (r *slotRepository) statusLocked(facilityID, dateKey, timeLabel string) entity.SlotStatus {
	key := slotKey(facilityID, dateKey, timeLabel)

	status, ok := r.slots[key]
	if !ok {
		status = r.policy.Draw(facilityID, dateKey, timeLabel)
		r.slots[key] = status
	}

	return status
}
