package repository

import (
	"math/rand"
	"sync"
	"time"

	"turf-booking/internal/data/entity"
)

// AvailabilityPolicy assigns the initial status of a slot triple the first
// time it is observed. The ledger caches the result, so a policy is consulted
// at most once per triple per process lifetime.
type AvailabilityPolicy interface {
	Draw(facilityID, dateKey, timeLabel string) entity.SlotStatus
}

// WeightedRandomPolicy is the demo stand-in for a real reservation calendar:
// 70% available, 20% booked, 10% unavailable. Seedable so tests are
// deterministic.
type WeightedRandomPolicy struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewWeightedRandomPolicy(seed int64) *WeightedRandomPolicy {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &WeightedRandomPolicy{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

func (p *WeightedRandomPolicy) Draw(facilityID, dateKey, timeLabel string) entity.SlotStatus {
	p.mu.Lock()
	r := p.rnd.Float64()
	p.mu.Unlock()

	switch {
	case r < 0.7:
		return entity.SlotStatusAvailable
	case r < 0.9:
		return entity.SlotStatusBooked
	default:
		return entity.SlotStatusUnavailable
	}
}

// BlackoutPolicy is the deterministic production strategy: every slot is
// available unless the operator has blacked it out. Booked status then comes
// only from actual reservations through the ledger.
type BlackoutPolicy struct {
	mu        sync.RWMutex
	blackouts map[string]struct{}
}

func NewBlackoutPolicy() *BlackoutPolicy {
	return &BlackoutPolicy{
		blackouts: make(map[string]struct{}),
	}
}

func (p *BlackoutPolicy) AddBlackout(facilityID, dateKey, timeLabel string) {
	p.mu.Lock()
	p.blackouts[slotKey(facilityID, dateKey, timeLabel)] = struct{}{}
	p.mu.Unlock()
}

func (p *BlackoutPolicy) Draw(facilityID, dateKey, timeLabel string) entity.SlotStatus {
	p.mu.RLock()
	_, blocked := p.blackouts[slotKey(facilityID, dateKey, timeLabel)]
	p.mu.RUnlock()

	if blocked {
		return entity.SlotStatusUnavailable
	}
	return entity.SlotStatusAvailable
}
