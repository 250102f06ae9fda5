package availability

import (
	"context"
	"log"
	"sync"
	"time"
)

// Monitor owns the periodic today-status recompute and the published
// snapshot. Refreshes are tagged with a generation counter taken before the
// fetch starts: a slow refresh that finishes after a newer one loses the
// race and is discarded, so the published snapshot can never move backwards
// in request order.
type Monitor struct {
	service  *Service
	hub      *Hub
	interval time.Duration

	mutex     sync.Mutex
	nextGen   uint64
	published uint64
	latest    *Snapshot
}

func NewMonitor(service *Service, hub *Hub, interval time.Duration) *Monitor {
	return &Monitor{
		service:  service,
		hub:      hub,
		interval: interval,
	}
}

// Run refreshes on a fixed ticker until the context is cancelled. Search
// mode is request-scoped and deliberately not refreshed here.
func (m *Monitor) Run(ctx context.Context) {
	if _, err := m.Refresh(ctx); err != nil {
		log.Printf("availability_refresh_failed error=%q", err)
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := m.Refresh(ctx); err != nil {
				log.Printf("availability_refresh_failed error=%q", err)
			}
		}
	}
}

// Refresh recomputes the snapshot and publishes it unless a newer refresh
// already finished. Returns the snapshot this call computed, published or
// not; callers that need the authoritative view should use Latest.
func (m *Monitor) Refresh(ctx context.Context) (*Snapshot, error) {
	m.mutex.Lock()
	m.nextGen++
	gen := m.nextGen
	m.mutex.Unlock()

	snap, err := m.service.TodayStatus(ctx)
	if err != nil {
		return nil, err
	}

	m.mutex.Lock()
	if gen <= m.published {
		m.mutex.Unlock()
		log.Printf("availability_snapshot_discarded gen=%d published=%d", gen, m.published)
		return snap, nil
	}
	m.published = gen
	m.latest = snap
	m.mutex.Unlock()

	if m.hub != nil {
		m.hub.Broadcast(snap)
	}
	return snap, nil
}

// Latest returns the most recently published snapshot, or nil before the
// first successful refresh.
func (m *Monitor) Latest() *Snapshot {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.latest
}
