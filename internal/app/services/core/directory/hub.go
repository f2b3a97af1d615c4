package directory

import (
	"sync"

	"labclinics-service/internal/app/models"
)

// SnapshotHub fans complete collection snapshots out to every open stream.
// Subscribers always receive the latest snapshot first, then one message per
// change. A slow subscriber never blocks a broadcast: its unread snapshot is
// replaced by the fresh one, so the next read always observes current state.
type SnapshotHub struct {
	mu          sync.RWMutex
	subscribers map[chan []*models.Doctor]struct{}
	snapshot    []*models.Doctor
	hasSnapshot bool
}

func NewSnapshotHub() *SnapshotHub {
	return &SnapshotHub{
		subscribers: make(map[chan []*models.Doctor]struct{}),
	}
}

// Broadcast stores the snapshot and delivers it to every subscriber.
func (h *SnapshotHub) Broadcast(doctors []*models.Doctor) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.snapshot = doctors
	h.hasSnapshot = true
	for subscriber := range h.subscribers {
		// Drop the unread snapshot, if any, so the fresh one always fits.
		select {
		case <-subscriber:
		default:
		}
		select {
		case subscriber <- doctors:
		default:
		}
	}
}

// Subscribe registers a stream and immediately queues the current snapshot
// when one exists. The returned function must be called to unsubscribe.
func (h *SnapshotHub) Subscribe() (<-chan []*models.Doctor, func()) {
	subscriber := make(chan []*models.Doctor, 1)

	h.mu.Lock()
	h.subscribers[subscriber] = struct{}{}
	if h.hasSnapshot {
		subscriber <- h.snapshot
	}
	h.mu.Unlock()

	unsubscribe := func() {
		h.mu.Lock()
		delete(h.subscribers, subscriber)
		h.mu.Unlock()
	}
	return subscriber, unsubscribe
}

// Snapshot returns the last broadcast collection, or nil before the first.
func (h *SnapshotHub) Snapshot() []*models.Doctor {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.snapshot
}
