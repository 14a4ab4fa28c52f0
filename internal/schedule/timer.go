// Package schedule owns reminder delivery: registering one-shot timers for
// each reminder's warning and exact moments, recovering unsent reminders on
// startup, and the daily expense nudge.
package schedule

import (
	"sync"
	"time"
)

// Timer registers named one-shot callbacks. Registering an existing id
// replaces the earlier registration; the replaced callback never fires.
type Timer interface {
	Register(id string, at time.Time, fn func())
	Cancel(id string)
	Stop()
}

// MemoryTimer is the in-process Timer. All registrations are lost on
// restart; the dispatcher rebuilds them from storage at startup.
type MemoryTimer struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewMemoryTimer creates an empty timer set.
func NewMemoryTimer() *MemoryTimer {
	return &MemoryTimer{timers: make(map[string]*time.Timer)}
}

// Register schedules fn to run at the given moment, replacing any earlier
// registration under the same id. A moment already in the past fires
// immediately.
func (m *MemoryTimer) Register(id string, at time.Time, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.timers[id]; ok {
		old.Stop()
	}

	var t *time.Timer
	t = time.AfterFunc(time.Until(at), func() {
		m.mu.Lock()
		// A replaced timer that already fired its goroutine must not run:
		// the id either points at a newer timer or was cancelled.
		current, ok := m.timers[id]
		if !ok || current != t {
			m.mu.Unlock()
			return
		}
		delete(m.timers, id)
		m.mu.Unlock()
		fn()
	})
	m.timers[id] = t
}

// Cancel drops a registration. Unknown ids are a no-op.
func (m *MemoryTimer) Cancel(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.timers[id]; ok {
		t.Stop()
		delete(m.timers, id)
	}
}

// Stop cancels every registration.
func (m *MemoryTimer) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, t := range m.timers {
		t.Stop()
		delete(m.timers, id)
	}
}
