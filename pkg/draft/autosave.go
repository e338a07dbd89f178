package draft

import (
	"bytes"
	"encoding/json"
	"sync"
	"time"
)

// DefaultInterval between autosave ticks.
const DefaultInterval = 30 * time.Second

// AutoSaver periodically snapshots a form's current values into a Store. It
// runs independently of any network request: the snapshot callback reads the
// live form state, and identical consecutive payloads are skipped. Discard is
// the explicit "form submitted successfully" step.
type AutoSaver struct {
	store    Store
	key      string
	snapshot func() any
	interval time.Duration

	mu        sync.Mutex
	lastSaved []byte
	lastAt    time.Time

	started bool
	stop    chan struct{}
	done    chan struct{}
}

// NewAutoSaver builds an autosaver for one draft key. snapshot is called on
// every tick to read the current form values. interval <= 0 falls back to
// DefaultInterval.
func NewAutoSaver(store Store, key string, interval time.Duration, snapshot func() any) *AutoSaver {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &AutoSaver{
		store:    store,
		key:      key,
		snapshot: snapshot,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the autosave loop. Call Stop to end it.
func (a *AutoSaver) Start() {
	a.mu.Lock()
	a.started = true
	a.mu.Unlock()
	go func() {
		defer close(a.done)
		ticker := time.NewTicker(a.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				a.SaveNow()
			case <-a.stop:
				return
			}
		}
	}()
}

// SaveNow persists the current snapshot immediately, skipping unchanged
// payloads. Safe to call without Start (used by tests and flush-on-close).
func (a *AutoSaver) SaveNow() error {
	b, err := json.Marshal(a.snapshot())
	if err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if bytes.Equal(b, a.lastSaved) {
		return nil
	}
	if err := a.store.Save(a.key, b); err != nil {
		return err
	}
	a.lastSaved = b
	a.lastAt = time.Now()
	return nil
}

// LastSaved returns when the draft last changed on disk, zero if never.
func (a *AutoSaver) LastSaved() time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastAt
}

// Discard clears the stored draft; called after a successful submit.
func (a *AutoSaver) Discard() error {
	a.mu.Lock()
	a.lastSaved = nil
	a.lastAt = time.Time{}
	a.mu.Unlock()
	return a.store.Clear(a.key)
}

// Stop ends the autosave loop and waits for it to exit.
func (a *AutoSaver) Stop() {
	a.mu.Lock()
	started := a.started
	a.mu.Unlock()
	close(a.stop)
	if started {
		<-a.done
	}
}
