package server

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// saveFunc persists one coalesced partial update.
type saveFunc func(ctx context.Context, id uuid.UUID, fields map[string]any) error

// Autosaver coalesces rapid resume edits into one persisted write per
// quiet window. A newer edit reschedules the timer and merges its
// fields over the pending payload (last-write-wins per field). This is
// a timing policy, not a correctness one: no merge of concurrent edits
// beyond field replacement.
type Autosaver struct {
	mu      sync.Mutex
	window  time.Duration
	save    saveFunc
	pending map[uuid.UUID]*pendingSave
	stopped bool
}

type pendingSave struct {
	timer  *time.Timer
	fields map[string]any
}

// NewAutosaver creates an Autosaver with the given quiet window.
func NewAutosaver(window time.Duration, save saveFunc) *Autosaver {
	return &Autosaver{
		window:  window,
		save:    save,
		pending: make(map[uuid.UUID]*pendingSave),
	}
}

// Schedule records a partial edit for the resume and (re)starts its
// quiet-window timer.
func (a *Autosaver) Schedule(id uuid.UUID, fields map[string]any) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopped {
		return
	}

	p, ok := a.pending[id]
	if !ok {
		p = &pendingSave{fields: make(map[string]any)}
		a.pending[id] = p
	}
	for k, v := range fields {
		p.fields[k] = v
	}

	if p.timer != nil {
		p.timer.Stop()
	}
	p.timer = time.AfterFunc(a.window, func() {
		a.fire(id)
	})
}

// fire persists the pending payload for one resume.
func (a *Autosaver) fire(id uuid.UUID) {
	a.mu.Lock()
	p, ok := a.pending[id]
	if !ok {
		a.mu.Unlock()
		return
	}
	delete(a.pending, id)
	a.mu.Unlock()

	if p.timer != nil {
		p.timer.Stop()
	}
	if err := a.save(context.Background(), id, p.fields); err != nil {
		log.Printf("[autosave] failed to save resume %s: %v", id, err)
	}
}

// Flush persists every pending payload immediately.
func (a *Autosaver) Flush() {
	a.mu.Lock()
	ids := make([]uuid.UUID, 0, len(a.pending))
	for id := range a.pending {
		ids = append(ids, id)
	}
	a.mu.Unlock()

	for _, id := range ids {
		a.fire(id)
	}
}

// Stop flushes pending payloads and rejects further scheduling.
func (a *Autosaver) Stop() {
	a.mu.Lock()
	a.stopped = true
	a.mu.Unlock()
	a.Flush()
}

// PendingCount reports how many resumes have unsaved edits.
func (a *Autosaver) PendingCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.pending)
}
