package server

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSave captures every persisted payload.
type recordingSave struct {
	mu    sync.Mutex
	saves []map[string]any
}

func (r *recordingSave) fn(_ context.Context, _ uuid.UUID, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves = append(r.saves, fields)
	return nil
}

func (r *recordingSave) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.saves)
}

func (r *recordingSave) last() map[string]any {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.saves) == 0 {
		return nil
	}
	return r.saves[len(r.saves)-1]
}

func TestAutosaver_CoalescesBurstIntoOneSave(t *testing.T) {
	rec := &recordingSave{}
	a := NewAutosaver(30*time.Millisecond, rec.fn)
	id := uuid.New()

	a.Schedule(id, map[string]any{"summary": "v1"})
	a.Schedule(id, map[string]any{"summary": "v2"})
	a.Schedule(id, map[string]any{"notes": "keep"})

	require.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, 5*time.Millisecond)

	saved := rec.last()
	assert.Equal(t, "v2", saved["summary"])
	assert.Equal(t, "keep", saved["notes"])
	assert.Equal(t, 0, a.PendingCount())
}

func TestAutosaver_SeparateResumesSaveIndependently(t *testing.T) {
	rec := &recordingSave{}
	a := NewAutosaver(20*time.Millisecond, rec.fn)

	a.Schedule(uuid.New(), map[string]any{"summary": "one"})
	a.Schedule(uuid.New(), map[string]any{"summary": "two"})

	require.Eventually(t, func() bool { return rec.count() == 2 }, time.Second, 5*time.Millisecond)
}

func TestAutosaver_FlushPersistsImmediately(t *testing.T) {
	rec := &recordingSave{}
	a := NewAutosaver(time.Hour, rec.fn)

	a.Schedule(uuid.New(), map[string]any{"summary": "pending"})
	require.Equal(t, 1, a.PendingCount())

	a.Flush()

	assert.Equal(t, 1, rec.count())
	assert.Equal(t, 0, a.PendingCount())
}

func TestAutosaver_StopRejectsFurtherEdits(t *testing.T) {
	rec := &recordingSave{}
	a := NewAutosaver(time.Hour, rec.fn)

	a.Schedule(uuid.New(), map[string]any{"summary": "before stop"})
	a.Stop()
	require.Equal(t, 1, rec.count())

	a.Schedule(uuid.New(), map[string]any{"summary": "after stop"})

	assert.Equal(t, 0, a.PendingCount())
	assert.Equal(t, 1, rec.count())
}
