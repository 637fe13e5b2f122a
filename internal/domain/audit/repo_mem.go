package audit

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// memRepo is an in-process append-only store. It backs library-mode use and
// development setups that run without Postgres; entries survive only for the
// process lifetime.
type memRepo struct {
	mu      sync.RWMutex
	entries []*Entry
}

func NewRepoMem() Repository {
	return &memRepo{}
}

func (r *memRepo) Append(_ context.Context, e *Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
	return nil
}

func (r *memRepo) List(_ context.Context, limit, offset int) ([]*Entry, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return page(r.entries, limit, offset)
}

func (r *memRepo) ListByCorrelation(_ context.Context, correlationID uuid.UUID, limit, offset int) ([]*Entry, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []*Entry
	for _, e := range r.entries {
		if e.CorrelationID == correlationID {
			matched = append(matched, e)
		}
	}
	return page(matched, limit, offset)
}

func page(entries []*Entry, limit, offset int) ([]*Entry, int, error) {
	total := len(entries)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	out := make([]*Entry, end-offset)
	copy(out, entries[offset:end])
	return out, total, nil
}
