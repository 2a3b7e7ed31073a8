// Package memory holds process-local repository implementations.
package memory

import (
	"context"
	"sync"
	"time"

	"musiclib/internal/domain/repository"
)

type sessionCodeRecord struct {
	payload   []byte
	expiresAt time.Time
}

// SessionCodeRepository keeps one-time session codes in a map guarded by a mutex.
// Expired records are dropped on read and by Sweep.
type SessionCodeRepository struct {
	mu      sync.Mutex
	records map[string]sessionCodeRecord
	now     func() time.Time
}

// NewSessionCodeRepository creates an empty in-memory store.
func NewSessionCodeRepository() *SessionCodeRepository {
	return &SessionCodeRepository{
		records: make(map[string]sessionCodeRecord),
		now:     time.Now,
	}
}

var _ repository.SessionCodeRepository = (*SessionCodeRepository)(nil)

func (r *SessionCodeRepository) Put(_ context.Context, code string, payload []byte, ttl time.Duration) error {
	stored := make([]byte, len(payload))
	copy(stored, payload)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[code] = sessionCodeRecord{
		payload:   stored,
		expiresAt: r.now().Add(ttl),
	}

	return nil
}

func (r *SessionCodeRepository) Take(_ context.Context, code string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[code]
	if !ok {
		return nil, repository.ErrSessionCodeNotFound
	}
	delete(r.records, code)

	if !r.now().Before(record.expiresAt) {
		return nil, repository.ErrSessionCodeNotFound
	}

	return record.payload, nil
}

// Sweep removes every expired record and reports how many were dropped.
func (r *SessionCodeRepository) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for code, record := range r.records {
		if !now.Before(record.expiresAt) {
			delete(r.records, code)
			removed++
		}
	}

	return removed
}

// Len returns the number of stored records, expired ones included.
func (r *SessionCodeRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.records)
}

// RunSweeper calls Sweep every interval until ctx is done.
func (r *SessionCodeRepository) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}
