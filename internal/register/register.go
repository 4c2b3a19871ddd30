package register

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Entry is one issued contract in the register.
type Entry struct {
	ID           uuid.UUID `json:"id"`
	FairID       int       `json:"fairId"`
	HallID       int       `json:"hallId"`
	SquareMeters int       `json:"squareMeters"`
	CompanyID    string    `json:"companyId"`
	CompanyName  string    `json:"companyName"`
	Filename     string    `json:"filename"`
	IssuedAt     time.Time `json:"issuedAt"`
}

// Store records issued contracts. Any persistence backend can sit behind it;
// the workflow only ever appends and the HTTP surface only ever reads.
type Store interface {
	Record(ctx context.Context, entry Entry) error
	Find(ctx context.Context, id uuid.UUID) (Entry, bool)
	List(ctx context.Context, limit int) []Entry
}

// MemoryStore keeps the register in process memory. Safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []Entry
	byID    map[uuid.UUID]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[uuid.UUID]int)}
}

func (s *MemoryStore) Record(_ context.Context, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	s.byID[entry.ID] = len(s.entries) - 1
	return nil
}

func (s *MemoryStore) Find(_ context.Context, id uuid.UUID) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pos, ok := s.byID[id]
	if !ok {
		return Entry{}, false
	}
	return s.entries[pos], true
}

// List returns the most recent entries first. A non-positive limit returns
// everything.
func (s *MemoryStore) List(_ context.Context, limit int) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	result := make([]Entry, 0, n)
	for i := len(s.entries) - 1; i >= 0 && len(result) < n; i-- {
		result = append(result, s.entries[i])
	}
	return result
}
