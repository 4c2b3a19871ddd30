package mail

import (
	"context"
	"sync"
	"time"
)

// DeliveryRecord is one entry in the mail delivery log.
type DeliveryRecord struct {
	MessageID    string     `json:"messageId"`
	Status       string     `json:"status"`
	To           []string   `json:"to"`
	Subject      string     `json:"subject"`
	SentAt       time.Time  `json:"sentAt"`
	DeliveredAt  *time.Time `json:"deliveredAt,omitempty"`
	ErrorMessage string     `json:"errorMessage,omitempty"`
}

// Store is the delivery log. Any persistence backend can sit behind it.
type Store interface {
	Record(ctx context.Context, entry DeliveryRecord) error
	Find(ctx context.Context, messageID string) (DeliveryRecord, bool)
	List(ctx context.Context, limit int) []DeliveryRecord
}

// MemoryStore keeps the delivery log in process memory. Safe for concurrent
// use.
type MemoryStore struct {
	mu      sync.RWMutex
	entries []DeliveryRecord
	byID    map[string]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[string]int)}
}

func (s *MemoryStore) Record(_ context.Context, entry DeliveryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	s.byID[entry.MessageID] = len(s.entries) - 1
	return nil
}

func (s *MemoryStore) Find(_ context.Context, messageID string) (DeliveryRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pos, ok := s.byID[messageID]
	if !ok {
		return DeliveryRecord{}, false
	}
	return s.entries[pos], true
}

// List returns the most recent records first. A non-positive limit returns
// everything.
func (s *MemoryStore) List(_ context.Context, limit int) []DeliveryRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.entries)
	if limit > 0 && limit < n {
		n = limit
	}
	result := make([]DeliveryRecord, 0, n)
	for i := len(s.entries) - 1; i >= 0 && len(result) < n; i-- {
		result = append(result, s.entries[i])
	}
	return result
}
