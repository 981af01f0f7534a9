package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"tokentab/contexts/finance-core/lending-ledger-service/domain/entities"
	domainerrors "tokentab/contexts/finance-core/lending-ledger-service/domain/errors"
)

// Store keeps lending records in memory for tests and local runs. It
// also provides Clock and IDGenerator behavior.
type Store struct {
	mu      sync.RWMutex
	records map[string]entities.LendingRecord
}

func NewStore() *Store {
	return &Store{records: make(map[string]entities.LendingRecord)}
}

// SeedRecord inserts a record directly, bypassing invariant checks so
// tests can stage corrupt rows.
func (s *Store) SeedRecord(record entities.LendingRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.RecordID] = record
}

func (s *Store) ListByLender(_ context.Context, lenderUserID string) ([]entities.LendingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]entities.LendingRecord, 0)
	for _, record := range s.records {
		if record.LenderUserID == lenderUserID {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].RecordID < records[j].RecordID
		}
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}

func (s *Store) GetRecord(_ context.Context, recordID string) (entities.LendingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[recordID]
	if !ok {
		return entities.LendingRecord{}, domainerrors.ErrRecordNotFound
	}
	return record, nil
}

func (s *Store) CreateRecord(_ context.Context, record entities.LendingRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[record.RecordID]; exists {
		return domainerrors.ErrInvalidRecordInput
	}
	s.records[record.RecordID] = record
	return nil
}

func (s *Store) UpdateRecord(_ context.Context, record entities.LendingRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.records[record.RecordID]
	if !ok {
		return domainerrors.ErrRecordNotFound
	}
	if current.Version != record.Version-1 {
		return domainerrors.ErrConcurrentUpdate
	}
	s.records[record.RecordID] = record
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
