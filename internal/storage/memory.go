package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mjal-at/file-service/internal/models"
)

// MemoryStore implements MetadataStore in process memory. Used in tests
// and for running without a database.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]models.FileRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]models.FileRecord)}
}

func (m *MemoryStore) Insert(ctx context.Context, rec models.FileRecord) (models.FileRecord, error) {
	rec.ID = uuid.New().String()
	rec.UploadDate = time.Now().UTC()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.ID] = rec
	return rec, nil
}

func (m *MemoryStore) ListByUser(ctx context.Context, userID string) ([]models.FileRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := []models.FileRecord{}
	for _, rec := range m.records {
		if rec.UserID == userID {
			records = append(records, rec)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].UploadDate.After(records[j].UploadDate)
	})
	return records, nil
}

func (m *MemoryStore) Get(ctx context.Context, id, userID string) (models.FileRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, exists := m.records[id]
	if !exists || rec.UserID != userID {
		return models.FileRecord{}, ErrNotFound
	}
	return rec, nil
}

func (m *MemoryStore) Delete(ctx context.Context, id, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, exists := m.records[id]
	if !exists || rec.UserID != userID {
		return ErrNotFound
	}
	delete(m.records, rec.ID)
	return nil
}

func (m *MemoryStore) Ping(ctx context.Context) error {
	return nil
}
