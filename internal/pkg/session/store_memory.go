package session

import (
	"context"
	"sync"

	"github.com/goccy/go-json"
)

type memoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore keeps sessions in process. Used when no redis host is configured.
func NewMemoryStore() Store {
	return &memoryStore{data: make(map[string][]byte)}
}

// Load implements Store.
func (s *memoryStore) Load(ctx context.Context, id string) (Data, bool, error) {
	s.mu.RLock()
	raw, ok := s.data[id]
	s.mu.RUnlock()
	if !ok {
		return Data{}, false, nil
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return Data{}, false, err
	}
	return data, true, nil
}

// Save implements Store.
func (s *memoryStore) Save(ctx context.Context, id string, data Data) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[id] = raw
	s.mu.Unlock()
	return nil
}

// Delete implements Store.
func (s *memoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.data, id)
	s.mu.Unlock()
	return nil
}
