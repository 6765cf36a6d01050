package preset

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps presets in a map.
type MemoryStore struct {
	mu      sync.RWMutex
	presets map[uuid.UUID]Preset
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{presets: make(map[uuid.UUID]Preset)}
}

func (s *MemoryStore) Save(_ context.Context, p *Preset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.presets[p.ID] = *p
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.presets[id]
	if !ok {
		return nil, notFound(id)
	}
	return &p, nil
}

func (s *MemoryStore) List(_ context.Context) ([]*Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Preset, 0, len(s.presets))
	for _, p := range s.presets {
		p := p
		out = append(out, &p)
	}
	sortPresets(out)
	return out, nil
}

func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.presets[id]; !ok {
		return notFound(id)
	}
	delete(s.presets, id)
	return nil
}

func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
