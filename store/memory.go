package store

import (
	"sort"
	"sync"

	"orgchart/services"
)

// MemoryStore keeps charts in process memory. Nothing survives a restart.
type MemoryStore struct {
	mu     sync.RWMutex
	charts map[string]*services.Chart
}

var _ services.ChartStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		charts: make(map[string]*services.Chart),
	}
}

func (s *MemoryStore) Get(id string) (*services.Chart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chart, exists := s.charts[id]
	if !exists {
		return nil, services.ErrChartNotFound
	}
	return chart, nil
}

// List returns charts oldest first
func (s *MemoryStore) List() []*services.Chart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	charts := make([]*services.Chart, 0, len(s.charts))
	for _, chart := range s.charts {
		charts = append(charts, chart)
	}

	sort.Slice(charts, func(i, j int) bool {
		if charts[i].CreatedAt.Equal(charts[j].CreatedAt) {
			return charts[i].ID < charts[j].ID
		}
		return charts[i].CreatedAt.Before(charts[j].CreatedAt)
	})
	return charts
}

func (s *MemoryStore) Put(chart *services.Chart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.charts[chart.ID] = chart
	return nil
}

func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.charts[id]; !exists {
		return services.ErrChartNotFound
	}
	delete(s.charts, id)
	return nil
}
