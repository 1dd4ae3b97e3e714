package store

import (
	"context"
	"sync"
)

// Memory is an in-memory Store for tests and local development.
type Memory struct {
	mu      sync.RWMutex
	reports []Report
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Append(_ context.Context, report Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports = append(m.reports, report)
	return nil
}

func (m *Memory) ListByDocument(_ context.Context, documentHash string) ([]Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Report
	for _, r := range m.reports {
		if r.DocumentHash == documentHash {
			out = append(out, r)
		}
	}
	return out, nil
}

// Len reports the number of archived reports. Test helper.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.reports)
}
