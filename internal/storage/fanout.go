package storage

import "tex/internal/domain"

// Fanout writes every record to all underlying stores. CompleteRun reports
// found when any store had the record.
type Fanout struct {
	stores []RunStore
}

// NewFanout creates a store that duplicates writes across stores.
func NewFanout(stores ...RunStore) *Fanout {
	return &Fanout{stores: stores}
}

func (f *Fanout) CreateRun(id string, framework domain.Framework, targetPath string) error {
	var firstErr error
	for _, s := range f.stores {
		if err := s.CreateRun(id, framework, targetPath); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (f *Fanout) CompleteRun(id string, c RunCompletion) (bool, error) {
	var found bool
	var firstErr error
	for _, s := range f.stores {
		ok, err := s.CompleteRun(id, c)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		found = found || ok
	}
	return found, firstErr
}
