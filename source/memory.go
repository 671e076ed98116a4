package source

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/arloliu/polyblob/errs"
)

// Memory is an in-memory Store.
//
// Values are stored as any so that callers can model columns holding something other
// than bytes; such values are reported as errs.ErrTypeMismatch on Fetch.
// Memory is safe for concurrent use.
type Memory struct {
	mu     sync.RWMutex
	values map[int64]any
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty Memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[int64]any)}
}

// Put stores value under id, replacing any previous value.
func (m *Memory) Put(id int64, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[id] = value
}

// Fetch returns the bytes stored under id.
//
// The returned slice is the stored slice itself; callers must not modify it.
func (m *Memory) Fetch(ctx context.Context, id int64) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	value, ok := m.values[id]
	m.mu.RUnlock()

	if !ok || value == nil {
		return nil, fmt.Errorf("blob %d: %w", id, errs.ErrNotFound)
	}

	data, ok := value.([]byte)
	if !ok {
		return nil, fmt.Errorf("blob %d holds %T: %w", id, value, errs.ErrTypeMismatch)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("blob %d is empty: %w", id, errs.ErrNotFound)
	}

	return data, nil
}

// IDs returns the identifiers of non-empty values in ascending order. Values that are
// not byte slices are listed so that Fetch can report them.
func (m *Memory) IDs(ctx context.Context, limit int) ([]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	ids := make([]int64, 0, len(m.values))
	for id, value := range m.values {
		if isEmptyValue(value) {
			continue
		}
		ids = append(ids, id)
	}
	m.mu.RUnlock()

	slices.Sort(ids)

	return applyLimit(ids, limit), nil
}

func isEmptyValue(value any) bool {
	if value == nil {
		return true
	}
	data, ok := value.([]byte)

	return ok && len(data) == 0
}
