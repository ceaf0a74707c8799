package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Memory is the degraded-mode KV used when the SQLite store cannot be
// opened: the session continues storage-less for the run and every record
// evaporates on exit.
type Memory struct {
	records map[string][]byte
}

var _ KV = (*Memory)(nil)

// NewMemory returns an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{records: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string, v any) (bool, error) {
	raw, ok := m.records[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode %q: %w", key, err)
	}
	return true, nil
}

func (m *Memory) Put(_ context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	m.records[key] = raw
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	delete(m.records, key)
	return nil
}

func (m *Memory) Close() error {
	return nil
}
