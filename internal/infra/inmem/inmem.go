package infra_inmem_store

import (
	"context"
	"sync"
)

// Driver is a process-local key-value store. Used in tests and when no
// redis address is configured.
type Driver struct {
	mu   sync.RWMutex
	data map[string]string
}

func New() *Driver {
	return &Driver{
		data: make(map[string]string),
	}
}

func (d *Driver) Read(_ context.Context, key string) (string, bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	val, ok := d.data[key]
	return val, ok, nil
}

func (d *Driver) Write(_ context.Context, key string, value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.data[key] = value
	return nil
}
