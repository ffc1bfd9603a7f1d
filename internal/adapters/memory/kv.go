package memory

import (
	"sync"

	"diario/internal/ports"
)

// KV implements ports.KeyValueStore with a map
type KV struct {
	mu     sync.Mutex
	values map[string]string
	writes int

	// SetErr, when non-nil, is returned from every Set
	SetErr error
}

// Ensure KV implements KeyValueStore
var _ ports.KeyValueStore = (*KV)(nil)

// NewKV creates an empty store
func NewKV() *KV {
	return &KV{values: make(map[string]string)}
}

// Get returns the value stored under key
func (kv *KV) Get(key string) (string, bool, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	v, ok := kv.values[key]
	return v, ok, nil
}

// Set stores value under key
func (kv *KV) Set(key, value string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	if kv.SetErr != nil {
		return kv.SetErr
	}
	kv.values[key] = value
	kv.writes++
	return nil
}

// Writes returns the number of successful Set calls
func (kv *KV) Writes() int {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	return kv.writes
}
