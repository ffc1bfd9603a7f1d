// Package diskv stores the local journal mirror on disk, one file per key.
package diskv

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/peterbourgon/diskv/v3"

	"diario/internal/ports"
)

// cacheSizeMax bounds the in-memory read cache
const cacheSizeMax = 1024 * 1024 // 1MB

// KV implements ports.KeyValueStore over a diskv directory
type KV struct {
	d *diskv.Diskv
}

// Ensure KV implements KeyValueStore
var _ ports.KeyValueStore = (*KV)(nil)

// New creates a store rooted at basePath. The directory is created on the
// first write.
func New(basePath string) *KV {
	return &KV{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: cacheSizeMax,
	})}
}

// Get returns the value stored under key
func (kv *KV) Get(key string) (string, bool, error) {
	val, err := kv.d.Read(key)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return string(val), true, nil
}

// Set stores value under key, replacing any previous value
func (kv *KV) Set(key, value string) error {
	if err := kv.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
