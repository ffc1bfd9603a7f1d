package ports

// KeyValueStore is the local durable storage the journal is mirrored to.
// Calls are synchronous; the last write wins.
type KeyValueStore interface {
	// Get returns the stored value. found is false when the key was never set.
	Get(key string) (value string, found bool, err error)
	Set(key, value string) error
}
