package journal

import (
	"errors"

	"github.com/rs/zerolog"

	"diario/internal/domain"
	"diario/internal/ports"
	"diario/internal/state"
)

// Mirror keeps a serialized copy of the tree in local storage so a session
// can start before the remote store answers.
//
// The copy is written after every store change and read once, at startup.
// Storage failures are logged and never reach the store.
type Mirror struct {
	kv     ports.KeyValueStore
	logger zerolog.Logger
	opts   domain.MigrateOptions

	unsubscribe func()
}

// NewMirror creates a mirror over kv
func NewMirror(kv ports.KeyValueStore, logger zerolog.Logger) *Mirror {
	return &Mirror{kv: kv, logger: logger}
}

// WithMigrateOptions sets the id generator and clock used when upgrading a
// legacy snapshot
func (m *Mirror) WithMigrateOptions(opts domain.MigrateOptions) *Mirror {
	m.opts = opts
	return m
}

// Load reads the stored snapshot once and migrates it to the current shape.
// A missing, unreadable or malformed snapshot yields the empty journal.
func (m *Mirror) Load() domain.JournalState {
	raw, ok, err := m.kv.Get(domain.SnapshotKey)
	if err != nil {
		m.logger.Error().Err(err).Msg("failed to read local journal")
		return domain.EmptyState()
	}
	if !ok || raw == "" {
		return domain.EmptyState()
	}

	s, err := domain.Migrate([]byte(raw), m.opts)
	if err != nil {
		var migErr *domain.MigrationError
		if errors.As(err, &migErr) {
			m.logger.Warn().Err(err).Str("reason", migErr.Reason).Msg("discarding unreadable local journal")
		} else {
			m.logger.Warn().Err(err).Msg("discarding unreadable local journal")
		}
		return domain.EmptyState()
	}
	return s
}

// Attach seeds store with the loaded snapshot and starts mirroring its
// changes. The seed itself is written back, so a legacy snapshot is
// rewritten in the current shape right away.
func (m *Mirror) Attach(store *state.Store) domain.JournalState {
	loaded := m.Load()
	m.unsubscribe = store.Subscribe(m.write)
	return store.Update(func(domain.JournalState) domain.JournalState { return loaded })
}

// Detach stops mirroring
func (m *Mirror) Detach() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

func (m *Mirror) write(s domain.JournalState) {
	data, err := domain.MarshalSnapshot(s)
	if err != nil {
		m.logger.Error().Err(err).Msg("failed to encode journal snapshot")
		return
	}
	if err := m.kv.Set(domain.SnapshotKey, string(data)); err != nil {
		m.logger.Error().Err(err).Msg("failed to write local journal")
	}
}
