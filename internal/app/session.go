// Package app assembles a journal session from configuration: remote store,
// local mirror, logger and notifier.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	diskvstore "diario/internal/adapters/diskv"
	"diario/internal/adapters/memory"
	"diario/internal/adapters/sqlstore"
	"diario/internal/config"
	"diario/internal/journal"
	"diario/internal/ports"
	"diario/internal/state"
)

// DriverMemory keeps the remote store in process; nothing outlives the run
// except the local mirror
const DriverMemory = "memory"

// Session is an open journal with the resources backing it
type Session struct {
	Journal *journal.Journal
	Mirror  *journal.Mirror

	closeRemote func() error
}

// Open builds the session described by cfg. The tree is seeded from the
// local mirror and the configured owner is resumed without a fetch.
func Open(ctx context.Context, cfg *config.Config, logger zerolog.Logger, notifier ports.Notifier) (*Session, error) {
	remote, closeRemote, err := openRemote(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store := state.NewStore()
	mirror := journal.NewMirror(diskvstore.New(cfg.DataDir), logger)
	mirror.Attach(store)

	j := journal.New(remote, store,
		journal.WithLogger(logger),
		journal.WithNotifier(notifier),
	)
	if cfg.Owner != "" {
		j.Resume(cfg.Owner)
	}

	logger.Debug().
		Str("driver", cfg.Driver).
		Str("data_dir", cfg.DataDir).
		Int("countries", len(store.State().Countries)).
		Msg("session opened")

	return &Session{Journal: j, Mirror: mirror, closeRemote: closeRemote}, nil
}

// Close stops mirroring and releases the remote store
func (s *Session) Close() error {
	s.Mirror.Detach()
	return s.closeRemote()
}

func openRemote(ctx context.Context, cfg *config.Config) (ports.RemoteStore, func() error, error) {
	switch cfg.Driver {
	case DriverMemory:
		return memory.NewRemote(), func() error { return nil }, nil
	case sqlstore.DriverSQLite, sqlstore.DriverPostgres:
		s, err := sqlstore.Open(ctx, cfg.Driver, cfg.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open remote store: %w", err)
		}
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown driver %q", cfg.Driver)
	}
}
