package commands

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"diario/internal/application"
	"diario/internal/domain"
	"diario/internal/ports"
	"diario/internal/state"
)

// Env carries what every sync command needs: the remote store, the tree
// store it reconciles, a clock and a logger
type Env struct {
	Remote ports.RemoteStore
	Store  *state.Store
	Clock  domain.Clock
	Logger zerolog.Logger

	session atomic.Uint64
}

// NewEnv creates an Env with the wall clock and a disabled logger
func NewEnv(remote ports.RemoteStore, store *state.Store) *Env {
	return &Env{
		Remote: remote,
		Store:  store,
		Clock:  time.Now,
		Logger: zerolog.Nop(),
	}
}

func (e *Env) now() domain.Timestamp {
	if e.Clock == nil {
		return domain.NewTimestamp(time.Now())
	}
	return domain.NewTimestamp(e.Clock())
}

// remoteFailure logs a failed remote call and wraps it for the caller
func (e *Env) remoteFailure(op string, err error) error {
	e.Logger.Error().Err(err).Str("op", op).Msg("remote call failed")
	return &application.RemoteError{Op: op, Err: err}
}

// Session returns the current session generation. Commands take it before
// their remote call and hand it to apply.
func (e *Env) Session() uint64 {
	return e.session.Load()
}

// EndSession starts a new generation, so results of calls still in flight
// are not applied
func (e *Env) EndSession() {
	e.session.Add(1)
}

// apply runs t on the store unless the session changed since gen was taken.
// The check happens inside the transform, so it cannot interleave with the
// Reset that follows EndSession.
func (e *Env) apply(gen uint64, t domain.Transform) (domain.JournalState, error) {
	stale := false
	next := e.Store.Update(func(s domain.JournalState) domain.JournalState {
		if e.session.Load() != gen {
			stale = true
			return s
		}
		return t(s)
	})
	if stale {
		return next, application.ErrSessionEnded
	}
	return next, nil
}
