package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LegacyCountryName is the country legacy folders are gathered under
const LegacyCountryName = "My Travels"

// MigrateOptions supplies the id generator and clock used when a legacy
// snapshot needs a synthesized country
type MigrateOptions struct {
	NewID func() string
	Now   Clock
}

func (o MigrateOptions) withDefaults() MigrateOptions {
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// MigrationError reports a persisted snapshot that could not be loaded
type MigrationError struct {
	Reason string
	Err    error
}

func (e *MigrationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("migrate snapshot: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("migrate snapshot: %s", e.Reason)
}

func (e *MigrationError) Unwrap() error {
	return e.Err
}

// snapshotVersion is one member of the persisted-shape union
type snapshotVersion interface {
	upgrade(opts MigrateOptions) JournalState
}

// Migrate turns a raw persisted blob into a JournalState, upgrading older
// shapes. The returned error is always a *MigrationError.
func Migrate(raw []byte, opts MigrateOptions) (JournalState, error) {
	version, err := detectSnapshot(raw)
	if err != nil {
		return EmptyState(), err
	}
	return version.upgrade(opts.withDefaults()), nil
}

// detectSnapshot picks the snapshot version by the keys present
func detectSnapshot(raw []byte) (snapshotVersion, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return nil, &MigrationError{Reason: "not a JSON object", Err: err}
	}
	if keys == nil {
		return nil, &MigrationError{Reason: "empty snapshot"}
	}

	_, hasCountries := keys["countries"]
	_, hasFolders := keys["folders"]

	switch {
	case hasCountries:
		var v SnapshotV2
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, &MigrationError{Reason: "invalid current snapshot", Err: err}
		}
		return v, nil
	case hasFolders:
		var v SnapshotV1
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, &MigrationError{Reason: "invalid legacy snapshot", Err: err}
		}
		return v, nil
	default:
		return nil, &MigrationError{Reason: "unrecognized snapshot shape"}
	}
}
