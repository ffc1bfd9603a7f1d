package journal

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diario/internal/adapters/memory"
	"diario/internal/domain"
	"diario/internal/state"
)

const legacySnapshot = `{"folders":[{"id":"f1","name":"Paris","pages":[],"createdAt":"t0"}],"activeFolder":"f1","activePage":null}`

func migrateOptions() domain.MigrateOptions {
	return domain.MigrateOptions{
		NewID: func() string { return "legacy-country" },
		Now:   func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) },
	}
}

func TestMirror_LoadsLegacySnapshot(t *testing.T) {
	kv := memory.NewKV()
	require.NoError(t, kv.Set(domain.SnapshotKey, legacySnapshot))
	store := state.NewStore()

	s := NewMirror(kv, zerolog.Nop()).WithMigrateOptions(migrateOptions()).Attach(store)

	require.Len(t, s.Countries, 1)
	assert.Equal(t, "My Travels", s.Countries[0].Name)
	assert.Equal(t, "legacy-country", s.ActiveCountry)
	assert.Equal(t, "f1", s.ActiveCity)

	city, ok := store.ActiveCity()
	require.True(t, ok)
	assert.Equal(t, "Paris", city.Name)

	// the seed is written back in the current shape
	raw, ok, err := kv.Get(domain.SnapshotKey)
	require.NoError(t, err)
	require.True(t, ok)
	var stored map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Contains(t, stored, "countries")
	assert.NotContains(t, stored, "folders")
}

func TestMirror_MissingOrMalformed(t *testing.T) {
	tests := []struct {
		name  string
		value *string
	}{
		{name: "missing"},
		{name: "not json", value: ptr("{oops")},
		{name: "unknown shape", value: ptr(`{"notes":[]}`)},
		{name: "array", value: ptr(`[1,2]`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := memory.NewKV()
			if tt.value != nil {
				require.NoError(t, kv.Set(domain.SnapshotKey, *tt.value))
			}

			s := NewMirror(kv, zerolog.Nop()).Load()

			assert.Equal(t, domain.EmptyState(), s)
		})
	}
}

func TestMirror_WritesEveryChange(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKV()
	store := state.NewStore()
	mirror := NewMirror(kv, zerolog.Nop())
	mirror.Attach(store)
	writes := kv.Writes()

	j := New(memory.NewRemote(), store)
	j.Resume("u1")
	country, err := j.CreateCountry(ctx, "Peru", "")
	require.NoError(t, err)
	require.NoError(t, j.SetActiveCountry(""))

	assert.Equal(t, writes+2, kv.Writes())

	// a fresh session picks up where the last one stopped
	raw, _, err := kv.Get(domain.SnapshotKey)
	require.NoError(t, err)
	restored, err := domain.Migrate([]byte(raw), domain.MigrateOptions{})
	require.NoError(t, err)
	require.Len(t, restored.Countries, 1)
	assert.Equal(t, country.ID, restored.Countries[0].ID)
	assert.Empty(t, restored.ActiveCountry)

	mirror.Detach()
	require.NoError(t, j.SetActiveCountry(country.ID))
	assert.Equal(t, writes+2, kv.Writes())
}

func TestMirror_WriteFailureDoesNotBlockStore(t *testing.T) {
	kv := memory.NewKV()
	kv.SetErr = errors.New("disk full")
	store := state.NewStore()
	NewMirror(kv, zerolog.Nop()).Attach(store)

	j := New(memory.NewRemote(), store)
	j.Resume("u1")
	_, err := j.CreateCountry(context.Background(), "Peru", "")

	require.NoError(t, err)
	assert.Len(t, store.State().Countries, 1)
	assert.Zero(t, kv.Writes())
}

func TestMirror_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKV()
	store := state.NewStore()
	NewMirror(kv, zerolog.Nop()).Attach(store)

	j := New(memory.NewRemote(), store)
	j.Resume("u1")
	country, err := j.CreateCountry(ctx, "Peru", "")
	require.NoError(t, err)
	city, err := j.CreateCity(ctx, country.ID, "Cusco")
	require.NoError(t, err)
	_, err = j.CreatePage(ctx, country.ID, city.ID, "Machu Picchu")
	require.NoError(t, err)

	next := state.NewStore()
	loaded := NewMirror(kv, zerolog.Nop()).Attach(next)

	assert.Equal(t, store.State(), loaded)
}

func ptr(s string) *string { return &s }
