package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diario/internal/adapters/notify"
	"diario/internal/config"
)

func testConfig(t *testing.T, driver string) *config.Config {
	dir := t.TempDir()
	return &config.Config{
		Owner:   "alice",
		Driver:  driver,
		DSN:     filepath.Join(dir, "journal.db"),
		DataDir: filepath.Join(dir, "mirror"),
	}
}

func TestOpen_ResumesFromMirror(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, "sqlite")
	logger := zerolog.Nop()

	first, err := Open(ctx, cfg, logger, notify.NewLog(logger))
	require.NoError(t, err)
	country, err := first.Journal.CreateCountry(ctx, "Peru", "")
	require.NoError(t, err)
	require.NoError(t, first.Close())

	// the next run starts from the mirrored tree before any fetch
	second, err := Open(ctx, cfg, logger, notify.NewLog(logger))
	require.NoError(t, err)
	defer second.Close()

	assert.Equal(t, "alice", second.Journal.Owner())
	active, ok := second.Journal.ActiveCountry()
	require.True(t, ok)
	assert.Equal(t, country.ID, active.ID)

	// and the remote copy agrees after a refresh
	require.NoError(t, second.Journal.Refresh(ctx))
	require.Len(t, second.Journal.State().Countries, 1)
	assert.Equal(t, "Peru", second.Journal.State().Countries[0].Name)
}

func TestOpen_Memory(t *testing.T) {
	s, err := Open(context.Background(), testConfig(t, DriverMemory), zerolog.Nop(), notify.NewLog(zerolog.Nop()))
	require.NoError(t, err)
	defer s.Close()
	assert.Empty(t, s.Journal.State().Countries)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), testConfig(t, "oracle"), zerolog.Nop(), notify.NewLog(zerolog.Nop()))
	require.Error(t, err)
}
