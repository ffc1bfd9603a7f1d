// Package sqlstore implements the remote journal store on database/sql.
//
// Two dialects are supported: SQLite through modernc.org/sqlite (the default,
// a single local file) and Postgres through the pgx stdlib driver. Every row
// carries the owner's id and every query is scoped by it.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"diario/internal/domain"
	"diario/internal/ports"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
	_ "modernc.org/sqlite"
)

// Driver names accepted by Open
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// sortableTime keeps a fixed number of fractional digits so text order
// matches time order
const sortableTime = "2006-01-02T15:04:05.000000000Z07:00"

// Store implements ports.RemoteStore over a SQL database
type Store struct {
	db      *sql.DB
	dialect dialect

	// Clock stamps created_at/updated_at
	Clock domain.Clock
	// NewID generates record ids
	NewID func() string
}

// Ensure Store implements RemoteStore
var _ ports.RemoteStore = (*Store)(nil)

type dialect struct {
	name       string
	sqlDriver  string
	schema     string
	positional bool // $1, $2 instead of ?
}

var dialects = map[string]dialect{
	DriverSQLite: {
		name:      DriverSQLite,
		sqlDriver: "sqlite",
		schema: `
			PRAGMA busy_timeout = 5000;
			PRAGMA synchronous = NORMAL;
			` + schemaDDL,
	},
	DriverPostgres: {
		name:       DriverPostgres,
		sqlDriver:  "pgx",
		schema:     schemaDDL,
		positional: true,
	},
}

const schemaDDL = `
	CREATE TABLE IF NOT EXISTS countries (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		icon TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS cities (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		country_id TEXT NOT NULL REFERENCES countries(id),
		name TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS pages (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		city_id TEXT NOT NULL REFERENCES cities(id),
		title TEXT NOT NULL,
		content TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_countries_user ON countries(user_id);
	CREATE INDEX IF NOT EXISTS idx_cities_country ON cities(country_id, user_id);
	CREATE INDEX IF NOT EXISTS idx_pages_city ON pages(city_id, user_id);
`

// Open connects to the database and applies the schema. For SQLite the dsn
// is a file path; its directory is created if needed.
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	d, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported driver %q (expected %s or %s)", driver, DriverSQLite, DriverPostgres)
	}

	if d.name == DriverSQLite {
		dsn = expandHome(dsn)
		if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open(d.sqlDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if d.name == DriverSQLite {
		// one writer; avoids SQLITE_BUSY between pooled connections
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}

	s := &Store{db: db, dialect: d, Clock: time.Now, NewID: uuid.NewString}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) migrate(ctx context.Context) error {
	// pgx runs one statement per Exec
	for _, stmt := range strings.Split(s.dialect.schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to setup database: %w", err)
		}
	}
	return nil
}

// bind rewrites ? placeholders for dialects that number them
func (s *Store) bind(query string) string {
	if !s.dialect.positional {
		return query
	}
	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func (s *Store) now() string {
	return s.Clock().UTC().Format(sortableTime)
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
