package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"diario/internal/application"
)

// storeTx scopes a group of statements to one transaction
type storeTx struct {
	tx   *sql.Tx
	bind func(string) string
}

// withTx runs fn in a transaction, committing on success and rolling back
// on any error
func (s *Store) withTx(ctx context.Context, fn func(t *storeTx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(&storeTx{tx: tx, bind: s.bind}); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

func (t *storeTx) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return t.tx.ExecContext(ctx, t.bind(query), args...)
}

// owned reports whether table has a row with id belonging to ownerID
func (t *storeTx) owned(ctx context.Context, table, id, ownerID string) (bool, error) {
	var n int
	err := t.tx.QueryRowContext(ctx,
		t.bind(`SELECT COUNT(*) FROM `+table+` WHERE id = ? AND user_id = ?`), id, ownerID,
	).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// deletePagesOfCities removes the pages of every city matching where
func (t *storeTx) deletePagesOfCities(ctx context.Context, where string, args ...any) error {
	_, err := t.exec(ctx, `DELETE FROM pages WHERE city_id IN (SELECT id FROM cities WHERE `+where+`)`, args...)
	return err
}

// requireAffected turns a zero-row update into a not-found error
func requireAffected(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, application.ErrNotFound)
	}
	return nil
}
