package sqlstore

import (
	"context"
	"fmt"
	"strings"

	"diario/internal/application"
	"diario/internal/domain"
)

// ListPages returns a city's pages ordered by creation time
func (s *Store) ListPages(ctx context.Context, cityID, ownerID string) ([]domain.PageRecord, error) {
	rows, err := s.db.QueryContext(ctx, s.bind(`
		SELECT id, user_id, city_id, title, content, created_at, updated_at
		FROM pages WHERE city_id = ? AND user_id = ?
		ORDER BY created_at, id
	`), cityID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	defer rows.Close()

	pages := make([]domain.PageRecord, 0)
	for rows.Next() {
		var p domain.PageRecord
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.CityID, &p.Title, &p.Content, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// CreatePage inserts an empty page under one of the owner's cities
func (s *Store) CreatePage(ctx context.Context, fields domain.NewPage, ownerID string) (*domain.PageRecord, error) {
	now := s.now()
	rec := domain.PageRecord{
		ID:        s.NewID(),
		OwnerID:   ownerID,
		CityID:    fields.CityID,
		Title:     fields.Title,
		CreatedAt: domain.Timestamp(now),
		UpdatedAt: domain.Timestamp(now),
	}

	err := s.withTx(ctx, func(t *storeTx) error {
		ok, err := t.owned(ctx, "cities", fields.CityID, ownerID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("city %s: %w", fields.CityID, application.ErrNotFound)
		}
		_, err = t.exec(ctx, `
			INSERT INTO pages (id, user_id, city_id, title, content, created_at, updated_at)
			VALUES (?, ?, ?, ?, '', ?, ?)
		`, rec.ID, rec.OwnerID, rec.CityID, rec.Title, now, now)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	return &rec, nil
}

// UpdatePage applies a partial update; updated_at moves only when Touch is set
func (s *Store) UpdatePage(ctx context.Context, id string, update domain.PageUpdate, ownerID string) error {
	var sets []string
	var args []any
	if update.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *update.Title)
	}
	if update.Content != nil {
		sets = append(sets, "content = ?")
		args = append(args, *update.Content)
	}
	if update.Touch {
		sets = append(sets, "updated_at = ?")
		args = append(args, s.now())
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id, ownerID)

	res, err := s.db.ExecContext(ctx,
		s.bind(`UPDATE pages SET `+strings.Join(sets, ", ")+` WHERE id = ? AND user_id = ?`), args...)
	if err != nil {
		return fmt.Errorf("failed to update page: %w", err)
	}
	return requireAffected(res, "page", id)
}

// DeletePage removes a page
func (s *Store) DeletePage(ctx context.Context, id, ownerID string) error {
	_, err := s.db.ExecContext(ctx, s.bind(`DELETE FROM pages WHERE id = ? AND user_id = ?`), id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete page: %w", err)
	}
	return nil
}
