package sqlstore

import (
	"context"
	"fmt"
	"strings"

	"diario/internal/domain"
)

// ListCountries returns the owner's countries ordered by name
func (s *Store) ListCountries(ctx context.Context, ownerID string) ([]domain.CountryRecord, error) {
	rows, err := s.db.QueryContext(ctx, s.bind(`
		SELECT id, user_id, name, icon, notes, created_at, updated_at
		FROM countries WHERE user_id = ?
		ORDER BY name, id
	`), ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	defer rows.Close()

	countries := make([]domain.CountryRecord, 0)
	for rows.Next() {
		var c domain.CountryRecord
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Icon, &c.Notes, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		countries = append(countries, c)
	}
	return countries, rows.Err()
}

// CreateCountry inserts a country with empty notes
func (s *Store) CreateCountry(ctx context.Context, fields domain.NewCountry, ownerID string) (*domain.CountryRecord, error) {
	now := domain.Timestamp(s.now())
	rec := domain.CountryRecord{
		ID:        s.NewID(),
		OwnerID:   ownerID,
		Name:      fields.Name,
		Icon:      fields.Icon,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := s.db.ExecContext(ctx, s.bind(`
		INSERT INTO countries (id, user_id, name, icon, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, '', ?, ?)
	`), rec.ID, rec.OwnerID, rec.Name, rec.Icon, string(now), string(now))
	if err != nil {
		return nil, fmt.Errorf("failed to create country: %w", err)
	}
	return &rec, nil
}

// UpdateCountry applies a partial update and moves updated_at
func (s *Store) UpdateCountry(ctx context.Context, id string, update domain.CountryUpdate, ownerID string) error {
	sets := []string{"updated_at = ?"}
	args := []any{s.now()}
	if update.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *update.Name)
	}
	if update.Icon != nil {
		sets = append(sets, "icon = ?")
		args = append(args, *update.Icon)
	}
	if update.Notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, *update.Notes)
	}
	args = append(args, id, ownerID)

	res, err := s.db.ExecContext(ctx,
		s.bind(`UPDATE countries SET `+strings.Join(sets, ", ")+` WHERE id = ? AND user_id = ?`), args...)
	if err != nil {
		return fmt.Errorf("failed to update country: %w", err)
	}
	return requireAffected(res, "country", id)
}

// DeleteCountry removes a country, its cities and their pages in one
// transaction. Deleting a missing country is not an error.
func (s *Store) DeleteCountry(ctx context.Context, id, ownerID string) error {
	return s.withTx(ctx, func(t *storeTx) error {
		if err := t.deletePagesOfCities(ctx, `country_id = ? AND user_id = ?`, id, ownerID); err != nil {
			return fmt.Errorf("failed to delete pages: %w", err)
		}
		if _, err := t.exec(ctx, `DELETE FROM cities WHERE country_id = ? AND user_id = ?`, id, ownerID); err != nil {
			return fmt.Errorf("failed to delete cities: %w", err)
		}
		if _, err := t.exec(ctx, `DELETE FROM countries WHERE id = ? AND user_id = ?`, id, ownerID); err != nil {
			return fmt.Errorf("failed to delete country: %w", err)
		}
		return nil
	})
}
