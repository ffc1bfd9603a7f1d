package sqlstore

import (
	"context"
	"fmt"

	"diario/internal/application"
	"diario/internal/domain"
)

// ListCities returns a country's cities ordered by name
func (s *Store) ListCities(ctx context.Context, countryID, ownerID string) ([]domain.CityRecord, error) {
	rows, err := s.db.QueryContext(ctx, s.bind(`
		SELECT id, user_id, country_id, name, created_at
		FROM cities WHERE country_id = ? AND user_id = ?
		ORDER BY name, id
	`), countryID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	defer rows.Close()

	cities := make([]domain.CityRecord, 0)
	for rows.Next() {
		var c domain.CityRecord
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.CountryID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}

// CreateCity inserts a city under one of the owner's countries
func (s *Store) CreateCity(ctx context.Context, fields domain.NewCity, ownerID string) (*domain.CityRecord, error) {
	now := s.now()
	rec := domain.CityRecord{
		ID:        s.NewID(),
		OwnerID:   ownerID,
		CountryID: fields.CountryID,
		Name:      fields.Name,
		CreatedAt: domain.Timestamp(now),
	}

	err := s.withTx(ctx, func(t *storeTx) error {
		ok, err := t.owned(ctx, "countries", fields.CountryID, ownerID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("country %s: %w", fields.CountryID, application.ErrNotFound)
		}
		if _, err := t.exec(ctx, `
			INSERT INTO cities (id, user_id, country_id, name, created_at)
			VALUES (?, ?, ?, ?, ?)
		`, rec.ID, rec.OwnerID, rec.CountryID, rec.Name, now); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create city: %w", err)
	}
	return &rec, nil
}

// UpdateCity applies a partial update
func (s *Store) UpdateCity(ctx context.Context, id string, update domain.CityUpdate, ownerID string) error {
	if update.Name == nil {
		return nil
	}
	res, err := s.db.ExecContext(ctx, s.bind(`
		UPDATE cities SET name = ? WHERE id = ? AND user_id = ?
	`), *update.Name, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to update city: %w", err)
	}
	return requireAffected(res, "city", id)
}

// DeleteCity removes a city and its pages in one transaction
func (s *Store) DeleteCity(ctx context.Context, id, ownerID string) error {
	return s.withTx(ctx, func(t *storeTx) error {
		if err := t.deletePagesOfCities(ctx, `id = ? AND user_id = ?`, id, ownerID); err != nil {
			return fmt.Errorf("failed to delete pages: %w", err)
		}
		if _, err := t.exec(ctx, `DELETE FROM cities WHERE id = ? AND user_id = ?`, id, ownerID); err != nil {
			return fmt.Errorf("failed to delete city: %w", err)
		}
		return nil
	})
}
