// Package memory provides in-process implementations of the remote store and
// local key/value ports. They back tests and the offline CLI mode.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"diario/internal/application"
	"diario/internal/domain"
	"diario/internal/ports"
)

// Remote implements ports.RemoteStore in memory
type Remote struct {
	mu        sync.Mutex
	countries map[string]domain.CountryRecord
	cities    map[string]domain.CityRecord
	pages     map[string]domain.PageRecord

	// Clock stamps created_at/updated_at
	Clock domain.Clock
	// NewID generates record ids
	NewID func() string
	// Fail, when set, is consulted before every call; a non-nil result is
	// returned as the call's error. op is e.g. "CreateCountry".
	Fail func(op string) error

	calls []string
}

// Ensure Remote implements RemoteStore
var _ ports.RemoteStore = (*Remote)(nil)

// NewRemote creates an empty in-memory remote store
func NewRemote() *Remote {
	return &Remote{
		countries: make(map[string]domain.CountryRecord),
		cities:    make(map[string]domain.CityRecord),
		pages:     make(map[string]domain.PageRecord),
		Clock:     time.Now,
		NewID:     uuid.NewString,
	}
}

// Calls returns the operations issued so far, in order
func (r *Remote) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// Page returns a stored page record, for assertions
func (r *Remote) Page(id string) (domain.PageRecord, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pages[id]
	return p, ok
}

// Counts returns how many countries, cities and pages are stored
func (r *Remote) Counts() (countries, cities, pages int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.countries), len(r.cities), len(r.pages)
}

func (r *Remote) begin(ctx context.Context, op string) error {
	r.calls = append(r.calls, op)
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.Fail != nil {
		return r.Fail(op)
	}
	return nil
}

func (r *Remote) now() domain.Timestamp {
	return domain.NewTimestamp(r.Clock())
}

func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, application.ErrNotFound)
}

// ListCountries returns the owner's countries ordered by name
func (r *Remote) ListCountries(ctx context.Context, ownerID string) ([]domain.CountryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.begin(ctx, "ListCountries"); err != nil {
		return nil, err
	}
	out := make([]domain.CountryRecord, 0)
	for _, c := range r.countries {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// CreateCountry inserts a country with empty notes
func (r *Remote) CreateCountry(ctx context.Context, fields domain.NewCountry, ownerID string) (*domain.CountryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.begin(ctx, "CreateCountry"); err != nil {
		return nil, err
	}
	now := r.now()
	rec := domain.CountryRecord{
		ID:        r.NewID(),
		OwnerID:   ownerID,
		Name:      fields.Name,
		Icon:      fields.Icon,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.countries[rec.ID] = rec
	return &rec, nil
}

// UpdateCountry applies a partial update and moves updated_at
func (r *Remote) UpdateCountry(ctx context.Context, id string, update domain.CountryUpdate, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.begin(ctx, "UpdateCountry"); err != nil {
		return err
	}
	rec, ok := r.countries[id]
	if !ok || rec.OwnerID != ownerID {
		return notFound("country", id)
	}
	if update.Name != nil {
		rec.Name = *update.Name
	}
	if update.Icon != nil {
		rec.Icon = *update.Icon
	}
	if update.Notes != nil {
		rec.Notes = *update.Notes
	}
	rec.UpdatedAt = r.now()
	r.countries[id] = rec
	return nil
}

// DeleteCountry removes a country, its cities and their pages
func (r *Remote) DeleteCountry(ctx context.Context, id, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.begin(ctx, "DeleteCountry"); err != nil {
		return err
	}
	for cityID, city := range r.cities {
		if city.CountryID == id && city.OwnerID == ownerID {
			r.deletePagesOf(cityID, ownerID)
			delete(r.cities, cityID)
		}
	}
	if rec, ok := r.countries[id]; ok && rec.OwnerID == ownerID {
		delete(r.countries, id)
	}
	return nil
}

// ListCities returns a country's cities ordered by name
func (r *Remote) ListCities(ctx context.Context, countryID, ownerID string) ([]domain.CityRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.begin(ctx, "ListCities"); err != nil {
		return nil, err
	}
	out := make([]domain.CityRecord, 0)
	for _, c := range r.cities {
		if c.CountryID == countryID && c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// CreateCity inserts a city
func (r *Remote) CreateCity(ctx context.Context, fields domain.NewCity, ownerID string) (*domain.CityRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.begin(ctx, "CreateCity"); err != nil {
		return nil, err
	}
	if c, ok := r.countries[fields.CountryID]; !ok || c.OwnerID != ownerID {
		return nil, notFound("country", fields.CountryID)
	}
	rec := domain.CityRecord{
		ID:        r.NewID(),
		OwnerID:   ownerID,
		CountryID: fields.CountryID,
		Name:      fields.Name,
		CreatedAt: r.now(),
	}
	r.cities[rec.ID] = rec
	return &rec, nil
}

// UpdateCity applies a partial update
func (r *Remote) UpdateCity(ctx context.Context, id string, update domain.CityUpdate, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.begin(ctx, "UpdateCity"); err != nil {
		return err
	}
	rec, ok := r.cities[id]
	if !ok || rec.OwnerID != ownerID {
		return notFound("city", id)
	}
	if update.Name != nil {
		rec.Name = *update.Name
	}
	r.cities[id] = rec
	return nil
}

// DeleteCity removes a city and its pages
func (r *Remote) DeleteCity(ctx context.Context, id, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.begin(ctx, "DeleteCity"); err != nil {
		return err
	}
	r.deletePagesOf(id, ownerID)
	if rec, ok := r.cities[id]; ok && rec.OwnerID == ownerID {
		delete(r.cities, id)
	}
	return nil
}

// ListPages returns a city's pages ordered by creation time
func (r *Remote) ListPages(ctx context.Context, cityID, ownerID string) ([]domain.PageRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.begin(ctx, "ListPages"); err != nil {
		return nil, err
	}
	out := make([]domain.PageRecord, 0)
	for _, p := range r.pages {
		if p.CityID == cityID && p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt == out[j].CreatedAt {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt < out[j].CreatedAt
	})
	return out, nil
}

// CreatePage inserts an empty page
func (r *Remote) CreatePage(ctx context.Context, fields domain.NewPage, ownerID string) (*domain.PageRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.begin(ctx, "CreatePage"); err != nil {
		return nil, err
	}
	if c, ok := r.cities[fields.CityID]; !ok || c.OwnerID != ownerID {
		return nil, notFound("city", fields.CityID)
	}
	now := r.now()
	rec := domain.PageRecord{
		ID:        r.NewID(),
		OwnerID:   ownerID,
		CityID:    fields.CityID,
		Title:     fields.Title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.pages[rec.ID] = rec
	return &rec, nil
}

// UpdatePage applies a partial update; updated_at moves only when Touch is set
func (r *Remote) UpdatePage(ctx context.Context, id string, update domain.PageUpdate, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.begin(ctx, "UpdatePage"); err != nil {
		return err
	}
	rec, ok := r.pages[id]
	if !ok || rec.OwnerID != ownerID {
		return notFound("page", id)
	}
	if update.Title != nil {
		rec.Title = *update.Title
	}
	if update.Content != nil {
		rec.Content = *update.Content
	}
	if update.Touch {
		rec.UpdatedAt = r.now()
	}
	r.pages[id] = rec
	return nil
}

// DeletePage removes a page
func (r *Remote) DeletePage(ctx context.Context, id, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.begin(ctx, "DeletePage"); err != nil {
		return err
	}
	if rec, ok := r.pages[id]; ok && rec.OwnerID == ownerID {
		delete(r.pages, id)
	}
	return nil
}

func (r *Remote) deletePagesOf(cityID, ownerID string) {
	for id, p := range r.pages {
		if p.CityID == cityID && p.OwnerID == ownerID {
			delete(r.pages, id)
		}
	}
}
