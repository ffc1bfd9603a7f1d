package ports

import (
	"context"

	"diario/internal/domain"
)

// CountryRepository is the remote persistence for countries, keyed by owner
type CountryRepository interface {
	ListCountries(ctx context.Context, ownerID string) ([]domain.CountryRecord, error)
	CreateCountry(ctx context.Context, fields domain.NewCountry, ownerID string) (*domain.CountryRecord, error)
	UpdateCountry(ctx context.Context, id string, update domain.CountryUpdate, ownerID string) error
	// DeleteCountry also removes the country's cities and their pages
	DeleteCountry(ctx context.Context, id, ownerID string) error
}

// CityRepository is the remote persistence for cities
type CityRepository interface {
	ListCities(ctx context.Context, countryID, ownerID string) ([]domain.CityRecord, error)
	CreateCity(ctx context.Context, fields domain.NewCity, ownerID string) (*domain.CityRecord, error)
	UpdateCity(ctx context.Context, id string, update domain.CityUpdate, ownerID string) error
	// DeleteCity also removes the city's pages
	DeleteCity(ctx context.Context, id, ownerID string) error
}

// PageRepository is the remote persistence for pages
type PageRepository interface {
	ListPages(ctx context.Context, cityID, ownerID string) ([]domain.PageRecord, error)
	CreatePage(ctx context.Context, fields domain.NewPage, ownerID string) (*domain.PageRecord, error)
	UpdatePage(ctx context.Context, id string, update domain.PageUpdate, ownerID string) error
	DeletePage(ctx context.Context, id, ownerID string) error
}

// RemoteStore is the network-backed source of truth.
//
// Lists are ordered: countries and cities by name, pages by creation time.
// Any method may fail with a transport or authorization error.
type RemoteStore interface {
	CountryRepository
	CityRepository
	PageRepository
}
