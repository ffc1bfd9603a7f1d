package commands

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"diario/internal/application"
	"diario/internal/domain"
	"diario/internal/ports"
)

// fetchConcurrency bounds parallel list calls during a bulk fetch
const fetchConcurrency = 8

// FetchTreeResult contains the freshly fetched journal
type FetchTreeResult struct {
	Countries []domain.Country
	Message   string
}

// FetchTreeCommand loads the owner's whole tree from the remote store and
// replaces the local one. Active pointers are cleared; selection is not
// trusted across a fetch.
type FetchTreeCommand struct {
	env     *Env
	OwnerID string
}

// NewFetchTreeCommand creates a new FetchTreeCommand
func NewFetchTreeCommand(env *Env, ownerID string) *FetchTreeCommand {
	return &FetchTreeCommand{
		env:     env,
		OwnerID: ownerID,
	}
}

// Validate checks if the fetch is valid
func (c *FetchTreeCommand) Validate() error {
	return application.ValidateOwner(c.OwnerID)
}

// Execute runs the fetch. On failure the local tree is left untouched.
func (c *FetchTreeCommand) Execute(ctx context.Context) (*FetchTreeResult, error) {
	gen := c.env.Session()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	countries, err := FetchTree(ctx, c.env.Remote, c.OwnerID)
	if err != nil {
		return nil, c.env.remoteFailure("fetch journal", err)
	}

	if _, err := c.env.apply(gen, domain.ReplaceCountries(countries)); err != nil {
		return nil, err
	}

	return &FetchTreeResult{
		Countries: countries,
		Message:   fmt.Sprintf("Loaded %d countries", len(countries)),
	}, nil
}

// FetchTree assembles countries → cities → pages for an owner, keeping the
// order the remote store returns
func FetchTree(ctx context.Context, remote ports.RemoteStore, ownerID string) ([]domain.Country, error) {
	records, err := remote.ListCountries(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}

	countries := make([]domain.Country, len(records))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for i, rec := range records {
		g.Go(func() error {
			cities, err := fetchCities(gctx, remote, rec.ID, ownerID)
			if err != nil {
				return err
			}
			countries[i] = rec.ToCountry(cities)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return countries, nil
}

func fetchCities(ctx context.Context, remote ports.RemoteStore, countryID, ownerID string) ([]domain.City, error) {
	records, err := remote.ListCities(ctx, countryID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list cities of %s: %w", countryID, err)
	}

	cities := make([]domain.City, 0, len(records))
	for _, rec := range records {
		pageRecords, err := remote.ListPages(ctx, rec.ID, ownerID)
		if err != nil {
			return nil, fmt.Errorf("list pages of %s: %w", rec.ID, err)
		}
		pages := make([]domain.Page, 0, len(pageRecords))
		for _, p := range pageRecords {
			pages = append(pages, p.ToPage())
		}
		cities = append(cities, rec.ToCity(pages))
	}
	return cities, nil
}
