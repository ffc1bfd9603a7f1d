package commands

import (
	"context"
	"fmt"

	"diario/internal/application"
	"diario/internal/domain"
)

// DeleteResult contains the result of a delete operation
type DeleteResult struct {
	DeletedID string
	Message   string
}

// DeleteCountryCommand deletes a country with all its cities and pages
type DeleteCountryCommand struct {
	env       *Env
	OwnerID   string
	CountryID string
}

// NewDeleteCountryCommand creates a new DeleteCountryCommand
func NewDeleteCountryCommand(env *Env, ownerID, countryID string) *DeleteCountryCommand {
	return &DeleteCountryCommand{
		env:       env,
		OwnerID:   ownerID,
		CountryID: countryID,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteCountryCommand) Validate() error {
	if err := application.ValidateOwner(c.OwnerID); err != nil {
		return err
	}
	return application.ValidateRequired("countryID", c.CountryID)
}

// Execute runs the delete country command
func (c *DeleteCountryCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	gen := c.env.Session()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.env.Remote.DeleteCountry(ctx, c.CountryID, c.OwnerID); err != nil {
		return nil, c.env.remoteFailure("delete country", err)
	}

	if _, err := c.env.apply(gen, domain.RemoveCountry(c.CountryID)); err != nil {
		return nil, err
	}

	return &DeleteResult{
		DeletedID: c.CountryID,
		Message:   "The country and all its cities were deleted",
	}, nil
}

// DeleteCityCommand deletes a city with all its pages
type DeleteCityCommand struct {
	env       *Env
	OwnerID   string
	CountryID string
	CityID    string
}

// NewDeleteCityCommand creates a new DeleteCityCommand
func NewDeleteCityCommand(env *Env, ownerID, countryID, cityID string) *DeleteCityCommand {
	return &DeleteCityCommand{
		env:       env,
		OwnerID:   ownerID,
		CountryID: countryID,
		CityID:    cityID,
	}
}

// Validate checks that the city exists under the given country, so the
// remote cascade and the local removal hit the same city
func (c *DeleteCityCommand) Validate() error {
	if err := application.ValidateOwner(c.OwnerID); err != nil {
		return err
	}
	return application.ValidateCity(c.env.Store.State(), c.CountryID, c.CityID)
}

// Execute runs the delete city command
func (c *DeleteCityCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	gen := c.env.Session()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.env.Remote.DeleteCity(ctx, c.CityID, c.OwnerID); err != nil {
		return nil, c.env.remoteFailure("delete city", err)
	}

	if _, err := c.env.apply(gen, domain.RemoveCity(c.CountryID, c.CityID, c.env.now())); err != nil {
		return nil, err
	}

	return &DeleteResult{
		DeletedID: c.CityID,
		Message:   "The city and all its pages were deleted",
	}, nil
}

// DeletePageCommand deletes a single page
type DeletePageCommand struct {
	env       *Env
	OwnerID   string
	CountryID string
	CityID    string
	PageID    string
}

// NewDeletePageCommand creates a new DeletePageCommand
func NewDeletePageCommand(env *Env, ownerID, countryID, cityID, pageID string) *DeletePageCommand {
	return &DeletePageCommand{
		env:       env,
		OwnerID:   ownerID,
		CountryID: countryID,
		CityID:    cityID,
		PageID:    pageID,
	}
}

// Validate checks that the page exists under the given city
func (c *DeletePageCommand) Validate() error {
	if err := application.ValidateOwner(c.OwnerID); err != nil {
		return err
	}
	return application.ValidatePage(c.env.Store.State(), c.CountryID, c.CityID, c.PageID)
}

// Execute runs the delete page command
func (c *DeletePageCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	gen := c.env.Session()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.env.Remote.DeletePage(ctx, c.PageID, c.OwnerID); err != nil {
		return nil, c.env.remoteFailure("delete page", err)
	}

	if _, err := c.env.apply(gen, domain.RemovePage(c.CountryID, c.CityID, c.PageID, c.env.now())); err != nil {
		return nil, err
	}

	return &DeleteResult{
		DeletedID: c.PageID,
		Message:   fmt.Sprintf("Page %s deleted", c.PageID),
	}, nil
}
