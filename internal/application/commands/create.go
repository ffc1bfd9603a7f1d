package commands

import (
	"context"
	"fmt"
	"strings"

	"diario/internal/application"
	"diario/internal/domain"
)

// CreateCountryResult contains the result of creating a country
type CreateCountryResult struct {
	Country domain.Country
	Message string
}

// CreateCountryCommand creates a country and selects it
type CreateCountryCommand struct {
	env     *Env
	OwnerID string
	Name    string
	Icon    string
}

// NewCreateCountryCommand creates a new CreateCountryCommand
func NewCreateCountryCommand(env *Env, ownerID, name, icon string) *CreateCountryCommand {
	return &CreateCountryCommand{
		env:     env,
		OwnerID: ownerID,
		Name:    name,
		Icon:    icon,
	}
}

// Validate checks if the create operation is valid
func (c *CreateCountryCommand) Validate() error {
	if err := application.ValidateOwner(c.OwnerID); err != nil {
		return err
	}
	return application.ValidateRequired("name", c.Name)
}

// Execute runs the create country command
func (c *CreateCountryCommand) Execute(ctx context.Context) (*CreateCountryResult, error) {
	gen := c.env.Session()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	icon := strings.TrimSpace(c.Icon)
	if icon == "" {
		icon = domain.DefaultIcon
	}
	name := strings.TrimSpace(c.Name)

	rec, err := c.env.Remote.CreateCountry(ctx, domain.NewCountry{Name: name, Icon: icon}, c.OwnerID)
	if err != nil {
		return nil, c.env.remoteFailure("create country", err)
	}

	country := rec.ToCountry(nil)
	if _, err := c.env.apply(gen, domain.AddCountry(country)); err != nil {
		return nil, err
	}

	return &CreateCountryResult{
		Country: country,
		Message: fmt.Sprintf("Country %q created", country.Name),
	}, nil
}

// CreateCityResult contains the result of creating a city
type CreateCityResult struct {
	City    domain.City
	Message string
}

// CreateCityCommand creates a city in a country and selects it
type CreateCityCommand struct {
	env       *Env
	OwnerID   string
	CountryID string
	Name      string
}

// NewCreateCityCommand creates a new CreateCityCommand
func NewCreateCityCommand(env *Env, ownerID, countryID, name string) *CreateCityCommand {
	return &CreateCityCommand{
		env:       env,
		OwnerID:   ownerID,
		CountryID: countryID,
		Name:      name,
	}
}

// Validate checks if the create operation is valid
func (c *CreateCityCommand) Validate() error {
	if err := application.ValidateOwner(c.OwnerID); err != nil {
		return err
	}
	if err := application.ValidateRequired("name", c.Name); err != nil {
		return err
	}
	return application.ValidateCountry(c.env.Store.State(), c.CountryID)
}

// Execute runs the create city command
func (c *CreateCityCommand) Execute(ctx context.Context) (*CreateCityResult, error) {
	gen := c.env.Session()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	fields := domain.NewCity{CountryID: c.CountryID, Name: strings.TrimSpace(c.Name)}
	rec, err := c.env.Remote.CreateCity(ctx, fields, c.OwnerID)
	if err != nil {
		return nil, c.env.remoteFailure("create city", err)
	}

	city := rec.ToCity(nil)
	if _, err := c.env.apply(gen, domain.AddCity(c.CountryID, city, c.env.now())); err != nil {
		return nil, err
	}

	return &CreateCityResult{
		City:    city,
		Message: fmt.Sprintf("City %q created", city.Name),
	}, nil
}

// CreatePageResult contains the result of creating a page
type CreatePageResult struct {
	Page    domain.Page
	Message string
}

// CreatePageCommand creates an empty page in a city and selects it
type CreatePageCommand struct {
	env       *Env
	OwnerID   string
	CountryID string
	CityID    string
	Title     string
}

// NewCreatePageCommand creates a new CreatePageCommand
func NewCreatePageCommand(env *Env, ownerID, countryID, cityID, title string) *CreatePageCommand {
	return &CreatePageCommand{
		env:       env,
		OwnerID:   ownerID,
		CountryID: countryID,
		CityID:    cityID,
		Title:     title,
	}
}

// Validate checks if the create operation is valid
func (c *CreatePageCommand) Validate() error {
	if err := application.ValidateOwner(c.OwnerID); err != nil {
		return err
	}
	if err := application.ValidateRequired("title", c.Title); err != nil {
		return err
	}
	return application.ValidateCity(c.env.Store.State(), c.CountryID, c.CityID)
}

// Execute runs the create page command
func (c *CreatePageCommand) Execute(ctx context.Context) (*CreatePageResult, error) {
	gen := c.env.Session()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	fields := domain.NewPage{CityID: c.CityID, Title: strings.TrimSpace(c.Title)}
	rec, err := c.env.Remote.CreatePage(ctx, fields, c.OwnerID)
	if err != nil {
		return nil, c.env.remoteFailure("create page", err)
	}

	page := rec.ToPage()
	if _, err := c.env.apply(gen, domain.AddPage(c.CountryID, c.CityID, page, c.env.now())); err != nil {
		return nil, err
	}

	return &CreatePageResult{
		Page:    page,
		Message: fmt.Sprintf("Page %q created", page.Title),
	}, nil
}
