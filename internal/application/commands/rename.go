package commands

import (
	"context"
	"fmt"
	"strings"

	"diario/internal/application"
	"diario/internal/domain"
)

// RenameResult contains the result of a rename operation
type RenameResult struct {
	ID      string
	NewName string
	Message string
}

// RenameCountryCommand renames a country
type RenameCountryCommand struct {
	env       *Env
	OwnerID   string
	CountryID string
	Name      string
}

// NewRenameCountryCommand creates a new RenameCountryCommand
func NewRenameCountryCommand(env *Env, ownerID, countryID, name string) *RenameCountryCommand {
	return &RenameCountryCommand{
		env:       env,
		OwnerID:   ownerID,
		CountryID: countryID,
		Name:      name,
	}
}

// Validate checks if the rename operation is valid
func (c *RenameCountryCommand) Validate() error {
	if err := application.ValidateOwner(c.OwnerID); err != nil {
		return err
	}
	if err := application.ValidateRequired("name", c.Name); err != nil {
		return err
	}
	return application.ValidateCountry(c.env.Store.State(), c.CountryID)
}

// Execute runs the rename country command
func (c *RenameCountryCommand) Execute(ctx context.Context) (*RenameResult, error) {
	gen := c.env.Session()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(c.Name)
	if err := c.env.Remote.UpdateCountry(ctx, c.CountryID, domain.CountryUpdate{Name: &name}, c.OwnerID); err != nil {
		return nil, c.env.remoteFailure("rename country", err)
	}

	if _, err := c.env.apply(gen, domain.RenameCountry(c.CountryID, name, c.env.now())); err != nil {
		return nil, err
	}

	return &RenameResult{
		ID:      c.CountryID,
		NewName: name,
		Message: fmt.Sprintf("Country renamed to %q", name),
	}, nil
}

// RenameCityCommand renames a city
type RenameCityCommand struct {
	env       *Env
	OwnerID   string
	CountryID string
	CityID    string
	Name      string
}

// NewRenameCityCommand creates a new RenameCityCommand
func NewRenameCityCommand(env *Env, ownerID, countryID, cityID, name string) *RenameCityCommand {
	return &RenameCityCommand{
		env:       env,
		OwnerID:   ownerID,
		CountryID: countryID,
		CityID:    cityID,
		Name:      name,
	}
}

// Validate checks if the rename operation is valid
func (c *RenameCityCommand) Validate() error {
	if err := application.ValidateOwner(c.OwnerID); err != nil {
		return err
	}
	if err := application.ValidateRequired("name", c.Name); err != nil {
		return err
	}
	return application.ValidateCity(c.env.Store.State(), c.CountryID, c.CityID)
}

// Execute runs the rename city command
func (c *RenameCityCommand) Execute(ctx context.Context) (*RenameResult, error) {
	gen := c.env.Session()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(c.Name)
	if err := c.env.Remote.UpdateCity(ctx, c.CityID, domain.CityUpdate{Name: &name}, c.OwnerID); err != nil {
		return nil, c.env.remoteFailure("rename city", err)
	}

	if _, err := c.env.apply(gen, domain.RenameCity(c.CountryID, c.CityID, name, c.env.now())); err != nil {
		return nil, err
	}

	return &RenameResult{
		ID:      c.CityID,
		NewName: name,
		Message: fmt.Sprintf("City renamed to %q", name),
	}, nil
}

// UpdatePageTitleCommand renames a page. This is a committed write and
// moves updatedAt.
type UpdatePageTitleCommand struct {
	env       *Env
	OwnerID   string
	CountryID string
	CityID    string
	PageID    string
	Title     string
}

// NewUpdatePageTitleCommand creates a new UpdatePageTitleCommand
func NewUpdatePageTitleCommand(env *Env, ownerID, countryID, cityID, pageID, title string) *UpdatePageTitleCommand {
	return &UpdatePageTitleCommand{
		env:       env,
		OwnerID:   ownerID,
		CountryID: countryID,
		CityID:    cityID,
		PageID:    pageID,
		Title:     title,
	}
}

// Validate checks if the rename operation is valid
func (c *UpdatePageTitleCommand) Validate() error {
	if err := application.ValidateOwner(c.OwnerID); err != nil {
		return err
	}
	if err := application.ValidateRequired("title", c.Title); err != nil {
		return err
	}
	return application.ValidatePage(c.env.Store.State(), c.CountryID, c.CityID, c.PageID)
}

// Execute runs the update page title command
func (c *UpdatePageTitleCommand) Execute(ctx context.Context) (*RenameResult, error) {
	gen := c.env.Session()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(c.Title)
	update := domain.PageUpdate{Title: &title, Touch: true}
	if err := c.env.Remote.UpdatePage(ctx, c.PageID, update, c.OwnerID); err != nil {
		return nil, c.env.remoteFailure("update page title", err)
	}

	if _, err := c.env.apply(gen, domain.SetPageTitle(c.CountryID, c.CityID, c.PageID, title, c.env.now())); err != nil {
		return nil, err
	}

	return &RenameResult{
		ID:      c.PageID,
		NewName: title,
		Message: fmt.Sprintf("Title updated to %q", title),
	}, nil
}
