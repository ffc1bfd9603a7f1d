package commands

import (
	"context"

	"diario/internal/application"
	"diario/internal/domain"
)

// UpdateNotesResult contains the result of updating a country's notes
type UpdateNotesResult struct {
	CountryID string
	Message   string
}

// UpdateCountryNotesCommand replaces the free-text notes of a country.
// Empty notes are allowed.
type UpdateCountryNotesCommand struct {
	env       *Env
	OwnerID   string
	CountryID string
	Notes     string
}

// NewUpdateCountryNotesCommand creates a new UpdateCountryNotesCommand
func NewUpdateCountryNotesCommand(env *Env, ownerID, countryID, notes string) *UpdateCountryNotesCommand {
	return &UpdateCountryNotesCommand{
		env:       env,
		OwnerID:   ownerID,
		CountryID: countryID,
		Notes:     notes,
	}
}

// Validate checks if the update is valid
func (c *UpdateCountryNotesCommand) Validate() error {
	if err := application.ValidateOwner(c.OwnerID); err != nil {
		return err
	}
	return application.ValidateCountry(c.env.Store.State(), c.CountryID)
}

// Execute runs the update notes command
func (c *UpdateCountryNotesCommand) Execute(ctx context.Context) (*UpdateNotesResult, error) {
	gen := c.env.Session()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	notes := c.Notes
	if err := c.env.Remote.UpdateCountry(ctx, c.CountryID, domain.CountryUpdate{Notes: &notes}, c.OwnerID); err != nil {
		return nil, c.env.remoteFailure("update country notes", err)
	}

	if _, err := c.env.apply(gen, domain.SetCountryNotes(c.CountryID, notes, c.env.now())); err != nil {
		return nil, err
	}

	return &UpdateNotesResult{
		CountryID: c.CountryID,
		Message:   "Notes updated",
	}, nil
}
