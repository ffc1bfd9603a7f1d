package commands

import (
	"context"
	"fmt"

	"diario/internal/application"
	"diario/internal/domain"
)

// DraftPageResult contains the result of a draft write.
// Synced is false when the remote mirror write failed; the local copy is kept.
type DraftPageResult struct {
	PageID string
	Synced bool
}

// DraftPageCommand applies in-progress content.
//
// The local tree is updated before the remote call and is never rolled back:
// the local copy is authoritative for unsaved edits. Timestamps do not move.
type DraftPageCommand struct {
	env       *Env
	OwnerID   string
	CountryID string
	CityID    string
	PageID    string
	Content   string
}

// NewDraftPageCommand creates a new DraftPageCommand
func NewDraftPageCommand(env *Env, ownerID, countryID, cityID, pageID, content string) *DraftPageCommand {
	return &DraftPageCommand{
		env:       env,
		OwnerID:   ownerID,
		CountryID: countryID,
		CityID:    cityID,
		PageID:    pageID,
		Content:   content,
	}
}

// Validate checks if the draft can be applied
func (c *DraftPageCommand) Validate() error {
	if err := application.ValidateOwner(c.OwnerID); err != nil {
		return err
	}
	return application.ValidatePage(c.env.Store.State(), c.CountryID, c.CityID, c.PageID)
}

// Execute runs the draft command. Remote failures are logged, not returned.
func (c *DraftPageCommand) Execute(ctx context.Context) (*DraftPageResult, error) {
	gen := c.env.Session()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if _, err := c.env.apply(gen, domain.SetPageContent(c.CountryID, c.CityID, c.PageID, c.Content)); err != nil {
		return nil, err
	}

	content := c.Content
	err := c.env.Remote.UpdatePage(ctx, c.PageID, domain.PageUpdate{Content: &content}, c.OwnerID)
	if err != nil {
		c.env.Logger.Warn().Err(err).Str("page", c.PageID).Msg("draft not mirrored remotely")
		return &DraftPageResult{PageID: c.PageID, Synced: false}, nil
	}

	return &DraftPageResult{PageID: c.PageID, Synced: true}, nil
}

// SavePageResult contains the result of an explicit save
type SavePageResult struct {
	Page    domain.Page
	Message string
}

// SavePageCommand commits page content: remote first, then content and
// updatedAt locally
type SavePageCommand struct {
	env       *Env
	OwnerID   string
	CountryID string
	CityID    string
	PageID    string
	Content   string
}

// NewSavePageCommand creates a new SavePageCommand
func NewSavePageCommand(env *Env, ownerID, countryID, cityID, pageID, content string) *SavePageCommand {
	return &SavePageCommand{
		env:       env,
		OwnerID:   ownerID,
		CountryID: countryID,
		CityID:    cityID,
		PageID:    pageID,
		Content:   content,
	}
}

// Validate checks if the save is valid
func (c *SavePageCommand) Validate() error {
	if err := application.ValidateOwner(c.OwnerID); err != nil {
		return err
	}
	return application.ValidatePage(c.env.Store.State(), c.CountryID, c.CityID, c.PageID)
}

// Execute runs the save command
func (c *SavePageCommand) Execute(ctx context.Context) (*SavePageResult, error) {
	gen := c.env.Session()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	content := c.Content
	update := domain.PageUpdate{Content: &content, Touch: true}
	if err := c.env.Remote.UpdatePage(ctx, c.PageID, update, c.OwnerID); err != nil {
		return nil, c.env.remoteFailure("save page", err)
	}

	next, err := c.env.apply(gen, domain.CommitPageContent(c.CountryID, c.CityID, c.PageID, content, c.env.now()))
	if err != nil {
		return nil, err
	}
	page, ok := next.Page(c.CountryID, c.CityID, c.PageID)
	if !ok {
		// deleted locally while the save was in flight
		c.env.Logger.Warn().Str("page", c.PageID).Msg("saved page no longer in the local tree")
		return nil, fmt.Errorf("page %s: %w", c.PageID, application.ErrNotFound)
	}

	return &SavePageResult{
		Page:    page,
		Message: "Your changes were saved",
	}, nil
}
