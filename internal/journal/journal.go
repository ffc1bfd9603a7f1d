// Package journal is the entry point for a signed-in session: it owns the
// tree store, runs the sync commands against the remote store and reports
// each outcome through a Notifier.
package journal

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"diario/internal/application"
	"diario/internal/application/commands"
	"diario/internal/domain"
	"diario/internal/ports"
	"diario/internal/state"
)

// Journal wires the tree store, the remote store and a notifier together
type Journal struct {
	env      *commands.Env
	notifier ports.Notifier
	logger   zerolog.Logger

	mu      sync.RWMutex
	ownerID string
	// fetches counts bulk fetches in flight
	fetches atomic.Int32
}

// Option configures a Journal
type Option func(*Journal)

// WithClock overrides the clock used for local timestamps
func WithClock(clock domain.Clock) Option {
	return func(j *Journal) { j.env.Clock = clock }
}

// WithLogger sets the logger used by the journal and its commands
func WithLogger(logger zerolog.Logger) Option {
	return func(j *Journal) {
		j.logger = logger
		j.env.Logger = logger
	}
}

// WithNotifier sets where action outcomes are reported
func WithNotifier(n ports.Notifier) Option {
	return func(j *Journal) { j.notifier = n }
}

// New creates a signed-out journal over the given stores
func New(remote ports.RemoteStore, store *state.Store, opts ...Option) *Journal {
	j := &Journal{
		env:      commands.NewEnv(remote, store),
		notifier: discard{},
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Store returns the underlying tree store
func (j *Journal) Store() *state.Store {
	return j.env.Store
}

// State returns the current journal tree and selection
func (j *Journal) State() domain.JournalState {
	return j.env.Store.State()
}

// ActiveCountry resolves the selected country
func (j *Journal) ActiveCountry() (domain.Country, bool) {
	return j.env.Store.ActiveCountry()
}

// ActiveCity resolves the selected city
func (j *Journal) ActiveCity() (domain.City, bool) {
	return j.env.Store.ActiveCity()
}

// ActivePage resolves the selected page
func (j *Journal) ActivePage() (domain.Page, bool) {
	return j.env.Store.ActivePage()
}

// Loading reports whether a bulk fetch is in flight
func (j *Journal) Loading() bool {
	return j.fetches.Load() > 0
}

// Owner returns the signed-in identity, or "" when signed out
func (j *Journal) Owner() string {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.ownerID
}

func (j *Journal) setOwner(ownerID string) {
	j.mu.Lock()
	j.ownerID = ownerID
	j.mu.Unlock()
}

// SignIn sets the identity and replaces the local tree with the owner's
// remote journal
func (j *Journal) SignIn(ctx context.Context, ownerID string) error {
	if err := application.ValidateRequired("owner", ownerID); err != nil {
		return j.fail("sign in", err)
	}
	j.env.EndSession()
	j.setOwner(ownerID)
	j.logger.Info().Str("owner", ownerID).Msg("signed in")
	return j.Refresh(ctx)
}

// Resume sets the identity without fetching, keeping the tree loaded from
// the local mirror
func (j *Journal) Resume(ownerID string) {
	j.env.EndSession()
	j.setOwner(ownerID)
}

// Refresh re-fetches the whole tree. Selection is cleared on success; on
// failure the local tree is kept.
func (j *Journal) Refresh(ctx context.Context) error {
	j.fetches.Add(1)
	defer j.fetches.Add(-1)

	result, err := commands.NewFetchTreeCommand(j.env, j.Owner()).Execute(ctx)
	if err != nil {
		return j.fail("load your journal", err)
	}
	j.logger.Debug().Int("countries", len(result.Countries)).Msg("journal fetched")
	return nil
}

// SignOut forgets the identity and empties the tree. Calls still in flight
// finish against the remote store but leave the tree alone.
func (j *Journal) SignOut() {
	j.env.EndSession()
	j.setOwner("")
	j.env.Store.Reset()
	j.succeed("Signed out", "You were signed out")
}

// CreateCountry creates a country and selects it
func (j *Journal) CreateCountry(ctx context.Context, name, icon string) (domain.Country, error) {
	result, err := commands.NewCreateCountryCommand(j.env, j.Owner(), name, icon).Execute(ctx)
	if err != nil {
		return domain.Country{}, j.fail("create the country", err)
	}
	j.succeed("Success", result.Message)
	return result.Country, nil
}

// RenameCountry changes a country's name
func (j *Journal) RenameCountry(ctx context.Context, countryID, name string) error {
	result, err := commands.NewRenameCountryCommand(j.env, j.Owner(), countryID, name).Execute(ctx)
	if err != nil {
		return j.fail("rename the country", err)
	}
	j.succeed("Success", result.Message)
	return nil
}

// UpdateCountryNotes replaces a country's notes
func (j *Journal) UpdateCountryNotes(ctx context.Context, countryID, notes string) error {
	_, err := commands.NewUpdateCountryNotesCommand(j.env, j.Owner(), countryID, notes).Execute(ctx)
	if err != nil {
		return j.fail("update the notes", err)
	}
	return nil
}

// DeleteCountry deletes a country with its cities and pages
func (j *Journal) DeleteCountry(ctx context.Context, countryID string) error {
	result, err := commands.NewDeleteCountryCommand(j.env, j.Owner(), countryID).Execute(ctx)
	if err != nil {
		return j.fail("delete the country", err)
	}
	j.succeed("Deleted", result.Message)
	return nil
}

// CreateCity creates a city and selects it along with its country
func (j *Journal) CreateCity(ctx context.Context, countryID, name string) (domain.City, error) {
	result, err := commands.NewCreateCityCommand(j.env, j.Owner(), countryID, name).Execute(ctx)
	if err != nil {
		return domain.City{}, j.fail("create the city", err)
	}
	j.succeed("Success", result.Message)
	return result.City, nil
}

// RenameCity changes a city's name
func (j *Journal) RenameCity(ctx context.Context, countryID, cityID, name string) error {
	result, err := commands.NewRenameCityCommand(j.env, j.Owner(), countryID, cityID, name).Execute(ctx)
	if err != nil {
		return j.fail("rename the city", err)
	}
	j.succeed("Success", result.Message)
	return nil
}

// DeleteCity deletes a city with its pages
func (j *Journal) DeleteCity(ctx context.Context, countryID, cityID string) error {
	result, err := commands.NewDeleteCityCommand(j.env, j.Owner(), countryID, cityID).Execute(ctx)
	if err != nil {
		return j.fail("delete the city", err)
	}
	j.succeed("Deleted", result.Message)
	return nil
}

// CreatePage creates an empty page and selects it along with its ancestors
func (j *Journal) CreatePage(ctx context.Context, countryID, cityID, title string) (domain.Page, error) {
	result, err := commands.NewCreatePageCommand(j.env, j.Owner(), countryID, cityID, title).Execute(ctx)
	if err != nil {
		return domain.Page{}, j.fail("create the page", err)
	}
	j.succeed("Success", result.Message)
	return result.Page, nil
}

// UpdatePageTitle changes a page's title
func (j *Journal) UpdatePageTitle(ctx context.Context, countryID, cityID, pageID, title string) error {
	result, err := commands.NewUpdatePageTitleCommand(j.env, j.Owner(), countryID, cityID, pageID, title).Execute(ctx)
	if err != nil {
		return j.fail("update the title", err)
	}
	j.succeed("Success", result.Message)
	return nil
}

// UpdatePageDraft applies in-progress content. The local copy always keeps
// the draft; a failed remote write is only logged. Returns whether the remote
// copy was updated.
func (j *Journal) UpdatePageDraft(ctx context.Context, countryID, cityID, pageID, content string) (bool, error) {
	result, err := commands.NewDraftPageCommand(j.env, j.Owner(), countryID, cityID, pageID, content).Execute(ctx)
	if err != nil {
		return false, err
	}
	return result.Synced, nil
}

// SavePage commits page content and moves updatedAt
func (j *Journal) SavePage(ctx context.Context, countryID, cityID, pageID, content string) (domain.Page, error) {
	result, err := commands.NewSavePageCommand(j.env, j.Owner(), countryID, cityID, pageID, content).Execute(ctx)
	if err != nil {
		return domain.Page{}, j.fail("save the page", err)
	}
	j.succeed("Saved", result.Message)
	return result.Page, nil
}

// DeletePage deletes a page
func (j *Journal) DeletePage(ctx context.Context, countryID, cityID, pageID string) error {
	result, err := commands.NewDeletePageCommand(j.env, j.Owner(), countryID, cityID, pageID).Execute(ctx)
	if err != nil {
		return j.fail("delete the page", err)
	}
	j.succeed("Deleted", result.Message)
	return nil
}

// SetActiveCountry selects a country; "" clears the selection
func (j *Journal) SetActiveCountry(countryID string) error {
	if err := commands.SelectCountry(j.env.Store, countryID); err != nil {
		return j.fail("select the country", err)
	}
	return nil
}

// SetActiveCity selects a city of the active country; "" clears it
func (j *Journal) SetActiveCity(cityID string) error {
	if err := commands.SelectCity(j.env.Store, cityID); err != nil {
		return j.fail("select the city", err)
	}
	return nil
}

// SetActivePage selects a page of the active city; "" clears it
func (j *Journal) SetActivePage(pageID string) error {
	if err := commands.SelectPage(j.env.Store, pageID); err != nil {
		return j.fail("select the page", err)
	}
	return nil
}

func (j *Journal) succeed(title, description string) {
	j.notifier.Notify(ports.Notification{
		Kind:        ports.NotificationSuccess,
		Title:       title,
		Description: description,
	})
}

// fail reports err and returns it unchanged. Validation messages are shown
// as-is; remote failures get a generic retry message. Results dropped because
// the session ended are not reported.
func (j *Journal) fail(action string, err error) error {
	if errors.Is(err, application.ErrSessionEnded) {
		j.logger.Debug().Str("action", action).Msg("result dropped after session change")
		return err
	}
	description := err.Error()
	var remoteErr *application.RemoteError
	switch {
	case errors.Is(err, application.ErrUnauthenticated):
		description = fmt.Sprintf("You need to be signed in to %s.", action)
	case errors.As(err, &remoteErr):
		description = fmt.Sprintf("Could not %s. Try again later.", action)
	}
	j.notifier.Notify(ports.Notification{
		Kind:        ports.NotificationError,
		Title:       "Error",
		Description: description,
	})
	return err
}

type discard struct{}

func (discard) Notify(ports.Notification) {}
