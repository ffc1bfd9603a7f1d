package commands

import (
	"diario/internal/application"
	"diario/internal/domain"
	"diario/internal/state"
)

// Selection changes are local only: the active pointers are per-device UI
// state and never reach the remote store. An empty id clears the selection.

// SelectCountry points the selection at a country, clearing city and page
func SelectCountry(store *state.Store, countryID string) error {
	if countryID != "" {
		if err := application.ValidateCountry(store.State(), countryID); err != nil {
			return err
		}
	}
	store.Update(domain.SelectCountry(countryID))
	return nil
}

// SelectCity points the selection at a city of the active country, clearing the page
func SelectCity(store *state.Store, cityID string) error {
	if cityID != "" {
		s := store.State()
		if err := application.ValidateCity(s, s.ActiveCountry, cityID); err != nil {
			return err
		}
	}
	store.Update(domain.SelectCity(cityID))
	return nil
}

// SelectPage points the selection at a page of the active city
func SelectPage(store *state.Store, pageID string) error {
	if pageID != "" {
		s := store.State()
		if err := application.ValidatePage(s, s.ActiveCountry, s.ActiveCity, pageID); err != nil {
			return err
		}
	}
	store.Update(domain.SelectPage(pageID))
	return nil
}
