package domain

import "slices"

// Transform derives the next state from the previous one.
// Transforms never modify their input; unchanged subtrees are shared.
type Transform func(JournalState) JournalState

// AddCountry appends a country (or replaces one with the same id) and selects it
func AddCountry(country Country) Transform {
	return func(s JournalState) JournalState {
		s.Countries = upsert(s.Countries, country, func(c Country) string { return c.ID })
		s.ActiveCountry = country.ID
		s.ActiveCity = ""
		s.ActivePage = ""
		return s
	}
}

// RenameCountry changes a country's name and touches its updatedAt
func RenameCountry(countryID, name string, now Timestamp) Transform {
	return func(s JournalState) JournalState {
		return mapCountry(s, countryID, func(c Country) Country {
			c.Name = name
			c.UpdatedAt = now
			return c
		})
	}
}

// SetCountryNotes replaces a country's notes and touches its updatedAt
func SetCountryNotes(countryID, notes string, now Timestamp) Transform {
	return func(s JournalState) JournalState {
		return mapCountry(s, countryID, func(c Country) Country {
			c.Notes = notes
			c.UpdatedAt = now
			return c
		})
	}
}

// RemoveCountry drops a country with all its cities and pages.
// Clears every pointer when the country was the active one.
func RemoveCountry(countryID string) Transform {
	return func(s JournalState) JournalState {
		s.Countries = remove(s.Countries, func(c Country) bool { return c.ID == countryID })
		if s.ActiveCountry == countryID {
			s.ActiveCountry = ""
			s.ActiveCity = ""
			s.ActivePage = ""
		}
		return s
	}
}

// AddCity appends a city under a country, touches the country and selects the city
func AddCity(countryID string, city City, now Timestamp) Transform {
	return func(s JournalState) JournalState {
		if s.FindCountry(countryID) < 0 {
			return s
		}
		s = mapCountry(s, countryID, func(c Country) Country {
			c.Cities = upsert(c.Cities, city, func(ci City) string { return ci.ID })
			c.UpdatedAt = now
			return c
		})
		s.ActiveCountry = countryID
		s.ActiveCity = city.ID
		s.ActivePage = ""
		return s
	}
}

// RenameCity changes a city's name and touches its country
func RenameCity(countryID, cityID, name string, now Timestamp) Transform {
	return func(s JournalState) JournalState {
		return mapCity(s, countryID, cityID, now, func(c City) City {
			c.Name = name
			return c
		})
	}
}

// RemoveCity drops a city with its pages and touches the country.
// Clears the city and page pointers when the city was the active one.
func RemoveCity(countryID, cityID string, now Timestamp) Transform {
	return func(s JournalState) JournalState {
		s = mapCountry(s, countryID, func(c Country) Country {
			c.Cities = remove(c.Cities, func(ci City) bool { return ci.ID == cityID })
			c.UpdatedAt = now
			return c
		})
		if s.ActiveCity == cityID {
			s.ActiveCity = ""
			s.ActivePage = ""
		}
		return s
	}
}

// AddPage appends a page under a city, touches the country and selects the page
func AddPage(countryID, cityID string, page Page, now Timestamp) Transform {
	return func(s JournalState) JournalState {
		if _, ok := s.City(countryID, cityID); !ok {
			return s
		}
		s = mapCity(s, countryID, cityID, now, func(c City) City {
			c.Pages = upsert(c.Pages, page, func(p Page) string { return p.ID })
			return c
		})
		s.ActiveCountry = countryID
		s.ActiveCity = cityID
		s.ActivePage = page.ID
		return s
	}
}

// SetPageTitle renames a page and touches both the page and its country
func SetPageTitle(countryID, cityID, pageID, title string, now Timestamp) Transform {
	return func(s JournalState) JournalState {
		return mapPage(s, countryID, cityID, pageID, now, func(p Page) Page {
			p.Title = title
			p.UpdatedAt = now
			return p
		})
	}
}

// SetPageContent is the draft write: content only, no timestamp moves
func SetPageContent(countryID, cityID, pageID, content string) Transform {
	return func(s JournalState) JournalState {
		i := s.FindCountry(countryID)
		if i < 0 {
			return s
		}
		untouched := s.Countries[i].UpdatedAt
		return mapPage(s, countryID, cityID, pageID, untouched, func(p Page) Page {
			p.Content = content
			return p
		})
	}
}

// CommitPageContent is the explicit save: content plus page and country updatedAt
func CommitPageContent(countryID, cityID, pageID, content string, now Timestamp) Transform {
	return func(s JournalState) JournalState {
		return mapPage(s, countryID, cityID, pageID, now, func(p Page) Page {
			p.Content = content
			p.UpdatedAt = now
			return p
		})
	}
}

// RemovePage drops a page, touches the country and clears the page pointer if needed
func RemovePage(countryID, cityID, pageID string, now Timestamp) Transform {
	return func(s JournalState) JournalState {
		s = mapCity(s, countryID, cityID, now, func(c City) City {
			c.Pages = remove(c.Pages, func(p Page) bool { return p.ID == pageID })
			return c
		})
		if s.ActivePage == pageID {
			s.ActivePage = ""
		}
		return s
	}
}

// SelectCountry points at a country and clears the city and page selection
func SelectCountry(countryID string) Transform {
	return func(s JournalState) JournalState {
		s.ActiveCountry = countryID
		s.ActiveCity = ""
		s.ActivePage = ""
		return s
	}
}

// SelectCity points at a city and clears the page selection
func SelectCity(cityID string) Transform {
	return func(s JournalState) JournalState {
		s.ActiveCity = cityID
		s.ActivePage = ""
		return s
	}
}

// SelectPage points at a page
func SelectPage(pageID string) Transform {
	return func(s JournalState) JournalState {
		s.ActivePage = pageID
		return s
	}
}

// ReplaceCountries swaps in a freshly fetched tree. Selection is not trusted
// across a fetch, so every pointer is cleared.
func ReplaceCountries(countries []Country) Transform {
	return func(s JournalState) JournalState {
		if countries == nil {
			countries = []Country{}
		}
		return JournalState{Countries: countries}
	}
}

func mapCountry(s JournalState, countryID string, fn func(Country) Country) JournalState {
	i := s.FindCountry(countryID)
	if i < 0 {
		return s
	}
	countries := slices.Clone(s.Countries)
	countries[i] = fn(countries[i])
	s.Countries = countries
	return s
}

// mapCity edits one city and touches its country with now
func mapCity(s JournalState, countryID, cityID string, now Timestamp, fn func(City) City) JournalState {
	return mapCountry(s, countryID, func(c Country) Country {
		i := c.FindCity(cityID)
		if i < 0 {
			return c
		}
		cities := slices.Clone(c.Cities)
		cities[i] = fn(cities[i])
		c.Cities = cities
		c.UpdatedAt = now
		return c
	})
}

func mapPage(s JournalState, countryID, cityID, pageID string, now Timestamp, fn func(Page) Page) JournalState {
	if _, ok := s.Page(countryID, cityID, pageID); !ok {
		return s
	}
	return mapCity(s, countryID, cityID, now, func(c City) City {
		i := c.FindPage(pageID)
		pages := slices.Clone(c.Pages)
		pages[i] = fn(pages[i])
		c.Pages = pages
		return c
	})
}

func upsert[T any](items []T, item T, id func(T) string) []T {
	key := id(item)
	for i := range items {
		if id(items[i]) == key {
			out := slices.Clone(items)
			out[i] = item
			return out
		}
	}
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item)
}

func remove[T any](items []T, match func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !match(item) {
			out = append(out, item)
		}
	}
	return out
}
