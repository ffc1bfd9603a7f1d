package domain

// Page is a single journal entry inside a city
type Page struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"` // Opaque serialized rich-text payload
	CreatedAt Timestamp `json:"createdAt"`
	UpdatedAt Timestamp `json:"updatedAt"`
}

// City groups pages. It has no updatedAt of its own; its country's is touched instead.
type City struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Pages     []Page    `json:"pages"`
	CreatedAt Timestamp `json:"createdAt"`
}

// Country is the top level of the journal hierarchy
type Country struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"` // Display symbol, usually an emoji flag
	Notes     string    `json:"notes"`
	Cities    []City    `json:"cities"`
	CreatedAt Timestamp `json:"createdAt"`
	UpdatedAt Timestamp `json:"updatedAt"`
}

// DefaultIcon is used when a country is created without an icon
const DefaultIcon = "🌎"

// JournalState is the root of the in-memory tree.
//
// The active pointers are weak references: they are looked up by id and an
// empty string means no selection. They may dangle; the resolvers tolerate it.
type JournalState struct {
	Countries     []Country
	ActiveCountry string
	ActiveCity    string
	ActivePage    string
}

// EmptyState returns the default state used before anything is loaded
func EmptyState() JournalState {
	return JournalState{Countries: []Country{}}
}

// FindCountry returns the index of the country with the given id, or -1
func (s JournalState) FindCountry(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.Countries {
		if s.Countries[i].ID == id {
			return i
		}
	}
	return -1
}

// FindCity returns the index of the city with the given id, or -1
func (c Country) FindCity(id string) int {
	if id == "" {
		return -1
	}
	for i := range c.Cities {
		if c.Cities[i].ID == id {
			return i
		}
	}
	return -1
}

// FindPage returns the index of the page with the given id, or -1
func (c City) FindPage(id string) int {
	if id == "" {
		return -1
	}
	for i := range c.Pages {
		if c.Pages[i].ID == id {
			return i
		}
	}
	return -1
}

// Country looks up a country by id
func (s JournalState) Country(id string) (Country, bool) {
	i := s.FindCountry(id)
	if i < 0 {
		return Country{}, false
	}
	return s.Countries[i], true
}

// City looks up a city under the given country
func (s JournalState) City(countryID, cityID string) (City, bool) {
	country, ok := s.Country(countryID)
	if !ok {
		return City{}, false
	}
	i := country.FindCity(cityID)
	if i < 0 {
		return City{}, false
	}
	return country.Cities[i], true
}

// Page looks up a page under the given country and city
func (s JournalState) Page(countryID, cityID, pageID string) (Page, bool) {
	city, ok := s.City(countryID, cityID)
	if !ok {
		return Page{}, false
	}
	i := city.FindPage(pageID)
	if i < 0 {
		return Page{}, false
	}
	return city.Pages[i], true
}

// ResolveActiveCountry walks the active pointer to a country.
// Returns false when nothing is selected or the pointer dangles.
func (s JournalState) ResolveActiveCountry() (Country, bool) {
	return s.Country(s.ActiveCountry)
}

// ResolveActiveCity resolves the active city inside the active country only
func (s JournalState) ResolveActiveCity() (City, bool) {
	return s.City(s.ActiveCountry, s.ActiveCity)
}

// ResolveActivePage resolves the active page inside the active city only
func (s JournalState) ResolveActivePage() (Page, bool) {
	return s.Page(s.ActiveCountry, s.ActiveCity, s.ActivePage)
}

// Clone returns a deep copy of the state
func (s JournalState) Clone() JournalState {
	out := s
	if s.Countries != nil {
		out.Countries = make([]Country, len(s.Countries))
		for i, c := range s.Countries {
			out.Countries[i] = c.clone()
		}
	}
	return out
}

func (c Country) clone() Country {
	out := c
	if c.Cities != nil {
		out.Cities = make([]City, len(c.Cities))
		for i, city := range c.Cities {
			out.Cities[i] = city.clone()
		}
	}
	return out
}

func (c City) clone() City {
	out := c
	if c.Pages != nil {
		out.Pages = make([]Page, len(c.Pages))
		copy(out.Pages, c.Pages)
	}
	return out
}
