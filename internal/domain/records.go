package domain

// CountryRecord is a country row as stored remotely
type CountryRecord struct {
	ID        string
	OwnerID   string
	Name      string
	Icon      string
	Notes     string
	CreatedAt Timestamp
	UpdatedAt Timestamp
}

// CityRecord is a city row as stored remotely
type CityRecord struct {
	ID        string
	OwnerID   string
	CountryID string
	Name      string
	CreatedAt Timestamp
}

// PageRecord is a page row as stored remotely
type PageRecord struct {
	ID        string
	OwnerID   string
	CityID    string
	Title     string
	Content   string
	CreatedAt Timestamp
	UpdatedAt Timestamp
}

// NewCountry holds the fields for inserting a country
type NewCountry struct {
	Name string
	Icon string
}

// NewCity holds the fields for inserting a city
type NewCity struct {
	CountryID string
	Name      string
}

// NewPage holds the fields for inserting a page
type NewPage struct {
	CityID string
	Title  string
}

// CountryUpdate is a partial update; nil fields are left alone.
// Every country update moves updated_at.
type CountryUpdate struct {
	Name  *string
	Icon  *string
	Notes *string
}

// CityUpdate is a partial update of a city
type CityUpdate struct {
	Name *string
}

// PageUpdate is a partial update of a page. Touch controls whether
// updated_at moves; draft writes leave it alone.
type PageUpdate struct {
	Title   *string
	Content *string
	Touch   bool
}

// ToCountry converts a record into a tree node with the given cities
func (r CountryRecord) ToCountry(cities []City) Country {
	if cities == nil {
		cities = []City{}
	}
	return Country{
		ID:        r.ID,
		Name:      r.Name,
		Icon:      r.Icon,
		Notes:     r.Notes,
		Cities:    cities,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ToCity converts a record into a tree node with the given pages
func (r CityRecord) ToCity(pages []Page) City {
	if pages == nil {
		pages = []Page{}
	}
	return City{
		ID:        r.ID,
		Name:      r.Name,
		Pages:     pages,
		CreatedAt: r.CreatedAt,
	}
}

// ToPage converts a record into a tree node
func (r PageRecord) ToPage() Page {
	return Page{
		ID:        r.ID,
		Title:     r.Title,
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
