package domain

import "encoding/json"

// SnapshotKey is the local storage key the journal is mirrored under
const SnapshotKey = "travel-journal"

// SnapshotV2 is the current persisted shape:
//
//	{ "countries": [...], "activeCountry": id|null, "activeCity": id|null, "activePage": id|null }
type SnapshotV2 struct {
	Countries     []Country `json:"countries"`
	ActiveCountry *string   `json:"activeCountry"`
	ActiveCity    *string   `json:"activeCity"`
	ActivePage    *string   `json:"activePage"`
}

// SnapshotV1 is the legacy flat shape from before countries existed:
//
//	{ "folders": [...], "activeFolder": id|null, "activePage": id|null }
//
// A folder has exactly the fields of a City.
type SnapshotV1 struct {
	Folders      []City  `json:"folders"`
	ActiveFolder *string `json:"activeFolder"`
	ActivePage   *string `json:"activePage"`
}

// Snapshot converts the state to the current persisted shape
func Snapshot(s JournalState) SnapshotV2 {
	countries := s.Countries
	if countries == nil {
		countries = []Country{}
	}
	return SnapshotV2{
		Countries:     countries,
		ActiveCountry: nullableID(s.ActiveCountry),
		ActiveCity:    nullableID(s.ActiveCity),
		ActivePage:    nullableID(s.ActivePage),
	}
}

// MarshalSnapshot serializes the state for the local mirror
func MarshalSnapshot(s JournalState) ([]byte, error) {
	return json.Marshal(Snapshot(s))
}

func (v SnapshotV2) upgrade(MigrateOptions) JournalState {
	countries := v.Countries
	if countries == nil {
		countries = []Country{}
	}
	return JournalState{
		Countries:     countries,
		ActiveCountry: derefID(v.ActiveCountry),
		ActiveCity:    derefID(v.ActiveCity),
		ActivePage:    derefID(v.ActivePage),
	}
}

func (v SnapshotV1) upgrade(opts MigrateOptions) JournalState {
	now := NewTimestamp(opts.Now())
	cities := v.Folders
	if cities == nil {
		cities = []City{}
	}
	country := Country{
		ID:        opts.NewID(),
		Name:      LegacyCountryName,
		Icon:      DefaultIcon,
		Notes:     "",
		Cities:    cities,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return JournalState{
		Countries:     []Country{country},
		ActiveCountry: country.ID,
		ActiveCity:    derefID(v.ActiveFolder),
		ActivePage:    derefID(v.ActivePage),
	}
}

func nullableID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}

func derefID(id *string) string {
	if id == nil {
		return ""
	}
	return *id
}
