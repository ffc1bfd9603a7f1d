package domain

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func fixedOptions() MigrateOptions {
	return MigrateOptions{
		NewID: func() string { return "country-1" },
		Now:   func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func TestMigrate_LegacySnapshot(t *testing.T) {
	raw := []byte(`{"folders":[{"id":"f1","name":"Paris","pages":[],"createdAt":"t0"}],"activeFolder":"f1","activePage":null}`)

	state, err := Migrate(raw, fixedOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(state.Countries) != 1 {
		t.Fatalf("expected 1 country, got %d", len(state.Countries))
	}
	country := state.Countries[0]
	if country.Name != "My Travels" {
		t.Errorf("expected country name %q, got %q", "My Travels", country.Name)
	}
	if country.Icon != DefaultIcon {
		t.Errorf("expected default icon, got %q", country.Icon)
	}
	if country.Notes != "" {
		t.Errorf("expected empty notes, got %q", country.Notes)
	}
	if len(country.Cities) != 1 {
		t.Fatalf("expected 1 city, got %d", len(country.Cities))
	}
	city := country.Cities[0]
	if city.ID != "f1" || city.Name != "Paris" || city.CreatedAt != "t0" {
		t.Errorf("legacy folder not carried verbatim: %+v", city)
	}
	if state.ActiveCountry != country.ID {
		t.Errorf("expected active country %q, got %q", country.ID, state.ActiveCountry)
	}
	if state.ActiveCity != "f1" {
		t.Errorf("expected active city f1, got %q", state.ActiveCity)
	}
	if state.ActivePage != "" {
		t.Errorf("expected no active page, got %q", state.ActivePage)
	}

	resolved, ok := state.ResolveActiveCity()
	if !ok || resolved.ID != "f1" {
		t.Errorf("expected active city to resolve to f1, got %+v (ok=%v)", resolved, ok)
	}
}

func TestMigrate_LegacySyntheticTimestamps(t *testing.T) {
	state, err := Migrate([]byte(`{"folders":[]}`), fixedOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := NewTimestamp(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	if got := state.Countries[0].CreatedAt; got != want {
		t.Errorf("expected createdAt %q, got %q", want, got)
	}
	if state.Countries[0].Cities == nil {
		t.Error("expected empty, non-nil cities")
	}
}

func TestMigrate_CurrentSnapshotPassesThrough(t *testing.T) {
	raw := []byte(`{"countries":[{"id":"c1","name":"France","icon":"🇫🇷","notes":"n","cities":[],"createdAt":"a","updatedAt":"b"}],"activeCountry":"c1","activeCity":null,"activePage":null}`)

	state, err := Migrate(raw, fixedOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := JournalState{
		Countries: []Country{{
			ID: "c1", Name: "France", Icon: "🇫🇷", Notes: "n",
			Cities: []City{}, CreatedAt: "a", UpdatedAt: "b",
		}},
		ActiveCountry: "c1",
	}
	if !reflect.DeepEqual(state, want) {
		t.Errorf("got %+v, want %+v", state, want)
	}
}

func TestMigrate_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: `{nope`},
		{name: "json array", raw: `[1,2,3]`},
		{name: "json null", raw: `null`},
		{name: "unknown shape", raw: `{"notes":[]}`},
		{name: "countries not an array", raw: `{"countries":"x"}`},
		{name: "folders not an array", raw: `{"folders":42}`},
		{name: "empty", raw: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, err := Migrate([]byte(tt.raw), fixedOptions())
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var migErr *MigrationError
			if !errors.As(err, &migErr) {
				t.Errorf("expected MigrationError, got %T", err)
			}
			if len(state.Countries) != 0 || state.ActiveCountry != "" {
				t.Errorf("expected empty state, got %+v", state)
			}
		})
	}
}

func TestMigrate_CountriesWinOverFolders(t *testing.T) {
	raw := []byte(`{"countries":[],"folders":[{"id":"f1","name":"Paris"}]}`)
	state, err := Migrate(raw, fixedOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(state.Countries) != 0 {
		t.Errorf("expected current shape to be used, got %+v", state.Countries)
	}
}

func TestMigrate_RoundTrip(t *testing.T) {
	state := sampleState()

	raw, err := MarshalSnapshot(state)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := Migrate(raw, fixedOptions())
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if !reflect.DeepEqual(got, state) {
		t.Errorf("round trip changed state:\n got %+v\nwant %+v", got, state)
	}

	// Migrating twice is still the identity for current data
	raw2, err := MarshalSnapshot(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != string(raw2) {
		t.Errorf("second serialization differs:\n%s\n%s", raw, raw2)
	}
}

func TestSnapshot_NullPointers(t *testing.T) {
	raw, err := MarshalSnapshot(EmptyState())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"countries":[],"activeCountry":null,"activeCity":null,"activePage":null}`
	if string(raw) != want {
		t.Errorf("got %s, want %s", raw, want)
	}
}
