package domain

import (
	"reflect"
	"testing"
)

const later Timestamp = "2030-01-01T00:00:00Z"

func TestTransforms_DoNotMutateInput(t *testing.T) {
	transforms := map[string]Transform{
		"AddCountry":        AddCountry(Country{ID: "it", Name: "Italy"}),
		"RenameCountry":     RenameCountry("fr", "République", later),
		"SetCountryNotes":   SetCountryNotes("fr", "cheese", later),
		"RemoveCountry":     RemoveCountry("fr"),
		"AddCity":           AddCity("fr", City{ID: "nice", Name: "Nice"}, later),
		"RenameCity":        RenameCity("fr", "paris", "Paname", later),
		"RemoveCity":        RemoveCity("fr", "paris", later),
		"AddPage":           AddPage("fr", "paris", Page{ID: "p9"}, later),
		"SetPageTitle":      SetPageTitle("fr", "paris", "p1", "New", later),
		"SetPageContent":    SetPageContent("fr", "paris", "p1", "draft"),
		"CommitPageContent": CommitPageContent("fr", "paris", "p1", "saved", later),
		"RemovePage":        RemovePage("fr", "paris", "p1", later),
		"SelectCountry":     SelectCountry("jp"),
		"SelectCity":        SelectCity("lyon"),
		"SelectPage":        SelectPage("p2"),
		"ReplaceCountries":  ReplaceCountries(nil),
	}

	for name, transform := range transforms {
		t.Run(name, func(t *testing.T) {
			before := sampleState()
			pristine := before.Clone()
			transform(before)
			if !reflect.DeepEqual(before, pristine) {
				t.Errorf("%s mutated its input", name)
			}
		})
	}
}

func TestSelection_ClearsDescendants(t *testing.T) {
	s := SelectCountry("jp")(sampleState())
	if s.ActiveCountry != "jp" || s.ActiveCity != "" || s.ActivePage != "" {
		t.Errorf("select country: got %q/%q/%q", s.ActiveCountry, s.ActiveCity, s.ActivePage)
	}

	s = SelectCity("lyon")(sampleState())
	if s.ActiveCountry != "fr" || s.ActiveCity != "lyon" || s.ActivePage != "" {
		t.Errorf("select city: got %q/%q/%q", s.ActiveCountry, s.ActiveCity, s.ActivePage)
	}

	s = SelectPage("p2")(sampleState())
	if s.ActiveCity != "paris" || s.ActivePage != "p2" {
		t.Errorf("select page: got %q/%q", s.ActiveCity, s.ActivePage)
	}
}

func TestRemove_ClearsPointers(t *testing.T) {
	tests := []struct {
		name        string
		transform   Transform
		wantCountry string
		wantCity    string
		wantPage    string
	}{
		{name: "active country", transform: RemoveCountry("fr")},
		{name: "other country", transform: RemoveCountry("jp"), wantCountry: "fr", wantCity: "paris", wantPage: "p1"},
		{name: "active city", transform: RemoveCity("fr", "paris", later), wantCountry: "fr"},
		{name: "other city", transform: RemoveCity("fr", "lyon", later), wantCountry: "fr", wantCity: "paris", wantPage: "p1"},
		{name: "active page", transform: RemovePage("fr", "paris", "p1", later), wantCountry: "fr", wantCity: "paris"},
		{name: "other page", transform: RemovePage("fr", "paris", "p2", later), wantCountry: "fr", wantCity: "paris", wantPage: "p1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.transform(sampleState())
			if s.ActiveCountry != tt.wantCountry || s.ActiveCity != tt.wantCity || s.ActivePage != tt.wantPage {
				t.Errorf("got %q/%q/%q, want %q/%q/%q",
					s.ActiveCountry, s.ActiveCity, s.ActivePage,
					tt.wantCountry, tt.wantCity, tt.wantPage)
			}
		})
	}
}

func TestRemoveCountry_Cascades(t *testing.T) {
	s := RemoveCountry("fr")(sampleState())
	if len(s.Countries) != 1 || s.Countries[0].ID != "jp" {
		t.Fatalf("unexpected countries: %+v", s.Countries)
	}
	if _, ok := s.City("fr", "paris"); ok {
		t.Error("city survived its country")
	}
	if _, ok := s.Page("fr", "paris", "p1"); ok {
		t.Error("page survived its country")
	}
}

func TestRemoveCity_TouchesCountry(t *testing.T) {
	s := RemoveCity("fr", "paris", later)(sampleState())
	fr, _ := s.Country("fr")
	if fr.UpdatedAt != later {
		t.Errorf("expected country updatedAt %q, got %q", later, fr.UpdatedAt)
	}
	if len(fr.Cities) != 1 || fr.Cities[0].ID != "lyon" {
		t.Errorf("unexpected cities: %+v", fr.Cities)
	}
}

func TestDraftVersusCommit(t *testing.T) {
	base := sampleState()
	original, _ := base.Page("fr", "paris", "p1")
	fr, _ := base.Country("fr")

	drafted := SetPageContent("fr", "paris", "p1", "draft")(base)
	page, _ := drafted.Page("fr", "paris", "p1")
	if page.Content != "draft" {
		t.Errorf("draft content not applied: %q", page.Content)
	}
	if page.UpdatedAt != original.UpdatedAt {
		t.Errorf("draft moved page updatedAt: %q", page.UpdatedAt)
	}
	if c, _ := drafted.Country("fr"); c.UpdatedAt != fr.UpdatedAt {
		t.Errorf("draft moved country updatedAt: %q", c.UpdatedAt)
	}

	same := SetPageContent("fr", "paris", "p1", original.Content)(base)
	if p, _ := same.Page("fr", "paris", "p1"); p.UpdatedAt != original.UpdatedAt {
		t.Errorf("identical draft moved updatedAt: %q", p.UpdatedAt)
	}

	committed := CommitPageContent("fr", "paris", "p1", "saved", later)(drafted)
	page, _ = committed.Page("fr", "paris", "p1")
	if page.Content != "saved" || page.UpdatedAt != later {
		t.Errorf("commit not applied: %+v", page)
	}
	if c, _ := committed.Country("fr"); c.UpdatedAt != later {
		t.Errorf("commit did not touch country: %q", c.UpdatedAt)
	}
}

func TestAddCity_SelectsAncestors(t *testing.T) {
	s := AddCity("jp", City{ID: "osaka", Name: "Osaka"}, later)(sampleState())
	if s.ActiveCountry != "jp" || s.ActiveCity != "osaka" || s.ActivePage != "" {
		t.Errorf("got %q/%q/%q", s.ActiveCountry, s.ActiveCity, s.ActivePage)
	}
	if _, ok := s.ResolveActiveCity(); !ok {
		t.Error("new city does not resolve")
	}
}

func TestAddCity_UnknownCountryIsNoop(t *testing.T) {
	before := sampleState()
	after := AddCity("zz", City{ID: "x"}, later)(before)
	if !reflect.DeepEqual(before, after) {
		t.Error("adding a city to an unknown country changed state")
	}
}

func TestAddPage_SelectsChain(t *testing.T) {
	s := AddPage("jp", "kyoto", Page{ID: "p4", Title: "Gion"}, later)(sampleState())
	page, ok := s.ResolveActivePage()
	if !ok || page.ID != "p4" {
		t.Errorf("expected p4 to be active, got %+v (ok=%v)", page, ok)
	}
}

func TestUpsert_KeepsIDsUnique(t *testing.T) {
	s := AddCity("fr", City{ID: "paris", Name: "Paris again"}, later)(sampleState())
	fr, _ := s.Country("fr")
	count := 0
	for _, c := range fr.Cities {
		if c.ID == "paris" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one paris, got %d", count)
	}
}

func TestReplaceCountries_ClearsSelection(t *testing.T) {
	s := ReplaceCountries([]Country{{ID: "de"}})(sampleState())
	if s.ActiveCountry != "" || s.ActiveCity != "" || s.ActivePage != "" {
		t.Errorf("pointers not cleared: %+v", s)
	}
	if len(s.Countries) != 1 {
		t.Errorf("expected 1 country, got %d", len(s.Countries))
	}
}
