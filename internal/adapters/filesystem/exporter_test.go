package filesystem

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"diario/internal/domain"
)

func testState() domain.JournalState {
	return domain.JournalState{Countries: []domain.Country{
		{
			ID: "c1", Name: "Peru", Icon: "🇵🇪", Notes: "Bring a jacket",
			Cities: []domain.City{
				{ID: "ci1", Name: "Cusco", Pages: []domain.Page{
					{ID: "p1", Title: "Arrival", Content: "Coca tea"},
					{ID: "p2", Title: "Sacred Valley", Content: "Pisac market"},
				}},
				{ID: "ci2", Name: "Cusco", Pages: []domain.Page{}},
			},
		},
		{ID: "c2", Name: "Chile", Icon: "🇨🇱", Cities: []domain.City{}},
	}}
}

func TestExport_WritesTree(t *testing.T) {
	root := filepath.Join(t.TempDir(), "out")

	summary, err := NewExporter(root).Export(testState())
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	want := ExportSummary{Countries: 2, Cities: 2, Pages: 2, Entry: filepath.Join(root, "Peru", "README.md")}
	if summary != want {
		t.Errorf("unexpected summary %+v", summary)
	}

	for _, path := range []string{
		"Peru/README.md",
		"Peru/Cusco/01 Arrival.md",
		"Peru/Cusco/02 Sacred Valley.md",
		"Peru/Cusco (2)",
		"Chile/README.md",
	} {
		if _, err := os.Stat(filepath.Join(root, path)); err != nil {
			t.Errorf("expected %s to exist: %v", path, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(root, "Peru", "Cusco", "02 Sacred Valley.md"))
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	if !strings.Contains(string(data), "Pisac market") {
		t.Errorf("page content missing:\n%s", data)
	}

	readme, _ := os.ReadFile(filepath.Join(root, "Peru", "README.md"))
	if !strings.Contains(string(readme), "Bring a jacket") {
		t.Errorf("country notes missing:\n%s", readme)
	}
}

func TestExport_RefusesNonEmptyDir(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "keep.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewExporter(root).Export(testState()); err == nil {
		t.Fatal("expected error for non-empty directory")
	}
	if _, err := os.Stat(filepath.Join(root, "Peru")); !os.IsNotExist(err) {
		t.Error("nothing should be written into a non-empty directory")
	}
}

func TestExport_EmptyJournal(t *testing.T) {
	root := t.TempDir()

	summary, err := NewExporter(root).Export(domain.EmptyState())
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if summary != (ExportSummary{}) {
		t.Errorf("expected empty summary, got %+v", summary)
	}
}

func TestNewExporter_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := NewExporter("~/trips").Root(); got != filepath.Join(home, "trips") {
		t.Errorf("expected expanded path, got %s", got)
	}
}
