// Package filesystem writes the journal tree out as a folder of markdown files
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"diario/internal/domain"
)

// ExportSummary counts what an export wrote
type ExportSummary struct {
	Countries int
	Cities    int
	Pages     int
	// Entry is the first country's README, "" for an empty journal
	Entry string
}

// Exporter lays a journal out as country and city folders holding one
// markdown file per page
type Exporter struct {
	root string
}

// NewExporter creates an exporter rooted at path
func NewExporter(path string) *Exporter {
	// Expand ~ to home directory
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}
	return &Exporter{root: path}
}

// Root returns the export directory
func (e *Exporter) Root() string {
	return e.root
}

// Export writes state under the root. The root must be missing or empty so an
// export never mixes with older files.
func (e *Exporter) Export(state domain.JournalState) (ExportSummary, error) {
	var summary ExportSummary

	entries, err := os.ReadDir(e.root)
	switch {
	case err == nil && len(entries) > 0:
		return summary, fmt.Errorf("export directory %s is not empty", e.root)
	case err != nil && !os.IsNotExist(err):
		return summary, fmt.Errorf("failed to read export directory: %w", err)
	}
	if err := os.MkdirAll(e.root, 0755); err != nil {
		return summary, fmt.Errorf("failed to create export directory: %w", err)
	}

	countryNames := map[string]int{}
	for _, country := range state.Countries {
		countryPath := filepath.Join(e.root, unique(countryNames, domain.FolderName(country.Name)))
		if err := os.MkdirAll(countryPath, 0755); err != nil {
			return summary, fmt.Errorf("failed to create country %s: %w", country.Name, err)
		}
		readme := filepath.Join(countryPath, "README.md")
		if err := os.WriteFile(readme, []byte(domain.CountryReadme(country)), 0644); err != nil {
			return summary, fmt.Errorf("failed to write README for %s: %w", country.Name, err)
		}
		if summary.Entry == "" {
			summary.Entry = readme
		}
		summary.Countries++

		cityNames := map[string]int{"README.md": 1}
		for _, city := range country.Cities {
			cityPath := filepath.Join(countryPath, unique(cityNames, domain.FolderName(city.Name)))
			if err := os.MkdirAll(cityPath, 0755); err != nil {
				return summary, fmt.Errorf("failed to create city %s: %w", city.Name, err)
			}
			summary.Cities++

			for i, page := range city.Pages {
				name := fmt.Sprintf("%02d %s.md", i+1, domain.FolderName(page.Title))
				if err := os.WriteFile(filepath.Join(cityPath, name), []byte(domain.PageMarkdown(page)), 0644); err != nil {
					return summary, fmt.Errorf("failed to write page %s: %w", page.Title, err)
				}
				summary.Pages++
			}
		}
	}
	return summary, nil
}

// unique suffixes repeated names with a counter
func unique(seen map[string]int, name string) string {
	seen[name]++
	if n := seen[name]; n > 1 {
		return fmt.Sprintf("%s (%d)", name, n)
	}
	return name
}
