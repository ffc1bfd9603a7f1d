package domain

import (
	"fmt"
	"strings"
)

// CountryReadme renders a country's README.md for a markdown export
func CountryReadme(c Country) string {
	return fmt.Sprintf(`---
id: %s
icon: %s
created: %s
updated: %s
tags:
  - diario
  - country
---

# %s %s

%s
`, c.ID, c.Icon, c.CreatedAt.Display(), c.UpdatedAt.Display(), c.Icon, c.Name, notesSentence(c.Notes))
}

// PageMarkdown renders a page as a markdown file with frontmatter. The
// content is written verbatim.
func PageMarkdown(p Page) string {
	return fmt.Sprintf(`---
id: %s
created: %s
updated: %s
tags:
  - diario
  - page
---

# %s

%s
`, p.ID, p.CreatedAt.Display(), p.UpdatedAt.Display(), p.Title, strings.TrimRight(p.Content, "\n"))
}

func notesSentence(notes string) string {
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return "No notes yet."
	}
	return notes
}

// FolderName makes a name safe to use as a single path element
func FolderName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		}
		if r < 0x20 {
			return -1
		}
		return r
	}, name)
	name = strings.Trim(strings.TrimSpace(name), ".")
	if name == "" {
		return "untitled"
	}
	return name
}
