// Package tui renders the journal for terminals
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"diario/internal/adapters/tui/styles"
	"diario/internal/domain"
	"diario/internal/ports"
)

// RenderTree draws countries → cities → pages with the active chain
// highlighted. showIDs appends each node's id, for use in later commands.
func RenderTree(s domain.JournalState, showIDs bool) string {
	if len(s.Countries) == 0 {
		return styles.MutedText.Render("No countries yet") + "\n"
	}

	var sb strings.Builder
	for ci, country := range s.Countries {
		lastCountry := ci == len(s.Countries)-1
		label := fmt.Sprintf("%s %s", country.Icon, country.Name)
		sb.WriteString(branch("", lastCountry))
		sb.WriteString(node(styles.NodeCountry, label, country.ID, country.ID == s.ActiveCountry, showIDs))
		sb.WriteString("\n")

		indent := childIndent("", lastCountry)
		for ti, city := range country.Cities {
			lastCity := ti == len(country.Cities)-1
			active := country.ID == s.ActiveCountry && city.ID == s.ActiveCity
			sb.WriteString(branch(indent, lastCity))
			sb.WriteString(node(styles.NodeCity, city.Name, city.ID, active, showIDs))
			sb.WriteString("\n")

			pageIndent := childIndent(indent, lastCity)
			for pi, page := range city.Pages {
				activePage := active && page.ID == s.ActivePage
				sb.WriteString(branch(pageIndent, pi == len(city.Pages)-1))
				sb.WriteString(node(styles.NodePage, page.Title, page.ID, activePage, showIDs))
				sb.WriteString("\n")
			}
		}
	}
	return sb.String()
}

// RenderPage shows a page's title, timestamps and content
func RenderPage(p domain.Page) string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render(p.Title))
	sb.WriteString("\n")
	sb.WriteString(styles.MutedText.Render(fmt.Sprintf("created %s · updated %s", p.CreatedAt, p.UpdatedAt)))
	sb.WriteString("\n\n")
	sb.WriteString(p.Content)
	if !strings.HasSuffix(p.Content, "\n") {
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderCountry shows a country heading with its notes
func RenderCountry(c domain.Country) string {
	var sb strings.Builder
	sb.WriteString(styles.NodeCountry.Render(fmt.Sprintf("%s %s", c.Icon, c.Name)))
	sb.WriteString("\n")
	if c.Notes != "" {
		sb.WriteString(styles.Notes.Render(c.Notes))
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderMessage renders a message with appropriate styling based on isError
func RenderMessage(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return styles.ErrorMsg.Render(message)
	}
	return styles.Success.Render(message)
}

// Notifier prints notifications as styled lines
type Notifier struct {
	w io.Writer
}

// Ensure Notifier implements ports.Notifier
var _ ports.Notifier = (*Notifier)(nil)

// NewNotifier creates a notifier writing to w
func NewNotifier(w io.Writer) *Notifier {
	return &Notifier{w: w}
}

// Notify implements ports.Notifier
func (n *Notifier) Notify(msg ports.Notification) {
	isError := msg.Kind == ports.NotificationError
	fmt.Fprintf(n.w, "%s %s\n", RenderMessage(msg.Title, isError), msg.Description)
}

func node(style lipgloss.Style, label, id string, selected, showIDs bool) string {
	if selected {
		label = styles.NodeSelected.Render(label)
	} else {
		label = style.Render(label)
	}
	if showIDs {
		label += " " + styles.MutedText.Render(id)
	}
	return label
}

func branch(indent string, last bool) string {
	if last {
		return indent + styles.TreeBranch.Render("└── ")
	}
	return indent + styles.TreeBranch.Render("├── ")
}

func childIndent(indent string, last bool) string {
	if last {
		return indent + "    "
	}
	return indent + styles.TreeBranch.Render("│   ")
}
