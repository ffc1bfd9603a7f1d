// Package mcp exposes the journal as MCP tools
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"diario/internal/domain"
)

// Journal is the subset of the journal session the tools drive
type Journal interface {
	State() domain.JournalState
	Refresh(ctx context.Context) error

	CreateCountry(ctx context.Context, name, icon string) (domain.Country, error)
	RenameCountry(ctx context.Context, countryID, name string) error
	UpdateCountryNotes(ctx context.Context, countryID, notes string) error
	DeleteCountry(ctx context.Context, countryID string) error

	CreateCity(ctx context.Context, countryID, name string) (domain.City, error)
	RenameCity(ctx context.Context, countryID, cityID, name string) error
	DeleteCity(ctx context.Context, countryID, cityID string) error

	CreatePage(ctx context.Context, countryID, cityID, title string) (domain.Page, error)
	UpdatePageTitle(ctx context.Context, countryID, cityID, pageID, title string) error
	SavePage(ctx context.Context, countryID, cityID, pageID, content string) (domain.Page, error)
	DeletePage(ctx context.Context, countryID, cityID, pageID string) error
}

// RegisterReadTools adds all read-only journal tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, j Journal) {
	s.AddTool(treeTool(), treeHandler(j))
	s.AddTool(listTool(), listHandler(j))
	s.AddTool(readPageTool(), readPageHandler(j))
	s.AddTool(refreshTool(), refreshHandler(j))
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display the journal as a tree of countries, cities and pages with their IDs."),
	)
}

func treeHandler(j Journal) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		s := j.State()
		if len(s.Countries) == 0 {
			return mcp.NewToolResultText("The journal is empty."), nil
		}
		var sb strings.Builder
		for _, country := range s.Countries {
			fmt.Fprintf(&sb, "%s  %s %s\n", country.ID, country.Icon, country.Name)
			for _, city := range country.Cities {
				fmt.Fprintf(&sb, "  %s  %s\n", city.ID, city.Name)
				for _, page := range city.Pages {
					fmt.Fprintf(&sb, "    %s  %s\n", page.ID, page.Title)
				}
			}
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List journal entries. Without arguments lists countries. With country_id lists its cities; with country_id and city_id lists the city's pages."),
		mcp.WithString("country_id",
			mcp.Description("Country to list cities of"),
		),
		mcp.WithString("city_id",
			mcp.Description("City to list pages of (requires country_id)"),
		),
	)
}

func listHandler(j Journal) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		countryID := req.GetString("country_id", "")
		cityID := req.GetString("city_id", "")
		s := j.State()

		if countryID == "" {
			return formatEntities(s.Countries, formatCountry)
		}
		country, ok := s.Country(countryID)
		if !ok {
			return toolError(fmt.Errorf("country not found: %s", countryID))
		}
		if cityID == "" {
			return formatEntities(country.Cities, formatCity)
		}
		city, ok := s.City(countryID, cityID)
		if !ok {
			return toolError(fmt.Errorf("city not found: %s", cityID))
		}
		return formatEntities(city.Pages, formatPage)
	}
}

// --- read_page ---

func readPageTool() mcp.Tool {
	return mcp.NewTool("read_page",
		mcp.WithDescription("Read a page's title and content."),
		mcp.WithString("country_id", mcp.Description("Country ID"), mcp.Required()),
		mcp.WithString("city_id", mcp.Description("City ID"), mcp.Required()),
		mcp.WithString("page_id", mcp.Description("Page ID"), mcp.Required()),
	)
}

func readPageHandler(j Journal) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		page, ok := j.State().Page(
			req.GetString("country_id", ""),
			req.GetString("city_id", ""),
			req.GetString("page_id", ""),
		)
		if !ok {
			return toolError(fmt.Errorf("page not found"))
		}
		return mcp.NewToolResultText(fmt.Sprintf("# %s\n\n%s", page.Title, page.Content)), nil
	}
}

// --- refresh ---

func refreshTool() mcp.Tool {
	return mcp.NewTool("refresh",
		mcp.WithDescription("Reload the whole journal from the remote store."),
	)
}

func refreshHandler(j Journal) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := j.Refresh(ctx); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Loaded %d countries", len(j.State().Countries))), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatCountry(c domain.Country) string {
	return fmt.Sprintf("%s  %s %s  (%d cities)", c.ID, c.Icon, c.Name, len(c.Cities))
}

func formatCity(c domain.City) string {
	return fmt.Sprintf("%s  %s  (%d pages)", c.ID, c.Name, len(c.Pages))
}

func formatPage(p domain.Page) string {
	return fmt.Sprintf("%s  %s  updated %s", p.ID, p.Title, p.UpdatedAt)
}
