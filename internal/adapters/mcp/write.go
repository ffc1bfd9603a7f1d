package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterWriteTools adds all journal write tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, j Journal) {
	s.AddTool(createTool(), createHandler(j))
	s.AddTool(renameTool(), renameHandler(j))
	s.AddTool(updateNotesTool(), updateNotesHandler(j))
	s.AddTool(savePageTool(), savePageHandler(j))
	s.AddTool(deleteTool(), deleteHandler(j))
}

// --- create ---

func createTool() mcp.Tool {
	return mcp.NewTool("create",
		mcp.WithDescription("Create a journal entry. Auto-detects the type from the parents given: none→country, country_id→city, country_id+city_id→page."),
		mcp.WithString("country_id",
			mcp.Description("Parent country. Omit to create a country."),
		),
		mcp.WithString("city_id",
			mcp.Description("Parent city. Requires country_id; creates a page."),
		),
		mcp.WithString("name",
			mcp.Description("Name of the country or city, or title of the page"),
			mcp.Required(),
		),
		mcp.WithString("icon",
			mcp.Description("Emoji for a new country (default 🌎)"),
		),
	)
}

func createHandler(j Journal) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		countryID := req.GetString("country_id", "")
		cityID := req.GetString("city_id", "")
		name := req.GetString("name", "")

		switch {
		case countryID == "" && cityID != "":
			return toolError(fmt.Errorf("city_id requires country_id"))

		case countryID == "":
			country, err := j.CreateCountry(ctx, name, req.GetString("icon", ""))
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(fmt.Sprintf("Created country %s %s (%s)", country.Icon, country.Name, country.ID)), nil

		case cityID == "":
			city, err := j.CreateCity(ctx, countryID, name)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(fmt.Sprintf("Created city %s (%s)", city.Name, city.ID)), nil

		default:
			page, err := j.CreatePage(ctx, countryID, cityID, name)
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(fmt.Sprintf("Created page %s (%s)", page.Title, page.ID)), nil
		}
	}
}

// --- rename ---

func renameTool() mcp.Tool {
	return mcp.NewTool("rename",
		mcp.WithDescription("Rename a country or city, or retitle a page. The deepest ID given is the target."),
		mcp.WithString("country_id", mcp.Description("Country ID"), mcp.Required()),
		mcp.WithString("city_id", mcp.Description("City ID")),
		mcp.WithString("page_id", mcp.Description("Page ID (requires city_id)")),
		mcp.WithString("name", mcp.Description("New name or title"), mcp.Required()),
	)
}

func renameHandler(j Journal) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		countryID := req.GetString("country_id", "")
		cityID := req.GetString("city_id", "")
		pageID := req.GetString("page_id", "")
		name := req.GetString("name", "")

		var err error
		switch {
		case pageID != "":
			err = j.UpdatePageTitle(ctx, countryID, cityID, pageID, name)
		case cityID != "":
			err = j.RenameCity(ctx, countryID, cityID, name)
		default:
			err = j.RenameCountry(ctx, countryID, name)
		}
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Renamed to %q", name)), nil
	}
}

// --- update_notes ---

func updateNotesTool() mcp.Tool {
	return mcp.NewTool("update_notes",
		mcp.WithDescription("Replace a country's free-text notes. Empty notes clear them."),
		mcp.WithString("country_id", mcp.Description("Country ID"), mcp.Required()),
		mcp.WithString("notes", mcp.Description("New notes")),
	)
}

func updateNotesHandler(j Journal) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := j.UpdateCountryNotes(ctx, req.GetString("country_id", ""), req.GetString("notes", "")); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText("Notes updated"), nil
	}
}

// --- save_page ---

func savePageTool() mcp.Tool {
	return mcp.NewTool("save_page",
		mcp.WithDescription("Save a page's content, replacing what was there."),
		mcp.WithString("country_id", mcp.Description("Country ID"), mcp.Required()),
		mcp.WithString("city_id", mcp.Description("City ID"), mcp.Required()),
		mcp.WithString("page_id", mcp.Description("Page ID"), mcp.Required()),
		mcp.WithString("content", mcp.Description("New page content"), mcp.Required()),
	)
}

func savePageHandler(j Journal) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		page, err := j.SavePage(ctx,
			req.GetString("country_id", ""),
			req.GetString("city_id", ""),
			req.GetString("page_id", ""),
			req.GetString("content", ""),
		)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Saved %s at %s", page.Title, page.UpdatedAt)), nil
	}
}

// --- delete ---

func deleteTool() mcp.Tool {
	return mcp.NewTool("delete",
		mcp.WithDescription("Delete a country, city or page. The deepest ID given is deleted along with everything under it."),
		mcp.WithString("country_id", mcp.Description("Country ID"), mcp.Required()),
		mcp.WithString("city_id", mcp.Description("City ID")),
		mcp.WithString("page_id", mcp.Description("Page ID (requires city_id)")),
	)
}

func deleteHandler(j Journal) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		countryID := req.GetString("country_id", "")
		cityID := req.GetString("city_id", "")
		pageID := req.GetString("page_id", "")

		var err error
		what := "country"
		switch {
		case pageID != "":
			what = "page"
			err = j.DeletePage(ctx, countryID, cityID, pageID)
		case cityID != "":
			what = "city"
			err = j.DeleteCity(ctx, countryID, cityID)
		default:
			err = j.DeleteCountry(ctx, countryID)
		}
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Deleted %s", what)), nil
	}
}
