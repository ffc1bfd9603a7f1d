package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"diario/internal/adapters/memory"
	"diario/internal/journal"
	"diario/internal/state"
)

func newJournal(t *testing.T) *journal.Journal {
	t.Helper()
	j := journal.New(memory.NewRemote(), state.NewStore())
	j.Resume("user-1")
	return j
}

func call(t *testing.T, h server.ToolHandlerFunc, args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned protocol error: %v", err)
	}
	if len(res.Content) == 0 {
		t.Fatal("empty tool result")
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return text.Text, res.IsError
}

func TestTools_CreateListRead(t *testing.T) {
	j := newJournal(t)
	create := createHandler(j)

	out, isErr := call(t, create, map[string]any{"name": "Peru", "icon": "🇵🇪"})
	if isErr || !strings.Contains(out, "Created country 🇵🇪 Peru") {
		t.Fatalf("unexpected create result %q", out)
	}
	country, _ := j.ActiveCountry()

	if _, isErr := call(t, create, map[string]any{"country_id": country.ID, "name": "Cusco"}); isErr {
		t.Fatal("create city failed")
	}
	city, _ := j.ActiveCity()
	if _, isErr := call(t, create, map[string]any{"country_id": country.ID, "city_id": city.ID, "name": "Day 1"}); isErr {
		t.Fatal("create page failed")
	}
	page, _ := j.ActivePage()

	out, _ = call(t, savePageHandler(j), map[string]any{
		"country_id": country.ID, "city_id": city.ID, "page_id": page.ID, "content": "Machu Picchu at dawn",
	})
	if !strings.Contains(out, "Saved Day 1") {
		t.Errorf("unexpected save result %q", out)
	}

	tests := []struct {
		name string
		h    server.ToolHandlerFunc
		args map[string]any
		want string
	}{
		{"list countries", listHandler(j), map[string]any{}, "Peru  (1 cities)"},
		{"list cities", listHandler(j), map[string]any{"country_id": country.ID}, "Cusco  (1 pages)"},
		{"list pages", listHandler(j), map[string]any{"country_id": country.ID, "city_id": city.ID}, "Day 1"},
		{"tree", treeHandler(j), map[string]any{}, "    " + page.ID + "  Day 1"},
		{"read page", readPageHandler(j), map[string]any{"country_id": country.ID, "city_id": city.ID, "page_id": page.ID}, "Machu Picchu at dawn"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, isErr := call(t, tt.h, tt.args)
			if isErr {
				t.Fatalf("tool error: %s", out)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("expected %q in %q", tt.want, out)
			}
		})
	}
}

func TestTools_Errors(t *testing.T) {
	j := newJournal(t)

	tests := []struct {
		name string
		h    server.ToolHandlerFunc
		args map[string]any
		want string
	}{
		{"blank name", createHandler(j), map[string]any{"name": " "}, "name is required"},
		{"city without country", createHandler(j), map[string]any{"city_id": "x", "name": "n"}, "requires country_id"},
		{"unknown country", listHandler(j), map[string]any{"country_id": "nope"}, "country not found"},
		{"missing page", readPageHandler(j), map[string]any{"country_id": "a", "city_id": "b", "page_id": "c"}, "page not found"},
		{"rename unknown", renameHandler(j), map[string]any{"country_id": "nope", "name": "x"}, "not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, isErr := call(t, tt.h, tt.args)
			if !isErr {
				t.Fatalf("expected tool error, got %q", out)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("expected %q in %q", tt.want, out)
			}
		})
	}
}

func TestTools_RenameNotesDelete(t *testing.T) {
	j := newJournal(t)
	country, err := j.CreateCountry(context.Background(), "Peru", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if out, isErr := call(t, renameHandler(j), map[string]any{"country_id": country.ID, "name": "Perú"}); isErr {
		t.Fatalf("rename failed: %s", out)
	}
	if out, isErr := call(t, updateNotesHandler(j), map[string]any{"country_id": country.ID, "notes": "llamas"}); isErr {
		t.Fatalf("notes failed: %s", out)
	}
	got, _ := j.State().Country(country.ID)
	if got.Name != "Perú" || got.Notes != "llamas" {
		t.Errorf("unexpected country %+v", got)
	}

	out, isErr := call(t, deleteHandler(j), map[string]any{"country_id": country.ID})
	if isErr || out != "Deleted country" {
		t.Errorf("unexpected delete result %q", out)
	}
	if len(j.State().Countries) != 0 {
		t.Error("country not deleted")
	}
}

func TestTools_Register(t *testing.T) {
	s := server.NewMCPServer("diario-mcp", "test", server.WithToolCapabilities(true))
	j := newJournal(t)
	RegisterReadTools(s, j)
	RegisterWriteTools(s, j)
}
