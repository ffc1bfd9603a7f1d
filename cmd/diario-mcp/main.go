package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"diario/internal/adapters/notify"
	mcpadapter "diario/internal/adapters/mcp"
	"diario/internal/app"
	"diario/internal/config"
	"diario/internal/logging"
)

func main() {
	ownerFlag := flag.String("owner", "", "identity to act as (overrides DIARIO_OWNER)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("diario-mcp: %v", err)
	}
	if *ownerFlag != "" {
		cfg.Owner = *ownerFlag
	}

	// stdout carries the MCP protocol; logs go to stderr
	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatalf("diario-mcp: %v", err)
	}

	ctx := context.Background()
	session, err := app.Open(ctx, cfg, logger, notify.NewLog(logger))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open journal")
	}
	defer session.Close()

	if cfg.Owner != "" {
		if err := session.Journal.Refresh(ctx); err != nil {
			logger.Warn().Err(err).Msg("serving the local copy")
		}
	}

	mcpServer := server.NewMCPServer(
		"diario-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, session.Journal)
	mcpadapter.RegisterWriteTools(mcpServer, session.Journal)

	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error().Err(err).Msg("server stopped")
	}
}
