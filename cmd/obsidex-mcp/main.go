package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "obsidex/internal/adapters/mcp"
	"obsidex/internal/bootstrap"
	"obsidex/internal/config"
	"obsidex/internal/logging"
)

func main() {
	settingsFlag := flag.String("config", config.Path(), "obsidex settings file")
	obsidianFlag := flag.String("obsidian-config", "", "path to obsidian.json")
	flag.Parse()

	settings, err := config.LoadFrom(*settingsFlag)
	if err != nil {
		log.Fatalf("obsidex-mcp: %v", err)
	}
	if *obsidianFlag != "" {
		settings.ObsidianConfig = *obsidianFlag
	}

	level, err := logging.ParseLevel(settings.LogLevel)
	if err != nil {
		log.Fatalf("obsidex-mcp: %v", err)
	}
	// stdout carries the protocol
	logger := logging.New(os.Stderr, level)

	rt, err := bootstrap.New(bootstrap.Options{
		Settings: settings,
		Logger:   logger,
		Watch:    true,
	})
	if err != nil {
		log.Fatalf("obsidex-mcp: %v", err)
	}
	defer rt.Close()

	// Serve a complete index from the first request on
	if _, err := rt.Indexer.Rebuild(); err != nil {
		log.Fatalf("obsidex-mcp: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := rt.Indexer.Run(ctx); err != nil {
			logger.Error("indexer stopped", "error", err)
		}
	}()

	mcpServer := server.NewMCPServer(
		"obsidex-mcp",
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

	mcpadapter.RegisterReadTools(mcpServer, rt.Catalog, rt.Indexer)
	mcpadapter.RegisterWriteTools(mcpServer, rt.Catalog, rt.Indexer, rt.Opener)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Printf("obsidex-mcp: %v", err)
	}
}
