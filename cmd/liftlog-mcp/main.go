package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/claude/liftlog/internal/config"
	"github.com/claude/liftlog/internal/kv"
	"github.com/claude/liftlog/internal/mcp"
	"github.com/claude/liftlog/internal/workout"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file (local mode)")
	remoteURL := flag.String("remote", "", "LiftLog server URL; when set, data is read over the REST API instead of a local store")
	token := flag.String("token", "", "bearer token for -remote")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("liftlog-mcp", Version)
		return
	}

	// Stdout carries the JSON-RPC stream, so logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds mcp.DataSource
	if *remoteURL != "" {
		if *token == "" {
			fmt.Fprintf(os.Stderr, "Error: -token is required with -remote\n")
			os.Exit(1)
		}
		ds = mcp.NewHTTPClient(*remoteURL, *token)
		log.Info("serving MCP against remote server", "url", *remoteURL)
	} else {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		var dsn string
		if cfg.Storage.Driver == kv.DriverPostgres {
			dsn = cfg.Storage.Postgres.DSN()
		}
		store, err := kv.Open(context.Background(), cfg.Storage.Driver, cfg.Storage.Path, dsn)
		if err != nil {
			log.Error("failed to open store", "driver", cfg.Storage.Driver, "error", err)
			os.Exit(1)
		}
		defer store.Close()
		ds = workout.NewService(store, log)
		log.Info("serving MCP against local store", "driver", cfg.Storage.Driver)
	}

	s := mcp.New(ds, Version, log)
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
