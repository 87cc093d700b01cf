package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/liftlog/internal/config"
	"github.com/claude/liftlog/internal/importer"
	"github.com/claude/liftlog/internal/kv"
	"github.com/claude/liftlog/internal/workout"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	csvPath := flag.String("file", "", "path to Alpha Progression CSV export (required)")
	dryRun := flag.Bool("dry-run", false, "report counts without writing anything")
	serverURL := flag.String("server", "", "LiftLog server URL; when set, the export is sent over HTTP instead of imported into a local store")
	token := flag.String("token", "", "bearer token for -server")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *csvPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: liftlog-import -file export.csv [-config config.yaml] [-dry-run]\n")
		fmt.Fprintf(os.Stderr, "       liftlog-import -file export.csv -server <URL> -token <token> [-dry-run]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	ctx := context.Background()

	if *dryRun {
		log.Info("DRY RUN mode, nothing will be written")
	}

	// Remote mode: ship the raw export to a running server.
	if *serverURL != "" {
		if *token == "" {
			fmt.Fprintf(os.Stderr, "Error: -token is required with -server\n")
			os.Exit(1)
		}
		data, err := os.ReadFile(*csvPath)
		if err != nil {
			log.Error("failed to read export", "path", *csvPath, "error", err)
			os.Exit(1)
		}
		client := importer.NewClient(*serverURL, *token)
		stats, err := client.SendCSV(ctx, data, *dryRun)
		if err != nil {
			log.Error("import failed", "error", err)
			os.Exit(1)
		}
		printStats(log, stats)
		log.Info("import complete")
		return
	}

	// Local mode: open the configured store and write through the service.
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var dsn string
	if cfg.Storage.Driver == kv.DriverPostgres {
		dsn = cfg.Storage.Postgres.DSN()
		if err := kv.RunMigrations(dsn, "migrations"); err != nil {
			log.Error("migration failed", "error", err)
			os.Exit(1)
		}
		log.Info("migrations applied")
	}

	store, err := kv.Open(ctx, cfg.Storage.Driver, cfg.Storage.Path, dsn)
	if err != nil {
		log.Error("failed to open store", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	defer store.Close()
	log.Info("store opened", "driver", cfg.Storage.Driver)

	f, err := os.Open(*csvPath)
	if err != nil {
		log.Error("failed to open export", "path", *csvPath, "error", err)
		os.Exit(1)
	}
	defer f.Close()

	svc := workout.NewService(store, log)
	imp := importer.New(svc, log, *dryRun)
	stats, err := imp.Import(ctx, f)
	if err != nil {
		log.Error("import failed", "error", err)
		if stats != nil {
			printStats(log, stats)
		}
		os.Exit(1)
	}

	printStats(log, stats)
}

func printStats(log *slog.Logger, stats *importer.Stats) {
	log.Info("import stats",
		"sessions_parsed", stats.SessionsParsed,
		"sessions_registered", stats.SessionsRegistered,
		"sessions_skipped", stats.SessionsSkipped,
		"exercises_created", stats.ExercisesCreated,
		"templates_created", stats.TemplatesCreated,
		"sets_imported", stats.SetsImported,
		"dry_run", stats.DryRun,
	)
}
