package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/meltforce/repflow/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// repflow-sync copies yoga session logs from a device-local sqlite file
// into the server's Postgres database. Run it after switching
// storage.yoga_scope from "device" to "user". The copy is idempotent:
// re-running it overwrites rather than duplicates.
func main() {
	localPath := flag.String("local", "repflow.db", "path to the device-local sqlite file")
	dsn := flag.String("db", "", "Postgres DSN of the server database")
	userID := flag.Int64("user", 0, "user ID to attach the migrated logs to")
	dryRun := flag.Bool("dry-run", false, "list logs without copying")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("repflow-sync", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *userID <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -user is required")
		os.Exit(1)
	}
	if *dsn == "" && !*dryRun {
		fmt.Fprintln(os.Stderr, "Error: -db is required (or use -dry-run)")
		os.Exit(1)
	}

	local, err := storage.OpenLocal(*localPath)
	if err != nil {
		log.Error("failed to open local store", "path", *localPath, "error", err)
		os.Exit(1)
	}
	defer local.Close()

	ctx := context.Background()

	if *dryRun {
		logs, err := local.ListYogaLogs(ctx, *userID)
		if err != nil {
			log.Error("failed to list local logs", "error", err)
			os.Exit(1)
		}
		for _, l := range logs {
			log.Info("would migrate", "id", l.ID, "category", l.Category, "completed_at", l.CompletedAt)
		}
		log.Info("dry run complete", "logs", len(logs))
		return
	}

	db, err := storage.New(ctx, *dsn)
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	n, err := local.MigrateYogaLogs(ctx, *userID, db)
	if err != nil {
		log.Error("migration failed", "migrated", n, "error", err)
		os.Exit(1)
	}
	log.Info("migration complete", "migrated", n, "user", *userID)
}
