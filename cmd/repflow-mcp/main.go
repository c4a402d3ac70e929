package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/meltforce/repflow/internal/mcp"
	"github.com/meltforce/repflow/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	dsn := flag.String("db", "", "Postgres DSN for direct database access")
	apiURL := flag.String("url", "", "RepFlow server URL for remote access (e.g. https://repflow.tail1234.ts.net)")
	token := flag.String("token", "", "bearer token for remote access (from /api/v1/auth/login)")
	userID := flag.Int64("user", 1, "user ID to scope queries to (direct database mode only)")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("repflow-mcp", Version)
		return
	}

	// Logs go to stderr: stdout carries the MCP protocol.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds mcp.DataSource
	switch {
	case *dsn != "":
		db, err := storage.New(context.Background(), *dsn)
		if err != nil {
			log.Error("failed to connect database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		ds = db
		log.Info("mcp server using direct database access", "user", *userID)
	case *apiURL != "":
		if *token == "" {
			fmt.Fprintln(os.Stderr, "Error: -token is required with -url")
			os.Exit(1)
		}
		ds = mcp.NewHTTPClient(*apiURL, *token)
		log.Info("mcp server using remote API", "url", *apiURL)
	default:
		fmt.Fprintf(os.Stderr, "Usage: repflow-mcp -db <DSN> [-user N] | -url <URL> -token <token>\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	s := mcp.New(ds, Version, log)

	uid := *userID
	if err := server.ServeStdio(s, server.WithStdioContextFunc(func(ctx context.Context) context.Context {
		return mcp.WithUserID(ctx, uid)
	})); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
