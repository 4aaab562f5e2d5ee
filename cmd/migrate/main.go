package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/civilconsult/backend/internal/logging"
	"github.com/civilconsult/backend/internal/repository"
	"github.com/joho/godotenv"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate [command]

Commands:
  (default)   ensure all tables exist
  reset       drop all tables and recreate them`)
	os.Exit(1)
}

func main() {
	_ = godotenv.Load()
	logging.Setup()

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "data.db"
	}

	ctx := context.Background()
	db, err := repository.Open(ctx, dbPath)
	if err != nil {
		logging.Fatal("open database failed", "path", dbPath, "error", err)
	}
	defer db.Close()

	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "":
		// Open already ensured the schema
		slog.Info("schema ensured", "path", dbPath)
	case "reset":
		slog.Info("dropping all tables", "path", dbPath)
		if err := repository.DropAll(ctx, db); err != nil {
			logging.Fatal("drop tables failed", "error", err)
		}
		if err := repository.EnsureSchema(ctx, db); err != nil {
			logging.Fatal("recreate schema failed", "error", err)
		}
		slog.Info("schema recreated", "path", dbPath)
	default:
		usage()
	}
}
