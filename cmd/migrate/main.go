package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"handloom/config"
	logs "handloom/internal/infra/log"
	"handloom/internal/infra/persistence/migrations"
	"handloom/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - up:      apply every pending migration
// - down:    roll back the latest migration
// - version: print the applied version

func main() {
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() != 1 {
		printUsage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(command string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	_, sqlDB, err := postgres.Open(cfg, logger)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	migrator, err := migrations.NewMigrator(sqlDB, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := migrator.Close(); closeErr != nil {
			logger.Warn("Failed to close migrator", slog.Any("error", closeErr))
		}
	}()

	switch command {
	case "up":
		return migrator.Up()
	case "down":
		return migrator.Down()
	case "version":
		version, dirty, err := migrator.Version()
		if err != nil {
			return err
		}
		fmt.Printf("version=%d dirty=%t\n", version, dirty)

		return nil
	default:
		printUsage()

		return errors.Errorf("unknown command: %s", command)
	}
}

func printUsage() {
	fmt.Println("Usage: migrate <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  up       Apply all pending migrations")
	fmt.Println("  down     Roll back the most recent migration")
	fmt.Println("  version  Print the current schema version")
}
