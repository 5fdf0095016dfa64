package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"futsim-api/config"
	"futsim-api/migrations"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	config.ConnectDatabase(cfg)
	migrator := migrations.NewCoreMigrator(config.DB)

	if len(os.Args) < 2 {
		printUsage()
		return
	}

	command := os.Args[1]

	switch command {
	case "migrate":
		if err := migrator.Migrate(); err != nil {
			log.Fatal("Migration failed:", err)
		}
	case "rollback":
		steps := 1
		if len(os.Args) > 2 {
			if s, err := strconv.Atoi(os.Args[2]); err == nil {
				steps = s
			}
		}
		if err := migrator.Rollback(steps); err != nil {
			log.Fatal("Rollback failed:", err)
		}
	case "status":
		showStatus(migrator)
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/migrate migrate          - Run pending migrations")
	fmt.Println("  go run ./cmd/migrate rollback [steps] - Rollback migration batches (default: 1)")
	fmt.Println("  go run ./cmd/migrate status           - Show migration status")
}

func showStatus(migrator *migrations.Migrator) {
	applied, err := migrator.Applied()
	if err != nil {
		log.Fatal("Failed to read migrations:", err)
	}

	if len(applied) == 0 {
		fmt.Println("No migrations have been run yet.")
	} else {
		fmt.Println("Migration Status:")
		fmt.Println("Batch | Name")
		fmt.Println("------|-----")

		for _, migration := range applied {
			fmt.Printf("%-5d | %s\n", migration.Batch, migration.Name)
		}
	}

	for _, name := range migrator.Pending() {
		fmt.Printf("  -   | %s (pending)\n", name)
	}
}
