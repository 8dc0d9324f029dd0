package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/pressly/goose/v3"

	"gorecipes/config"
	"gorecipes/internal/pkg/database"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Printf("warning: .env not loaded, using the process environment only: %v", err)
	}

	var migrationsDir string
	flag.StringVar(&migrationsDir, "dir", "./sql", "directory with migration files")
	flag.Parse()

	dsn, err := config.DatabaseURL()
	if err != nil {
		log.Fatalf("goose: %v", err)
	}

	db, err := database.NewPostgresDB(dsn)
	if err != nil {
		log.Fatalf("goose: failed to connect to DB: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Fatalf("goose: failed to close DB: %v", err)
		}
	}()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("goose: %v", err)
	}

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"}
	}
	command, args := arguments[0], arguments[1:]

	if err := goose.Run(command, db, migrationsDir, args...); err != nil {
		log.Fatalf("goose %v: %v", command, err)
	}

	fmt.Printf("goose %s success\n", command)
}
