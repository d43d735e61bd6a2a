package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

func main() {
	_ = godotenv.Load()

	args := os.Args
	if len(args) == 1 {
		args = append(args, "--help")
	}

	root := &cli.Command{
		Name:  "migration",
		Usage: "Apply the match store schema",
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "Apply every pending migration",
				Action: func(_ context.Context, _ *cli.Command) error {
					return withMigrator(func(m *migrate.Migrate, source string) error {
						if err := ignoreNoChange(m.Up()); err != nil {
							return err
						}
						log.Printf("migrations applied (source=%s)", source)
						return nil
					})
				},
			},
			{
				Name:      "down",
				Usage:     "Roll back migrations",
				ArgsUsage: "[steps]",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "steps", Value: 1, Usage: "number of migrations to roll back"},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					steps := c.Int("steps")
					if steps <= 0 {
						return fmt.Errorf("down steps must be > 0")
					}
					return withMigrator(func(m *migrate.Migrate, _ string) error {
						if err := ignoreNoChange(m.Steps(-steps)); err != nil {
							return err
						}
						log.Printf("rolled back %d migration(s)", steps)
						return nil
					})
				},
			},
			{
				Name:  "version",
				Usage: "Print the applied version",
				Action: func(_ context.Context, _ *cli.Command) error {
					return withMigrator(func(m *migrate.Migrate, _ string) error {
						version, dirty, err := m.Version()
						if errors.Is(err, migrate.ErrNilVersion) {
							fmt.Println("version: none")
							fmt.Println("dirty: false")
							return nil
						}
						if err != nil {
							return fmt.Errorf("read version: %w", err)
						}
						fmt.Printf("version: %d\n", version)
						fmt.Printf("dirty: %t\n", dirty)
						return nil
					})
				},
			},
			{
				Name:  "force",
				Usage: "Mark a version as applied without running it",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "version", Required: true},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					version := c.Int("version")
					if version < 0 {
						return fmt.Errorf("version must be >= 0")
					}
					return withMigrator(func(m *migrate.Migrate, _ string) error {
						if err := m.Force(version); err != nil {
							return fmt.Errorf("force version %d: %w", version, err)
						}
						log.Printf("forced version to %d", version)
						return nil
					})
				},
			},
			{
				Name:    "goto",
				Aliases: []string{"migrate"},
				Usage:   "Migrate up or down to a target version",
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "version", Required: true},
				},
				Action: func(_ context.Context, c *cli.Command) error {
					target := c.Uint("version")
					return withMigrator(func(m *migrate.Migrate, _ string) error {
						if err := ignoreNoChange(m.Migrate(target)); err != nil {
							return err
						}
						log.Printf("migrated to version %d", target)
						return nil
					})
				},
			},
		},
	}

	if err := root.Run(context.Background(), args); err != nil {
		log.Fatal(err)
	}
}

func withMigrator(fn func(m *migrate.Migrate, source string) error) error {
	dbURL := strings.TrimSpace(os.Getenv("DB_URL"))
	if dbURL == "" {
		return fmt.Errorf("DB_URL is required")
	}
	dbURL = normalizeDBURL(dbURL)

	migrationsDir, err := resolveMigrationsDir()
	if err != nil {
		return fmt.Errorf("resolve migrations dir: %w", err)
	}

	sourceURL := "file://" + filepath.ToSlash(migrationsDir)
	m, err := migrate.New(sourceURL, dbURL)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer closeMigrator(m)

	return fn(m, sourceURL)
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		log.Printf("no migration changes")
		return nil
	}
	return err
}

func closeMigrator(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		log.Printf("close migration source: %v", srcErr)
	}
	if dbErr != nil {
		log.Printf("close migration db: %v", dbErr)
	}
}

func resolveMigrationsDir() (string, error) {
	candidates := []string{
		strings.TrimSpace(os.Getenv("MIGRATIONS_DIR")),
		"./db/migrations",
		"/app/db/migrations",
	}

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		abs, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			continue
		}
		return abs, nil
	}

	return "", fmt.Errorf("migration directory not found (checked MIGRATIONS_DIR, ./db/migrations, /app/db/migrations)")
}

func normalizeDBURL(raw string) string {
	if !envBool("DB_DISABLE_PREPARED_BINARY_RESULT", true) {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil {
		return raw
	}

	query := parsed.Query()
	if query.Get("disable_prepared_binary_result") == "" {
		query.Set("disable_prepared_binary_result", "yes")
		parsed.RawQuery = query.Encode()
	}

	return parsed.String()
}

func envBool(key string, fallback bool) bool {
	switch strings.TrimSpace(strings.ToLower(os.Getenv(key))) {
	case "":
		return fallback
	case "1", "true", "t", "yes", "y", "on":
		return true
	default:
		return false
	}
}
