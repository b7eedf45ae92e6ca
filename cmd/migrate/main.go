package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"golang-stock-dashboard/internal/dashboard/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath     string
	migrationsPath string
)

func runMigrations(direction string, steps int) error {
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	m, err := migrate.New("file://"+migrationsPath, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			log.Printf("Migration source error on close: %v", srcErr)
		}
		if dbErr != nil {
			log.Printf("Migration database error on close: %v", dbErr)
		}
	}()

	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-steps)
	}
	if errors.Is(err, migrate.ErrNoChange) {
		fmt.Println("No migration to apply.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration %s failed: %w", direction, err)
	}

	version, dirty, verr := m.Version()
	if verr == nil {
		fmt.Printf("Migrated %s, schema version %d (dirty=%v).\n", direction, version, dirty)
	} else {
		fmt.Printf("Migrated %s.\n", direction)
	}
	return nil
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all available database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrations("up", 0)
	},
}

var downSteps int

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Revert the last database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if downSteps < 1 {
			return fmt.Errorf("--steps must be at least 1")
		}
		return runMigrations("down", downSteps)
	},
}

func main() {
	rootCmd := &cobra.Command{Use: "migrate"}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-dashboard.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().StringVarP(&migrationsPath, "path", "p", "migrations", "Directory holding the migration files")
	downCmd.Flags().IntVarP(&downSteps, "steps", "n", 1, "Number of migrations to revert")

	rootCmd.AddCommand(upCmd, downCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing migrate CLI: %s\n", err)
		os.Exit(1)
	}
}
