package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Ramos-bot/GestOnGo-App/internal/config"
	"github.com/Ramos-bot/GestOnGo-App/internal/logging"
)

var (
	migrationsPath string
	logger         zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "migrate",
	Short:         "Apply GestOnGo SQL migrations",
	Long:          `Runs the versioned SQL migrations in ./migrations against DATABASE_URL (PostgreSQL).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: withMigrate(func(m *migrate.Migrate, _ []string) error {
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("up failed: %w", err)
		}
		logger.Info().Msg("migrations: up completed")
		return nil
	}),
}

var downCmd = &cobra.Command{
	Use:   "down [steps]",
	Short: "Roll back migrations (default: 1)",
	Args:  cobra.MaximumNArgs(1),
	RunE: withMigrate(func(m *migrate.Migrate, args []string) error {
		steps := 1
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("down: invalid steps argument %q", args[0])
			}
			steps = n
		}
		if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("down failed: %w", err)
		}
		logger.Info().Int("steps", steps).Msg("migrations: down completed")
		return nil
	}),
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current migration version",
	Args:  cobra.NoArgs,
	RunE: withMigrate(func(m *migrate.Migrate, _ []string) error {
		v, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			return fmt.Errorf("version failed: %w", err)
		}
		fmt.Printf("version: %d  dirty: %v\n", v, dirty)
		return nil
	}),
}

var forceCmd = &cobra.Command{
	Use:   "force [version]",
	Short: "Set the migration version without running it (clears a dirty state)",
	Args:  cobra.ExactArgs(1),
	RunE: withMigrate(func(m *migrate.Migrate, args []string) error {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("force: invalid version %q", args[0])
		}
		if err := m.Force(v); err != nil {
			return fmt.Errorf("force failed: %w", err)
		}
		logger.Info().Int("version", v).Msg("migrations: forced")
		return nil
	}),
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&migrationsPath, "path", "p", envOr("MIGRATIONS_PATH", "./migrations"), "directory holding the .sql files")

	rootCmd.AddCommand(upCmd)
	rootCmd.AddCommand(downCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(forceCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// withMigrate opens a migrator for DATABASE_URL around fn.
func withMigrate(fn func(m *migrate.Migrate, args []string) error) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger = logging.New(cfg)

		if !isPostgres(cfg.DBUrl) {
			return fmt.Errorf("migrate: DATABASE_URL must be a postgres URL; sqlite databases use AUTO_MIGRATE")
		}

		m, err := migrate.New("file://"+migrationsPath, cfg.DBUrl)
		if err != nil {
			return fmt.Errorf("migration init failed: %w", err)
		}
		defer m.Close()

		m.Log = migrateLogger{log: logger}
		return fn(m, args)
	}
}

func isPostgres(url string) bool {
	return strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

type migrateLogger struct {
	log zerolog.Logger
}

func (l migrateLogger) Printf(format string, v ...any) {
	l.log.Info().Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l migrateLogger) Verbose() bool {
	return l.log.GetLevel() <= zerolog.DebugLevel
}
