package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Ramos-bot/GestOnGo-App/internal/config"
)

// Open connects to the database named by cfg.DBUrl. postgres:// and
// postgresql:// URLs use Postgres, "sqlite:<path>" uses SQLite.
func Open(cfg *config.Config, logger zerolog.Logger) (*gorm.DB, error) {
	dialector, memory, err := dialectorFor(cfg.DBUrl)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
		Logger:         NewGormLogger(logger, time.Second),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if memory {
		// Every connection to ":memory:" is a separate database.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		return db, nil
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return db, nil
}

func dialectorFor(url string) (gorm.Dialector, bool, error) {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return postgres.Open(url), false, nil

	case strings.HasPrefix(url, "sqlite:"):
		path := SQLitePath(url)
		memory := path == ":memory:"
		return sqlite.Open(sqliteDSN(path)), memory, nil

	default:
		return nil, false, fmt.Errorf("unsupported DATABASE_URL %q", url)
	}
}

// SQLitePath accepts "sqlite:file.db" as well as the "sqlite:///./file.db"
// form.
func SQLitePath(url string) string {
	path := strings.TrimPrefix(url, "sqlite:")
	if rest, ok := strings.CutPrefix(path, "//"); ok {
		path = strings.TrimPrefix(rest, "/")
	}
	if path == "" {
		return ":memory:"
	}
	return path
}

func sqliteDSN(path string) string {
	if path == ":memory:" {
		return "file::memory:?_foreign_keys=on"
	}
	return "file:" + path + "?_foreign_keys=on&_busy_timeout=5000"
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
