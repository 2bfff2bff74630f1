// Package dbtest opens throwaway SQLite databases for tests.
package dbtest

import (
	"testing"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Ramos-bot/GestOnGo-App/internal/config"
	"github.com/Ramos-bot/GestOnGo-App/internal/db"
)

// Open returns a migrated in-memory database closed at the end of the test.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := &config.Config{DBUrl: "sqlite::memory:"}
	conn, err := db.Open(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(conn) })

	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return conn
}
