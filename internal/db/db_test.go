package db_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ramos-bot/GestOnGo-App/internal/config"
	"github.com/Ramos-bot/GestOnGo-App/internal/db"
	"github.com/Ramos-bot/GestOnGo-App/internal/db/dbtest"
	"github.com/Ramos-bot/GestOnGo-App/internal/models"
	"github.com/Ramos-bot/GestOnGo-App/internal/security"
)

func TestSQLitePath(t *testing.T) {
	cases := map[string]string{
		"sqlite:gestongo.db":      "gestongo.db",
		"sqlite:///./gestongo.db": "./gestongo.db",
		"sqlite:////var/lib/g.db": "/var/lib/g.db",
		"sqlite::memory:":         ":memory:",
		"sqlite:":                 ":memory:",
	}
	for in, want := range cases {
		assert.Equal(t, want, db.SQLitePath(in), in)
	}
}

func TestOpen_RejectsUnknownScheme(t *testing.T) {
	_, err := db.Open(&config.Config{DBUrl: "mysql://localhost/x"}, zerolog.Nop())
	assert.Error(t, err)
}

func TestMigrate_CreatesEveryTable(t *testing.T) {
	conn := dbtest.Open(t)

	for _, table := range []string{
		"utilizadores", "clientes", "servicos",
		"servicos_jardim", "servicos_piscina", "audit_logs",
	} {
		assert.True(t, conn.Migrator().HasTable(table), table)
	}
}

func TestMigrate_BackfillsClientSearchName(t *testing.T) {
	conn := dbtest.Open(t)

	require.NoError(t, conn.Exec(
		"INSERT INTO clientes (nome, nome_busca) VALUES (?, '')", "Óscar Pires",
	).Error)
	require.NoError(t, db.Migrate(conn))

	var c models.Client
	require.NoError(t, conn.First(&c).Error)
	assert.Equal(t, "óscar pires", c.NomeBusca)
}

func TestSeedAdmin_Idempotent(t *testing.T) {
	conn := dbtest.Open(t)
	ctx := context.Background()
	hasher := security.NewHasher(bcrypt.MinCost)
	admin := config.AdminConfig{Email: "admin@gestongo.pt", Password: "admin123"}

	require.NoError(t, db.SeedAdmin(ctx, conn, admin, hasher))
	require.NoError(t, db.SeedAdmin(ctx, conn, admin, hasher))

	var users []models.User
	require.NoError(t, conn.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, "Administrador", users[0].Nome)
	assert.True(t, users[0].IsActive)
	assert.True(t, hasher.Check("admin123", users[0].HashSenha))
}

func TestSeedAdmin_DisabledWithoutCredentials(t *testing.T) {
	conn := dbtest.Open(t)

	require.NoError(t, db.SeedAdmin(context.Background(), conn, config.AdminConfig{Email: "a@b.pt"}, security.NewHasher(bcrypt.MinCost)))

	var count int64
	conn.Model(&models.User{}).Count(&count)
	assert.Zero(t, count)
}
