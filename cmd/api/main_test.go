package main

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Ramos-bot/GestOnGo-App/internal/config"
)

func TestRun_StopsWhenContextEnds(t *testing.T) {
	cfg := &config.Config{
		AppName:       "GestOnGo",
		Env:           "test",
		Host:          "127.0.0.1",
		ServerPort:    "0",
		DBUrl:         "sqlite::memory:",
		AutoMigrate:   true,
		JWTSecret:     "test-secret",
		JWTExpiration: 30 * time.Minute,
		BcryptCost:    4,
		Timezone:      "Europe/Lisbon",
	}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	require.NoError(t, run(ctx, cfg, zerolog.Nop()))
}
