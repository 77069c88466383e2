package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fosdem/glhello/lib/config"
)

func TestSetupLoggingAppliesLevel(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	require.NoError(t, setupLogging(&config.LogCfg{Level: "warn"}))

	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelWarn))
}

func TestSetupLoggingRejectsUnknownLevel(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	err := setupLogging(&config.LogCfg{Level: "chatty"})

	assert.Error(t, err)
	assert.Same(t, previous, slog.Default())
}
