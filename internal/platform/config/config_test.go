// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/gradebook/internal/platform/config"
)

/*
TestLoad_Defaults verifies the defaults used when no variable is set.
*/
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 5, cfg.LoginAttemptBurst)
	assert.Equal(t, 30*time.Second, cfg.LoginAttemptInterval)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
}

/*
TestLoad_Overrides verifies that environment variables are honoured.
*/
func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LOGIN_ATTEMPT_BURST", "2")
	t.Setenv("LOGIN_ATTEMPT_INTERVAL", "1m")
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_FORMAT", "text")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.LoginAttemptBurst)
	assert.Equal(t, time.Minute, cfg.LoginAttemptInterval)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

/*
TestLoad_DebugWins verifies that DEBUG overrides LOG_LEVEL.
*/
func TestLoad_DebugWins(t *testing.T) {
	t.Setenv("DEBUG", "true")
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

/*
TestLoad_Invalid rejects values the program cannot use.
*/
func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"zero_burst", "LOGIN_ATTEMPT_BURST", "0"},
		{"negative_interval", "LOGIN_ATTEMPT_INTERVAL", "-1s"},
		{"bad_format", "LOG_FORMAT", "xml"},
		{"bad_level", "LOG_LEVEL", "loud"},
		{"not_a_number", "LOGIN_ATTEMPT_BURST", "many"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
