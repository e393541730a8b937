// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 constXife

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("ADAPTER_SERVER_URL", "https://vault.example.com")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "30s")
	t.Setenv("STORAGE_DB_DSN", "/tmp/zann.db")
	t.Setenv("SYNC_DEBOUNCE_WINDOW", "2s")
	t.Setenv("SYNC_HISTORY_LIMIT", "3")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "https://vault.example.com", cfg.Adapter.ServerURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/zann.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 2*time.Second, cfg.Sync.DebounceWindow)
	assert.Equal(t, 3, cfg.Sync.HistoryLimit)
}

func TestParseEnv_BadDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "soon")

	var cfg StructuredConfig
	assert.Error(t, parseEnv(&cfg))
}

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"adapter": {"server_url": "https://vault.example.com", "request_timeout": "1m"},
		"storage": {"db": {"dsn": ":memory:"}},
		"sync": {"debounce_window": "500ms", "base_interval": "2m", "history_limit": 4}
	}`), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "https://vault.example.com", cfg.Adapter.ServerURL)
	assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout)
	assert.Equal(t, ":memory:", cfg.Storage.DB.DSN)
	assert.Equal(t, 500*time.Millisecond, cfg.Sync.DebounceWindow)
	assert.Equal(t, 2*time.Minute, cfg.Sync.BaseInterval)
	assert.Equal(t, 4, cfg.Sync.HistoryLimit)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestBuilder_EnvWinsOverJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"adapter": {"server_url": "https://json.example.com"}
	}`), 0o600))

	t.Setenv("ADAPTER_SERVER_URL", "https://env.example.com")
	t.Setenv("STORAGE_DB_DSN", "/tmp/env.db")
	t.Setenv("CONFIG", path)

	cfg, err := newConfigBuilder().withEnv().withJSON().build()
	require.NoError(t, err)

	// mergo keeps the first non-zero value, so the env source wins and the
	// JSON file only fills the gaps.
	assert.Equal(t, "https://env.example.com", cfg.Adapter.ServerURL)
	assert.Equal(t, "/tmp/env.db", cfg.Storage.DB.DSN)
}

func TestApplyDefaults(t *testing.T) {
	var cfg StructuredConfig
	cfg.applyDefaults()

	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "zann-agent.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 1500*time.Millisecond, cfg.Sync.DebounceWindow)
	assert.Equal(t, time.Minute, cfg.Sync.BaseInterval)
	assert.Equal(t, 5, cfg.Sync.HistoryLimit)
}

func TestValidate(t *testing.T) {
	valid := func() StructuredConfig {
		var cfg StructuredConfig
		cfg.applyDefaults()
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{"defaults pass", func(*StructuredConfig) {}, nil},
		{"valid server url", func(c *StructuredConfig) { c.Adapter.ServerURL = "https://vault.example.com" }, nil},
		{"server url without scheme", func(c *StructuredConfig) { c.Adapter.ServerURL = "vault.example.com" }, ErrInvalidAdapterConfigs},
		{"server url wrong scheme", func(c *StructuredConfig) { c.Adapter.ServerURL = "ftp://vault.example.com" }, ErrInvalidAdapterConfigs},
		{"empty dsn", func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"zero base interval", func(c *StructuredConfig) { c.Sync.BaseInterval = 0 }, ErrInvalidSyncConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte(`"90s"`)))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, d.UnmarshalJSON([]byte(`1000000000`)))
	assert.Equal(t, time.Second, time.Duration(d))

	assert.Error(t, d.UnmarshalJSON([]byte(`"ninety seconds"`)))
}
