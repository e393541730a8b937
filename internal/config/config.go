// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 constXife

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the sync
// agent. It is populated by merging values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds network settings for the remote store transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds settings for the local cache database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds scheduling parameters for the sync orchestrator.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds network settings for the remote store transport.
type Adapter struct {
	// ServerURL is the base URL of the remote zann server
	// (e.g. "https://vault.example.com").
	// Env: ADAPTER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout is the maximum duration of a single outbound request
	// (e.g. "15s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds settings for the local cache database.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite cache.
type DB struct {
	// DSN is the SQLite data source name, a file path or ":memory:".
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Sync holds scheduling parameters for the sync orchestrator.
type Sync struct {
	// DebounceWindow is how long ScheduleSync waits after the last trigger
	// before actually running a sync. Env: SYNC_DEBOUNCE_WINDOW
	DebounceWindow time.Duration `env:"DEBOUNCE_WINDOW"`

	// BaseInterval is the auto-sync cadence while the backoff counter is
	// zero. Env: SYNC_BASE_INTERVAL
	BaseInterval time.Duration `env:"BASE_INTERVAL"`

	// HistoryLimit bounds how many history entries are requested per item.
	// Env: SYNC_HISTORY_LIMIT
	HistoryLimit int `env:"HISTORY_LIMIT"`
}

// GetAgentConfig loads, merges, and validates the agent configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Missing optional values are filled with defaults after the merge.
func GetAgentConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, cfg.validate()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = 15 * time.Second
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = "zann-agent.db"
	}
	if cfg.Sync.DebounceWindow <= 0 {
		cfg.Sync.DebounceWindow = 1500 * time.Millisecond
	}
	if cfg.Sync.BaseInterval <= 0 {
		cfg.Sync.BaseInterval = time.Minute
	}
	if cfg.Sync.HistoryLimit <= 0 {
		cfg.Sync.HistoryLimit = 5
	}
}
