// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 constXife

package config

import (
	"net/url"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies the
// agent's invariants before it is used at startup. Called after defaults
// have been applied, so only genuinely malformed values are rejected.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.ServerURL != "" {
		u, err := url.Parse(cfg.Adapter.ServerURL)
		if err != nil || u.Host == "" || !strings.HasPrefix(u.Scheme, "http") {
			return ErrInvalidAdapterConfigs
		}
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Sync.DebounceWindow <= 0 || cfg.Sync.BaseInterval <= 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
