// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 constXife

package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"github.com/constXife/zann-sub000/internal/adapter"
	"github.com/constXife/zann-sub000/internal/config"
	"github.com/constXife/zann-sub000/internal/crypto"
	"github.com/constXife/zann-sub000/internal/logger"
	"github.com/constXife/zann-sub000/internal/service"
	"github.com/constXife/zann-sub000/internal/store"
	"github.com/constXife/zann-sub000/internal/workers"
)

type App struct {
	cfg *config.StructuredConfig
	log *logger.Logger

	db           *store.DB
	storages     *store.ClientStorages
	adapter      adapter.ServerAdapter
	keychain     crypto.KeyChain
	netmon       *service.ReachabilityMonitor
	registry     *service.StatusRegistry
	counter      *service.PendingChangeCounter
	orchestrator *service.SyncOrchestrator
	workers      *workers.Workers
}

func NewApp(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect local cache: %w", err)
	}
	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("migrate local cache: %w", err)
	}

	storages := store.NewClientStorages(db)
	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.ServerURL,
		Timeout: cfg.Adapter.RequestTimeout,
	})

	keychain := crypto.NewKeyChain()
	netmon := service.NewReachabilityMonitor(log)
	registry := service.NewStatusRegistry()
	counter := service.NewPendingChangeCounter(storages.Pending, log)
	remote := service.NewRemoteSyncService(serverAdapter, storages, log)

	app := &App{
		cfg:      cfg,
		log:      log,
		db:       db,
		storages: storages,
		adapter:  serverAdapter,
		keychain: keychain,
		netmon:   netmon,
		registry: registry,
		counter:  counter,
	}

	app.orchestrator = service.NewSyncOrchestrator(
		remote,
		storages.Storages,
		registry,
		netmon,
		keychain,
		cfg.Sync,
		service.SyncCallbacks{
			ReloadItems: app.refreshPendingCounts,
		},
		service.SyncHooks{
			OnSessionExpired: app.onSessionExpired,
			OnFatalError:     app.onFatalError,
		},
		log,
	)

	app.workers = workers.New(
		workers.Func(func() { app.orchestrator.StartAutoSync(ctx) }),
	)
	return app, nil
}

// Unlock derives the master key and makes sync possible. Key material
// lives in a keyring file next to the cache database and is created on
// first use; with an in-memory cache the keyring is ephemeral too.
// The pending-change counts are refreshed right away so the lock-state
// change is reflected without waiting for the first sync.
func (a *App) Unlock(ctx context.Context, masterPassword string) error {
	ring, err := a.loadOrCreateKeyring(masterPassword)
	if err != nil {
		return err
	}
	if err = a.keychain.Unlock(masterPassword, ring.salt, ring.wrappedDEK); err != nil {
		return err
	}

	a.refreshPendingCounts(ctx)
	return nil
}

// Run starts the background workers and blocks until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.workers.Run()
	<-ctx.Done()

	a.orchestrator.StopAutoSync()
	if err := a.db.Close(); err != nil {
		a.log.Err(err).Msg("failed to close local cache")
	}
	return nil
}

// Orchestrator exposes the sync entry points to control surfaces.
func (a *App) Orchestrator() *service.SyncOrchestrator {
	return a.orchestrator
}

// Registry exposes the per-storage sync state to status renderers.
func (a *App) Registry() *service.StatusRegistry {
	return a.registry
}

func (a *App) refreshPendingCounts(ctx context.Context) {
	all, err := a.storages.Storages.ListStorages(ctx)
	if err != nil {
		a.log.Err(err).Msg("failed to list storages for pending refresh")
		return
	}
	for _, s := range all {
		a.counter.Refresh(ctx, s.ID)
	}
}

func (a *App) onSessionExpired(serverURL string) {
	// Drop the stale token so follow-up requests fail fast instead of
	// round-tripping to the server.
	a.adapter.SetToken("")
	a.log.Warn().Str("server_url", serverURL).Msg("session expired, re-authentication required")
}

func (a *App) onFatalError(err error) {
	a.log.Error().Err(err).Msg("sync failed with a non-retryable error")
}

type keyring struct {
	salt       []byte
	wrappedDEK []byte
}

type keyringFile struct {
	Salt       string `json:"salt"`
	WrappedDEK string `json:"wrapped_dek"`
}

func (a *App) loadOrCreateKeyring(masterPassword string) (keyring, error) {
	path := a.keyringPath()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err == nil {
			return decodeKeyring(raw)
		}
		if !os.IsNotExist(err) {
			return keyring{}, fmt.Errorf("read keyring: %w", err)
		}
	}

	salt, err := a.keychain.GenerateSalt()
	if err != nil {
		return keyring{}, fmt.Errorf("generate salt: %w", err)
	}
	dek, err := a.keychain.GenerateDEK()
	if err != nil {
		return keyring{}, fmt.Errorf("generate key: %w", err)
	}
	wrapped, err := a.keychain.WrapDEK(dek, masterPassword, salt)
	if err != nil {
		return keyring{}, fmt.Errorf("wrap key: %w", err)
	}

	ring := keyring{salt: salt, wrappedDEK: wrapped}
	if path == "" {
		return ring, nil
	}

	raw, err := json.Marshal(keyringFile{
		Salt:       base64.StdEncoding.EncodeToString(salt),
		WrappedDEK: base64.StdEncoding.EncodeToString(wrapped),
	})
	if err != nil {
		return keyring{}, fmt.Errorf("encode keyring: %w", err)
	}
	if err = os.WriteFile(path, raw, 0o600); err != nil {
		return keyring{}, fmt.Errorf("write keyring: %w", err)
	}
	return ring, nil
}

func (a *App) keyringPath() string {
	if a.cfg.Storage.DB.DSN == ":memory:" {
		return ""
	}
	return a.cfg.Storage.DB.DSN + ".keyring"
}

func decodeKeyring(raw []byte) (keyring, error) {
	var file keyringFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return keyring{}, fmt.Errorf("decode keyring: %w", err)
	}

	salt, err := base64.StdEncoding.DecodeString(file.Salt)
	if err != nil {
		return keyring{}, fmt.Errorf("decode keyring salt: %w", err)
	}
	wrapped, err := base64.StdEncoding.DecodeString(file.WrappedDEK)
	if err != nil {
		return keyring{}, fmt.Errorf("decode keyring key: %w", err)
	}
	return keyring{salt: salt, wrappedDEK: wrapped}, nil
}
