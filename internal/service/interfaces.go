// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 constXife

package service

import (
	"context"

	"github.com/constXife/zann-sub000/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// RemoteSyncer performs one full push-then-pull exchange with the remote
// store behind a single storage. The orchestrator treats it as opaque: it
// only inspects the returned error and result, never the steps inside.
type RemoteSyncer interface {
	RemoteSync(ctx context.Context, storageID uuid.UUID) (models.SyncResult, error)
}

// SessionState exposes the two facts about the local session the
// orchestrator gates on. The vault key material itself never crosses this
// boundary.
type SessionState interface {
	// Unlocked reports whether the master key is currently available.
	Unlocked() bool
}

// SyncCallbacks are invoked after an attempt in which at least one storage
// synced, so views can reload their data from the local cache. Nil members
// are skipped.
type SyncCallbacks struct {
	ReloadStorages func(ctx context.Context)
	ReloadVaults   func(ctx context.Context)
	ReloadItems    func(ctx context.Context)
}

// SyncHooks are the only escalation paths out of the orchestrator. Every
// other failure is absorbed into the status registry.
type SyncHooks struct {
	// OnSessionExpired fires when the server rejected the access token.
	// serverURL identifies which storage's session needs re-authentication.
	OnSessionExpired func(serverURL string)

	// OnFatalError fires for non-retryable failures that are not session or
	// connectivity related.
	OnFatalError func(err error)
}
