// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 constXife

// Package service implements the synchronization core of the zann agent:
// the sync orchestrator, the reachability monitor, the per-storage status
// registry, the item history timeline, and the time-travel session engine.
package service

const (
	// MsgServerUnreachable is shown while the server cannot be reached,
	// either because the OS reports no connectivity or because requests
	// against the server keep failing.
	MsgServerUnreachable = "server unreachable"

	// MsgSessionExpired is shown when the access token was rejected and the
	// user has to sign in again.
	MsgSessionExpired = "session expired"

	// MsgSyncFailed is the fallback shown for failures that carry no usable
	// detail of their own.
	MsgSyncFailed = "synchronization failed"
)
