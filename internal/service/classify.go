// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 constXife

package service

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/constXife/zann-sub000/internal/adapter"
)

// failureClass is the closed set of outcomes a sync failure can map to.
// Every class implies exactly one registry/backoff/hook reaction in the
// orchestrator.
type failureClass int

const (
	// classSessionExpired fires the re-authentication hook.
	classSessionExpired failureClass = iota
	// classNetwork marks the server unreachable and defers the sync.
	classNetwork
	// classIdentity surfaces the precise identity or clock-skew message.
	classIdentity
	// classRetryable bumps the backoff counter and waits for the next tick.
	classRetryable
	// classFatal surfaces the raw message and resets the backoff.
	classFatal
)

// classifySyncError maps a remote sync failure to its class. Structured
// kinds win; the substring heuristic only runs for unstructured transport
// errors.
func classifySyncError(err error) failureClass {
	switch adapter.KindOf(err) {
	case adapter.KindSessionExpired:
		return classSessionExpired
	case adapter.KindIdentityInvalid, adapter.KindClockSkew, adapter.KindFingerprintChanged:
		return classIdentity
	case adapter.KindVaultListFailed, adapter.KindVaultGetFailed,
		adapter.KindVaultKeyUpdate, adapter.KindSyncPushFailed:
		return classRetryable
	case adapter.KindSystemInfoFailed:
		// The first call of every attempt; a down server surfaces here, so
		// connectivity failures must reach the network class.
		if isNetworkError(err) {
			return classNetwork
		}
		return classRetryable
	case adapter.KindRemoteFailed:
		if isNetworkError(err) {
			return classNetwork
		}
		return classFatal
	default:
		return classFatal
	}
}

// isNetworkError reports whether an unstructured error looks like a
// connectivity failure rather than a server-side one.
func isNetworkError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return isNetworkMessage(err.Error())
}

// isNetworkMessage is the substring fallback for transports that flatten
// their cause chain into text before it reaches us.
func isNetworkMessage(msg string) bool {
	msg = strings.ToLower(msg)
	for _, marker := range []string{
		"connection refused",
		"connection reset",
		"no such host",
		"network is unreachable",
		"i/o timeout",
		"tls handshake timeout",
		"dial tcp",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
