// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 constXife

package service

import (
	"sync"

	"github.com/constXife/zann-sub000/internal/logger"
)

// ReachabilityMonitor tracks whether the remote store is worth talking to.
// It combines two signals: the OS-level online flag reported from outside,
// and a sticky server-unreachable flag set when requests against the server
// keep failing despite the OS claiming connectivity.
//
// The sticky flag clears on the first successful exchange or on an
// offline-to-online transition; the latter also fires the reconnect
// callback so a deferred sync can be flushed.
type ReachabilityMonitor struct {
	log *logger.Logger

	mu                sync.Mutex
	online            bool
	serverUnreachable bool
	onReconnect       func()
}

func NewReachabilityMonitor(log *logger.Logger) *ReachabilityMonitor {
	return &ReachabilityMonitor{log: log, online: true}
}

// OnReconnect registers the callback fired on an offline-to-online
// transition. The callback runs on the caller's goroutine of SetOnline,
// outside the monitor's lock.
func (m *ReachabilityMonitor) OnReconnect(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onReconnect = fn
}

// SetOnline records the OS-level connectivity state.
func (m *ReachabilityMonitor) SetOnline(online bool) {
	m.mu.Lock()
	wasOffline := !m.online
	m.online = online

	var reconnect func()
	if online && wasOffline {
		m.serverUnreachable = false
		reconnect = m.onReconnect
	}
	m.mu.Unlock()

	if reconnect != nil {
		m.log.Debug().Msg("network restored, flushing deferred sync")
		reconnect()
	}
}

// Offline reports whether the offline banner should be shown. Either signal
// triggers it.
func (m *ReachabilityMonitor) Offline() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.online || m.serverUnreachable
}

// systemOffline reports the OS-level flag alone. Attempts gate only on this
// signal: the sticky server flag drives banners but must not block the probe
// that would clear it.
func (m *ReachabilityMonitor) systemOffline() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.online
}

// markServerUnreachable sets the sticky flag after a connectivity-class
// request failure.
func (m *ReachabilityMonitor) markServerUnreachable() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.serverUnreachable = true
}

// markReachable clears the sticky flag after any successful exchange.
func (m *ReachabilityMonitor) markReachable() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.serverUnreachable = false
}
