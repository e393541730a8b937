// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 constXife

package service

import (
	"sync"

	"github.com/constXife/zann-sub000/models"
	"github.com/google/uuid"
)

// StatusRegistry holds the per-storage sync state rendered by status
// banners. All writes come from the sync orchestrator; readers observe a
// snapshot copy and never see partial updates.
type StatusRegistry struct {
	mu     sync.RWMutex
	states map[uuid.UUID]models.StorageSyncState
}

func NewStatusRegistry() *StatusRegistry {
	return &StatusRegistry{states: make(map[uuid.UUID]models.StorageSyncState)}
}

// SyncState returns the current state for a storage. Storages never synced
// report the idle status.
func (r *StatusRegistry) SyncState(storageID uuid.UUID) models.StorageSyncState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.states[storageID]
}

// ClearSyncErrors drops transient error state for one storage, or for all
// storages when storageID is uuid.Nil. Status and the locked-vaults flag
// are preserved.
func (r *StatusRegistry) ClearSyncErrors(storageID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear := func(id uuid.UUID) {
		state := r.states[id]
		if state.Status == models.SyncStatusError {
			state.Status = models.SyncStatusIdle
		}
		state.LastError = ""
		r.states[id] = state
	}

	if storageID != uuid.Nil {
		clear(storageID)
		return
	}
	for id := range r.states {
		clear(id)
	}
}

// setSyncing opens an attempt. The locked-vaults flag is cleared here and
// re-derived from each attempt's result, so a stale flag never outlives the
// sync that produced it.
func (r *StatusRegistry) setSyncing(storageID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	state := r.states[storageID]
	state.Status = models.SyncStatusSyncing
	state.LastError = ""
	state.PersonalVaultsLocked = false
	r.states[storageID] = state
}

func (r *StatusRegistry) setSynced(storageID uuid.UUID, vaultsLocked bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states[storageID] = models.StorageSyncState{
		Status:               models.SyncStatusSynced,
		PersonalVaultsLocked: vaultsLocked,
	}
}

func (r *StatusRegistry) setError(storageID uuid.UUID, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	state := r.states[storageID]
	state.Status = models.SyncStatusError
	state.LastError = message
	r.states[storageID] = state
}

// BannerKind orders the messages a storage banner can show. When several
// conditions hold at once only the highest-priority one is rendered.
type BannerKind int

const (
	BannerNone BannerKind = iota
	BannerOffline
	BannerSessionExpired
	BannerVaultsLocked
	BannerSyncError
)

// Banner picks the single banner to render for a storage. offline is the
// reachability monitor's verdict; it outranks everything recorded in the
// state itself.
func Banner(state models.StorageSyncState, offline bool) BannerKind {
	switch {
	case offline:
		return BannerOffline
	case state.Status == models.SyncStatusError && state.LastError == MsgSessionExpired:
		return BannerSessionExpired
	case state.PersonalVaultsLocked:
		return BannerVaultsLocked
	case state.Status == models.SyncStatusError:
		return BannerSyncError
	default:
		return BannerNone
	}
}
