// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 constXife

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/constXife/zann-sub000/internal/adapter"
	"github.com/constXife/zann-sub000/internal/logger"
	"github.com/constXife/zann-sub000/internal/store"
	"github.com/constXife/zann-sub000/internal/validators"
	"github.com/constXife/zann-sub000/models"
	"github.com/google/uuid"
)

// pullPageSize bounds one page of the cursor-based pull stream.
const pullPageSize = 100

// RemoteSyncService is the concrete RemoteSyncer. One call performs the
// full exchange for a single remote storage: identity check, vault list
// refresh, push of pending local changes, then a paged pull per vault.
type RemoteSyncService struct {
	adapter   adapter.ServerAdapter
	storages  *store.ClientStorages
	validator validators.Validator
	log       *logger.Logger
}

func NewRemoteSyncService(serverAdapter adapter.ServerAdapter, storages *store.ClientStorages, log *logger.Logger) *RemoteSyncService {
	return &RemoteSyncService{
		adapter:   serverAdapter,
		storages:  storages,
		validator: validators.NewPendingChangeValidator(),
		log:       log,
	}
}

func (s *RemoteSyncService) RemoteSync(ctx context.Context, storageID uuid.UUID) (models.SyncResult, error) {
	storage, err := s.storages.Storages.GetStorage(ctx, storageID)
	if err != nil {
		return models.SyncResult{}, adapter.Errf(adapter.KindStorageNotFound, "load storage %s: %v", storageID, err)
	}
	if !storage.IsRemote() {
		return models.SyncResult{}, adapter.Errf(adapter.KindNotRemote, "storage %s is local-only", storageID)
	}

	info, err := s.adapter.SystemInfo(ctx)
	if err != nil {
		return models.SyncResult{}, err
	}

	if err = s.checkFingerprint(ctx, storage, info); err != nil {
		return models.SyncResult{}, err
	}

	vaults, err := s.adapter.ListVaults(ctx)
	if err != nil {
		return models.SyncResult{}, err
	}

	storage.Name = info.ServerName
	storage.ServerFingerprint = info.ServerFingerprint
	if err = s.storages.Storages.UpsertStorage(ctx, storage); err != nil {
		return models.SyncResult{}, fmt.Errorf("persist storage state: %w", err)
	}

	result := models.SyncResult{}
	for _, vault := range vaults {
		if err = s.storages.Vaults.UpsertVault(ctx, models.Vault{
			StorageID: storage.ID,
			ID:        vault.ID,
			Name:      vault.Name,
			Kind:      vault.Kind,
		}); err != nil {
			return models.SyncResult{}, fmt.Errorf("persist vault %s: %w", vault.ID, err)
		}

		if vault.KeyLocked {
			result.LockedVaults = append(result.LockedVaults, vault.ID)
			continue
		}

		applied, syncErr := s.syncVault(ctx, storage.ID, vault.ID)
		if syncErr != nil {
			return models.SyncResult{}, syncErr
		}
		result.Applied += applied
	}

	return result, nil
}

// checkFingerprint detects a server reset. With no pending local changes
// the stale cache is wiped and resynced from scratch; with pending changes
// the sync aborts so the user can decide what to keep.
func (s *RemoteSyncService) checkFingerprint(ctx context.Context, storage models.Storage, info models.SystemInfo) error {
	if storage.ServerFingerprint == "" || storage.ServerFingerprint == info.ServerFingerprint {
		return nil
	}

	pending, err := s.storages.Pending.CountPendingByStorage(ctx, storage.ID)
	if err != nil {
		return fmt.Errorf("count pending changes: %w", err)
	}
	if pending > 0 {
		return adapter.Errf(adapter.KindFingerprintChanged,
			"server fingerprint changed from %s to %s with %d unsynced local changes",
			storage.ServerFingerprint, info.ServerFingerprint, pending)
	}

	s.log.Warn().
		Str("storage_id", storage.ID.String()).
		Str("old_fingerprint", storage.ServerFingerprint).
		Str("new_fingerprint", info.ServerFingerprint).
		Msg("server fingerprint changed, resetting local cache")

	if err = s.storages.Items.DeleteItemsByStorage(ctx, storage.ID); err != nil {
		return fmt.Errorf("reset items: %w", err)
	}
	if err = s.storages.Cursors.DeleteCursorsByStorage(ctx, storage.ID); err != nil {
		return fmt.Errorf("reset cursors: %w", err)
	}
	return nil
}

func (s *RemoteSyncService) syncVault(ctx context.Context, storageID, vaultID uuid.UUID) (int, error) {
	cursor, err := s.storages.Cursors.GetCursor(ctx, storageID, vaultID)
	if err != nil {
		return 0, fmt.Errorf("load cursor: %w", err)
	}

	if err = s.pushPending(ctx, storageID, vaultID, &cursor); err != nil {
		return 0, err
	}

	applied, err := s.pullAll(ctx, storageID, vaultID, &cursor)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	cursor.LastSyncAt = &now
	if err = s.storages.Cursors.UpsertCursor(ctx, cursor); err != nil {
		return 0, fmt.Errorf("persist cursor: %w", err)
	}

	return applied, nil
}

// pushPending uploads queued local mutations for one vault. Both applied
// and conflicting changes leave the queue: conflicts mean the server's
// state won, and the following pull delivers it.
func (s *RemoteSyncService) pushPending(ctx context.Context, storageID, vaultID uuid.UUID, cursor *models.SyncCursor) error {
	pending, err := s.storages.Pending.ListPendingByVault(ctx, storageID, vaultID)
	if err != nil {
		return fmt.Errorf("list pending changes: %w", err)
	}
	if len(pending) == 0 {
		return nil
	}

	// Invalid queued changes are poison pills: the server would reject them
	// on every attempt, so they leave the queue without being pushed.
	changes := make([]adapter.PushChange, 0, len(pending))
	for _, p := range pending {
		if vErr := s.validator.Validate(ctx, p); vErr != nil {
			s.log.Warn().
				Err(vErr).
				Str("item_id", p.ItemID.String()).
				Msg("dropping invalid pending change")
			continue
		}
		changes = append(changes, adapter.PushChange{
			ItemID:    p.ItemID.String(),
			Operation: int(p.Operation),
			Name:      p.Name,
			TypeID:    p.TypeID,
			Payload:   p.Payload,
			Checksum:  p.Checksum,
			BaseSeq:   p.BaseSeq,
		})
	}

	var result adapter.PushResult
	if len(changes) > 0 {
		result, err = s.adapter.PushChanges(ctx, vaultID, changes)
		if err != nil {
			return err
		}
	}

	for _, change := range result.AppliedChanges {
		if err = s.applyPullChange(ctx, storageID, vaultID, change); err != nil {
			return err
		}
	}
	for _, conflict := range result.Conflicts {
		s.log.Warn().
			Str("vault_id", vaultID.String()).
			Str("item_id", conflict.ItemID).
			Int64("server_seq", conflict.ServerSeq).
			Msg("push conflict, keeping server state")
	}

	resolved := make([]uuid.UUID, 0, len(pending))
	for _, p := range pending {
		resolved = append(resolved, p.ID)
	}
	if err = s.storages.Pending.DeletePendingByIDs(ctx, resolved); err != nil {
		return fmt.Errorf("drop confirmed pending changes: %w", err)
	}

	if result.NewCursor != "" {
		cursor.Cursor = result.NewCursor
	}
	return nil
}

func (s *RemoteSyncService) pullAll(ctx context.Context, storageID, vaultID uuid.UUID, cursor *models.SyncCursor) (int, error) {
	applied := 0
	for {
		page, err := s.adapter.PullChanges(ctx, vaultID, cursor.Cursor, pullPageSize)
		if err != nil {
			return applied, err
		}

		for _, change := range page.Changes {
			if err = s.applyPullChange(ctx, storageID, vaultID, change); err != nil {
				return applied, err
			}
			applied++
		}

		if page.NextCursor != "" {
			cursor.Cursor = page.NextCursor
		}
		if !page.HasMore {
			return applied, nil
		}
	}
}

func (s *RemoteSyncService) applyPullChange(ctx context.Context, storageID, vaultID uuid.UUID, change adapter.PullChange) error {
	itemID, err := uuid.Parse(change.ItemID)
	if err != nil {
		return fmt.Errorf("parse pulled item id %q: %w", change.ItemID, err)
	}

	updatedAt := time.Now()
	if change.UpdatedAt != "" {
		if t, parseErr := time.Parse(time.RFC3339Nano, change.UpdatedAt); parseErr == nil {
			updatedAt = t
		}
	}

	item := models.Item{
		StorageID: storageID,
		VaultID:   vaultID,
		ID:        itemID,
		Name:      change.Name,
		TypeID:    change.TypeID,
		Payload:   change.Payload,
		Checksum:  change.Checksum,
		Seq:       change.Seq,
		UpdatedAt: updatedAt,
		Deleted:   change.Deleted,
	}
	if err = s.storages.Items.UpsertItem(ctx, item); err != nil {
		return fmt.Errorf("apply pulled item %s: %w", itemID, err)
	}
	return nil
}
