// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 constXife

package service

import (
	"context"
	"sync"

	"github.com/constXife/zann-sub000/internal/logger"
	"github.com/constXife/zann-sub000/internal/store"
	"github.com/google/uuid"
)

// PendingChangeCounter caches the number of unsynced local changes per
// storage for display next to the sync status. Counts are best effort: a
// failed refresh keeps the previous value rather than surfacing an error.
type PendingChangeCounter struct {
	pending store.PendingChangeRepository
	log     *logger.Logger

	mu     sync.RWMutex
	counts map[uuid.UUID]int
}

func NewPendingChangeCounter(pending store.PendingChangeRepository, log *logger.Logger) *PendingChangeCounter {
	return &PendingChangeCounter{
		pending: pending,
		log:     log,
		counts:  make(map[uuid.UUID]int),
	}
}

// Refresh re-reads the pending count for one storage from the local cache.
func (c *PendingChangeCounter) Refresh(ctx context.Context, storageID uuid.UUID) {
	count, err := c.pending.CountPendingByStorage(ctx, storageID)
	if err != nil {
		c.log.Err(err).
			Str("storage_id", storageID.String()).
			Msg("failed to count pending changes")
		return
	}

	c.mu.Lock()
	c.counts[storageID] = count
	c.mu.Unlock()
}

// Count returns the last known pending count for a storage.
func (c *PendingChangeCounter) Count(storageID uuid.UUID) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.counts[storageID]
}
