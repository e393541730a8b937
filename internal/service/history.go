// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 constXife

package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/constXife/zann-sub000/internal/adapter"
	"github.com/constXife/zann-sub000/internal/logger"
	"github.com/constXife/zann-sub000/internal/utils"
	"github.com/constXife/zann-sub000/models"
	"github.com/google/uuid"
)

// ItemHistory builds the change timeline of a single vault item. It merges
// server-confirmed entries with optimistic entries for local edits that
// have not been confirmed yet, and caches payload snapshots so time travel
// does not refetch them.
//
// Refresh attempts carry a monotonically increasing token; a fetch that
// finishes after a newer one started is discarded, so a stale response can
// never overwrite a fresher timeline.
type ItemHistory struct {
	adapter adapter.ServerAdapter
	log     *logger.Logger
	limit   int

	vaultID uuid.UUID
	itemID  uuid.UUID

	mu       sync.Mutex
	token    uint64
	server   []models.HistoryEntry
	pending  []models.HistoryEntry
	payloads map[models.Version]models.Payload
	lastErr  error
}

func NewItemHistory(serverAdapter adapter.ServerAdapter, log *logger.Logger, limit int, vaultID, itemID uuid.UUID) *ItemHistory {
	return &ItemHistory{
		adapter:  serverAdapter,
		log:      log,
		limit:    limit,
		vaultID:  vaultID,
		itemID:   itemID,
		payloads: make(map[models.Version]models.Payload),
	}
}

// Refresh fetches the server-side history and reconciles optimistic
// entries against it. On failure the server portion of the timeline is
// dropped and the optimistic entries remain.
func (h *ItemHistory) Refresh(ctx context.Context) error {
	h.mu.Lock()
	h.token++
	token := h.token
	h.mu.Unlock()

	entries, err := h.adapter.HistoryList(ctx, h.vaultID, h.itemID, h.limit)

	h.mu.Lock()
	defer h.mu.Unlock()

	if token != h.token {
		// A newer refresh superseded this one while it was in flight.
		return nil
	}

	if err != nil {
		h.server = nil
		h.lastErr = err
		h.log.Err(err).
			Str("item_id", h.itemID.String()).
			Msg("failed to fetch item history")
		return err
	}

	h.server = entries
	h.lastErr = nil
	h.reconcileLocked()
	return nil
}

// reconcileLocked drops optimistic entries dominated by a server entry
// created at or after the local edit, meaning the server has confirmed
// that edit (or something newer). Their cached payloads are evicted with
// them. Callers hold h.mu.
func (h *ItemHistory) reconcileLocked() {
	if len(h.pending) == 0 || len(h.server) == 0 {
		return
	}

	kept := h.pending[:0]
	for _, p := range h.pending {
		if h.confirmedLocked(p) {
			delete(h.payloads, p.Version)
			continue
		}
		kept = append(kept, p)
	}
	h.pending = kept
}

func (h *ItemHistory) confirmedLocked(pending models.HistoryEntry) bool {
	localAt := pending.Version.LocalTime()
	for _, s := range h.server {
		created, ok := s.CreatedTime()
		if !ok {
			continue
		}
		if !created.Before(localAt) {
			return true
		}
	}
	return false
}

// Timeline returns the merged history, newest first: optimistic entries
// precede the server list, which the server already orders newest first.
func (h *ItemHistory) Timeline() []models.HistoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()

	merged := make([]models.HistoryEntry, 0, len(h.pending)+len(h.server))
	merged = append(merged, h.pending...)
	merged = append(merged, h.server...)
	return merged
}

// SortedTimeline returns the merged history ordered oldest to newest by
// creation time. Entries with unparsable timestamps keep their insertion
// order relative to their neighbours.
func (h *ItemHistory) SortedTimeline() []models.HistoryEntry {
	merged := h.Timeline()

	// Reverse the newest-first merge so insertion order reads oldest first,
	// then let parsable timestamps refine it.
	for i, j := 0, len(merged)-1; i < j; i, j = i+1, j-1 {
		merged[i], merged[j] = merged[j], merged[i]
	}

	sort.SliceStable(merged, func(i, j int) bool {
		ti, okI := merged[i].CreatedTime()
		tj, okJ := merged[j].CreatedTime()
		if !okI || !okJ {
			return false
		}
		return ti.Before(tj)
	})
	return merged
}

// LastError returns the error recorded by the most recent failed refresh.
func (h *ItemHistory) LastError() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastErr
}

// AddOptimisticHistory inserts a local, unconfirmed edit at the head of
// the timeline and caches its payload. The returned entry carries a local
// version derived from the wall clock, which a later reconciliation uses
// to decide when the server has caught up.
func (h *ItemHistory) AddOptimisticHistory(payload models.Payload) (models.HistoryEntry, error) {
	checksum, err := utils.Checksum(payload)
	if err != nil {
		return models.HistoryEntry{}, fmt.Errorf("checksum optimistic entry: %w", err)
	}

	now := time.Now()
	entry := models.HistoryEntry{
		Version:    models.LocalVersion(now),
		Checksum:   checksum,
		ChangeType: "update",
		CreatedAt:  now.UTC().Format(time.RFC3339Nano),
		Pending:    true,
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.pending = append([]models.HistoryEntry{entry}, h.pending...)
	h.payloads[entry.Version] = payload
	return entry, nil
}

// RemoveOptimisticHistory drops one optimistic entry and its cached
// payload, e.g. after the local edit it stood for was rolled back. Remote
// versions are ignored.
func (h *ItemHistory) RemoveOptimisticHistory(version models.Version) {
	if !version.IsLocal() {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for i, p := range h.pending {
		if p.Version == version {
			h.pending = append(h.pending[:i], h.pending[i+1:]...)
			break
		}
	}
	delete(h.payloads, version)
}

// FetchPayload returns the payload snapshot at a version, from cache when
// possible. Local versions exist only in the cache; a miss there means the
// entry was reconciled away.
func (h *ItemHistory) FetchPayload(ctx context.Context, version models.Version) (models.Payload, error) {
	h.mu.Lock()
	if payload, ok := h.payloads[version]; ok {
		h.mu.Unlock()
		return payload, nil
	}
	h.mu.Unlock()

	if version.IsLocal() {
		return nil, fmt.Errorf("no cached payload for %s", version)
	}

	payload, err := h.adapter.HistoryGet(ctx, h.vaultID, h.itemID, version.Remote())
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	h.payloads[version] = payload
	h.mu.Unlock()
	return payload, nil
}
