// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 constXife

package service

import (
	"context"
	"testing"
	"time"

	"github.com/constXife/zann-sub000/internal/adapter"
	"github.com/constXife/zann-sub000/internal/logger"
	"github.com/constXife/zann-sub000/internal/mock"
	"github.com/constXife/zann-sub000/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func remoteEntry(version int64, createdAt time.Time) models.HistoryEntry {
	return models.HistoryEntry{
		Version:    models.RemoteVersion(version),
		Checksum:   "sum",
		ChangeType: "update",
		CreatedAt:  createdAt.UTC().Format(time.RFC3339Nano),
	}
}

func newHistoryHarness(t *testing.T) (*ItemHistory, *mock.MockServerAdapter, uuid.UUID, uuid.UUID) {
	t.Helper()
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	vaultID, itemID := uuid.New(), uuid.New()
	return NewItemHistory(serverAdapter, logger.Nop(), 5, vaultID, itemID), serverAdapter, vaultID, itemID
}

func TestItemHistory_RefreshBuildsTimeline(t *testing.T) {
	h, serverAdapter, vaultID, itemID := newHistoryHarness(t)
	now := time.Now()

	// Newest first, the way the server returns them.
	serverAdapter.EXPECT().
		HistoryList(gomock.Any(), vaultID, itemID, 5).
		Return([]models.HistoryEntry{
			remoteEntry(3, now),
			remoteEntry(2, now.Add(-time.Hour)),
		}, nil)

	require.NoError(t, h.Refresh(context.Background()))

	timeline := h.Timeline()
	require.Len(t, timeline, 2)
	assert.Equal(t, int64(3), timeline[0].Version.Remote())
	assert.NoError(t, h.LastError())
}

func TestItemHistory_RefreshFailureKeepsOptimisticEntries(t *testing.T) {
	h, serverAdapter, vaultID, itemID := newHistoryHarness(t)

	entry, err := h.AddOptimisticHistory(models.Payload{"password": "draft"})
	require.NoError(t, err)

	serverAdapter.EXPECT().
		HistoryList(gomock.Any(), vaultID, itemID, 5).
		Return(nil, adapter.Errf(adapter.KindHistoryListFailed, "http 500: boom"))

	require.Error(t, h.Refresh(context.Background()))

	timeline := h.Timeline()
	require.Len(t, timeline, 1)
	assert.Equal(t, entry.Version, timeline[0].Version)
	assert.True(t, timeline[0].Pending)
	assert.Error(t, h.LastError())
}

func TestItemHistory_ReconcileDropsConfirmedOptimistic(t *testing.T) {
	h, serverAdapter, vaultID, itemID := newHistoryHarness(t)

	entry, err := h.AddOptimisticHistory(models.Payload{"password": "draft"})
	require.NoError(t, err)

	// The cached payload is reachable while the entry is pending.
	payload, err := h.FetchPayload(context.Background(), entry.Version)
	require.NoError(t, err)
	assert.Equal(t, "draft", payload["password"])

	// A server entry created after the local edit confirms it.
	serverAdapter.EXPECT().
		HistoryList(gomock.Any(), vaultID, itemID, 5).
		Return([]models.HistoryEntry{remoteEntry(7, time.Now().Add(time.Minute))}, nil)

	require.NoError(t, h.Refresh(context.Background()))

	timeline := h.Timeline()
	require.Len(t, timeline, 1)
	assert.False(t, timeline[0].Pending)

	// The evicted payload is gone with it.
	_, err = h.FetchPayload(context.Background(), entry.Version)
	assert.Error(t, err)
}

func TestItemHistory_ReconcileKeepsUnconfirmedOptimistic(t *testing.T) {
	h, serverAdapter, vaultID, itemID := newHistoryHarness(t)

	_, err := h.AddOptimisticHistory(models.Payload{"password": "draft"})
	require.NoError(t, err)

	// Server history predates the local edit, so it stays pending.
	serverAdapter.EXPECT().
		HistoryList(gomock.Any(), vaultID, itemID, 5).
		Return([]models.HistoryEntry{remoteEntry(7, time.Now().Add(-time.Hour))}, nil)

	require.NoError(t, h.Refresh(context.Background()))

	timeline := h.Timeline()
	require.Len(t, timeline, 2)
	assert.True(t, timeline[0].Pending)
}

func TestItemHistory_RefreshIsIdempotent(t *testing.T) {
	h, serverAdapter, vaultID, itemID := newHistoryHarness(t)
	now := time.Now()

	serverAdapter.EXPECT().
		HistoryList(gomock.Any(), vaultID, itemID, 5).
		Return([]models.HistoryEntry{remoteEntry(3, now)}, nil).
		Times(2)

	require.NoError(t, h.Refresh(context.Background()))
	first := h.Timeline()
	require.NoError(t, h.Refresh(context.Background()))

	assert.Equal(t, first, h.Timeline())
}

func TestItemHistory_StaleRefreshIsDiscarded(t *testing.T) {
	h, serverAdapter, vaultID, itemID := newHistoryHarness(t)
	now := time.Now()

	firstStarted := make(chan struct{})
	release := make(chan struct{})

	gomock.InOrder(
		serverAdapter.EXPECT().
			HistoryList(gomock.Any(), vaultID, itemID, 5).
			DoAndReturn(func(context.Context, uuid.UUID, uuid.UUID, int) ([]models.HistoryEntry, error) {
				close(firstStarted)
				<-release
				return []models.HistoryEntry{remoteEntry(1, now.Add(-time.Hour))}, nil
			}),
		serverAdapter.EXPECT().
			HistoryList(gomock.Any(), vaultID, itemID, 5).
			Return([]models.HistoryEntry{remoteEntry(2, now)}, nil),
	)

	done := make(chan error)
	go func() { done <- h.Refresh(context.Background()) }()
	<-firstStarted

	// A newer refresh finishes while the first is still in flight.
	require.NoError(t, h.Refresh(context.Background()))
	close(release)
	require.NoError(t, <-done)

	// The slow first response must not overwrite the newer timeline.
	timeline := h.Timeline()
	require.Len(t, timeline, 1)
	assert.Equal(t, int64(2), timeline[0].Version.Remote())
}

func TestItemHistory_RemoveOptimisticHistory(t *testing.T) {
	h, _, _, _ := newHistoryHarness(t)

	entry, err := h.AddOptimisticHistory(models.Payload{"a": "b"})
	require.NoError(t, err)

	// Remote versions are ignored.
	h.RemoveOptimisticHistory(models.RemoteVersion(3))
	assert.Len(t, h.Timeline(), 1)

	h.RemoveOptimisticHistory(entry.Version)
	assert.Empty(t, h.Timeline())

	_, err = h.FetchPayload(context.Background(), entry.Version)
	assert.Error(t, err)
}

func TestItemHistory_FetchPayloadCachesRemoteVersions(t *testing.T) {
	h, serverAdapter, vaultID, itemID := newHistoryHarness(t)

	serverAdapter.EXPECT().
		HistoryGet(gomock.Any(), vaultID, itemID, int64(4)).
		Return(models.Payload{"password": "old"}, nil).
		Times(1)

	ctx := context.Background()
	for range 3 {
		payload, err := h.FetchPayload(ctx, models.RemoteVersion(4))
		require.NoError(t, err)
		assert.Equal(t, "old", payload["password"])
	}
}

func TestItemHistory_SortedTimeline(t *testing.T) {
	h, serverAdapter, vaultID, itemID := newHistoryHarness(t)
	now := time.Now()

	serverAdapter.EXPECT().
		HistoryList(gomock.Any(), vaultID, itemID, 5).
		Return([]models.HistoryEntry{
			remoteEntry(3, now.Add(-time.Minute)),
			remoteEntry(2, now.Add(-2*time.Minute)),
		}, nil)
	require.NoError(t, h.Refresh(context.Background()))

	_, err := h.AddOptimisticHistory(models.Payload{"a": "b"})
	require.NoError(t, err)

	sorted := h.SortedTimeline()
	require.Len(t, sorted, 3)
	assert.Equal(t, int64(2), sorted[0].Version.Remote())
	assert.Equal(t, int64(3), sorted[1].Version.Remote())
	assert.True(t, sorted[2].Pending, "the local edit is the newest entry")
}
