// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 constXife

package service

import (
	"context"
	"testing"
	"time"

	"github.com/constXife/zann-sub000/internal/logger"
	"github.com/constXife/zann-sub000/internal/mock"
	"github.com/constXife/zann-sub000/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// timeTravelHarness pins a two-entry remote history:
//
//	v1 (oldest): {user, password: "old", legacy}
//	v2 (newest): {user, password: "mid", extra}
//
// against the live payload {user, password: "new", note}.
func timeTravelHarness(t *testing.T) (*TimeTravelSession, models.Payload) {
	t.Helper()
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	vaultID, itemID := uuid.New(), uuid.New()
	now := time.Now()

	serverAdapter.EXPECT().
		HistoryList(gomock.Any(), vaultID, itemID, 5).
		Return([]models.HistoryEntry{
			remoteEntry(2, now.Add(-time.Hour)),
			remoteEntry(1, now.Add(-2*time.Hour)),
		}, nil)
	serverAdapter.EXPECT().
		HistoryGet(gomock.Any(), vaultID, itemID, int64(1)).
		Return(models.Payload{"user": "neo", "password": "old", "legacy": "l"}, nil).
		AnyTimes()
	serverAdapter.EXPECT().
		HistoryGet(gomock.Any(), vaultID, itemID, int64(2)).
		Return(models.Payload{"user": "neo", "password": "mid", "extra": "x"}, nil).
		AnyTimes()

	history := NewItemHistory(serverAdapter, logger.Nop(), 5, vaultID, itemID)
	require.NoError(t, history.Refresh(context.Background()))

	live := models.Payload{"user": "neo", "password": "new", "note": "n"}
	return NewTimeTravelSession(history, logger.Nop()), live
}

func TestTimeTravel_OpenSelectsNewest(t *testing.T) {
	s, live := timeTravelHarness(t)

	require.NoError(t, s.Open(context.Background(), live))
	defer s.Close()

	assert.True(t, s.Active())
	assert.Equal(t, 1, s.Index())
	assert.Equal(t, int64(2), s.Entry().Version.Remote())
	assert.Equal(t, "mid", s.Snapshot()["password"])
}

func TestTimeTravel_OpenWithEmptyHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	history := NewItemHistory(serverAdapter, logger.Nop(), 5, uuid.New(), uuid.New())

	s := NewTimeTravelSession(history, logger.Nop())
	assert.Error(t, s.Open(context.Background(), models.Payload{"a": "b"}))
	assert.False(t, s.Active())
}

func TestTimeTravel_DiffAgainstOlderSnapshot(t *testing.T) {
	s, live := timeTravelHarness(t)
	require.NoError(t, s.Open(context.Background(), live))
	defer s.Close()

	// Newest entry v2 diffs against its predecessor v1.
	diff := s.Diff()
	assert.Equal(t, DiffSame, diff["user"])
	assert.Equal(t, DiffModified, diff["password"])
	assert.Equal(t, DiffAdded, diff["extra"])

	deleted := s.DeletedFields()
	assert.Equal(t, models.Payload{"legacy": "l"}, deleted)
}

func TestTimeTravel_OldestEntryDiffsAgainstLive(t *testing.T) {
	s, live := timeTravelHarness(t)
	ctx := context.Background()
	require.NoError(t, s.Open(ctx, live))
	defer s.Close()

	require.NoError(t, s.SetIndex(ctx, 0))

	diff := s.Diff()
	assert.Equal(t, DiffSame, diff["user"])
	assert.Equal(t, DiffModified, diff["password"])
	assert.Equal(t, DiffAdded, diff["legacy"])

	// Fields the live payload has that the old snapshot lacks.
	assert.Equal(t, models.Payload{"note": "n"}, s.DeletedFields())
}

func TestTimeTravel_SetIndexOutOfRange(t *testing.T) {
	s, live := timeTravelHarness(t)
	ctx := context.Background()
	require.NoError(t, s.Open(ctx, live))
	defer s.Close()

	assert.Error(t, s.SetIndex(ctx, -1))
	assert.Error(t, s.SetIndex(ctx, 2))
	assert.Equal(t, 1, s.Index(), "failed moves leave the selection in place")
}

func TestTimeTravel_DraftAppliesOverridesAndDeletions(t *testing.T) {
	s, live := timeTravelHarness(t)
	ctx := context.Background()
	require.NoError(t, s.Open(ctx, live))
	defer s.Close()

	require.NoError(t, s.SetIndex(ctx, 0))
	require.NoError(t, s.ApplyFieldOverride("password")) // "old" from v1
	require.NoError(t, s.MarkFieldDeleted("note"))

	draft, err := s.Draft()
	require.NoError(t, err)
	assert.Equal(t, models.Payload{"user": "neo", "password": "old"}, draft)

	// The live payload itself is untouched and the draft is repeatable.
	assert.Equal(t, "new", live["password"])
	again, err := s.Draft()
	require.NoError(t, err)
	assert.Equal(t, draft, again)
}

func TestTimeTravel_OverridesSurviveIndexMoves(t *testing.T) {
	s, live := timeTravelHarness(t)
	ctx := context.Background()
	require.NoError(t, s.Open(ctx, live))
	defer s.Close()

	require.NoError(t, s.ApplyFieldOverride("password")) // "mid" from v2
	require.NoError(t, s.SetIndex(ctx, 0))

	draft, err := s.Draft()
	require.NoError(t, err)
	assert.Equal(t, "mid", draft["password"])
}

func TestTimeTravel_OverrideFallsBackToBase(t *testing.T) {
	s, live := timeTravelHarness(t)
	ctx := context.Background()
	require.NoError(t, s.Open(ctx, live))
	defer s.Close()

	// "legacy" exists only in the base (v1), not in the selected v2.
	require.NoError(t, s.ApplyFieldOverride("legacy"))
	assert.Error(t, s.ApplyFieldOverride("no_such_field"))

	draft, err := s.Draft()
	require.NoError(t, err)
	assert.Equal(t, "l", draft["legacy"])
}

func TestTimeTravel_RemoveFieldOverride(t *testing.T) {
	s, live := timeTravelHarness(t)
	ctx := context.Background()
	require.NoError(t, s.Open(ctx, live))
	defer s.Close()

	require.NoError(t, s.ApplyFieldOverride("password"))
	s.RemoveFieldOverride("password")

	draft, err := s.Draft()
	require.NoError(t, err)
	assert.Equal(t, "new", draft["password"])
	assert.Empty(t, s.Overrides())
}

func TestTimeTravel_ClosedSessionRejectsOperations(t *testing.T) {
	s, live := timeTravelHarness(t)
	ctx := context.Background()
	require.NoError(t, s.Open(ctx, live))
	s.Close()

	assert.ErrorIs(t, s.SetIndex(ctx, 0), ErrSessionClosed)
	assert.ErrorIs(t, s.ApplyFieldOverride("password"), ErrSessionClosed)
	assert.ErrorIs(t, s.MarkFieldDeleted("note"), ErrSessionClosed)

	_, err := s.Draft()
	assert.ErrorIs(t, err, ErrSessionClosed)
}
