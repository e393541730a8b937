package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/constXife/zann-sub000/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncCursorRepository_GetCursor(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSyncCursorRepository(db)
	storageID, vaultID := uuid.New(), uuid.New()
	syncedAt := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(getCursor).
		WithArgs(storageID.String(), vaultID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"storage_id", "vault_id", "cursor", "last_sync_at"}).
			AddRow(storageID.String(), vaultID.String(), "c42", syncedAt.Format(time.RFC3339Nano)))

	cursor, err := repo.GetCursor(context.Background(), storageID, vaultID)
	require.NoError(t, err)
	assert.Equal(t, "c42", cursor.Cursor)
	require.NotNil(t, cursor.LastSyncAt)
	assert.True(t, cursor.LastSyncAt.Equal(syncedAt))
}

func TestSyncCursorRepository_GetCursor_MissingRowMeansStartOver(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSyncCursorRepository(db)
	storageID, vaultID := uuid.New(), uuid.New()

	mock.ExpectQuery(getCursor).
		WithArgs(storageID.String(), vaultID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"storage_id", "vault_id", "cursor", "last_sync_at"}))

	cursor, err := repo.GetCursor(context.Background(), storageID, vaultID)
	require.NoError(t, err)
	assert.Equal(t, models.SyncCursor{StorageID: storageID, VaultID: vaultID}, cursor)
}

func TestSyncCursorRepository_UpsertCursor(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSyncCursorRepository(db)
	storageID, vaultID := uuid.New(), uuid.New()
	syncedAt := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec(upsertCursor).
		WithArgs(storageID.String(), vaultID.String(), "c43", syncedAt.Format(time.RFC3339Nano)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertCursor(context.Background(), models.SyncCursor{
		StorageID:  storageID,
		VaultID:    vaultID,
		Cursor:     "c43",
		LastSyncAt: &syncedAt,
	})
	assert.NoError(t, err)
}

func TestSyncCursorRepository_UpsertCursor_NoSyncTime(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSyncCursorRepository(db)
	storageID, vaultID := uuid.New(), uuid.New()

	mock.ExpectExec(upsertCursor).
		WithArgs(storageID.String(), vaultID.String(), "c1", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertCursor(context.Background(), models.SyncCursor{
		StorageID: storageID,
		VaultID:   vaultID,
		Cursor:    "c1",
	})
	assert.NoError(t, err)
}

func TestSyncCursorRepository_DeleteCursorsByStorage(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSyncCursorRepository(db)
	storageID := uuid.New()

	mock.ExpectExec(deleteCursorsByStorage).
		WithArgs(storageID.String()).
		WillReturnResult(sqlmock.NewResult(0, 2))

	assert.NoError(t, repo.DeleteCursorsByStorage(context.Background(), storageID))
}
