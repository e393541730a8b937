package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/constXife/zann-sub000/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = sqlDB.Close()
	})

	return &DB{DB: sqlDB}, mock
}

func TestStorageRepository_GetStorage(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStorageRepository(db)
	id := uuid.New()

	mock.ExpectQuery(getStorage).
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "kind", "server_url", "server_fingerprint"}).
			AddRow(id.String(), "work", "remote", "https://vault.example.com", "fp-1"))

	st, err := repo.GetStorage(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, st.ID)
	assert.Equal(t, models.StorageKindRemote, st.Kind)
	assert.True(t, st.IsRemote())
}

func TestStorageRepository_GetStorage_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStorageRepository(db)
	id := uuid.New()

	mock.ExpectQuery(getStorage).
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "kind", "server_url", "server_fingerprint"}))

	_, err := repo.GetStorage(context.Background(), id)
	assert.ErrorIs(t, err, ErrStorageNotFound)
}

func TestStorageRepository_ListStorages(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStorageRepository(db)
	a, b := uuid.New(), uuid.New()

	mock.ExpectQuery(listStorages).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "kind", "server_url", "server_fingerprint"}).
			AddRow(a.String(), "local", "local", "", "").
			AddRow(b.String(), "work", "remote", "https://vault.example.com", "fp-1"))

	storages, err := repo.ListStorages(context.Background())
	require.NoError(t, err)
	require.Len(t, storages, 2)
	assert.False(t, storages[0].IsRemote())
	assert.Equal(t, b, storages[1].ID)
}

func TestStorageRepository_ListStorages_BadID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStorageRepository(db)

	mock.ExpectQuery(listStorages).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "kind", "server_url", "server_fingerprint"}).
			AddRow("not-a-uuid", "work", "remote", "", ""))

	_, err := repo.ListStorages(context.Background())
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestStorageRepository_UpsertStorage(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStorageRepository(db)
	id := uuid.New()

	mock.ExpectExec(upsertStorage).
		WithArgs(id.String(), "work", "remote", "https://vault.example.com", "fp-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertStorage(context.Background(), models.Storage{
		ID:                id,
		Name:              "work",
		Kind:              models.StorageKindRemote,
		ServerURL:         "https://vault.example.com",
		ServerFingerprint: "fp-1",
	})
	assert.NoError(t, err)
}

func TestStorageRepository_UpsertStorage_ExecError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStorageRepository(db)
	id := uuid.New()

	mock.ExpectExec(upsertStorage).
		WithArgs(id.String(), "", "local", "", "").
		WillReturnError(errors.New("database is locked"))

	err := repo.UpsertStorage(context.Background(), models.Storage{ID: id, Kind: models.StorageKindLocal})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
