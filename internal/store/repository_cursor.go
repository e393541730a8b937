package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/constXife/zann-sub000/internal/logger"
	"github.com/constXife/zann-sub000/models"
	"github.com/google/uuid"
)

type syncCursorRepository struct {
	*DB
}

func NewSyncCursorRepository(db *DB) SyncCursorRepository {
	return &syncCursorRepository{DB: db}
}

// GetCursor returns the stored pull cursor for the vault. A missing row is
// not an error; it yields a zero cursor, meaning "pull from the beginning".
func (r *syncCursorRepository) GetCursor(ctx context.Context, storageID, vaultID uuid.UUID) (models.SyncCursor, error) {
	row := r.DB.QueryRowContext(ctx, getCursor, storageID.String(), vaultID.String())

	var (
		cursor     models.SyncCursor
		sid, vid   string
		lastSyncAt sql.NullString
	)
	err := row.Scan(&sid, &vid, &cursor.Cursor, &lastSyncAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SyncCursor{StorageID: storageID, VaultID: vaultID}, nil
		}
		return models.SyncCursor{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if cursor.StorageID, err = uuid.Parse(sid); err != nil {
		return models.SyncCursor{}, fmt.Errorf("parse storage id: %w", err)
	}
	if cursor.VaultID, err = uuid.Parse(vid); err != nil {
		return models.SyncCursor{}, fmt.Errorf("parse vault id: %w", err)
	}

	if lastSyncAt.Valid && lastSyncAt.String != "" {
		t, parseErr := time.Parse(time.RFC3339Nano, lastSyncAt.String)
		if parseErr != nil {
			return models.SyncCursor{}, fmt.Errorf("parse last_sync_at: %w", parseErr)
		}
		cursor.LastSyncAt = &t
	}

	return cursor, nil
}

func (r *syncCursorRepository) UpsertCursor(ctx context.Context, cursor models.SyncCursor) error {
	log := logger.FromContext(ctx)

	var lastSyncAt any
	if cursor.LastSyncAt != nil {
		lastSyncAt = cursor.LastSyncAt.UTC().Format(time.RFC3339Nano)
	}

	_, err := r.DB.ExecContext(ctx, upsertCursor,
		cursor.StorageID.String(),
		cursor.VaultID.String(),
		cursor.Cursor,
		lastSyncAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "syncCursorRepository.UpsertCursor").
			Str("vault_id", cursor.VaultID.String()).
			Msg("failed to upsert sync cursor")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *syncCursorRepository) DeleteCursorsByStorage(ctx context.Context, storageID uuid.UUID) error {
	_, err := r.DB.ExecContext(ctx, deleteCursorsByStorage, storageID.String())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}
