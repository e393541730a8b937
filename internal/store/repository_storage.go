package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/constXife/zann-sub000/internal/logger"
	"github.com/constXife/zann-sub000/models"
	"github.com/google/uuid"
)

// storageRepository is the SQLite-backed implementation of
// [StorageRepository]. It keeps the locally known set of configured
// storages in the "storages" table.
type storageRepository struct {
	*DB
}

func NewStorageRepository(db *DB) StorageRepository {
	return &storageRepository{DB: db}
}

func (r *storageRepository) ListStorages(ctx context.Context) ([]models.Storage, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listStorages)
	if err != nil {
		log.Err(err).Str("func", "storageRepository.ListStorages").Msg("failed to list storages")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	storages := make([]models.Storage, 0, 4)
	for rows.Next() {
		st, scanErr := scanStorage(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "storageRepository.ListStorages").Msg("failed to scan storage row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		storages = append(storages, st)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return storages, nil
}

func (r *storageRepository) GetStorage(ctx context.Context, id uuid.UUID) (models.Storage, error) {
	row := r.DB.QueryRowContext(ctx, getStorage, id.String())

	st, err := scanStorage(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Storage{}, ErrStorageNotFound
		}
		return models.Storage{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return st, nil
}

func (r *storageRepository) UpsertStorage(ctx context.Context, storage models.Storage) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, upsertStorage,
		storage.ID.String(),
		storage.Name,
		string(storage.Kind),
		storage.ServerURL,
		storage.ServerFingerprint,
	)
	if err != nil {
		log.Err(err).
			Str("func", "storageRepository.UpsertStorage").
			Str("storage_id", storage.ID.String()).
			Msg("failed to upsert storage")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStorage(row rowScanner) (models.Storage, error) {
	var (
		st       models.Storage
		id, kind string
	)
	if err := row.Scan(&id, &st.Name, &kind, &st.ServerURL, &st.ServerFingerprint); err != nil {
		return models.Storage{}, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return models.Storage{}, fmt.Errorf("parse storage id: %w", err)
	}
	st.ID = parsed
	st.Kind = models.StorageKind(kind)

	return st, nil
}
