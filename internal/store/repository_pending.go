package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/constXife/zann-sub000/internal/logger"
	"github.com/constXife/zann-sub000/models"
	"github.com/google/uuid"
)

type pendingChangeRepository struct {
	*DB
}

func NewPendingChangeRepository(db *DB) PendingChangeRepository {
	return &pendingChangeRepository{DB: db}
}

func (r *pendingChangeRepository) InsertPendingChange(ctx context.Context, change models.PendingChange) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(change.Payload)
	if err != nil {
		return fmt.Errorf("encode pending payload: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, insertPendingChange,
		change.ID.String(),
		change.StorageID.String(),
		change.VaultID.String(),
		change.ItemID.String(),
		int(change.Operation),
		change.Name,
		change.TypeID,
		string(payload),
		change.Checksum,
		change.BaseSeq,
		change.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		log.Err(err).
			Str("func", "pendingChangeRepository.InsertPendingChange").
			Str("item_id", change.ItemID.String()).
			Msg("failed to insert pending change")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *pendingChangeRepository) ListPendingByStorage(ctx context.Context, storageID uuid.UUID) ([]models.PendingChange, error) {
	return r.listPending(ctx, sq.Eq{"storage_id": storageID.String()})
}

func (r *pendingChangeRepository) ListPendingByVault(ctx context.Context, storageID, vaultID uuid.UUID) ([]models.PendingChange, error) {
	return r.listPending(ctx, sq.Eq{
		"storage_id": storageID.String(),
		"vault_id":   vaultID.String(),
	})
}

func (r *pendingChangeRepository) listPending(ctx context.Context, where sq.Eq) ([]models.PendingChange, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.
		Select("id", "storage_id", "vault_id", "item_id", "operation", "name", "type_id", "payload", "checksum", "base_seq", "created_at").
		From("pending_changes").
		Where(where).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "pendingChangeRepository.listPending").Msg("failed to list pending changes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	changes := make([]models.PendingChange, 0, 16)
	for rows.Next() {
		change, scanErr := scanPendingChange(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		changes = append(changes, change)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return changes, nil
}

func (r *pendingChangeRepository) DeletePendingByIDs(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.String())
	}

	query, args, err := sq.
		Delete("pending_changes").
		Where(sq.Eq{"id": raw}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *pendingChangeRepository) DeletePendingByStorage(ctx context.Context, storageID uuid.UUID) error {
	_, err := r.DB.ExecContext(ctx, deletePendingByStorage, storageID.String())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (r *pendingChangeRepository) CountPendingByStorage(ctx context.Context, storageID uuid.UUID) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, countPendingByStorage, storageID.String()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return count, nil
}

func scanPendingChange(row rowScanner) (models.PendingChange, error) {
	var (
		change                         models.PendingChange
		id, storageID, vaultID, itemID string
		operation                      int
		payload, createdAt             string
	)
	err := row.Scan(
		&id,
		&storageID,
		&vaultID,
		&itemID,
		&operation,
		&change.Name,
		&change.TypeID,
		&payload,
		&change.Checksum,
		&change.BaseSeq,
		&createdAt,
	)
	if err != nil {
		return models.PendingChange{}, err
	}

	if change.ID, err = uuid.Parse(id); err != nil {
		return models.PendingChange{}, fmt.Errorf("parse pending change id: %w", err)
	}
	if change.StorageID, err = uuid.Parse(storageID); err != nil {
		return models.PendingChange{}, fmt.Errorf("parse storage id: %w", err)
	}
	if change.VaultID, err = uuid.Parse(vaultID); err != nil {
		return models.PendingChange{}, fmt.Errorf("parse vault id: %w", err)
	}
	if change.ItemID, err = uuid.Parse(itemID); err != nil {
		return models.PendingChange{}, fmt.Errorf("parse item id: %w", err)
	}

	change.Operation = models.PendingOperation(operation)

	if payload != "" {
		if err = json.Unmarshal([]byte(payload), &change.Payload); err != nil {
			return models.PendingChange{}, fmt.Errorf("decode pending payload: %w", err)
		}
	}

	if createdAt != "" {
		if change.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
			return models.PendingChange{}, fmt.Errorf("parse pending created_at: %w", err)
		}
	}

	return change, nil
}
