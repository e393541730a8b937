package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/constXife/zann-sub000/internal/logger"
	"github.com/constXife/zann-sub000/models"
	"github.com/google/uuid"
)

type itemRepository struct {
	*DB
}

func NewItemRepository(db *DB) ItemRepository {
	return &itemRepository{DB: db}
}

func (r *itemRepository) GetItem(ctx context.Context, storageID, vaultID, itemID uuid.UUID) (models.Item, error) {
	row := r.DB.QueryRowContext(ctx, getItem, storageID.String(), vaultID.String(), itemID.String())

	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Item{}, ErrItemNotFound
		}
		return models.Item{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

func (r *itemRepository) ListItems(ctx context.Context, storageID, vaultID uuid.UUID) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listItems, storageID.String(), vaultID.String())
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.ListItems").
			Str("vault_id", vaultID.String()).
			Msg("failed to list items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0, 50)
	for rows.Next() {
		item, scanErr := scanItem(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

func (r *itemRepository) UpsertItem(ctx context.Context, item models.Item) error {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(item.Payload)
	if err != nil {
		return fmt.Errorf("encode item payload: %w", err)
	}

	_, err = r.DB.ExecContext(ctx, upsertItem,
		item.StorageID.String(),
		item.VaultID.String(),
		item.ID.String(),
		item.Name,
		item.TypeID,
		string(payload),
		item.Checksum,
		item.Seq,
		item.UpdatedAt.UTC().Format(time.RFC3339Nano),
		item.Deleted,
	)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.UpsertItem").
			Str("item_id", item.ID.String()).
			Msg("failed to upsert item")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *itemRepository) DeleteItemsByStorage(ctx context.Context, storageID uuid.UUID) error {
	_, err := r.DB.ExecContext(ctx, deleteItemsByStorage, storageID.String())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func scanItem(row rowScanner) (models.Item, error) {
	var (
		item                   models.Item
		storageID, vaultID, id string
		payload, updatedAt     string
	)
	err := row.Scan(
		&storageID,
		&vaultID,
		&id,
		&item.Name,
		&item.TypeID,
		&payload,
		&item.Checksum,
		&item.Seq,
		&updatedAt,
		&item.Deleted,
	)
	if err != nil {
		return models.Item{}, err
	}

	if item.StorageID, err = uuid.Parse(storageID); err != nil {
		return models.Item{}, fmt.Errorf("parse storage id: %w", err)
	}
	if item.VaultID, err = uuid.Parse(vaultID); err != nil {
		return models.Item{}, fmt.Errorf("parse vault id: %w", err)
	}
	if item.ID, err = uuid.Parse(id); err != nil {
		return models.Item{}, fmt.Errorf("parse item id: %w", err)
	}

	if payload != "" {
		if err = json.Unmarshal([]byte(payload), &item.Payload); err != nil {
			return models.Item{}, fmt.Errorf("decode item payload: %w", err)
		}
	}

	if updatedAt != "" {
		if item.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
			return models.Item{}, fmt.Errorf("parse item updated_at: %w", err)
		}
	}

	return item, nil
}
