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

type vaultRepository struct {
	*DB
}

func NewVaultRepository(db *DB) VaultRepository {
	return &vaultRepository{DB: db}
}

func (r *vaultRepository) ListVaults(ctx context.Context, storageID uuid.UUID) ([]models.Vault, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listVaults, storageID.String())
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.ListVaults").
			Str("storage_id", storageID.String()).
			Msg("failed to list vaults")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	vaults := make([]models.Vault, 0, 8)
	for rows.Next() {
		v, scanErr := scanVault(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		vaults = append(vaults, v)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return vaults, nil
}

func (r *vaultRepository) GetVault(ctx context.Context, storageID, vaultID uuid.UUID) (models.Vault, error) {
	row := r.DB.QueryRowContext(ctx, getVault, storageID.String(), vaultID.String())

	v, err := scanVault(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Vault{}, ErrVaultNotFound
		}
		return models.Vault{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return v, nil
}

func (r *vaultRepository) UpsertVault(ctx context.Context, vault models.Vault) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, upsertVault,
		vault.StorageID.String(),
		vault.ID.String(),
		vault.Name,
		string(vault.Kind),
	)
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.UpsertVault").
			Str("vault_id", vault.ID.String()).
			Msg("failed to upsert vault")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *vaultRepository) DeleteVaultsByStorage(ctx context.Context, storageID uuid.UUID) error {
	_, err := r.DB.ExecContext(ctx, deleteVaultsByStorage, storageID.String())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func scanVault(row rowScanner) (models.Vault, error) {
	var (
		v             models.Vault
		storageID, id string
		kind          string
	)
	if err := row.Scan(&storageID, &id, &v.Name, &kind); err != nil {
		return models.Vault{}, err
	}

	sid, err := uuid.Parse(storageID)
	if err != nil {
		return models.Vault{}, fmt.Errorf("parse storage id: %w", err)
	}
	vid, err := uuid.Parse(id)
	if err != nil {
		return models.Vault{}, fmt.Errorf("parse vault id: %w", err)
	}

	v.StorageID = sid
	v.ID = vid
	v.Kind = models.VaultKind(kind)

	return v, nil
}
