package store

import (
	"context"

	"github.com/constXife/zann-sub000/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// StorageRepository manages configured storages in the local cache.
type StorageRepository interface {
	ListStorages(ctx context.Context) ([]models.Storage, error)
	GetStorage(ctx context.Context, id uuid.UUID) (models.Storage, error)
	UpsertStorage(ctx context.Context, storage models.Storage) error
}

// VaultRepository manages the locally cached vault list per storage.
type VaultRepository interface {
	ListVaults(ctx context.Context, storageID uuid.UUID) ([]models.Vault, error)
	GetVault(ctx context.Context, storageID, vaultID uuid.UUID) (models.Vault, error)
	UpsertVault(ctx context.Context, vault models.Vault) error
	DeleteVaultsByStorage(ctx context.Context, storageID uuid.UUID) error
}

// ItemRepository manages locally cached vault items.
type ItemRepository interface {
	GetItem(ctx context.Context, storageID, vaultID, itemID uuid.UUID) (models.Item, error)
	ListItems(ctx context.Context, storageID, vaultID uuid.UUID) ([]models.Item, error)
	// UpsertItem writes the server-confirmed state of an item, replacing any
	// previous local row for the same id.
	UpsertItem(ctx context.Context, item models.Item) error
	DeleteItemsByStorage(ctx context.Context, storageID uuid.UUID) error
}

// PendingChangeRepository manages the queue of local mutations awaiting
// server confirmation.
type PendingChangeRepository interface {
	InsertPendingChange(ctx context.Context, change models.PendingChange) error
	ListPendingByStorage(ctx context.Context, storageID uuid.UUID) ([]models.PendingChange, error)
	ListPendingByVault(ctx context.Context, storageID, vaultID uuid.UUID) ([]models.PendingChange, error)
	DeletePendingByIDs(ctx context.Context, ids []uuid.UUID) error
	DeletePendingByStorage(ctx context.Context, storageID uuid.UUID) error
	CountPendingByStorage(ctx context.Context, storageID uuid.UUID) (int, error)
}

// SyncCursorRepository manages per-vault pull cursors.
type SyncCursorRepository interface {
	GetCursor(ctx context.Context, storageID, vaultID uuid.UUID) (models.SyncCursor, error)
	UpsertCursor(ctx context.Context, cursor models.SyncCursor) error
	DeleteCursorsByStorage(ctx context.Context, storageID uuid.UUID) error
}

// ClientStorages aggregates all local repositories consumed by the services.
type ClientStorages struct {
	Storages StorageRepository
	Vaults   VaultRepository
	Items    ItemRepository
	Pending  PendingChangeRepository
	Cursors  SyncCursorRepository
}

// NewClientStorages wires every repository onto the same database handle.
func NewClientStorages(db *DB) *ClientStorages {
	return &ClientStorages{
		Storages: NewStorageRepository(db),
		Vaults:   NewVaultRepository(db),
		Items:    NewItemRepository(db),
		Pending:  NewPendingChangeRepository(db),
		Cursors:  NewSyncCursorRepository(db),
	}
}
