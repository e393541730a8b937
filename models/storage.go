package models

import (
	"time"

	"github.com/google/uuid"
)

type StorageKind string

const (
	StorageKindLocal  StorageKind = "local"
	StorageKindRemote StorageKind = "remote"
)

// Storage is a configured vault backend, either local-only or server-synced.
type Storage struct {
	ID                uuid.UUID   `json:"id"`
	Name              string      `json:"name"`
	Kind              StorageKind `json:"kind"`
	ServerURL         string      `json:"server_url,omitempty"`
	ServerFingerprint string      `json:"server_fingerprint,omitempty"`
}

func (s Storage) IsRemote() bool {
	return s.Kind == StorageKindRemote
}

type VaultKind string

const (
	VaultKindPersonal VaultKind = "personal"
	VaultKindShared   VaultKind = "shared"
)

type Vault struct {
	StorageID uuid.UUID `json:"storage_id"`
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Kind      VaultKind `json:"kind"`
}

type Item struct {
	StorageID uuid.UUID `json:"storage_id"`
	VaultID   uuid.UUID `json:"vault_id"`
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	TypeID    string    `json:"type_id,omitempty"`
	Payload   Payload   `json:"payload"`
	Checksum  string    `json:"checksum"`
	Seq       int64     `json:"seq"`
	UpdatedAt time.Time `json:"updated_at"`
	Deleted   bool      `json:"deleted"`
}

// Payload is the decrypted field set of a vault item. Values are either
// scalars or nested JSON objects; the sync core treats them as opaque.
type Payload map[string]any

// PendingOperation mirrors the operation column of the pending_changes table.
type PendingOperation int

const (
	PendingOpPut PendingOperation = iota + 1
	PendingOpUpdate
	PendingOpDelete
)

// PendingChange is a local mutation that has not yet been confirmed by the
// remote store.
type PendingChange struct {
	ID        uuid.UUID        `json:"id"`
	StorageID uuid.UUID        `json:"storage_id"`
	VaultID   uuid.UUID        `json:"vault_id"`
	ItemID    uuid.UUID        `json:"item_id"`
	Operation PendingOperation `json:"operation"`
	Name      string           `json:"name,omitempty"`
	TypeID    string           `json:"type_id,omitempty"`
	Payload   Payload          `json:"payload,omitempty"`
	Checksum  string           `json:"checksum,omitempty"`
	BaseSeq   int64            `json:"base_seq"`
	CreatedAt time.Time        `json:"created_at"`
}

// SyncCursor is the per-vault pull position on the remote store.
type SyncCursor struct {
	StorageID  uuid.UUID  `json:"storage_id"`
	VaultID    uuid.UUID  `json:"vault_id"`
	Cursor     string     `json:"cursor,omitempty"`
	LastSyncAt *time.Time `json:"last_sync_at,omitempty"`
}
