package models

import "github.com/google/uuid"

type SyncStatus string

const (
	SyncStatusIdle    SyncStatus = "idle"
	SyncStatusSyncing SyncStatus = "syncing"
	SyncStatusSynced  SyncStatus = "synced"
	SyncStatusError   SyncStatus = "error"
)

// StorageSyncState is the per-storage view rendered by banners. It is
// written only by the sync orchestrator.
type StorageSyncState struct {
	Status               SyncStatus `json:"status"`
	LastError            string     `json:"last_error,omitempty"`
	PersonalVaultsLocked bool       `json:"personal_vaults_locked"`
}

// SyncResult is the outcome of one remote sync attempt. LockedVaults lists
// vaults whose keys were unavailable and therefore skipped.
type SyncResult struct {
	Applied      int         `json:"applied"`
	LockedVaults []uuid.UUID `json:"locked_vaults"`
}

type ServerIdentity struct {
	PublicKey string `json:"public_key"`
	Signature string `json:"signature"`
	Timestamp int64  `json:"timestamp"`
}

type SystemInfo struct {
	ServerID              string          `json:"server_id,omitempty"`
	ServerName            string          `json:"server_name"`
	ServerFingerprint     string          `json:"server_fingerprint"`
	PersonalVaultsEnabled bool            `json:"personal_vaults_enabled"`
	Identity              *ServerIdentity `json:"identity,omitempty"`
}
