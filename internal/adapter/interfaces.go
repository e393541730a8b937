package adapter

import (
	"context"

	"github.com/constXife/zann-sub000/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// PushChange is one locally-pending mutation sent to the server.
type PushChange struct {
	ItemID    string         `json:"item_id"`
	Operation int            `json:"operation"`
	Name      string         `json:"name,omitempty"`
	TypeID    string         `json:"type_id,omitempty"`
	Payload   models.Payload `json:"payload,omitempty"`
	Checksum  string         `json:"checksum,omitempty"`
	BaseSeq   int64          `json:"base_seq"`
}

// PushConflict reports an item whose base sequence no longer matches the
// server's head; the caller resolves it by re-pulling the item.
type PushConflict struct {
	ItemID    string `json:"item_id"`
	ServerSeq int64  `json:"server_seq"`
}

// PushResult is the server's answer to a push batch.
type PushResult struct {
	Applied        []string       `json:"applied"`
	Conflicts      []PushConflict `json:"conflicts,omitempty"`
	AppliedChanges []PullChange   `json:"applied_changes,omitempty"`
	NewCursor      string         `json:"new_cursor"`
}

// PullChange is one server-side item state delivered by a pull page.
type PullChange struct {
	ItemID    string         `json:"item_id"`
	Seq       int64          `json:"seq"`
	Name      string         `json:"name,omitempty"`
	TypeID    string         `json:"type_id,omitempty"`
	Payload   models.Payload `json:"payload,omitempty"`
	Checksum  string         `json:"checksum,omitempty"`
	Deleted   bool           `json:"deleted"`
	UpdatedAt string         `json:"updated_at,omitempty"`
}

// PullPage is one page of the cursor-based pull stream.
type PullPage struct {
	Changes    []PullChange `json:"changes"`
	NextCursor string       `json:"next_cursor"`
	HasMore    bool         `json:"has_more"`
}

// VaultSummary is the remote description of a vault, including whether its
// key material is available to this client.
type VaultSummary struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Kind      models.VaultKind `json:"kind"`
	KeyLocked bool             `json:"key_locked"`
}

// ServerAdapter is the transport contract against the remote zann server.
// Every method returns either a successful result or an error that can be
// unwrapped into a *RemoteError for structural classification.
type ServerAdapter interface {
	// SystemInfo fetches and verifies the server's identity document.
	// Identity and clock-skew violations surface as KindIdentityInvalid and
	// KindClockSkew errors respectively.
	SystemInfo(ctx context.Context) (models.SystemInfo, error)

	// ListVaults returns all vaults visible to the authenticated user.
	ListVaults(ctx context.Context) ([]VaultSummary, error)

	// PushChanges uploads a batch of pending local mutations for one vault.
	PushChanges(ctx context.Context, vaultID uuid.UUID, changes []PushChange) (PushResult, error)

	// PullChanges fetches one page of remote changes for one vault starting
	// at cursor. An empty cursor starts from the beginning.
	PullChanges(ctx context.Context, vaultID uuid.UUID, cursor string, limit int) (PullPage, error)

	// HistoryList returns the most recent history entries for an item,
	// newest first. limit is clamped to the server's bound.
	HistoryList(ctx context.Context, vaultID, itemID uuid.UUID, limit int) ([]models.HistoryEntry, error)

	// HistoryGet fetches the full payload snapshot at one remote version.
	HistoryGet(ctx context.Context, vaultID, itemID uuid.UUID, version int64) (models.Payload, error)

	// SetToken installs the access token used for all subsequent calls.
	SetToken(token string)
}
