// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 constXife

package store

const (
	upsertStorage = `
		INSERT INTO storages (id, name, kind, server_url, server_fingerprint)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name               = excluded.name,
			kind               = excluded.kind,
			server_url         = excluded.server_url,
			server_fingerprint = excluded.server_fingerprint;`

	getStorage = `
		SELECT id, name, kind, server_url, server_fingerprint
		FROM storages
		WHERE id = ?;`

	listStorages = `
		SELECT id, name, kind, server_url, server_fingerprint
		FROM storages
		ORDER BY name;`

	upsertVault = `
		INSERT INTO vaults (storage_id, id, name, kind)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(storage_id, id) DO UPDATE SET
			name = excluded.name,
			kind = excluded.kind;`

	getVault = `
		SELECT storage_id, id, name, kind
		FROM vaults
		WHERE storage_id = ? AND id = ?;`

	listVaults = `
		SELECT storage_id, id, name, kind
		FROM vaults
		WHERE storage_id = ?
		ORDER BY name;`

	deleteVaultsByStorage = `
		DELETE FROM vaults
		WHERE storage_id = ?;`

	upsertItem = `
		INSERT INTO items (storage_id, vault_id, id, name, type_id, payload, checksum, seq, updated_at, deleted)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(storage_id, vault_id, id) DO UPDATE SET
			name       = excluded.name,
			type_id    = excluded.type_id,
			payload    = excluded.payload,
			checksum   = excluded.checksum,
			seq        = excluded.seq,
			updated_at = excluded.updated_at,
			deleted    = excluded.deleted;`

	getItem = `
		SELECT storage_id, vault_id, id, name, type_id, payload, checksum, seq, updated_at, deleted
		FROM items
		WHERE storage_id = ? AND vault_id = ? AND id = ?;`

	listItems = `
		SELECT storage_id, vault_id, id, name, type_id, payload, checksum, seq, updated_at, deleted
		FROM items
		WHERE storage_id = ? AND vault_id = ? AND deleted = 0
		ORDER BY name;`

	deleteItemsByStorage = `
		DELETE FROM items
		WHERE storage_id = ?;`

	insertPendingChange = `
		INSERT INTO pending_changes (id, storage_id, vault_id, item_id, operation, name, type_id, payload, checksum, base_seq, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

	countPendingByStorage = `
		SELECT COUNT(*)
		FROM pending_changes
		WHERE storage_id = ?;`

	deletePendingByStorage = `
		DELETE FROM pending_changes
		WHERE storage_id = ?;`

	getCursor = `
		SELECT storage_id, vault_id, cursor, last_sync_at
		FROM sync_cursors
		WHERE storage_id = ? AND vault_id = ?;`

	upsertCursor = `
		INSERT INTO sync_cursors (storage_id, vault_id, cursor, last_sync_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(storage_id, vault_id) DO UPDATE SET
			cursor       = excluded.cursor,
			last_sync_at = excluded.last_sync_at;`

	deleteCursorsByStorage = `
		DELETE FROM sync_cursors
		WHERE storage_id = ?;`
)
