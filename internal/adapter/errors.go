package adapter

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of failure kinds the remote store can report.
// The values mirror the server's wire-level error kinds so they can be
// matched structurally instead of by substring.
type ErrorKind string

const (
	KindSessionExpired     ErrorKind = "session_expired"
	KindSystemInfoFailed   ErrorKind = "system_info_failed"
	KindFingerprintChanged ErrorKind = "server_fingerprint_changed"
	KindIdentityInvalid    ErrorKind = "server_identity_invalid"
	KindClockSkew          ErrorKind = "clock_skew"
	KindVaultListFailed    ErrorKind = "vault_list_failed"
	KindVaultGetFailed     ErrorKind = "vault_get_failed"
	KindVaultKeyUpdate     ErrorKind = "vault_key_update_failed"
	KindSyncPushFailed     ErrorKind = "sync_push_failed"
	KindVaultLocked        ErrorKind = "vault_locked"
	KindStorageNotFound    ErrorKind = "storage_not_found"
	KindNotRemote          ErrorKind = "not_remote"
	KindHistoryListFailed  ErrorKind = "history_list_failed"
	KindHistoryGetFailed   ErrorKind = "history_get_failed"
	KindRemoteFailed       ErrorKind = "remote_failed"
)

// RemoteError is a structured error from the remote store or the transport
// beneath it. Kind is always one of the ErrorKind constants; Message carries
// the raw human-readable detail.
type RemoteError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Errf builds a *RemoteError with a formatted message.
func Errf(kind ErrorKind, format string, args ...any) *RemoteError {
	return &RemoteError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// AsRemoteError unwraps err into a *RemoteError if one is in the chain.
func AsRemoteError(err error) (*RemoteError, bool) {
	var re *RemoteError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}

// KindOf returns the error kind, or KindRemoteFailed for errors that did not
// originate as a structured remote error (transport failures and the like).
func KindOf(err error) ErrorKind {
	if re, ok := AsRemoteError(err); ok {
		return re.Kind
	}
	return KindRemoteFailed
}
