package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidItemID    = errors.New("invalid item id")
	ErrInvalidVaultID   = errors.New("invalid vault id")
	ErrInvalidOperation = errors.New("invalid pending operation")
	ErrEmptyPayload     = errors.New("payload is required")
	ErrInvalidChecksum  = errors.New("invalid checksum")
	ErrInvalidBaseSeq   = errors.New("invalid base sequence")
)
