package validators

import (
	"context"
	"fmt"

	"github.com/constXife/zann-sub000/models"
	"github.com/google/uuid"
)

const (
	FieldItemID    = "item_id"
	FieldVaultID   = "vault_id"
	FieldOperation = "operation"
	FieldPayload   = "payload"
	FieldChecksum  = "checksum"
	FieldBaseSeq   = "base_seq"
)

var allowedOperations = []models.PendingOperation{
	models.PendingOpPut,
	models.PendingOpUpdate,
	models.PendingOpDelete,
}

// PendingChangeValidator checks queued local mutations before they are
// uploaded. A change that fails validation is a poison pill: the server
// would reject it on every attempt, so callers drop it from the queue.
type PendingChangeValidator struct {
}

func NewPendingChangeValidator() Validator {
	return &PendingChangeValidator{}
}

func (v *PendingChangeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PendingChange:
		return v.validatePendingChange(ctx, value, fields...)
	case *models.PendingChange:
		return v.validatePendingChange(ctx, *value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *PendingChangeValidator) validatePendingChange(_ context.Context, change models.PendingChange, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItemID, FieldVaultID, FieldOperation, FieldPayload, FieldChecksum, FieldBaseSeq}
	}

	for _, field := range fields {
		switch field {
		case FieldItemID:
			if change.ItemID == uuid.Nil {
				return ErrInvalidItemID
			}
		case FieldVaultID:
			if change.VaultID == uuid.Nil {
				return ErrInvalidVaultID
			}
		case FieldOperation:
			if !isAllowedOperation(change.Operation) {
				return fmt.Errorf("%w: %d", ErrInvalidOperation, change.Operation)
			}
		case FieldPayload:
			// A deletion carries no payload; everything else must.
			if change.Operation != models.PendingOpDelete && len(change.Payload) == 0 {
				return ErrEmptyPayload
			}
		case FieldChecksum:
			if change.Operation != models.PendingOpDelete && change.Checksum == "" {
				return ErrInvalidChecksum
			}
		case FieldBaseSeq:
			if change.BaseSeq < 0 {
				return ErrInvalidBaseSeq
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func isAllowedOperation(op models.PendingOperation) bool {
	for _, allowed := range allowedOperations {
		if op == allowed {
			return true
		}
	}
	return false
}
