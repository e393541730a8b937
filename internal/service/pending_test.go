// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 constXife

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/constXife/zann-sub000/internal/logger"
	"github.com/constXife/zann-sub000/internal/mock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPendingChangeCounter_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	pending := mock.NewMockPendingChangeRepository(ctrl)
	counter := NewPendingChangeCounter(pending, logger.Nop())
	storageID := uuid.New()

	assert.Zero(t, counter.Count(storageID))

	pending.EXPECT().CountPendingByStorage(gomock.Any(), storageID).Return(7, nil)
	counter.Refresh(context.Background(), storageID)
	assert.Equal(t, 7, counter.Count(storageID))
}

func TestPendingChangeCounter_RefreshFailureKeepsLastValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	pending := mock.NewMockPendingChangeRepository(ctrl)
	counter := NewPendingChangeCounter(pending, logger.Nop())
	storageID := uuid.New()

	pending.EXPECT().CountPendingByStorage(gomock.Any(), storageID).Return(3, nil)
	counter.Refresh(context.Background(), storageID)

	pending.EXPECT().
		CountPendingByStorage(gomock.Any(), storageID).
		Return(0, errors.New("database is locked"))
	counter.Refresh(context.Background(), storageID)

	assert.Equal(t, 3, counter.Count(storageID))
}
