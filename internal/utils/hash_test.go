package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum_StableAcrossKeyOrder(t *testing.T) {
	a, err := Checksum(map[string]any{"user": "neo", "password": "hunter2"})
	require.NoError(t, err)
	b, err := Checksum(map[string]any{"password": "hunter2", "user": "neo"})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestChecksum_ChangesWithContent(t *testing.T) {
	a, err := Checksum(map[string]any{"password": "hunter2"})
	require.NoError(t, err)
	b, err := Checksum(map[string]any{"password": "hunter3"})
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestChecksum_UnserializablePayload(t *testing.T) {
	_, err := Checksum(map[string]any{"ch": make(chan int)})
	assert.Error(t, err)
}
