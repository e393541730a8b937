// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 constXife

package adapter

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"testing"
	"time"

	"github.com/constXife/zann-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedIdentity(t *testing.T, timestamp int64) models.SystemInfo {
	t.Helper()

	public, private, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	serverID := deriveServerID(public)
	signature := ed25519.Sign(private, []byte(canonicalMessage(serverID, timestamp)))

	return models.SystemInfo{
		ServerID:          serverID,
		ServerName:        "zann",
		ServerFingerprint: "fp-1",
		Identity: &models.ServerIdentity{
			PublicKey: base64.StdEncoding.EncodeToString(public),
			Signature: base64.StdEncoding.EncodeToString(signature),
			Timestamp: timestamp,
		},
	}
}

func TestVerifySystemIdentity_Valid(t *testing.T) {
	info := signedIdentity(t, time.Now().Unix())
	assert.NoError(t, verifySystemIdentity(info))
}

func TestVerifySystemIdentity_MissingIdentity(t *testing.T) {
	err := verifySystemIdentity(models.SystemInfo{ServerID: "abc"})
	assert.Equal(t, KindIdentityInvalid, KindOf(err))
}

func TestVerifySystemIdentity_ServerIDMismatch(t *testing.T) {
	info := signedIdentity(t, time.Now().Unix())
	info.ServerID = "someoneelse"

	err := verifySystemIdentity(info)
	assert.Equal(t, KindIdentityInvalid, KindOf(err))
}

func TestVerifySystemIdentity_BadSignature(t *testing.T) {
	info := signedIdentity(t, time.Now().Unix())
	// A signature produced by a different key must not verify.
	other := signedIdentity(t, time.Now().Unix())
	info.Identity.Signature = other.Identity.Signature

	err := verifySystemIdentity(info)
	assert.Equal(t, KindIdentityInvalid, KindOf(err))
}

func TestVerifySystemIdentity_ClockSkew(t *testing.T) {
	tests := []struct {
		name      string
		timestamp int64
	}{
		{"server behind", time.Now().Add(-10 * time.Minute).Unix()},
		{"server ahead", time.Now().Add(10 * time.Minute).Unix()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := verifySystemIdentity(signedIdentity(t, tt.timestamp))
			assert.Equal(t, KindClockSkew, KindOf(err))

			re, ok := AsRemoteError(err)
			require.True(t, ok)
			assert.Contains(t, re.Message, "exceeds 5m0s")
		})
	}
}

func TestVerifySystemIdentity_SkewWithinBound(t *testing.T) {
	assert.NoError(t, verifySystemIdentity(signedIdentity(t, time.Now().Add(-4*time.Minute).Unix())))
}
