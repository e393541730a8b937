// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 constXife

package crypto

import (
	"bytes"
	"errors"
	"testing"

	"github.com/constXife/zann-sub000/models"
)

func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	kc := NewKeyChain()

	s1, err := kc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}
	s2, err := kc.GenerateSalt()
	if err != nil {
		t.Fatalf("GenerateSalt error: %v", err)
	}

	if len(s1) != 16 {
		t.Fatalf("salt length = %d, want 16", len(s1))
	}
	if bytes.Equal(s1, s2) {
		t.Fatalf("expected salts to differ, but they are equal")
	}
}

func TestGenerateDEK_LengthAndRandomness(t *testing.T) {
	kc := NewKeyChain()

	d1, err := kc.GenerateDEK()
	if err != nil {
		t.Fatalf("GenerateDEK error: %v", err)
	}
	d2, err := kc.GenerateDEK()
	if err != nil {
		t.Fatalf("GenerateDEK error: %v", err)
	}

	if len(d1) != 32 {
		t.Fatalf("DEK length = %d, want 32", len(d1))
	}
	if bytes.Equal(d1, d2) {
		t.Fatalf("expected DEKs to differ, but they are equal")
	}
}

func TestUnlock_RoundTrip(t *testing.T) {
	kc := NewKeyChain()

	salt := bytes.Repeat([]byte{0xAB}, 16)
	dek, err := kc.GenerateDEK()
	if err != nil {
		t.Fatalf("GenerateDEK error: %v", err)
	}

	wrapped, err := kc.WrapDEK(dek, "correct horse battery staple", salt)
	if err != nil {
		t.Fatalf("WrapDEK error: %v", err)
	}

	if kc.Unlocked() {
		t.Fatalf("keychain unlocked before Unlock")
	}
	if err = kc.Unlock("correct horse battery staple", salt, wrapped); err != nil {
		t.Fatalf("Unlock error: %v", err)
	}
	if !kc.Unlocked() {
		t.Fatalf("keychain still locked after Unlock")
	}

	kc.Lock()
	if kc.Unlocked() {
		t.Fatalf("keychain unlocked after Lock")
	}
}

func TestUnlock_WrongPassword(t *testing.T) {
	kc := NewKeyChain()

	salt := bytes.Repeat([]byte{0x01}, 16)
	dek, _ := kc.GenerateDEK()
	wrapped, err := kc.WrapDEK(dek, "right password", salt)
	if err != nil {
		t.Fatalf("WrapDEK error: %v", err)
	}

	if err = kc.Unlock("wrong password", salt, wrapped); err == nil {
		t.Fatalf("expected Unlock with wrong password to fail")
	}
	if kc.Unlocked() {
		t.Fatalf("keychain unlocked despite failed Unlock")
	}
}

func TestUnlock_TruncatedBlob(t *testing.T) {
	kc := NewKeyChain()

	if err := kc.Unlock("pw", bytes.Repeat([]byte{0x02}, 16), []byte{0x01, 0x02}); err == nil {
		t.Fatalf("expected Unlock with truncated blob to fail")
	}
}

func TestEncryptPayload_RoundTrip(t *testing.T) {
	kc := NewKeyChain()

	salt := bytes.Repeat([]byte{0x42}, 16)
	dek, _ := kc.GenerateDEK()
	wrapped, _ := kc.WrapDEK(dek, "pw", salt)
	if err := kc.Unlock("pw", salt, wrapped); err != nil {
		t.Fatalf("Unlock error: %v", err)
	}

	payload := models.Payload{
		"username": "neo",
		"password": "kn0ck-kn0ck",
		"meta":     map[string]any{"site": "example.com"},
	}

	blob, err := kc.EncryptPayload(payload)
	if err != nil {
		t.Fatalf("EncryptPayload error: %v", err)
	}

	got, err := kc.DecryptPayload(blob)
	if err != nil {
		t.Fatalf("DecryptPayload error: %v", err)
	}
	if got["username"] != "neo" || got["password"] != "kn0ck-kn0ck" {
		t.Fatalf("decrypted payload mismatch: %#v", got)
	}
}

func TestEncryptPayload_Locked(t *testing.T) {
	kc := NewKeyChain()

	if _, err := kc.EncryptPayload(models.Payload{"a": "b"}); !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
	if _, err := kc.DecryptPayload("AAAA"); !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked, got %v", err)
	}
}
