// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 constXife

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/constXife/zann-sub000/models"
	"golang.org/x/crypto/argon2"
)

// ErrLocked is returned by payload operations while no DEK is in memory.
var ErrLocked = errors.New("keychain is locked")

// keyChain is the private implementation of [KeyChain].
type keyChain struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32

	mu  sync.RWMutex
	dek []byte
}

// NewKeyChain constructs a locked [KeyChain] with the Argon2id parameters
// recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyChain() KeyChain {
	return &keyChain{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// GenerateSalt implements [KeyChain]. It reads 16 random bytes from the OS
// CSPRNG. Returns an error if the random read fails.
func (k *keyChain) GenerateSalt() ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// GenerateDEK implements [KeyChain]. It reads 32 random bytes from the OS
// CSPRNG. Returns an error if the random read fails.
func (k *keyChain) GenerateDEK() ([]byte, error) {
	dek := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, dek); err != nil {
		return nil, err
	}
	return dek, nil
}

// deriveKEK derives a 256-bit key-encryption key from the master password
// and salt using Argon2id. The result exists only in memory and is never
// transmitted anywhere.
func (k *keyChain) deriveKEK(masterPassword string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(masterPassword),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

// WrapDEK implements [KeyChain]. It seals the DEK under the derived KEK
// using AES-256-GCM. A random 12-byte nonce is prepended to the ciphertext
// so the unlock side can locate it: blob = nonce ‖ ciphertext.
func (k *keyChain) WrapDEK(dek []byte, masterPassword string, salt []byte) ([]byte, error) {
	gcm, err := newGCM(k.deriveKEK(masterPassword, salt))
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return append(nonce, gcm.Seal(nil, nonce, dek, nil)...), nil
}

// Unlock implements [KeyChain]. An authentication-tag mismatch almost
// always means the user entered the wrong master password, producing a
// wrong KEK.
func (k *keyChain) Unlock(masterPassword string, salt, wrappedDEK []byte) error {
	gcm, err := newGCM(k.deriveKEK(masterPassword, salt))
	if err != nil {
		return err
	}

	nonceSize := gcm.NonceSize()
	if len(wrappedDEK) < nonceSize {
		return fmt.Errorf("wrapped key too short")
	}

	nonce, ciphertext := wrappedDEK[:nonceSize], wrappedDEK[nonceSize:]
	dek, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return fmt.Errorf("unlock failed: %w", err)
	}

	k.mu.Lock()
	k.dek = dek
	k.mu.Unlock()
	return nil
}

// Lock implements [KeyChain]. The DEK buffer is zeroed before release.
func (k *keyChain) Lock() {
	k.mu.Lock()
	for i := range k.dek {
		k.dek[i] = 0
	}
	k.dek = nil
	k.mu.Unlock()
}

// Unlocked implements [KeyChain].
func (k *keyChain) Unlocked() bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.dek != nil
}

// EncryptPayload implements [KeyChain]. The payload is serialized to JSON,
// then sealed with the DEK via AES-256-GCM. The output is a Base64
// (standard encoding) string of the blob: nonce (12 bytes) ‖ ciphertext.
func (k *keyChain) EncryptPayload(payload models.Payload) (string, error) {
	k.mu.RLock()
	dek := k.dek
	k.mu.RUnlock()
	if dek == nil {
		return "", ErrLocked
	}

	plaintext, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	gcm, err := newGCM(dek)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := append(nonce, gcm.Seal(nil, nonce, plaintext, nil)...)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// DecryptPayload implements [KeyChain]. It reverses EncryptPayload.
func (k *keyChain) DecryptPayload(blob string) (models.Payload, error) {
	k.mu.RLock()
	dek := k.dek
	k.mu.RUnlock()
	if dek == nil {
		return nil, ErrLocked
	}

	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}

	gcm, err := newGCM(dek)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(raw) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}

	plaintext, err := gcm.Open(nil, raw[:nonceSize], raw[nonceSize:], nil)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}

	var payload models.Payload
	if err = json.Unmarshal(plaintext, &payload); err != nil {
		return nil, fmt.Errorf("unmarshal payload: %w", err)
	}
	return payload, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
