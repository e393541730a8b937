package crypto

import "github.com/constXife/zann-sub000/models"

// KeyChain owns the agent's key material. The master password never leaves
// this package: callers hand it to Unlock and from then on only ask whether
// the chain is unlocked or request payload transforms.
//
// Key scheme:
//
//	Salt, DEK = GenerateSalt() + GenerateDEK()      (provisioning)
//	KEK       = Argon2id(masterPassword, Salt)      (in memory only)
//	Wrapped   = WrapDEK(DEK, KEK)                   (stored at rest)
//	Unlock    = unwrap Wrapped with derived KEK     (every session start)
type KeyChain interface {
	// GenerateSalt returns a fresh 16-byte salt. The salt is not secret and
	// is stored in the clear.
	GenerateSalt() ([]byte, error)

	// GenerateDEK returns a fresh 32-byte data-encryption key.
	GenerateDEK() ([]byte, error)

	// WrapDEK seals the DEK under a key derived from the master password so
	// it can be stored at rest.
	WrapDEK(dek []byte, masterPassword string, salt []byte) ([]byte, error)

	// Unlock derives the key-encryption key from the master password and
	// unwraps the stored DEK into memory. A wrong password surfaces as an
	// authentication failure.
	Unlock(masterPassword string, salt, wrappedDEK []byte) error

	// Lock wipes the in-memory DEK.
	Lock()

	// Unlocked reports whether the DEK is currently available.
	Unlocked() bool

	// EncryptPayload seals an item payload with the in-memory DEK. The
	// result is a base64 blob of nonce followed by ciphertext.
	EncryptPayload(payload models.Payload) (string, error)

	// DecryptPayload opens a blob produced by EncryptPayload.
	DecryptPayload(blob string) (models.Payload, error)
}
