package adapter

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/base32"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/constXife/zann-sub000/models"
)

const (
	// maxIdentitySkew is the largest tolerated difference between the
	// server's signed timestamp and the local clock.
	maxIdentitySkew = 300 * time.Second

	signaturePrefix = "zann-id:v1"
)

var base32NoPad = base32.StdEncoding.WithPadding(base32.NoPadding)

// verifySystemIdentity checks the server's self-signed identity document:
// the server id must be derivable from the public key, the signature must
// verify, and the signed timestamp must be within maxIdentitySkew of now.
func verifySystemIdentity(info models.SystemInfo) error {
	if info.ServerID == "" || info.Identity == nil {
		return Errf(KindIdentityInvalid, "server identity missing")
	}

	publicKey, err := base64.StdEncoding.DecodeString(info.Identity.PublicKey)
	if err != nil || len(publicKey) != ed25519.PublicKeySize {
		return Errf(KindIdentityInvalid, "invalid server public key")
	}

	if derived := deriveServerID(publicKey); derived != info.ServerID {
		return Errf(KindIdentityInvalid, "server id does not match public key")
	}

	signature, err := base64.StdEncoding.DecodeString(info.Identity.Signature)
	if err != nil || len(signature) != ed25519.SignatureSize {
		return Errf(KindIdentityInvalid, "invalid server signature encoding")
	}

	message := canonicalMessage(info.ServerID, info.Identity.Timestamp)
	if !ed25519.Verify(publicKey, []byte(message), signature) {
		return Errf(KindIdentityInvalid, "server signature verification failed")
	}

	skew := time.Since(time.Unix(info.Identity.Timestamp, 0))
	if skew < 0 {
		skew = -skew
	}
	if skew > maxIdentitySkew {
		return Errf(KindClockSkew, "server clock skew %s exceeds %s", skew.Round(time.Second), maxIdentitySkew)
	}

	return nil
}

func deriveServerID(publicKey []byte) string {
	hash := sha256.Sum256(publicKey)
	return strings.ToLower(base32NoPad.EncodeToString(hash[:]))
}

func canonicalMessage(serverID string, timestamp int64) string {
	return fmt.Sprintf("%s:%s:%d", signaturePrefix, serverID, timestamp)
}
