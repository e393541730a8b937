// Package utils provides general-purpose helper utilities used across
// different parts of the agent.
package utils

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Checksum computes a hex-encoded BLAKE2b-256 digest of the payload's JSON
// form. encoding/json sorts map keys, so the same field set always produces
// the same checksum regardless of insertion order.
func Checksum(payload map[string]any) (string, error) {
	canonical, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("serialize payload for checksum: %w", err)
	}

	digest := blake2b.Sum256(canonical)
	return hex.EncodeToString(digest[:]), nil
}
