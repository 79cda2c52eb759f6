package session

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"
)

// ErrSecretMismatch is the user-visible rejection for a wrong secret.
// There is no lockout and no automatic retry.
var ErrSecretMismatch = errors.New("secret does not match")

// Gate performs the shared-secret check that unlocks private messages.
// The contract is a plain unsalted comparison: SHA-256 of the submitted
// text against a preconfigured reference hash.
type Gate struct {
	referenceHash string
}

// NewGate builds a gate around a hex-encoded SHA-256 reference hash.
func NewGate(referenceHash string) Gate {
	return Gate{referenceHash: strings.ToLower(strings.TrimSpace(referenceHash))}
}

// Submit hashes the candidate secret and compares it to the reference.
func (g Gate) Submit(secret string) error {
	sum := sha256.Sum256([]byte(secret))
	candidate := hex.EncodeToString(sum[:])
	if subtle.ConstantTimeCompare([]byte(candidate), []byte(g.referenceHash)) != 1 {
		return ErrSecretMismatch
	}
	return nil
}
