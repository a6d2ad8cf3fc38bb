package utils

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
)

// TokenGenerator produces opaque session tokens from a cryptographic
// random source. Tokens are globally unique and not guessable; they carry
// no embedded claims and are only meaningful as session store keys.
type TokenGenerator struct {
	length int
}

// NewTokenGenerator constructs a TokenGenerator whose tokens are backed by
// length bytes of entropy (hex-encoded, so the string form is twice as long).
func NewTokenGenerator(length int) *TokenGenerator {
	return &TokenGenerator{length: length}
}

// Generate returns a fresh opaque token. If the system random source fails,
// it falls back to a random UUID rather than returning an error.
func (g *TokenGenerator) Generate() string {
	buf := make([]byte, g.length)
	if _, err := rand.Read(buf); err != nil {
		return uuid.NewString()
	}

	return hex.EncodeToString(buf)
}
