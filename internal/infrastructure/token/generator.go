// Package token generates the opaque single-use access-token values.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// tokenBytes is the entropy of a generated token. 32 bytes (256 bits)
// makes guessing infeasible; the hex encoding is 64 characters.
const tokenBytes = 32

// Generator produces cryptographically random token strings.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate returns a fresh 64-character hex token. The only failure mode
// is the entropy source being unavailable, which callers treat as an
// internal error.
func (g *Generator) Generate() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
