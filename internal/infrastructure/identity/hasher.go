// Package identity derives privacy-preserving hashes of submitter network
// identity for abuse detection.
package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"clubgate/internal/shared/biztime"
)

// Hasher produces a daily hash of an IP address. The hash is stable within
// one UTC calendar day for the same IP, which is enough for same-day
// duplicate detection, while the salt and day rotation prevent long-term
// correlation or reversal to the original address.
type Hasher struct {
	salt string
}

// NewHasher creates a Hasher. An empty salt is a configuration error, not
// something to paper over with a constant.
func NewHasher(salt string) (*Hasher, error) {
	if salt == "" {
		return nil, fmt.Errorf("identity salt must not be empty")
	}
	return &Hasher{salt: salt}, nil
}

// Hash returns the daily hash of the given IP address.
func (h *Hasher) Hash(ip string) string {
	return h.hashAt(ip, biztime.NowUTC())
}

func (h *Hasher) hashAt(ip string, now time.Time) string {
	sum := sha256.Sum256([]byte(ip + h.salt + biztime.DateUTC(now)))
	return hex.EncodeToString(sum[:])
}
