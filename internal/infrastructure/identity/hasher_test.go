package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHasher_RequiresSalt(t *testing.T) {
	_, err := NewHasher("")
	require.Error(t, err)
}

func TestHasher_StableWithinDay(t *testing.T) {
	hasher, err := NewHasher("test-salt")
	require.NoError(t, err)

	morning := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 14, 22, 30, 0, 0, time.UTC)

	assert.Equal(t, hasher.hashAt("203.0.113.7", morning), hasher.hashAt("203.0.113.7", evening))
}

func TestHasher_RotatesAcrossDays(t *testing.T) {
	hasher, err := NewHasher("test-salt")
	require.NoError(t, err)

	today := time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)
	tomorrow := time.Date(2026, 3, 15, 0, 1, 0, 0, time.UTC)

	assert.NotEqual(t, hasher.hashAt("203.0.113.7", today), hasher.hashAt("203.0.113.7", tomorrow))
}

func TestHasher_DifferentIPsDiffer(t *testing.T) {
	hasher, err := NewHasher("test-salt")
	require.NoError(t, err)

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	assert.NotEqual(t, hasher.hashAt("203.0.113.7", now), hasher.hashAt("203.0.113.8", now))
}

func TestHasher_SaltChangesOutput(t *testing.T) {
	a, err := NewHasher("salt-a")
	require.NoError(t, err)
	b, err := NewHasher("salt-b")
	require.NoError(t, err)

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	assert.NotEqual(t, a.hashAt("203.0.113.7", now), b.hashAt("203.0.113.7", now))
}

func TestHasher_OutputIsHexSHA256(t *testing.T) {
	hasher, err := NewHasher("test-salt")
	require.NoError(t, err)

	assert.Regexp(t, "^[0-9a-f]{64}$", hasher.Hash("203.0.113.7"))
}
