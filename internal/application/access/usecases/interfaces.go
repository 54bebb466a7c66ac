package usecases

import "context"

// TokenGenerator produces opaque token values.
type TokenGenerator interface {
	Generate() (string, error)
}

// EmailService delivers the single-use join link.
type EmailService interface {
	SendAccessTokenEmail(to, token string) error
}

// ChallengeVerifier answers whether a submitted bot-challenge token passes.
// Anything indeterminate is reported as false.
type ChallengeVerifier interface {
	Verify(ctx context.Context, challengeToken, remoteIP string) bool
}

// IdentityHasher derives the daily privacy-preserving hash of a client IP.
type IdentityHasher interface {
	Hash(ip string) string
}
