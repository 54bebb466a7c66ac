package access

import (
	"context"
	"time"
)

// TokenRepository owns the access-token lifecycle. All token mutation in
// the system goes through this narrow operation set.
type TokenRepository interface {
	Create(ctx context.Context, token *AccessToken) error
	// GetActive fetches an active token by its string. A stored-active
	// token past its expiry is transitioned to expired as a side effect
	// and reported as absent (nil, nil).
	GetActive(ctx context.Context, token string) (*AccessToken, error)
	// MarkUsed performs the conditional active->used transition. It
	// returns false when the token was not active anymore, which is how
	// the loser of a concurrent redemption race finds out.
	MarkUsed(ctx context.Context, token string) (bool, error)
	MarkExpired(ctx context.Context, token string) (bool, error)
	// Delete hard-deletes a token. Used only as the compensating action
	// when the paired notification fails after creation.
	Delete(ctx context.Context, token string) error
	// CleanupExpired bulk-transitions overdue active tokens to expired
	// and returns the number affected. Idempotent and safe to run
	// concurrently.
	CleanupExpired(ctx context.Context) (int64, error)
}

// AccessLogRepository is the append-only history of terminal outcomes.
type AccessLogRepository interface {
	Append(ctx context.Context, entry *AccessLogEntry) error
	// FindJoinByEmail returns the most recent successful-join entry for
	// the email (case-insensitive) since the given instant, or nil.
	FindJoinByEmail(ctx context.Context, email string, since time.Time) (*AccessLogEntry, error)
	// FindJoinByPhone returns the most recent successful-join entry for
	// the phone since the given instant, excluding entries whose email
	// matches excludeEmail so a returning member is not flagged.
	FindJoinByPhone(ctx context.Context, phone, excludeEmail string, since time.Time) (*AccessLogEntry, error)
}

// MembershipRequestRepository stores the manual-approval intake. Duplicate
// detection consumes it read-only; the manual path also writes to it.
type MembershipRequestRepository interface {
	Create(ctx context.Context, request *MembershipRequest) error
	GetByID(ctx context.Context, id uint) (*MembershipRequest, error)
	Update(ctx context.Context, request *MembershipRequest) error
	// ExistsOpenByPhone reports whether a pending or approved request
	// holds the phone under a different email since the given instant.
	ExistsOpenByPhone(ctx context.Context, phone, excludeEmail string, since time.Time) (bool, error)
	// ExistsOpenByEmail reports whether a pending or approved request
	// already exists for the email since the given instant.
	ExistsOpenByEmail(ctx context.Context, email string, since time.Time) (bool, error)
}
