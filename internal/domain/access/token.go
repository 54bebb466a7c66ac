package access

import (
	"fmt"
	"time"

	vo "clubgate/internal/domain/access/valueobjects"
)

// TokenLength is the hex-encoded length of an access token (256 bits).
const TokenLength = 64

// AccessToken is a single-use credential that admits one person into the
// private community channel. The token string itself is opaque: all
// semantics live here and in the repository, never inside the value.
type AccessToken struct {
	id        uint
	token     string
	email     string
	phone     *string
	method    vo.VerificationMethod
	status    vo.TokenStatus
	hashedIP  *string
	createdAt time.Time
	expiresAt time.Time
	usedAt    *time.Time
}

func NewAccessToken(
	token string,
	email string,
	phone *string,
	method vo.VerificationMethod,
	hashedIP *string,
	ttl time.Duration,
) (*AccessToken, error) {
	if len(token) != TokenLength {
		return nil, fmt.Errorf("token must be %d characters, got %d", TokenLength, len(token))
	}
	if !isHex(token) {
		return nil, fmt.Errorf("token must be hex-encoded")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if !method.IsValid() {
		return nil, fmt.Errorf("invalid verification method")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("ttl must be positive")
	}

	now := time.Now().UTC()

	return &AccessToken{
		token:     token,
		email:     email,
		phone:     phone,
		method:    method,
		status:    vo.StatusActive,
		hashedIP:  hashedIP,
		createdAt: now,
		expiresAt: now.Add(ttl),
	}, nil
}

func ReconstructAccessToken(
	id uint,
	token string,
	email string,
	phone *string,
	method vo.VerificationMethod,
	status vo.TokenStatus,
	hashedIP *string,
	createdAt time.Time,
	expiresAt time.Time,
	usedAt *time.Time,
) (*AccessToken, error) {
	if token == "" {
		return nil, fmt.Errorf("token is required")
	}
	if !method.IsValid() {
		return nil, fmt.Errorf("invalid verification method")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid token status")
	}

	return &AccessToken{
		id:        id,
		token:     token,
		email:     email,
		phone:     phone,
		method:    method,
		status:    status,
		hashedIP:  hashedIP,
		createdAt: createdAt,
		expiresAt: expiresAt,
		usedAt:    usedAt,
	}, nil
}

// IsExpired reports whether the token is past its expiry timestamp at the
// given instant, regardless of stored status.
func (t *AccessToken) IsExpired(now time.Time) bool {
	return now.After(t.expiresAt)
}

// MarkUsed transitions the token to used. Only an active, unexpired token
// may be redeemed; the repository additionally enforces this transition as
// a conditional update so concurrent redeemers cannot both succeed.
func (t *AccessToken) MarkUsed(now time.Time) error {
	if !t.status.CanTransitionTo(vo.StatusUsed) {
		return ErrTokenNotActive
	}
	if t.IsExpired(now) {
		return ErrTokenExpired
	}
	t.status = vo.StatusUsed
	usedAt := now.UTC()
	t.usedAt = &usedAt
	return nil
}

// MarkExpired transitions the token to expired.
func (t *AccessToken) MarkExpired() error {
	if !t.status.CanTransitionTo(vo.StatusExpired) {
		return ErrTokenNotActive
	}
	t.status = vo.StatusExpired
	return nil
}

func (t *AccessToken) ID() uint                      { return t.id }
func (t *AccessToken) Token() string                 { return t.token }
func (t *AccessToken) Email() string                 { return t.email }
func (t *AccessToken) Phone() *string                { return t.phone }
func (t *AccessToken) Method() vo.VerificationMethod { return t.method }
func (t *AccessToken) Status() vo.TokenStatus        { return t.status }
func (t *AccessToken) HashedIP() *string             { return t.hashedIP }
func (t *AccessToken) CreatedAt() time.Time          { return t.createdAt }
func (t *AccessToken) ExpiresAt() time.Time          { return t.expiresAt }
func (t *AccessToken) UsedAt() *time.Time            { return t.usedAt }

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
