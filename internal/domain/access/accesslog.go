package access

import (
	"fmt"
	"time"

	vo "clubgate/internal/domain/access/valueobjects"
)

// AccessLogEntry is the append-only record of a terminal access outcome.
// It is the system of record for duplicate-detection lookback queries and
// is never updated or deleted.
type AccessLogEntry struct {
	id        uint
	email     string
	phone     *string
	method    vo.VerificationMethod
	token     string
	outcome   string
	hashedIP  *string
	createdAt time.Time
}

func NewAccessLogEntry(
	email string,
	phone *string,
	method vo.VerificationMethod,
	token string,
	outcome string,
	hashedIP *string,
) (*AccessLogEntry, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if token == "" {
		return nil, fmt.Errorf("token is required")
	}
	if outcome == "" {
		return nil, fmt.Errorf("outcome is required")
	}
	if !method.IsValid() {
		return nil, fmt.Errorf("invalid verification method")
	}

	return &AccessLogEntry{
		email:     email,
		phone:     phone,
		method:    method,
		token:     token,
		outcome:   outcome,
		hashedIP:  hashedIP,
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructAccessLogEntry(
	id uint,
	email string,
	phone *string,
	method vo.VerificationMethod,
	token string,
	outcome string,
	hashedIP *string,
	createdAt time.Time,
) *AccessLogEntry {
	return &AccessLogEntry{
		id:        id,
		email:     email,
		phone:     phone,
		method:    method,
		token:     token,
		outcome:   outcome,
		hashedIP:  hashedIP,
		createdAt: createdAt,
	}
}

func (e *AccessLogEntry) ID() uint                      { return e.id }
func (e *AccessLogEntry) Email() string                 { return e.email }
func (e *AccessLogEntry) Phone() *string                { return e.phone }
func (e *AccessLogEntry) Method() vo.VerificationMethod { return e.method }
func (e *AccessLogEntry) Token() string                 { return e.token }
func (e *AccessLogEntry) Outcome() string               { return e.outcome }
func (e *AccessLogEntry) HashedIP() *string             { return e.hashedIP }
func (e *AccessLogEntry) CreatedAt() time.Time          { return e.createdAt }
