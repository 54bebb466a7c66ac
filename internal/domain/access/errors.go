package access

import "errors"

var (
	// ErrTokenNotActive is returned when a terminal token is asked to
	// transition again.
	ErrTokenNotActive = errors.New("token is not active")
	// ErrTokenExpired is returned when a redemption is attempted past the
	// expiry timestamp.
	ErrTokenExpired = errors.New("token has expired")
	// ErrRequestClosed is returned when a decided membership request is
	// approved or rejected a second time.
	ErrRequestClosed = errors.New("membership request already decided")
)
