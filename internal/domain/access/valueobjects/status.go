package valueobjects

import "fmt"

// TokenStatus is the lifecycle state of an access token. Transitions are
// one-directional: active -> used and active -> expired are the only legal
// moves, both terminal.
type TokenStatus string

const (
	StatusActive  TokenStatus = "active"
	StatusUsed    TokenStatus = "used"
	StatusExpired TokenStatus = "expired"
)

func NewTokenStatus(value string) (TokenStatus, error) {
	status := TokenStatus(value)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid token status: %q", value)
	}
	return status, nil
}

func (s TokenStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusUsed, StatusExpired:
		return true
	}
	return false
}

func (s TokenStatus) IsTerminal() bool {
	return s == StatusUsed || s == StatusExpired
}

func (s TokenStatus) CanTransitionTo(target TokenStatus) bool {
	return s == StatusActive && target.IsTerminal()
}

func (s TokenStatus) String() string {
	return string(s)
}
