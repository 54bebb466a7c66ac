package email

import (
	"errors"
	"fmt"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsThrottled(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("connection refused"), false},
		{"smtp 421", &textproto.Error{Code: 421, Msg: "service not available"}, true},
		{"smtp 450", &textproto.Error{Code: 450, Msg: "mailbox busy"}, true},
		{"smtp 452", &textproto.Error{Code: 452, Msg: "insufficient storage"}, true},
		{"smtp 550 permanent", &textproto.Error{Code: 550, Msg: "mailbox unavailable"}, false},
		{"wrapped smtp 421", fmt.Errorf("failed to send email: %w", &textproto.Error{Code: 421, Msg: "try later"}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsThrottled(tt.err))
		})
	}
}
