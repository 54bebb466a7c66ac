package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUniversityEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@student.manchester.ac.uk", true},
		{"a@manchester.ac.uk", true},
		{"a@AC.UK", true},
		{"a@ac.uk", true},
		{"a@manchester.ac.uk.evil.com", false},
		{"a@ac.uk.com", false},
		{"a@acXuk", false},
		{"a@evilac.uk", false},
		{"ac.uk@gmail.com", false},
		{"a@", false},
		{"@ac.uk", false},
		{"", false},
		{"no-at-sign", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateUniversityEmail(tt.email, "ac.uk"))
		})
	}
}

func TestValidatePhone(t *testing.T) {
	normalized, err := ValidatePhone("+44 7700 900123")
	require.NoError(t, err)
	assert.Equal(t, "+447700900123", normalized)

	_, err = ValidatePhone("")
	assert.Error(t, err)

	_, err = ValidatePhone("not a number")
	assert.Error(t, err)

	_, err = ValidatePhone("07700900123")
	assert.Error(t, err, "numbers without a country prefix are rejected")

	_, err = ValidatePhone("+44123")
	assert.Error(t, err, "implausibly short numbers are rejected")
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "alice@x.ac.uk", NormalizeEmail("  Alice@X.AC.UK "))
}
