package usecases

import (
	"strings"

	"github.com/nyaruka/phonenumbers"

	"clubgate/internal/shared/errors"
)

// ValidateUniversityEmail reports whether the address belongs to the
// institutional domain. The domain part is isolated with a strict @-split
// and compared label-wise after case-folding: "a@student.manchester.ac.uk"
// passes for suffix "ac.uk", while "a@manchester.ac.uk.evil.com" and
// "a@ac.uk.com" do not. Substring or regex matching over the whole address
// would be spoofable via crafted local parts or lookalike domains.
func ValidateUniversityEmail(email, domainSuffix string) bool {
	if email == "" || domainSuffix == "" {
		return false
	}

	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := strings.ToLower(email[at+1:])
	suffix := strings.ToLower(domainSuffix)

	if domain == suffix {
		return true
	}
	return strings.HasSuffix(domain, "."+suffix)
}

// ValidatePhone parses the phone as an international number and returns
// its E.164 form. This is a format-only check; no carrier verification.
func ValidatePhone(phone string) (string, error) {
	if phone == "" {
		return "", errors.NewValidationError("Phone number is required")
	}

	parsed, err := phonenumbers.Parse(phone, "")
	if err != nil {
		return "", errors.NewValidationError("Phone number must be in international format, e.g. +447700900123")
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return "", errors.NewValidationError("Phone number is not valid")
	}

	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}

// NormalizeEmail lowercases an address for storage and comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
