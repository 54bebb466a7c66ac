package valueobjects

import "fmt"

// VerificationMethod records which intake path produced a token.
type VerificationMethod string

const (
	// MethodUniversityEmail is the automatic path gated on an
	// institutional email address.
	MethodUniversityEmail VerificationMethod = "ac_uk_email"
	// MethodManualApproval is the committee-approved path.
	MethodManualApproval VerificationMethod = "manual_approval"
)

func NewVerificationMethod(value string) (VerificationMethod, error) {
	method := VerificationMethod(value)
	if !method.IsValid() {
		return "", fmt.Errorf("invalid verification method: %q", value)
	}
	return method, nil
}

func (m VerificationMethod) IsValid() bool {
	return m == MethodUniversityEmail || m == MethodManualApproval
}

func (m VerificationMethod) String() string {
	return string(m)
}
