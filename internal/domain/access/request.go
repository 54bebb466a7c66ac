package access

import (
	"fmt"
	"time"

	"clubgate/internal/shared/constants"
)

// MembershipRequest is a manual-approval intake row. Pending and approved
// requests count toward phone duplicate detection.
type MembershipRequest struct {
	id        uint
	email     string
	phone     string
	status    string
	note      string
	createdAt time.Time
	updatedAt time.Time
}

func NewMembershipRequest(email, phone, note string) (*MembershipRequest, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if phone == "" {
		return nil, fmt.Errorf("phone is required")
	}
	if len(note) > 1000 {
		return nil, fmt.Errorf("note exceeds maximum length of 1000 characters")
	}

	now := time.Now().UTC()

	return &MembershipRequest{
		email:     email,
		phone:     phone,
		status:    constants.RequestStatusPending,
		note:      note,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructMembershipRequest(
	id uint,
	email string,
	phone string,
	status string,
	note string,
	createdAt time.Time,
	updatedAt time.Time,
) *MembershipRequest {
	return &MembershipRequest{
		id:        id,
		email:     email,
		phone:     phone,
		status:    status,
		note:      note,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Approve moves a pending request to approved. Decided requests stay decided.
func (r *MembershipRequest) Approve() error {
	if r.status != constants.RequestStatusPending {
		return ErrRequestClosed
	}
	r.status = constants.RequestStatusApproved
	r.updatedAt = time.Now().UTC()
	return nil
}

// Reject moves a pending request to rejected.
func (r *MembershipRequest) Reject() error {
	if r.status != constants.RequestStatusPending {
		return ErrRequestClosed
	}
	r.status = constants.RequestStatusRejected
	r.updatedAt = time.Now().UTC()
	return nil
}

func (r *MembershipRequest) IsPending() bool {
	return r.status == constants.RequestStatusPending
}

func (r *MembershipRequest) ID() uint             { return r.id }
func (r *MembershipRequest) Email() string        { return r.email }
func (r *MembershipRequest) Phone() string        { return r.phone }
func (r *MembershipRequest) Status() string       { return r.status }
func (r *MembershipRequest) Note() string         { return r.note }
func (r *MembershipRequest) CreatedAt() time.Time { return r.createdAt }
func (r *MembershipRequest) UpdatedAt() time.Time { return r.updatedAt }
