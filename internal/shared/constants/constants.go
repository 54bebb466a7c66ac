package constants

// Database table names.
const (
	TableAccessTokens       = "access_tokens"
	TableAccessLog          = "access_log"
	TableMembershipRequests = "membership_requests"
)

// Access log outcomes.
const (
	AccessOutcomeSuccessfulJoin = "successful_join"
)

// Membership request statuses.
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)
