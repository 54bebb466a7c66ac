// Package helpers contains cross-repository services shared by the access
// use cases.
package helpers

import (
	"context"

	"clubgate/internal/domain/access"
	"clubgate/internal/shared/biztime"
	"clubgate/internal/shared/logger"
	"clubgate/internal/shared/utils"
)

// duplicateMessage is deliberately generic: it never confirms whether the
// email or the phone triggered the match, so a probing submitter learns
// nothing about what we hold.
const duplicateMessage = "It looks like access has already been requested or granted for these details. " +
	"If you believe this is a mistake, please contact the committee."

// DuplicateResult reports which identity fields have prior usage inside
// the lookback window.
type DuplicateResult struct {
	EmailUsed    bool
	PhoneUsed    bool
	EmailDetails string
	PhoneDetails string
}

func (r DuplicateResult) Any() bool {
	return r.EmailUsed || r.PhoneUsed
}

// DuplicateChecker decides whether an email or phone has already been used
// to gain or request access within the rolling window. Storage errors fail
// open: blocking a legitimate member on a backend blip is worse than
// letting one duplicate through, and the rate limiter still bounds abuse.
type DuplicateChecker struct {
	accessLog  access.AccessLogRepository
	requests   access.MembershipRequestRepository
	windowDays int
	logger     logger.Interface
}

func NewDuplicateChecker(
	accessLog access.AccessLogRepository,
	requests access.MembershipRequestRepository,
	windowDays int,
	log logger.Interface,
) *DuplicateChecker {
	return &DuplicateChecker{
		accessLog:  accessLog,
		requests:   requests,
		windowDays: windowDays,
		logger:     log,
	}
}

// Check looks back over the duplicate window for prior usage of the email
// and, when supplied, the phone. A phone counts as used only under a
// different email, so a returning member re-submitting their own details
// is not flagged.
func (c *DuplicateChecker) Check(ctx context.Context, email string, phone *string) DuplicateResult {
	since := biztime.DaysAgoUTC(c.windowDays)
	result := DuplicateResult{}

	entry, err := c.accessLog.FindJoinByEmail(ctx, email, since)
	if err != nil {
		c.logger.Errorw("duplicate check by email failed, failing open",
			"error", err, "email", utils.MaskEmail(email))
	} else if entry != nil {
		result.EmailUsed = true
		result.EmailDetails = "joined " + entry.CreatedAt().Format("2006-01-02")
	}

	if phone == nil || *phone == "" {
		return result
	}

	phoneEntry, err := c.accessLog.FindJoinByPhone(ctx, *phone, email, since)
	if err != nil {
		c.logger.Errorw("duplicate check by phone failed, failing open",
			"error", err, "phone", utils.MaskPhone(*phone))
	} else if phoneEntry != nil {
		result.PhoneUsed = true
		result.PhoneDetails = "joined " + phoneEntry.CreatedAt().Format("2006-01-02")
	}

	if !result.PhoneUsed {
		open, err := c.requests.ExistsOpenByPhone(ctx, *phone, email, since)
		if err != nil {
			c.logger.Errorw("duplicate check against membership requests failed, failing open",
				"error", err, "phone", utils.MaskPhone(*phone))
		} else if open {
			result.PhoneUsed = true
			result.PhoneDetails = "pending or approved request"
		}
	}

	return result
}

// DuplicateMessage returns the fixed user-facing duplicate response.
func DuplicateMessage() string {
	return duplicateMessage
}
