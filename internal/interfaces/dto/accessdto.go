package dto

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"clubgate/internal/shared/errors"
)

// VerifyAccessRequest is the university-email intake payload. Website is a
// hidden honeypot field; browsers never fill it.
type VerifyAccessRequest struct {
	Email          string `json:"email" binding:"required" validate:"required,email,max=255"`
	Phone          string `json:"phone" binding:"required" validate:"required,min=7,max=32"`
	ChallengeToken string `json:"challenge_token" validate:"max=4096"`
	Website        string `json:"website" validate:"max=255"`
}

// ManualAccessRequest is the committee-review intake payload.
type ManualAccessRequest struct {
	Email          string `json:"email" binding:"required" validate:"required,email,max=255"`
	Phone          string `json:"phone" binding:"required" validate:"required,min=7,max=32"`
	Note           string `json:"note" validate:"max=1000"`
	ChallengeToken string `json:"challenge_token" validate:"max=4096"`
	Website        string `json:"website" validate:"max=255"`
}

// JoinRequest carries the token lifted out of the URL fragment by the join
// page. Shape checks live in the redemption path so every failure mode
// yields the same generic response.
type JoinRequest struct {
	Token string `json:"token" binding:"required" validate:"required"`
}

type JoinResponse struct {
	CommunityURL string `json:"community_url"`
}

// ParseRequestID extracts the :id path parameter of a membership request.
func ParseRequestID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.NewBadRequestError("Invalid request ID")
	}
	return uint(id), nil
}
