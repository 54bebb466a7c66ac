package usecases

import (
	"context"

	"clubgate/internal/application/access/helpers"
	"clubgate/internal/domain/access"
	"clubgate/internal/infrastructure/ratelimit"
	"clubgate/internal/shared/biztime"
	"clubgate/internal/shared/errors"
	"clubgate/internal/shared/logger"
	"clubgate/internal/shared/utils"
)

// RequestManualAccessCommand carries a manual-approval intake submission.
// This path has no university-email requirement; a committee member
// reviews each request instead.
type RequestManualAccessCommand struct {
	Email          string
	Phone          string
	Note           string
	ChallengeToken string
	Honeypot       string
	ClientIP       string
}

type RequestManualAccessUseCase struct {
	requests   access.MembershipRequestRepository
	limiter    ratelimit.RateLimiter
	challenger ChallengeVerifier
	duplicates *helpers.DuplicateChecker
	ipPolicy   ratelimit.Policy
	windowDays int
	logger     logger.Interface
}

func NewRequestManualAccessUseCase(
	requests access.MembershipRequestRepository,
	limiter ratelimit.RateLimiter,
	challenger ChallengeVerifier,
	duplicates *helpers.DuplicateChecker,
	ipPolicy ratelimit.Policy,
	windowDays int,
	log logger.Interface,
) *RequestManualAccessUseCase {
	return &RequestManualAccessUseCase{
		requests:   requests,
		limiter:    limiter,
		challenger: challenger,
		duplicates: duplicates,
		ipPolicy:   ipPolicy,
		windowDays: windowDays,
		logger:     log,
	}
}

func (uc *RequestManualAccessUseCase) Execute(ctx context.Context, cmd RequestManualAccessCommand) error {
	if cmd.Honeypot != "" {
		return errors.NewBadRequestError("Unable to process this submission")
	}

	allowed, err := uc.limiter.Allow(ctx, "ip:"+cmd.ClientIP, uc.ipPolicy.Limit, uc.ipPolicy.Window)
	if err != nil {
		uc.logger.Errorw("ip rate limiter unavailable", "error", err)
		return errors.NewInternalError("Something went wrong, please try again")
	}
	if !allowed {
		return errors.NewRateLimitedError("Too many requests from your network. Please wait 15 minutes and try again.")
	}

	emailAddr := NormalizeEmail(cmd.Email)

	phone, err := ValidatePhone(cmd.Phone)
	if err != nil {
		return err
	}

	if !uc.challenger.Verify(ctx, cmd.ChallengeToken, cmd.ClientIP) {
		return errors.NewBadRequestError("Challenge verification failed. Please refresh the page and try again.")
	}

	if result := uc.duplicates.Check(ctx, emailAddr, &phone); result.Any() {
		return errors.NewBadRequestError(helpers.DuplicateMessage())
	}

	// One open request per email is enough for the committee queue.
	open, err := uc.requests.ExistsOpenByEmail(ctx, emailAddr, biztime.DaysAgoUTC(uc.windowDays))
	if err != nil {
		uc.logger.Errorw("open-request check failed, failing open", "error", err,
			"email", utils.MaskEmail(emailAddr))
	} else if open {
		return errors.NewBadRequestError(helpers.DuplicateMessage())
	}

	request, err := access.NewMembershipRequest(emailAddr, phone, cmd.Note)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.requests.Create(ctx, request); err != nil {
		uc.logger.Errorw("failed to persist membership request", "error", err)
		return errors.NewInternalError("Something went wrong, please try again")
	}

	uc.logger.Infow("membership request recorded", "email", utils.MaskEmail(emailAddr))

	return nil
}
