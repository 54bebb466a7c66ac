package usecases

import (
	"context"
	"time"

	"clubgate/internal/application/access/helpers"
	"clubgate/internal/domain/access"
	vo "clubgate/internal/domain/access/valueobjects"
	"clubgate/internal/infrastructure/ratelimit"
	"clubgate/internal/shared/errors"
	"clubgate/internal/shared/logger"
	"clubgate/internal/shared/utils"
)

// RequestAccessCommand carries one submission on the automatic
// university-email path.
type RequestAccessCommand struct {
	Email          string
	Phone          string
	ChallengeToken string
	// Honeypot is the hidden form field. Humans leave it empty.
	Honeypot string
	ClientIP string
}

// RequestAccessConfig is the policy surface of the orchestrator.
type RequestAccessConfig struct {
	EmailDomain string
	TokenTTL    time.Duration
	IPPolicy    ratelimit.Policy
	PairPolicy  ratelimit.Policy
}

// RequestAccessUseCase runs the submission pipeline: honeypot, rate
// limits, input validation, bot challenge, duplicate detection, token
// creation and notification dispatch, with a compensating delete when the
// email cannot be sent. Steps gate each other strictly in that order.
type RequestAccessUseCase struct {
	issuer     tokenIssuer
	limiter    ratelimit.RateLimiter
	challenger ChallengeVerifier
	duplicates *helpers.DuplicateChecker
	hasher     IdentityHasher
	config     RequestAccessConfig
	logger     logger.Interface
}

func NewRequestAccessUseCase(
	tokenRepo access.TokenRepository,
	generator TokenGenerator,
	limiter ratelimit.RateLimiter,
	challenger ChallengeVerifier,
	duplicates *helpers.DuplicateChecker,
	notifier EmailService,
	hasher IdentityHasher,
	config RequestAccessConfig,
	log logger.Interface,
) *RequestAccessUseCase {
	return &RequestAccessUseCase{
		issuer: tokenIssuer{
			tokenRepo: tokenRepo,
			generator: generator,
			notifier:  notifier,
			ttl:       config.TokenTTL,
			logger:    log,
		},
		limiter:    limiter,
		challenger: challenger,
		duplicates: duplicates,
		hasher:     hasher,
		config:     config,
		logger:     log,
	}
}

func (uc *RequestAccessUseCase) Execute(ctx context.Context, cmd RequestAccessCommand) error {
	// Bots fill hidden fields; nothing else runs for them.
	if cmd.Honeypot != "" {
		uc.logger.Infow("honeypot triggered", "ip_hash", uc.hasher.Hash(cmd.ClientIP))
		return errors.NewBadRequestError("Unable to process this submission")
	}

	// Broad net first: per-IP, then the narrow per-identity-pair limit.
	allowed, err := uc.limiter.Allow(ctx, "ip:"+cmd.ClientIP, uc.config.IPPolicy.Limit, uc.config.IPPolicy.Window)
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

	allowed, err = uc.limiter.Allow(ctx, "pair:"+emailAddr+"|"+phone, uc.config.PairPolicy.Limit, uc.config.PairPolicy.Window)
	if err != nil {
		uc.logger.Errorw("identity rate limiter unavailable", "error", err)
		return errors.NewInternalError("Something went wrong, please try again")
	}
	if !allowed {
		return errors.NewRateLimitedError("Too many attempts for these details. Please wait 30 minutes and try again.")
	}

	if !ValidateUniversityEmail(emailAddr, uc.config.EmailDomain) {
		return errors.NewValidationError("Please use your university email address")
	}

	if !uc.challenger.Verify(ctx, cmd.ChallengeToken, cmd.ClientIP) {
		return errors.NewBadRequestError("Challenge verification failed. Please refresh the page and try again.")
	}

	if result := uc.duplicates.Check(ctx, emailAddr, &phone); result.Any() {
		uc.logger.Infow("duplicate submission rejected",
			"email", utils.MaskEmail(emailAddr),
			"email_used", result.EmailUsed,
			"phone_used", result.PhoneUsed)
		return errors.NewBadRequestError(helpers.DuplicateMessage())
	}

	ipHash := uc.hasher.Hash(cmd.ClientIP)
	if err := uc.issuer.Issue(ctx, emailAddr, &phone, vo.MethodUniversityEmail, &ipHash); err != nil {
		return err
	}

	uc.logger.Infow("access token issued",
		"email", utils.MaskEmail(emailAddr),
		"method", vo.MethodUniversityEmail.String())

	return nil
}
