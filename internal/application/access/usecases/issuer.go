package usecases

import (
	"context"
	"time"

	"clubgate/internal/domain/access"
	vo "clubgate/internal/domain/access/valueobjects"
	"clubgate/internal/infrastructure/email"
	"clubgate/internal/shared/errors"
	"clubgate/internal/shared/logger"
	"clubgate/internal/shared/utils"
)

// tokenIssuer creates a token record and dispatches the join link. Both
// intake paths share it. If the email cannot be sent, the token is deleted
// again so an undeliverable credential never stays redeemable.
type tokenIssuer struct {
	tokenRepo access.TokenRepository
	generator TokenGenerator
	notifier  EmailService
	ttl       time.Duration
	logger    logger.Interface
}

func (i *tokenIssuer) Issue(
	ctx context.Context,
	emailAddr string,
	phone *string,
	method vo.VerificationMethod,
	ipHash *string,
) error {
	value, err := i.generator.Generate()
	if err != nil {
		i.logger.Errorw("failed to generate token", "error", err)
		return errors.NewInternalError("Something went wrong, please try again")
	}

	tok, err := access.NewAccessToken(value, emailAddr, phone, method, ipHash, i.ttl)
	if err != nil {
		i.logger.Errorw("failed to build access token", "error", err)
		return errors.NewInternalError("Something went wrong, please try again")
	}

	if err := i.tokenRepo.Create(ctx, tok); err != nil {
		i.logger.Errorw("failed to persist access token", "error", err)
		return errors.NewInternalError("Something went wrong, please try again")
	}

	if err := i.notifier.SendAccessTokenEmail(emailAddr, value); err != nil {
		i.logger.Errorw("failed to send access email, deleting token",
			"error", err,
			"email", utils.MaskEmail(emailAddr),
			"token", utils.MaskToken(value))

		if delErr := i.tokenRepo.Delete(ctx, value); delErr != nil {
			i.logger.Errorw("compensating token delete failed", "error", delErr,
				"token", utils.MaskToken(value))
		}

		if email.IsThrottled(err) {
			return errors.NewUnavailableError("We are sending too many emails right now. Please try again in a few minutes.")
		}
		return errors.NewInternalError("We could not send your access email. Please try again.")
	}

	return nil
}
