package usecases

import (
	"context"

	"clubgate/internal/domain/access"
	"clubgate/internal/shared/biztime"
	"clubgate/internal/shared/constants"
	"clubgate/internal/shared/errors"
	"clubgate/internal/shared/logger"
	"clubgate/internal/shared/utils"
)

type RedeemTokenCommand struct {
	Token string
}

// RedeemTokenResult is returned on a successful join.
type RedeemTokenResult struct {
	CommunityURL string
}

// RedeemTokenUseCase performs the single-use redemption. The path is total
// over arbitrary token strings: malformed, unknown, already-used and
// expired tokens all yield the same generic not-found outcome.
type RedeemTokenUseCase struct {
	tokenRepo    access.TokenRepository
	accessLog    access.AccessLogRepository
	communityURL string
	logger       logger.Interface
}

func NewRedeemTokenUseCase(
	tokenRepo access.TokenRepository,
	accessLog access.AccessLogRepository,
	communityURL string,
	log logger.Interface,
) *RedeemTokenUseCase {
	return &RedeemTokenUseCase{
		tokenRepo:    tokenRepo,
		accessLog:    accessLog,
		communityURL: communityURL,
		logger:       log,
	}
}

func (uc *RedeemTokenUseCase) Execute(ctx context.Context, cmd RedeemTokenCommand) (*RedeemTokenResult, error) {
	notFound := errors.NewNotFoundError("This link is invalid or has expired")

	if len(cmd.Token) != access.TokenLength {
		return nil, notFound
	}

	tok, err := uc.tokenRepo.GetActive(ctx, cmd.Token)
	if err != nil {
		uc.logger.Errorw("failed to look up token", "error", err, "token", utils.MaskToken(cmd.Token))
		return nil, errors.NewInternalError("Something went wrong, please try again")
	}
	if tok == nil {
		return nil, notFound
	}

	// The conditional update decides the race: whichever concurrent
	// redeemer gets zero rows affected was second.
	used, err := uc.tokenRepo.MarkUsed(ctx, cmd.Token)
	if err != nil {
		uc.logger.Errorw("failed to mark token used", "error", err, "token", utils.MaskToken(cmd.Token))
		return nil, errors.NewInternalError("Something went wrong, please try again")
	}
	if !used {
		return nil, notFound
	}

	entry, err := access.NewAccessLogEntry(
		tok.Email(),
		tok.Phone(),
		tok.Method(),
		tok.Token(),
		constants.AccessOutcomeSuccessfulJoin,
		tok.HashedIP(),
	)
	if err != nil {
		uc.logger.Errorw("failed to build access log entry", "error", err)
	} else if err := uc.accessLog.Append(ctx, entry); err != nil {
		// The join still stands; the history gap only weakens future
		// duplicate detection for this identity.
		uc.logger.Errorw("failed to append access log entry", "error", err,
			"email", utils.MaskEmail(tok.Email()))
	}

	uc.logger.Infow("token redeemed",
		"email", utils.MaskEmail(tok.Email()),
		"method", tok.Method().String(),
		"redeemed_at", biztime.NowUTC())

	return &RedeemTokenResult{CommunityURL: uc.communityURL}, nil
}
