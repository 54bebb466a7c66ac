package usecases

import (
	"context"
	"time"

	"clubgate/internal/domain/access"
	vo "clubgate/internal/domain/access/valueobjects"
	"clubgate/internal/shared/errors"
	"clubgate/internal/shared/logger"
	"clubgate/internal/shared/utils"
)

type ApproveManualRequestCommand struct {
	RequestID uint
}

// ApproveManualRequestUseCase turns a pending committee request into an
// issued token. The token is created and mailed before the request is
// flipped to approved, so a failed dispatch leaves the request pending
// and re-approvable.
type ApproveManualRequestUseCase struct {
	requests access.MembershipRequestRepository
	issuer   tokenIssuer
	logger   logger.Interface
}

func NewApproveManualRequestUseCase(
	requests access.MembershipRequestRepository,
	tokenRepo access.TokenRepository,
	generator TokenGenerator,
	notifier EmailService,
	tokenTTL time.Duration,
	log logger.Interface,
) *ApproveManualRequestUseCase {
	return &ApproveManualRequestUseCase{
		requests: requests,
		issuer: tokenIssuer{
			tokenRepo: tokenRepo,
			generator: generator,
			notifier:  notifier,
			ttl:       tokenTTL,
			logger:    log,
		},
		logger: log,
	}
}

func (uc *ApproveManualRequestUseCase) Execute(ctx context.Context, cmd ApproveManualRequestCommand) error {
	request, err := uc.requests.GetByID(ctx, cmd.RequestID)
	if err != nil {
		if errors.IsNotFound(err) {
			return err
		}
		uc.logger.Errorw("failed to load membership request", "error", err, "request_id", cmd.RequestID)
		return errors.NewInternalError("Something went wrong, please try again")
	}

	if !request.IsPending() {
		return errors.NewConflictError("Membership request has already been decided")
	}

	phone := request.Phone()
	if err := uc.issuer.Issue(ctx, request.Email(), &phone, vo.MethodManualApproval, nil); err != nil {
		return err
	}

	if err := request.Approve(); err != nil {
		return errors.NewConflictError("Membership request has already been decided")
	}
	if err := uc.requests.Update(ctx, request); err != nil {
		// The token is already out; surface the inconsistency loudly.
		uc.logger.Errorw("token issued but request status update failed",
			"error", err, "request_id", cmd.RequestID)
		return errors.NewInternalError("Something went wrong, please try again")
	}

	uc.logger.Infow("membership request approved",
		"request_id", cmd.RequestID,
		"email", utils.MaskEmail(request.Email()))

	return nil
}

type RejectManualRequestCommand struct {
	RequestID uint
}

type RejectManualRequestUseCase struct {
	requests access.MembershipRequestRepository
	logger   logger.Interface
}

func NewRejectManualRequestUseCase(requests access.MembershipRequestRepository, log logger.Interface) *RejectManualRequestUseCase {
	return &RejectManualRequestUseCase{requests: requests, logger: log}
}

func (uc *RejectManualRequestUseCase) Execute(ctx context.Context, cmd RejectManualRequestCommand) error {
	request, err := uc.requests.GetByID(ctx, cmd.RequestID)
	if err != nil {
		if errors.IsNotFound(err) {
			return err
		}
		uc.logger.Errorw("failed to load membership request", "error", err, "request_id", cmd.RequestID)
		return errors.NewInternalError("Something went wrong, please try again")
	}

	if err := request.Reject(); err != nil {
		return errors.NewConflictError("Membership request has already been decided")
	}

	if err := uc.requests.Update(ctx, request); err != nil {
		uc.logger.Errorw("failed to update membership request", "error", err, "request_id", cmd.RequestID)
		return errors.NewInternalError("Something went wrong, please try again")
	}

	uc.logger.Infow("membership request rejected", "request_id", cmd.RequestID)

	return nil
}
