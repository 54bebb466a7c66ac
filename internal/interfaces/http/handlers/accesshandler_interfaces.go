package handlers

import (
	"context"

	"clubgate/internal/application/access/usecases"
)

type AccessRequester interface {
	Execute(ctx context.Context, cmd usecases.RequestAccessCommand) error
}

type ManualRequester interface {
	Execute(ctx context.Context, cmd usecases.RequestManualAccessCommand) error
}

type TokenRedeemer interface {
	Execute(ctx context.Context, cmd usecases.RedeemTokenCommand) (*usecases.RedeemTokenResult, error)
}

type RequestApprover interface {
	Execute(ctx context.Context, cmd usecases.ApproveManualRequestCommand) error
}

type RequestRejecter interface {
	Execute(ctx context.Context, cmd usecases.RejectManualRequestCommand) error
}
