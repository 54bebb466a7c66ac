package usecases

import (
	"context"

	"clubgate/internal/domain/access"
	"clubgate/internal/shared/logger"
)

// CleanupExpiredUseCase bulk-expires overdue active tokens. It backs both
// the scheduled sweep and the cleanup CLI command; lazy expiry at read
// time keeps correctness even if it never runs.
type CleanupExpiredUseCase struct {
	tokenRepo access.TokenRepository
	logger    logger.Interface
}

func NewCleanupExpiredUseCase(tokenRepo access.TokenRepository, log logger.Interface) *CleanupExpiredUseCase {
	return &CleanupExpiredUseCase{tokenRepo: tokenRepo, logger: log}
}

func (uc *CleanupExpiredUseCase) Execute(ctx context.Context) (int, error) {
	count, err := uc.tokenRepo.CleanupExpired(ctx)
	if err != nil {
		uc.logger.Errorw("expired token sweep failed", "error", err)
		return 0, err
	}

	if count > 0 {
		uc.logger.Infow("expired tokens swept", "count", count)
	}

	return int(count), nil
}
