package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"clubgate/internal/domain/access"
	vo "clubgate/internal/domain/access/valueobjects"
	"clubgate/internal/infrastructure/persistence/mappers"
	"clubgate/internal/infrastructure/persistence/models"
	"clubgate/internal/shared/biztime"
	"clubgate/internal/shared/logger"
)

type AccessTokenRepository struct {
	db     *gorm.DB
	mapper mappers.AccessTokenMapper
	logger logger.Interface
}

func NewAccessTokenRepository(db *gorm.DB, log logger.Interface) access.TokenRepository {
	return &AccessTokenRepository{
		db:     db,
		mapper: mappers.NewAccessTokenMapper(),
		logger: log,
	}
}

func (r *AccessTokenRepository) Create(ctx context.Context, token *access.AccessToken) error {
	model := r.mapper.ToModel(token)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create access token: %w", err)
	}
	return nil
}

// GetActive fetches an active token, enforcing expiry lazily: a stored
// active token past its expiry timestamp is flipped to expired here and
// reported as absent. The background sweep is only an optimization on top
// of this.
func (r *AccessTokenRepository) GetActive(ctx context.Context, token string) (*access.AccessToken, error) {
	var model models.AccessTokenModel
	err := r.db.WithContext(ctx).
		Where("token = ? AND status = ?", token, vo.StatusActive.String()).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get access token: %w", err)
	}

	if biztime.NowUTC().After(model.ExpiresAt) {
		if _, err := r.MarkExpired(ctx, token); err != nil {
			r.logger.Warnw("failed to lazily expire token", "error", err)
		}
		return nil, nil
	}

	return r.mapper.ToDomain(&model)
}

// MarkUsed is the single conditional update that guarantees at-most-one
// redemption: the status guard means only one concurrent redeemer sees a
// row affected.
func (r *AccessTokenRepository) MarkUsed(ctx context.Context, token string) (bool, error) {
	now := biztime.NowUTC()
	result := r.db.WithContext(ctx).
		Model(&models.AccessTokenModel{}).
		Where("token = ? AND status = ?", token, vo.StatusActive.String()).
		Updates(map[string]interface{}{
			"status":  vo.StatusUsed.String(),
			"used_at": now,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to mark token used: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *AccessTokenRepository) MarkExpired(ctx context.Context, token string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.AccessTokenModel{}).
		Where("token = ? AND status = ?", token, vo.StatusActive.String()).
		Update("status", vo.StatusExpired.String())
	if result.Error != nil {
		return false, fmt.Errorf("failed to mark token expired: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *AccessTokenRepository) Delete(ctx context.Context, token string) error {
	err := r.db.WithContext(ctx).
		Where("token = ?", token).
		Delete(&models.AccessTokenModel{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete access token: %w", err)
	}
	return nil
}

func (r *AccessTokenRepository) CleanupExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.AccessTokenModel{}).
		Where("status = ? AND expires_at < ?", vo.StatusActive.String(), biztime.NowUTC()).
		Update("status", vo.StatusExpired.String())
	if result.Error != nil {
		return 0, fmt.Errorf("failed to cleanup expired tokens: %w", result.Error)
	}
	return result.RowsAffected, nil
}
