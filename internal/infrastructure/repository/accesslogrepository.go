package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"clubgate/internal/domain/access"
	"clubgate/internal/infrastructure/persistence/mappers"
	"clubgate/internal/infrastructure/persistence/models"
	"clubgate/internal/shared/constants"
)

type AccessLogRepository struct {
	db     *gorm.DB
	mapper mappers.AccessLogMapper
}

func NewAccessLogRepository(db *gorm.DB) access.AccessLogRepository {
	return &AccessLogRepository{
		db:     db,
		mapper: mappers.NewAccessLogMapper(),
	}
}

func (r *AccessLogRepository) Append(ctx context.Context, entry *access.AccessLogEntry) error {
	model := r.mapper.ToModel(entry)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to append access log entry: %w", err)
	}
	return nil
}

func (r *AccessLogRepository) FindJoinByEmail(ctx context.Context, email string, since time.Time) (*access.AccessLogEntry, error) {
	var model models.AccessLogModel
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = ? AND outcome = ? AND created_at >= ?",
			strings.ToLower(email), constants.AccessOutcomeSuccessfulJoin, since).
		Order("created_at DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query access log by email: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *AccessLogRepository) FindJoinByPhone(ctx context.Context, phone, excludeEmail string, since time.Time) (*access.AccessLogEntry, error) {
	var model models.AccessLogModel
	err := r.db.WithContext(ctx).
		Where("phone = ? AND outcome = ? AND created_at >= ? AND LOWER(email) <> ?",
			phone, constants.AccessOutcomeSuccessfulJoin, since, strings.ToLower(excludeEmail)).
		Order("created_at DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query access log by phone: %w", err)
	}
	return r.mapper.ToDomain(&model)
}
