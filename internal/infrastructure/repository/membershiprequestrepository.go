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
	"clubgate/internal/shared/errors"
)

type MembershipRequestRepository struct {
	db     *gorm.DB
	mapper mappers.MembershipRequestMapper
}

func NewMembershipRequestRepository(db *gorm.DB) access.MembershipRequestRepository {
	return &MembershipRequestRepository{
		db:     db,
		mapper: mappers.NewMembershipRequestMapper(),
	}
}

func (r *MembershipRequestRepository) Create(ctx context.Context, request *access.MembershipRequest) error {
	model := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create membership request: %w", err)
	}
	return nil
}

func (r *MembershipRequestRepository) GetByID(ctx context.Context, id uint) (*access.MembershipRequest, error) {
	var model models.MembershipRequestModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("membership request not found")
		}
		return nil, fmt.Errorf("failed to get membership request: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *MembershipRequestRepository) Update(ctx context.Context, request *access.MembershipRequest) error {
	model := r.mapper.ToModel(request)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update membership request: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("membership request not found")
	}
	return nil
}

func (r *MembershipRequestRepository) ExistsOpenByPhone(ctx context.Context, phone, excludeEmail string, since time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.MembershipRequestModel{}).
		Where("phone = ? AND status IN ? AND created_at >= ? AND LOWER(email) <> ?",
			phone,
			[]string{constants.RequestStatusPending, constants.RequestStatusApproved},
			since,
			strings.ToLower(excludeEmail)).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to count membership requests by phone: %w", err)
	}
	return count > 0, nil
}

func (r *MembershipRequestRepository) ExistsOpenByEmail(ctx context.Context, email string, since time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.MembershipRequestModel{}).
		Where("LOWER(email) = ? AND status IN ? AND created_at >= ?",
			strings.ToLower(email),
			[]string{constants.RequestStatusPending, constants.RequestStatusApproved},
			since).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to count membership requests by email: %w", err)
	}
	return count > 0, nil
}
