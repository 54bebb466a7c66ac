package mappers

import (
	"fmt"

	"clubgate/internal/domain/access"
	vo "clubgate/internal/domain/access/valueobjects"
	"clubgate/internal/infrastructure/persistence/models"
)

type AccessTokenMapper struct{}

func NewAccessTokenMapper() AccessTokenMapper {
	return AccessTokenMapper{}
}

func (m AccessTokenMapper) ToModel(entity *access.AccessToken) *models.AccessTokenModel {
	return &models.AccessTokenModel{
		ID:        entity.ID(),
		Token:     entity.Token(),
		Email:     entity.Email(),
		Phone:     entity.Phone(),
		Method:    entity.Method().String(),
		Status:    entity.Status().String(),
		HashedIP:  entity.HashedIP(),
		CreatedAt: entity.CreatedAt(),
		ExpiresAt: entity.ExpiresAt(),
		UsedAt:    entity.UsedAt(),
	}
}

func (m AccessTokenMapper) ToDomain(model *models.AccessTokenModel) (*access.AccessToken, error) {
	if model == nil {
		return nil, nil
	}

	method, err := vo.NewVerificationMethod(model.Method)
	if err != nil {
		return nil, fmt.Errorf("failed to map verification method: %w", err)
	}

	status, err := vo.NewTokenStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to map token status: %w", err)
	}

	entity, err := access.ReconstructAccessToken(
		model.ID,
		model.Token,
		model.Email,
		model.Phone,
		method,
		status,
		model.HashedIP,
		model.CreatedAt,
		model.ExpiresAt,
		model.UsedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct access token: %w", err)
	}

	return entity, nil
}
