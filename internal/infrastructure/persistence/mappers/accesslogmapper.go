package mappers

import (
	"fmt"

	"clubgate/internal/domain/access"
	vo "clubgate/internal/domain/access/valueobjects"
	"clubgate/internal/infrastructure/persistence/models"
)

type AccessLogMapper struct{}

func NewAccessLogMapper() AccessLogMapper {
	return AccessLogMapper{}
}

func (m AccessLogMapper) ToModel(entity *access.AccessLogEntry) *models.AccessLogModel {
	return &models.AccessLogModel{
		ID:        entity.ID(),
		Email:     entity.Email(),
		Phone:     entity.Phone(),
		Method:    entity.Method().String(),
		Token:     entity.Token(),
		Outcome:   entity.Outcome(),
		HashedIP:  entity.HashedIP(),
		CreatedAt: entity.CreatedAt(),
	}
}

func (m AccessLogMapper) ToDomain(model *models.AccessLogModel) (*access.AccessLogEntry, error) {
	if model == nil {
		return nil, nil
	}

	method, err := vo.NewVerificationMethod(model.Method)
	if err != nil {
		return nil, fmt.Errorf("failed to map verification method: %w", err)
	}

	return access.ReconstructAccessLogEntry(
		model.ID,
		model.Email,
		model.Phone,
		method,
		model.Token,
		model.Outcome,
		model.HashedIP,
		model.CreatedAt,
	), nil
}
