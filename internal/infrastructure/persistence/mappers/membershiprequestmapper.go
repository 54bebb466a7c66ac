package mappers

import (
	"clubgate/internal/domain/access"
	"clubgate/internal/infrastructure/persistence/models"
)

type MembershipRequestMapper struct{}

func NewMembershipRequestMapper() MembershipRequestMapper {
	return MembershipRequestMapper{}
}

func (m MembershipRequestMapper) ToModel(entity *access.MembershipRequest) *models.MembershipRequestModel {
	return &models.MembershipRequestModel{
		ID:        entity.ID(),
		Email:     entity.Email(),
		Phone:     entity.Phone(),
		Status:    entity.Status(),
		Note:      entity.Note(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m MembershipRequestMapper) ToDomain(model *models.MembershipRequestModel) *access.MembershipRequest {
	if model == nil {
		return nil
	}

	return access.ReconstructMembershipRequest(
		model.ID,
		model.Email,
		model.Phone,
		model.Status,
		model.Note,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
