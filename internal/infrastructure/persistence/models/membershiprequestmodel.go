package models

import (
	"time"

	"clubgate/internal/shared/constants"
)

type MembershipRequestModel struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"size:255;not null;index"`
	Phone     string `gorm:"size:32;not null;index"`
	Status    string `gorm:"size:20;not null;default:'pending';index"`
	Note      string `gorm:"size:1000"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (MembershipRequestModel) TableName() string {
	return constants.TableMembershipRequests
}
