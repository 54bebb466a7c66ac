package models

import (
	"time"

	"clubgate/internal/shared/constants"
)

type AccessTokenModel struct {
	ID        uint    `gorm:"primaryKey"`
	Token     string  `gorm:"size:64;not null;uniqueIndex"`
	Email     string  `gorm:"size:255;not null;index"`
	Phone     *string `gorm:"size:32"`
	Method    string  `gorm:"size:30;not null"`
	Status    string  `gorm:"size:20;not null;default:'active';index:idx_status_expires"`
	HashedIP  *string `gorm:"size:64"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"not null;index:idx_status_expires"`
	UsedAt    *time.Time
}

func (AccessTokenModel) TableName() string {
	return constants.TableAccessTokens
}
