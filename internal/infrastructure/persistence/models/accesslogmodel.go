package models

import (
	"time"

	"clubgate/internal/shared/constants"
)

type AccessLogModel struct {
	ID        uint    `gorm:"primaryKey"`
	Email     string  `gorm:"size:255;not null;index:idx_email_created"`
	Phone     *string `gorm:"size:32;index:idx_phone_created"`
	Method    string  `gorm:"size:30;not null"`
	Token     string  `gorm:"size:64;not null"`
	Outcome   string  `gorm:"size:30;not null"`
	HashedIP  *string `gorm:"size:64"`
	CreatedAt time.Time `gorm:"index:idx_email_created;index:idx_phone_created"`
}

func (AccessLogModel) TableName() string {
	return constants.TableAccessLog
}
