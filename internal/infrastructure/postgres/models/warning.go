package models

import (
	"time"

	"gorm.io/datatypes"
)

type WarningModel struct {
	ID          string `gorm:"primaryKey"`
	ActionType  string `gorm:"index:idx_warning_user_type;not null"`
	ModeratorID string `gorm:"not null"`
	UserID      string `gorm:"index:idx_warning_user_type;not null"`
	Reason      string `gorm:"size:512;not null"`
	IsActive    bool   `gorm:"not null"`
	ExtraData   datatypes.JSONMap
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (WarningModel) TableName() string {
	return "moderation_warnings"
}
