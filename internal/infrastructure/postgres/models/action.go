package models

import (
	"time"

	"gorm.io/datatypes"
)

type ActionModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	ActionType  string `gorm:"index:idx_action_user_type;not null"`
	ModeratorID string `gorm:"not null"`
	UserID      string `gorm:"index:idx_action_user_type;not null"`
	Reason      string `gorm:"size:512;not null"`
	IsActive    bool   `gorm:"not null"`
	ExtraData   datatypes.JSONMap
	FinishAt    *time.Time
	CreatedAt   time.Time `gorm:"index:idx_action_created_at"`
	UpdatedAt   time.Time
}

func (ActionModel) TableName() string {
	return "moderation_actions"
}
