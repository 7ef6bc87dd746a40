package models

import "time"

type ThresholdModel struct {
	ID         string `gorm:"primaryKey"`
	ActionType string `gorm:"uniqueIndex;not null"`
	Value      int    `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (ThresholdModel) TableName() string {
	return "moderation_warning_thresholds"
}
