package mappers

import (
	"github.com/LavaJover/shvark-moderation-service/internal/domain"
	"github.com/LavaJover/shvark-moderation-service/internal/infrastructure/postgres/models"
	"gorm.io/datatypes"
)

func ToGORMWarning(warning *domain.ModerationWarning) *models.WarningModel {
	return &models.WarningModel{
		ID:          warning.ID,
		ActionType:  string(warning.ActionType),
		ModeratorID: warning.ModeratorID,
		UserID:      warning.UserID,
		Reason:      warning.Reason,
		IsActive:    warning.IsActive,
		ExtraData:   datatypes.JSONMap(warning.ExtraData),
		CreatedAt:   warning.CreatedAt,
		UpdatedAt:   warning.UpdatedAt,
	}
}

func ToDomainWarning(warningModel *models.WarningModel) *domain.ModerationWarning {
	return &domain.ModerationWarning{
		ID:          warningModel.ID,
		ActionType:  domain.ActionType(warningModel.ActionType),
		ModeratorID: warningModel.ModeratorID,
		UserID:      warningModel.UserID,
		Reason:      warningModel.Reason,
		IsActive:    warningModel.IsActive,
		ExtraData:   map[string]any(warningModel.ExtraData),
		CreatedAt:   warningModel.CreatedAt,
		UpdatedAt:   warningModel.UpdatedAt,
	}
}

func ToDomainThreshold(thresholdModel *models.ThresholdModel) *domain.WarningThreshold {
	return &domain.WarningThreshold{
		ID:         thresholdModel.ID,
		ActionType: domain.ActionType(thresholdModel.ActionType),
		Value:      thresholdModel.Value,
	}
}
