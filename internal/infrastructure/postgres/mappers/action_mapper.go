package mappers

import (
	"github.com/LavaJover/shvark-moderation-service/internal/domain"
	"github.com/LavaJover/shvark-moderation-service/internal/infrastructure/postgres/models"
	"gorm.io/datatypes"
)

func ToGORMAction(action *domain.ModerationAction) *models.ActionModel {
	return &models.ActionModel{
		ID:          action.ID,
		ActionType:  string(action.ActionType),
		ModeratorID: action.ModeratorID,
		UserID:      action.UserID,
		Reason:      action.Reason,
		IsActive:    action.IsActive,
		ExtraData:   datatypes.JSONMap(action.ExtraData),
		FinishAt:    action.FinishAt,
		CreatedAt:   action.CreatedAt,
		UpdatedAt:   action.UpdatedAt,
	}
}

func ToDomainAction(actionModel *models.ActionModel) *domain.ModerationAction {
	return &domain.ModerationAction{
		ID:          actionModel.ID,
		ActionType:  domain.ActionType(actionModel.ActionType),
		ModeratorID: actionModel.ModeratorID,
		UserID:      actionModel.UserID,
		Reason:      actionModel.Reason,
		IsActive:    actionModel.IsActive,
		ExtraData:   map[string]any(actionModel.ExtraData),
		FinishAt:    actionModel.FinishAt,
		CreatedAt:   actionModel.CreatedAt,
		UpdatedAt:   actionModel.UpdatedAt,
	}
}
