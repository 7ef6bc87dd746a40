package repository

import (
	"context"

	"github.com/LavaJover/shvark-moderation-service/internal/domain"
	"github.com/LavaJover/shvark-moderation-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-moderation-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultWarningRepository struct {
	db *gorm.DB
}

func NewDefaultWarningRepository(db *gorm.DB) *DefaultWarningRepository {
	return &DefaultWarningRepository{db: db}
}

func (r *DefaultWarningRepository) CreateWarning(ctx context.Context, warning *domain.ModerationWarning) error {
	warningModel := mappers.ToGORMWarning(warning)
	if err := r.db.WithContext(ctx).Create(warningModel).Error; err != nil {
		return err
	}
	warning.CreatedAt = warningModel.CreatedAt
	warning.UpdatedAt = warningModel.UpdatedAt
	return nil
}

func (r *DefaultWarningRepository) GetActiveWarnings(ctx context.Context, userID string, filter domain.ActionFilter) ([]*domain.ModerationWarning, error) {
	query := r.db.WithContext(ctx).Model(&models.WarningModel{}).
		Where("user_id = ?", userID).
		Where("is_active = ?", true)
	if filter.ActionType != nil {
		query = query.Where("action_type = ?", string(*filter.ActionType))
	}

	var warningModels []models.WarningModel
	if err := query.Order("created_at ASC").Find(&warningModels).Error; err != nil {
		return nil, err
	}
	warnings := make([]*domain.ModerationWarning, len(warningModels))
	for i, warningModel := range warningModels {
		warnings[i] = mappers.ToDomainWarning(&warningModel)
	}

	return warnings, nil
}

func (r *DefaultWarningRepository) CountActiveWarnings(ctx context.Context, userID string, actionType domain.ActionType) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.WarningModel{}).
		Where("user_id = ?", userID).
		Where("action_type = ?", string(actionType)).
		Where("is_active = ?", true).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DefaultWarningRepository) UpdateWarningStatus(ctx context.Context, warningID string, isActive bool) error {
	return r.db.WithContext(ctx).Model(&models.WarningModel{}).
		Where("id = ?", warningID).
		Update("is_active", isActive).Error
}
