package repository

import (
	"context"
	"errors"

	"github.com/LavaJover/shvark-moderation-service/internal/domain"
	"github.com/LavaJover/shvark-moderation-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-moderation-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultThresholdRepository struct {
	db *gorm.DB
}

func NewDefaultThresholdRepository(db *gorm.DB) *DefaultThresholdRepository {
	return &DefaultThresholdRepository{db: db}
}

func (r *DefaultThresholdRepository) GetThreshold(ctx context.Context, actionType domain.ActionType) (*domain.WarningThreshold, error) {
	var thresholdModel models.ThresholdModel
	err := r.db.WithContext(ctx).Model(&models.ThresholdModel{}).
		Where("action_type = ?", string(actionType)).
		First(&thresholdModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrThresholdNotConfigured
		}
		return nil, err
	}

	return mappers.ToDomainThreshold(&thresholdModel), nil
}

func (r *DefaultThresholdRepository) SetThreshold(ctx context.Context, actionType domain.ActionType, value int) error {
	thresholdModel := models.ThresholdModel{
		ID:         uuid.New().String(),
		ActionType: string(actionType),
		Value:      value,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "action_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&thresholdModel).Error
}
