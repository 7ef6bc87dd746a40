package repository

import (
	"context"
	"errors"
	"time"

	"github.com/LavaJover/shvark-moderation-service/internal/domain"
	"github.com/LavaJover/shvark-moderation-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-moderation-service/internal/infrastructure/postgres/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DefaultActionRepository struct {
	db *gorm.DB
}

func NewDefaultActionRepository(db *gorm.DB) *DefaultActionRepository {
	return &DefaultActionRepository{db: db}
}

func (r *DefaultActionRepository) CreateAction(ctx context.Context, action *domain.ModerationAction) error {
	if action.ID == "" {
		action.ID = uuid.New().String()
	}
	actionModel := mappers.ToGORMAction(action)
	if err := r.db.WithContext(ctx).Create(actionModel).Error; err != nil {
		return err
	}
	action.CreatedAt = actionModel.CreatedAt
	action.UpdatedAt = actionModel.UpdatedAt
	return nil
}

func (r *DefaultActionRepository) GetActionByID(ctx context.Context, actionID string) (*domain.ModerationAction, error) {
	var actionModel models.ActionModel
	if err := r.db.WithContext(ctx).Model(&models.ActionModel{}).Where("id = ?", actionID).First(&actionModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrActionNotFound
		}
		return nil, err
	}

	return mappers.ToDomainAction(&actionModel), nil
}

// GetActiveActions returns active actions for a user in insertion order.
// The query-side predicate must stay in line with ModerationAction.Active:
// is_active and (unlimited or not yet finished).
func (r *DefaultActionRepository) GetActiveActions(ctx context.Context, userID string, filter domain.ActionFilter) ([]*domain.ModerationAction, error) {
	query := r.db.WithContext(ctx).Model(&models.ActionModel{}).
		Where("user_id = ?", userID).
		Where("is_active = ?", true).
		Where("finish_at IS NULL OR finish_at > ?", time.Now())
	if filter.ActionType != nil {
		query = query.Where("action_type = ?", string(*filter.ActionType))
	}

	var actionModels []models.ActionModel
	if err := query.Order("created_at ASC").Find(&actionModels).Error; err != nil {
		return nil, err
	}
	actions := make([]*domain.ModerationAction, len(actionModels))
	for i, actionModel := range actionModels {
		actions[i] = mappers.ToDomainAction(&actionModel)
	}

	return actions, nil
}

func (r *DefaultActionRepository) UpdateActionStatus(ctx context.Context, actionID string, isActive bool) error {
	result := r.db.WithContext(ctx).Model(&models.ActionModel{}).
		Where("id = ?", actionID).
		Update("is_active", isActive)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrActionNotFound
	}
	return nil
}
