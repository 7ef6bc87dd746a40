package domain

import (
	"context"
	"time"
)

type ModerationWarning struct {
	ID          string
	ActionType  ActionType
	ModeratorID string
	UserID      string
	Reason      string
	IsActive    bool
	ExtraData   map[string]any
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Active for warnings has no expiry component.
func (w *ModerationWarning) Active() bool {
	return w.IsActive
}

type WarningRepository interface {
	CreateWarning(ctx context.Context, warning *ModerationWarning) error
	GetActiveWarnings(ctx context.Context, userID string, filter ActionFilter) ([]*ModerationWarning, error)
	CountActiveWarnings(ctx context.Context, userID string, actionType ActionType) (int64, error)
	UpdateWarningStatus(ctx context.Context, warningID string, isActive bool) error
}

type WarningUsecase interface {
	Warn(ctx context.Context, input *WarnInput) error
	GetActiveWarnings(ctx context.Context, userID string, filter ActionFilter) ([]*ModerationWarning, error)
}

type WarnInput struct {
	ActionType  ActionType
	Reason      string
	ModeratorID string
	UserID      string
	ExtraData   map[string]any
	FinishAt    *time.Time
}
