package domain

import (
	"context"
	"time"
)

type ActionType string

const (
	ActionBanAccount  ActionType = "ban_account"
	ActionHideMessage ActionType = "hide_message"
	ActionBanGame     ActionType = "ban_game"
)

// ActionTypes lists every known action type, in declaration order.
var ActionTypes = []ActionType{
	ActionBanAccount,
	ActionHideMessage,
	ActionBanGame,
}

func (t ActionType) Valid() bool {
	switch t {
	case ActionBanAccount, ActionHideMessage, ActionBanGame:
		return true
	}
	return false
}

type ModerationAction struct {
	ID          string
	ActionType  ActionType
	ModeratorID string
	UserID      string
	Reason      string
	IsActive    bool
	ExtraData   map[string]any
	FinishAt    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TimeLimited reports whether the action expires on its own.
func (a *ModerationAction) TimeLimited() bool {
	return a.FinishAt != nil
}

// Finished is false for unlimited actions: a permanent ban stays in force
// until it is explicitly turned off.
func (a *ModerationAction) Finished(now time.Time) bool {
	if !a.TimeLimited() {
		return false
	}
	return !a.FinishAt.After(now)
}

func (a *ModerationAction) Active(now time.Time) bool {
	return a.IsActive && !a.Finished(now)
}

// FinishIn returns the time left until expiry, nil for unlimited actions.
func (a *ModerationAction) FinishIn(now time.Time) *time.Duration {
	if !a.TimeLimited() {
		return nil
	}
	d := a.FinishAt.Sub(now)
	return &d
}

// ActionFilter narrows active-record queries by equality.
type ActionFilter struct {
	ActionType *ActionType
}

type ActionRepository interface {
	CreateAction(ctx context.Context, action *ModerationAction) error
	GetActionByID(ctx context.Context, actionID string) (*ModerationAction, error)
	GetActiveActions(ctx context.Context, userID string, filter ActionFilter) ([]*ModerationAction, error)
	UpdateActionStatus(ctx context.Context, actionID string, isActive bool) error
}

type ActionUsecase interface {
	Moderate(ctx context.Context, input *ModerateInput) (*ModerationAction, error)
	// Enforce stages an action into the caller's transaction and notifies
	// the user. The write commits or rolls back with the transaction.
	Enforce(ctx context.Context, tx Store, input *ModerateInput, user *RemoteUser) (*ModerationAction, error)
	DeactivateAction(ctx context.Context, actionID string) error
	ReactivateAction(ctx context.Context, actionID string) error
	GetActiveActions(ctx context.Context, userID string, filter ActionFilter) ([]*ModerationAction, error)
}

type ModerateInput struct {
	ActionType  ActionType
	Reason      string
	ModeratorID string
	UserID      string
	ExtraData   map[string]any
	FinishAt    *time.Time
}
