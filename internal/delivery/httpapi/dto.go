package httpapi

import (
	"time"

	"github.com/LavaJover/shvark-moderation-service/internal/domain"
)

type ModerateRequest struct {
	ActionType  string         `json:"action_type" binding:"required"`
	Reason      string         `json:"reason" binding:"required"`
	ModeratorID string         `json:"moderator_id" binding:"required"`
	UserID      string         `json:"user_id" binding:"required"`
	ExtraData   map[string]any `json:"extra_data,omitempty"`
	FinishAt    *time.Time     `json:"finish_at,omitempty"`
}

type WarnRequest struct {
	ActionType  string         `json:"action_type" binding:"required"`
	Reason      string         `json:"reason" binding:"required"`
	ModeratorID string         `json:"moderator_id" binding:"required"`
	UserID      string         `json:"user_id" binding:"required"`
	ExtraData   map[string]any `json:"extra_data,omitempty"`
	FinishAt    *time.Time     `json:"finish_at,omitempty"`
}

type ActionResponse struct {
	ID          string         `json:"id"`
	ActionType  string         `json:"action_type"`
	ModeratorID string         `json:"moderator_id"`
	UserID      string         `json:"user_id"`
	Reason      string         `json:"reason"`
	IsActive    bool           `json:"is_active"`
	ExtraData   map[string]any `json:"extra_data,omitempty"`
	FinishAt    *time.Time     `json:"finish_at,omitempty"`
	FinishIn    *float64       `json:"finish_in_seconds,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

type WarningResponse struct {
	ID          string         `json:"id"`
	ActionType  string         `json:"action_type"`
	ModeratorID string         `json:"moderator_id"`
	UserID      string         `json:"user_id"`
	Reason      string         `json:"reason"`
	IsActive    bool           `json:"is_active"`
	ExtraData   map[string]any `json:"extra_data,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func toActionResponse(action *domain.ModerationAction) ActionResponse {
	resp := ActionResponse{
		ID:          action.ID,
		ActionType:  string(action.ActionType),
		ModeratorID: action.ModeratorID,
		UserID:      action.UserID,
		Reason:      action.Reason,
		IsActive:    action.IsActive,
		ExtraData:   action.ExtraData,
		FinishAt:    action.FinishAt,
		CreatedAt:   action.CreatedAt,
	}
	if d := action.FinishIn(time.Now()); d != nil {
		seconds := d.Seconds()
		resp.FinishIn = &seconds
	}
	return resp
}

func toWarningResponse(warning *domain.ModerationWarning) WarningResponse {
	return WarningResponse{
		ID:          warning.ID,
		ActionType:  string(warning.ActionType),
		ModeratorID: warning.ModeratorID,
		UserID:      warning.UserID,
		Reason:      warning.Reason,
		IsActive:    warning.IsActive,
		ExtraData:   warning.ExtraData,
		CreatedAt:   warning.CreatedAt,
	}
}
