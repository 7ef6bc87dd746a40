package domain

import "context"

// DefaultWarningThreshold is used when creating threshold rows,
// never as a read-time fallback.
const DefaultWarningThreshold = 3

type WarningThreshold struct {
	ID         string
	ActionType ActionType
	Value      int
}

type ThresholdRepository interface {
	// GetThreshold returns ErrThresholdNotConfigured when no row
	// exists for the given action type.
	GetThreshold(ctx context.Context, actionType ActionType) (*WarningThreshold, error)
	SetThreshold(ctx context.Context, actionType ActionType, value int) error
}
