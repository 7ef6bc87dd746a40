package domain

import "errors"

var (
	ErrThresholdNotConfigured = errors.New("no warning threshold configured for action type")
	ErrEmptyReason            = errors.New("reason must not be empty")
	ErrUnknownActionType      = errors.New("unknown action type")
	ErrActionNotFound         = errors.New("moderation action not found")
	ErrUserNotFound           = errors.New("user not found")
	ErrDeliveryFailed         = errors.New("notification delivery failed")
)
