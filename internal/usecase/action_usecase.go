package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-moderation-service/internal/domain"
	publisher "github.com/LavaJover/shvark-moderation-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-moderation-service/internal/infrastructure/metrics"
	"github.com/jaevor/go-nanoid"
)

const (
	subjectModerated = "You are moderated"
	subjectWarned    = "You are warned"
)

type DefaultActionUsecase struct {
	store          domain.Store
	resolver       domain.UserResolver
	notifier       domain.Notifier
	kafkaPublisher *publisher.KafkaPublisher
	metrics        *metrics.ModerationMetrics
	fromEmail      string
}

func NewDefaultActionUsecase(
	store domain.Store,
	resolver domain.UserResolver,
	notifier domain.Notifier,
	kafkaPublisher *publisher.KafkaPublisher,
	moderationMetrics *metrics.ModerationMetrics,
	fromEmail string,
) *DefaultActionUsecase {
	return &DefaultActionUsecase{
		store:          store,
		resolver:       resolver,
		notifier:       notifier,
		kafkaPublisher: kafkaPublisher,
		metrics:        moderationMetrics,
		fromEmail:      fromEmail,
	}
}

// Moderate enforces an action directly, without a warning step. The action
// row and both notifications succeed or fail together: a delivery error
// rolls the write back.
func (uc *DefaultActionUsecase) Moderate(ctx context.Context, input *domain.ModerateInput) (*domain.ModerationAction, error) {
	if err := validateInput(input.ActionType, input.Reason); err != nil {
		return nil, err
	}
	if _, err := uc.resolver.ResolveUser(ctx, input.ModeratorID); err != nil {
		return nil, fmt.Errorf("failed to resolve moderator %s: %w", input.ModeratorID, err)
	}
	user, err := uc.resolver.ResolveUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user %s: %w", input.UserID, err)
	}

	var action *domain.ModerationAction
	err = uc.store.Transaction(ctx, func(tx domain.Store) error {
		action, err = uc.Enforce(ctx, tx, input, user)
		return err
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.ActionsCreatedTotal.WithLabelValues(string(input.ActionType), "direct").Inc()
	}
	uc.publishEvent(action, "action_created")

	return action, nil
}

func (uc *DefaultActionUsecase) Enforce(ctx context.Context, tx domain.Store, input *domain.ModerateInput, user *domain.RemoteUser) (*domain.ModerationAction, error) {
	action := &domain.ModerationAction{
		ActionType:  input.ActionType,
		ModeratorID: input.ModeratorID,
		UserID:      input.UserID,
		Reason:      input.Reason,
		IsActive:    true,
		ExtraData:   input.ExtraData,
		FinishAt:    input.FinishAt,
	}
	if err := tx.Actions().CreateAction(ctx, action); err != nil {
		return nil, err
	}

	if err := uc.notifier.SendEmail(ctx, user, subjectModerated, input.Reason, uc.fromEmail); err != nil {
		uc.countNotificationFailure("email")
		return nil, err
	}
	if err := uc.notifier.SendMessage(ctx, user, input.Reason); err != nil {
		uc.countNotificationFailure("message")
		return nil, err
	}

	return action, nil
}

func (uc *DefaultActionUsecase) DeactivateAction(ctx context.Context, actionID string) error {
	return uc.store.Actions().UpdateActionStatus(ctx, actionID, false)
}

func (uc *DefaultActionUsecase) ReactivateAction(ctx context.Context, actionID string) error {
	return uc.store.Actions().UpdateActionStatus(ctx, actionID, true)
}

func (uc *DefaultActionUsecase) GetActiveActions(ctx context.Context, userID string, filter domain.ActionFilter) ([]*domain.ModerationAction, error) {
	return uc.store.Actions().GetActiveActions(ctx, userID, filter)
}

func (uc *DefaultActionUsecase) publishEvent(action *domain.ModerationAction, kind string) {
	if uc.kafkaPublisher == nil {
		return
	}
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		slog.Error("failed to init event id generator", "error", err.Error())
		return
	}
	event := publisher.ModerationEvent{
		EventID:     idGenerator(),
		ActionID:    action.ID,
		ActionType:  string(action.ActionType),
		ModeratorID: action.ModeratorID,
		UserID:      action.UserID,
		Reason:      action.Reason,
		Kind:        kind,
	}
	if action.FinishAt != nil {
		event.FinishAt = action.FinishAt.Format(time.RFC3339)
	}
	go func() {
		if err := uc.kafkaPublisher.PublishModeration(event); err != nil {
			slog.Error("failed to publish kafka moderation event", "kind", kind, "error", err.Error())
		}
	}()
}

func (uc *DefaultActionUsecase) countNotificationFailure(channel string) {
	if uc.metrics != nil {
		uc.metrics.NotificationFailedTotal.WithLabelValues(channel).Inc()
	}
}

func validateInput(actionType domain.ActionType, reason string) error {
	if !actionType.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownActionType, string(actionType))
	}
	if reason == "" {
		return domain.ErrEmptyReason
	}
	return nil
}
