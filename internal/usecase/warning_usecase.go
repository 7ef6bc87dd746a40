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

type DefaultWarningUsecase struct {
	store          domain.Store
	resolver       domain.UserResolver
	notifier       domain.Notifier
	actionUsecase  domain.ActionUsecase
	kafkaPublisher *publisher.KafkaPublisher
	metrics        *metrics.ModerationMetrics
	fromEmail      string
}

func NewDefaultWarningUsecase(
	store domain.Store,
	resolver domain.UserResolver,
	notifier domain.Notifier,
	actionUsecase domain.ActionUsecase,
	kafkaPublisher *publisher.KafkaPublisher,
	moderationMetrics *metrics.ModerationMetrics,
	fromEmail string,
) *DefaultWarningUsecase {
	return &DefaultWarningUsecase{
		store:          store,
		resolver:       resolver,
		notifier:       notifier,
		actionUsecase:  actionUsecase,
		kafkaPublisher: kafkaPublisher,
		metrics:        moderationMetrics,
		fromEmail:      fromEmail,
	}
}

// Warn issues a warning and escalates it into a full action once the active
// warning count for (user, action type) reaches the configured threshold.
// The count is taken after staging the new warning, so the Nth warning
// itself escalates at N = threshold. Warning, action and notifications
// commit as one transaction: any failure leaves no partial state.
//
// Two concurrent warns for the same user and type can both observe a
// below-threshold count under read-committed isolation and under-escalate;
// resolving that is left to the store's isolation level.
func (uc *DefaultWarningUsecase) Warn(ctx context.Context, input *domain.WarnInput) error {
	if err := validateInput(input.ActionType, input.Reason); err != nil {
		return err
	}
	if _, err := uc.resolver.ResolveUser(ctx, input.ModeratorID); err != nil {
		return fmt.Errorf("failed to resolve moderator %s: %w", input.ModeratorID, err)
	}
	user, err := uc.resolver.ResolveUser(ctx, input.UserID)
	if err != nil {
		return fmt.Errorf("failed to resolve user %s: %w", input.UserID, err)
	}

	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return err
	}

	start := time.Now()
	escalated := false
	warning := &domain.ModerationWarning{
		ID:          idGenerator(),
		ActionType:  input.ActionType,
		ModeratorID: input.ModeratorID,
		UserID:      input.UserID,
		Reason:      input.Reason,
		IsActive:    true,
		ExtraData:   input.ExtraData,
	}

	err = uc.store.Transaction(ctx, func(tx domain.Store) error {
		if err := tx.Warnings().CreateWarning(ctx, warning); err != nil {
			return err
		}

		// includes the warning staged above
		warnsCount, err := tx.Warnings().CountActiveWarnings(ctx, input.UserID, input.ActionType)
		if err != nil {
			return err
		}

		threshold, err := tx.Thresholds().GetThreshold(ctx, input.ActionType)
		if err != nil {
			return err
		}

		if warnsCount >= int64(threshold.Value) {
			escalated = true
			_, err := uc.actionUsecase.Enforce(ctx, tx, &domain.ModerateInput{
				ActionType:  input.ActionType,
				Reason:      input.Reason,
				ModeratorID: input.ModeratorID,
				UserID:      input.UserID,
				ExtraData:   input.ExtraData,
				FinishAt:    input.FinishAt,
			}, user)
			return err
		}

		if err := uc.notifier.SendEmail(ctx, user, subjectWarned, input.Reason, uc.fromEmail); err != nil {
			return err
		}
		return uc.notifier.SendMessage(ctx, user, input.Reason)
	})
	if err != nil {
		return err
	}

	uc.observeWarn(input.ActionType, escalated, time.Since(start))
	uc.publishWarnEvent(warning, escalated)

	return nil
}

func (uc *DefaultWarningUsecase) GetActiveWarnings(ctx context.Context, userID string, filter domain.ActionFilter) ([]*domain.ModerationWarning, error) {
	return uc.store.Warnings().GetActiveWarnings(ctx, userID, filter)
}

func (uc *DefaultWarningUsecase) observeWarn(actionType domain.ActionType, escalated bool, elapsed time.Duration) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.WarningsIssuedTotal.WithLabelValues(string(actionType)).Inc()
	escalatedLabel := "false"
	if escalated {
		escalatedLabel = "true"
		uc.metrics.EscalationsTotal.WithLabelValues(string(actionType)).Inc()
		uc.metrics.ActionsCreatedTotal.WithLabelValues(string(actionType), "escalation").Inc()
	}
	uc.metrics.WarnDuration.WithLabelValues(string(actionType), escalatedLabel).Observe(elapsed.Seconds())
}

func (uc *DefaultWarningUsecase) publishWarnEvent(warning *domain.ModerationWarning, escalated bool) {
	if uc.kafkaPublisher == nil {
		return
	}
	kind := "warning_issued"
	if escalated {
		kind = "escalation"
	}
	event := publisher.ModerationEvent{
		EventID:     warning.ID,
		ActionType:  string(warning.ActionType),
		ModeratorID: warning.ModeratorID,
		UserID:      warning.UserID,
		Reason:      warning.Reason,
		Kind:        kind,
	}
	go func() {
		if err := uc.kafkaPublisher.PublishModeration(event); err != nil {
			slog.Error("failed to publish kafka moderation event", "kind", kind, "error", err.Error())
		}
	}()
}
