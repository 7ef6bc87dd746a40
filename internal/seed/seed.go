package seed

import (
	"context"
	"errors"

	"github.com/LavaJover/shvark-moderation-service/internal/domain"
)

// EnsureThresholds creates a threshold row for every known action type that
// has none yet. Existing rows are left untouched: the default value applies
// at creation time only, administrators tune rows afterwards.
func EnsureThresholds(ctx context.Context, store domain.Store, defaultValue int) error {
	return store.Transaction(ctx, func(tx domain.Store) error {
		for _, actionType := range domain.ActionTypes {
			_, err := tx.Thresholds().GetThreshold(ctx, actionType)
			if err == nil {
				continue
			}
			if !errors.Is(err, domain.ErrThresholdNotConfigured) {
				return err
			}
			if err := tx.Thresholds().SetThreshold(ctx, actionType, defaultValue); err != nil {
				return err
			}
		}
		return nil
	})
}
