package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/LavaJover/shvark-moderation-service/internal/domain"
	"github.com/LavaJover/shvark-moderation-service/internal/infrastructure/postgres/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "moderation.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ActionModel{}, &models.WarningModel{}, &models.ThresholdModel{}))

	return NewStore(db)
}

func newAction(userID string, actionType domain.ActionType, finishAt *time.Time) *domain.ModerationAction {
	return &domain.ModerationAction{
		ActionType:  actionType,
		ModeratorID: "mod-1",
		UserID:      userID,
		Reason:      "spam",
		IsActive:    true,
		FinishAt:    finishAt,
	}
}

func TestActionRepositoryActiveQuery(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := store.Actions()

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	permanent := newAction("user-1", domain.ActionBanAccount, nil)
	expired := newAction("user-1", domain.ActionBanAccount, &past)
	running := newAction("user-1", domain.ActionHideMessage, &future)
	turnedOff := newAction("user-1", domain.ActionBanGame, nil)
	turnedOff.IsActive = false
	otherUser := newAction("user-2", domain.ActionBanAccount, nil)

	for _, action := range []*domain.ModerationAction{permanent, expired, running, turnedOff, otherUser} {
		require.NoError(t, repo.CreateAction(ctx, action))
	}

	active, err := repo.GetActiveActions(ctx, "user-1", domain.ActionFilter{})
	require.NoError(t, err)
	require.Len(t, active, 2)

	// the query-side predicate must agree with the in-memory one
	now := time.Now()
	for _, action := range active {
		require.True(t, action.Active(now))
	}
	require.False(t, expired.Active(now))
	require.False(t, turnedOff.Active(now))

	banType := domain.ActionBanAccount
	banOnly, err := repo.GetActiveActions(ctx, "user-1", domain.ActionFilter{ActionType: &banType})
	require.NoError(t, err)
	require.Len(t, banOnly, 1)
	require.Equal(t, permanent.ID, banOnly[0].ID)
}

func TestActionRepositoryQueryOrderIsStable(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := store.Actions()

	base := time.Now().Add(-time.Minute)
	var ids []string
	for i := 0; i < 3; i++ {
		action := newAction("user-1", domain.ActionBanAccount, nil)
		action.CreatedAt = base.Add(time.Duration(i) * time.Second)
		require.NoError(t, repo.CreateAction(ctx, action))
		ids = append(ids, action.ID)
	}

	active, err := repo.GetActiveActions(ctx, "user-1", domain.ActionFilter{})
	require.NoError(t, err)
	require.Len(t, active, 3)
	for i, action := range active {
		require.Equal(t, ids[i], action.ID)
	}
}

func TestUpdateActionStatus(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := store.Actions()

	action := newAction("user-1", domain.ActionBanAccount, nil)
	require.NoError(t, repo.CreateAction(ctx, action))

	require.NoError(t, repo.UpdateActionStatus(ctx, action.ID, false))
	// deactivation is idempotent
	require.NoError(t, repo.UpdateActionStatus(ctx, action.ID, false))

	got, err := repo.GetActionByID(ctx, action.ID)
	require.NoError(t, err)
	require.False(t, got.IsActive)

	require.NoError(t, repo.UpdateActionStatus(ctx, action.ID, true))
	got, err = repo.GetActionByID(ctx, action.ID)
	require.NoError(t, err)
	require.True(t, got.IsActive)

	err = repo.UpdateActionStatus(ctx, "missing", false)
	require.ErrorIs(t, err, domain.ErrActionNotFound)
}

func TestGetActionByIDNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Actions().GetActionByID(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrActionNotFound)
}

func TestThresholdRepository(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := store.Thresholds()

	_, err := repo.GetThreshold(ctx, domain.ActionBanGame)
	require.ErrorIs(t, err, domain.ErrThresholdNotConfigured)

	require.NoError(t, repo.SetThreshold(ctx, domain.ActionBanGame, 3))
	threshold, err := repo.GetThreshold(ctx, domain.ActionBanGame)
	require.NoError(t, err)
	require.Equal(t, 3, threshold.Value)
	require.Equal(t, domain.ActionBanGame, threshold.ActionType)

	// upsert keeps one row per action type
	require.NoError(t, repo.SetThreshold(ctx, domain.ActionBanGame, 5))
	threshold, err = repo.GetThreshold(ctx, domain.ActionBanGame)
	require.NoError(t, err)
	require.Equal(t, 5, threshold.Value)
}

func TestCountActiveWarnings(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := store.Warnings()

	warnings := []*domain.ModerationWarning{
		{ID: "w1", ActionType: domain.ActionBanAccount, ModeratorID: "mod-1", UserID: "user-1", Reason: "spam", IsActive: true},
		{ID: "w2", ActionType: domain.ActionBanAccount, ModeratorID: "mod-1", UserID: "user-1", Reason: "spam", IsActive: true},
		{ID: "w3", ActionType: domain.ActionHideMessage, ModeratorID: "mod-1", UserID: "user-1", Reason: "flood", IsActive: true},
		{ID: "w4", ActionType: domain.ActionBanAccount, ModeratorID: "mod-1", UserID: "user-2", Reason: "spam", IsActive: true},
		{ID: "w5", ActionType: domain.ActionBanAccount, ModeratorID: "mod-1", UserID: "user-1", Reason: "spam", IsActive: false},
	}
	for _, warning := range warnings {
		require.NoError(t, repo.CreateWarning(ctx, warning))
	}

	count, err := repo.CountActiveWarnings(ctx, "user-1", domain.ActionBanAccount)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	count, err = repo.CountActiveWarnings(ctx, "user-1", domain.ActionHideMessage)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	count, err = repo.CountActiveWarnings(ctx, "user-2", domain.ActionHideMessage)
	require.NoError(t, err)
	require.Equal(t, int64(0), count)
}

func TestTransactionRollsBackStagedWrites(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	err := store.Transaction(ctx, func(tx domain.Store) error {
		warning := &domain.ModerationWarning{ID: "w1", ActionType: domain.ActionBanAccount, ModeratorID: "mod-1", UserID: "user-1", Reason: "spam", IsActive: true}
		if err := tx.Warnings().CreateWarning(ctx, warning); err != nil {
			return err
		}
		action := newAction("user-1", domain.ActionBanAccount, nil)
		if err := tx.Actions().CreateAction(ctx, action); err != nil {
			return err
		}
		return domain.ErrDeliveryFailed
	})
	require.ErrorIs(t, err, domain.ErrDeliveryFailed)

	count, err := store.Warnings().CountActiveWarnings(ctx, "user-1", domain.ActionBanAccount)
	require.NoError(t, err)
	require.Equal(t, int64(0), count)

	actions, err := store.Actions().GetActiveActions(ctx, "user-1", domain.ActionFilter{})
	require.NoError(t, err)
	require.Empty(t, actions)
}
