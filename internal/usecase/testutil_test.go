package usecase

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/LavaJover/shvark-moderation-service/internal/domain"
	"github.com/LavaJover/shvark-moderation-service/internal/infrastructure/postgres/models"
	"github.com/LavaJover/shvark-moderation-service/internal/infrastructure/postgres/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeResolver struct {
	users map[string]*domain.RemoteUser
}

func newFakeResolver(userIDs ...string) *fakeResolver {
	users := make(map[string]*domain.RemoteUser, len(userIDs))
	for _, userID := range userIDs {
		users[userID] = &domain.RemoteUser{
			ID:       userID,
			Email:    userID + "@example.com",
			Username: userID,
		}
	}
	return &fakeResolver{users: users}
}

func (r *fakeResolver) ResolveUser(_ context.Context, userID string) (*domain.RemoteUser, error) {
	user, ok := r.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

type sentEmail struct {
	UserID  string
	Subject string
	Message string
	From    string
}

type sentMessage struct {
	UserID  string
	Message string
}

type fakeNotifier struct {
	emails   []sentEmail
	messages []sentMessage

	failEmail   error
	failMessage error
}

func (n *fakeNotifier) SendEmail(_ context.Context, user *domain.RemoteUser, subject, message, fromEmail string) error {
	if n.failEmail != nil {
		return n.failEmail
	}
	n.emails = append(n.emails, sentEmail{UserID: user.ID, Subject: subject, Message: message, From: fromEmail})
	return nil
}

func (n *fakeNotifier) SendMessage(_ context.Context, user *domain.RemoteUser, message string) error {
	if n.failMessage != nil {
		return n.failMessage
	}
	n.messages = append(n.messages, sentMessage{UserID: user.ID, Message: message})
	return nil
}

func (n *fakeNotifier) emailsWithSubject(subject string) []sentEmail {
	var matched []sentEmail
	for _, email := range n.emails {
		if email.Subject == subject {
			matched = append(matched, email)
		}
	}
	return matched
}

type testEnv struct {
	store          *repository.Store
	resolver       *fakeResolver
	notifier       *fakeNotifier
	actionUsecase  *DefaultActionUsecase
	warningUsecase *DefaultWarningUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "moderation.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ActionModel{}, &models.WarningModel{}, &models.ThresholdModel{}))

	store := repository.NewStore(db)
	resolver := newFakeResolver("mod-1", "user-1", "user-2")
	notifier := &fakeNotifier{}

	actionUsecase := NewDefaultActionUsecase(store, resolver, notifier, nil, nil, "noreply@shvark.io")
	warningUsecase := NewDefaultWarningUsecase(store, resolver, notifier, actionUsecase, nil, nil, "noreply@shvark.io")

	return &testEnv{
		store:          store,
		resolver:       resolver,
		notifier:       notifier,
		actionUsecase:  actionUsecase,
		warningUsecase: warningUsecase,
	}
}

func (env *testEnv) setThreshold(t *testing.T, actionType domain.ActionType, value int) {
	t.Helper()
	require.NoError(t, env.store.Thresholds().SetThreshold(context.Background(), actionType, value))
}

func (env *testEnv) warn(actionType domain.ActionType, reason, userID string) error {
	return env.warningUsecase.Warn(context.Background(), &domain.WarnInput{
		ActionType:  actionType,
		Reason:      reason,
		ModeratorID: "mod-1",
		UserID:      userID,
	})
}

func (env *testEnv) activeWarningsCount(t *testing.T, userID string, actionType domain.ActionType) int64 {
	t.Helper()
	count, err := env.store.Warnings().CountActiveWarnings(context.Background(), userID, actionType)
	require.NoError(t, err)
	return count
}

func (env *testEnv) activeActions(t *testing.T, userID string) []*domain.ModerationAction {
	t.Helper()
	actions, err := env.actionUsecase.GetActiveActions(context.Background(), userID, domain.ActionFilter{})
	require.NoError(t, err)
	return actions
}
