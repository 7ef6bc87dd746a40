package domain

import "context"

// RemoteUser is an identity resolved from the sso-service. Ledger rows keep
// raw ids; resolution happens only when contact details are needed.
type RemoteUser struct {
	ID       string
	Email    string
	Username string
}

type UserResolver interface {
	ResolveUser(ctx context.Context, userID string) (*RemoteUser, error)
}

type Notifier interface {
	SendEmail(ctx context.Context, user *RemoteUser, subject, message, fromEmail string) error
	SendMessage(ctx context.Context, user *RemoteUser, message string) error
}
