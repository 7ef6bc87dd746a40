package domain

import "context"

// Store groups the moderation repositories over one underlying database.
// Transaction runs fn against a Store bound to a single transaction:
// fn returning an error rolls every staged write back.
type Store interface {
	Actions() ActionRepository
	Warnings() WarningRepository
	Thresholds() ThresholdRepository
	Transaction(ctx context.Context, fn func(tx Store) error) error
}
