package repository

import (
	"context"

	"github.com/LavaJover/shvark-moderation-service/internal/domain"
	"gorm.io/gorm"
)

// Store binds the moderation repositories to one *gorm.DB. Transaction
// hands the callback a Store bound to the transaction handle, so every
// repository call inside fn stages into the same transaction.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Actions() domain.ActionRepository {
	return NewDefaultActionRepository(s.db)
}

func (s *Store) Warnings() domain.WarningRepository {
	return NewDefaultWarningRepository(s.db)
}

func (s *Store) Thresholds() domain.ThresholdRepository {
	return NewDefaultThresholdRepository(s.db)
}

func (s *Store) Transaction(ctx context.Context, fn func(tx domain.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
