package app

import (
	"context"

	"quizhub-service/internal/domain"
)

// UserRepository abstracts credential storage (in-memory, Postgres, etc).
type UserRepository interface {
	// Insert stores a new user and returns domain.ErrDuplicateUsername when
	// the username is taken. The uniqueness check must be atomic with the
	// insert so concurrent signups cannot race.
	Insert(ctx context.Context, user domain.User) error
	Get(ctx context.Context, username string) (domain.User, error)
}

// QuestionRepository abstracts the question bank.
type QuestionRepository interface {
	// Insert stores a new question and returns domain.ErrDuplicateQuestion on
	// an exact text match with an existing record.
	Insert(ctx context.Context, q domain.Question) error
	// List returns the entire bank including storage identifiers.
	List(ctx context.Context) ([]domain.Question, error)
}

// LeaderboardRepository abstracts the best-score ledger.
type LeaderboardRepository interface {
	// Upsert inserts or unconditionally overwrites the entry for the
	// participant, reporting whether the entry was created.
	Upsert(ctx context.Context, entry domain.LeaderboardEntry) (created bool, err error)
	// List returns all entries in storage-native order.
	List(ctx context.Context) ([]domain.LeaderboardEntry, error)
}
