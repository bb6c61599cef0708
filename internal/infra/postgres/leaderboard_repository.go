package postgres

import (
	"context"

	"quizhub-service/internal/domain"
	"github.com/jackc/pgx/v4/pgxpool"
)

// LeaderboardRepository stores the best-score ledger in Postgres.
type LeaderboardRepository struct {
	pool *pgxpool.Pool
}

func NewLeaderboardRepository(pool *pgxpool.Pool) *LeaderboardRepository {
	return &LeaderboardRepository{pool: pool}
}

// Upsert writes the entry atomically: the unique constraint on
// participant_name makes insert-vs-overwrite a single conditional write.
// xmax = 0 holds only for freshly inserted rows, which distinguishes
// Created from Updated without a second round trip.
func (r *LeaderboardRepository) Upsert(ctx context.Context, entry domain.LeaderboardEntry) (bool, error) {
	var created bool
	err := r.pool.QueryRow(ctx,
		`INSERT INTO leaderboard (participant_name, best_score)
		 VALUES ($1, $2)
		 ON CONFLICT (participant_name) DO UPDATE SET best_score = EXCLUDED.best_score
		 RETURNING (xmax = 0)`,
		entry.ParticipantName, entry.BestScore).Scan(&created)
	if err != nil {
		return false, storeErr(err)
	}
	return created, nil
}

func (r *LeaderboardRepository) List(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT participant_name, best_score FROM leaderboard`)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	var entries []domain.LeaderboardEntry
	for rows.Next() {
		var e domain.LeaderboardEntry
		if err := rows.Scan(&e.ParticipantName, &e.BestScore); err != nil {
			return nil, storeErr(err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return entries, nil
}
