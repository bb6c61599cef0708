package memory

import (
	"context"
	"sync"

	"quizhub-service/internal/domain"
)

// LeaderboardRepository is an in-memory implementation of
// app.LeaderboardRepository. Entries keep first-insertion order, which is the
// closest analogue of the store-native order clients must not rely on.
type LeaderboardRepository struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]domain.LeaderboardEntry
}

func NewLeaderboardRepository() *LeaderboardRepository {
	return &LeaderboardRepository{entries: make(map[string]domain.LeaderboardEntry)}
}

func (r *LeaderboardRepository) Upsert(_ context.Context, entry domain.LeaderboardEntry) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.entries[entry.ParticipantName]
	if !exists {
		r.order = append(r.order, entry.ParticipantName)
	}
	r.entries[entry.ParticipantName] = entry
	return !exists, nil
}

func (r *LeaderboardRepository) List(_ context.Context) ([]domain.LeaderboardEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.LeaderboardEntry, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.entries[name])
	}
	return out, nil
}
