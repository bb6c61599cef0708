package app

import (
	"context"
	"sync"

	"quizhub-service/internal/domain"
)

// LeaderboardService maintains one best-score record per participant and
// broadcasts the full board to subscribers after every accepted submission.
type LeaderboardService struct {
	ledger LeaderboardRepository

	mu          sync.Mutex
	subscribers map[chan []domain.LeaderboardEntry]struct{}
}

func NewLeaderboardService(ledger LeaderboardRepository) *LeaderboardService {
	return &LeaderboardService{
		ledger:      ledger,
		subscribers: make(map[chan []domain.LeaderboardEntry]struct{}),
	}
}

// SubmitScore upserts the participant's entry. A repeat submission overwrites
// the stored score unconditionally, even when the new score is lower; "best"
// here means "most recent", which matches the documented contract. A score of
// exactly 0 is rejected as missing.
func (s *LeaderboardService) SubmitScore(ctx context.Context, name string, score int) (domain.SubmitOutcome, error) {
	if name == "" || score == 0 {
		return 0, domain.ErrMissingField
	}

	created, err := s.ledger.Upsert(ctx, domain.LeaderboardEntry{
		ParticipantName: name,
		BestScore:       score,
	})
	if err != nil {
		return 0, err
	}

	s.broadcast(ctx)

	if created {
		return domain.OutcomeCreated, nil
	}
	return domain.OutcomeUpdated, nil
}

// ListLeaderboard returns every entry in storage-native order. Callers must
// not assume any ranking.
func (s *LeaderboardService) ListLeaderboard(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	return s.ledger.List(ctx)
}

// Subscribe returns a channel fed with leaderboard snapshots after each
// accepted submission. The caller must invoke cancel to avoid leaks.
func (s *LeaderboardService) Subscribe(ctx context.Context) (<-chan []domain.LeaderboardEntry, func(), error) {
	initial, err := s.ledger.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	ch := make(chan []domain.LeaderboardEntry, 8)
	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()

	ch <- initial

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel, nil
}

func (s *LeaderboardService) broadcast(ctx context.Context) {
	s.mu.Lock()
	if len(s.subscribers) == 0 {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	snapshot, err := s.ledger.List(ctx)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.subscribers {
		select {
		case ch <- snapshot:
		default:
			// Drop the stale update so a slow client cannot block the rest.
			select {
			case <-ch:
			default:
			}
			ch <- snapshot
		}
	}
}
