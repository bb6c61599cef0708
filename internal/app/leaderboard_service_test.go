package app_test

import (
	"context"
	"errors"
	"testing"

	"quizhub-service/internal/app"
	"quizhub-service/internal/domain"
	"quizhub-service/internal/infra/memory"
)

func TestSubmitScoreCreatedThenUpdated(t *testing.T) {
	ctx := context.Background()
	svc := app.NewLeaderboardService(memory.NewLeaderboardRepository())

	outcome, err := svc.SubmitScore(ctx, "alice", 80)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if outcome != domain.OutcomeCreated {
		t.Fatalf("expected created, got %v", outcome)
	}

	outcome, err = svc.SubmitScore(ctx, "alice", 80)
	if err != nil {
		t.Fatalf("repeat submit failed: %v", err)
	}
	if outcome != domain.OutcomeUpdated {
		t.Fatalf("expected updated, got %v", outcome)
	}

	entries, err := svc.ListLeaderboard(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(entries))
	}
}

func TestSubmitScoreOverwritesUnconditionally(t *testing.T) {
	// A lower score replaces a higher one; the ledger keeps the latest
	// submission, not the maximum.
	ctx := context.Background()
	svc := app.NewLeaderboardService(memory.NewLeaderboardRepository())

	if _, err := svc.SubmitScore(ctx, "alice", 80); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if _, err := svc.SubmitScore(ctx, "alice", 50); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	entries, _ := svc.ListLeaderboard(ctx)
	if len(entries) != 1 || entries[0].BestScore != 50 {
		t.Fatalf("expected stored score 50, got %+v", entries)
	}
}

func TestSubmitScoreMissingFields(t *testing.T) {
	ctx := context.Background()
	svc := app.NewLeaderboardService(memory.NewLeaderboardRepository())

	if _, err := svc.SubmitScore(ctx, "", 10); !errors.Is(err, domain.ErrMissingField) {
		t.Fatalf("expected missing field on empty name, got %v", err)
	}
	// A zero score is indistinguishable from an absent one and is rejected.
	if _, err := svc.SubmitScore(ctx, "alice", 0); !errors.Is(err, domain.ErrMissingField) {
		t.Fatalf("expected missing field on zero score, got %v", err)
	}
}

func TestSubscribeReceivesSnapshots(t *testing.T) {
	ctx := context.Background()
	svc := app.NewLeaderboardService(memory.NewLeaderboardRepository())

	ch, cancel, err := svc.Subscribe(ctx)
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	defer cancel()

	initial := <-ch
	if len(initial) != 0 {
		t.Fatalf("expected empty initial snapshot, got %+v", initial)
	}

	if _, err := svc.SubmitScore(ctx, "alice", 80); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	update := <-ch
	if len(update) != 1 || update[0].ParticipantName != "alice" || update[0].BestScore != 80 {
		t.Fatalf("unexpected snapshot: %+v", update)
	}
}

func TestSubscribeCancelStopsDelivery(t *testing.T) {
	ctx := context.Background()
	svc := app.NewLeaderboardService(memory.NewLeaderboardRepository())

	ch, cancel, err := svc.Subscribe(ctx)
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}
	<-ch
	cancel()

	if _, ok := <-ch; ok {
		t.Fatalf("expected channel closed after cancel")
	}

	// Submissions after cancel must not panic on the closed channel.
	if _, err := svc.SubmitScore(ctx, "bob", 10); err != nil {
		t.Fatalf("submit after cancel failed: %v", err)
	}
}
