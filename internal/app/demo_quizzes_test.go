package app_test

import (
	"testing"

	"quizhub-service/internal/app"
	"quizhub-service/internal/domain"
)

func TestDemoQuizListSeededAndAppendOnly(t *testing.T) {
	list := app.NewDemoQuizList()

	seeded := list.List()
	if len(seeded) != 2 {
		t.Fatalf("expected 2 seed entries, got %d", len(seeded))
	}

	after := list.Add(domain.DemoQuiz{ID: 3, Title: "History Quiz", Description: "From antiquity onwards."})
	if len(after) != 3 {
		t.Fatalf("expected 3 entries after add, got %d", len(after))
	}

	// Mutating a returned snapshot must not affect the list.
	after[0].Title = "clobbered"
	if list.List()[0].Title == "clobbered" {
		t.Fatalf("snapshot aliases internal state")
	}
}
