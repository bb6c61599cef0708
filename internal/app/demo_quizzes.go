package app

import (
	"sync"

	"quizhub-service/internal/domain"
)

// DemoQuizList owns the process-scoped scratch list served by the demo
// endpoints. It is seeded once at startup, mutated only through Add, and
// lost on restart. It is not backed by the persistent store.
type DemoQuizList struct {
	mu      sync.RWMutex
	quizzes []domain.DemoQuiz
}

// NewDemoQuizList seeds the list with the stock demo entries.
func NewDemoQuizList() *DemoQuizList {
	return &DemoQuizList{
		quizzes: []domain.DemoQuiz{
			{ID: 1, Title: "General Knowledge Quiz", Description: "Test your general knowledge with this quiz."},
			{ID: 2, Title: "Science Quiz", Description: "A quiz for science enthusiasts."},
		},
	}
}

// Add appends a quiz and returns the resulting list.
func (l *DemoQuizList) Add(quiz domain.DemoQuiz) []domain.DemoQuiz {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.quizzes = append(l.quizzes, quiz)
	return l.snapshotLocked()
}

// List returns a copy of the current list.
func (l *DemoQuizList) List() []domain.DemoQuiz {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snapshotLocked()
}

func (l *DemoQuizList) snapshotLocked() []domain.DemoQuiz {
	out := make([]domain.DemoQuiz, len(l.quizzes))
	copy(out, l.quizzes)
	return out
}
