package memory

import (
	"context"
	"sync"

	"quizhub-service/internal/domain"
)

// QuestionRepository is an in-memory implementation of app.QuestionRepository.
// Insertion order is preserved so listing is deterministic.
type QuestionRepository struct {
	mu        sync.RWMutex
	nextID    int64
	questions []domain.Question
	byText    map[string]struct{}
}

func NewQuestionRepository() *QuestionRepository {
	return &QuestionRepository{
		nextID: 1,
		byText: make(map[string]struct{}),
	}
}

func (r *QuestionRepository) Insert(_ context.Context, q domain.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byText[q.Text]; ok {
		return domain.ErrDuplicateQuestion
	}
	q.ID = r.nextID
	r.nextID++
	r.questions = append(r.questions, q)
	r.byText[q.Text] = struct{}{}
	return nil
}

// List returns a copy; callers are free to reorder it.
func (r *QuestionRepository) List(_ context.Context) ([]domain.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Question, len(r.questions))
	copy(out, r.questions)
	return out, nil
}
