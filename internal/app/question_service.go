package app

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"quizhub-service/internal/domain"
)

// QuizSize is the fixed number of questions in an assembled quiz.
const QuizSize = 10

// QuestionInput is a question as submitted by clients, before it gains a
// storage identifier.
type QuestionInput struct {
	Text          string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// QuestionService registers questions and assembles randomized quizzes.
type QuestionService struct {
	bank QuestionRepository

	mu  sync.Mutex // guards rnd, which is not safe for concurrent use
	rnd *rand.Rand
}

func NewQuestionService(bank QuestionRepository) *QuestionService {
	return &QuestionService{
		bank: bank,
		rnd:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// RegisterQuestions stores a batch of questions one item at a time. The first
// item that fails validation or duplicates an existing question aborts the
// call; items accepted before the failure stay written. Duplicate detection is
// an exact case-sensitive match on the question text.
func (s *QuestionService) RegisterQuestions(ctx context.Context, inputs []QuestionInput) error {
	for _, in := range inputs {
		if in.Text == "" || len(in.Options) == 0 || in.CorrectAnswer == "" {
			return domain.ErrMissingField
		}
		err := s.bank.Insert(ctx, domain.Question{
			Text:          in.Text,
			Options:       in.Options,
			CorrectAnswer: in.CorrectAnswer,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// AssembleQuiz draws a uniform random sample of QuizSize questions without
// replacement and strips the storage identifiers. The bank itself is never
// mutated.
func (s *QuestionService) AssembleQuiz(ctx context.Context) ([]domain.Question, error) {
	all, err := s.bank.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) < QuizSize {
		return nil, domain.ErrInsufficientData
	}

	// Shuffle a copy; the backing store may hand the same slice to
	// concurrent callers.
	pool := make([]domain.Question, len(all))
	copy(pool, all)

	s.mu.Lock()
	s.rnd.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	s.mu.Unlock()

	quiz := make([]domain.Question, QuizSize)
	for i, q := range pool[:QuizSize] {
		q.ID = 0
		quiz[i] = q
	}
	return quiz, nil
}
