package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"quizhub-service/internal/domain"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

const bankKey = "questions:bank"

// QuestionBank is the backing store the cache reads through to.
type QuestionBank interface {
	Insert(ctx context.Context, q domain.Question) error
	List(ctx context.Context) ([]domain.Question, error)
}

// QuestionCache is a read-through Redis cache over the question bank. The
// whole bank is cached as one JSON blob; every insert invalidates it so a
// freshly registered question is immediately visible to quiz assembly on all
// instances sharing the same Redis. Redis failures degrade to direct reads.
type QuestionCache struct {
	client *redis.Client
	inner  QuestionBank
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewQuestionCache(client *redis.Client, inner QuestionBank, ttl time.Duration) *QuestionCache {
	return &QuestionCache{
		client: client,
		inner:  inner,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// cachedQuestion keeps the storage identifier, which domain.Question hides
// from its own JSON form.
type cachedQuestion struct {
	ID            int64    `json:"id"`
	Text          string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// Insert writes through to the bank and drops the cached blob.
func (c *QuestionCache) Insert(ctx context.Context, q domain.Question) error {
	if err := c.inner.Insert(ctx, q); err != nil {
		return err
	}
	// Best effort; a stale miss just means one extra bank read.
	_ = c.client.Del(ctx, bankKey).Err()
	return nil
}

func (c *QuestionCache) List(ctx context.Context) ([]domain.Question, error) {
	if questions, ok := c.cached(ctx); ok {
		return questions, nil
	}

	result, err, _ := c.sf.Do(bankKey, func() (interface{}, error) {
		// Re-check in case another goroutine filled the cache.
		if questions, ok := c.cached(ctx); ok {
			return questions, nil
		}

		questions, err := c.inner.List(ctx)
		if err != nil {
			return nil, err
		}

		cached := make([]cachedQuestion, len(questions))
		for i, q := range questions {
			cached[i] = cachedQuestion{
				ID:            q.ID,
				Text:          q.Text,
				Options:       q.Options,
				CorrectAnswer: q.CorrectAnswer,
			}
		}
		if raw, err := json.Marshal(cached); err == nil {
			_ = c.client.Set(ctx, bankKey, raw, c.ttlWithJitter()).Err()
		}
		return questions, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]domain.Question), nil
}

func (c *QuestionCache) cached(ctx context.Context) ([]domain.Question, bool) {
	raw, err := c.client.Get(ctx, bankKey).Bytes()
	if err != nil {
		return nil, false
	}
	var cached []cachedQuestion
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, false
	}
	questions := make([]domain.Question, len(cached))
	for i, q := range cached {
		questions[i] = domain.Question{
			ID:            q.ID,
			Text:          q.Text,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		}
	}
	return questions, true
}

func (c *QuestionCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	// up to 10% jitter to spread expirations
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
