package postgres

import (
	"context"

	"quizhub-service/internal/domain"
	"github.com/jackc/pgx/v4/pgxpool"
)

// QuestionRepository stores the question bank in Postgres.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

func (r *QuestionRepository) Insert(ctx context.Context, q domain.Question) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO questions (question, options, correct_answer) VALUES ($1, $2, $3)`,
		q.Text, q.Options, q.CorrectAnswer)
	if err != nil {
		return mapWriteErr(err, domain.ErrDuplicateQuestion)
	}
	return nil
}

func (r *QuestionRepository) List(ctx context.Context) ([]domain.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, question, options, correct_answer FROM questions`)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	var questions []domain.Question
	for rows.Next() {
		var q domain.Question
		if err := rows.Scan(&q.ID, &q.Text, &q.Options, &q.CorrectAnswer); err != nil {
			return nil, storeErr(err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err)
	}
	return questions, nil
}
