package repository

import (
	"context"
	"fmt"

	"tokenbot/database"
	"tokenbot/domain/entities"

	"github.com/jackc/pgx/v5"
)

// QuizQuestionRepository implements the QuizQuestionRepository interface.
// The question bank is global, not guild-scoped.
type QuizQuestionRepository struct {
	q Queryable
}

// NewQuizQuestionRepository creates a quiz question repository over the connection pool
func NewQuizQuestionRepository(db *database.DB) *QuizQuestionRepository {
	return &QuizQuestionRepository{q: db.Pool}
}

// NewQuizQuestionRepositoryScoped creates a quiz question repository with a transaction
func NewQuizQuestionRepositoryScoped(tx Queryable) *QuizQuestionRepository {
	return &QuizQuestionRepository{q: tx}
}

// GetRandom draws one question uniformly at random.
// The bank is small enough that ORDER BY RANDOM() is fine.
func (r *QuizQuestionRepository) GetRandom(ctx context.Context) (*entities.QuizQuestion, error) {
	query := `
		SELECT id, question, answer
		FROM quiz_questions
		ORDER BY RANDOM()
		LIMIT 1
	`

	var question entities.QuizQuestion
	err := r.q.QueryRow(ctx, query).Scan(&question.ID, &question.Question, &question.Answer)
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("quiz question bank is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get random quiz question: %w", err)
	}

	return &question, nil
}
