package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/analytics/mock_repository.go -package=mock_analytics

// Repository reads answer history. It never writes; the attempt lifecycle
// owns all answer rows.
type Repository interface {
	// FindAnswerEvents returns the user's answers since the given time, in
	// chronological order.
	FindAnswerEvents(ctx context.Context, userID string, since time.Time) ([]AnswerEvent, error)
	// FindAnswerEventsOn returns the user's answers on one calendar date.
	FindAnswerEventsOn(ctx context.Context, userID string, day time.Time) ([]AnswerEvent, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

const answerEventColumns = `a.question_id,
	q.text AS question_text,
	COALESCE(c.name, '') AS category,
	a.submitted,
	a.correct,
	a.answered_at`

func (r *DBRepository) FindAnswerEvents(ctx context.Context, userID string, since time.Time) ([]AnswerEvent, error) {
	var events []AnswerEvent
	query := fmt.Sprintf(`SELECT %s
		FROM answers a
		JOIN attempts t ON t.id = a.attempt_id
		JOIN questions q ON q.id = a.question_id
		LEFT JOIN categories c ON c.id = q.category_id
		WHERE t.user_id = ? AND a.answered_at >= ?
		ORDER BY a.answered_at`, answerEventColumns)
	if err := r.db.SelectContext(ctx, &events, query, userID, since); err != nil {
		return nil, fmt.Errorf("db.SelectContext(answer events) > %w", err)
	}
	return events, nil
}

func (r *DBRepository) FindAnswerEventsOn(ctx context.Context, userID string, day time.Time) ([]AnswerEvent, error) {
	var events []AnswerEvent
	query := fmt.Sprintf(`SELECT %s
		FROM answers a
		JOIN attempts t ON t.id = a.attempt_id
		JOIN questions q ON q.id = a.question_id
		LEFT JOIN categories c ON c.id = q.category_id
		WHERE t.user_id = ? AND DATE(a.answered_at) = ?
		ORDER BY a.answered_at`, answerEventColumns)
	if err := r.db.SelectContext(ctx, &events, query, userID, day.Format(time.DateOnly)); err != nil {
		return nil, fmt.Errorf("db.SelectContext(answer events on date) > %w", err)
	}
	return events, nil
}
