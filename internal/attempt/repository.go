package attempt

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/solvedaily/backend/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/attempt/mock_repository.go -package=mock_attempt

// Repository defines persistence for attempts and their question assignments.
type Repository interface {
	// Create inserts the attempt and its ordered question assignment in one
	// transaction. A unique-key race on (user, daily date) is reported as
	// ErrDuplicateDaily.
	Create(ctx context.Context, attempt *Attempt, questionIDs []int64) error
	FindByID(ctx context.Context, id string) (*Attempt, error)
	FindDaily(ctx context.Context, userID string, day time.Time) (*Attempt, error)
	// FindQuestionIDs returns the attempt's question ids in assignment order.
	FindQuestionIDs(ctx context.Context, attemptID string) ([]int64, error)
	// Complete marks the attempt completed if it is not already. It reports
	// false when another request completed it first.
	Complete(ctx context.Context, attemptID string, correctCount int, completedAt time.Time) (bool, error)
}

// AnswerRepository defines persistence for answers.
type AnswerRepository interface {
	// Upsert writes the answer keyed by (attempt, question), overwriting any
	// previous submission.
	Upsert(ctx context.Context, answer *Answer) error
	Exists(ctx context.Context, attemptID string, questionID int64) (bool, error)
	CountCorrect(ctx context.Context, attemptID string) (int, error)
	FindByAttempt(ctx context.Context, attemptID string) ([]Answer, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// Create inserts the attempt row and its question assignment transactionally.
func (r *DBRepository) Create(ctx context.Context, attempt *Attempt, questionIDs []int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO attempts (id, user_id, kind, mode, daily_date, category_id, total_count, correct_count, completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, 0, 0, ?)`,
		attempt.ID, attempt.UserID, attempt.Kind, attempt.Mode, attempt.DailyDate,
		attempt.CategoryID, attempt.TotalCount, attempt.CreatedAt)
	if err != nil {
		if database.IsDuplicateEntry(err) {
			return ErrDuplicateDaily
		}
		return fmt.Errorf("tx.ExecContext(insert attempt) > %w", err)
	}

	for position, questionID := range questionIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO attempt_questions (attempt_id, question_id, position) VALUES (?, ?, ?)",
			attempt.ID, questionID, position); err != nil {
			return fmt.Errorf("tx.ExecContext(insert attempt_question) > %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}

// FindByID returns the attempt with the given id, or nil if not found.
func (r *DBRepository) FindByID(ctx context.Context, id string) (*Attempt, error) {
	var a Attempt
	err := r.db.GetContext(ctx, &a, "SELECT * FROM attempts WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(attempt) > %w", err)
	}
	return &a, nil
}

// FindDaily returns the user's daily attempt for one calendar day, or nil.
func (r *DBRepository) FindDaily(ctx context.Context, userID string, day time.Time) (*Attempt, error) {
	var a Attempt
	err := r.db.GetContext(ctx, &a,
		"SELECT * FROM attempts WHERE user_id = ? AND daily_date = ?",
		userID, day.Format("2006-01-02"))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(daily attempt) > %w", err)
	}
	return &a, nil
}

// FindQuestionIDs returns the assigned question ids in assignment order.
func (r *DBRepository) FindQuestionIDs(ctx context.Context, attemptID string) ([]int64, error) {
	var ids []int64
	if err := r.db.SelectContext(ctx, &ids,
		"SELECT question_id FROM attempt_questions WHERE attempt_id = ? ORDER BY position",
		attemptID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(attempt_questions) > %w", err)
	}
	return ids, nil
}

// Complete finalizes the attempt. The WHERE completed = 0 guard makes two
// concurrent completions converge: exactly one caller wins and runs the
// completion side effects.
func (r *DBRepository) Complete(ctx context.Context, attemptID string, correctCount int, completedAt time.Time) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE attempts SET correct_count = ?, completed = 1, completed_at = ? WHERE id = ? AND completed = 0",
		correctCount, completedAt, attemptID)
	if err != nil {
		return false, fmt.Errorf("db.ExecContext(complete attempt) > %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("result.RowsAffected() > %w", err)
	}
	return affected > 0, nil
}

// DBAnswerRepository implements AnswerRepository using MySQL.
type DBAnswerRepository struct {
	db *sqlx.DB
}

// NewDBAnswerRepository creates a new DBAnswerRepository.
func NewDBAnswerRepository(db *sqlx.DB) *DBAnswerRepository {
	return &DBAnswerRepository{db: db}
}

// Upsert writes the answer under the (attempt_id, question_id) unique key.
// Concurrent double-submissions converge to the last write.
func (r *DBAnswerRepository) Upsert(ctx context.Context, answer *Answer) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO answers (attempt_id, question_id, submitted, correct, answered_at)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			submitted = VALUES(submitted),
			correct = VALUES(correct),
			answered_at = VALUES(answered_at)`,
		answer.AttemptID, answer.QuestionID, answer.Submitted, answer.Correct, answer.AnsweredAt)
	if err != nil {
		return fmt.Errorf("db.ExecContext(upsert answer) > %w", err)
	}
	return nil
}

// Exists reports whether an answer row exists for (attempt, question).
func (r *DBAnswerRepository) Exists(ctx context.Context, attemptID string, questionID int64) (bool, error) {
	var count int
	if err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM answers WHERE attempt_id = ? AND question_id = ?",
		attemptID, questionID); err != nil {
		return false, fmt.Errorf("db.GetContext(answer exists) > %w", err)
	}
	return count > 0, nil
}

// CountCorrect counts the attempt's correct answers.
func (r *DBAnswerRepository) CountCorrect(ctx context.Context, attemptID string) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM answers WHERE attempt_id = ? AND correct = 1",
		attemptID); err != nil {
		return 0, fmt.Errorf("db.GetContext(correct answer count) > %w", err)
	}
	return count, nil
}

// FindByAttempt returns the attempt's answers in submission order.
func (r *DBAnswerRepository) FindByAttempt(ctx context.Context, attemptID string) ([]Answer, error) {
	var answers []Answer
	if err := r.db.SelectContext(ctx, &answers,
		"SELECT * FROM answers WHERE attempt_id = ? ORDER BY answered_at, id",
		attemptID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(answers) > %w", err)
	}
	return answers, nil
}
