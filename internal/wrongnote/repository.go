package wrongnote

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/wrongnote/mock_repository.go -package=mock_wrongnote

// Repository defines persistence for wrong notes.
type Repository interface {
	Find(ctx context.Context, userID string, questionID int64) (*WrongNote, error)
	IncrementMiss(ctx context.Context, userID string, questionID int64, at time.Time) error
	MarkReviewed(ctx context.Context, userID string, questionID int64, at time.Time) (bool, error)
	FindUnreviewed(ctx context.Context, userID string, categoryID *int64) ([]WrongNote, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// Find returns the wrong note for (user, question), or nil if not found.
func (r *DBRepository) Find(ctx context.Context, userID string, questionID int64) (*WrongNote, error) {
	var note WrongNote
	err := r.db.GetContext(ctx, &note,
		"SELECT * FROM wrong_notes WHERE user_id = ? AND question_id = ?",
		userID, questionID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(wrong_note) > %w", err)
	}
	return &note, nil
}

// IncrementMiss records one miss in a single atomic statement: a first miss
// creates the row with wrong_count = 1, any later miss increments the counter
// and clears the reviewed flag.
func (r *DBRepository) IncrementMiss(ctx context.Context, userID string, questionID int64, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO wrong_notes (user_id, question_id, wrong_count, last_wrong_at, reviewed, reviewed_at)
		VALUES (?, ?, 1, ?, 0, NULL)
		ON DUPLICATE KEY UPDATE
			wrong_count = wrong_count + 1,
			last_wrong_at = VALUES(last_wrong_at),
			reviewed = 0,
			reviewed_at = NULL`,
		userID, questionID, at)
	if err != nil {
		return fmt.Errorf("db.ExecContext(increment wrong_note) > %w", err)
	}
	return nil
}

// MarkReviewed sets the reviewed flag. It reports false when no row matched.
func (r *DBRepository) MarkReviewed(ctx context.Context, userID string, questionID int64, at time.Time) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE wrong_notes SET reviewed = 1, reviewed_at = ? WHERE user_id = ? AND question_id = ?",
		at, userID, questionID)
	if err != nil {
		return false, fmt.Errorf("db.ExecContext(mark wrong_note reviewed) > %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("result.RowsAffected() > %w", err)
	}
	return affected > 0, nil
}

// FindUnreviewed returns the user's unreviewed wrong notes, most recent miss
// first, optionally scoped to one category.
func (r *DBRepository) FindUnreviewed(ctx context.Context, userID string, categoryID *int64) ([]WrongNote, error) {
	query := `SELECT w.* FROM wrong_notes w
		JOIN questions q ON q.id = w.question_id
		WHERE w.user_id = ? AND w.reviewed = 0 AND q.active = 1`
	args := []any{userID}
	if categoryID != nil {
		query += " AND q.category_id = ?"
		args = append(args, *categoryID)
	}
	query += " ORDER BY w.last_wrong_at DESC"

	var notes []WrongNote
	if err := r.db.SelectContext(ctx, &notes, query, args...); err != nil {
		return nil, fmt.Errorf("db.SelectContext(unreviewed wrong_notes) > %w", err)
	}
	return notes, nil
}
