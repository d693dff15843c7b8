package streak

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

//go:generate mockgen -source=repository.go -destination=../mocks/streak/mock_repository.go -package=mock_streak

// Repository defines persistence for streak states.
type Repository interface {
	Find(ctx context.Context, userID string) (*State, error)
	Save(ctx context.Context, state *State) error
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// Find returns the user's streak state, or nil if the user has never
// completed a daily attempt.
func (r *DBRepository) Find(ctx context.Context, userID string) (*State, error) {
	var state State
	err := r.db.GetContext(ctx, &state,
		"SELECT * FROM streak_states WHERE user_id = ?", userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(streak_state) > %w", err)
	}
	return &state, nil
}

// Save upserts the user's streak state.
func (r *DBRepository) Save(ctx context.Context, state *State) error {
	state.UpdatedAt = time.Now()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO streak_states (user_id, current_streak, longest_streak, last_activity_date, total_active_days, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			current_streak = VALUES(current_streak),
			longest_streak = VALUES(longest_streak),
			last_activity_date = VALUES(last_activity_date),
			total_active_days = VALUES(total_active_days),
			updated_at = VALUES(updated_at)`,
		state.UserID, state.CurrentStreak, state.LongestStreak,
		state.LastActivityDate, state.TotalActiveDays, state.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db.ExecContext(upsert streak_state) > %w", err)
	}
	return nil
}
