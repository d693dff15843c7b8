package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Migrate creates the schema. Statements are idempotent so the command can
// run on every deploy.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uq_categories_name (name)
		)`,
		`CREATE TABLE IF NOT EXISTS questions (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			type VARCHAR(16) NOT NULL,
			difficulty TINYINT NOT NULL DEFAULT 1,
			text TEXT NOT NULL,
			options JSON NULL,
			answer TEXT NOT NULL,
			explanation TEXT NULL,
			category_id BIGINT NULL,
			active TINYINT(1) NOT NULL DEFAULT 1,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			KEY idx_questions_category_active (category_id, active)
		)`,
		`CREATE TABLE IF NOT EXISTS attempts (
			id CHAR(36) PRIMARY KEY,
			user_id VARCHAR(64) NOT NULL,
			kind VARCHAR(8) NOT NULL,
			mode VARCHAR(16) NOT NULL DEFAULT '',
			daily_date DATE NULL,
			category_id BIGINT NULL,
			total_count INT NOT NULL,
			correct_count INT NOT NULL DEFAULT 0,
			completed TINYINT(1) NOT NULL DEFAULT 0,
			completed_at DATETIME NULL,
			created_at DATETIME NOT NULL,
			UNIQUE KEY uq_attempts_user_daily (user_id, daily_date),
			KEY idx_attempts_user_created (user_id, created_at)
		)`,
		`CREATE TABLE IF NOT EXISTS attempt_questions (
			attempt_id CHAR(36) NOT NULL,
			question_id BIGINT NOT NULL,
			position INT NOT NULL,
			PRIMARY KEY (attempt_id, position),
			UNIQUE KEY uq_attempt_questions (attempt_id, question_id)
		)`,
		`CREATE TABLE IF NOT EXISTS answers (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			attempt_id CHAR(36) NOT NULL,
			question_id BIGINT NOT NULL,
			submitted TEXT NOT NULL,
			correct TINYINT(1) NOT NULL,
			answered_at DATETIME NOT NULL,
			UNIQUE KEY uq_answers_attempt_question (attempt_id, question_id),
			KEY idx_answers_answered_at (answered_at)
		)`,
		`CREATE TABLE IF NOT EXISTS wrong_notes (
			user_id VARCHAR(64) NOT NULL,
			question_id BIGINT NOT NULL,
			wrong_count INT NOT NULL DEFAULT 1,
			last_wrong_at DATETIME NOT NULL,
			reviewed TINYINT(1) NOT NULL DEFAULT 0,
			reviewed_at DATETIME NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (user_id, question_id),
			KEY idx_wrong_notes_user_reviewed (user_id, reviewed, last_wrong_at)
		)`,
		`CREATE TABLE IF NOT EXISTS streak_states (
			user_id VARCHAR(64) PRIMARY KEY,
			current_streak INT NOT NULL,
			longest_streak INT NOT NULL,
			last_activity_date DATE NULL,
			total_active_days INT NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
	}

	for _, statement := range statements {
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("db.ExecContext(migrate) > %w", err)
		}
	}
	return nil
}
