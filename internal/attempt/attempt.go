// Package attempt owns the attempt lifecycle: starting and resuming graded
// sessions, submitting answers, and finalizing scores. It is the only
// component that creates or mutates attempts and answers.
package attempt

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when the attempt does not exist.
	ErrNotFound = errors.New("attempt not found")
	// ErrUnauthorized is returned when the attempt belongs to another user.
	ErrUnauthorized = errors.New("attempt does not belong to user")
	// ErrAlreadyCompleted is returned when answers are submitted to a
	// finalized attempt.
	ErrAlreadyCompleted = errors.New("attempt already completed")
	// ErrNoQuestionsAvailable is returned when the question pool is empty
	// after every fallback.
	ErrNoQuestionsAvailable = errors.New("no questions available")
	// ErrQuestionNotInAttempt is returned when answering a question that was
	// never assigned to the attempt.
	ErrQuestionNotInAttempt = errors.New("question is not part of attempt")
	// ErrDuplicateDaily signals that another request already created the
	// attempt for this (user, date); the caller resumes the winner's row.
	ErrDuplicateDaily = errors.New("daily attempt already exists")
)

// Kind distinguishes daily attempts, which feed the streak state machine,
// from ad-hoc attempts, which never do.
type Kind string

const (
	KindDaily Kind = "daily"
	KindAdhoc Kind = "adhoc"
)

// Mode is the sampling mode of an ad-hoc attempt.
type Mode string

const (
	ModeRandom    Mode = "random"
	ModeWrongOnly Mode = "wrong_only"
)

// Attempt is one graded session owning a fixed question set and a running
// score.
type Attempt struct {
	ID           string     `db:"id" json:"id"`
	UserID       string     `db:"user_id" json:"user_id"`
	Kind         Kind       `db:"kind" json:"kind"`
	Mode         Mode       `db:"mode" json:"mode,omitempty"`
	DailyDate    *time.Time `db:"daily_date" json:"daily_date,omitempty"`
	CategoryID   *int64     `db:"category_id" json:"category_id,omitempty"`
	TotalCount   int        `db:"total_count" json:"total_count"`
	CorrectCount int        `db:"correct_count" json:"correct_count"`
	Completed    bool       `db:"completed" json:"completed"`
	CompletedAt  *time.Time `db:"completed_at" json:"completed_at,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

// Answer is one graded submission. At most one row exists per
// (attempt, question); re-submission overwrites it.
type Answer struct {
	ID         int64     `db:"id" json:"-"`
	AttemptID  string    `db:"attempt_id" json:"attempt_id"`
	QuestionID int64     `db:"question_id" json:"question_id"`
	Submitted  string    `db:"submitted" json:"submitted"`
	Correct    bool      `db:"correct" json:"correct"`
	AnsweredAt time.Time `db:"answered_at" json:"answered_at"`
}
