// Package wrongnote maintains the per-user, per-question miss ledger used to
// drive "review mistakes" flows.
package wrongnote

import (
	"errors"
	"time"
)

// ErrNotFound is returned when resolving a wrong note that does not exist.
var ErrNotFound = errors.New("wrong note not found")

// WrongNote is a persistent miss counter keyed by (user, question).
// wrong_count only ever grows; a correct answer never resets it. The reviewed
// flag is cleared again on every subsequent miss.
type WrongNote struct {
	UserID      string     `db:"user_id" json:"user_id"`
	QuestionID  int64      `db:"question_id" json:"question_id"`
	WrongCount  int        `db:"wrong_count" json:"wrong_count"`
	LastWrongAt time.Time  `db:"last_wrong_at" json:"last_wrong_at"`
	Reviewed    bool       `db:"reviewed" json:"reviewed"`
	ReviewedAt  *time.Time `db:"reviewed_at" json:"reviewed_at,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"-"`
}
