// Package question provides quiz question domain models and read-only repository access.
package question

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound is returned when a referenced question does not exist.
	ErrNotFound = errors.New("question not found")
	// ErrCategoryNotFound is returned when a referenced category does not exist.
	ErrCategoryNotFound = errors.New("category not found")
)

// Type discriminates how a question is answered and graded.
type Type string

const (
	TypeMultiple Type = "multiple"
	TypeOX       Type = "ox"
	TypeBlank    Type = "blank"
	TypeCode     Type = "code"
)

// Valid reports whether t is one of the known question types.
func (t Type) Valid() bool {
	switch t {
	case TypeMultiple, TypeOX, TypeBlank, TypeCode:
		return true
	}
	return false
}

// Options is the ordered option list for multiple-choice questions,
// stored as a JSON array column.
type Options []string

func (o Options) Value() (driver.Value, error) {
	if o == nil {
		return nil, nil
	}
	data, err := json.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal(options) > %w", err)
	}
	return data, nil
}

func (o *Options) Scan(src any) error {
	if src == nil {
		*o = nil
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported options column type %T", src)
	}

	if err := json.Unmarshal(data, o); err != nil {
		return fmt.Errorf("json.Unmarshal(options) > %w", err)
	}
	return nil
}

// Question is an active quiz question. The canonical answer is stored as text;
// for multiple-choice questions it holds the option text, never an index.
type Question struct {
	ID          int64     `db:"id" json:"id"`
	Type        Type      `db:"type" json:"type"`
	Difficulty  int       `db:"difficulty" json:"difficulty"`
	Text        string    `db:"text" json:"text"`
	Options     Options   `db:"options" json:"options,omitempty"`
	Answer      string    `db:"answer" json:"-"`
	Explanation string    `db:"explanation" json:"-"`
	CategoryID  int64     `db:"category_id" json:"category_id"`
	Active      bool      `db:"active" json:"-"`
	CreatedAt   time.Time `db:"created_at" json:"-"`
	UpdatedAt   time.Time `db:"updated_at" json:"-"`
}

// Category groups questions by topic.
type Category struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"-"`
}
