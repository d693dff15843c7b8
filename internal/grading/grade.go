// Package grading grades submitted answers against a question's canonical answer.
//
// Grading is exact-match after normalization: no numeric tolerance, no partial
// credit, no fuzzy matching. Each question type has its own pure grading
// function returning a normalized result.
package grading

import (
	"errors"
	"fmt"
	"strings"

	"github.com/solvedaily/backend/internal/question"
)

var (
	// ErrInvalidQuestionType is returned for a question type the engine does not know.
	ErrInvalidQuestionType = errors.New("invalid question type")
	// ErrInvalidSubmission is returned when the submitted payload does not fit
	// the question type, e.g. an option index out of range.
	ErrInvalidSubmission = errors.New("invalid submission")
)

// Submission is the payload a caller submits for one question. Exactly one
// field group is meaningful depending on the question type: OptionIndex for
// multiple, Boolean for ox, Text for blank and code.
type Submission struct {
	OptionIndex int
	Boolean     bool
	Text        string
}

// Result is the normalized grading outcome.
// Submitted is the display form of what the user answered; DisplayAnswer is
// the display form of the canonical answer.
type Result struct {
	Correct       bool
	Submitted     string
	DisplayAnswer string
}

// Grade dispatches on the question type and grades the submission.
func Grade(q question.Question, sub Submission) (Result, error) {
	switch q.Type {
	case question.TypeMultiple:
		return gradeMultiple(q, sub.OptionIndex)
	case question.TypeOX:
		return gradeOX(q, sub.Boolean)
	case question.TypeBlank, question.TypeCode:
		return gradeText(q, sub.Text), nil
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidQuestionType, q.Type)
	}
}

// gradeMultiple resolves the submitted zero-based option index to its option
// text and compares it to the canonical answer text. The canonical answer is
// stored as option text, never an index, so indices are never compared
// directly.
func gradeMultiple(q question.Question, index int) (Result, error) {
	if index < 0 || index >= len(q.Options) {
		return Result{}, fmt.Errorf("%w: option index %d out of range [0, %d)",
			ErrInvalidSubmission, index, len(q.Options))
	}

	selected := q.Options[index]
	return Result{
		Correct:       selected == q.Answer,
		Submitted:     selected,
		DisplayAnswer: q.Answer,
	}, nil
}

// gradeOX compares the submitted boolean to the parsed canonical truth value.
// The canonical answer is a loosely typed string; the display form is always
// normalized to "O" or "X".
func gradeOX(q question.Question, submitted bool) (Result, error) {
	canonical, err := parseOXAnswer(q.Answer)
	if err != nil {
		return Result{}, fmt.Errorf("question %d: %w", q.ID, err)
	}

	return Result{
		Correct:       submitted == canonical,
		Submitted:     oxDisplay(submitted),
		DisplayAnswer: oxDisplay(canonical),
	}, nil
}

// gradeText compares case-insensitively after trimming surrounding whitespace.
func gradeText(q question.Question, submitted string) Result {
	normalizedSubmission := strings.TrimSpace(submitted)
	return Result{
		Correct:       strings.EqualFold(normalizedSubmission, strings.TrimSpace(q.Answer)),
		Submitted:     normalizedSubmission,
		DisplayAnswer: q.Answer,
	}
}

// parseOXAnswer accepts the canonical forms seen in the question store:
// case-insensitive "true"/"false" and "o"/"x".
func parseOXAnswer(answer string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "true", "o":
		return true, nil
	case "false", "x":
		return false, nil
	}
	return false, fmt.Errorf("unrecognized ox answer %q", answer)
}

func oxDisplay(v bool) string {
	if v {
		return "O"
	}
	return "X"
}
