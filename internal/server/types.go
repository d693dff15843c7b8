package server

import (
	"time"

	"github.com/solvedaily/backend/internal/analytics"
	"github.com/solvedaily/backend/internal/attempt"
	"github.com/solvedaily/backend/internal/question"
	"github.com/solvedaily/backend/internal/streak"
	"github.com/solvedaily/backend/internal/wrongnote"
)

type errorResponse struct {
	Error string `json:"error"`
}

type startAdhocRequest struct {
	Mode       string `json:"mode" validate:"omitempty,oneof=random wrong_only"`
	CategoryID *int64 `json:"category_id,omitempty"`
	Count      int    `json:"count,omitempty" validate:"gte=0"`
}

// answerPayload is the per-type submission shape. Exactly one field is
// expected depending on the question type.
type answerPayload struct {
	OptionIndex *int   `json:"option_index,omitempty"`
	Boolean     *bool  `json:"boolean,omitempty"`
	Text        string `json:"text,omitempty"`
}

func (p answerPayload) empty() bool {
	return p.OptionIndex == nil && p.Boolean == nil && p.Text == ""
}

type submitAnswerRequest struct {
	QuestionID int64         `json:"question_id" validate:"required,gt=0"`
	Payload    answerPayload `json:"payload"`
}

type attemptResponse struct {
	Attempt   attempt.Attempt     `json:"attempt"`
	Questions []question.Question `json:"questions"`
}

type submitAnswerResponse struct {
	Correct       bool   `json:"correct"`
	Submitted     string `json:"submitted"`
	DisplayAnswer string `json:"display_answer"`
	Explanation   string `json:"explanation,omitempty"`
}

type completeResponse struct {
	AttemptID                  string        `json:"attempt_id"`
	TotalCount                 int           `json:"total_count"`
	CorrectCount               int           `json:"correct_count"`
	AlreadyCompleted           bool          `json:"already_completed"`
	Streak                     *streak.State `json:"streak,omitempty"`
	FailedWrongNoteQuestionIDs []int64       `json:"failed_wrong_note_question_ids,omitempty"`
}

type wrongNotesResponse struct {
	WrongNotes []wrongnote.WrongNote `json:"wrong_notes"`
}

type streakResponse struct {
	UserID           string     `json:"user_id"`
	CurrentStreak    int        `json:"current_streak"`
	LongestStreak    int        `json:"longest_streak"`
	LastActivityDate *time.Time `json:"last_activity_date,omitempty"`
	TotalActiveDays  int        `json:"total_active_days"`
}

type activityResponse struct {
	Summary analytics.Summary `json:"summary"`
}

type activityDayResponse struct {
	Detail analytics.DayDetail `json:"detail"`
}
