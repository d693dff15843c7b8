// Package server is the HTTP transport for the quiz platform. Handlers stay
// thin: decode, delegate to a domain service, map sentinel errors to status
// codes.
package server

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/solvedaily/backend/internal/analytics"
	"github.com/solvedaily/backend/internal/attempt"
	"github.com/solvedaily/backend/internal/grading"
	"github.com/solvedaily/backend/internal/streak"
	"github.com/solvedaily/backend/internal/wrongnote"
)

//go:generate mockgen -source=server.go -destination=../mocks/server/mock_server.go -package=mock_server

// AttemptService is the attempt lifecycle surface the API exposes.
type AttemptService interface {
	StartDaily(ctx context.Context, userID string, day time.Time) (*attempt.StartResult, error)
	StartAdhoc(ctx context.Context, userID string, mode attempt.Mode, categoryID *int64, count int) (*attempt.StartResult, error)
	Get(ctx context.Context, userID, attemptID string) (*attempt.StartResult, error)
	SubmitAnswer(ctx context.Context, userID, attemptID string, questionID int64, sub grading.Submission) (*attempt.SubmitResult, error)
	Complete(ctx context.Context, userID, attemptID string) (*attempt.CompleteResult, error)
}

// WrongNoteService exposes the wrong-note review flow.
type WrongNoteService interface {
	ListUnreviewed(ctx context.Context, userID string, categoryID *int64) ([]wrongnote.WrongNote, error)
	Resolve(ctx context.Context, userID string, questionID int64, at time.Time) error
}

// StreakService exposes the persisted streak state.
type StreakService interface {
	Get(ctx context.Context, userID string) (streak.State, error)
}

// AnalyticsService exposes the read-side activity reports.
type AnalyticsService interface {
	Summary(ctx context.Context, userID string, months int) (analytics.Summary, error)
	DayDetail(ctx context.Context, userID string, day time.Time) (analytics.DayDetail, error)
}

// SummaryInvalidator drops a user's cached summaries after a write. Optional
// and best-effort.
type SummaryInvalidator interface {
	InvalidateUser(ctx context.Context, userID string) error
}

// API owns the HTTP handlers.
type API struct {
	attempts    AttemptService
	wrongNotes  WrongNoteService
	streaks     StreakService
	activity    AnalyticsService
	invalidator SummaryInvalidator

	location *time.Location
	now      func() time.Time
	validate *validator.Validate
}

// APIOption configures an API.
type APIOption func(*API)

// WithSummaryInvalidator attaches a cache invalidator for write paths.
func WithSummaryInvalidator(invalidator SummaryInvalidator) APIOption {
	return func(a *API) {
		a.invalidator = invalidator
	}
}

// WithClock overrides the API clock, for deterministic tests.
func WithClock(now func() time.Time) APIOption {
	return func(a *API) {
		a.now = now
	}
}

// NewAPI creates a new API. The location fixes the calendar used to derive
// "today" for daily attempts and activity dates.
func NewAPI(
	attempts AttemptService,
	wrongNotes WrongNoteService,
	streaks StreakService,
	activity AnalyticsService,
	location *time.Location,
	opts ...APIOption,
) *API {
	api := &API{
		attempts:   attempts,
		wrongNotes: wrongNotes,
		streaks:    streaks,
		activity:   activity,
		location:   location,
		now:        time.Now,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
	for _, opt := range opts {
		opt(api)
	}
	return api
}

// today returns the current calendar day in the configured location,
// truncated to midnight UTC so it matches persisted daily date keys.
func (a *API) today() time.Time {
	now := a.now().In(a.location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
