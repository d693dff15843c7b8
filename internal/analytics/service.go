package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

//go:generate mockgen -source=service.go -destination=../mocks/analytics/mock_service.go -package=mock_analytics

// SummaryCache caches computed summaries per (user, window). A nil result
// with a nil error is a cache miss.
type SummaryCache interface {
	GetSummary(ctx context.Context, userID string, months int) (*Summary, error)
	SetSummary(ctx context.Context, userID string, months int, summary Summary) error
}

// Service computes activity reports on demand. The cache is best-effort:
// cache failures degrade to recomputation, never to request failure.
type Service struct {
	repo           Repository
	cache          SummaryCache
	lookbackMonths int
	now            func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithCache attaches a summary cache.
func WithCache(cache SummaryCache) ServiceOption {
	return func(s *Service) {
		s.cache = cache
	}
}

// WithClock overrides the service clock, for deterministic tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a new Service.
func NewService(repo Repository, lookbackMonths int, opts ...ServiceOption) *Service {
	s := &Service{
		repo:           repo,
		lookbackMonths: lookbackMonths,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summary computes the activity summary over the last N months. A months
// value of zero or less uses the configured default window.
func (s *Service) Summary(ctx context.Context, userID string, months int) (Summary, error) {
	if months <= 0 {
		months = s.lookbackMonths
	}

	if s.cache != nil {
		cached, err := s.cache.GetSummary(ctx, userID, months)
		if err != nil {
			slog.Default().Warn("failed to read the summary cache",
				slog.String("userID", userID),
				slog.Any("error", err),
			)
		} else if cached != nil {
			return *cached, nil
		}
	}

	today := s.now()
	since := today.AddDate(0, -months, 0)
	events, err := s.repo.FindAnswerEvents(ctx, userID, since)
	if err != nil {
		return Summary{}, fmt.Errorf("repo.FindAnswerEvents() > %w", err)
	}

	summary := Summarize(events, today)

	if s.cache != nil {
		if err := s.cache.SetSummary(ctx, userID, months, summary); err != nil {
			slog.Default().Warn("failed to write the summary cache",
				slog.String("userID", userID),
				slog.Any("error", err),
			)
		}
	}
	return summary, nil
}

// MonthSummary computes the summary over one calendar month, in the clock's
// location. The streak reference day is the month's last day, or today when
// the month is still running. Month summaries are read by the reporting CLI
// only and bypass the cache.
func (s *Service) MonthSummary(ctx context.Context, userID string, year int, month time.Month) (Summary, error) {
	now := s.now()
	start := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0)

	events, err := s.repo.FindAnswerEvents(ctx, userID, start)
	if err != nil {
		return Summary{}, fmt.Errorf("repo.FindAnswerEvents() > %w", err)
	}
	inMonth := events[:0]
	for _, event := range events {
		if event.AnsweredAt.Before(end) {
			inMonth = append(inMonth, event)
		}
	}

	reference := end.AddDate(0, 0, -1)
	if now.Before(reference) {
		reference = now
	}
	return Summarize(inMonth, reference), nil
}

// DayDetail computes the per-question report for one calendar date.
func (s *Service) DayDetail(ctx context.Context, userID string, day time.Time) (DayDetail, error) {
	events, err := s.repo.FindAnswerEventsOn(ctx, userID, day)
	if err != nil {
		return DayDetail{}, fmt.Errorf("repo.FindAnswerEventsOn() > %w", err)
	}
	return BuildDayDetail(events, day), nil
}
