package streak

import (
	"context"
	"fmt"
	"time"
)

// Service applies daily-completion streak transitions against the persisted
// state. Ad-hoc attempts never reach this service.
type Service struct {
	repo Repository
}

// NewService creates a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// RecordDailyCompletion applies one streak transition for the given calendar
// day. Calling it again for the same day is a no-op and returns the existing
// state, which is what makes retried completions safe.
func (s *Service) RecordDailyCompletion(ctx context.Context, userID string, day time.Time) (State, error) {
	existing, err := s.repo.Find(ctx, userID)
	if err != nil {
		return State{}, fmt.Errorf("repo.Find() > %w", err)
	}

	today := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	if existing == nil {
		state := State{
			UserID:           userID,
			CurrentStreak:    1,
			LongestStreak:    1,
			LastActivityDate: &today,
			TotalActiveDays:  1,
		}
		if err := s.repo.Save(ctx, &state); err != nil {
			return State{}, fmt.Errorf("repo.Save() > %w", err)
		}
		return state, nil
	}

	if existing.LastActivityDate != nil {
		gap := GapDays(*existing.LastActivityDate, today)
		if gap <= 0 {
			// Already recorded for this day.
			return *existing, nil
		}
		if gap == 1 {
			existing.CurrentStreak++
		} else {
			existing.CurrentStreak = 1
		}
	} else {
		existing.CurrentStreak = 1
	}

	if existing.CurrentStreak > existing.LongestStreak {
		existing.LongestStreak = existing.CurrentStreak
	}
	existing.TotalActiveDays++
	existing.LastActivityDate = &today

	if err := s.repo.Save(ctx, existing); err != nil {
		return State{}, fmt.Errorf("repo.Save() > %w", err)
	}
	return *existing, nil
}

// Get returns the user's streak state, or a zero-valued state for users with
// no daily completions yet.
func (s *Service) Get(ctx context.Context, userID string) (State, error) {
	existing, err := s.repo.Find(ctx, userID)
	if err != nil {
		return State{}, fmt.Errorf("repo.Find() > %w", err)
	}
	if existing == nil {
		return State{UserID: userID}, nil
	}
	return *existing, nil
}
