package wrongnote

import (
	"context"
	"fmt"
	"time"
)

// Service is the wrong-note ledger. It is the only component that mutates
// wrong notes.
type Service struct {
	repo Repository
}

// NewService creates a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// RecordMiss counts one miss for (user, question) at the given time.
func (s *Service) RecordMiss(ctx context.Context, userID string, questionID int64, at time.Time) error {
	if err := s.repo.IncrementMiss(ctx, userID, questionID, at); err != nil {
		return fmt.Errorf("repo.IncrementMiss() > %w", err)
	}
	return nil
}

// Resolve marks a wrong note as reviewed. The next miss on the same question
// clears the flag again.
func (s *Service) Resolve(ctx context.Context, userID string, questionID int64, at time.Time) error {
	found, err := s.repo.MarkReviewed(ctx, userID, questionID, at)
	if err != nil {
		return fmt.Errorf("repo.MarkReviewed() > %w", err)
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

// ListUnreviewed returns the user's unreviewed wrong notes, optionally scoped
// to one category.
func (s *Service) ListUnreviewed(ctx context.Context, userID string, categoryID *int64) ([]WrongNote, error) {
	notes, err := s.repo.FindUnreviewed(ctx, userID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("repo.FindUnreviewed() > %w", err)
	}
	return notes, nil
}

// UnreviewedQuestionIDs returns the question ids behind the user's unreviewed
// wrong notes, used to build wrong-only review attempts.
func (s *Service) UnreviewedQuestionIDs(ctx context.Context, userID string, categoryID *int64) ([]int64, error) {
	notes, err := s.ListUnreviewed(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(notes))
	for _, note := range notes {
		ids = append(ids, note.QuestionID)
	}
	return ids, nil
}
