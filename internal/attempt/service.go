package attempt

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/solvedaily/backend/internal/grading"
	"github.com/solvedaily/backend/internal/question"
	"github.com/solvedaily/backend/internal/streak"
)

//go:generate mockgen -source=service.go -destination=../mocks/attempt/mock_service.go -package=mock_attempt

// WrongNoteRecorder is the slice of the wrong-note ledger the orchestrator
// depends on.
type WrongNoteRecorder interface {
	RecordMiss(ctx context.Context, userID string, questionID int64, at time.Time) error
	UnreviewedQuestionIDs(ctx context.Context, userID string, categoryID *int64) ([]int64, error)
}

// StreakRecorder applies the daily-completion streak transition.
type StreakRecorder interface {
	RecordDailyCompletion(ctx context.Context, userID string, day time.Time) (streak.State, error)
}

// Service orchestrates the attempt lifecycle.
type Service struct {
	attempts   Repository
	answers    AnswerRepository
	questions  question.Repository
	wrongNotes WrongNoteRecorder
	streaks    StreakRecorder

	dailyCount int
	adhocCount int
	now        func() time.Time
	shuffle    func(n int, swap func(i, j int))
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the service clock, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithShuffle overrides the sampling shuffle, for deterministic tests.
func WithShuffle(shuffle func(n int, swap func(i, j int))) Option {
	return func(s *Service) {
		s.shuffle = shuffle
	}
}

// NewService creates a new Service.
func NewService(
	attempts Repository,
	answers AnswerRepository,
	questions question.Repository,
	wrongNotes WrongNoteRecorder,
	streaks StreakRecorder,
	dailyCount int,
	adhocCount int,
	opts ...Option,
) *Service {
	s := &Service{
		attempts:   attempts,
		answers:    answers,
		questions:  questions,
		wrongNotes: wrongNotes,
		streaks:    streaks,
		dailyCount: dailyCount,
		adhocCount: adhocCount,
		now:        time.Now,
		shuffle:    rand.Shuffle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// StartResult is the outcome of starting or resuming an attempt. Questions is
// empty when resuming an already-completed attempt.
type StartResult struct {
	Attempt   Attempt
	Questions []question.Question
}

// SubmitResult is the graded outcome of one answer submission.
type SubmitResult struct {
	Correct       bool
	Submitted     string
	DisplayAnswer string
	Explanation   string
}

// CompleteResult is the final score of an attempt. Streak is set only when
// this call performed a daily streak transition. FailedWrongNoteQuestionIDs
// lists misses whose wrong-note write failed; the completion itself stands.
type CompleteResult struct {
	AttemptID                  string
	TotalCount                 int
	CorrectCount               int
	AlreadyCompleted           bool
	Streak                     *streak.State
	FailedWrongNoteQuestionIDs []int64
}

// StartDaily starts the user's daily attempt for the given calendar day, or
// resumes the existing one. Resuming a completed attempt returns its id and
// final score without regenerating questions.
func (s *Service) StartDaily(ctx context.Context, userID string, day time.Time) (*StartResult, error) {
	existing, err := s.attempts.FindDaily(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf("attempts.FindDaily() > %w", err)
	}
	if existing != nil {
		return s.resume(ctx, existing)
	}

	sampled, err := s.sampleActive(ctx, nil, s.dailyCount)
	if err != nil {
		return nil, err
	}

	dailyDate := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	created := Attempt{
		ID:         uuid.NewString(),
		UserID:     userID,
		Kind:       KindDaily,
		DailyDate:  &dailyDate,
		TotalCount: len(sampled),
		CreatedAt:  s.now(),
	}
	if err := s.attempts.Create(ctx, &created, questionIDs(sampled)); err != nil {
		if errors.Is(err, ErrDuplicateDaily) {
			// A concurrent start won the unique-key race; resume its attempt.
			winner, findErr := s.attempts.FindDaily(ctx, userID, day)
			if findErr != nil {
				return nil, fmt.Errorf("attempts.FindDaily(after duplicate) > %w", findErr)
			}
			if winner == nil {
				return nil, fmt.Errorf("daily attempt vanished after duplicate key for user %s", userID)
			}
			return s.resume(ctx, winner)
		}
		return nil, fmt.Errorf("attempts.Create() > %w", err)
	}

	return &StartResult{Attempt: created, Questions: sampled}, nil
}

// StartAdhoc starts a new ad-hoc attempt. A wrong_only attempt with no
// unreviewed wrong notes falls back to random sampling transparently.
func (s *Service) StartAdhoc(ctx context.Context, userID string, mode Mode, categoryID *int64, count int) (*StartResult, error) {
	if categoryID != nil {
		category, err := s.questions.FindCategory(ctx, *categoryID)
		if err != nil {
			return nil, fmt.Errorf("questions.FindCategory() > %w", err)
		}
		if category == nil {
			return nil, question.ErrCategoryNotFound
		}
	}

	if count <= 0 {
		count = s.adhocCount
	}

	var sampled []question.Question
	if mode == ModeWrongOnly {
		var err error
		sampled, err = s.sampleWrongOnly(ctx, userID, categoryID, count)
		if err != nil {
			return nil, err
		}
	}
	if len(sampled) == 0 {
		var err error
		sampled, err = s.sampleActive(ctx, categoryID, count)
		if err != nil {
			return nil, err
		}
	}

	created := Attempt{
		ID:         uuid.NewString(),
		UserID:     userID,
		Kind:       KindAdhoc,
		Mode:       mode,
		CategoryID: categoryID,
		TotalCount: len(sampled),
		CreatedAt:  s.now(),
	}
	if err := s.attempts.Create(ctx, &created, questionIDs(sampled)); err != nil {
		return nil, fmt.Errorf("attempts.Create() > %w", err)
	}

	return &StartResult{Attempt: created, Questions: sampled}, nil
}

// Get returns an attempt with its question set in assignment order.
func (s *Service) Get(ctx context.Context, userID, attemptID string) (*StartResult, error) {
	a, err := s.authorize(ctx, userID, attemptID)
	if err != nil {
		return nil, err
	}
	return s.resume(ctx, a)
}

// SubmitAnswer grades one submission and upserts the answer row.
// Re-submission silently overwrites the prior grade. On an ad-hoc attempt a
// miss is recorded in the wrong-note ledger immediately, but only for the
// first submission of that question in this attempt, so a client retry cannot
// double-count.
func (s *Service) SubmitAnswer(ctx context.Context, userID, attemptID string, questionID int64, sub grading.Submission) (*SubmitResult, error) {
	a, err := s.authorize(ctx, userID, attemptID)
	if err != nil {
		return nil, err
	}
	if a.Completed {
		return nil, ErrAlreadyCompleted
	}

	assigned, err := s.attempts.FindQuestionIDs(ctx, attemptID)
	if err != nil {
		return nil, fmt.Errorf("attempts.FindQuestionIDs() > %w", err)
	}
	if !containsID(assigned, questionID) {
		return nil, ErrQuestionNotInAttempt
	}

	q, err := s.questions.FindByID(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("questions.FindByID() > %w", err)
	}
	if q == nil {
		return nil, question.ErrNotFound
	}

	result, err := grading.Grade(*q, sub)
	if err != nil {
		return nil, err
	}

	alreadyAnswered, err := s.answers.Exists(ctx, attemptID, questionID)
	if err != nil {
		return nil, fmt.Errorf("answers.Exists() > %w", err)
	}

	now := s.now()
	if err := s.answers.Upsert(ctx, &Answer{
		AttemptID:  attemptID,
		QuestionID: questionID,
		Submitted:  result.Submitted,
		Correct:    result.Correct,
		AnsweredAt: now,
	}); err != nil {
		return nil, fmt.Errorf("answers.Upsert() > %w", err)
	}

	if !result.Correct && a.Kind == KindAdhoc && !alreadyAnswered {
		if err := s.wrongNotes.RecordMiss(ctx, userID, questionID, now); err != nil {
			return nil, fmt.Errorf("wrongNotes.RecordMiss() > %w", err)
		}
	}

	return &SubmitResult{
		Correct:       result.Correct,
		Submitted:     result.Submitted,
		DisplayAnswer: result.DisplayAnswer,
		Explanation:   q.Explanation,
	}, nil
}

// Complete finalizes the attempt and returns its score. Completing an
// already-completed attempt returns the cached score with no side effects.
// For daily attempts the winner of the completion race records wrong notes
// for every miss and applies the streak transition.
func (s *Service) Complete(ctx context.Context, userID, attemptID string) (*CompleteResult, error) {
	a, err := s.authorize(ctx, userID, attemptID)
	if err != nil {
		return nil, err
	}
	if a.Completed {
		return &CompleteResult{
			AttemptID:        a.ID,
			TotalCount:       a.TotalCount,
			CorrectCount:     a.CorrectCount,
			AlreadyCompleted: true,
		}, nil
	}

	correctCount, err := s.answers.CountCorrect(ctx, attemptID)
	if err != nil {
		return nil, fmt.Errorf("answers.CountCorrect() > %w", err)
	}

	won, err := s.attempts.Complete(ctx, attemptID, correctCount, s.now())
	if err != nil {
		return nil, fmt.Errorf("attempts.Complete() > %w", err)
	}
	if !won {
		// Lost the completion race; return the winner's persisted score.
		final, findErr := s.attempts.FindByID(ctx, attemptID)
		if findErr != nil {
			return nil, fmt.Errorf("attempts.FindByID(after lost completion) > %w", findErr)
		}
		return &CompleteResult{
			AttemptID:        attemptID,
			TotalCount:       final.TotalCount,
			CorrectCount:     final.CorrectCount,
			AlreadyCompleted: true,
		}, nil
	}

	result := &CompleteResult{
		AttemptID:    attemptID,
		TotalCount:   a.TotalCount,
		CorrectCount: correctCount,
	}

	if a.Kind != KindDaily {
		return result, nil
	}

	answers, err := s.answers.FindByAttempt(ctx, attemptID)
	if err != nil {
		return nil, fmt.Errorf("answers.FindByAttempt() > %w", err)
	}
	for _, answer := range answers {
		if answer.Correct {
			continue
		}
		if err := s.wrongNotes.RecordMiss(ctx, userID, answer.QuestionID, answer.AnsweredAt); err != nil {
			result.FailedWrongNoteQuestionIDs = append(result.FailedWrongNoteQuestionIDs, answer.QuestionID)
		}
	}

	day := s.now()
	if a.DailyDate != nil {
		day = *a.DailyDate
	}
	state, err := s.streaks.RecordDailyCompletion(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf("streaks.RecordDailyCompletion() > %w", err)
	}
	result.Streak = &state

	return result, nil
}

func (s *Service) authorize(ctx context.Context, userID, attemptID string) (*Attempt, error) {
	a, err := s.attempts.FindByID(ctx, attemptID)
	if err != nil {
		return nil, fmt.Errorf("attempts.FindByID() > %w", err)
	}
	if a == nil {
		return nil, ErrNotFound
	}
	if a.UserID != userID {
		return nil, ErrUnauthorized
	}
	return a, nil
}

// resume reconstructs an in-progress attempt's question set in its original
// assignment order. Completed attempts return no questions.
func (s *Service) resume(ctx context.Context, a *Attempt) (*StartResult, error) {
	if a.Completed {
		return &StartResult{Attempt: *a}, nil
	}

	ids, err := s.attempts.FindQuestionIDs(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("attempts.FindQuestionIDs() > %w", err)
	}

	questions, err := s.questions.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("questions.FindByIDs() > %w", err)
	}

	byID := make(map[int64]question.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	ordered := make([]question.Question, 0, len(ids))
	for _, id := range ids {
		if q, ok := byID[id]; ok {
			ordered = append(ordered, q)
		}
	}

	return &StartResult{Attempt: *a, Questions: ordered}, nil
}

// sampleActive uniformly samples up to count active questions, optionally
// scoped to one category.
func (s *Service) sampleActive(ctx context.Context, categoryID *int64, count int) ([]question.Question, error) {
	var pool []question.Question
	var err error
	if categoryID != nil {
		pool, err = s.questions.FindActiveByCategory(ctx, *categoryID)
	} else {
		pool, err = s.questions.FindActive(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("questions.FindActive() > %w", err)
	}
	if len(pool) == 0 {
		return nil, ErrNoQuestionsAvailable
	}

	s.shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > count {
		pool = pool[:count]
	}
	return pool, nil
}

// sampleWrongOnly samples from the user's unreviewed wrong notes. An empty
// result is not an error; the caller falls back to random sampling.
func (s *Service) sampleWrongOnly(ctx context.Context, userID string, categoryID *int64, count int) ([]question.Question, error) {
	ids, err := s.wrongNotes.UnreviewedQuestionIDs(ctx, userID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("wrongNotes.UnreviewedQuestionIDs() > %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	pool, err := s.questions.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("questions.FindByIDs() > %w", err)
	}

	active := pool[:0]
	for _, q := range pool {
		if q.Active {
			active = append(active, q)
		}
	}
	if len(active) == 0 {
		return nil, nil
	}

	s.shuffle(len(active), func(i, j int) {
		active[i], active[j] = active[j], active[i]
	})
	if len(active) > count {
		active = active[:count]
	}
	return active, nil
}

func questionIDs(questions []question.Question) []int64 {
	ids := make([]int64, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	return ids
}

func containsID(ids []int64, id int64) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
