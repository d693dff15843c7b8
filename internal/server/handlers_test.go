package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/solvedaily/backend/internal/analytics"
	"github.com/solvedaily/backend/internal/attempt"
	"github.com/solvedaily/backend/internal/grading"
	mock_identity "github.com/solvedaily/backend/internal/mocks/identity"
	mock_server "github.com/solvedaily/backend/internal/mocks/server"
	"github.com/solvedaily/backend/internal/question"
	"github.com/solvedaily/backend/internal/streak"
	"github.com/solvedaily/backend/internal/wrongnote"
)

type apiMocks struct {
	attempts    *mock_server.MockAttemptService
	wrongNotes  *mock_server.MockWrongNoteService
	streaks     *mock_server.MockStreakService
	activity    *mock_server.MockAnalyticsService
	invalidator *mock_server.MockSummaryInvalidator
	verifier    *mock_identity.MockVerifier
}

var testNow = time.Date(2024, 3, 10, 21, 30, 0, 0, time.UTC)

func newTestRouter(t *testing.T) (http.Handler, apiMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := apiMocks{
		attempts:    mock_server.NewMockAttemptService(ctrl),
		wrongNotes:  mock_server.NewMockWrongNoteService(ctrl),
		streaks:     mock_server.NewMockStreakService(ctrl),
		activity:    mock_server.NewMockAnalyticsService(ctrl),
		invalidator: mock_server.NewMockSummaryInvalidator(ctrl),
		verifier:    mock_identity.NewMockVerifier(ctrl),
	}

	api := NewAPI(m.attempts, m.wrongNotes, m.streaks, m.activity, time.UTC,
		WithSummaryInvalidator(m.invalidator),
		WithClock(func() time.Time { return testNow }),
	)
	return NewRouter(api, m.verifier, []string{"*"}), m
}

func authedRequest(method, target string, body any) *http.Request {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "Bearer token-1")
	return req
}

func expectUser(m apiMocks) {
	m.verifier.EXPECT().Verify(gomock.Any(), "token-1").Return("user-1", nil)
}

func TestHandleStartDaily(t *testing.T) {
	t.Run("starts today's attempt", func(t *testing.T) {
		router, m := newTestRouter(t)
		expectUser(m)

		day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
		m.attempts.EXPECT().StartDaily(gomock.Any(), "user-1", day).Return(&attempt.StartResult{
			Attempt:   attempt.Attempt{ID: "attempt-1", UserID: "user-1", Kind: attempt.KindDaily, TotalCount: 5},
			Questions: []question.Question{{ID: 10, Type: question.TypeOX, Text: "q"}},
		}, nil)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, authedRequest(http.MethodPost, "/api/v1/attempts/daily", nil))

		require.Equal(t, http.StatusOK, recorder.Code)
		var response attemptResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, "attempt-1", response.Attempt.ID)
		assert.Len(t, response.Questions, 1)
	})

	t.Run("requires a bearer token", func(t *testing.T) {
		router, _ := newTestRouter(t)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/v1/attempts/daily", nil))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		router, m := newTestRouter(t)
		m.verifier.EXPECT().Verify(gomock.Any(), "token-1").Return("", fmt.Errorf("invalid session token"))

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, authedRequest(http.MethodPost, "/api/v1/attempts/daily", nil))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestHandleStartAdhoc(t *testing.T) {
	t.Run("starts a wrong_only attempt", func(t *testing.T) {
		router, m := newTestRouter(t)
		expectUser(m)

		m.attempts.EXPECT().
			StartAdhoc(gomock.Any(), "user-1", attempt.ModeWrongOnly, gomock.Nil(), 5).
			Return(&attempt.StartResult{
				Attempt: attempt.Attempt{ID: "attempt-2", Kind: attempt.KindAdhoc, Mode: attempt.ModeWrongOnly},
			}, nil)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, authedRequest(http.MethodPost, "/api/v1/attempts",
			startAdhocRequest{Mode: "wrong_only", Count: 5}))

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	t.Run("invalid mode", func(t *testing.T) {
		router, m := newTestRouter(t)
		expectUser(m)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, authedRequest(http.MethodPost, "/api/v1/attempts",
			startAdhocRequest{Mode: "hardest"}))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("unknown category", func(t *testing.T) {
		router, m := newTestRouter(t)
		expectUser(m)

		categoryID := int64(99)
		m.attempts.EXPECT().
			StartAdhoc(gomock.Any(), "user-1", attempt.ModeRandom, &categoryID, 0).
			Return(nil, question.ErrCategoryNotFound)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, authedRequest(http.MethodPost, "/api/v1/attempts",
			startAdhocRequest{Mode: "random", CategoryID: &categoryID}))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestHandleSubmitAnswer(t *testing.T) {
	optionIndex := 2

	t.Run("grades and invalidates the summary cache", func(t *testing.T) {
		router, m := newTestRouter(t)
		expectUser(m)

		m.attempts.EXPECT().
			SubmitAnswer(gomock.Any(), "user-1", "attempt-1", int64(10), grading.Submission{OptionIndex: 2}).
			Return(&attempt.SubmitResult{Correct: true, Submitted: "C", DisplayAnswer: "C"}, nil)
		m.invalidator.EXPECT().InvalidateUser(gomock.Any(), "user-1").Return(nil)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, authedRequest(http.MethodPost, "/api/v1/attempts/attempt-1/answers",
			submitAnswerRequest{QuestionID: 10, Payload: answerPayload{OptionIndex: &optionIndex}}))

		require.Equal(t, http.StatusOK, recorder.Code)
		var response submitAnswerResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.True(t, response.Correct)
	})

	t.Run("cache invalidation failure does not fail the request", func(t *testing.T) {
		router, m := newTestRouter(t)
		expectUser(m)

		m.attempts.EXPECT().
			SubmitAnswer(gomock.Any(), "user-1", "attempt-1", int64(10), gomock.Any()).
			Return(&attempt.SubmitResult{Correct: false, Submitted: "A", DisplayAnswer: "C"}, nil)
		m.invalidator.EXPECT().InvalidateUser(gomock.Any(), "user-1").
			Return(fmt.Errorf("connection refused"))

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, authedRequest(http.MethodPost, "/api/v1/attempts/attempt-1/answers",
			submitAnswerRequest{QuestionID: 10, Payload: answerPayload{OptionIndex: &optionIndex}}))

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("missing payload", func(t *testing.T) {
		router, m := newTestRouter(t)
		expectUser(m)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, authedRequest(http.MethodPost, "/api/v1/attempts/attempt-1/answers",
			submitAnswerRequest{QuestionID: 10}))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("completed attempt", func(t *testing.T) {
		router, m := newTestRouter(t)
		expectUser(m)

		m.attempts.EXPECT().
			SubmitAnswer(gomock.Any(), "user-1", "attempt-1", int64(10), gomock.Any()).
			Return(nil, attempt.ErrAlreadyCompleted)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, authedRequest(http.MethodPost, "/api/v1/attempts/attempt-1/answers",
			submitAnswerRequest{QuestionID: 10, Payload: answerPayload{Text: "answer"}}))

		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

func TestHandleComplete(t *testing.T) {
	router, m := newTestRouter(t)
	expectUser(m)

	m.attempts.EXPECT().Complete(gomock.Any(), "user-1", "attempt-1").
		Return(&attempt.CompleteResult{
			AttemptID:    "attempt-1",
			TotalCount:   5,
			CorrectCount: 4,
			Streak:       &streak.State{UserID: "user-1", CurrentStreak: 3, LongestStreak: 3},
		}, nil)
	m.invalidator.EXPECT().InvalidateUser(gomock.Any(), "user-1").Return(nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, authedRequest(http.MethodPost, "/api/v1/attempts/attempt-1/complete", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	var response completeResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, 4, response.CorrectCount)
	require.NotNil(t, response.Streak)
	assert.Equal(t, 3, response.Streak.CurrentStreak)
}

func TestHandleWrongNotes(t *testing.T) {
	t.Run("lists unreviewed notes", func(t *testing.T) {
		router, m := newTestRouter(t)
		expectUser(m)

		m.wrongNotes.EXPECT().ListUnreviewed(gomock.Any(), "user-1", gomock.Nil()).
			Return([]wrongnote.WrongNote{{UserID: "user-1", QuestionID: 10, WrongCount: 2}}, nil)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, authedRequest(http.MethodGet, "/api/v1/wrong-notes", nil))

		require.Equal(t, http.StatusOK, recorder.Code)
		var response wrongNotesResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		require.Len(t, response.WrongNotes, 1)
		assert.Equal(t, 2, response.WrongNotes[0].WrongCount)
	})

	t.Run("resolve marks a note reviewed", func(t *testing.T) {
		router, m := newTestRouter(t)
		expectUser(m)

		m.wrongNotes.EXPECT().Resolve(gomock.Any(), "user-1", int64(10), testNow).Return(nil)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, authedRequest(http.MethodPost, "/api/v1/wrong-notes/10/resolve", nil))

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	t.Run("resolve unknown note", func(t *testing.T) {
		router, m := newTestRouter(t)
		expectUser(m)

		m.wrongNotes.EXPECT().Resolve(gomock.Any(), "user-1", int64(10), testNow).
			Return(wrongnote.ErrNotFound)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, authedRequest(http.MethodPost, "/api/v1/wrong-notes/10/resolve", nil))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestHandleStreak(t *testing.T) {
	router, m := newTestRouter(t)
	expectUser(m)

	lastActivity := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	m.streaks.EXPECT().Get(gomock.Any(), "user-1").Return(streak.State{
		UserID:           "user-1",
		CurrentStreak:    4,
		LongestStreak:    9,
		LastActivityDate: &lastActivity,
		TotalActiveDays:  30,
	}, nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, authedRequest(http.MethodGet, "/api/v1/streak", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	var response streakResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, 4, response.CurrentStreak)
	assert.Equal(t, 9, response.LongestStreak)
}

func TestHandleActivity(t *testing.T) {
	t.Run("summary with custom window", func(t *testing.T) {
		router, m := newTestRouter(t)
		expectUser(m)

		m.activity.EXPECT().Summary(gomock.Any(), "user-1", 3).
			Return(analyticsSummaryFixture(), nil)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, authedRequest(http.MethodGet, "/api/v1/activity?months=3", nil))

		require.Equal(t, http.StatusOK, recorder.Code)
		var response activityResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, 12, response.Summary.TotalAnswered)
	})

	t.Run("invalid window", func(t *testing.T) {
		router, m := newTestRouter(t)
		expectUser(m)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, authedRequest(http.MethodGet, "/api/v1/activity?months=-1", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("day detail", func(t *testing.T) {
		router, m := newTestRouter(t)
		expectUser(m)

		day := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
		m.activity.EXPECT().DayDetail(gomock.Any(), "user-1", day).
			Return(analyticsDayFixture(), nil)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, authedRequest(http.MethodGet, "/api/v1/activity/2024-03-09", nil))

		require.Equal(t, http.StatusOK, recorder.Code)
		var response activityDayResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, "2024-03-09", response.Detail.Date)
	})

	t.Run("malformed date", func(t *testing.T) {
		router, m := newTestRouter(t)
		expectUser(m)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, authedRequest(http.MethodGet, "/api/v1/activity/march-9th", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func analyticsSummaryFixture() analytics.Summary {
	return analytics.Summary{
		TotalAnswered: 12,
		TotalCorrect:  9,
		ActiveDays:    4,
		CurrentStreak: 2,
		LongestStreak: 3,
		Days: []analytics.DaySummary{
			{Date: "2024-03-09", Total: 5, Correct: 4, Accuracy: 0.8},
		},
	}
}

func analyticsDayFixture() analytics.DayDetail {
	return analytics.DayDetail{
		Date:     "2024-03-09",
		Total:    5,
		Correct:  4,
		Accuracy: 0.8,
	}
}
