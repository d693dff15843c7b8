package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/solvedaily/backend/internal/attempt"
	"github.com/solvedaily/backend/internal/wrongnote"
)

func (a *API) handleStartDaily(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	result, err := a.attempts.StartDaily(r.Context(), userID, a.today())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, attemptResponse{
		Attempt:   result.Attempt,
		Questions: result.Questions,
	})
}

func (a *API) handleStartAdhoc(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	defer r.Body.Close()
	var request startAdhocRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	if err := a.validate.Struct(request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	mode := attempt.Mode(request.Mode)
	if mode == "" {
		mode = attempt.ModeRandom
	}

	result, err := a.attempts.StartAdhoc(r.Context(), userID, mode, request.CategoryID, request.Count)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, attemptResponse{
		Attempt:   result.Attempt,
		Questions: result.Questions,
	})
}

func (a *API) handleGetAttempt(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	result, err := a.attempts.Get(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, attemptResponse{
		Attempt:   result.Attempt,
		Questions: result.Questions,
	})
}

func (a *API) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	defer r.Body.Close()
	var request submitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if err := a.validate.Struct(request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request: " + err.Error()})
		return
	}
	if request.Payload.empty() {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "payload is required"})
		return
	}

	result, err := a.attempts.SubmitAnswer(r.Context(), userID, r.PathValue("id"),
		request.QuestionID, toSubmission(request.Payload))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	a.invalidateSummaries(r, userID)
	writeJSON(w, http.StatusOK, submitAnswerResponse{
		Correct:       result.Correct,
		Submitted:     result.Submitted,
		DisplayAnswer: result.DisplayAnswer,
		Explanation:   result.Explanation,
	})
}

func (a *API) handleComplete(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	result, err := a.attempts.Complete(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	a.invalidateSummaries(r, userID)
	writeJSON(w, http.StatusOK, completeResponse{
		AttemptID:                  result.AttemptID,
		TotalCount:                 result.TotalCount,
		CorrectCount:               result.CorrectCount,
		AlreadyCompleted:           result.AlreadyCompleted,
		Streak:                     result.Streak,
		FailedWrongNoteQuestionIDs: result.FailedWrongNoteQuestionIDs,
	})
}

func (a *API) handleListWrongNotes(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	categoryID, err := parseCategoryParam(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	notes, err := a.wrongNotes.ListUnreviewed(r.Context(), userID, categoryID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if notes == nil {
		notes = []wrongnote.WrongNote{}
	}
	writeJSON(w, http.StatusOK, wrongNotesResponse{WrongNotes: notes})
}

func (a *API) handleResolveWrongNote(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	questionID, err := strconv.ParseInt(r.PathValue("question_id"), 10, 64)
	if err != nil || questionID <= 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "question_id must be a positive integer"})
		return
	}

	if err := a.wrongNotes.Resolve(r.Context(), userID, questionID, a.now()); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleStreak(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	state, err := a.streaks.Get(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, streakResponse{
		UserID:           state.UserID,
		CurrentStreak:    state.CurrentStreak,
		LongestStreak:    state.LongestStreak,
		LastActivityDate: state.LastActivityDate,
		TotalActiveDays:  state.TotalActiveDays,
	})
}

func (a *API) handleActivity(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	months, err := parseIntParam(r, "months", 0)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	summary, err := a.activity.Summary(r.Context(), userID, months)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activityResponse{Summary: summary})
}

func (a *API) handleActivityDay(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	day, err := time.ParseInLocation(time.DateOnly, r.PathValue("date"), a.location)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "date must be formatted as YYYY-MM-DD"})
		return
	}

	detail, err := a.activity.DayDetail(r.Context(), userID, day)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activityDayResponse{Detail: detail})
}

// invalidateSummaries drops the user's cached activity reports after a write.
// Failures only get logged; the write already succeeded.
func (a *API) invalidateSummaries(r *http.Request, userID string) {
	if a.invalidator == nil {
		return
	}
	if err := a.invalidator.InvalidateUser(r.Context(), userID); err != nil {
		slog.Default().Warn("failed to invalidate cached summaries",
			slog.String("userID", userID),
			slog.Any("error", err),
		)
	}
}
