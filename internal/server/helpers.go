package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/solvedaily/backend/internal/attempt"
	"github.com/solvedaily/backend/internal/grading"
	"github.com/solvedaily/backend/internal/question"
	"github.com/solvedaily/backend/internal/wrongnote"
)

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, attempt.ErrUnauthorized):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "attempt does not belong to user"})
	case errors.Is(err, attempt.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "attempt not found"})
	case errors.Is(err, question.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "question not found"})
	case errors.Is(err, question.ErrCategoryNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "category not found"})
	case errors.Is(err, wrongnote.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "wrong note not found"})
	case errors.Is(err, attempt.ErrNoQuestionsAvailable):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no questions available"})
	case errors.Is(err, attempt.ErrAlreadyCompleted):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "attempt already completed"})
	case errors.Is(err, attempt.ErrQuestionNotInAttempt):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "question is not part of attempt"})
	case errors.Is(err, grading.ErrInvalidQuestionType):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid question type"})
	case errors.Is(err, grading.ErrInvalidSubmission):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid submission"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "request failed"})
	}
}

func parseIntParam(r *http.Request, key string, defaultValue int) (int, error) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, errors.New(key + " must be a positive integer")
	}
	return parsed, nil
}

func parseCategoryParam(r *http.Request) (*int64, error) {
	value := strings.TrimSpace(r.URL.Query().Get("category_id"))
	if value == "" {
		return nil, nil
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil || parsed <= 0 {
		return nil, errors.New("category_id must be a positive integer")
	}
	return &parsed, nil
}

// toSubmission converts the wire payload to a grading submission. The
// grading engine picks the relevant field by question type.
func toSubmission(payload answerPayload) grading.Submission {
	sub := grading.Submission{Text: payload.Text}
	if payload.OptionIndex != nil {
		sub.OptionIndex = *payload.OptionIndex
	}
	if payload.Boolean != nil {
		sub.Boolean = *payload.Boolean
	}
	return sub
}
