// Package report renders a user's monthly activity as markdown, console
// output, or PDF.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/solvedaily/backend/internal/analytics"
	"github.com/solvedaily/backend/internal/streak"
	"github.com/solvedaily/backend/internal/wrongnote"
)

//go:generate mockgen -source=report.go -destination=../mocks/report/mock_report.go -package=mock_report

// MonthlyReport collects everything the report renders for one month.
type MonthlyReport struct {
	UserID     string
	Year       int
	Month      time.Month
	Summary    analytics.Summary
	Streak     streak.State
	WrongNotes []wrongnote.WrongNote
}

// AnalyticsSource is the slice of the analytics service the generator needs.
type AnalyticsSource interface {
	MonthSummary(ctx context.Context, userID string, year int, month time.Month) (analytics.Summary, error)
}

// StreakSource reads the persisted streak state.
type StreakSource interface {
	Get(ctx context.Context, userID string) (streak.State, error)
}

// WrongNoteSource lists the user's open wrong notes.
type WrongNoteSource interface {
	ListUnreviewed(ctx context.Context, userID string, categoryID *int64) ([]wrongnote.WrongNote, error)
}

// Generator assembles monthly reports from the read-side services.
type Generator struct {
	activity   AnalyticsSource
	streaks    StreakSource
	wrongNotes WrongNoteSource
}

// NewGenerator creates a new Generator.
func NewGenerator(activity AnalyticsSource, streaks StreakSource, wrongNotes WrongNoteSource) *Generator {
	return &Generator{
		activity:   activity,
		streaks:    streaks,
		wrongNotes: wrongNotes,
	}
}

// Generate builds the report for one (user, year, month). The summary covers
// exactly that calendar month, so past months report their own activity.
func (g *Generator) Generate(ctx context.Context, userID string, year int, month time.Month) (MonthlyReport, error) {
	summary, err := g.activity.MonthSummary(ctx, userID, year, month)
	if err != nil {
		return MonthlyReport{}, fmt.Errorf("activity.MonthSummary() > %w", err)
	}

	state, err := g.streaks.Get(ctx, userID)
	if err != nil {
		return MonthlyReport{}, fmt.Errorf("streaks.Get() > %w", err)
	}

	notes, err := g.wrongNotes.ListUnreviewed(ctx, userID, nil)
	if err != nil {
		return MonthlyReport{}, fmt.Errorf("wrongNotes.ListUnreviewed() > %w", err)
	}

	return MonthlyReport{
		UserID:     userID,
		Year:       year,
		Month:      month,
		Summary:    summary,
		Streak:     state,
		WrongNotes: notes,
	}, nil
}

// RenderMarkdown renders the report as a markdown document.
func RenderMarkdown(r MonthlyReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Activity Report %04d-%02d\n\n", r.Year, r.Month)
	fmt.Fprintf(&b, "User: %s\n\n", r.UserID)

	fmt.Fprintf(&b, "## Overview\n\n")
	fmt.Fprintf(&b, "- Answered: %d (%d correct)\n", r.Summary.TotalAnswered, r.Summary.TotalCorrect)
	fmt.Fprintf(&b, "- Active days this month: %d\n", len(r.Summary.Days))
	fmt.Fprintf(&b, "- Current streak: %d days (longest %d)\n", r.Streak.CurrentStreak, r.Streak.LongestStreak)
	fmt.Fprintf(&b, "- Total active days: %d\n\n", r.Streak.TotalActiveDays)

	if len(r.Summary.Days) > 0 {
		fmt.Fprintf(&b, "## Daily activity\n\n")
		fmt.Fprintf(&b, "| Date | Answered | Correct | Accuracy |\n")
		fmt.Fprintf(&b, "| --- | --- | --- | --- |\n")
		for _, day := range r.Summary.Days {
			fmt.Fprintf(&b, "| %s | %d | %d | %.0f%% |\n",
				day.Date, day.Total, day.Correct, day.Accuracy*100)
		}
		fmt.Fprintf(&b, "\n")
	}

	if len(r.Summary.Categories) > 0 {
		fmt.Fprintf(&b, "## Categories\n\n")
		fmt.Fprintf(&b, "| Category | Answered | Correct | Accuracy |\n")
		fmt.Fprintf(&b, "| --- | --- | --- | --- |\n")
		for _, category := range r.Summary.Categories {
			name := category.Category
			if name == "" {
				name = "(uncategorized)"
			}
			fmt.Fprintf(&b, "| %s | %d | %d | %.0f%% |\n",
				name, category.Total, category.Correct, category.Accuracy*100)
		}
		fmt.Fprintf(&b, "\n")
	}

	fmt.Fprintf(&b, "## Open wrong notes\n\n")
	if len(r.WrongNotes) == 0 {
		fmt.Fprintf(&b, "None. Keep it up.\n")
	} else {
		fmt.Fprintf(&b, "| Question | Missed | Last missed |\n")
		fmt.Fprintf(&b, "| --- | --- | --- |\n")
		for _, note := range r.WrongNotes {
			fmt.Fprintf(&b, "| #%d | %d | %s |\n",
				note.QuestionID, note.WrongCount, note.LastWrongAt.Format(time.DateOnly))
		}
	}
	return b.String()
}
