// Package analytics is the read side of the quiz platform. It recomputes
// day-by-day and category-by-category activity from the full answer history,
// independent of the persisted streak counter.
package analytics

import (
	"sort"
	"time"

	"github.com/solvedaily/backend/internal/streak"
)

// AnswerEvent is one graded answer joined with its question and category.
// Both daily and ad-hoc attempts contribute events.
type AnswerEvent struct {
	QuestionID   int64     `db:"question_id" json:"question_id"`
	QuestionText string    `db:"question_text" json:"question_text"`
	Category     string    `db:"category" json:"category"`
	Submitted    string    `db:"submitted" json:"submitted"`
	Correct      bool      `db:"correct" json:"correct"`
	AnsweredAt   time.Time `db:"answered_at" json:"answered_at"`
}

// DaySummary aggregates one calendar day of activity.
type DaySummary struct {
	Date     string  `json:"date"`
	Total    int     `json:"total"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

// CategorySummary is a cumulative per-category accuracy over the window.
type CategorySummary struct {
	Category string  `json:"category"`
	Total    int     `json:"total"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

// Summary is the full activity report over one lookback window. The streak
// fields are derived from the event dates themselves and can legitimately
// differ from the persisted streak, which counts daily attempts only.
type Summary struct {
	Days          []DaySummary      `json:"days"`
	Categories    []CategorySummary `json:"categories"`
	TotalAnswered int               `json:"total_answered"`
	TotalCorrect  int               `json:"total_correct"`
	ActiveDays    int               `json:"active_days"`
	CurrentStreak int               `json:"current_streak"`
	LongestStreak int               `json:"longest_streak"`
}

// DayDetail is the per-day variant of Summary, with the answered questions
// listed individually.
type DayDetail struct {
	Date       string            `json:"date"`
	Total      int               `json:"total"`
	Correct    int               `json:"correct"`
	Accuracy   float64           `json:"accuracy"`
	Categories []CategorySummary `json:"categories"`
	Questions  []AnswerEvent     `json:"questions"`
}

// Summarize aggregates answer events into a Summary. Calendar dates are
// derived in today's location, so the caller controls the timezone the
// heatmap is bucketed in.
func Summarize(events []AnswerEvent, today time.Time) Summary {
	byDay := map[string]*DaySummary{}
	byCategory := map[string]*CategorySummary{}
	summary := Summary{}

	for _, event := range events {
		summary.TotalAnswered++
		if event.Correct {
			summary.TotalCorrect++
		}

		date := event.AnsweredAt.In(today.Location()).Format(time.DateOnly)
		day, ok := byDay[date]
		if !ok {
			day = &DaySummary{Date: date}
			byDay[date] = day
		}
		day.Total++
		if event.Correct {
			day.Correct++
		}

		category, ok := byCategory[event.Category]
		if !ok {
			category = &CategorySummary{Category: event.Category}
			byCategory[event.Category] = category
		}
		category.Total++
		if event.Correct {
			category.Correct++
		}
	}

	summary.Days = make([]DaySummary, 0, len(byDay))
	activeDates := make([]time.Time, 0, len(byDay))
	for date, day := range byDay {
		day.Accuracy = accuracy(day.Correct, day.Total)
		summary.Days = append(summary.Days, *day)
		if parsed, err := time.ParseInLocation(time.DateOnly, date, today.Location()); err == nil {
			activeDates = append(activeDates, parsed)
		}
	}
	sort.Slice(summary.Days, func(i, j int) bool {
		return summary.Days[i].Date < summary.Days[j].Date
	})
	sort.Slice(activeDates, func(i, j int) bool {
		return activeDates[i].Before(activeDates[j])
	})

	summary.Categories = make([]CategorySummary, 0, len(byCategory))
	for _, category := range byCategory {
		category.Accuracy = accuracy(category.Correct, category.Total)
		summary.Categories = append(summary.Categories, *category)
	}
	sort.Slice(summary.Categories, func(i, j int) bool {
		return summary.Categories[i].Category < summary.Categories[j].Category
	})

	summary.ActiveDays = len(activeDates)
	summary.CurrentStreak, summary.LongestStreak = streak.FromSortedDates(activeDates, today)
	return summary
}

// BuildDayDetail aggregates one day's events. The events are assumed to all
// fall on the given day; the repository query enforces that.
func BuildDayDetail(events []AnswerEvent, day time.Time) DayDetail {
	detail := DayDetail{
		Date:      day.Format(time.DateOnly),
		Questions: events,
	}

	byCategory := map[string]*CategorySummary{}
	for _, event := range events {
		detail.Total++
		if event.Correct {
			detail.Correct++
		}

		category, ok := byCategory[event.Category]
		if !ok {
			category = &CategorySummary{Category: event.Category}
			byCategory[event.Category] = category
		}
		category.Total++
		if event.Correct {
			category.Correct++
		}
	}
	detail.Accuracy = accuracy(detail.Correct, detail.Total)

	detail.Categories = make([]CategorySummary, 0, len(byCategory))
	for _, category := range byCategory {
		category.Accuracy = accuracy(category.Correct, category.Total)
		detail.Categories = append(detail.Categories, *category)
	}
	sort.Slice(detail.Categories, func(i, j int) bool {
		return detail.Categories[i].Category < detail.Categories[j].Category
	})

	return detail
}

func accuracy(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total)
}
