package report

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

// ConsolePrinter writes a colored stats view of a report to a terminal.
type ConsolePrinter struct {
	out    io.Writer
	bold   *color.Color
	green  *color.Color
	red    *color.Color
	yellow *color.Color
}

// NewConsolePrinter creates a new ConsolePrinter writing to out.
func NewConsolePrinter(out io.Writer) *ConsolePrinter {
	return &ConsolePrinter{
		out:    out,
		bold:   color.New(color.Bold),
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
		yellow: color.New(color.FgYellow),
	}
}

// Print writes the report summary, per-category accuracy and open wrong
// notes. Accuracy at or above 80% prints green, below 50% red.
func (p *ConsolePrinter) Print(r MonthlyReport) {
	fmt.Fprintf(p.out, "%s\n\n", p.bold.Sprintf("Stats for %s (%04d-%02d)", r.UserID, r.Year, r.Month))

	fmt.Fprintf(p.out, "Answered: %d (%d correct)\n", r.Summary.TotalAnswered, r.Summary.TotalCorrect)
	fmt.Fprintf(p.out, "Streak: %s (longest %d, %d active days)\n\n",
		p.yellow.Sprintf("%d days", r.Streak.CurrentStreak),
		r.Streak.LongestStreak, r.Streak.TotalActiveDays)

	if len(r.Summary.Categories) > 0 {
		fmt.Fprintf(p.out, "%s\n", p.bold.Sprint("By category"))
		for _, category := range r.Summary.Categories {
			name := category.Category
			if name == "" {
				name = "(uncategorized)"
			}
			fmt.Fprintf(p.out, "  %-20s %3d/%-3d %s\n",
				name, category.Correct, category.Total, p.accuracy(category.Accuracy))
		}
		fmt.Fprintln(p.out)
	}

	if len(r.WrongNotes) == 0 {
		fmt.Fprintf(p.out, "%s\n", p.green.Sprint("No open wrong notes."))
		return
	}
	fmt.Fprintf(p.out, "%s\n", p.bold.Sprintf("Open wrong notes (%d)", len(r.WrongNotes)))
	for _, note := range r.WrongNotes {
		fmt.Fprintf(p.out, "  question #%d missed %s, last on %s\n",
			note.QuestionID,
			p.red.Sprintf("%d times", note.WrongCount),
			note.LastWrongAt.Format(time.DateOnly))
	}
}

func (p *ConsolePrinter) accuracy(ratio float64) string {
	text := fmt.Sprintf("%.0f%%", ratio*100)
	switch {
	case ratio >= 0.8:
		return p.green.Sprint(text)
	case ratio < 0.5:
		return p.red.Sprint(text)
	default:
		return text
	}
}
