package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/solvedaily/backend/internal/analytics"
	"github.com/solvedaily/backend/internal/database"
	"github.com/solvedaily/backend/internal/report"
	"github.com/solvedaily/backend/internal/streak"
	"github.com/solvedaily/backend/internal/wrongnote"
)

func newReportCommand() *cobra.Command {
	var userID string
	var month string
	var output string

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Write a user's monthly activity report as a PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}

			location, err := time.LoadLocation(cfg.Quiz.Timezone)
			if err != nil {
				return fmt.Errorf("time.LoadLocation(%s) > %w", cfg.Quiz.Timezone, err)
			}
			year, monthOfYear, err := parseMonth(month, time.Now(), location)
			if err != nil {
				return err
			}
			if output == "" {
				output = fmt.Sprintf("report-%04d-%02d.pdf", year, monthOfYear)
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer db.Close()

			generator := report.NewGenerator(
				analytics.NewService(analytics.NewDBRepository(db), cfg.Quiz.LookbackMonths,
					analytics.WithClock(func() time.Time { return time.Now().In(location) })),
				streak.NewService(streak.NewDBRepository(db)),
				wrongnote.NewService(wrongnote.NewDBRepository(db)),
			)
			monthly, err := generator.Generate(cmd.Context(), userID, year, monthOfYear)
			if err != nil {
				return fmt.Errorf("generator.Generate() > %w", err)
			}

			path, err := report.WritePDF(monthly, output)
			if err != nil {
				return fmt.Errorf("report.WritePDF() > %w", err)
			}
			fmt.Printf("Report written to %s\n", path)
			return nil
		},
	}
	reportCmd.Flags().StringVar(&userID, "user", "", "user ID")
	reportCmd.Flags().StringVar(&month, "month", "", "month to report in YYYY-MM, defaults to the current month")
	reportCmd.Flags().StringVar(&output, "output", "", "output PDF path")
	_ = reportCmd.MarkFlagRequired("user")

	return reportCmd
}
