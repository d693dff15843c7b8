package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/solvedaily/backend/internal/analytics"
	"github.com/solvedaily/backend/internal/database"
	"github.com/solvedaily/backend/internal/report"
	"github.com/solvedaily/backend/internal/streak"
	"github.com/solvedaily/backend/internal/wrongnote"
)

func newStatsCommand() *cobra.Command {
	var userID string
	var month string

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Print a user's activity stats for one month",
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

			report.NewConsolePrinter(os.Stdout).Print(monthly)
			return nil
		},
	}
	statsCmd.Flags().StringVar(&userID, "user", "", "user ID")
	statsCmd.Flags().StringVar(&month, "month", "", "month to report in YYYY-MM, defaults to the current month")
	_ = statsCmd.MarkFlagRequired("user")

	return statsCmd
}
