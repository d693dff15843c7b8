package streak_test

import (
	. "github.com/solvedaily/backend/internal/streak"

	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_streak "github.com/solvedaily/backend/internal/mocks/streak"
)

func TestService_RecordDailyCompletion(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name      string
		existing  *State
		today     time.Time
		wantState State
		wantSave  bool
	}{
		{
			name:     "first ever completion initializes state",
			existing: nil,
			today:    day(10),
			wantState: State{
				UserID:           "user-1",
				CurrentStreak:    1,
				LongestStreak:    1,
				TotalActiveDays:  1,
				LastActivityDate: ptrTime(day(10)),
			},
			wantSave: true,
		},
		{
			name: "consecutive day extends streak",
			existing: &State{
				UserID: "user-1", CurrentStreak: 2, LongestStreak: 4,
				LastActivityDate: ptrTime(day(9)), TotalActiveDays: 7,
			},
			today: day(10),
			wantState: State{
				UserID: "user-1", CurrentStreak: 3, LongestStreak: 4,
				LastActivityDate: ptrTime(day(10)), TotalActiveDays: 8,
			},
			wantSave: true,
		},
		{
			name: "new longest streak",
			existing: &State{
				UserID: "user-1", CurrentStreak: 4, LongestStreak: 4,
				LastActivityDate: ptrTime(day(9)), TotalActiveDays: 4,
			},
			today: day(10),
			wantState: State{
				UserID: "user-1", CurrentStreak: 5, LongestStreak: 5,
				LastActivityDate: ptrTime(day(10)), TotalActiveDays: 5,
			},
			wantSave: true,
		},
		{
			name: "gap resets streak to one",
			existing: &State{
				UserID: "user-1", CurrentStreak: 5, LongestStreak: 5,
				LastActivityDate: ptrTime(day(7)), TotalActiveDays: 5,
			},
			today: day(10),
			wantState: State{
				UserID: "user-1", CurrentStreak: 1, LongestStreak: 5,
				LastActivityDate: ptrTime(day(10)), TotalActiveDays: 6,
			},
			wantSave: true,
		},
		{
			name: "same day is a no-op",
			existing: &State{
				UserID: "user-1", CurrentStreak: 3, LongestStreak: 5,
				LastActivityDate: ptrTime(day(10)), TotalActiveDays: 9,
			},
			today: day(10),
			wantState: State{
				UserID: "user-1", CurrentStreak: 3, LongestStreak: 5,
				LastActivityDate: ptrTime(day(10)), TotalActiveDays: 9,
			},
			wantSave: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_streak.NewMockRepository(ctrl)

			repo.EXPECT().Find(gomock.Any(), "user-1").Return(tt.existing, nil)
			if tt.wantSave {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, state *State) error {
						assert.Equal(t, tt.wantState.CurrentStreak, state.CurrentStreak)
						assert.Equal(t, tt.wantState.LongestStreak, state.LongestStreak)
						assert.Equal(t, tt.wantState.TotalActiveDays, state.TotalActiveDays)
						require.NotNil(t, state.LastActivityDate)
						assert.Equal(t, *tt.wantState.LastActivityDate, *state.LastActivityDate)
						return nil
					})
			}

			svc := NewService(repo)
			got, err := svc.RecordDailyCompletion(context.Background(), "user-1", tt.today)
			require.NoError(t, err)
			assert.Equal(t, tt.wantState.CurrentStreak, got.CurrentStreak)
			assert.Equal(t, tt.wantState.LongestStreak, got.LongestStreak)
			assert.Equal(t, tt.wantState.TotalActiveDays, got.TotalActiveDays)
		})
	}
}

// The incremental state machine and the batch rule must agree for daily-only
// activity: replaying a date sequence through RecordDailyCompletion yields the
// same current streak as FromSortedDates over the same dates.
func TestService_AgreesWithFromSortedDates(t *testing.T) {
	sequences := [][]int{
		{1, 2, 3},
		{1, 3, 4, 5},
		{1, 2, 4},
		{2, 5, 6, 7, 9},
		{10},
	}

	for _, days := range sequences {
		var stored *State
		ctrl := gomock.NewController(t)
		repo := mock_streak.NewMockRepository(ctrl)
		repo.EXPECT().Find(gomock.Any(), "user-1").DoAndReturn(
			func(context.Context, string) (*State, error) {
				if stored == nil {
					return nil, nil
				}
				cp := *stored
				return &cp, nil
			}).AnyTimes()
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, state *State) error {
				cp := *state
				stored = &cp
				return nil
			}).AnyTimes()

		svc := NewService(repo)
		var dates []time.Time
		var last State
		for _, d := range days {
			day := time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC)
			dates = append(dates, day)

			var err error
			last, err = svc.RecordDailyCompletion(context.Background(), "user-1", day)
			require.NoError(t, err)
		}

		wantCurrent, wantLongest := FromSortedDates(dates, dates[len(dates)-1])
		assert.Equal(t, wantCurrent, last.CurrentStreak, "days %v", days)
		assert.Equal(t, wantLongest, last.LongestStreak, "days %v", days)
		assert.Equal(t, len(days), last.TotalActiveDays, "days %v", days)
	}
}

func ptrTime(t time.Time) *time.Time {
	return &t
}
