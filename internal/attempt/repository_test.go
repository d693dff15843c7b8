package attempt_test

import (
	. "github.com/solvedaily/backend/internal/attempt"

	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mysqlDuplicateErr = mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'user-1-2024-03-10' for key 'uq_attempts_user_daily'"}

var attemptColumns = []string{
	"id", "user_id", "kind", "mode", "daily_date", "category_id",
	"total_count", "correct_count", "completed", "completed_at", "created_at",
}

func TestDBRepository_Create(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	daily := Attempt{
		ID:         "attempt-1",
		UserID:     "user-1",
		Kind:       KindDaily,
		DailyDate:  &day,
		TotalCount: 2,
		CreatedAt:  now,
	}

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "inserts attempt and assignment",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO attempts").
					WithArgs("attempt-1", "user-1", KindDaily, Mode(""), &day, nil, 2, now).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO attempt_questions").
					WithArgs("attempt-1", int64(10), 0).
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectExec("INSERT INTO attempt_questions").
					WithArgs("attempt-1", int64(11), 1).
					WillReturnResult(sqlmock.NewResult(2, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "duplicate daily key",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO attempts").
					WillReturnError(&mysqlDuplicateErr)
				mock.ExpectRollback()
			},
			wantErr: ErrDuplicateDaily,
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO attempts").
					WillReturnError(fmt.Errorf("connection refused"))
				mock.ExpectRollback()
			},
			wantErr: fmt.Errorf("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewDBRepository(sqlx.NewDb(db, "mysql"))
			tt.setupMock(mock)

			err = repo.Create(context.Background(), &daily, []int64{10, 11})
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorContains(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBRepository_FindDaily(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      *Attempt
		wantErr   bool
	}{
		{
			name: "found",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(attemptColumns).
					AddRow("attempt-1", "user-1", "daily", "", day, nil, 5, 0, false, nil, now)
				mock.ExpectQuery("SELECT \\* FROM attempts WHERE user_id").
					WithArgs("user-1", "2024-03-10").
					WillReturnRows(rows)
			},
			want: &Attempt{
				ID:         "attempt-1",
				UserID:     "user-1",
				Kind:       KindDaily,
				DailyDate:  &day,
				TotalCount: 5,
				CreatedAt:  now,
			},
		},
		{
			name: "not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM attempts WHERE user_id").
					WithArgs("user-1", "2024-03-10").
					WillReturnRows(sqlmock.NewRows(attemptColumns))
			},
			want: nil,
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM attempts WHERE user_id").
					WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewDBRepository(sqlx.NewDb(db, "mysql"))
			tt.setupMock(mock)

			got, err := repo.FindDaily(context.Background(), "user-1", day)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDBRepository_FindQuestionIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"question_id"}).
		AddRow(12).AddRow(10).AddRow(11)
	mock.ExpectQuery("SELECT question_id FROM attempt_questions").
		WithArgs("attempt-1").
		WillReturnRows(rows)

	repo := NewDBRepository(sqlx.NewDb(db, "mysql"))
	got, err := repo.FindQuestionIDs(context.Background(), "attempt-1")
	require.NoError(t, err)
	assert.Equal(t, []int64{12, 10, 11}, got)
}

func TestDBRepository_Complete(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      bool
	}{
		{
			name: "wins the completion",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE attempts SET correct_count").
					WithArgs(3, now, "attempt-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			want: true,
		},
		{
			name: "already completed",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE attempts SET correct_count").
					WithArgs(3, now, "attempt-1").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewDBRepository(sqlx.NewDb(db, "mysql"))
			tt.setupMock(mock)

			got, err := repo.Complete(context.Background(), "attempt-1", 3, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDBAnswerRepository_Upsert(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO answers").
		WithArgs("attempt-1", int64(10), "O", true, now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewDBAnswerRepository(sqlx.NewDb(db, "mysql"))
	err = repo.Upsert(context.Background(), &Answer{
		AttemptID:  "attempt-1",
		QuestionID: 10,
		Submitted:  "O",
		Correct:    true,
		AnsweredAt: now,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBAnswerRepository_Exists(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  bool
	}{
		{name: "exists", count: 1, want: true},
		{name: "missing", count: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM answers WHERE attempt_id").
				WithArgs("attempt-1", int64(10)).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			repo := NewDBAnswerRepository(sqlx.NewDb(db, "mysql"))
			got, err := repo.Exists(context.Background(), "attempt-1", 10)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDBAnswerRepository_CountCorrect(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM answers WHERE attempt_id = \\? AND correct = 1").
		WithArgs("attempt-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	repo := NewDBAnswerRepository(sqlx.NewDb(db, "mysql"))
	got, err := repo.CountCorrect(context.Background(), "attempt-1")
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestDBAnswerRepository_FindByAttempt(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "attempt_id", "question_id", "submitted", "correct", "answered_at"}).
		AddRow(1, "attempt-1", 10, "O", true, now).
		AddRow(2, "attempt-1", 11, "X", false, now.Add(time.Minute))
	mock.ExpectQuery("SELECT \\* FROM answers WHERE attempt_id").
		WithArgs("attempt-1").
		WillReturnRows(rows)

	repo := NewDBAnswerRepository(sqlx.NewDb(db, "mysql"))
	got, err := repo.FindByAttempt(context.Background(), "attempt-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(11), got[1].QuestionID)
	assert.False(t, got[1].Correct)
}
