package question

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questionColumns() []string {
	return []string{
		"id", "type", "difficulty", "text", "options", "answer",
		"explanation", "category_id", "active", "created_at", "updated_at",
	}
}

func TestDBRepository_FindByID(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		id        int64
		setupMock func(mock sqlmock.Sqlmock)
		want      *Question
		wantErr   bool
	}{
		{
			name: "returns question with options",
			id:   1,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(questionColumns()).
					AddRow(1, "multiple", 2, "Which layer owns retransmission?",
						`["Physical","Data link","Transport","Session"]`,
						"Transport", "TCP retransmits lost segments.", 3, true, now, now)
				mock.ExpectQuery("SELECT \\* FROM questions WHERE id = \\?").
					WithArgs(int64(1)).
					WillReturnRows(rows)
			},
			want: &Question{
				ID:          1,
				Type:        TypeMultiple,
				Difficulty:  2,
				Text:        "Which layer owns retransmission?",
				Options:     Options{"Physical", "Data link", "Transport", "Session"},
				Answer:      "Transport",
				Explanation: "TCP retransmits lost segments.",
				CategoryID:  3,
				Active:      true,
				CreatedAt:   now,
				UpdatedAt:   now,
			},
		},
		{
			name: "not found returns nil",
			id:   99,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM questions WHERE id = \\?").
					WithArgs(int64(99)).
					WillReturnRows(sqlmock.NewRows(questionColumns()))
			},
			want: nil,
		},
		{
			name: "db error",
			id:   1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM questions WHERE id = \\?").
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

			got, err := repo.FindByID(context.Background(), tt.id)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBRepository_FindByIDs(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("returns matching questions", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows(questionColumns()).
			AddRow(1, "ox", 1, "HTTP is stateless.", nil, "true", "", 3, true, now, now).
			AddRow(2, "blank", 3, "Name the SQL isolation level that allows dirty reads.", nil,
				"read uncommitted", "", 4, true, now, now)
		mock.ExpectQuery("SELECT \\* FROM questions WHERE id IN \\(\\?, \\?\\)").
			WithArgs(int64(1), int64(2)).
			WillReturnRows(rows)

		repo := NewDBRepository(sqlx.NewDb(db, "mysql"))
		got, err := repo.FindByIDs(context.Background(), []int64{1, 2})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, TypeOX, got[0].Type)
		assert.Nil(t, got[0].Options)
		assert.Equal(t, "read uncommitted", got[1].Answer)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty input short-circuits", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewDBRepository(sqlx.NewDb(db, "mysql"))
		got, err := repo.FindByIDs(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDBRepository_FindActiveByCategory(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(questionColumns()).
		AddRow(5, "code", 3, "What does `defer` guarantee?", nil,
			"runs before the surrounding function returns", "", 7, true, now, now)
	mock.ExpectQuery("SELECT \\* FROM questions WHERE active = 1 AND category_id = \\? ORDER BY id").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	repo := NewDBRepository(sqlx.NewDb(db, "mysql"))
	got, err := repo.FindActiveByCategory(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(5), got[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBRepository_FindCategory(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT \\* FROM categories WHERE id = \\?").
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).
				AddRow(3, "Networking", now))

		repo := NewDBRepository(sqlx.NewDb(db, "mysql"))
		got, err := repo.FindCategory(context.Background(), 3)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Networking", got.Name)
	})

	t.Run("not found returns nil", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT \\* FROM categories WHERE id = \\?").
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}))

		repo := NewDBRepository(sqlx.NewDb(db, "mysql"))
		got, err := repo.FindCategory(context.Background(), 42)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestOptions_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    Options
		wantErr bool
	}{
		{name: "bytes", src: []byte(`["a","b"]`), want: Options{"a", "b"}},
		{name: "string", src: `["x"]`, want: Options{"x"}},
		{name: "nil", src: nil, want: nil},
		{name: "bad json", src: []byte(`{`), wantErr: true},
		{name: "unsupported type", src: 42, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o Options
			err := o.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, o)
		})
	}
}
