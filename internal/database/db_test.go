package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvedaily/backend/internal/config"
)

func TestOpen(t *testing.T) {
	db, err := Open(config.DatabaseConfig{
		Host:            "localhost",
		Port:            3306,
		Database:        "solvedaily",
		Username:        "user",
		Password:        "pass",
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 60,
	})
	require.NoError(t, err)
	defer db.Close()

	// sqlx.Open does not connect; only DSN construction and pool setup are verified here.
	assert.Equal(t, "mysql", db.DriverName())
}

func TestIsDuplicateEntry(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "duplicate entry",
			err:  &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"},
			want: true,
		},
		{
			name: "wrapped duplicate entry",
			err:  fmt.Errorf("db.ExecContext() > %w", &mysql.MySQLError{Number: 1062}),
			want: true,
		},
		{
			name: "other mysql error",
			err:  &mysql.MySQLError{Number: 1045},
			want: false,
		},
		{
			name: "non-mysql error",
			err:  errors.New("connection refused"),
			want: false,
		},
		{
			name: "nil",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDuplicateEntry(tt.err))
		})
	}
}
