package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
		want    func(t *testing.T, cfg *Config)
		wantErr string
	}{
		{
			name:    "defaults only",
			content: "",
			want: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, "solvedaily", cfg.Database.Database)
				assert.Equal(t, 5, cfg.Quiz.DailyQuestionCount)
				assert.Equal(t, 12, cfg.Quiz.LookbackMonths)
				assert.Equal(t, "Asia/Seoul", cfg.Quiz.Timezone)
				assert.Equal(t, 300, cfg.Redis.SummaryTTLSeconds)
			},
		},
		{
			name: "overrides from file",
			content: `server:
  port: 9000
database:
  host: db.internal
  database: quizprod
quiz:
  daily_question_count: 3
  timezone: UTC
`,
			want: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 9000, cfg.Server.Port)
				assert.Equal(t, "db.internal", cfg.Database.Host)
				assert.Equal(t, "quizprod", cfg.Database.Database)
				assert.Equal(t, 3, cfg.Quiz.DailyQuestionCount)
				assert.Equal(t, "UTC", cfg.Quiz.Timezone)
			},
		},
		{
			name: "password comes from environment",
			env: map[string]string{
				"DB_PASSWORD": "sekret",
			},
			want: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "sekret", cfg.Database.Password)
			},
		},
		{
			name: "invalid timezone",
			content: `quiz:
  timezone: Mars/Olympus
`,
			wantErr: "invalid configuration",
		},
		{
			name: "invalid port",
			content: `server:
  port: -1
`,
			wantErr: "invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfgPath := filepath.Join(t.TempDir(), "config.yml")
			require.NoError(t, os.WriteFile(cfgPath, []byte(tt.content), 0644))

			loader, err := NewConfigLoader(cfgPath)
			require.NoError(t, err)

			cfg, err := loader.Load()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.want(t, cfg)
		})
	}
}
