package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:      8080,
			CORS:      CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
			RateLimit: RateLimitConfig{RequestsPerSecond: 10, Burst: 20},
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     3306,
			Database: "learnio",
			Username: "learnio",
		},
		Redis: RedisConfig{Addr: "localhost:6379"},
		Cache: CacheConfig{SummaryTTLSeconds: 60},
		Inference: InferenceConfig{
			TimeoutSeconds:   60,
			MaxRetryAttempts: 2,
			Targets: []TargetConfig{
				{Provider: "gemini", Model: "gemini-2.0-flash"},
				{Provider: "gemini", Model: "gemini-1.5-flash"},
			},
			OpenAI: ProviderConfig{BaseURL: "https://api.openai.com/v1"},
			Gemini: ProviderConfig{BaseURL: "https://generativelanguage.googleapis.com/v1beta"},
		},
		Progress: ProgressConfig{
			StreakWindowDays: 60,
			StreakDays:       14,
			DailyDays:        7,
			MonthlyMonths:    6,
			QuizLimit:        5,
		},
		Reminder: ReminderConfig{Enabled: true, Schedule: "0 8 * * *", Concurrency: 5},
		SMTP:     SMTPConfig{Port: 587, From: "no-reply@learnio.local"},
	}
}

func clearSecretEnv(t *testing.T) {
	t.Helper()
	for _, env := range []string{"OPENAI_API_KEY", "GEMINI_API_KEY", "DB_PASSWORD", "REDIS_PASSWORD", "SMTP_PASSWORD"} {
		t.Setenv(env, "")
		require.NoError(t, os.Unsetenv(env))
	}
}

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		envContent        string
		want              func() *Config
		wantErrorContains []string
	}{
		{
			name:          "no config file uses defaults",
			configContent: "",
			want:          defaultConfig,
		},
		{
			name: "custom values override defaults",
			configContent: `server:
  port: 9090
  rate_limit:
    requests_per_second: 2.5
    burst: 5
inference:
  targets:
    - provider: openai
      model: gpt-4o-mini
    - provider: gemini
      model: gemini-2.0-flash
progress:
  streak_window_days: 90
reminder:
  schedule: "30 7 * * 1-5"
`,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Server.Port = 9090
				cfg.Server.RateLimit = RateLimitConfig{RequestsPerSecond: 2.5, Burst: 5}
				cfg.Inference.Targets = []TargetConfig{
					{Provider: "openai", Model: "gpt-4o-mini"},
					{Provider: "gemini", Model: "gemini-2.0-flash"},
				}
				cfg.Progress.StreakWindowDays = 90
				cfg.Reminder.Schedule = "30 7 * * 1-5"
				return cfg
			},
		},
		{
			name:          "secrets come from the dotenv file",
			configContent: "",
			envContent:    "GEMINI_API_KEY=from-dotenv\nDB_PASSWORD=secret\n",
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Inference.Gemini.APIKey = "from-dotenv"
				cfg.Database.Password = "secret"
				return cfg
			},
		},
		{
			name: "invalid YAML format",
			configContent: `server:
  port: 9090
  invalid yaml format here [[[
`,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "unknown provider is rejected",
			configContent: `inference:
  targets:
    - provider: claude
      model: x
`,
			wantErrorContains: []string{"invalid configuration", "provider must be one of [openai gemini]"},
		},
		{
			name: "invalid cron schedule is rejected",
			configContent: `reminder:
  schedule: "every morning"
`,
			wantErrorContains: []string{"invalid configuration", "must be a standard 5-field cron expression"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearSecretEnv(t)
			tempDir := t.TempDir()

			originalDir, err := os.Getwd()
			require.NoError(t, err)
			defer func() {
				require.NoError(t, os.Chdir(originalDir))
			}()
			require.NoError(t, os.Chdir(tempDir))

			if tt.configContent != "" {
				require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(tt.configContent), 0644))
			}
			if tt.envContent != "" {
				require.NoError(t, os.WriteFile(filepath.Join(tempDir, ".env"), []byte(tt.envContent), 0644))
			}

			loader, err := NewConfigLoader("")
			require.NoError(t, err)
			got, err := loader.Load()

			if len(tt.wantErrorContains) > 0 {
				require.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want(), got)
		})
	}
}

func TestConfigLoader_Load_ExplicitPath(t *testing.T) {
	clearSecretEnv(t)
	configPath := filepath.Join(t.TempDir(), "learnio.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("redis:\n  addr: cache:6380\n  db: 2\n"), 0644))

	loader, err := NewConfigLoader(configPath)
	require.NoError(t, err)
	got, err := loader.WithEnvFile("").Load()
	require.NoError(t, err)

	assert.Equal(t, RedisConfig{Addr: "cache:6380", DB: 2}, got.Redis)
	assert.Equal(t, 8080, got.Server.Port)
}
