package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Inference InferenceConfig `mapstructure:"inference"`
	Progress  ProgressConfig  `mapstructure:"progress"`
	Reminder  ReminderConfig  `mapstructure:"reminder"`
	SMTP      SMTPConfig      `mapstructure:"smtp"`
}

type ServerConfig struct {
	Port      int             `mapstructure:"port" validate:"min=1,max=65535"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second" validate:"gte=0"`
	Burst             int     `mapstructure:"burst" validate:"gte=0"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr" validate:"required"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type CacheConfig struct {
	SummaryTTLSeconds int `mapstructure:"summary_ttl_seconds" validate:"gte=0"`
}

func (c CacheConfig) SummaryTTL() time.Duration {
	return time.Duration(c.SummaryTTLSeconds) * time.Second
}

type InferenceConfig struct {
	TimeoutSeconds   int            `mapstructure:"timeout_seconds" validate:"min=1"`
	MaxRetryAttempts uint           `mapstructure:"max_retry_attempts"`
	Targets          []TargetConfig `mapstructure:"targets" validate:"required,min=1,dive"`
	OpenAI           ProviderConfig `mapstructure:"openai"`
	Gemini           ProviderConfig `mapstructure:"gemini"`
}

func (c InferenceConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// TargetConfig is one entry of the ordered provider/model fallback list.
type TargetConfig struct {
	Provider string `mapstructure:"provider" validate:"oneof=openai gemini"`
	Model    string `mapstructure:"model" validate:"required"`
}

type ProviderConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}

type ProgressConfig struct {
	StreakWindowDays int `mapstructure:"streak_window_days" validate:"min=1"`
	StreakDays       int `mapstructure:"streak_days" validate:"min=1"`
	DailyDays        int `mapstructure:"daily_days" validate:"min=1"`
	MonthlyMonths    int `mapstructure:"monthly_months" validate:"min=1"`
	QuizLimit        int `mapstructure:"quiz_limit" validate:"min=1"`
}

type ReminderConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Schedule    string `mapstructure:"schedule" validate:"cron"`
	Concurrency int    `mapstructure:"concurrency" validate:"min=1"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from" validate:"omitempty,email"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
	envFile    string
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/learnio")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
		envFile:    ".env",
	}, nil
}

// WithEnvFile overrides the dotenv file read before environment bindings are resolved.
func (loader *ConfigLoader) WithEnvFile(path string) *ConfigLoader {
	loader.envFile = path
	return loader
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	// Existing environment variables win over the dotenv file
	if loader.envFile != "" {
		if err := godotenv.Load(loader.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", loader.envFile, err)
		}
	}

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.rate_limit.requests_per_second", 10)
	v.SetDefault("server.rate_limit.burst", 20)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "learnio")
	v.SetDefault("database.username", "learnio")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("cache.summary_ttl_seconds", 60)
	v.SetDefault("inference.timeout_seconds", 60)
	v.SetDefault("inference.max_retry_attempts", 2)
	v.SetDefault("inference.targets", []map[string]any{
		{"provider": "gemini", "model": "gemini-2.0-flash"},
		{"provider": "gemini", "model": "gemini-1.5-flash"},
	})
	v.SetDefault("inference.openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("inference.gemini.base_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("progress.streak_window_days", 60)
	v.SetDefault("progress.streak_days", 14)
	v.SetDefault("progress.daily_days", 7)
	v.SetDefault("progress.monthly_months", 6)
	v.SetDefault("progress.quiz_limit", 5)
	v.SetDefault("reminder.enabled", true)
	v.SetDefault("reminder.schedule", "0 8 * * *")
	v.SetDefault("reminder.concurrency", 5)
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.from", "no-reply@learnio.local")

	// Secrets are bound to environment variables only (not from config file)
	secrets := map[string]string{
		"inference.openai.api_key": "OPENAI_API_KEY",
		"inference.gemini.api_key": "GEMINI_API_KEY",
		"database.password":        "DB_PASSWORD",
		"redis.password":           "REDIS_PASSWORD",
		"smtp.password":            "SMTP_PASSWORD",
	}
	for key, env := range secrets {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s environment variable: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("validate configuration: %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
