package config

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port int        `mapstructure:"port" validate:"gt=0,lte=65535"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Identity IdentityConfig `mapstructure:"identity"`
	Quiz     QuizConfig     `mapstructure:"quiz"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host" validate:"required"`
	Port            int               `mapstructure:"port" validate:"gt=0,lte=65535"`
	Database        string            `mapstructure:"database" validate:"required"`
	Username        string            `mapstructure:"username" validate:"required"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

// RedisConfig configures the optional read-side summary cache.
// An empty Addr disables caching entirely.
type RedisConfig struct {
	Addr              string `mapstructure:"addr"`
	Password          string `mapstructure:"password"`
	DB                int    `mapstructure:"db"`
	SummaryTTLSeconds int    `mapstructure:"summary_ttl_seconds"`
}

type IdentityConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gt=0"`
	MaxRetries     uint   `mapstructure:"max_retries"`
}

type QuizConfig struct {
	DailyQuestionCount int    `mapstructure:"daily_question_count" validate:"gt=0"`
	AdhocQuestionCount int    `mapstructure:"adhoc_question_count" validate:"gt=0"`
	LookbackMonths     int    `mapstructure:"lookback_months" validate:"gt=0"`
	Timezone           string `mapstructure:"timezone" validate:"required,timezone"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
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
		v.AddConfigPath("$HOME/.config/solvedaily")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "solvedaily")
	v.SetDefault("database.username", "user")
	v.SetDefault("redis.summary_ttl_seconds", 300)
	v.SetDefault("identity.base_url", "http://localhost:9090")
	v.SetDefault("identity.timeout_seconds", 5)
	v.SetDefault("identity.max_retries", 2)
	v.SetDefault("quiz.daily_question_count", 5)
	v.SetDefault("quiz.adhoc_question_count", 10)
	v.SetDefault("quiz.lookback_months", 12)
	v.SetDefault("quiz.timezone", "Asia/Seoul")

	// Bind secrets to environment variables only (not from config file)
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("redis.password", "REDIS_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind REDIS_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("identity.base_url", "IDENTITY_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind IDENTITY_BASE_URL environment variable: %w", err)
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
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
